// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/feynman/bfs"
	"github.com/katalvlaran/feynman/generator"
)

// BenchmarkComponents_Generated measures component search on random diagrams.
func BenchmarkComponents_Generated(b *testing.B) {
	g := generator.New(generator.WithSeed(1), generator.WithMintWeight(1.5))
	d, err := g.Generate()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Components(d); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS_Moller measures a single traversal of the tree-level diagram.
func BenchmarkBFS_Moller(b *testing.B) {
	d := moller(b)
	start := d.IncomingVertices()[0]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(d, start); err != nil {
			b.Fatal(err)
		}
	}
}
