// SPDX-License-Identifier: MIT
// Package: feynman/core
//
// format.go: compact text rendering of particles and vertices for traces.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// DescribeParticle renders a particle as "<kind>(<id>) <from> -> <to>",
// with "_" for an unset end, e.g. "photon(4) 1 -> 0".
func (s *Store) DescribeParticle(id ParticleID) string {
	if !s.hasParticle(id) {
		return fmt.Sprintf("particle(%d)?", id)
	}
	p := s.particle(id)
	return fmt.Sprintf("%s(%d) %s -> %s", p.kind, p.id, endString(p.from), endString(p.to))
}

// DescribeVertex renders a vertex as "<variant>(<id>) <in,...> -> <out,...>",
// with "_" for an empty side, e.g. "ElectronEmitVertex(1) 1 -> 3,4" or
// "IncomingVertex(2) _ -> 0".
func (s *Store) DescribeVertex(id VertexID) string {
	if !s.hasVertex(id) {
		return fmt.Sprintf("vertex(%d)?", id)
	}
	v := s.vertex(id)
	return fmt.Sprintf("%s(%d) %s -> %s", v.kind, v.id, joinIDs(v.incoming), joinIDs(v.outgoing))
}

func endString(v VertexID) string {
	if v == NoVertex {
		return "_"
	}
	return strconv.Itoa(int(v))
}

func joinIDs(ids []ParticleID) string {
	if len(ids) == 0 {
		return "_"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}
