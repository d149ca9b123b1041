// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/feynman/bfs"
	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/dfs"
	"github.com/katalvlaran/feynman/matrix"
	"github.com/katalvlaran/feynman/stats"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	originColor   = color.New(color.FgYellow)
	virtualColor  = color.New(color.FgMagenta)
	labelColor    = color.New(color.Faint)
	metricsHeader = color.New(color.FgGreen, color.Bold)
)

func kindList(kinds [2]core.Kind) string {
	return kinds[0].Symbol() + " " + kinds[1].Symbol()
}

func printProcess(w io.Writer, in, out [2]core.Kind) {
	headerColor.Fprintf(w, "process: %s -> %s\n", kindList(in), kindList(out))
}

// printDiagram lists vertices (origins first) and particles of d.
func printDiagram(w io.Writer, n int, d *core.Diagram) error {
	m, err := stats.Measure(d)
	if err != nil {
		return err
	}
	headerColor.Fprintf(w, "diagram %d", n)
	labelColor.Fprintf(w, "  particles=%d virtuals=%d vertices=%d loops=%d components=%d\n",
		m.Particles, m.Virtuals, m.Vertices, m.Loops, m.Components)
	if am, err := matrix.NewAdjacency(d); err == nil {
		labelColor.Fprintf(w, "  spanning trees=%d\n", am.SpanningTrees())
	}
	if order, err := dfs.TopologicalSort(d); err == nil {
		fmt.Fprintf(w, "  time order: %v\n", order)
	} else {
		labelColor.Fprintf(w, "  time order: none (%d flow cycles)\n", m.FlowCycles)
	}

	s := d.Store()
	fmt.Fprintln(w, "  vertices:")
	for _, v := range d.OriginVertices() {
		originColor.Fprintf(w, "    %s\n", s.DescribeVertex(v))
	}
	for _, v := range d.Vertices() {
		fmt.Fprintf(w, "    %s\n", s.DescribeVertex(v))
	}
	fmt.Fprintln(w, "  particles:")
	for _, p := range append(d.Inputs(), d.Outputs()...) {
		originColor.Fprintf(w, "    %s\n", s.DescribeParticle(p))
	}
	for _, p := range d.Virtuals() {
		virtualColor.Fprintf(w, "    %s\n", s.DescribeParticle(p))
	}

	if comps, err := bfs.Components(d); err == nil && len(comps) > 1 {
		labelColor.Fprintf(w, "  disconnected: %d pieces\n", len(comps))
	}
	return nil
}

func printSummary(w io.Writer, sum stats.Summary) {
	headerColor.Fprintf(w, "diagrams: %d\n", sum.N)
	fmt.Fprintf(w, "  time-ordered: %d\n", sum.TimeOrdered)
	row := func(name string, m stats.Moments) {
		fmt.Fprintf(w, "  %-15s mean=%7.3f sd=%7.3f median=%5.1f min=%4.0f max=%4.0f\n",
			name, m.Mean, m.StdDev, m.Median, m.Min, m.Max)
	}
	row("virtuals", sum.Virtuals)
	row("inner vertices", sum.InnerVertices)
	row("loops", sum.Loops)

	fmt.Fprintln(w, "  loop orders:")
	orders := make([]int, 0, len(sum.LoopOrders))
	for k := range sum.LoopOrders {
		orders = append(orders, k)
	}
	sort.Ints(orders)
	for _, k := range orders {
		fmt.Fprintf(w, "    %2d: %d\n", k, sum.LoopOrders[k])
	}

	fmt.Fprintln(w, "  variants:")
	for _, vk := range core.InnerVertexKinds {
		fmt.Fprintf(w, "    %-22s %d\n", vk, sum.Variants[vk])
	}
}

// printMetrics dumps every gathered sample of reg in a flat text form.
func printMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	metricsHeader.Fprintln(w, "metrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName() + labels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(w, "  %s %g\n", name, m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				fmt.Fprintf(w, "  %s count=%d sum=%g\n", name, h.GetSampleCount(), h.GetSampleSum())
			case dto.MetricType_GAUGE:
				fmt.Fprintf(w, "  %s %g\n", name, m.GetGauge().GetValue())
			}
		}
	}
	return nil
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, lp := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
