// SPDX-License-Identifier: MIT
// Package: feynman/generator
//
// generator.go: stochastic diagram growth.
//
// Algorithm (one Generate call):
//  1. Create the two inputs and two outputs, attach each to its origin
//     vertex, and put all four in the unlinked pool.
//  2. While the pool is not empty: take a uniformly random particle p.
//     If p has no source, sample a variant from p.Kind().PossibleFromVertices()
//     and put p in the first output slot of its kind; otherwise sample from
//     PossibleToVertices() and use the first input slot.
//  3. Fill the remaining outputs with pooled particles lacking a source and
//     the remaining inputs with pooled particles lacking a destination. Each
//     slot mints a new virtual particle if nothing is eligible, or with
//     probability mintWeight / virtualCount (1 when there are no virtuals).
//  4. Construct the vertex; every particle of the vertex that still has an
//     unset end (the freshly minted ones) goes back to the pool.
//  5. Assemble and freeze a core.Diagram.
//
// Complexity: each slot scans the pool, O(|pool|·log|pool|) per slot.

package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/feynman/core"
	"github.com/katalvlaran/feynman/metrics"
)

// Generator draws random tree-level and loop diagrams for a fixed
// two-in/two-out process. It is not safe for concurrent use: the random
// source is shared by every Generate call.
type Generator struct {
	cfg     genConfig
	inputs  [2]core.Kind
	outputs [2]core.Kind
}

// New creates a generator. Input kinds are drawn uniformly unless
// WithInputKinds is given; the outputs are the inputs in the same or
// reversed order with probability 1/2 each.
func New(opts ...Option) *Generator {
	cfg := newConfig(opts...)
	g := &Generator{cfg: cfg}
	if cfg.inputKinds != nil {
		g.inputs = *cfg.inputKinds
	} else {
		g.inputs = [2]core.Kind{randomKind(cfg), randomKind(cfg)}
	}
	if cfg.rng.Float64() < 0.5 {
		g.outputs = g.inputs
	} else {
		g.outputs = [2]core.Kind{g.inputs[1], g.inputs[0]}
	}
	return g
}

func randomKind(cfg genConfig) core.Kind {
	return core.Kinds[cfg.rng.Intn(len(core.Kinds))]
}

// InputKinds returns the incoming particle kinds in creation order.
func (g *Generator) InputKinds() [2]core.Kind { return g.inputs }

// OutputKinds returns the outgoing particle kinds in creation order.
func (g *Generator) OutputKinds() [2]core.Kind { return g.outputs }

// Generate grows one diagram. Repeated calls are independent and each uses
// a fresh store; with WithSeed the sequence of diagrams is reproducible.
// On error no diagram is returned.
func (g *Generator) Generate() (*core.Diagram, error) {
	r := &run{
		cfg:   g.cfg,
		store: core.NewStore(),
		pool:  newPool(),
		log:   g.cfg.logger.With("run", uuid.NewString()),
	}
	d, err := r.execute(g.inputs, g.outputs)
	g.observe(r, err)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// observe records the outcome of r in the configured collectors.
func (g *Generator) observe(r *run, err error) {
	m := g.cfg.metrics
	if m == nil {
		return
	}
	m.Reused.Add(float64(r.reused))
	m.Minted.Add(float64(len(r.virtuals)))
	switch {
	case err == nil:
		m.Diagrams.Inc()
		m.Iterations.Observe(float64(r.iterations))
		m.Virtuals.Observe(float64(len(r.virtuals)))
	case errors.Is(err, ErrIterationLimit):
		m.Failures.WithLabelValues(metrics.ReasonIterationLimit).Inc()
	case errors.Is(err, ErrFullyLinkedParticle), errors.Is(err, ErrNoSlot):
		m.Failures.WithLabelValues(metrics.ReasonInvariant).Inc()
	default:
		m.Failures.WithLabelValues(metrics.ReasonConstruct).Inc()
	}
}

// run is the mutable state of a single Generate call.
type run struct {
	cfg        genConfig
	store      *core.Store
	pool       *pool
	log        *slog.Logger
	inputs     []core.ParticleID
	outputs    []core.ParticleID
	virtuals   []core.ParticleID
	vertices   []core.VertexID
	iterations int
	reused     int
}

func (r *run) execute(inKinds, outKinds [2]core.Kind) (*core.Diagram, error) {
	const method = "Generate"
	for _, k := range inKinds {
		id, err := r.external(k, core.IncomingVertex)
		if err != nil {
			return nil, fmt.Errorf("%s: input %s: %w", method, k, err)
		}
		r.inputs = append(r.inputs, id)
	}
	for _, k := range outKinds {
		id, err := r.external(k, core.OutgoingVertex)
		if err != nil {
			return nil, fmt.Errorf("%s: output %s: %w", method, k, err)
		}
		r.outputs = append(r.outputs, id)
	}

	for r.pool.len() > 0 {
		if r.iterations >= r.cfg.maxIterations {
			return nil, fmt.Errorf("%s: %d iterations, %d particles unlinked: %w",
				method, r.iterations, r.pool.len(), ErrIterationLimit)
		}
		r.iterations++
		pid, _ := r.pool.takeAt(r.cfg.rng.Intn(r.pool.len()))
		if err := r.grow(pid); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", method, r.iterations, err)
		}
	}

	d, err := core.NewDiagram(r.store, r.inputs, r.outputs, r.virtuals, r.vertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	r.log.Debug("diagram complete",
		"iterations", r.iterations,
		"virtuals", len(r.virtuals),
		"vertices", len(r.vertices))
	return d, nil
}

// external creates an on-shell particle of kind attached to a new origin
// vertex and pools it.
func (r *run) external(kind core.Kind, origin core.VertexKind) (core.ParticleID, error) {
	id, err := r.store.NewParticle(kind)
	if err != nil {
		return 0, err
	}
	if _, err = r.store.ConstructVertex(origin, id); err != nil {
		return 0, err
	}
	r.pool.add(id)
	return id, nil
}

// grow builds one inner vertex around pid.
func (r *run) grow(pid core.ParticleID) error {
	p, err := r.store.Particle(pid)
	if err != nil {
		return err
	}
	var (
		asOutput   bool
		candidates []core.VertexKind
	)
	switch {
	case !p.HasFrom():
		asOutput, candidates = true, p.Kind().PossibleFromVertices()
	case !p.HasTo():
		asOutput, candidates = false, p.Kind().PossibleToVertices()
	default:
		return fmt.Errorf("%s: %w", r.store.DescribeParticle(pid), ErrFullyLinkedParticle)
	}
	vk := candidates[r.cfg.rng.Intn(len(candidates))]
	r.trace("chosen particle", "particle", r.store.DescribeParticle(pid), "variant", vk)
	return r.attach(p, vk, asOutput)
}

// attach builds a vertex of variant vk with p in its first output slot of
// p's kind (asOutput) or first input slot, sampling the other slots.
func (r *run) attach(p *core.Particle, vk core.VertexKind, asOutput bool) error {
	pid := p.ID()
	chosen := []core.ParticleID{pid}
	placed := false
	fill := func(kinds []core.Kind, own bool, needFrom bool) ([]core.ParticleID, error) {
		ids := make([]core.ParticleID, 0, len(kinds))
		for _, k := range kinds {
			if own && !placed && k == p.Kind() {
				ids = append(ids, pid)
				placed = true
				continue
			}
			q, err := r.sample(k, needFrom, chosen)
			if err != nil {
				return nil, err
			}
			chosen = append(chosen, q)
			ids = append(ids, q)
		}
		return ids, nil
	}

	outs, err := fill(vk.Outputs(), asOutput, true)
	if err != nil {
		return err
	}
	ins, err := fill(vk.Inputs(), !asOutput, false)
	if err != nil {
		return err
	}
	if !placed {
		return fmt.Errorf("%s in %s: %w", p.Kind(), vk, ErrNoSlot)
	}

	vid, err := r.store.ConstructVertex(vk, append(ins, outs...)...)
	if err != nil {
		return err
	}
	r.vertices = append(r.vertices, vid)
	for _, id := range chosen {
		if q, _ := r.store.Particle(id); q.Linked() {
			r.pool.remove(id)
		} else {
			r.pool.add(id)
		}
	}
	if m := r.cfg.metrics; m != nil {
		m.Vertices.WithLabelValues(vk.String()).Inc()
	}
	r.trace("new vertex", "vertex", r.store.DescribeVertex(vid), "unlinked", r.pool.len())
	return nil
}

// sample fills one slot of kind. needFrom selects particles whose source is
// unset (output slots); otherwise particles whose destination is unset.
func (r *run) sample(kind core.Kind, needFrom bool, exclude []core.ParticleID) (core.ParticleID, error) {
	eligible := r.pool.eligible(r.store, kind, needFrom, exclude)
	if len(eligible) == 0 || r.cfg.rng.Float64() < r.mintProbability() {
		id, err := r.store.NewParticle(kind)
		if err != nil {
			return 0, err
		}
		r.virtuals = append(r.virtuals, id)
		r.trace("minted virtual", "particle", r.store.DescribeParticle(id))
		return id, nil
	}
	id := eligible[r.cfg.rng.Intn(len(eligible))]
	r.pool.remove(id)
	r.reused++
	return id, nil
}

// mintProbability is mintWeight / virtualCount, or 1 with no virtuals yet.
func (r *run) mintProbability() float64 {
	if len(r.virtuals) == 0 {
		return 1
	}
	return r.cfg.mintWeight / float64(len(r.virtuals))
}

func (r *run) trace(msg string, args ...any) {
	if !r.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	r.log.Debug(msg, append(args, "pool", r.pool.ids())...)
}
