package repartition

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/bsp"
)

// Result summarizes a partitioning run.
type Result struct {
	// The number of super steps that were executed, including the setup
	// super step.
	SuperSteps int

	// Converged is true when every vertex voted to halt before the
	// iteration cap was reached.
	Converged bool

	// The number of vertices assigned to each partition.
	Sizes map[int64]int
}

// Partitioner groups the vertices of a co-occurrence graph into partitions
// of bounded size so that vertices which are frequently accessed together
// end up in the same partition.
type Partitioner struct {
	g               *bsp.Graph
	cfg             Config
	executorFactory bsp.ExecutorFactory
}

// NewPartitioner returns a new Partitioner instance using the provided
// config options.
func NewPartitioner(cfg Config) (*Partitioner, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("partitioner config validation failed: %w", err)
	}

	p := &Partitioner{
		cfg:             cfg,
		executorFactory: bsp.NewExecutor,
	}

	g, err := bsp.NewGraph(bsp.GraphConfig{
		ComputeWorkers: cfg.ComputeWorkers,
		Program:        newProgram(&p.cfg),
		Logger:         cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	p.g = g

	return p, nil
}

// Graph returns the underlying Graph instance.
func (p *Partitioner) Graph() *bsp.Graph {
	return p.g
}

// Close frees up any allocated graph resources.
func (p *Partitioner) Close() error {
	return p.g.Close()
}

// SetExecutorFactory sets a custom executor factory for the partitioner.
func (p *Partitioner) SetExecutorFactory(factory bsp.ExecutorFactory) {
	p.executorFactory = factory
}

// SetClusters replaces the cluster descriptors used by the next run. The
// cluster count is re-derived from the number of descriptors.
func (p *Partitioner) SetClusters(clusters Clusters) error {
	cfg := p.cfg
	cfg.Clusters = clusters.Clone()
	if len(clusters) != 0 {
		cfg.ClusterCount = len(clusters)
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	p.cfg = cfg

	return nil
}

// AddVertex inserts a vertex with the provided initial label into the
// graph. If the vertex already exists its label is reset.
func (p *Partitioner) AddVertex(id string, label int64) {
	p.g.AddVertex(id, newVertexState(p.cfg.Seed, id, label))
}

// AddEdge records weight co-occurrences between src and dst. Co-occurrence
// is symmetric, so adding an edge between two already connected vertices
// increases the weight of the existing edge regardless of its direction.
// Self-loops are ignored.
func (p *Partitioner) AddEdge(src, dst string, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("edge %q -> %q: %w", src, dst, ErrNegativeWeight)
	}

	if src == dst {
		return nil
	}

	if v := p.g.Vertex(src); v != nil {
		if e, found := v.EdgeTo(dst, bsp.Both, p.cfg.EdgeLabel); found {
			w, err := edgeWeight(e)
			if err != nil {
				return err
			}

			e.SetValue(w + weight)

			return nil
		}
	}

	return p.g.AddEdge(src, dst, p.cfg.EdgeLabel, weight)
}

// Label returns the current label of the vertex with the provided id.
func (p *Partitioner) Label(id string) (int64, bool) {
	v := p.g.Vertex(id)
	if v == nil {
		return 0, false
	}

	return v.Value().(*vertexState).label, true
}

// Labels invokes the provided visitor function for each vertex in the
// graph.
func (p *Partitioner) Labels(visitFn func(id string, label int64) error) error {
	for id, v := range p.g.Vertices() {
		if err := visitFn(id, v.Value().(*vertexState).label); err != nil {
			return err
		}
	}

	return nil
}

// Clusters returns the cluster descriptors committed at the end of the last
// run, or nil if no run has completed yet.
func (p *Partitioner) Clusters() Clusters {
	clusters, _ := p.g.Memory().Get(clustersKey).(Clusters)

	return clusters.Clone()
}

// Partition runs the label propagation program until every vertex votes to
// halt, the iteration cap is reached or ctx is cancelled.
func (p *Partitioner) Partition(ctx context.Context) (Result, error) {
	exec := p.executorFactory(p.g, bsp.ExecutorCallbacks{})
	if err := exec.Run(ctx, p.cfg.MaxIterations); err != nil {
		return Result{}, err
	}

	res := Result{
		SuperSteps: exec.SuperStep() + 1,
		Converged:  exec.Halted(),
		Sizes:      make(map[int64]int),
	}

	for _, v := range p.g.Vertices() {
		res.Sizes[v.Value().(*vertexState).label]++
	}

	p.cfg.Logger.WithFields(logrus.Fields{
		"super_steps": res.SuperSteps,
		"converged":   res.Converged,
	}).Info("partitioning run completed")

	return res, nil
}
