package partitioner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/bsp"
	"github.com/mycok/uPartition/repartition"
	"github.com/mycok/uPartition/report"
	"github.com/mycok/uPartition/service/partition"
)

type loadedVertex struct {
	key   string
	label int64
}

// Service periodically reassigns the vertices of the co-occurrence graph to
// partitions. It satisfies the service.Service interface.
type Service struct {
	config      Config
	partitioner *repartition.Partitioner

	// Vertices loaded by the current pass keyed by id.
	loaded map[string]loadedVertex

	mu              sync.Mutex
	pendingClusters repartition.Clusters
}

// New creates and returns a fully configured partitioner service instance.
func New(config Config) (*Service, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("partitioner service: config validation failed: %w", err)
	}

	p, err := repartition.NewPartitioner(config.Partitioning)
	if err != nil {
		return nil, fmt.Errorf("partitioner service: %w", err)
	}

	return &Service{
		config:      config,
		partitioner: p,
	}, nil
}

// Name returns the name of the service.
func (svc *Service) Name() string { return "partitioner" }

// SetClusters schedules new cluster descriptors. They are applied at the
// start of the next pass.
func (svc *Service) SetClusters(clusters repartition.Clusters) {
	svc.mu.Lock()
	svc.pendingClusters = clusters.Clone()
	svc.mu.Unlock()
}

// Run executes the service and blocks until the context gets cancelled
// or an error occurs.
func (svc *Service) Run(ctx context.Context) error {
	svc.config.Logger.WithField(
		"update_interval", svc.config.UpdateInterval.String(),
	).Info("started service")
	defer svc.config.Logger.Info("stopped service")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.config.Clock.After(svc.config.UpdateInterval):
			currPartition, _, err := svc.config.PartitionDetector.PartitionInfo()
			if err != nil {
				if errors.Is(err, partition.ErrNoPartitionDataAvailableYet) {
					svc.config.Logger.Warn(
						"deferring partitioning pass: partition data not yet available",
					)

					continue
				}

				return err
			}

			if currPartition != 0 {
				svc.config.Logger.Info(
					"service should only run on the master node of the application cluster",
				)

				return nil
			}

			if err := svc.RunOnce(ctx); err != nil {
				return err
			}
		}
	}
}

// RunOnce performs a single partitioning pass: it loads the graph, runs
// label propagation, persists every changed label and reports the result.
func (svc *Service) RunOnce(ctx context.Context) error {
	svc.config.Logger.Info("started partitioning pass")

	startedAt := svc.config.Clock.Now()

	if err := svc.applyPendingClusters(); err != nil {
		return err
	}

	tick := svc.config.Clock.Now()
	if err := svc.partitioner.Graph().Reset(); err != nil {
		return err
	}

	svc.loaded = make(map[string]loadedVertex)

	r, err := partition.NewFullRange(svc.config.LoadPartitions)
	if err != nil {
		return err
	}

	for i := 0; i < r.NumOfPartitions(); i++ {
		fromID, toID, err := r.PartitionRange(i)
		if err != nil {
			return err
		}

		if err := svc.loadVertices(fromID, toID); err != nil {
			return err
		}
	}

	for i := 0; i < r.NumOfPartitions(); i++ {
		fromID, toID, _ := r.PartitionRange(i)
		if err := svc.loadEdges(fromID, toID); err != nil {
			return err
		}
	}
	graphPopulationDuration := svc.config.Clock.Now().Sub(tick)

	tick = svc.config.Clock.Now()
	res, err := svc.partitioner.Partition(ctx)
	if err != nil {
		return err
	}
	partitioningDuration := svc.config.Clock.Now().Sub(tick)

	tick = svc.config.Clock.Now()
	entries := make([]report.Assignment, 0, len(svc.loaded))
	var updated int
	err = svc.partitioner.Labels(func(id string, label int64) error {
		v := svc.loaded[id]
		entries = append(entries, report.Assignment{VertexID: id, Key: v.key, Label: label})

		if v.label == label {
			return nil
		}

		updated++

		return svc.persistLabel(id, label)
	})
	if err != nil {
		return err
	}
	labelPersistenceDuration := svc.config.Clock.Now().Sub(tick)

	summary := report.NewSummary(res.SuperSteps, res.Converged, res.Sizes)
	if err := svc.config.Reporter.Report(report.NewAssignments(summary, entries)); err != nil {
		return err
	}

	svc.config.Logger.WithFields(logrus.Fields{
		"processed_vertices":         len(svc.loaded),
		"updated_labels":             updated,
		"super_steps":                res.SuperSteps,
		"converged":                  res.Converged,
		"graph_population_duration":  graphPopulationDuration,
		"partitioning_duration":      partitioningDuration,
		"label_persistence_duration": labelPersistenceDuration,
		"total_processing_time":      svc.config.Clock.Now().Sub(startedAt),
	}).Info("completed partitioning pass")

	return nil
}

func (svc *Service) applyPendingClusters() error {
	svc.mu.Lock()
	clusters := svc.pendingClusters
	svc.pendingClusters = nil
	svc.mu.Unlock()

	if clusters == nil {
		return nil
	}

	if err := svc.partitioner.SetClusters(clusters); err != nil {
		return fmt.Errorf("apply cluster descriptors: %w", err)
	}

	svc.config.Logger.WithField("clusters", len(clusters)).Info("applied new cluster descriptors")

	return nil
}

func (svc *Service) persistLabel(vertexID string, label int64) error {
	id, err := uuid.Parse(vertexID)
	if err != nil {
		return err
	}

	return svc.config.GraphAPI.UpdateLabel(id, label)
}

func (svc *Service) loadVertices(fromID, toID uuid.UUID) error {
	vertexIt, err := svc.config.GraphAPI.Vertices(fromID, toID)
	if err != nil {
		return err
	}

	for vertexIt.Next() {
		v := vertexIt.Vertex()
		id := v.ID.String()

		svc.partitioner.AddVertex(id, v.Label)
		svc.loaded[id] = loadedVertex{key: v.Key, label: v.Label}
	}

	if err := vertexIt.Error(); err != nil {
		_ = vertexIt.Close()

		return err
	}

	return vertexIt.Close()
}

func (svc *Service) loadEdges(fromID, toID uuid.UUID) error {
	edgeIt, err := svc.config.GraphAPI.Edges(fromID, toID)
	if err != nil {
		return err
	}

	for edgeIt.Next() {
		e := edgeIt.Edge()
		if e.Label != svc.config.Partitioning.EdgeLabel {
			continue
		}

		err := svc.partitioner.AddEdge(e.Src.String(), e.Dest.String(), e.Weight)
		if err != nil {
			// Edges may reference vertices created after the vertex pass.
			if !errors.Is(err, bsp.ErrUnknownEdgeSource) && !errors.Is(err, bsp.ErrUnknownEdgeDestination) {
				_ = edgeIt.Close()

				return err
			}
		}
	}

	if err := edgeIt.Error(); err != nil {
		_ = edgeIt.Close()

		return err
	}

	return edgeIt.Close()
}
