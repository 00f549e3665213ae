package partitioner

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/cograph/graph"
	"github.com/mycok/uPartition/repartition"
	"github.com/mycok/uPartition/report"
	"github.com/mycok/uPartition/service/partition"
)

//go:generate mockgen -package mocks -destination mocks/mock.go github.com/mycok/uPartition/service/partitioner GraphAPI,Reporter
//go:generate mockgen -package mocks -destination mocks/mock_iterator.go github.com/mycok/uPartition/cograph/graph VertexIterator,EdgeIterator

// GraphAPI defines the set of API methods for querying the co-occurrence
// graph store and persisting the partition labels.
type GraphAPI interface {
	// Vertices returns an iterator for the set of vertices whose id's
	// belong to the [fromID, toID) range.
	Vertices(fromID, toID uuid.UUID) (graph.VertexIterator, error)

	// Edges returns an iterator for the set of edges whose source vertex
	// id's belong to the [fromID, toID) range.
	Edges(fromID, toID uuid.UUID) (graph.EdgeIterator, error)

	// UpdateLabel assigns a new partition label to an existing vertex.
	UpdateLabel(id uuid.UUID, label int64) error
}

// Reporter publishes the outcome of a partitioning pass.
type Reporter interface {
	Report(report.Assignments) error
}

// Config defines configurations for the partitioner service.
type Config struct {
	// API for querying the co-occurrence graph store.
	GraphAPI GraphAPI

	// Receives the assignments of every completed pass.
	Reporter Reporter

	// An API for detecting partition assignments for this service.
	PartitionDetector partition.Detector

	// A clock instance for generating time-related events. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The duration between subsequent partitioning passes.
	UpdateInterval time.Duration

	// The number of UUID sub-ranges the graph is loaded in. If not
	// specified, the graph is loaded in a single range.
	LoadPartitions int

	// Settings for the label propagation run.
	Partitioning repartition.Config

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.GraphAPI == nil {
		err = multierror.Append(err, errors.New("graph API not provided"))
	}

	if config.Reporter == nil {
		err = multierror.Append(err, errors.New("reporter not provided"))
	}

	if config.PartitionDetector == nil {
		err = multierror.Append(err, errors.New("partition detector not provided"))
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.UpdateInterval <= 0 {
		err = multierror.Append(err, errors.New("invalid value for update interval"))
	}

	if config.LoadPartitions == 0 {
		config.LoadPartitions = 1
	} else if config.LoadPartitions < 0 {
		err = multierror.Append(err, errors.New("invalid value for load partitions, must be > 0"))
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	if config.Partitioning.EdgeLabel == "" {
		config.Partitioning.EdgeLabel = repartition.DefaultEdgeLabel
	}

	if config.Partitioning.Logger == nil {
		config.Partitioning.Logger = config.Logger
	}

	return err
}
