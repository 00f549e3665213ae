package repartition

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxIterations is the default cap on the number of super steps
	// that follow the setup super step.
	DefaultMaxIterations = 30

	// DefaultClusterCount is the number of partitions used when neither a
	// cluster count nor cluster descriptors are configured.
	DefaultClusterCount = 16

	// DefaultAcquireLabelProbability is the default per-round probability
	// of a vertex attempting a migration.
	DefaultAcquireLabelProbability = 0.5

	// DefaultEdgeLabel is the label of the edges that carry co-occurrence
	// counts.
	DefaultEdgeLabel = "queriedTogether"
)

// Config encapsulates the settings for configuring the partitioner.
//
// Zero values of MaxIterations and ClusterCount select a default, so a run
// cannot be capped at zero iterations and an unset cluster count is derived
// rather than rejected; negative values are rejected. A zero
// AcquireLabelProbability is taken literally and disables migrations.
// DefaultConfig returns a Config with every default filled in.
type Config struct {
	// The maximum number of super steps to run after the setup super step.
	// Zero selects DefaultMaxIterations.
	MaxIterations int

	// The number of partitions. It also normalizes the partition usage
	// when checking for available capacity. Zero selects the number of
	// cluster descriptors, or DefaultClusterCount when running with mocked
	// partitions and no descriptors.
	ClusterCount int

	// The probability in [0, 1] of a vertex attempting to acquire the
	// majority label of its neighborhood in each round. Unlike the other
	// fields zero is not replaced by DefaultAcquireLabelProbability.
	AcquireLabelProbability float64

	// The initial capacity and usage of each partition. Required unless
	// MockedPartitions is set.
	Clusters Clusters

	// MockedPartitions assigns a random initial label to every vertex
	// instead of relying on externally seeded labels. Meant for tests.
	MockedPartitions bool

	// The label of the edges that carry co-occurrence counts. If not
	// specified, DefaultEdgeLabel is used.
	EdgeLabel string

	// The number of workers to spin up for executing each super step. If
	// not specified, a single worker is used.
	ComputeWorkers int

	// Seed for the per-vertex random sources. If not specified, a time based
	// seed is used.
	Seed int64

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// DefaultConfig returns a Config populated with the default settings.
func DefaultConfig() Config {
	return Config{
		MaxIterations:           DefaultMaxIterations,
		AcquireLabelProbability: DefaultAcquireLabelProbability,
		EdgeLabel:               DefaultEdgeLabel,
		ComputeWorkers:          1,
	}
}

func (cfg *Config) validate() error {
	var err error

	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	} else if cfg.MaxIterations < 0 {
		err = multierror.Append(err, errors.New("invalid value for max iterations, must not be negative"))
	}

	if cfg.ClusterCount == 0 {
		if len(cfg.Clusters) != 0 {
			cfg.ClusterCount = len(cfg.Clusters)
		} else {
			cfg.ClusterCount = DefaultClusterCount
		}
	} else if cfg.ClusterCount < 0 {
		err = multierror.Append(err, errors.New("invalid value for cluster count, must be > 0"))
	}

	p := cfg.AcquireLabelProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		err = multierror.Append(err, fmt.Errorf("invalid value for acquire label probability %v, must be within [0, 1]", p))
	}

	if !cfg.MockedPartitions && len(cfg.Clusters) == 0 {
		err = multierror.Append(err, errors.New("cluster descriptors not provided"))
	}

	for _, label := range cfg.Clusters.Labels() {
		if cfg.Clusters[label].Capacity < 0 {
			err = multierror.Append(err, fmt.Errorf("cluster %d: capacity must not be negative", label))
		}
	}

	if cfg.EdgeLabel == "" {
		cfg.EdgeLabel = DefaultEdgeLabel
	}

	if cfg.ComputeWorkers <= 0 {
		cfg.ComputeWorkers = 1
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
