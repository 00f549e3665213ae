package bsp

import (
	"errors"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/bsp/queue"
)

// GraphConfig encapsulates the configuration options for creating graphs.
type GraphConfig struct {
	// QueueFactory is used by the graph to create message queue instances
	// for each vertex that is added to the graph. If not specified, the
	// default in-memory queue will be used instead.
	QueueFactory queue.Factory

	// Program is the vertex program executed by the graph. Its Execute
	// method is invoked for each graph vertex when executing a superStep.
	// A valid VertexProgram instance is required for the config to be valid.
	Program VertexProgram

	// ComputeWorkers specifies the number of workers to use for invoking
	// the program's Execute method when running each superStep. If not
	// specified, a single worker will be used.
	ComputeWorkers int

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// Validate checks whether a graph configuration is valid and sets the default
// values if required.
func (c *GraphConfig) Validate() error {
	var err error

	if c.QueueFactory == nil {
		c.QueueFactory = queue.NewInMemoryQueue
	}

	if c.Program == nil {
		err = multierror.Append(err, errors.New("vertex program not provided"))
	}

	if c.ComputeWorkers <= 0 {
		c.ComputeWorkers = 1
	}

	if c.Logger == nil {
		c.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
