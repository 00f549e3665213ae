package bsp

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ExecutorCallbacks encapsulates a series of callbacks that are invoked by an
// Executor instance on a graph. All callbacks are optional and will be ignored
// if not specified.
type ExecutorCallbacks struct {
	// PreStep, if defined, is invoked before executing a super step.
	PreStep func(ctx context.Context, g *Graph) error

	// PostStep, if defined, is invoked after the barrier of a super step
	// and before the program's Terminate method.
	PostStep func(ctx context.Context, g *Graph, activeInStep int) error

	// ShouldRunAnotherStep if defined, is invoked after the program's
	// Terminate method voted to continue. Returning false stops the run
	// even though the program did not vote to halt.
	ShouldRunAnotherStep func(
		ctx context.Context, g *Graph, activeInStep int,
	) (bool, error)
}

func initWithDefaultCallbacks(cb *ExecutorCallbacks) {
	if cb.PreStep == nil {
		cb.PreStep = func(ctx context.Context, g *Graph) error {
			return nil
		}
	}

	if cb.PostStep == nil {
		cb.PostStep = func(ctx context.Context, g *Graph, activeInStep int) error {
			return nil
		}
	}

	if cb.ShouldRunAnotherStep == nil {
		cb.ShouldRunAnotherStep = func(
			ctx context.Context, g *Graph, activeInStep int,
		) (bool, error) {

			return true, nil
		}
	}
}

// ExecutorFactory is a function that creates new Executor instances.
// Note: Should be used for cases where lazy object creation is desired.
type ExecutorFactory func(g *Graph, cb ExecutorCallbacks) *Executor

// Executor serves as an orchestration layer for execution of super steps until
// an error occurs or an exit condition is met.
//
// An Executor drives the graph through the following states:
//
//	Created -> Setup -> Executing(i) -> Barrier(i) -> {Executing(i+1) | Terminated}
//
// Clients can provide an optional set of callbacks to be executed before and
// after each super-step.
type Executor struct {
	g       *Graph
	cbs     ExecutorCallbacks
	started bool
	halted  bool
}

// NewExecutor initializes and returns an Executor instance.
func NewExecutor(g *Graph, cbs ExecutorCallbacks) *Executor {
	initWithDefaultCallbacks(&cbs)
	g.superStep = 0

	return &Executor{
		g:   g,
		cbs: cbs,
	}
}

// Graph returns the graph instance associated with this executor.
func (ex *Executor) Graph() *Graph {
	return ex.g
}

// SuperStep returns the last executed graph super step.
func (ex *Executor) SuperStep() int {
	return ex.g.SuperStep()
}

// Halted returns true if the last run stopped because the vertex program
// voted to terminate.
func (ex *Executor) Halted() bool {
	return ex.halted
}

// RunToCompletion runs super steps until either the context expires, an
// error occurs, the program votes to terminate or the ShouldRunAnotherStep
// callback returns false.
func (ex *Executor) RunToCompletion(ctx context.Context) error {
	return ex.run(ctx, -1)
}

// RunSteps executes at most numOfSteps super steps unless the context
// expires, an error occurs, the program votes to terminate or the
// ShouldRunAnotherStep callback returns false.
func (ex *Executor) RunSteps(ctx context.Context, numOfSteps int) error {
	return ex.run(ctx, numOfSteps)
}

// Run executes the setup super step followed by at most maxIterations
// super steps. A run therefore never completes more than maxIterations+1
// super steps.
func (ex *Executor) Run(ctx context.Context, maxIterations int) error {
	if maxIterations < 0 {
		return errors.New("max iterations must be >= 0")
	}

	return ex.run(ctx, maxIterations+1)
}

func (ex *Executor) run(ctx context.Context, maxSteps int) error {
	var (
		activeInStep int
		err          error
		shouldRun    bool
		halt         bool
		cbs          = ex.cbs
	)

	ex.halted = false

	for ; maxSteps != 0; maxSteps-- {
		if err = ensureContextNotExpired(ctx); err != nil {
			break
		}

		if ex.started {
			ex.g.advance()
		} else if err = ex.g.setup(); err != nil {
			break
		} else {
			ex.started = true
		}

		if err = cbs.PreStep(ctx, ex.g); err != nil {
			break
		} else if activeInStep, err = ex.g.step(); err != nil {
			break
		} else if err = cbs.PostStep(ctx, ex.g, activeInStep); err != nil {
			break
		}

		ex.g.logger.WithFields(logrus.Fields{
			"super_step":       ex.g.superStep,
			"active_vertices":  activeInStep,
			"aborted_vertices": ex.g.abortedVertices(),
		}).Debug("completed super step")

		if halt, err = ex.g.program.Terminate(ex.g.memory); err != nil {
			break
		} else if halt {
			ex.halted = true

			break
		}

		if shouldRun, err = cbs.ShouldRunAnotherStep(
			ctx, ex.g,
			activeInStep,
		); !shouldRun || err != nil {
			break
		}
	}

	return err
}

func ensureContextNotExpired(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
