package bsp_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/bsp"
	"github.com/mycok/uPartition/bsp/aggregator"
)

var _ = check.Suite(new(bspGraphTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

var bothScope = bsp.MessageScope{EdgeLabel: "link", Direction: bsp.Both}

type bspGraphTestSuite struct{}

func (s *bspGraphTestSuite) TestMessageExchange(c *check.C) {
	g := s.newGraph(c, 1, &testProgram{
		scopes: []bsp.MessageScope{bothScope},
		executeFn: func(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
			if mem.Iteration() == 0 {
				return msgr.SendMessage(bothScope, intMsg{value: v.Value().(int) + 10})
			}

			for it := msgr.ReceiveMessages(); it.Next(); {
				v.SetValue(it.Message().(intMsg).value)
			}

			return nil
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("0", 0)
	g.AddVertex("1", 1)
	c.Assert(g.AddEdge("0", "1", "link", nil), check.IsNil)

	c.Assert(executeFixedSteps(g, 2), check.IsNil)

	// Messages travel both along and against the edge direction.
	c.Assert(g.Vertex("0").Value(), check.Equals, 11)
	c.Assert(g.Vertex("1").Value(), check.Equals, 10)
}

func (s *bspGraphTestSuite) TestMessageScopeFiltersEdgesByLabelAndDirection(c *check.C) {
	outScope := bsp.MessageScope{EdgeLabel: "link", Direction: bsp.Out}

	g := s.newGraph(c, 2, &testProgram{
		scopes: []bsp.MessageScope{outScope},
		executeFn: func(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
			if mem.Iteration() == 0 && v.ID() == "0" {
				return msgr.SendMessage(outScope, intMsg{value: 11})
			}

			for it := msgr.ReceiveMessages(); it.Next(); {
				v.SetValue(it.Message().(intMsg).value)
			}

			return nil
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	for i := 0; i < 4; i++ {
		g.AddVertex(fmt.Sprint(i), 0)
	}

	c.Assert(g.AddEdge("0", "1", "link", nil), check.IsNil)
	c.Assert(g.AddEdge("0", "2", "other", nil), check.IsNil)
	c.Assert(g.AddEdge("3", "0", "link", nil), check.IsNil)

	c.Assert(executeFixedSteps(g, 2), check.IsNil)

	c.Assert(g.Vertex("1").Value(), check.Equals, 11)
	c.Assert(g.Vertex("2").Value(), check.Equals, 0, check.Commentf("edge label not filtered"))
	c.Assert(g.Vertex("3").Value(), check.Equals, 0, check.Commentf("edge direction not filtered"))
}

func (s *bspGraphTestSuite) TestMessagesAreOnlyVisibleInTheNextSuperStep(c *check.C) {
	received := make(map[int]int)

	g := s.newGraph(c, 1, &testProgram{
		scopes: []bsp.MessageScope{bothScope},
		executeFn: func(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
			for it := msgr.ReceiveMessages(); it.Next(); {
				if v.ID() == "1" {
					received[mem.Iteration()] = it.Message().(intMsg).value
				}
			}

			if v.ID() == "0" {
				return msgr.SendMessage(bothScope, intMsg{value: mem.Iteration()})
			}

			return nil
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	// Vertex "0" is dispatched first, so an in-round delivery would be
	// observed by vertex "1" within the same super step.
	g.AddVertex("0", nil)
	g.AddVertex("1", nil)
	c.Assert(g.AddEdge("0", "1", "link", nil), check.IsNil)

	c.Assert(executeFixedSteps(g, 3), check.IsNil)
	c.Assert(received, check.DeepEquals, map[int]int{1: 0, 2: 1})
}

func (s *bspGraphTestSuite) TestUndeclaredScope(c *check.C) {
	g := s.newGraph(c, 1, &testProgram{
		executeFn: func(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
			return msgr.SendMessage(bothScope, intMsg{})
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("0", nil)

	err := executeFixedSteps(g, 1)
	c.Assert(errors.Is(err, bsp.ErrUndeclaredScope), check.Equals, true)
}

func (s *bspGraphTestSuite) TestMemoryAggregationWithManyWorkers(c *check.C) {
	offset := int64(5)

	g := s.newGraph(c, 4, &testProgram{
		keys: []bsp.MemoryKey{{Name: "counter", Combinator: aggregator.IntSum{}}},
		setupFn: func(mem *bsp.Memory) error {
			return mem.Set("counter", offset)
		},
		executeFn: func(v *bsp.Vertex, _ bsp.Messenger, mem bsp.VertexMemory) error {
			// Reads always observe the value committed at the last barrier.
			v.SetValue(mem.Get("counter"))

			return mem.Add("counter", int64(1))
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	numOfVertices := 1000
	for i := 0; i < numOfVertices; i++ {
		g.AddVertex(fmt.Sprint(i), nil)
	}

	c.Assert(executeFixedSteps(g, 2), check.IsNil)

	c.Assert(g.Memory().Get("counter"), check.Equals, offset+2*int64(numOfVertices))
	for id, v := range g.Vertices() {
		c.Assert(v.Value(), check.Equals, offset+int64(numOfVertices), check.Commentf("vertex %v", id))
	}
}

func (s *bspGraphTestSuite) TestMemoryContributionsAreFoldedInVertexOrder(c *check.C) {
	g := s.newGraph(c, 8, &testProgram{
		keys: []bsp.MemoryKey{{Name: "last", Combinator: lastWriter{}}},
		executeFn: func(v *bsp.Vertex, _ bsp.Messenger, mem bsp.VertexMemory) error {
			return mem.Add("last", v.ID())
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	for i := 0; i < 100; i++ {
		g.AddVertex(fmt.Sprint(i), nil)
	}

	c.Assert(executeFixedSteps(g, 1), check.IsNil)
	c.Assert(g.Memory().Get("last"), check.Equals, "99")
}

func (s *bspGraphTestSuite) TestVoteToHaltTerminatesTheRun(c *check.C) {
	var steps int

	g := s.newGraph(c, 2, &testProgram{
		keys: []bsp.MemoryKey{{Name: "halt", Combinator: aggregator.BoolAnd{}}},
		setupFn: func(mem *bsp.Memory) error {
			return mem.Set("halt", true)
		},
		executeFn: func(v *bsp.Vertex, _ bsp.Messenger, mem bsp.VertexMemory) error {
			// Every vertex agrees to halt at super step 3.
			return mem.Add("halt", mem.Iteration() >= 3)
		},
		terminateFn: func(mem *bsp.Memory) (bool, error) {
			steps++
			if mem.Get("halt").(bool) {
				return true, nil
			}

			return false, mem.Set("halt", true)
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	for i := 0; i < 10; i++ {
		g.AddVertex(fmt.Sprint(i), nil)
	}

	exec := bsp.NewExecutor(g, bsp.ExecutorCallbacks{})
	c.Assert(exec.Run(context.TODO(), 100), check.IsNil)
	c.Assert(exec.Halted(), check.Equals, true)
	c.Assert(exec.SuperStep(), check.Equals, 3)
	c.Assert(steps, check.Equals, 4)
}

func (s *bspGraphTestSuite) TestIterationCap(c *check.C) {
	var steps int

	g := s.newGraph(c, 1, &testProgram{
		executeFn: func(*bsp.Vertex, bsp.Messenger, bsp.VertexMemory) error { return nil },
		terminateFn: func(*bsp.Memory) (bool, error) {
			steps++

			return false, nil
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("0", nil)

	maxIterations := 3
	exec := bsp.NewExecutor(g, bsp.ExecutorCallbacks{})
	c.Assert(exec.Run(context.TODO(), maxIterations), check.IsNil)
	c.Assert(exec.Halted(), check.Equals, false)
	c.Assert(exec.SuperStep(), check.Equals, maxIterations)
	c.Assert(steps, check.Equals, maxIterations+1)
}

func (s *bspGraphTestSuite) TestAbortedVertexContributionIsDiscarded(c *check.C) {
	g := s.newGraph(c, 4, &testProgram{
		keys:   []bsp.MemoryKey{{Name: "counter", Combinator: aggregator.IntSum{}}},
		scopes: []bsp.MessageScope{bothScope},
		executeFn: func(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
			if mem.Iteration() == 1 {
				for it := msgr.ReceiveMessages(); it.Next(); {
					v.SetValue(it.Message().(intMsg).value)
				}

				return nil
			}

			if err := mem.Add("counter", int64(1)); err != nil {
				return err
			}

			if err := msgr.SendMessage(bothScope, intMsg{value: 42}); err != nil {
				return err
			}

			if v.ID() == "1" {
				return fmt.Errorf("inconsistent neighbor: %w", bsp.ErrAbortVertex)
			}

			return nil
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("0", 0)
	g.AddVertex("1", 0)
	g.AddVertex("2", 0)
	c.Assert(g.AddEdge("1", "2", "link", nil), check.IsNil)

	c.Assert(executeFixedSteps(g, 2), check.IsNil)

	c.Assert(g.Memory().Get("counter"), check.Equals, int64(2))
	c.Assert(g.Vertex("2").Value(), check.Equals, 0, check.Commentf("message of aborted vertex delivered"))
}

func (s *bspGraphTestSuite) TestExecuteErrorHandling(c *check.C) {
	g := s.newGraph(c, 4, &testProgram{
		executeFn: func(v *bsp.Vertex, _ bsp.Messenger, _ bsp.VertexMemory) error {
			if v.ID() == "50" {
				return errors.New("something went wrong")
			}

			return nil
		},
	})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	for i := 0; i < 1000; i++ {
		g.AddVertex(fmt.Sprint(i), nil)
	}

	err := executeFixedSteps(g, 1)
	c.Assert(err, check.ErrorMatches, `running vertex program for vertex "50" failed: something went wrong`)
}

func (s *bspGraphTestSuite) TestAddEdgeWithUnknownEndpoints(c *check.C) {
	g := s.newGraph(c, 1, &testProgram{})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("0", nil)

	err := g.AddEdge("x", "0", "link", nil)
	c.Assert(errors.Is(err, bsp.ErrUnknownEdgeSource), check.Equals, true)

	err = g.AddEdge("0", "x", "link", nil)
	c.Assert(errors.Is(err, bsp.ErrUnknownEdgeDestination), check.Equals, true)
}

func (s *bspGraphTestSuite) TestEdgeLookup(c *check.C) {
	g := s.newGraph(c, 1, &testProgram{})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("a", nil)
	g.AddVertex("b", nil)
	g.AddVertex("c", nil)
	c.Assert(g.AddEdge("a", "b", "link", 5), check.IsNil)
	c.Assert(g.AddEdge("c", "a", "link", 1), check.IsNil)
	c.Assert(g.AddEdge("a", "c", "other", 7), check.IsNil)

	a := g.Vertex("a")
	c.Assert(a.EdgesFor(bsp.Both, "link"), check.HasLen, 2)
	c.Assert(a.EdgesFor(bsp.Out, ""), check.HasLen, 2)
	c.Assert(a.EdgesFor(bsp.In, "link"), check.HasLen, 1)

	e, found := a.EdgeTo("c", bsp.Both, "link")
	c.Assert(found, check.Equals, true)
	c.Assert(e.Value(), check.Equals, 1)
	c.Assert(e.Other("a"), check.Equals, "c")

	_, found = a.EdgeTo("c", bsp.Out, "link")
	c.Assert(found, check.Equals, false)
}

func (s *bspGraphTestSuite) TestRemoveEdge(c *check.C) {
	g := s.newGraph(c, 1, &testProgram{})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("a", nil)
	g.AddVertex("b", nil)
	c.Assert(g.AddEdge("a", "b", "link", 1), check.IsNil)
	c.Assert(g.AddEdge("a", "b", "other", 2), check.IsNil)

	removed, err := g.RemoveEdge("a", "b", "link")
	c.Assert(err, check.IsNil)
	c.Assert(removed, check.Equals, 1)

	c.Assert(g.Vertex("a").Edges(), check.HasLen, 1)
	c.Assert(g.Vertex("b").InEdges(), check.HasLen, 1)
	_, found := g.Vertex("b").EdgeTo("a", bsp.Both, "link")
	c.Assert(found, check.Equals, false)

	// Edges are directed; the reverse pair has nothing to remove.
	removed, err = g.RemoveEdge("b", "a", "other")
	c.Assert(err, check.IsNil)
	c.Assert(removed, check.Equals, 0)

	_, err = g.RemoveEdge("x", "a", "link")
	c.Assert(errors.Is(err, bsp.ErrUnknownEdgeSource), check.Equals, true)
}

func (s *bspGraphTestSuite) TestContextCancellation(c *check.C) {
	g := s.newGraph(c, 1, &testProgram{})
	defer func() { c.Assert(g.Close(), check.IsNil) }()

	g.AddVertex("0", nil)

	ctx, cancelFn := context.WithCancel(context.TODO())
	cancelFn()

	exec := bsp.NewExecutor(g, bsp.ExecutorCallbacks{})
	c.Assert(exec.RunToCompletion(ctx), check.Equals, context.Canceled)
}

func (s *bspGraphTestSuite) newGraph(c *check.C, workers int, prog *testProgram) *bsp.Graph {
	g, err := bsp.NewGraph(bsp.GraphConfig{
		ComputeWorkers: workers,
		Program:        prog,
	})
	c.Assert(err, check.IsNil)

	return g
}

// testProgram is a VertexProgram whose behavior is supplied by closures.
type testProgram struct {
	keys        []bsp.MemoryKey
	scopes      []bsp.MessageScope
	setupFn     func(mem *bsp.Memory) error
	executeFn   func(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error
	terminateFn func(mem *bsp.Memory) (bool, error)
}

func (p *testProgram) MemoryKeys() []bsp.MemoryKey       { return p.keys }
func (p *testProgram) MessageScopes() []bsp.MessageScope { return p.scopes }

func (p *testProgram) Setup(mem *bsp.Memory) error {
	if p.setupFn == nil {
		return nil
	}

	return p.setupFn(mem)
}

func (p *testProgram) Execute(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
	if p.executeFn == nil {
		return nil
	}

	return p.executeFn(v, msgr, mem)
}

func (p *testProgram) Terminate(mem *bsp.Memory) (bool, error) {
	if p.terminateFn == nil {
		return false, nil
	}

	return p.terminateFn(mem)
}

type intMsg struct {
	value int
}

func (m intMsg) Type() string { return "intMsg" }

// lastWriter keeps the most recently folded string. It is deliberately not
// commutative so that the fold order becomes observable.
type lastWriter struct{}

func (lastWriter) Type() string { return "lastWriter" }

func (lastWriter) Validate(val interface{}) error {
	if _, ok := val.(string); !ok {
		return aggregator.ErrTypeMismatch
	}

	return nil
}

func (lastWriter) Combine(_, val interface{}) interface{} { return val }

func executeFixedSteps(g *bsp.Graph, numOfSteps int) error {
	exec := bsp.NewExecutor(g, bsp.ExecutorCallbacks{})

	return exec.RunSteps(context.TODO(), numOfSteps)
}
