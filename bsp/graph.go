/*
	bsp is a large scale graph processing implementation based on the bulk
	synchronous parallel (BSP) model.
*/

package bsp

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/bsp/queue"
)

var (
	// ErrUnknownEdgeSource is returned when the source vertex is not present
	// in the graph.
	ErrUnknownEdgeSource = errors.New("source vertex is not part of the graph")

	// ErrUnknownEdgeDestination is returned when the destination vertex is
	// not present in the graph.
	ErrUnknownEdgeDestination = errors.New("destination vertex is not part of the graph")

	// ErrInvalidMessageDestination is returned when the message destination
	// cannot be resolved to any vertex.
	ErrInvalidMessageDestination = errors.New("invalid message destination")

	// ErrAbortVertex is wrapped by errors that only invalidate a single
	// vertex's contribution to a super step.
	ErrAbortVertex = errors.New("vertex contribution aborted")
)

// Graph provides graph processing functionality.
type Graph struct {
	wg                sync.WaitGroup
	superStep         int
	activeInStep      int64
	abortedInStep     int64
	pendingInStep     int64
	program           VertexProgram
	scopes            map[MessageScope]struct{}
	memory            *Memory
	vertices          map[string]*Vertex
	order             []*Vertex
	contribs          []*vertexContext
	queueFactory      queue.Factory
	logger            *logrus.Entry
	vertexChan        chan *Vertex
	errChan           chan error
	stepCompletedChan chan struct{}
}

// NewGraph creates a new Graph instance using the provided configuration. It
// is important for callers to invoke Close() on the returned graph instance
// when they are done using it.
func NewGraph(cfg GraphConfig) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("graph config validation failed: %w", err)
	}

	g := &Graph{
		program:      cfg.Program,
		queueFactory: cfg.QueueFactory,
		logger:       cfg.Logger,
		memory:       newMemory(),
		scopes:       make(map[MessageScope]struct{}),
		vertices:     make(map[string]*Vertex),
	}

	g.startWorkers(cfg.ComputeWorkers)

	return g, nil
}

// Close releases any resources associated with the graph.
func (g *Graph) Close() error {
	close(g.vertexChan)
	g.wg.Wait()

	return g.Reset()
}

// Reset the state of the graph by resetting the superStep counter, the
// memory and re-instantiating the vertices.
//
// Note: Reset operations are useful only when a client wants to re-use the
// same graph instance to run the program over a new set of vertices.
func (g *Graph) Reset() error {
	g.superStep = 0

	for _, v := range g.order {
		// Close both the input and output message queue's for each vertex.
		for i := 0; i < 2; i++ {
			if err := v.msgQueues[i].Close(); err != nil {
				return fmt.Errorf(
					"closing message queue %d for vertex %q failed: %w", i, v.id, err,
				)
			}
		}
	}

	g.vertices = make(map[string]*Vertex)
	g.order = nil
	g.contribs = nil
	g.memory = newMemory()

	return nil
}

// Program returns the vertex program executed by the graph.
func (g *Graph) Program() VertexProgram {
	return g.program
}

// Memory returns the graph's global memory.
func (g *Graph) Memory() *Memory {
	return g.memory
}

// Vertices returns the graph vertex map.
func (g *Graph) Vertices() map[string]*Vertex {
	return g.vertices
}

// Vertex returns the vertex with the specified ID or nil if the vertex does
// not exist.
func (g *Graph) Vertex(id string) *Vertex {
	return g.vertices[id]
}

// AddVertex adds a new vertex to the graph. If the vertex already exists,
// its value will be overwritten / updated instead.
func (g *Graph) AddVertex(id string, value interface{}) {
	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{
			id:  id,
			idx: len(g.order),
			msgQueues: [2]queue.Queue{
				g.queueFactory(),
				g.queueFactory(),
			},
		}

		g.vertices[id] = v
		g.order = append(g.order, v)
	}

	v.SetValue(value)
}

// AddEdge adds a directed edge with the provided label from source to
// destination and annotates it with the specified value. The edge is owned
// by the source vertex and is also reachable from the destination vertex
// through its incoming edges. Both endpoints must already be part of the
// graph.
func (g *Graph) AddEdge(srcID, destID, label string, value interface{}) error {
	srcVertex, exists := g.vertices[srcID]
	if !exists {
		return fmt.Errorf(
			"create edge from %q to %q: %w", srcID, destID, ErrUnknownEdgeSource,
		)
	}

	destVertex, exists := g.vertices[destID]
	if !exists {
		return fmt.Errorf(
			"create edge from %q to %q: %w", srcID, destID, ErrUnknownEdgeDestination,
		)
	}

	e := &Edge{
		srcID:  srcID,
		destID: destID,
		label:  label,
		value:  value,
	}

	srcVertex.outEdges = append(srcVertex.outEdges, e)
	destVertex.inEdges = append(destVertex.inEdges, e)

	return nil
}

// RemoveEdge removes every edge with the provided label that originates
// from srcID and terminates at destID. It returns the number of removed
// edges. RemoveEdge must not be called while a superStep is executing; it is
// meant to be used from executor callbacks or between runs.
func (g *Graph) RemoveEdge(srcID, destID, label string) (int, error) {
	srcVertex, exists := g.vertices[srcID]
	if !exists {
		return 0, fmt.Errorf(
			"remove edge from %q to %q: %w", srcID, destID, ErrUnknownEdgeSource,
		)
	}

	destVertex, exists := g.vertices[destID]
	if !exists {
		return 0, fmt.Errorf(
			"remove edge from %q to %q: %w", srcID, destID, ErrUnknownEdgeDestination,
		)
	}

	isTarget := func(e *Edge) bool {
		return e.srcID == srcID && e.destID == destID && e.matches(label)
	}

	var removed int
	srcVertex.outEdges, removed = filterEdges(srcVertex.outEdges, isTarget)
	destVertex.inEdges, _ = filterEdges(destVertex.inEdges, isTarget)

	return removed, nil
}

func filterEdges(edges []*Edge, drop func(*Edge) bool) ([]*Edge, int) {
	kept := edges[:0]
	for _, e := range edges {
		if !drop(e) {
			kept = append(kept, e)
		}
	}

	removed := len(edges) - len(kept)
	for i := len(kept); i < len(edges); i++ {
		edges[i] = nil
	}

	return kept, removed
}

// SuperStep returns the current superStep value.
func (g *Graph) SuperStep() int {
	return g.superStep
}

// deliver queues msg into the inbox that the destination vertex will read
// during the next superStep.
func (g *Graph) deliver(destID string, msg queue.Message) error {
	destVertex, exists := g.vertices[destID]
	if !exists {
		return fmt.Errorf(
			"message can't be delivered to %q: %w",
			destID, ErrInvalidMessageDestination,
		)
	}

	queueIdx := (g.superStep + 1) % 2

	return destVertex.msgQueues[queueIdx].Enqueue(msg)
}

// setup validates the program's memory schema and message scopes and
// invokes its Setup method.
func (g *Graph) setup() error {
	if err := g.memory.init(g.program.MemoryKeys()); err != nil {
		return fmt.Errorf("memory schema validation failed: %w", err)
	}

	g.scopes = make(map[MessageScope]struct{})
	for _, s := range g.program.MessageScopes() {
		g.scopes[s] = struct{}{}
	}

	if err := g.program.Setup(g.memory); err != nil {
		return fmt.Errorf("vertex program setup failed: %w", err)
	}

	return nil
}

// advance moves the graph to the next superStep.
func (g *Graph) advance() {
	g.superStep++
	g.memory.iteration = g.superStep
}

// step executes the current superStep and returns back the number of
// vertices that were processed.
//
// Note: A single step / superStep is only complete when all the available
// vertices are processed. The memory contributions of the vertices are only
// committed if no vertex reported a fatal error.
func (g *Graph) step() (int, error) {
	g.activeInStep = 0
	g.abortedInStep = 0
	g.pendingInStep = int64(len(g.order))
	g.contribs = make([]*vertexContext, len(g.order))

	if g.pendingInStep == 0 {
		g.memory.commit(nil)

		return 0, nil
	}

	g.memory.executing = true

	for _, v := range g.order {
		g.vertexChan <- v
	}

	// Block until the worker pool has finished processing all vertices.
	<-g.stepCompletedChan

	g.memory.executing = false

	// Dequeue any errors.
	var err error

	select {
	case err = <-g.errChan:
	default:
	}

	if err != nil {
		return int(g.activeInStep), err
	}

	// Barrier: fold all memory contributions in vertex insertion order.
	g.memory.commit(g.contribs)
	g.contribs = nil

	return int(g.activeInStep), nil
}

// abortedVertices returns the number of vertices whose contributions were
// discarded during the last superStep.
func (g *Graph) abortedVertices() int {
	return int(atomic.LoadInt64(&g.abortedInStep))
}

// startWorkers spins up numOfWorkers to execute each superStep.
func (g *Graph) startWorkers(numOfWorkers int) {
	g.vertexChan = make(chan *Vertex)
	// We use a buffered channel for errors because the step() method that
	// controls the step worker pool checks for errors at the end after ensuring
	// that all dispatched workers have finished their work.
	g.errChan = make(chan error, 1)
	g.stepCompletedChan = make(chan struct{})

	g.wg.Add(numOfWorkers)
	for i := 0; i < numOfWorkers; i++ {
		go g.stepWorker()
	}
}

// stepWorker polls the vertex channel for incoming vertices and executes the
// vertex program on each one. The worker will automatically exit when the
// vertex channel is closed.
func (g *Graph) stepWorker() {
	for v := range g.vertexChan {
		g.execute(v)

		// Only the worker that processes the last vertex of the superStep
		// signals completion.
		if atomic.AddInt64(&g.pendingInStep, -1) == 0 {
			g.stepCompletedChan <- struct{}{}
		}
	}

	g.wg.Done()
}

func (g *Graph) execute(v *Vertex) {
	inbox := v.msgQueues[g.superStep%2]
	_ = atomic.AddInt64(&g.activeInStep, 1)

	vctx := &vertexContext{g: g, v: v, inbox: inbox.Messages()}
	err := g.program.Execute(v, vctx, vctx)

	switch {
	case errors.Is(err, ErrAbortVertex):
		_ = atomic.AddInt64(&g.abortedInStep, 1)
		g.logger.WithFields(logrus.Fields{
			"vertex":     v.id,
			"super_step": g.superStep,
			"err":        err,
		}).Warn("discarding vertex contribution for super step")
	case err != nil:
		tryToEmitErr(g.errChan, fmt.Errorf(
			"running vertex program for vertex %q failed: %w", v.id, err,
		))
	default:
		if err := vctx.flush(); err != nil {
			tryToEmitErr(g.errChan, fmt.Errorf(
				"delivering messages from vertex %q failed: %w", v.id, err,
			))
		} else {
			g.contribs[v.idx] = vctx
		}
	}

	if err := inbox.DiscardMessages(); err != nil {
		tryToEmitErr(g.errChan, fmt.Errorf(
			"discarding unprocessed messages for vertex %q failed: %w", v.id, err,
		))
	}
}

func tryToEmitErr(errChan chan<- error, err error) {
	select {
	// Try to enqueue an error.
	case errChan <- err:
	// Error channel already contains another error that has not been read yet.
	default:
	}
}
