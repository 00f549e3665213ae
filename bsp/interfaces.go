package bsp

import "github.com/mycok/uPartition/bsp/queue"

// VertexProgram is implemented by algorithms that run on top of the graph.
// The same program instance is shared by all vertices; any per-vertex state
// must live in the vertex value.
type VertexProgram interface {
	// MemoryKeys returns the schema of the global memory used by the
	// program. It is validated before the setup super step.
	MemoryKeys() []MemoryKey

	// MessageScopes returns the scopes the program is allowed to send
	// messages along.
	MessageScopes() []MessageScope

	// Setup is invoked exactly once, before the first super step, and
	// should initialise the memory.
	Setup(mem *Memory) error

	// Execute runs the per-vertex logic for the current super step. An
	// error that wraps ErrAbortVertex discards the vertex's messages and
	// memory contributions for the super step; any other error aborts the
	// run.
	Execute(v *Vertex, msgr Messenger, mem VertexMemory) error

	// Terminate is invoked after every super step barrier and reports
	// whether the run should stop. It may reset memory values for the
	// next super step.
	Terminate(mem *Memory) (bool, error)
}

// Messenger delivers messages between vertices across super step
// boundaries.
type Messenger interface {
	// SendMessage queues msg for every neighbor reachable through the
	// provided scope. Messages become visible in the next super step.
	SendMessage(scope MessageScope, msg queue.Message) error

	// ReceiveMessages returns a single-pass iterator over the messages
	// sent to the vertex during the previous super step.
	ReceiveMessages() queue.Iterator
}

// VertexMemory is the view of the global memory available to a vertex while
// a super step is being executed.
type VertexMemory interface {
	// Iteration returns the current super step.
	Iteration() int

	// Get returns the value committed for key at the last barrier.
	Get(key string) interface{}

	// Add contributes val to key. Contributions are folded using the
	// key's combinator and become visible after the barrier.
	Add(key string, val interface{}) error
}
