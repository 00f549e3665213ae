package bsp

import (
	"errors"
	"fmt"

	"github.com/mycok/uPartition/bsp/queue"
)

// ErrUndeclaredScope is returned when a vertex sends a message along a scope
// that its program did not declare.
var ErrUndeclaredScope = errors.New("message scope not declared by the vertex program")

// MessageScope restricts message delivery to the neighbors reachable through
// edges with a particular label in a particular direction. An empty
// EdgeLabel matches every edge.
type MessageScope struct {
	EdgeLabel string
	Direction Direction
}

// String returns a human readable representation of the scope.
func (s MessageScope) String() string {
	return fmt.Sprintf("%s(%s)", s.Direction, s.EdgeLabel)
}

type envelope struct {
	destID string
	msg    queue.Message
}

type keyedValue struct {
	key string
	val interface{}
}

// Static and compile-time check to ensure vertexContext implements both
// the Messenger and VertexMemory interfaces.
var (
	_ Messenger    = (*vertexContext)(nil)
	_ VertexMemory = (*vertexContext)(nil)
)

// vertexContext buffers everything a vertex produces while executing a
// super step. The buffered messages and memory contributions are only
// released once the vertex's Execute call succeeds.
type vertexContext struct {
	g      *Graph
	v      *Vertex
	inbox  queue.Iterator
	outbox []envelope
	adds   []keyedValue
}

// SendMessage queues msg for every neighbor reachable through scope.
func (c *vertexContext) SendMessage(scope MessageScope, msg queue.Message) error {
	if _, declared := c.g.scopes[scope]; !declared {
		return fmt.Errorf("send message along %s: %w", scope, ErrUndeclaredScope)
	}

	for _, e := range c.v.EdgesFor(scope.Direction, scope.EdgeLabel) {
		c.outbox = append(c.outbox, envelope{destID: e.Other(c.v.id), msg: msg})
	}

	return nil
}

// ReceiveMessages returns the messages sent to the vertex during the
// previous super step.
func (c *vertexContext) ReceiveMessages() queue.Iterator {
	return c.inbox
}

// Iteration returns the current super step.
func (c *vertexContext) Iteration() int {
	return c.g.memory.Iteration()
}

// Get returns the value committed for key at the last barrier.
func (c *vertexContext) Get(key string) interface{} {
	return c.g.memory.Get(key)
}

// Add buffers a contribution to key.
func (c *vertexContext) Add(key string, val interface{}) error {
	if err := c.g.memory.validate(key, val); err != nil {
		return fmt.Errorf("add %q: %w", key, err)
	}

	c.adds = append(c.adds, keyedValue{key: key, val: val})

	return nil
}

// flush delivers the buffered messages to their recipients' inboxes for
// the next super step.
func (c *vertexContext) flush() error {
	for _, env := range c.outbox {
		if err := c.g.deliver(env.destID, env.msg); err != nil {
			return err
		}
	}

	return nil
}
