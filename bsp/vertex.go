package bsp

import "github.com/mycok/uPartition/bsp/queue"

// Vertex represents a vertex instance / node in the Graph.
type Vertex struct {
	id string
	// idx is the position of the vertex in insertion order. It addresses
	// the vertex's contribution slot at the super step barrier.
	idx       int
	value     interface{}
	msgQueues [2]queue.Queue
	outEdges  []*Edge
	inEdges   []*Edge
}

// ID returns the Vertex ID.
func (v *Vertex) ID() string { return v.id }

// Edges returns the list of outgoing edges from this vertex.
func (v *Vertex) Edges() []*Edge { return v.outEdges }

// InEdges returns the list of edges that terminate at this vertex.
func (v *Vertex) InEdges() []*Edge { return v.inEdges }

// Value returns the value associated with this vertex.
func (v *Vertex) Value() interface{} { return v.value }

// SetValue sets the provided value to the associated vertex.
func (v *Vertex) SetValue(val interface{}) { v.value = val }

// EdgesFor returns the incident edges in the given direction whose label
// matches the provided one. An empty label matches every edge.
func (v *Vertex) EdgesFor(dir Direction, label string) []*Edge {
	var out []*Edge

	if dir == Out || dir == Both {
		for _, e := range v.outEdges {
			if e.matches(label) {
				out = append(out, e)
			}
		}
	}

	if dir == In || dir == Both {
		for _, e := range v.inEdges {
			if e.matches(label) {
				out = append(out, e)
			}
		}
	}

	return out
}

// EdgeTo returns the first edge with a matching label that connects this
// vertex with neighborID in the given direction.
func (v *Vertex) EdgeTo(neighborID string, dir Direction, label string) (*Edge, bool) {
	if dir == Out || dir == Both {
		for _, e := range v.outEdges {
			if e.destID == neighborID && e.matches(label) {
				return e, true
			}
		}
	}

	if dir == In || dir == Both {
		for _, e := range v.inEdges {
			if e.srcID == neighborID && e.matches(label) {
				return e, true
			}
		}
	}

	return nil, false
}
