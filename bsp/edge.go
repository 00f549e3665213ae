package bsp

// Direction selects which incident edges of a vertex are traversed.
type Direction int

const (
	// Out selects the edges owned by (originating from) a vertex.
	Out Direction = iota
	// In selects the edges terminating at a vertex.
	In
	// Both selects incoming and outgoing edges.
	Both
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Edge represents a directed, labelled link / connection in a Graph. It links
// the source and destination vertex.
type Edge struct {
	srcID  string
	destID string
	// label is the category of the edge; message scopes and edge lookups
	// filter on it.
	label string
	// value represents the cost / weight attached to an edge based on specific
	// considerations and the context in which an edge is being used.
	value interface{}
}

// SrcID returns the ID of the vertex that owns the edge.
func (e *Edge) SrcID() string { return e.srcID }

// DestID returns the vertex ID that points to the edge's target endpoint.
func (e *Edge) DestID() string { return e.destID }

// Label returns the category of the edge.
func (e *Edge) Label() string { return e.label }

// Value returns the value associated with this edge.
func (e *Edge) Value() interface{} { return e.value }

// SetValue sets the provided value to the associated edge.
func (e *Edge) SetValue(val interface{}) { e.value = val }

// Other returns the endpoint of the edge opposite to the vertex with the
// provided ID.
func (e *Edge) Other(id string) string {
	if e.srcID == id {
		return e.destID
	}

	return e.srcID
}

func (e *Edge) matches(label string) bool {
	return label == "" || e.label == label
}
