package repartition

import "github.com/mycok/uPartition/bsp/queue"

// Static and compile-time check to ensure LabelMessage implements
// the Message interface.
var _ queue.Message = (*LabelMessage)(nil)

// LabelMessage announces the current partition label of a vertex to its
// neighbors.
type LabelMessage struct {
	SenderID string
	Label    int64
}

// Type returns the type of this message.
func (m LabelMessage) Type() string { return "label" }
