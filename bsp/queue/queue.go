package queue

// Message should be implemented by types that can serve as message objects.
type Message interface {
	// Type returns the type of this Message.
	Type() string
}

// Queue should be implemented by types that can serve as per-vertex inboxes.
type Queue interface {
	// Enqueue adds a new message at the end of the queue. It must be safe
	// to call Enqueue concurrently.
	Enqueue(msg Message) error

	// PendingMessages checks the queue for unconsumed messages.
	PendingMessages() bool

	// DiscardMessages drops all unconsumed messages from the queue.
	DiscardMessages() error

	// Messages returns a single-pass iterator over the queued messages.
	// Every message yielded by the iterator is removed from the queue.
	Messages() Iterator

	// Close releases all resources consumed by the queue.
	Close() error
}

// Iterator should be embedded / implemented by types that require
// iteration functionality.
type Iterator interface {
	// Next loads the next item, returns false when no more items
	// are available or when an error occurs.
	Next() bool

	// Message returns the current message from the result set.
	Message() Message

	// Error returns the last error encountered by the iterator.
	Error() error
}

// Factory creates new Queue instances.
// Note: Should be used for cases where lazy object creation is desired.
type Factory func() Queue
