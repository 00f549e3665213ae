package queue_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mycok/uPartition/bsp/queue"
)

func TestEnqueueAndSinglePassIteration(t *testing.T) {
	q := queue.NewInMemoryQueue()

	for i := 0; i < 10; i++ {
		if err := q.Enqueue(msg{metadata: fmt.Sprint(i)}); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if !q.PendingMessages() {
		t.Error("Expected queue to have pending messages but got none")
	}

	// Messages are yielded in the order in which they were enqueued.
	var (
		it             = q.Messages()
		numOfProcessed int
	)

	for msgIdx := 0; it.Next(); msgIdx++ {
		msgData := it.Message().(msg).metadata
		if msgData != fmt.Sprint(msgIdx) {
			t.Errorf("Expected %s, but got %s instead", fmt.Sprint(msgIdx), msgData)
		}

		numOfProcessed++
	}

	if numOfProcessed != 10 {
		t.Errorf("Expected %d messages, but got %d messages instead", 10, numOfProcessed)
	}

	if err := it.Error(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	// A second pass yields nothing.
	if q.Messages().Next() {
		t.Error("Expected the iterator to be exhausted after a single pass")
	}

	if q.PendingMessages() {
		t.Error("Expected queue to have 0 pending messages")
	}
}

func TestDiscardMessages(t *testing.T) {
	q := queue.NewInMemoryQueue()

	for i := 0; i < 3; i++ {
		_ = q.Enqueue(msg{metadata: fmt.Sprint(i)})
	}

	it := q.Messages()
	if !it.Next() {
		t.Fatal("Expected at least one message")
	}

	if err := q.DiscardMessages(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if q.PendingMessages() {
		t.Error("Expected queue to have 0 pending messages")
	}

	if it.Next() {
		t.Error("Expected discarded messages not to be yielded")
	}

	if err := q.Close(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestConcurrentEnqueue(t *testing.T) {
	var (
		q       = queue.NewInMemoryQueue()
		wg      sync.WaitGroup
		senders = 50
	)

	wg.Add(senders)
	for i := 0; i < senders; i++ {
		go func(i int) {
			defer wg.Done()
			_ = q.Enqueue(msg{metadata: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for it := q.Messages(); it.Next(); {
		seen[it.Message().(msg).metadata] = true
	}

	if len(seen) != senders {
		t.Errorf("Expected %d distinct messages, got %d", senders, len(seen))
	}
}

type msg struct {
	metadata string
}

func (m msg) Type() string {
	return "msg"
}
