package graphtest

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph"
)

// TestVertexUpsert verifies the vertex upsert logic.
func (s *BaseSuite) TestVertexUpsert(c *check.C) {
	initial := &graph.Vertex{Key: "item-1", Label: 3}

	c.Assert(s.g.UpsertVertex(initial), check.IsNil)
	c.Assert(initial.ID, check.Not(check.Equals), uuid.Nil,
		check.Commentf("Expected an ID to be assigned to the new vertex."),
	)

	v, err := s.g.FindVertex(initial.ID)
	c.Assert(err, check.IsNil)
	c.Assert(v.Key, check.Equals, initial.Key)
	c.Assert(v.Label, check.Equals, int64(3))

	// Upserting a vertex with the same key keeps the ID and updates the
	// label.
	sameKey := &graph.Vertex{Key: initial.Key, Label: 5}
	c.Assert(s.g.UpsertVertex(sameKey), check.IsNil)
	c.Assert(sameKey.ID, check.Equals, initial.ID, check.Commentf("ID changed during upsert"))

	v, err = s.g.FindVertex(initial.ID)
	c.Assert(err, check.IsNil)
	c.Assert(v.Label, check.Equals, int64(5))
}

// TestFindVertex verifies the vertex lookup logic.
func (s *BaseSuite) TestFindVertex(c *check.C) {
	v := &graph.Vertex{Key: "item-1", Label: 1}
	c.Assert(s.g.UpsertVertex(v), check.IsNil)

	got, err := s.g.FindVertex(v.ID)
	c.Assert(err, check.IsNil)
	c.Assert(got.ID, check.Equals, v.ID)
	c.Assert(got.Key, check.Equals, v.Key)
	c.Assert(got.Label, check.Equals, v.Label)

	_, err = s.g.FindVertex(uuid.Nil)
	c.Assert(errors.Is(err, graph.ErrNotFound), check.Equals, true)
}

// TestUpdateLabel verifies that labels can be reassigned.
func (s *BaseSuite) TestUpdateLabel(c *check.C) {
	v := &graph.Vertex{Key: "item-1", Label: 1}
	c.Assert(s.g.UpsertVertex(v), check.IsNil)

	c.Assert(s.g.UpdateLabel(v.ID, 7), check.IsNil)

	got, err := s.g.FindVertex(v.ID)
	c.Assert(err, check.IsNil)
	c.Assert(got.Label, check.Equals, int64(7))

	err = s.g.UpdateLabel(uuid.New(), 1)
	c.Assert(errors.Is(err, graph.ErrNotFound), check.Equals, true)
}

// TestConcurrentVertexIterators ensures that multiple clients can
// concurrently access the store without causing data races.
func (s *BaseSuite) TestConcurrentVertexIterators(c *check.C) {
	var (
		wg             sync.WaitGroup
		numOfIterators = 10
		numOfVertices  = 100
	)

	s.upsertVertices(c, numOfVertices, "item-")

	wg.Add(numOfIterators)
	for i := 0; i < numOfIterators; i++ {
		go func(id int) {
			defer wg.Done()

			errComment := check.Commentf("Iterator %d", id)
			seen := make(map[string]bool)

			from, to := s.partitionRange(c, 0, 1)
			it, err := s.g.Vertices(from, to)
			c.Assert(err, check.IsNil, errComment)

			for it.Next() {
				vertexID := it.Vertex().ID.String()
				c.Assert(seen[vertexID], check.Equals, false,
					check.Commentf("Iterator %d iterated the same vertex twice", id),
				)

				seen[vertexID] = true
			}

			c.Assert(seen, check.HasLen, numOfVertices, errComment)
			c.Assert(it.Error(), check.IsNil, errComment)
			c.Assert(it.Close(), check.IsNil, errComment)
		}(i)
	}

	doneCh := make(chan struct{})
	go func() {
		wg.Wait()
		close(doneCh)
	}()

	select {
	case <-doneCh:
	case <-time.After(10 * time.Second):
		c.Fatal("Exceeded set test execution time: timed out!")
	}
}

// TestPartitionedVertexIterators ensures that the partitioning logic works
// as expected even when partitions contain an uneven number of items.
func (s *BaseSuite) TestPartitionedVertexIterators(c *check.C) {
	numOfVertices := 100
	numOfPartitions := 10

	s.upsertVertices(c, numOfVertices, "item-")

	// Check with both odd and even partition counts to check for
	// rounding-related bugs.
	for _, n := range []int{numOfPartitions, numOfPartitions + 1, numOfPartitions - 8, numOfPartitions + 9} {
		c.Assert(s.iteratePartitionedVertices(c, n), check.Equals, numOfVertices)
	}
}

func (s *BaseSuite) iteratePartitionedVertices(c *check.C, numOfPartitions int) int {
	seen := make(map[string]bool)

	for partition := 0; partition < numOfPartitions; partition++ {
		from, to := s.partitionRange(c, partition, numOfPartitions)
		it, err := s.g.Vertices(from, to)
		c.Assert(err, check.IsNil)

		for it.Next() {
			vertexID := it.Vertex().ID.String()
			c.Assert(seen[vertexID], check.Equals, false, check.Commentf(
				"Iterator returned same vertex in different partitions",
			))

			seen[vertexID] = true
		}

		c.Assert(it.Error(), check.IsNil)
		c.Assert(it.Close(), check.IsNil)
	}

	return len(seen)
}

// TestVertexIteratorReflectsLabelUpdates ensures that label updates are
// visible through freshly created iterators.
func (s *BaseSuite) TestVertexIteratorReflectsLabelUpdates(c *check.C) {
	ids := s.upsertVertices(c, 3, "item-")
	for i, id := range ids {
		c.Assert(s.g.UpdateLabel(id, int64(i+10)), check.IsNil)
	}

	from, to := s.partitionRange(c, 0, 1)
	it, err := s.g.Vertices(from, to)
	c.Assert(err, check.IsNil)

	got := make(map[uuid.UUID]int64)
	for it.Next() {
		v := it.Vertex()
		got[v.ID] = v.Label
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)

	for i, id := range ids {
		c.Assert(got[id], check.Equals, int64(i+10), check.Commentf("vertex %d", i))
	}
}
