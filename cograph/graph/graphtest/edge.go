package graphtest

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph"
)

const queriedTogether = "queriedTogether"

// TestEdgeUpsert verifies the edge upsert logic.
func (s *BaseSuite) TestEdgeUpsert(c *check.C) {
	ids := s.upsertVertices(c, 3, "item-")

	e := &graph.Edge{
		Src:    ids[0],
		Dest:   ids[1],
		Label:  queriedTogether,
		Weight: 2,
	}

	c.Assert(s.g.UpsertEdge(e), check.IsNil)
	c.Assert(e.ID, check.Not(check.Equals), uuid.Nil, check.Commentf(
		"expected an ID to be assigned to the new edge",
	))
	c.Assert(e.UpdatedAt.IsZero(), check.Equals, false, check.Commentf(
		"UpdatedAt field not set",
	))

	// Recording more co-occurrences accumulates the weight.
	forUpdate := &graph.Edge{
		Src:    ids[0],
		Dest:   ids[1],
		Label:  queriedTogether,
		Weight: 3,
	}
	c.Assert(s.g.UpsertEdge(forUpdate), check.IsNil)
	c.Assert(forUpdate.ID, check.Equals, e.ID, check.Commentf("edge ID changed while upserting"))
	c.Assert(forUpdate.Weight, check.Equals, int64(5))

	// A different label yields a distinct edge.
	other := &graph.Edge{
		Src:    ids[0],
		Dest:   ids[1],
		Label:  "other",
		Weight: 1,
	}
	c.Assert(s.g.UpsertEdge(other), check.IsNil)
	c.Assert(other.ID, check.Not(check.Equals), e.ID)
	c.Assert(other.Weight, check.Equals, int64(1))

	invalid := &graph.Edge{
		Src:   ids[0],
		Dest:  uuid.New(),
		Label: queriedTogether,
	}
	err := s.g.UpsertEdge(invalid)
	c.Assert(errors.Is(err, graph.ErrUnknownEdgeVertices), check.Equals, true)
}

// TestEdgeIteratorReturnsAccumulatedWeights ensures that iterated edges
// reflect every upsert.
func (s *BaseSuite) TestEdgeIteratorReturnsAccumulatedWeights(c *check.C) {
	ids := s.upsertVertices(c, 3, "item-")

	for i := 0; i < 4; i++ {
		c.Assert(s.g.UpsertEdge(&graph.Edge{
			Src: ids[0], Dest: ids[1], Label: queriedTogether, Weight: 1,
		}), check.IsNil)
	}
	c.Assert(s.g.UpsertEdge(&graph.Edge{
		Src: ids[1], Dest: ids[2], Label: queriedTogether, Weight: 9,
	}), check.IsNil)

	from, to := s.partitionRange(c, 0, 1)
	it, err := s.g.Edges(from, to)
	c.Assert(err, check.IsNil)

	got := make(map[[2]uuid.UUID]int64)
	for it.Next() {
		e := it.Edge()
		c.Assert(e.Label, check.Equals, queriedTogether)
		got[[2]uuid.UUID{e.Src, e.Dest}] = e.Weight
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)

	c.Assert(got, check.DeepEquals, map[[2]uuid.UUID]int64{
		{ids[0], ids[1]}: 4,
		{ids[1], ids[2]}: 9,
	})
}

// TestConcurrentEdgeIterators ensures that multiple clients can
// concurrently access the store without causing data races.
func (s *BaseSuite) TestConcurrentEdgeIterators(c *check.C) {
	var (
		wg           sync.WaitGroup
		numIterators = 10
		numEdges     = 100
	)

	ids := s.upsertVertices(c, numEdges+1, "item-")
	for i := 1; i <= numEdges; i++ {
		c.Assert(s.g.UpsertEdge(&graph.Edge{
			Src: ids[0], Dest: ids[i], Label: queriedTogether, Weight: 1,
		}), check.IsNil)
	}

	wg.Add(numIterators)
	for i := 0; i < numIterators; i++ {
		go func(id int) {
			defer wg.Done()

			comment := check.Commentf("iterator %d", id)
			seen := make(map[string]bool)

			from, to := s.partitionRange(c, 0, 1)
			it, err := s.g.Edges(from, to)
			c.Assert(err, check.IsNil, comment)

			for it.Next() {
				edgeID := it.Edge().ID.String()
				c.Assert(seen[edgeID], check.Equals, false, check.Commentf(
					"Iterator %d iterated the same edge twice", id,
				))

				seen[edgeID] = true
			}

			c.Assert(seen, check.HasLen, numEdges, comment)
			c.Assert(it.Error(), check.IsNil, comment)
			c.Assert(it.Close(), check.IsNil, comment)
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

// TestPartitionedEdgeIterators ensures that edges are assigned to the
// partition of their source vertex.
func (s *BaseSuite) TestPartitionedEdgeIterators(c *check.C) {
	numEdges := 100
	numPartitions := 10

	ids := s.upsertVertices(c, numEdges*2, "item-")
	for i := 0; i < numEdges; i++ {
		c.Assert(s.g.UpsertEdge(&graph.Edge{
			Src: ids[i], Dest: ids[numEdges+i], Label: queriedTogether, Weight: 1,
		}), check.IsNil)
	}

	for _, n := range []int{numPartitions, numPartitions + 1, numPartitions - 8, numPartitions + 9} {
		c.Assert(s.iteratePartitionedEdges(c, n), check.Equals, numEdges)
	}
}

func (s *BaseSuite) iteratePartitionedEdges(c *check.C, numPartitions int) int {
	seen := make(map[string]bool)

	for partition := 0; partition < numPartitions; partition++ {
		from, to := s.partitionRange(c, partition, numPartitions)

		it, err := s.g.Edges(from, to)
		c.Assert(err, check.IsNil)

		for it.Next() {
			e := it.Edge()
			edgeID := e.ID.String()
			c.Assert(seen[edgeID], check.Equals, false, check.Commentf(
				"Iterator returned same edge in different partitions",
			))

			srcID := e.Src.String()
			c.Assert(
				srcID >= from.String() && srcID < to.String(), check.Equals, true,
				check.Commentf("source vertex %s not in range [%s, %s)", srcID, from, to),
			)

			seen[edgeID] = true
		}

		c.Assert(it.Error(), check.IsNil)
		c.Assert(it.Close(), check.IsNil)
	}

	return len(seen)
}
