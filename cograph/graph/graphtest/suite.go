package graphtest

import (
	"math/big"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph"
)

// BaseSuite defines a set of re-usable tests that can be executed against
// any concrete type that implements the graph.Graph interface.
type BaseSuite struct {
	g graph.Graph
}

// SetGraph configures the test-suite to run all tests against an instance
// of graph.Graph.
func (s *BaseSuite) SetGraph(g graph.Graph) {
	s.g = g
}

func (s *BaseSuite) upsertVertices(c *check.C, n int, keyPrefix string) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		v := &graph.Vertex{Key: keyPrefix + big.NewInt(int64(i)).String()}
		c.Assert(s.g.UpsertVertex(v), check.IsNil)

		ids[i] = v.ID
	}

	return ids
}

// partitionRange computes the [from, to) UUID range covered by partition
// when the UUID space is split into numPartitions equally sized segments.
func (s *BaseSuite) partitionRange(c *check.C, partition, numPartitions int) (from, to uuid.UUID) {
	if partition < 0 || partition >= numPartitions {
		c.Fatal("invalid partition")
	}

	maxUUID := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	partSize := new(big.Int).SetBytes(maxUUID[:])
	partSize.Div(partSize, big.NewInt(int64(numPartitions)))

	// The last partition absorbs the remainder of the division.
	bound := func(p int) uuid.UUID {
		switch {
		case p == 0:
			return uuid.Nil
		case p == numPartitions:
			return maxUUID
		}

		var buf [16]byte
		new(big.Int).Mul(partSize, big.NewInt(int64(p))).FillBytes(buf[:])

		return uuid.UUID(buf)
	}

	return bound(partition), bound(partition + 1)
}
