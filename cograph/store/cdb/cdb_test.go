package cdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/cograph/graph/graphtest"
)

var _ = check.Suite(new(cockroachDBGraphTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

// cockroachDBGraphTestSuite runs the shared store conformance tests against
// a live database. It is skipped unless CDB_DSN is set.
type cockroachDBGraphTestSuite struct {
	// Kept so that tables can be truncated between tests.
	db *sql.DB
	graphtest.BaseSuite
}

func (s *cockroachDBGraphTestSuite) SetUpSuite(c *check.C) {
	dsn := os.Getenv("CDB_DSN")
	if dsn == "" {
		c.Skip("Missing CDB_DSN envvar: skipping cockroachDB backed test suite")
	}

	g, err := NewCockroachDBGraph(dsn)
	if err != nil {
		c.Fatalf("Failed to make a database connection: %v", err)
	}

	s.SetGraph(g)
	s.db = g.db
}

func (s *cockroachDBGraphTestSuite) TearDownSuite(c *check.C) {
	if s.db != nil {
		s.flushDB(c)
		c.Assert(s.db.Close(), check.IsNil)
	}
}

func (s *cockroachDBGraphTestSuite) SetUpTest(c *check.C) {
	s.flushDB(c)
}

func (s *cockroachDBGraphTestSuite) flushDB(c *check.C) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, "TRUNCATE vertices CASCADE")
	c.Assert(err, check.IsNil)
}
