package service

import (
	"context"
	"errors"
	"testing"
	"time"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(new(GroupTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type GroupTestSuite struct{}

func (s *GroupTestSuite) TestGroupStopsAfterFirstError(c *check.C) {
	grp := Group{
		testService{name: "0"},
		testService{name: "1", err: errors.New("store unreachable")},
		testService{name: "2"},
	}

	err := grp.Execute(context.TODO())
	c.Assert(err, check.ErrorMatches, "(?ms).*1: store unreachable.*")
}

func (s *GroupTestSuite) TestGroupCollectsEveryError(c *check.C) {
	grp := Group{
		testService{name: "0", err: errors.New("store unreachable")},
		testService{name: "1", err: errors.New("bad config")},
	}

	err := grp.Execute(context.TODO())
	c.Assert(err, check.ErrorMatches, "(?ms).*0: store unreachable.*")
	c.Assert(err, check.ErrorMatches, "(?ms).*1: bad config.*")
}

func (s *GroupTestSuite) TestGroupStopsWhenContextExpires(c *check.C) {
	grp := Group{
		testService{name: "0"},
		testService{name: "1"},
	}

	ctx, cancelFn := context.WithTimeout(context.TODO(), 200*time.Millisecond)
	defer cancelFn()

	c.Assert(grp.Execute(ctx), check.IsNil)
}

type testService struct {
	name string
	err  error
}

func (s testService) Name() string { return s.name }

func (s testService) Run(ctx context.Context) error {
	if s.err != nil {
		return s.err
	}

	<-ctx.Done()

	return nil
}
