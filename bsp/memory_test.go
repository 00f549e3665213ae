package bsp

import (
	"errors"

	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/bsp/aggregator"
)

var _ = check.Suite(new(memoryTestSuite))

type memoryTestSuite struct{}

func (s *memoryTestSuite) TestSchemaValidation(c *check.C) {
	m := newMemory()

	err := m.init([]MemoryKey{
		{Name: "", Combinator: aggregator.IntSum{}},
		{Name: "a"},
		{Name: "b", Combinator: aggregator.IntSum{}},
		{Name: "b", Combinator: aggregator.BoolAnd{}},
	})
	c.Assert(err, check.ErrorMatches, `(?ms).*memory key 0: empty name.*`)
	c.Assert(err, check.ErrorMatches, `(?ms).*memory key "a": combinator not provided.*`)
	c.Assert(err, check.ErrorMatches, `(?ms).*memory key "b": declared more than once.*`)

	c.Assert(m.init([]MemoryKey{
		{Name: "b", Combinator: aggregator.IntSum{}},
		{Name: "a", Combinator: aggregator.BoolAnd{}},
	}), check.IsNil)
	c.Assert(m.Keys(), check.DeepEquals, []string{"a", "b"})
}

func (s *memoryTestSuite) TestSetValidatesKeyAndType(c *check.C) {
	m := newMemory()
	c.Assert(m.init([]MemoryKey{{Name: "halt", Combinator: aggregator.BoolAnd{}}}), check.IsNil)

	c.Assert(errors.Is(m.Set("unknown", true), ErrUnknownMemoryKey), check.Equals, true)
	c.Assert(errors.Is(m.Set("halt", 1), aggregator.ErrTypeMismatch), check.Equals, true)

	c.Assert(m.Exists("halt"), check.Equals, false)
	c.Assert(m.Set("halt", true), check.IsNil)
	c.Assert(m.Exists("halt"), check.Equals, true)
	c.Assert(m.Get("halt"), check.Equals, true)
}

func (s *memoryTestSuite) TestSetIsRejectedWhileExecuting(c *check.C) {
	m := newMemory()
	c.Assert(m.init([]MemoryKey{{Name: "halt", Combinator: aggregator.BoolAnd{}}}), check.IsNil)

	m.executing = true
	c.Assert(errors.Is(m.Set("halt", true), ErrMemoryReadOnly), check.Equals, true)

	m.executing = false
	c.Assert(m.Set("halt", true), check.IsNil)
}

func (s *memoryTestSuite) TestCommitSeedsWithCommittedValues(c *check.C) {
	m := newMemory()
	c.Assert(m.init([]MemoryKey{
		{Name: "halt", Combinator: aggregator.BoolAnd{}},
		{Name: "sum", Combinator: aggregator.IntSum{}},
	}), check.IsNil)
	c.Assert(m.Set("halt", true), check.IsNil)

	m.commit([]*vertexContext{
		{adds: []keyedValue{{key: "halt", val: true}, {key: "sum", val: int64(2)}}},
		nil,
		{adds: []keyedValue{{key: "halt", val: false}, {key: "sum", val: int64(3)}}},
	})

	c.Assert(m.Get("halt"), check.Equals, false)
	c.Assert(m.Get("sum"), check.Equals, int64(5))

	// A super step without contributions keeps the committed values.
	m.commit(nil)
	c.Assert(m.Get("sum"), check.Equals, int64(5))
}
