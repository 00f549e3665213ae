package aggregator

import (
	"errors"
	"math/rand"
	"testing"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(new(combinatorTestSuite))

type combinatorTestSuite struct{}

func Test(t *testing.T) {
	check.TestingT(t)
}

func (s *combinatorTestSuite) TestBoolAnd(c *check.C) {
	var comb BoolAnd

	c.Assert(fold(comb, true, []interface{}{true, true, true}), check.Equals, true)
	c.Assert(fold(comb, true, []interface{}{true, false, true}), check.Equals, false)
	c.Assert(fold(comb, false, []interface{}{true}), check.Equals, false)
}

func (s *combinatorTestSuite) TestIntSumIsOrderIndependent(c *check.C) {
	var (
		comb     IntSum
		expected int64
		values   = make([]interface{}, 100)
	)

	for i := range values {
		next := rand.Int63n(1000)
		values[i] = next
		expected += next
	}

	c.Assert(fold(comb, int64(0), values), check.Equals, expected)
	c.Assert(fold(comb, int64(0), shuffled(values)), check.Equals, expected)
}

func (s *combinatorTestSuite) TestIntMapSumDoesNotMutateArguments(c *check.C) {
	var comb IntMapSum

	acc := map[int64]int64{0: 2, 1: 1}
	val := map[int64]int64{1: 3, 2: 5}

	got := comb.Combine(acc, val).(map[int64]int64)
	c.Assert(got, check.DeepEquals, map[int64]int64{0: 2, 1: 4, 2: 5})
	c.Assert(acc, check.DeepEquals, map[int64]int64{0: 2, 1: 1})
	c.Assert(val, check.DeepEquals, map[int64]int64{1: 3, 2: 5})
}

func (s *combinatorTestSuite) TestValidate(c *check.C) {
	specs := []struct {
		comb Combinator
		good interface{}
		bad  interface{}
	}{
		{BoolAnd{}, true, 1},
		{IntSum{}, int64(1), 1},
		{IntMapSum{}, map[int64]int64{}, map[int]int{}},
	}

	for _, spec := range specs {
		c.Assert(spec.comb.Validate(spec.good), check.IsNil, check.Commentf(spec.comb.Type()))

		err := spec.comb.Validate(spec.bad)
		c.Assert(errors.Is(err, ErrTypeMismatch), check.Equals, true, check.Commentf(spec.comb.Type()))
	}
}

func fold(comb Combinator, seed interface{}, values []interface{}) interface{} {
	acc := seed
	for _, v := range values {
		acc = comb.Combine(acc, v)
	}

	return acc
}

func shuffled(values []interface{}) []interface{} {
	out := append([]interface{}(nil), values...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
