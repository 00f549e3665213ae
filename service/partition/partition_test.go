package partition

import (
	"errors"
	"net"
	"os"
	"testing"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"
)

var _ = check.Suite(new(DetectorTestSuite))
var _ = check.Suite(new(RangeTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type DetectorTestSuite struct{}

func (s *DetectorTestSuite) SetUpTest(c *check.C) {
	getHostname = os.Hostname
	lookupSRV = net.LookupSRV
}

func (s *DetectorTestSuite) TearDownTest(c *check.C) {
	getHostname = os.Hostname
	lookupSRV = net.LookupSRV
}

func (s *DetectorTestSuite) TestDetectFromSRVRecords(c *check.C) {
	getHostname = func() (string, error) {
		return "partitioner-1", nil
	}

	lookupSRV = func(service, proto, name string) (cname string, addrs []*net.SRV, err error) {
		c.Assert(service, check.Equals, "")
		c.Assert(proto, check.Equals, "")
		c.Assert(name, check.Equals, "partitioner-headless")

		return "partitioner-headless", make([]*net.SRV, 4), nil
	}

	det := DetectFromSRVRecords("partitioner-headless")
	currPartition, numOfPartitions, err := det.PartitionInfo()

	c.Assert(err, check.IsNil)
	c.Assert(currPartition, check.Equals, 1)
	c.Assert(numOfPartitions, check.Equals, 4)
}

func (s *DetectorTestSuite) TestDetectFromSRVRecordsWithNoAvailableData(c *check.C) {
	getHostname = func() (string, error) {
		return "partitioner-1", nil
	}

	lookupSRV = func(service, proto, name string) (cname string, addrs []*net.SRV, err error) {
		return "", nil, errors.New("host not found")
	}

	det := DetectFromSRVRecords("partitioner-headless")
	_, _, err := det.PartitionInfo()
	c.Assert(errors.Is(err, ErrNoPartitionDataAvailableYet), check.Equals, true)
}

func (s *DetectorTestSuite) TestHostnameWithoutIndex(c *check.C) {
	getHostname = func() (string, error) {
		return "partitioner", nil
	}

	_, _, err := DetectFromSRVRecords("partitioner-headless").PartitionInfo()
	c.Assert(err, check.ErrorMatches, ".*unable to extract partition number.*")
}

func (s *DetectorTestSuite) TestFromMode(c *check.C) {
	det, err := FromMode("single")
	c.Assert(err, check.IsNil)
	c.Assert(det, check.DeepEquals, Fixed{Partition: 0, NumOfPartitions: 1})

	det, err = FromMode("dns=partitioner-headless")
	c.Assert(err, check.IsNil)
	c.Assert(det, check.DeepEquals, DetectFromSRVRecords("partitioner-headless"))

	_, err = FromMode("dns=")
	c.Assert(err, check.ErrorMatches, ".*missing SRV name.*")

	_, err = FromMode("zookeeper")
	c.Assert(err, check.ErrorMatches, ".*unsupported detection mode.*")
}

type RangeTestSuite struct{}

func (s *RangeTestSuite) TestEvenSplit(c *check.C) {
	r, err := NewFullRange(4)
	c.Assert(err, check.IsNil)
	c.Assert(r.NumOfPartitions(), check.Equals, 4)

	expExtents := [][2]uuid.UUID{
		{uuid.MustParse("00000000-0000-0000-0000-000000000000"), uuid.MustParse("40000000-0000-0000-0000-000000000000")},
		{uuid.MustParse("40000000-0000-0000-0000-000000000000"), uuid.MustParse("80000000-0000-0000-0000-000000000000")},
		{uuid.MustParse("80000000-0000-0000-0000-000000000000"), uuid.MustParse("c0000000-0000-0000-0000-000000000000")},
		{uuid.MustParse("c0000000-0000-0000-0000-000000000000"), uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")},
	}

	for i, exp := range expExtents {
		c.Logf("extent: %d", i)
		gotFrom, gotTo, err := r.PartitionRange(i)
		c.Assert(err, check.IsNil)
		c.Assert(gotFrom.String(), check.Equals, exp[0].String())
		c.Assert(gotTo.String(), check.Equals, exp[1].String())
	}
}

func (s *RangeTestSuite) TestOddSplit(c *check.C) {
	r, err := NewFullRange(3)
	c.Assert(err, check.IsNil)

	expExtents := [][2]uuid.UUID{
		{uuid.MustParse("00000000-0000-0000-0000-000000000000"), uuid.MustParse("55555555-5555-5555-5555-555555555555")},
		{uuid.MustParse("55555555-5555-5555-5555-555555555555"), uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")},
		{uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")},
	}

	for i, exp := range expExtents {
		c.Logf("extent: %d", i)
		gotFrom, gotTo, err := r.PartitionRange(i)
		c.Assert(err, check.IsNil)
		c.Assert(gotFrom.String(), check.Equals, exp[0].String())
		c.Assert(gotTo.String(), check.Equals, exp[1].String())
	}
}

func (s *RangeTestSuite) TestSplitWithLeadingZeroBytes(c *check.C) {
	start := uuid.MustParse("00000000-0000-0000-0000-000000000000")
	end := uuid.MustParse("00000000-0000-0000-0000-0000000000ff")

	r, err := NewRange(2, start, end)
	c.Assert(err, check.IsNil)

	from, to, err := r.PartitionRange(1)
	c.Assert(err, check.IsNil)
	c.Assert(from.String(), check.Equals, "00000000-0000-0000-0000-000000000080")
	c.Assert(to, check.Equals, end)
}

func (s *RangeTestSuite) TestPartitionExtentsError(c *check.C) {
	r, err := NewRange(1,
		uuid.MustParse("11111111-0000-0000-0000-000000000000"),
		uuid.MustParse("55555555-0000-0000-0000-000000000000"),
	)
	c.Assert(err, check.IsNil)

	_, _, err = r.PartitionRange(1)
	c.Assert(err, check.ErrorMatches, "invalid partition index")

	_, err = NewRange(0, uuid.Nil, MaxUUID)
	c.Assert(err, check.ErrorMatches, ".*number of partitions.*")

	_, err = NewRange(1, MaxUUID, uuid.Nil)
	c.Assert(err, check.ErrorMatches, ".*start UUID must be less than the end UUID.*")
}
