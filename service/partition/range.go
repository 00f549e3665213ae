package partition

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/google/uuid"
)

// MaxUUID is the upper bound of the UUID value space.
var MaxUUID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

// Range represents a contiguous UUID region which is split into a number of
// partitions.
type Range struct {
	start       uuid.UUID
	rangeSplits []uuid.UUID
}

// NewFullRange creates a range covering the full UUID value space split
// into numOfPartitions partitions.
func NewFullRange(numOfPartitions int) (Range, error) {
	return NewRange(numOfPartitions, uuid.Nil, MaxUUID)
}

// NewRange creates a new range [start, end] and splits it into the
// provided number of partitions. The last partition absorbs the remainder
// of the split.
func NewRange(numOfPartitions int, start, end uuid.UUID) (Range, error) {
	if bytes.Compare(start[:], end[:]) >= 0 {
		return Range{}, errors.New("range start UUID must be less than the end UUID")
	} else if numOfPartitions <= 0 {
		return Range{}, errors.New("number of partitions must be at least equal to 1")
	}

	// partitionSize = (end - start + 1) / numOfPartitions
	startInt := new(big.Int).SetBytes(start[:])
	partitionSize := new(big.Int).Sub(new(big.Int).SetBytes(end[:]), startInt)
	partitionSize.Add(partitionSize, big.NewInt(1))
	partitionSize.Div(partitionSize, big.NewInt(int64(numOfPartitions)))

	splits := make([]uuid.UUID, numOfPartitions)
	for partition := 0; partition < numOfPartitions-1; partition++ {
		bound := new(big.Int).Mul(partitionSize, big.NewInt(int64(partition+1)))
		bound.Add(bound, startInt)

		bound.FillBytes(splits[partition][:])
	}
	splits[numOfPartitions-1] = end

	return Range{start: start, rangeSplits: splits}, nil
}

// NumOfPartitions returns the number of partitions the range is split into.
func (r Range) NumOfPartitions() int {
	return len(r.rangeSplits)
}

// PartitionRange returns the [start, end) range for the requested partition.
func (r Range) PartitionRange(partition int) (uuid.UUID, uuid.UUID, error) {
	if partition < 0 || partition >= len(r.rangeSplits) {
		return uuid.Nil, uuid.Nil, errors.New("invalid partition index")
	}

	if partition == 0 {
		return r.start, r.rangeSplits[0], nil
	}

	return r.rangeSplits[partition-1], r.rangeSplits[partition], nil
}
