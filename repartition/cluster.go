package repartition

import (
	"sort"

	"github.com/mycok/uPartition/bsp/aggregator"
)

// Cluster describes the capacity of a partition and the number of vertices
// currently assigned to it.
type Cluster struct {
	Capacity int64 `json:"capacity" toml:"capacity" mapstructure:"capacity"`
	Usage    int64 `json:"usage" toml:"usage" mapstructure:"usage"`
}

// Clusters maps a partition label to its descriptor.
type Clusters map[int64]Cluster

// Clone returns a copy of the descriptor map.
func (c Clusters) Clone() Clusters {
	if c == nil {
		return nil
	}

	out := make(Clusters, len(c))
	for label, cl := range c {
		out[label] = cl
	}

	return out
}

// Labels returns the partition labels in ascending order.
func (c Clusters) Labels() []int64 {
	labels := make([]int64, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	return labels
}

// TotalUsage returns the sum of the usage of every partition.
func (c Clusters) TotalUsage() int64 {
	var total int64
	for _, cl := range c {
		total += cl.Usage
	}

	return total
}

// Static and compile-time check to ensure ClusterMerge implements the
// aggregator.Combinator interface.
var _ aggregator.Combinator = ClusterMerge{}

// ClusterMerge merges Clusters values key by key; for a key present in both
// operands the right-hand descriptor overwrites the left-hand one.
//
// The merge is only order-independent as long as no two vertices update the
// same partition within a super step. The engine folds contributions in
// vertex insertion order, so conflicting updates resolve to the last vertex.
type ClusterMerge struct{}

// Type returns the type of this combinator.
func (ClusterMerge) Type() string { return "ClusterMerge" }

// Validate checks that val is a Clusters map.
func (c ClusterMerge) Validate(val interface{}) error {
	if _, ok := val.(Clusters); !ok {
		return aggregator.ErrTypeMismatch
	}

	return nil
}

// Combine returns a new map holding acc overwritten by val.
func (ClusterMerge) Combine(acc, val interface{}) interface{} {
	out := acc.(Clusters).Clone()
	if out == nil {
		out = make(Clusters)
	}

	for label, cl := range val.(Clusters) {
		out[label] = cl
	}

	return out
}
