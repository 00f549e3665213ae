package repartition

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uPartition/bsp"
	"github.com/mycok/uPartition/bsp/aggregator"
	"github.com/mycok/uPartition/bsp/queue"
)

// Memory keys used by the program.
const (
	voteToHaltKey  = "voteToHalt"
	clustersKey    = "clusters"
	labelCountsKey = "labelCounts"
)

// vertexState is stored in the value field of every vertex.
type vertexState struct {
	label int64
	// rng is owned by the vertex so that random draws do not depend on
	// the order in which workers pick up vertices.
	rng *rand.Rand
}

func newVertexState(seed int64, id string, label int64) *vertexState {
	return &vertexState{
		label: label,
		rng:   rand.New(rand.NewSource(seed ^ int64(xxhash.Sum64String(id)))),
	}
}

// Static and compile-time check to ensure program implements the
// bsp.VertexProgram interface.
var _ bsp.VertexProgram = (*program)(nil)

// program implements capacity-constrained label propagation.
//
// Super step 0 records the initial labels (drawing random ones when running
// with mocked partitions), super step 1 announces them and every following
// super step lets each vertex adopt the label with the highest accumulated
// co-occurrence weight among its neighbors, provided the target partition
// has room for it.
type program struct {
	cfg   *Config
	scope bsp.MessageScope
}

func newProgram(cfg *Config) *program {
	return &program{
		cfg:   cfg,
		scope: bsp.MessageScope{EdgeLabel: cfg.EdgeLabel, Direction: bsp.Both},
	}
}

func (p *program) MemoryKeys() []bsp.MemoryKey {
	return []bsp.MemoryKey{
		{Name: voteToHaltKey, Combinator: aggregator.BoolAnd{}},
		{Name: clustersKey, Combinator: ClusterMerge{}},
		{Name: labelCountsKey, Combinator: aggregator.IntMapSum{}},
	}
}

func (p *program) MessageScopes() []bsp.MessageScope {
	return []bsp.MessageScope{p.scope}
}

func (p *program) Setup(mem *bsp.Memory) error {
	if err := mem.Set(voteToHaltKey, true); err != nil {
		return err
	}

	if len(p.cfg.Clusters) == 0 {
		return nil
	}

	return mem.Set(clustersKey, p.cfg.Clusters.Clone())
}

func (p *program) Execute(v *bsp.Vertex, msgr bsp.Messenger, mem bsp.VertexMemory) error {
	st := v.Value().(*vertexState)

	switch mem.Iteration() {
	case 0:
		if p.cfg.MockedPartitions {
			st.label = st.rng.Int63n(int64(p.cfg.ClusterCount))
		}

		return mem.Add(labelCountsKey, map[int64]int64{st.label: 1})
	case 1:
		// Nothing can be received yet.
		return p.announce(v, st, msgr)
	}

	halt := true
	if st.rng.Float64() < p.cfg.AcquireLabelProbability {
		acquired, err := p.acquireMajorityLabel(v, st, msgr.ReceiveMessages(), mem)
		if err != nil {
			return err
		}

		halt = !acquired
	}

	if err := mem.Add(voteToHaltKey, halt); err != nil {
		return err
	}

	return p.announce(v, st, msgr)
}

func (p *program) Terminate(mem *bsp.Memory) (bool, error) {
	switch iteration := mem.Iteration(); {
	case iteration == 0:
		if err := p.initClusters(mem); err != nil {
			return false, err
		}

		return false, mem.Set(voteToHaltKey, true)
	case iteration == 1:
		// No votes are cast before labels have been exchanged.
		return false, mem.Set(voteToHaltKey, true)
	}

	if mem.Get(voteToHaltKey).(bool) {
		return true, nil
	}

	// AND has no memory of its own; re-arm it for the next round.
	return false, mem.Set(voteToHaltKey, true)
}

func (p *program) announce(v *bsp.Vertex, st *vertexState, msgr bsp.Messenger) error {
	return msgr.SendMessage(p.scope, LabelMessage{SenderID: v.ID(), Label: st.label})
}

// acquireMajorityLabel weights the labels announced by the neighbors with
// the co-occurrence count of the connecting edge and tries to migrate the
// vertex to the heaviest one. It reports whether the vertex changed label.
func (p *program) acquireMajorityLabel(
	v *bsp.Vertex, st *vertexState, msgIt queue.Iterator, mem bsp.VertexMemory,
) (bool, error) {

	weights := make(map[int64]int64)

	for msgIt.Next() {
		msg := msgIt.Message().(LabelMessage)

		e, found := v.EdgeTo(msg.SenderID, p.scope.Direction, p.scope.EdgeLabel)
		if !found {
			return false, &GraphInconsistencyError{
				VertexID:   v.ID(),
				NeighborID: msg.SenderID,
				EdgeLabel:  p.scope.EdgeLabel,
			}
		}

		w, err := edgeWeight(e)
		if err != nil {
			return false, err
		}

		weights[msg.Label] += w
	}

	if err := msgIt.Error(); err != nil {
		return false, err
	}

	// Vertices without qualifying neighbors have nothing to vote on.
	if len(weights) == 0 {
		return false, nil
	}

	majority := majorityLabel(weights)
	if majority == st.label {
		return false, nil
	}

	return p.migrate(st, majority, mem)
}

// migrate moves the vertex to newLabel if the target partition has
// available capacity. The usage of the target partition is normalized by
// the number of partitions so that migrations are spread across rounds.
//
// Usage is never checked against a lower bound; a partition that is left by
// several vertices within the same round may report a stale or negative
// usage.
func (p *program) migrate(st *vertexState, newLabel int64, mem bsp.VertexMemory) (bool, error) {
	clusters, _ := mem.Get(clustersKey).(Clusters)

	oldCl, found := clusters[st.label]
	if !found {
		return false, fmt.Errorf("migrate from %d: %w", st.label, ErrUnknownCluster)
	}

	newCl, found := clusters[newLabel]
	if !found {
		return false, fmt.Errorf("migrate to %d: %w", newLabel, ErrUnknownCluster)
	}

	available := newCl.Capacity - newCl.Usage/int64(p.cfg.ClusterCount)
	if available <= 0 {
		return false, nil
	}

	err := mem.Add(clustersKey, Clusters{
		st.label: {Capacity: oldCl.Capacity, Usage: oldCl.Usage - 1},
		newLabel: {Capacity: newCl.Capacity, Usage: newCl.Usage + 1},
	})
	if err != nil {
		return false, err
	}

	st.label = newLabel

	return true, nil
}

// initClusters runs at the barrier of the setup super step. With mocked
// partitions the cluster usage is derived from the random labels; otherwise
// every assigned label must have a descriptor.
func (p *program) initClusters(mem *bsp.Memory) error {
	counts, _ := mem.Get(labelCountsKey).(map[int64]int64)

	if p.cfg.MockedPartitions {
		return mem.Set(clustersKey, mockedClusters(p.cfg, counts))
	}

	clusters, _ := mem.Get(clustersKey).(Clusters)

	var err error
	for _, label := range sortedLabels(counts) {
		cl, found := clusters[label]
		if !found {
			err = multierror.Append(err, fmt.Errorf("label %d: %w", label, ErrUnknownCluster))

			continue
		}

		if cl.Usage != counts[label] {
			p.cfg.Logger.WithFields(logrus.Fields{
				"label":    label,
				"usage":    cl.Usage,
				"vertices": counts[label],
			}).Warn("cluster usage does not match the number of labelled vertices")
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// mockedClusters builds one descriptor per partition. Capacities are taken
// from the configured descriptors when available and otherwise spread the
// vertices evenly across the partitions.
func mockedClusters(cfg *Config, counts map[int64]int64) Clusters {
	var total int64
	for _, n := range counts {
		total += n
	}

	k := int64(cfg.ClusterCount)
	defaultCapacity := (total + k - 1) / k

	clusters := make(Clusters, k)
	for label := int64(0); label < k; label++ {
		capacity := defaultCapacity
		if cl, found := cfg.Clusters[label]; found {
			capacity = cl.Capacity
		}

		clusters[label] = Cluster{Capacity: capacity, Usage: counts[label]}
	}

	return clusters
}

// majorityLabel returns the label with the highest weight. Ties are broken in
// favour of the lowest label.
func majorityLabel(weights map[int64]int64) int64 {
	var (
		best       int64
		bestWeight int64 = -1
	)

	for label, w := range weights {
		if w > bestWeight || (w == bestWeight && label < best) {
			best, bestWeight = label, w
		}
	}

	return best
}

func edgeWeight(e *bsp.Edge) (int64, error) {
	switch w := e.Value().(type) {
	case int64:
		return w, nil
	case int:
		return int64(w), nil
	default:
		return 0, fmt.Errorf("edge %q -> %q: unsupported weight type %T", e.SrcID(), e.DestID(), e.Value())
	}
}

func sortedLabels(counts map[int64]int64) []int64 {
	labels := make([]int64, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}

	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	return labels
}
