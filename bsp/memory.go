package bsp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/mycok/uPartition/bsp/aggregator"
)

var (
	// ErrUnknownMemoryKey is returned when reading or writing a key that is
	// not part of the program's memory schema.
	ErrUnknownMemoryKey = errors.New("unknown memory key")

	// ErrMemoryReadOnly is returned by Memory.Set while a super step is
	// being executed.
	ErrMemoryReadOnly = errors.New("memory is read-only while a super step is executing")
)

// MemoryKey declares a global, per-run value and the combinator used to fold
// the partial values contributed to it by vertices.
type MemoryKey struct {
	Name       string
	Combinator aggregator.Combinator
}

// Memory holds the values committed at the last super step barrier.
//
// Vertices never write to Memory directly: their contributions are buffered
// and folded into a fresh set of values at the barrier, which then replaces
// the committed one. Reads during a super step therefore always observe the
// previous super step's values.
type Memory struct {
	iteration int
	executing bool
	schema    map[string]aggregator.Combinator
	committed map[string]interface{}
}

func newMemory() *Memory {
	return &Memory{
		schema:    make(map[string]aggregator.Combinator),
		committed: make(map[string]interface{}),
	}
}

// init validates and installs the provided schema and drops any previously
// committed values.
func (m *Memory) init(keys []MemoryKey) error {
	var (
		err    error
		schema = make(map[string]aggregator.Combinator, len(keys))
	)

	for i, k := range keys {
		switch {
		case k.Name == "":
			err = multierror.Append(err, fmt.Errorf("memory key %d: empty name", i))
		case k.Combinator == nil:
			err = multierror.Append(err, fmt.Errorf("memory key %q: combinator not provided", k.Name))
		default:
			if _, dup := schema[k.Name]; dup {
				err = multierror.Append(err, fmt.Errorf("memory key %q: declared more than once", k.Name))

				continue
			}

			schema[k.Name] = k.Combinator
		}
	}

	if err != nil {
		return err
	}

	m.schema = schema
	m.committed = make(map[string]interface{}, len(schema))
	m.iteration = 0
	m.executing = false

	return nil
}

// Iteration returns the current super step.
func (m *Memory) Iteration() int { return m.iteration }

// IsInitialIteration returns true while the setup super step is running.
func (m *Memory) IsInitialIteration() bool { return m.iteration == 0 }

// Get returns the value committed for key, or nil if no value has been
// committed yet.
func (m *Memory) Get(key string) interface{} {
	return m.committed[key]
}

// Exists returns true if a value has been committed for key.
func (m *Memory) Exists(key string) bool {
	_, exists := m.committed[key]

	return exists
}

// Keys returns the sorted names of the keys in the memory schema.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.schema))
	for k := range m.schema {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set assigns val to key. Set may only be called outside of a super step,
// i.e. from the program's Setup and Terminate methods.
func (m *Memory) Set(key string, val interface{}) error {
	if m.executing {
		return fmt.Errorf("set %q: %w", key, ErrMemoryReadOnly)
	}

	if err := m.validate(key, val); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	m.committed[key] = val

	return nil
}

func (m *Memory) validate(key string, val interface{}) error {
	comb, exists := m.schema[key]
	if !exists {
		return ErrUnknownMemoryKey
	}

	return comb.Validate(val)
}

// commit folds the contributions of a super step into a new set of values,
// seeded with the currently committed ones, and swaps it in. Contributions
// are folded in the order in which they appear in the slice; nil entries
// are skipped.
func (m *Memory) commit(contribs []*vertexContext) {
	next := make(map[string]interface{}, len(m.committed))
	for k, v := range m.committed {
		next[k] = v
	}

	for _, c := range contribs {
		if c == nil {
			continue
		}

		for _, kv := range c.adds {
			acc, exists := next[kv.key]
			if !exists {
				next[kv.key] = kv.val

				continue
			}

			next[kv.key] = m.schema[kv.key].Combine(acc, kv.val)
		}
	}

	m.committed = next
}
