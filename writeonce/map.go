package writeonce

import (
	"fmt"
	"iter"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Map is a key/value store where a key, once set, keeps its value forever.
// Setting a key again to an equal value is a no-op.
//
// Map is not safe for concurrent use; see ShardedMap.
type Map[K comparable, V any] struct {
	data   map[K]V
	config config[V]
}

func New[K comparable, V any](opts ...Option[V]) *Map[K, V] {
	return &Map[K, V]{
		data:   map[K]V{},
		config: newConfig(opts),
	}
}

// Get returns the value for k, or an error wrapping ErrKeyNotFound.
func (m *Map[K, V]) Get(k K) (V, error) {
	v, ok := m.data[k]
	if !ok {
		return v, fmt.Errorf("%w: key=%v", ErrKeyNotFound, k)
	}
	return v, nil
}

func (m *Map[K, V]) Lookup(k K) (V, bool) {
	v, ok := m.data[k]
	return v, ok
}

// Set associates k with v. It returns a *ConflictError if k already holds a
// different value, in which case the map is left unchanged.
func (m *Map[K, V]) Set(k K, v V) error {
	old, ok := m.data[k]
	if !ok {
		m.data[k] = v
		if ce := m.config.logger.Check(zap.DebugLevel, "write-once key set"); ce != nil {
			ce.Write(zap.Any("key", k), zap.Any("value", v))
		}
		return nil
	}
	if m.config.equal(old, v) {
		return nil
	}
	err := &ConflictError{Key: k, New: v, Old: old}
	m.config.logger.Error("write-once conflict",
		zap.Any("key", k),
		zap.Any("new", v),
		zap.Any("old", old),
	)
	return err
}

// MustSet is the panic-on-conflict variant of Set.
func (m *Map[K, V]) MustSet(k K, v V) {
	if err := m.Set(k, v); err != nil {
		panic(err)
	}
}

// SetAll sets every entry and returns all conflicts combined.
// Entries that do not conflict are stored regardless.
func (m *Map[K, V]) SetAll(entries map[K]V) (err error) {
	for k, v := range entries {
		err = multierr.Append(err, m.Set(k, v))
	}
	return
}

func (m *Map[K, V]) Len() int {
	return len(m.data)
}

// Keys returns the keys in no particular order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.data {
			if !yield(k, v) {
				return
			}
		}
	}
}
