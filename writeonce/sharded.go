package writeonce

import (
	"hash/maphash"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

type shard[K comparable, V any] struct {
	mu sync.Mutex
	m  *Map[K, V]
}

// ShardedMap is a Map safe for concurrent use.
// Keys are spread over a fixed number of independently locked shards.
type ShardedMap[K comparable, V any] struct {
	shards []*shard[K, V]
	seed   maphash.Seed
}

func NewSharded[K comparable, V any](numShards int, opts ...Option[V]) *ShardedMap[K, V] {
	if numShards <= 0 {
		panic("numShards should be greater than 0")
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = &shard[K, V]{m: New[K](opts...)}
	}
	return &ShardedMap[K, V]{shards: shards, seed: maphash.MakeSeed()}
}

func (s *ShardedMap[K, V]) shardOf(k K) *shard[K, V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[s.hash(k)%uint64(len(s.shards))]
}

// hash agrees with Go's key equality, so keys like 0.0 and -0.0 share a shard.
func (s *ShardedMap[K, V]) hash(k K) uint64 {
	if str, ok := any(k).(string); ok {
		return xxhash.Sum64String(str)
	}
	return maphash.Comparable(s.seed, k)
}

func (s *ShardedMap[K, V]) Get(k K) (V, error) {
	sh := s.shardOf(k)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.m.Get(k)
}

func (s *ShardedMap[K, V]) Lookup(k K) (V, bool) {
	sh := s.shardOf(k)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.m.Lookup(k)
}

func (s *ShardedMap[K, V]) Set(k K, v V) error {
	sh := s.shardOf(k)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.m.Set(k, v)
}

func (s *ShardedMap[K, V]) MustSet(k K, v V) {
	if err := s.Set(k, v); err != nil {
		panic(err)
	}
}

func (s *ShardedMap[K, V]) SetAll(entries map[K]V) (err error) {
	for k, v := range entries {
		err = multierr.Append(err, s.Set(k, v))
	}
	return
}

func (s *ShardedMap[K, V]) Len() (n int) {
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += sh.m.Len()
		sh.mu.Unlock()
	}
	return
}
