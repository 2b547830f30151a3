package writeonce

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

type config[V any] struct {
	logger *zap.Logger
	equal  func(a, b V) bool
}

type Option[V any] func(*config[V])

// WithLogger logs first writes at debug level and conflicts at error level.
func WithLogger[V any](logger *zap.Logger) Option[V] {
	return func(c *config[V]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEqual replaces the default cmp.Equal comparison of values.
func WithEqual[V any](equal func(a, b V) bool) Option[V] {
	return func(c *config[V]) {
		if equal != nil {
			c.equal = equal
		}
	}
}

// exportAll lets cmp.Equal look into unexported fields, e.g. of *big.Int.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func newConfig[V any](opts []Option[V]) config[V] {
	c := config[V]{
		logger: zap.NewNop(),
		equal:  func(a, b V) bool { return cmp.Equal(a, b, exportAll) },
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
