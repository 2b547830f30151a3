package writeonce

// Tableize memoizes a pure function.
//
// Results are recorded with MustSet: if two concurrent callers compute
// different results for the same input, the function was not pure and the
// second caller panics with a *ConflictError.
//
// WARNING: the table is unbounded. Only tableize functions over a small domain.
func Tableize[I comparable, O any](pureFn func(I) O, opts ...Option[O]) func(I) O {
	return TableizeSharded(pureFn, 1, opts...)
}

// TableizeSharded is Tableize backed by a table with numShards shards.
func TableizeSharded[I comparable, O any](pureFn func(I) O, numShards int, opts ...Option[O]) func(I) O {
	table := NewSharded[I](numShards, opts...)
	return func(i I) O {
		if v, ok := table.Lookup(i); ok {
			return v
		}
		v := pureFn(i)
		table.MustSet(i, v)
		return v
	}
}
