package pure

// Unique returns the distinct elements of items in first-occurrence order.
func Unique[T comparable](items []T) []T {
	return UniqueFunc(items, func(item T) T { return item })
}

// UniqueFunc deduplicates items by the key derived from each element.
// Only the first element for each key is kept.
func UniqueFunc[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	res := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, item)
	}
	return res
}
