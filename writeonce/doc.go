// Package writeonce provides maps whose keys can be set only once.
//
// Writes must be consistent: the same key always maps to the same value.
// Writing an equal value again is accepted silently; writing a different value
// is rejected with a *ConflictError, which always means two different values
// were computed for what should be one deterministic key.
//
// Set returns the conflict so callers can decide how to treat it.
// MustSet panics with it, for call sites where a conflict is fatal.
//
// Values are compared with cmp.Equal by default, unexported fields included.
// Use WithEqual for a looser or cheaper comparison.
//
// Map assumes a single goroutine. ShardedMap adds locking, and Tableize
// builds a memo table on top of it.
package writeonce
