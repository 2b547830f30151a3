// Package pure holds small, side-effect free helpers for strings and slices.
//
// Every function returns a fresh value and leaves its inputs untouched.
package pure
