// Package bits collects small bit-twiddling and modular-range helpers
// shared by the table, growth, and deletion logic.
package bits

import "golang.org/x/exp/constraints"

// NextPowerOf2 returns the smallest power of two greater than or equal to n,
// or 0 if n is 0.
func NextPowerOf2[T constraints.Unsigned](n T) T {
	if n == 0 {
		return 0
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}
