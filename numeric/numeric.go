// Package numeric holds the small numeric helpers used by the demo CLI.
package numeric

import "golang.org/x/exp/constraints"

// Fibonacci returns the n-th Fibonacci number by naive recursion,
// with Fibonacci(0) = 0 and Fibonacci(1) = 1. Its cost is exponential in n.
func Fibonacci(n uint) uint {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// Min returns the smaller of a and b. When neither is smaller, b is returned.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b. When neither is larger, b is returned.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
