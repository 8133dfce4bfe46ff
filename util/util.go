package util

import "golang.org/x/exp/constraints"

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// NextMultiple rounds n up to the closest multiple of m. m must be positive.
func NextMultiple[A constraints.Integer](n A, m A) A {
	if r := n % m; r != 0 {
		return n + (m - r)
	}
	return n
}

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
