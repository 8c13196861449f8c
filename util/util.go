package util

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Integer | constraints.Float](v, lo, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mod is the non-negative remainder of a / n.
func Mod[A constraints.Integer](a, n A) A {
	return ((a % n) + n) % n
}

// MapValue maps v from [min, max] onto [lo, hi], rounding half away from zero.
func MapValue(v, min, max float64, lo, hi int) int {
	normal := (v - min) / (max - min)
	return lo + int(math.Round(normal*float64(hi-lo)))
}
