package triangle

import "math"

// Perimeter returns a + b + c for a realizable triangle. The full gate chain
// runs first: a degenerate or impossible triple reports ErrNotTriangle rather
// than a meaningless sum.
//
// Errors:
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN).
//   - ErrNotTriangle     — positive sides violating the triangle inequality.
//
// Complexity: O(1).
func Perimeter(a, b, c float64) (float64, error) {
	if err := validateTriangle(a, b, c); err != nil {
		return 0, err
	}

	return a + b + c, nil
}

// Area returns the area of a realizable triangle via Heron's formula.
//
// Algorithm:
//  1. s = (a + b + c) / 2               (semi-perimeter)
//  2. area = √(s·(s−a)·(s−b)·(s−c))
//
// The gates guarantee the product is positive in exact arithmetic; for
// triples just inside the inequality boundary float rounding can still push
// it fractionally below zero, so it is clamped to 0 before the square root.
// Extremely large sides may overflow the product to +Inf — native float64
// semantics carry through, as everywhere in this package.
//
// Errors:
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN).
//   - ErrNotTriangle     — positive sides violating the triangle inequality.
//
// Complexity: O(1).
func Area(a, b, c float64) (float64, error) {
	if err := validateTriangle(a, b, c); err != nil {
		return 0, err
	}

	s := (a + b + c) / 2
	h := s * (s - a) * (s - b) * (s - c)
	if h < 0 {
		h = 0
	}

	return math.Sqrt(h), nil
}
