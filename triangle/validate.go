// SPDX-License-Identifier: MIT
// Package triangle - validation stages shared by every operation.
//
// This file contains the small, tight helpers that:
//  1. Enforce the positivity gate (every side strictly > 0; NaN rejected by
//     the same comparison).
//  2. Enforce the triangle-inequality gate for operations that require a
//     realizable triangle.
//  3. Inspect dynamic (any-typed) arguments for the numeric gate.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(1) time and space; no hidden allocations.
package triangle

// validateSides enforces the positivity gate: every side must be strictly
// greater than zero. The check is written as !(side > 0) rather than
// side <= 0 so that NaN — for which both comparisons are false — is rejected
// here instead of leaking into the arithmetic.
//
// Complexity: O(1).
func validateSides(a, b, c float64) error {
	for _, side := range [3]float64{a, b, c} {
		if !(side > 0) {
			return ErrNonPositiveSide
		}
	}

	return nil
}

// satisfiesInequality reports whether every pairwise sum strictly exceeds the
// remaining side. Strict comparisons by contract: a degenerate triple, where
// one side equals the sum of the other two, does not satisfy the inequality.
// Native float64 arithmetic; no rounding, no tolerance.
//
// Complexity: O(1).
func satisfiesInequality(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// validateTriangle runs the positivity gate and then requires the triangle
// inequality to hold. Used by the operations that are only defined on
// realizable triangles (Classify, ClassifyAngle, Perimeter, Area).
//
// Complexity: O(1).
func validateTriangle(a, b, c float64) error {
	if err := validateSides(a, b, c); err != nil {
		return err
	}
	if !satisfiesInequality(a, b, c) {
		return ErrNotTriangle
	}

	return nil
}

// sideValue extracts a float64 from a dynamic argument, reporting whether the
// argument is one of the Go numeric kinds the package accepts. An explicit
// type switch keeps the hot path reflection-free; everything not listed
// (strings, nil, slices, maps, bool, complex, ...) is non-numeric.
//
// Complexity: O(1).
func sideValue(v any) (float64, bool) {
	switch s := v.(type) {
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int8:
		return float64(s), true
	case int16:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint8:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint64:
		return float64(s), true
	default:
		return 0, false
	}
}
