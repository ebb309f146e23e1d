// SPDX-License-Identifier: MIT
// Package triangle: sentinel error set.
// This file defines ONLY the package-level sentinel errors shared by every
// operation in the triangle package. All operations MUST return these
// sentinels and tests MUST match them via errors.Is. No operation panics on
// user input; panics are reserved for nonsensical option-constructor
// arguments (see types.go).

package triangle

import "errors"

// NOTE ON GATE ORDER
// ------------------
// Every message is prefixed with "triangle: ..." for consistency and to allow
// easy grepping across logs. The gates fire in a fixed order, each stage
// independent of the others, first failure wins:
// numeric (dynamic boundary only) -> positive -> triangle inequality.

var (
	// ErrNonNumeric is returned by the dynamic boundary (CanFormAny) when any
	// argument is not a Go integer or floating-point value (text, nil,
	// containers, booleans, complex numbers). The typed entry points cannot
	// produce it: their float64 parameters discharge this gate at compile time.
	ErrNonNumeric = errors.New("triangle: all sides must be numeric")

	// ErrNonPositiveSide is returned when any side is zero or negative. NaN
	// fails the strictly-positive comparison the same way and lands here too.
	ErrNonPositiveSide = errors.New("triangle: all sides must be positive")

	// ErrNotTriangle is returned by operations defined only for realizable
	// triangles (Classify, ClassifyAngle, Perimeter, Area) when the sides are
	// positive but violate the triangle inequality. CanForm reports the same
	// condition as (false, nil): a verdict, not a failure.
	ErrNotTriangle = errors.New("triangle: sides do not form a triangle")
)
