// Package triangle defines core types and configuration options
// for the triangle subpackage of github.com/katalvlaran/trigon.
package triangle

import "math"

// Kind classifies a valid triangle by side equality.
//
// Equality of sides is decided within the configured epsilon (see Options);
// the classification order guarantees each triangle maps to exactly one Kind.
type Kind int

const (
	// Equilateral: all three sides equal.
	Equilateral Kind = iota
	// Isosceles: at least two sides equal (tested after Equilateral, so in
	// practice exactly two).
	Isosceles
	// Scalene: all three sides pairwise distinct.
	Scalene
)

// String provides a readable identifier for logs/errors (deterministic).
func (k Kind) String() string {
	switch k {
	case Equilateral:
		return "Equilateral"
	case Isosceles:
		return "Isosceles"
	case Scalene:
		return "Scalene"
	default:
		return "Unknown"
	}
}

// AngleKind classifies a valid triangle by its largest interior angle.
//
// The largest angle opposes the longest side, so the whole classification
// reduces to one law-of-cosines comparison (see ClassifyAngle).
type AngleKind int

const (
	// Acute: every interior angle is below 90°.
	Acute AngleKind = iota
	// Right: the largest interior angle is exactly 90° (within epsilon).
	Right
	// Obtuse: the largest interior angle exceeds 90°.
	Obtuse
)

// String provides a readable identifier for logs/errors (deterministic).
func (k AngleKind) String() string {
	switch k {
	case Acute:
		return "Acute"
	case Right:
		return "Right"
	case Obtuse:
		return "Obtuse"
	default:
		return "Unknown"
	}
}

// DefaultEpsilon is the absolute tolerance used by the classification
// comparisons (side equality in Classify, the right-angle test in
// ClassifyAngle). It never affects CanForm, CanFormAny, IsDegenerate or the
// validation gates: the predicate itself compares exactly, by contract.
const DefaultEpsilon = 1e-9

// Internal panic message (no magic strings).
const panicEpsilonInvalid = "triangle: WithEpsilon: eps must be finite, non-negative"

// Options configures the tolerance of the classification operations.
//
// Eps — absolute tolerance for side-equality and right-angle comparisons.
// Must be finite and ≥ 0; 0 demands exact equality. Default is
// DefaultEpsilon.
type Options struct {
	Eps float64
}

// Option represents a functional option for configuring classification.
type Option func(*Options)

// WithEpsilon sets the absolute classification tolerance.
// Must pass a finite, non-negative value; anything else panics with a stable
// message (invalid configuration is a programmer error, not user input).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Eps = eps }
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Eps: DefaultEpsilon (1e-9).
func DefaultOptions() Options {
	return Options{Eps: DefaultEpsilon}
}

// gatherOptions applies user-provided Option setters on top of defaults;
// last-writer-wins semantics.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
