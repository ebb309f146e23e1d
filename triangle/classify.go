package triangle

import "math"

// Classify reports the side-equality Kind of a realizable triangle:
// Equilateral, Isosceles, or Scalene.
//
// The gates run first (positivity, then the triangle inequality), so a triple
// that cannot form a triangle never gets a Kind. Side equality is then tested
// within the configured absolute epsilon (WithEpsilon, default
// DefaultEpsilon); the validity gates themselves stay exact. Equilateral
// requires all three pairwise gaps inside the tolerance and is decided before
// Isosceles, so each triangle maps to exactly one Kind regardless of argument
// order.
//
// Errors:
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN).
//   - ErrNotTriangle     — positive sides violating the triangle inequality.
//
// Complexity: O(1).
func Classify(a, b, c float64, opts ...Option) (Kind, error) {
	if err := validateTriangle(a, b, c); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)

	var (
		ab = math.Abs(a-b) <= o.Eps // a ≈ b
		bc = math.Abs(b-c) <= o.Eps // b ≈ c
		ca = math.Abs(c-a) <= o.Eps // c ≈ a
	)
	// Approximate equality is not transitive, so Equilateral must check every
	// pair; any adjacent-pair shortcut would tie the Kind to argument order.
	switch {
	case ab && bc && ca:
		return Equilateral, nil
	case ab || bc || ca:
		return Isosceles, nil
	default:
		return Scalene, nil
	}
}

// ClassifyAngle reports the largest-angle AngleKind of a realizable triangle:
// Acute, Right, or Obtuse.
//
// The largest interior angle opposes the longest side, so one law-of-cosines
// comparison decides the whole classification: with z the longest side and
// x, y the other two, compare x² + y² against z² within the configured
// absolute epsilon. Equal squares ⇒ Right; z² greater ⇒ Obtuse; otherwise
// Acute. Validity gates run first and stay exact.
//
// Errors:
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN).
//   - ErrNotTriangle     — positive sides violating the triangle inequality.
//
// Complexity: O(1).
func ClassifyAngle(a, b, c float64, opts ...Option) (AngleKind, error) {
	if err := validateTriangle(a, b, c); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)

	x, y, z := ascending(a, b, c)
	var (
		legs = x*x + y*y // sum of squares of the two shorter sides
		hyp  = z * z     // square of the longest side
	)
	switch {
	case math.Abs(legs-hyp) <= o.Eps:
		return Right, nil
	case hyp > legs:
		return Obtuse, nil
	default:
		return Acute, nil
	}
}

// ascending orders three values so that x ≤ y ≤ z.
func ascending(a, b, c float64) (x, y, z float64) {
	x, y, z = a, b, c
	if x > y {
		x, y = y, x
	}
	if y > z {
		y, z = z, y
	}
	if x > y {
		x, y = y, x
	}

	return x, y, z
}
