package triangle

// CanForm — the triangle-inequality predicate.
//
// Description:
//
//	CanForm reports whether three side lengths can form a valid,
//	non-degenerate triangle. The result depends only on the multiset
//	{a, b, c}: the predicate is symmetric under every permutation of
//	its arguments.
//
// Evaluation order (fixed, each stage independent):
//  1. Positivity gate — every side must be strictly positive, otherwise
//     ErrNonPositiveSide. NaN fails this gate like any non-positive value.
//  2. Triangle inequality — true iff all three hold simultaneously:
//     a + b > c, a + c > b, b + c > a.
//
// The comparisons are strict: a "flat" triple, where one side equals the sum
// of the other two, has zero area and yields (false, nil) — a verdict, not a
// failure. Arithmetic is native float64 with no tolerance applied, so inputs
// whose mathematical sum lands exactly on the degenerate boundary may resolve
// either way under binary rounding; that sensitivity is an accepted
// characteristic, not a defect.
//
// The runtime numeric-type gate of the dynamic boundary does not exist here:
// the float64 parameters enforce it at compile time. Callers holding untyped
// values should go through CanFormAny.
//
// Errors:
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN).
//
// Complexity: O(1) time, O(1) memory. Pure, deterministic, and safe for
// unsynchronized concurrent use.
func CanForm(a, b, c float64) (bool, error) {
	if err := validateSides(a, b, c); err != nil {
		return false, err
	}

	return satisfiesInequality(a, b, c), nil
}

// CanFormAny is the dynamic boundary form of CanForm for callers holding
// untyped values (decoded JSON, heterogeneous tables, mixed int/float
// triples). Each argument must be a Go integer or floating-point value; the
// numeric gate inspects all three arguments before any value is examined, so
// a non-numeric argument wins over a non-positive one regardless of position.
// Accepted arguments are widened to float64 and delegated to CanForm; integer
// values stay exact up to 2⁵³, larger magnitudes round to the nearest float64
// before the gates run.
//
// Errors:
//   - ErrNonNumeric      — any argument is not an integer or float kind.
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN), from the delegated call.
//
// Complexity: O(1).
func CanFormAny(a, b, c any) (bool, error) {
	sa, ok := sideValue(a)
	if !ok {
		return false, ErrNonNumeric
	}
	sb, ok := sideValue(b)
	if !ok {
		return false, ErrNonNumeric
	}
	sc, ok := sideValue(c)
	if !ok {
		return false, ErrNonNumeric
	}

	return CanForm(sa, sb, sc)
}

// IsDegenerate reports whether three positive sides are collinear: one side
// equals the sum of the other two exactly. Degenerate triples have zero area;
// CanForm rejects them with (false, nil), and this helper names the reason.
// The equality is exact, mirroring the predicate's exact comparisons.
//
// Errors:
//   - ErrNonPositiveSide — any side ≤ 0 (or NaN).
//
// Complexity: O(1).
func IsDegenerate(a, b, c float64) (bool, error) {
	if err := validateSides(a, b, c); err != nil {
		return false, err
	}

	return a+b == c || a+c == b || b+c == a, nil
}
