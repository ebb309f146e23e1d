// Package triangle_test contains unit tests for the triangle-inequality
// predicate and its companions. The tests cover the canonical scenario grid
// (valid, invalid, degenerate), argument-order independence, float-boundary
// behavior, large magnitudes, and the non-finite corner cases. Sentinel
// errors are matched strictly via errors.Is (through testify's ErrorIs).
package triangle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/trigon/triangle"
	"github.com/stretchr/testify/assert"
)

// permutations3 returns all six argument orders of a triple.
func permutations3(a, b, c float64) [][3]float64 {
	return [][3]float64{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
}

//----------------------------------------------------------------------------//
// Verdicts: valid, invalid, degenerate
//----------------------------------------------------------------------------//

// TestCanForm_ValidTriangles verifies the predicate accepts classic valid
// triples: scalene, equilateral, isosceles, fractional and scaled-up sides.
func TestCanForm_ValidTriangles(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"RightScalene", 3, 4, 5},
		{"Equilateral", 5, 5, 5},
		{"UnitEquilateral", 1, 1, 1},
		{"Scalene", 3, 4, 6},
		{"Isosceles", 5, 5, 8},
		{"Fractional", 2.5, 3.5, 4.0},
		{"ScaledUp", 100, 150, 200},
		{"Tiny", 0.001, 0.002, 0.002},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := triangle.CanForm(tc.a, tc.b, tc.c)
			assert.NoError(t, err, "valid sides must not error")
			assert.True(t, ok, "(%g, %g, %g) must form a triangle", tc.a, tc.b, tc.c)
		})
	}
}

// TestCanForm_InvalidTriangles verifies that a triple whose longest side
// outweighs the other two yields a plain false verdict, never an error.
func TestCanForm_InvalidTriangles(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"OneSideTooLong", 1, 2, 5},
		{"LegsTooShort", 1, 1, 3},
		{"ExtremeGap", 1, 1, 10},
		{"JustOverBoundary", 1, 2, 3.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := triangle.CanForm(tc.a, tc.b, tc.c)
			assert.NoError(t, err, "invalid geometry is a verdict, not a failure")
			assert.False(t, ok, "(%g, %g, %g) must not form a triangle", tc.a, tc.b, tc.c)
		})
	}
}

// TestCanForm_DegenerateTriples verifies that flat (collinear) triples fail
// the strict inequality and that IsDegenerate names them explicitly.
func TestCanForm_DegenerateTriples(t *testing.T) {
	cases := [][3]float64{
		{1, 2, 3},
		{1, 1, 2},
		{2, 2, 4},
		{1.5, 1.5, 3.0},
		{5, 3, 2},
	}
	for _, s := range cases {
		ok, err := triangle.CanForm(s[0], s[1], s[2])
		assert.NoError(t, err, "degenerate sides must not error: %v", s)
		assert.False(t, ok, "degenerate %v must not form a triangle", s)

		flat, err := triangle.IsDegenerate(s[0], s[1], s[2])
		assert.NoError(t, err)
		assert.True(t, flat, "IsDegenerate(%v) must report the flat triple", s)
	}
}

// TestCanForm_OrderIndependence verifies the outcome depends only on the
// multiset of sides, never on argument order, across every outcome class.
func TestCanForm_OrderIndependence(t *testing.T) {
	for _, p := range permutations3(3, 4, 5) {
		ok, err := triangle.CanForm(p[0], p[1], p[2])
		assert.NoError(t, err)
		assert.True(t, ok, "permutation %v of a valid triple must stay true", p)
	}
	for _, p := range permutations3(1, 2, 5) {
		ok, err := triangle.CanForm(p[0], p[1], p[2])
		assert.NoError(t, err)
		assert.False(t, ok, "permutation %v of an invalid triple must stay false", p)
	}
	for _, p := range permutations3(1, 2, 3) {
		ok, err := triangle.CanForm(p[0], p[1], p[2])
		assert.NoError(t, err)
		assert.False(t, ok, "permutation %v of a degenerate triple must stay false", p)
	}
	for _, p := range permutations3(-1, 2, 3) {
		_, err := triangle.CanForm(p[0], p[1], p[2])
		assert.ErrorIs(t, err, triangle.ErrNonPositiveSide,
			"permutation %v must fail the positivity gate", p)
	}
}

//----------------------------------------------------------------------------//
// Float semantics
//----------------------------------------------------------------------------//

// TestCanForm_FloatBoundary pins the native-float64 contract near the
// degenerate boundary: comparisons are exact, so representation artifacts
// decide triples whose mathematical sum lands on the boundary.
func TestCanForm_FloatBoundary(t *testing.T) {
	// The documented contract leaves the rounding boundary unspecified: the
	// verdict must simply agree with the strict float64 comparisons. Under
	// IEEE arithmetic 0.1+0.2 rounds up to 0.30000000000000004, above 0.3.
	a, b, c := 0.1, 0.2, 0.3
	want := a+b > c && a+c > b && b+c > a
	ok, err := triangle.CanForm(a, b, c)
	assert.NoError(t, err)
	assert.Equal(t, want, ok, "verdict must match the strict comparisons")

	// The same flat shape on exactly representable halves fails.
	ok, err = triangle.CanForm(1.5, 1.5, 3.0)
	assert.NoError(t, err)
	assert.False(t, ok, "1.5+1.5 equals 3.0 exactly")

	// Barely inside the boundary: the longest side one ULP below a+b.
	ok, err = triangle.CanForm(1, 1, 1.9999999999999998)
	assert.NoError(t, err)
	assert.True(t, ok, "one ULP of slack must satisfy the strict inequality")

	// Near misses on either side of a+b = c.
	ok, err = triangle.CanForm(1, 2, 2.5)
	assert.NoError(t, err)
	assert.True(t, ok, "1+2 > 2.5")

	ok, err = triangle.CanForm(1, 2, 3.1)
	assert.NoError(t, err)
	assert.False(t, ok, "1+2 < 3.1")
}

// TestCanForm_LargeMagnitudes verifies the predicate at the extreme end of
// the float64 range, where the pairwise sums must stay finite and ordered.
func TestCanForm_LargeMagnitudes(t *testing.T) {
	quarter := math.MaxFloat64 / 4
	ok, err := triangle.CanForm(quarter, quarter, quarter)
	assert.NoError(t, err)
	assert.True(t, ok, "equilateral MaxFloat64/4 triple must pass without overflow")

	ok, err = triangle.CanForm(1e300, 1e300, 1.5e300)
	assert.NoError(t, err)
	assert.True(t, ok, "2e300 > 1.5e300")

	ok, err = triangle.CanForm(1e300, 1e300, 2.5e300)
	assert.NoError(t, err)
	assert.False(t, ok, "2e300 < 2.5e300")
}

// TestCanForm_NonFinite verifies NaN fails the positivity gate and +Inf can
// never be the longest side of a closed figure.
func TestCanForm_NonFinite(t *testing.T) {
	for _, p := range permutations3(math.NaN(), 4, 5) {
		_, err := triangle.CanForm(p[0], p[1], p[2])
		assert.ErrorIs(t, err, triangle.ErrNonPositiveSide,
			"NaN side in %v must fail the positivity gate", p)
	}

	_, err := triangle.CanForm(math.Inf(-1), 4, 5)
	assert.ErrorIs(t, err, triangle.ErrNonPositiveSide, "-Inf is not positive")

	// +Inf passes positivity but no finite pair can strictly exceed it.
	ok, err := triangle.CanForm(math.Inf(1), 4, 5)
	assert.NoError(t, err)
	assert.False(t, ok, "+Inf side must yield a false verdict")
}

//----------------------------------------------------------------------------//
// IsDegenerate
//----------------------------------------------------------------------------//

// TestIsDegenerate_Verdicts verifies exact flat-triple detection and its
// separation from plain invalidity.
func TestIsDegenerate_Verdicts(t *testing.T) {
	flat, err := triangle.IsDegenerate(1, 2, 3)
	assert.NoError(t, err)
	assert.True(t, flat, "1+2 = 3 exactly")

	flat, err = triangle.IsDegenerate(3, 4, 5)
	assert.NoError(t, err)
	assert.False(t, flat, "a proper triangle is not degenerate")

	// Strictly invalid is not the same as flat.
	flat, err = triangle.IsDegenerate(1, 2, 5)
	assert.NoError(t, err)
	assert.False(t, flat, "1+2 < 5 is invalid but not collinear")
}

// TestIsDegenerate_Gate verifies the positivity gate still runs first.
func TestIsDegenerate_Gate(t *testing.T) {
	_, err := triangle.IsDegenerate(0, 1, 1)
	assert.ErrorIs(t, err, triangle.ErrNonPositiveSide)

	_, err = triangle.IsDegenerate(1, -2, 3)
	assert.ErrorIs(t, err, triangle.ErrNonPositiveSide)
}
