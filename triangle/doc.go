// Package triangle decides whether three side lengths can form a valid
// (non-degenerate) triangle, and classifies and measures the triangles
// they do form.
//
// 🚀 What is the triangle inequality?
//
//	For three lengths to form a triangle, the sum of every pair must
//	strictly exceed the remaining length:
//	  a + b > c  AND  a + c > b  AND  b + c > a
//	"Flat" triples — one side equal to the sum of the other two — are
//	collinear, enclose zero area, and are rejected.
//
// ✨ Key features:
//   - CanForm: the predicate itself, on plain float64 sides
//   - CanFormAny: dynamic boundary for untyped / mixed numeric values,
//     preserving the full runtime failure taxonomy
//   - IsDegenerate: explicit flat-triple detection
//   - Classify / ClassifyAngle: Equilateral/Isosceles/Scalene and
//     Acute/Right/Obtuse classification (epsilon-tolerant, WithEpsilon)
//   - Perimeter / Area: elementary measurements (Heron's formula)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/trigon/triangle"
//
//	ok, err := triangle.CanForm(3, 4, 5)        // true, nil
//	ok, err = triangle.CanForm(1, 2, 3)         // false, nil (degenerate)
//	_, err = triangle.CanForm(-1, 2, 3)         // ErrNonPositiveSide
//	_, err = triangle.CanFormAny("3", 4, 5)     // ErrNonNumeric
//
//	kind, _ := triangle.Classify(5, 5, 8)       // Isosceles
//	angle, _ := triangle.ClassifyAngle(3, 4, 5) // Right
//	area, _ := triangle.Area(3, 4, 5)           // 6
//
// Validation gates (fixed order, first failure wins):
//  1. numeric — dynamic boundary only; ErrNonNumeric
//  2. positive — every side strictly > 0; ErrNonPositiveSide
//  3. geometry — the inequality itself; false verdict (CanForm) or
//     ErrNotTriangle (operations requiring a realizable triangle)
//
// Numeric semantics: comparisons use native float64 arithmetic with no
// rounding and no tolerance in the predicate — only the classification
// comparisons are epsilon-tolerant. Degenerate boundaries under binary
// floating point may therefore resolve either way; callers needing exact
// verdicts should feed exactly representable inputs.
//
// Performance:
//
//   - Time:   O(1) per operation
//   - Memory: O(1), no allocations
//
// Every operation is pure and deterministic: no state, no I/O, safe for
// unsynchronized concurrent use from any number of goroutines.
//
// See examples in example_test.go and runnable demos under examples/.
package triangle
