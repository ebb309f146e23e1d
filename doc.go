// Package trigon is your pocket toolkit for triangle geometry — deciding
// which side triples form real triangles, then classifying and measuring
// the ones that do.
//
// 🚀 What is trigon?
//
//	A small, dependency-light library built around one predicate:
//		• CanForm: can sides (a, b, c) form a valid triangle?
//		• CanFormAny: the same verdict over untyped / mixed numeric input
//		• IsDegenerate: spot "flat" (collinear) triples explicitly
//		• Classify: Equilateral / Isosceles / Scalene
//		• ClassifyAngle: Acute / Right / Obtuse
//		• Perimeter & Area: elementary measurements (Heron's formula)
//
// ✨ Why choose trigon?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – staged validation, sentinel errors, in-code docs
//   - Pure functions – no state, no I/O, safe under any concurrency
//   - Predictable – strict inequality, documented float semantics
//
// Under the hood, the whole API lives in one subpackage:
//
//	triangle/ — the predicate, validation gates, classification & measurements
//	examples/ — runnable demos (candidate screening, structured audit log)
//
// Quick ASCII example:
//
//	        ▲
//	       ╱ ╲
//	    b ╱   ╲ a
//	     ╱     ╲
//	    ▲───────▲
//	        c
//
//	sides (3, 4, 5) form a right triangle; (1, 2, 3) collapse to a line.
//
// Dive into README.md for full examples and the validation-gate contract.
//
//	go get github.com/katalvlaran/trigon/triangle
package trigon
