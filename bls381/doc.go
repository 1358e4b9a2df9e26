// Package bls381 implements the group operations of the BLS12-381 G1
// curve: point arithmetic in affine and projective coordinates, cofactor
// clearing, the 11-isogeny map used by hash-to-curve constructions, and
// batch normalization of projective points.
//
// The base and scalar field arithmetic is provided by gnark-crypto's
// fp and fr packages; this package builds the curve-level protocol on
// top of them.
//
// # Curves
//
// Two curve instances are exposed. [G1Curve] is the target curve
//
//	E: y^2 = x^3 + 4
//
// whose points of order r form the G1 group used by pairing-based
// protocols. [IsoCurve] is the 11-isogenous companion
//
//	E': y^2 = x^3 + A'*x + B'
//
// onto which the simplified SWU map produces points; [IsogenyMap] moves
// them back to E. Both share one arithmetic engine, [Curve], which is
// parameterized by the coefficients a and b. The engine skips the
// multiplication by a inside doubling whenever the configured a is zero.
//
// # Subgroup membership
//
// A point on E is not necessarily in G1: the curve group has composite
// order h*r. [ClearCofactor] projects an arbitrary point of E into the
// order-r subgroup by multiplying with the effective cofactor
// 0xd201000000010001, which is sufficient for this curve family (see
// Section 5 of https://eprint.iacr.org/2019/403.pdf). [InSubgroup]
// checks membership directly.
//
// # Hash-to-curve pipeline
//
// A complete hash-to-curve implementation composes three steps: map a
// field element to E' via simplified SWU, apply [IsogenyMap], then
// [ClearCofactor]. This package supplies the latter two; hash-to-field
// and the SWU map itself belong to the caller.
//
// # Batch normalization
//
// [BatchNormalize] converts a slice of projective points to affine form
// with a single field inversion using Montgomery's trick.
// [BatchNormalizeParallel] does the same over independent chunks for
// large inputs.
//
// All operations are pure: inputs are never mutated and every result is
// a fresh value. The fixed constants (generator, cofactor, isogeny
// coefficients) are initialized once at package load and are read-only
// afterwards.
package bls381
