// Package group defines abstract interfaces for prime-order cryptographic
// groups, such as the G1 subgroup of a pairing-friendly elliptic curve.
//
// This package provides three core interfaces that abstract over the
// mathematical operations higher-level protocols (signature schemes,
// threshold schemes, polynomial commitments) need from a group:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking, making
// error handling explicit and predictable.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the bls381 package for a complete implementation over the BLS12-381
// G1 group.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Points returned by SetBytes satisfy the curve equation
//   - Random scalars are generated from cryptographically secure sources
//   - Points handed to protocol code lie in the prime-order subgroup, not
//     merely on the curve; clear the cofactor first where the two differ
package group
