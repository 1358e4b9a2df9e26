package bls381

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// hEff is the effective cofactor x - 1 = 0xd201000000010001 for the BLS
// parameter x. The true G1 cofactor factors as (x-1)^2/3, and for this
// curve family one multiplication by (x-1) already projects any curve
// point into the order-r subgroup (Section 5 of
// https://eprint.iacr.org/2019/403.pdf). This shortcut is specific to
// that cofactor structure and does not transfer to other curves.
const hEff uint64 = 0xd201000000010001

// ClearCofactor maps a point satisfying the curve equation of E, not
// necessarily of order r, into the prime-order subgroup G1 by computing
// hEff * p with double-and-add.
func ClearCofactor(p PointAffine) PointAffine {
	q := G1Curve.mulByUint64(p.Proj(), hEff)
	return G1Curve.ToAffine(q)
}

// ClearCofactorProj is [ClearCofactor] over projective coordinates,
// avoiding the final normalization.
func ClearCofactorProj(p PointProj) PointProj {
	return G1Curve.mulByUint64(p, hEff)
}

// InSubgroup reports whether p lies in the prime-order subgroup G1, by
// checking r*p = infinity. The point at infinity is a member.
func InSubgroup(p PointProj) bool {
	return G1Curve.ScalarMult(p, fr.Modulus()).IsInfinity()
}
