package bls381

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// randAffine samples a uniformly random finite point on c by picking
// random x-coordinates until x^3 + a*x + b is a square. For G1Curve the
// result is a point of the full curve group, not necessarily of the
// order-r subgroup.
func randAffine(t *testing.T, c *Curve) PointAffine {
	t.Helper()
	for {
		var x fp.Element
		if _, err := x.SetRandom(); err != nil {
			t.Fatal(err)
		}
		var rhs, y fp.Element
		rhs.Square(&x)
		rhs.Mul(&rhs, &x)
		ax := c.mulByA(&x)
		rhs.Add(&rhs, &ax)
		b := c.B()
		rhs.Add(&rhs, &b)
		if y.Sqrt(&rhs) != nil {
			return NewPointAffine(x, y)
		}
	}
}

// randProj samples a random finite point and rescales it by a random
// nonzero Z, so the projective representation is not normalized.
func randProj(t *testing.T, c *Curve) PointProj {
	t.Helper()
	a := randAffine(t, c)
	var z fp.Element
	for z.IsZero() {
		if _, err := z.SetRandom(); err != nil {
			t.Fatal(err)
		}
	}
	var p PointProj
	p.X.Mul(&a.X, &z)
	p.Y.Mul(&a.Y, &z)
	p.Z = z
	return p
}

func TestCurveParams(t *testing.T) {
	t.Run("GeneratorOnCurve", func(t *testing.T) {
		if !G1Curve.IsOnCurveAffine(G1Curve.Generator()) {
			t.Fatal("generator does not satisfy y^2 = x^3 + 4")
		}
	})

	t.Run("GeneratorOrder", func(t *testing.T) {
		g := G1Curve.Generator().Proj()
		if !G1Curve.ScalarMult(g, fr.Modulus()).IsInfinity() {
			t.Fatal("r*G != infinity")
		}
	})

	t.Run("CofactorInverse", func(t *testing.T) {
		var h, prod fr.Element
		h.SetBigInt(G1Curve.Cofactor())
		inv := G1Curve.CofactorInv()
		prod.Mul(&h, &inv)
		if !prod.IsOne() {
			t.Fatal("cofactor * cofactorInv != 1 mod r")
		}
	})

	t.Run("CoefficientA", func(t *testing.T) {
		a := G1Curve.A()
		if !a.IsZero() {
			t.Fatal("G1 coefficient a != 0")
		}
		a = IsoCurve.A()
		if a.IsZero() {
			t.Fatal("isogenous curve coefficient a = 0")
		}
	})

	t.Run("RejectMalformedLiteral", func(t *testing.T) {
		if _, err := newFp("not a number"); err == nil {
			t.Error("newFp accepted a malformed literal")
		}
		if _, err := newFr("12a34"); err == nil {
			t.Error("newFr accepted a malformed literal")
		}
	})

	t.Run("RejectNonCanonicalLiteral", func(t *testing.T) {
		// p itself, and p + 1: both must be rejected, not reduced.
		p := fp.Modulus()
		if _, err := newFp(p.String()); err == nil {
			t.Error("newFp accepted the modulus")
		}
		if _, err := newFp(new(big.Int).Add(p, big.NewInt(1)).String()); err == nil {
			t.Error("newFp accepted modulus + 1")
		}
		if _, err := newFp("-1"); err == nil {
			t.Error("newFp accepted a negative literal")
		}
		if _, err := newFr(fr.Modulus().String()); err == nil {
			t.Error("newFr accepted the modulus")
		}
	})
}

func TestPointArithmetic(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		p := randProj(t, G1Curve)
		inf := ProjInfinity()

		if !G1Curve.Equal(G1Curve.Add(p, inf), p) {
			t.Error("P + 0 != P")
		}
		if !G1Curve.Equal(G1Curve.Add(inf, p), p) {
			t.Error("0 + P != P")
		}
		if !G1Curve.Double(inf).IsInfinity() {
			t.Error("2*0 != 0")
		}
	})

	t.Run("Inverse", func(t *testing.T) {
		p := randProj(t, G1Curve)
		if !G1Curve.Add(p, G1Curve.Neg(p)).IsInfinity() {
			t.Error("P + (-P) != 0")
		}
	})

	t.Run("Commutative", func(t *testing.T) {
		p := randProj(t, G1Curve)
		q := randProj(t, G1Curve)
		if !G1Curve.Equal(G1Curve.Add(p, q), G1Curve.Add(q, p)) {
			t.Error("P + Q != Q + P")
		}
	})

	t.Run("Associative", func(t *testing.T) {
		p := randProj(t, G1Curve)
		q := randProj(t, G1Curve)
		r := randProj(t, G1Curve)
		l := G1Curve.Add(G1Curve.Add(p, q), r)
		rr := G1Curve.Add(p, G1Curve.Add(q, r))
		if !G1Curve.Equal(l, rr) {
			t.Error("(P + Q) + R != P + (Q + R)")
		}
	})

	t.Run("AddSelfIsDouble", func(t *testing.T) {
		p := randProj(t, G1Curve)
		if !G1Curve.Equal(G1Curve.Add(p, p), G1Curve.Double(p)) {
			t.Error("P + P != 2P")
		}
	})

	t.Run("AddEqualPointsDifferentZ", func(t *testing.T) {
		// Two unequal representations of the same point must still
		// take the doubling branch.
		a := randAffine(t, G1Curve)
		p := a.Proj()
		var z fp.Element
		z.SetUint64(7)
		var q PointProj
		q.X.Mul(&a.X, &z)
		q.Y.Mul(&a.Y, &z)
		q.Z = z
		if !G1Curve.Equal(G1Curve.Add(p, q), G1Curve.Double(p)) {
			t.Error("P + P' != 2P for rescaled P'")
		}
	})

	t.Run("ClosedUnderOps", func(t *testing.T) {
		p := randProj(t, G1Curve)
		q := randProj(t, G1Curve)
		if !G1Curve.IsOnCurve(G1Curve.Add(p, q)) {
			t.Error("P + Q left the curve")
		}
		if !G1Curve.IsOnCurve(G1Curve.Double(p)) {
			t.Error("2P left the curve")
		}
	})

	t.Run("EqualityAcrossRepresentations", func(t *testing.T) {
		a := randAffine(t, G1Curve)
		p := a.Proj()
		var z fp.Element
		z.SetUint64(1234567)
		var q PointProj
		q.X.Mul(&a.X, &z)
		q.Y.Mul(&a.Y, &z)
		q.Z = z
		if !G1Curve.Equal(p, q) {
			t.Error("rescaled representations compare unequal")
		}
		if G1Curve.Equal(p, G1Curve.Neg(p)) {
			t.Error("P == -P")
		}
		if G1Curve.Equal(p, ProjInfinity()) {
			t.Error("finite point equals infinity")
		}
		if !G1Curve.Equal(ProjInfinity(), PointProj{}) {
			t.Error("two Z = 0 representations compare unequal")
		}
	})

	t.Run("ScalarMult", func(t *testing.T) {
		p := randProj(t, G1Curve)

		if !G1Curve.ScalarMult(p, big.NewInt(0)).IsInfinity() {
			t.Error("0*P != infinity")
		}
		if !G1Curve.Equal(G1Curve.ScalarMult(p, big.NewInt(1)), p) {
			t.Error("1*P != P")
		}
		two := G1Curve.ScalarMult(p, big.NewInt(2))
		if !G1Curve.Equal(two, G1Curve.Double(p)) {
			t.Error("2*P != P doubled")
		}
		five := G1Curve.ScalarMult(p, big.NewInt(5))
		sum := G1Curve.Add(G1Curve.Add(two, two), p)
		if !G1Curve.Equal(five, sum) {
			t.Error("5*P != 2P + 2P + P")
		}
		neg := G1Curve.ScalarMult(p, big.NewInt(-5))
		if !G1Curve.Equal(neg, G1Curve.Neg(five)) {
			t.Error("(-5)*P != -(5*P)")
		}
	})

	t.Run("IsogenousCurveArithmetic", func(t *testing.T) {
		// The same engine drives the companion curve, a != 0 included.
		p := randProj(t, IsoCurve)
		q := randProj(t, IsoCurve)
		if !IsoCurve.IsOnCurve(IsoCurve.Add(p, q)) {
			t.Error("P + Q left the isogenous curve")
		}
		if !IsoCurve.IsOnCurve(IsoCurve.Double(p)) {
			t.Error("2P left the isogenous curve")
		}
		if !IsoCurve.Equal(IsoCurve.Add(p, p), IsoCurve.Double(p)) {
			t.Error("P + P != 2P on the isogenous curve")
		}
	})
}

func TestToAffine(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		a := randAffine(t, G1Curve)
		back := G1Curve.ToAffine(a.Proj())
		if !G1Curve.EqualAffine(a, back) {
			t.Error("affine -> projective -> affine changed the point")
		}
	})

	t.Run("Rescaled", func(t *testing.T) {
		p := randProj(t, G1Curve)
		a := G1Curve.ToAffine(p)
		if !G1Curve.Equal(a.Proj(), p) {
			t.Error("ToAffine changed the point")
		}
	})

	t.Run("Infinity", func(t *testing.T) {
		if !G1Curve.ToAffine(ProjInfinity()).IsInfinity() {
			t.Error("ToAffine(infinity) is finite")
		}
	})
}
