package bls381

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// PointAffine is a curve point in affine coordinates (x, y), or the
// point at infinity when Infinity is set (the coordinates are then
// meaningless and conventionally zero).
type PointAffine struct {
	X, Y     fp.Element
	Infinity bool
}

// PointProj is a curve point in homogeneous projective coordinates
// (X : Y : Z), representing the affine point (X/Z, Y/Z) when Z != 0 and
// the point at infinity when Z = 0.
type PointProj struct {
	X, Y, Z fp.Element
}

// NewPointAffine returns the affine point (x, y).
func NewPointAffine(x, y fp.Element) PointAffine {
	return PointAffine{X: x, Y: y}
}

// AffineInfinity returns the affine point at infinity.
func AffineInfinity() PointAffine {
	return PointAffine{Infinity: true}
}

// ProjInfinity returns the canonical projective point at infinity
// (0 : 1 : 0).
func ProjInfinity() PointProj {
	var p PointProj
	p.Y.SetOne()
	return p
}

// IsInfinity reports whether p is the point at infinity.
func (p PointAffine) IsInfinity() bool { return p.Infinity }

// IsInfinity reports whether p is the point at infinity (Z = 0).
func (p PointProj) IsInfinity() bool { return p.Z.IsZero() }

// Proj lifts p to projective coordinates with Z = 1.
func (p PointAffine) Proj() PointProj {
	if p.Infinity {
		return ProjInfinity()
	}
	q := PointProj{X: p.X, Y: p.Y}
	q.Z.SetOne()
	return q
}

// ToAffine converts p to affine coordinates, performing one field
// inversion. The point at infinity maps to the affine infinity sentinel.
// For many points, prefer [BatchNormalize].
func (c *Curve) ToAffine(p PointProj) PointAffine {
	if p.IsInfinity() {
		return AffineInfinity()
	}
	var zInv fp.Element
	zInv.Inverse(&p.Z)
	var a PointAffine
	a.X.Mul(&p.X, &zInv)
	a.Y.Mul(&p.Y, &zInv)
	return a
}

// mulByA multiplies x by the curve coefficient a. For a = 0 the result
// is pinned to zero without performing a field multiplication; the
// branch is selected once from the configured coefficient.
func (c *Curve) mulByA(x *fp.Element) fp.Element {
	var r fp.Element
	if c.aIsZero {
		return r
	}
	r.Mul(&c.a, x)
	return r
}

// IsOnCurve reports whether p satisfies the homogeneous curve equation
//
//	Y^2*Z = X^3 + a*X*Z^2 + b*Z^3.
//
// The canonical point at infinity (0 : 1 : 0) satisfies it.
func (c *Curve) IsOnCurve(p PointProj) bool {
	var lhs, rhs, t fp.Element

	lhs.Square(&p.Y)
	lhs.Mul(&lhs, &p.Z)

	rhs.Square(&p.X)
	rhs.Mul(&rhs, &p.X)
	var zz fp.Element
	zz.Square(&p.Z)
	ax := c.mulByA(&p.X)
	t.Mul(&ax, &zz)
	rhs.Add(&rhs, &t)
	t.Mul(&zz, &p.Z)
	t.Mul(&t, &c.b)
	rhs.Add(&rhs, &t)

	return lhs.Equal(&rhs)
}

// IsOnCurveAffine reports whether p satisfies y^2 = x^3 + a*x + b. The
// point at infinity is the group identity and counts as on-curve.
func (c *Curve) IsOnCurveAffine(p PointAffine) bool {
	if p.Infinity {
		return true
	}
	var lhs, rhs fp.Element
	lhs.Square(&p.Y)
	rhs.Square(&p.X)
	rhs.Mul(&rhs, &p.X)
	ax := c.mulByA(&p.X)
	rhs.Add(&rhs, &ax)
	rhs.Add(&rhs, &c.b)
	return lhs.Equal(&rhs)
}

// Equal reports whether p and q represent the same curve point. The
// comparison cross-multiplies the affine reductions (X1*Z2 = X2*Z1 and
// Y1*Z2 = Y2*Z1) so no inversion is needed; all Z = 0 representations
// compare equal to each other.
func (c *Curve) Equal(p, q PointProj) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	var l, r fp.Element
	l.Mul(&p.X, &q.Z)
	r.Mul(&q.X, &p.Z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.Y, &q.Z)
	r.Mul(&q.Y, &p.Z)
	return l.Equal(&r)
}

// EqualAffine reports whether p and q are the same affine point.
func (c *Curve) EqualAffine(p, q PointAffine) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity && q.Infinity
	}
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// Neg returns -p.
func (c *Curve) Neg(p PointProj) PointProj {
	if p.IsInfinity() {
		return ProjInfinity()
	}
	r := p
	r.Y.Neg(&p.Y)
	return r
}

// Add returns p + q. The point at infinity is the additive identity.
func (c *Curve) Add(p, q PointProj) PointProj {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	// add-1998-cmo: u = Y2*Z1 - Y1*Z2, v = X2*Z1 - X1*Z2
	var y1z2, y2z1, x1z2, x2z1 fp.Element
	y1z2.Mul(&p.Y, &q.Z)
	y2z1.Mul(&q.Y, &p.Z)
	x1z2.Mul(&p.X, &q.Z)
	x2z1.Mul(&q.X, &p.Z)

	if x1z2.Equal(&x2z1) {
		if y1z2.Equal(&y2z1) {
			return c.Double(p)
		}
		// p = -q
		return ProjInfinity()
	}

	var u, v, vv, vvv, r, a, zz fp.Element
	u.Sub(&y2z1, &y1z2)
	v.Sub(&x2z1, &x1z2)
	vv.Square(&v)
	vvv.Mul(&vv, &v)
	r.Mul(&vv, &x1z2)
	zz.Mul(&p.Z, &q.Z)

	// a = u^2*Z1*Z2 - v^3 - 2*v^2*X1*Z2
	a.Square(&u)
	a.Mul(&a, &zz)
	a.Sub(&a, &vvv)
	var t fp.Element
	t.Double(&r)
	a.Sub(&a, &t)

	var out PointProj
	out.X.Mul(&v, &a)

	// Y3 = u*(r - a) - v^3*Y1*Z2
	t.Sub(&r, &a)
	out.Y.Mul(&u, &t)
	t.Mul(&vvv, &y1z2)
	out.Y.Sub(&out.Y, &t)

	out.Z.Mul(&vvv, &zz)
	return out
}

// Double returns 2*p. Doubling the point at infinity yields infinity.
func (c *Curve) Double(p PointProj) PointProj {
	if p.IsInfinity() {
		return ProjInfinity()
	}

	// dbl-2007-bl: w = a*Z^2 + 3*X^2 (the a term vanishes for a = 0)
	var xx, zz, w fp.Element
	xx.Square(&p.X)
	zz.Square(&p.Z)
	w = c.mulByA(&zz)
	var t fp.Element
	t.Double(&xx)
	t.Add(&t, &xx)
	w.Add(&w, &t)

	var s, ss, sss, r, rr, b, h fp.Element
	s.Mul(&p.Y, &p.Z)
	s.Double(&s)
	ss.Square(&s)
	sss.Mul(&ss, &s)
	r.Mul(&p.Y, &s)
	rr.Square(&r)

	// b = (X + r)^2 - X^2 - r^2
	b.Add(&p.X, &r)
	b.Square(&b)
	b.Sub(&b, &xx)
	b.Sub(&b, &rr)

	// h = w^2 - 2*b
	h.Square(&w)
	t.Double(&b)
	h.Sub(&h, &t)

	var out PointProj
	out.X.Mul(&h, &s)

	// Y3 = w*(b - h) - 2*r^2
	t.Sub(&b, &h)
	out.Y.Mul(&w, &t)
	t.Double(&rr)
	out.Y.Sub(&out.Y, &t)

	out.Z = sss
	return out
}

// ScalarMult returns k*p via binary double-and-add, processing the bits
// of k most-significant-first. A negative k yields (-k)*(-p); k = 0
// yields the point at infinity. k is used as-is, not reduced modulo the
// group order.
func (c *Curve) ScalarMult(p PointProj, k *big.Int) PointProj {
	if k.Sign() == 0 || p.IsInfinity() {
		return ProjInfinity()
	}
	if k.Sign() < 0 {
		return c.ScalarMult(c.Neg(p), new(big.Int).Neg(k))
	}

	acc := ProjInfinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = c.Double(acc)
		if k.Bit(i) == 1 {
			acc = c.Add(acc, p)
		}
	}
	return acc
}

// mulByUint64 returns k*p over a fixed-width 64-bit exponent, scanning
// all 64 bits most-significant-first.
func (c *Curve) mulByUint64(p PointProj, k uint64) PointProj {
	acc := ProjInfinity()
	for i := 63; i >= 0; i-- {
		acc = c.Double(acc)
		if (k>>uint(i))&1 == 1 {
			acc = c.Add(acc, p)
		}
	}
	return acc
}
