package bls381

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Fixed curve constants, as canonical decimal strings. The generator and
// cofactor data match the values standardized for BLS12-381; the isogenous
// curve coefficients are the ones from the IETF hash-to-curve E.2 suite.
const (
	g1GeneratorXDec = "3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507"
	g1GeneratorYDec = "1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569"

	// cofactor h = (x-1)^2 / 3 for the BLS parameter x = -0xd201000000010000
	g1CofactorDec = "76329603384216526031706109802092473003"
	// h^{-1} mod r
	g1CofactorInvDec = "52435875175126190458656871551744051925719901746859129887267498875565241663483"

	isoCurveADec = "12190336318893619529228877361869031420615612348429846051986726275283378313155663745811710833465465981901188123677"
	isoCurveBDec = "2906670324641927570491258158026293881577086121416628140204402091718288198173574630967936031029026176254968826637280"
)

// Curve is the short-Weierstrass point arithmetic engine
//
//	y^2 = x^3 + a*x + b
//
// over the BLS12-381 base field, parameterized by the coefficients a and
// b. The two instances of interest are [G1Curve] and [IsoCurve]; both are
// initialized at package load and never change.
//
// All methods treat points as immutable values: arguments are never
// modified and results are returned fresh.
type Curve struct {
	a, b fp.Element

	// aIsZero selects the doubling path that skips the multiplication
	// by a. It is derived from the configured coefficient, never set
	// directly.
	aIsZero bool

	cofactor    big.Int
	cofactorInv fr.Element
	generator   PointAffine
}

var (
	// G1Curve is the BLS12-381 G1 curve E: y^2 = x^3 + 4.
	G1Curve *Curve

	// IsoCurve is the curve 11-isogenous to [G1Curve], the codomain of
	// the simplified SWU map and the domain of [IsogenyMap]. It carries
	// no generator or cofactor data; only its point arithmetic is used.
	IsoCurve *Curve
)

func init() {
	var zero, four fp.Element
	four.SetUint64(4)

	g1 := newCurve(zero, four)
	g1.generator = NewPointAffine(mustNewFp(g1GeneratorXDec), mustNewFp(g1GeneratorYDec))
	g1.cofactor = *mustNewInt(g1CofactorDec)
	g1.cofactorInv = mustNewFr(g1CofactorInvDec)
	G1Curve = g1

	IsoCurve = newCurve(mustNewFp(isoCurveADec), mustNewFp(isoCurveBDec))
}

func newCurve(a, b fp.Element) *Curve {
	return &Curve{a: a, b: b, aIsZero: a.IsZero()}
}

// A returns the curve coefficient a.
func (c *Curve) A() fp.Element { return c.a }

// B returns the curve coefficient b.
func (c *Curve) B() fp.Element { return c.b }

// Cofactor returns a copy of the curve cofactor h, the index of the
// prime-order subgroup in the full group of curve points.
func (c *Curve) Cofactor() *big.Int {
	return new(big.Int).Set(&c.cofactor)
}

// CofactorInv returns h^{-1} mod r. It is used when decoding scalars
// that are known to be cofactor multiples.
func (c *Curve) CofactorInv() fr.Element { return c.cofactorInv }

// Generator returns the fixed generator of the prime-order subgroup.
func (c *Curve) Generator() PointAffine { return c.generator }

// newFp constructs a base field element from a canonical decimal string.
// The string must parse as a non-negative integer strictly below the
// field modulus; out-of-range values are rejected, never reduced.
func newFp(s string) (fp.Element, error) {
	var e fp.Element
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return e, fmt.Errorf("bls381: malformed decimal literal %q", s)
	}
	if v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return e, fmt.Errorf("bls381: literal %q is not canonical below the base field modulus", s)
	}
	e.SetBigInt(v)
	return e, nil
}

// newFr is the scalar field counterpart of [newFp].
func newFr(s string) (fr.Element, error) {
	var e fr.Element
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return e, fmt.Errorf("bls381: malformed decimal literal %q", s)
	}
	if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return e, fmt.Errorf("bls381: literal %q is not canonical below the scalar field modulus", s)
	}
	e.SetBigInt(v)
	return e, nil
}

// A curve definition with an invalid constant is unusable, so failures
// here are fatal at package load.

func mustNewFp(s string) fp.Element {
	e, err := newFp(s)
	if err != nil {
		panic(err)
	}
	return e
}

func mustNewFr(s string) fr.Element {
	e, err := newFr(s)
	if err != nil {
		panic(err)
	}
	return e
}

func mustNewInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("bls381: malformed decimal literal %q", s))
	}
	return v
}
