package bls381

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/f3rmion/blsg1/group"
)

// Scalar represents an element of the BLS12-381 scalar field Fr.
// It implements [group.Scalar] on top of gnark-crypto's fr.Element.
type Scalar struct {
	inner fr.Element
}

func newScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod r) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(&aScalar.inner, &bScalar.inner)
	return s
}

// Sub sets s to a - b (mod r) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(&aScalar.inner, &bScalar.inner)
	return s
}

// Mul sets s to a * b (mod r) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(&aScalar.inner, &bScalar.inner)
	return s
}

// Negate sets s to -a (mod r) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Neg(&aScalar.inner)
	return s
}

// Invert sets s to a^(-1) (mod r) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a big-endian byte slice and returns s.
// The value is reduced modulo the scalar field order.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBytes(data)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equal(&bScalar.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point represents a point of the BLS12-381 G1 group. It implements
// [group.Point] on top of this package's projective arithmetic.
//
// The encoding used by Bytes and SetBytes is the 96-byte concatenation
// of the big-endian affine coordinates x || y, with all zeros standing
// for the point at infinity.
type Point struct {
	inner PointProj
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner = G1Curve.Add(aPoint.inner, bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner = G1Curve.Add(aPoint.inner, G1Curve.Neg(bPoint.inner))
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner = G1Curve.Neg(aPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	var k big.Int
	scalar.inner.BigInt(&k)
	p.inner = G1Curve.ScalarMult(qPoint.inner, &k)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner = aPoint.inner
	return p
}

// Bytes returns the affine x || y encoding of p, 96 bytes, with all
// zeros for the point at infinity.
func (p *Point) Bytes() []byte {
	out := make([]byte, 2*fp.Bytes)
	if p.inner.IsInfinity() {
		return out
	}
	a := G1Curve.ToAffine(p.inner)
	x := a.X.Bytes()
	y := a.Y.Bytes()
	copy(out[:fp.Bytes], x[:])
	copy(out[fp.Bytes:], y[:])
	return out
}

// SetBytes sets p from an affine x || y encoding and returns p.
// Returns an error if either coordinate is not a canonical field element
// or if the decoded point does not satisfy the curve equation. The
// all-zero encoding decodes to the point at infinity.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != 2*fp.Bytes {
		return nil, errors.New("invalid point encoding length")
	}
	var a PointAffine
	if err := a.X.SetBytesCanonical(data[:fp.Bytes]); err != nil {
		return nil, err
	}
	if err := a.Y.SetBytesCanonical(data[fp.Bytes:]); err != nil {
		return nil, err
	}
	if a.X.IsZero() && a.Y.IsZero() {
		p.inner = ProjInfinity()
		return p, nil
	}
	if !G1Curve.IsOnCurveAffine(a) {
		return nil, errors.New("point is not on the curve")
	}
	p.inner = a.Proj()
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return G1Curve.Equal(p.inner, bPoint.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IsOnCurve reports whether p satisfies the curve equation of E. Use
// [InSubgroup] or [ClearCofactor] when order-r membership is required.
func (p *Point) IsOnCurve() bool {
	return G1Curve.IsOnCurve(p.inner)
}

// G1 implements [group.Group] for the BLS12-381 G1 group.
//
// G1 is a zero-sized type that provides access to the group operations.
// Create an instance with &G1{} or new(G1).
type G1 struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *G1) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the point at infinity.
func (g *G1) NewPoint() group.Point {
	return &Point{inner: ProjInfinity()}
}

// Generator returns the fixed generator of G1.
func (g *G1) Generator() group.Point {
	return &Point{inner: G1Curve.Generator().Proj()}
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. The result is reduced into [0, r).
func (g *G1) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	s.inner.SetBytes(buf[:])
	return s, nil
}

// HashToScalar hashes the provided data to a scalar using SHA-256.
// Multiple byte slices are concatenated before hashing.
func (g *G1) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	hash := h.Sum(nil)

	s := newScalar()
	s.inner.SetBytes(hash)
	return s, nil
}

// Order returns the order r of G1 as a big-endian byte slice.
func (g *G1) Order() []byte {
	return fr.Modulus().Bytes()
}
