package bls381

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"golang.org/x/sync/errgroup"
)

// BatchNormalize converts projective points to affine form, index for
// index, using Montgomery's batch inversion: one running product over
// the nonzero Z coordinates, a single field inversion, then a backward
// pass recovering each 1/Z.
//
// Points at infinity are skipped by the product chain and map to the
// affine infinity sentinel without disturbing their neighbors. An input
// with no finite points, including the empty input, performs no
// inversion at all.
func BatchNormalize(points []PointProj) []PointAffine {
	out := make([]PointAffine, len(points))

	// prefix[k] is the product Z_{i0}*...*Z_{ik} over the finite
	// points, with idx[k] their positions in the input.
	idx := make([]int, 0, len(points))
	prefix := make([]fp.Element, 0, len(points))
	var acc fp.Element
	acc.SetOne()
	for i := range points {
		if points[i].IsInfinity() {
			out[i] = AffineInfinity()
			continue
		}
		acc.Mul(&acc, &points[i].Z)
		idx = append(idx, i)
		prefix = append(prefix, acc)
	}
	if len(idx) == 0 {
		return out
	}

	var inv fp.Element
	inv.Inverse(&acc)

	// Walking backward, inv holds 1/(Z_{i0}*...*Z_{ik}); multiplying by
	// the previous prefix isolates 1/Z_{ik}.
	for k := len(idx) - 1; k >= 0; k-- {
		i := idx[k]
		var zInv fp.Element
		if k == 0 {
			zInv.Set(&inv)
		} else {
			zInv.Mul(&inv, &prefix[k-1])
		}
		inv.Mul(&inv, &points[i].Z)

		out[i].X.Mul(&points[i].X, &zInv)
		out[i].Y.Mul(&points[i].Y, &zInv)
	}
	return out
}

// BatchNormalizeParallel is [BatchNormalize] over independent chunks of
// at most chunkSize points, normalized concurrently and gathered in the
// original order. It trades one inversion per chunk for parallelism,
// which pays off for large batches. A chunkSize <= 0, or an input no
// larger than one chunk, falls back to the sequential path.
func BatchNormalizeParallel(points []PointProj, chunkSize int) []PointAffine {
	if chunkSize <= 0 || len(points) <= chunkSize {
		return BatchNormalize(points)
	}

	out := make([]PointAffine, len(points))
	var g errgroup.Group
	for start := 0; start < len(points); start += chunkSize {
		end := min(start+chunkSize, len(points))
		g.Go(func() error {
			copy(out[start:end], BatchNormalize(points[start:end]))
			return nil
		})
	}
	// The workers write disjoint slices and never fail.
	_ = g.Wait()
	return out
}
