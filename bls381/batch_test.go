package bls381

import (
	"testing"
)

func TestBatchNormalize(t *testing.T) {
	t.Run("MatchesNaive", func(t *testing.T) {
		points := make([]PointProj, 100)
		for i := range points {
			points[i] = randProj(t, G1Curve)
		}
		// An infinity at a non-boundary index must not break the chain.
		points[37] = ProjInfinity()

		got := BatchNormalize(points)
		if len(got) != len(points) {
			t.Fatalf("got %d results for %d inputs", len(got), len(points))
		}
		for i := range points {
			want := G1Curve.ToAffine(points[i])
			if !G1Curve.EqualAffine(got[i], want) {
				t.Fatalf("index %d: batch and naive normalization disagree", i)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := BatchNormalize(nil); len(got) != 0 {
			t.Fatalf("got %d results for empty input", len(got))
		}
		if got := BatchNormalize([]PointProj{}); len(got) != 0 {
			t.Fatalf("got %d results for empty input", len(got))
		}
	})

	t.Run("AllInfinity", func(t *testing.T) {
		points := make([]PointProj, 17)
		for i := range points {
			points[i] = ProjInfinity()
		}
		got := BatchNormalize(points)
		if len(got) != len(points) {
			t.Fatalf("got %d results for %d inputs", len(got), len(points))
		}
		for i := range got {
			if !got[i].IsInfinity() {
				t.Fatalf("index %d: expected infinity", i)
			}
		}
	})

	t.Run("Singleton", func(t *testing.T) {
		a := randAffine(t, G1Curve)
		got := BatchNormalize([]PointProj{a.Proj()})
		if len(got) != 1 || !G1Curve.EqualAffine(got[0], a) {
			t.Fatal("singleton round-trip changed the point")
		}
	})

	t.Run("LeadingAndTrailingInfinity", func(t *testing.T) {
		points := []PointProj{
			ProjInfinity(),
			randProj(t, G1Curve),
			ProjInfinity(),
			randProj(t, G1Curve),
			ProjInfinity(),
		}
		got := BatchNormalize(points)
		for i := range points {
			want := G1Curve.ToAffine(points[i])
			if !G1Curve.EqualAffine(got[i], want) {
				t.Fatalf("index %d: batch and naive normalization disagree", i)
			}
		}
	})
}

func TestBatchNormalizeParallel(t *testing.T) {
	points := make([]PointProj, 103)
	for i := range points {
		points[i] = randProj(t, G1Curve)
	}
	points[0] = ProjInfinity()
	points[50] = ProjInfinity()
	points[102] = ProjInfinity()

	want := BatchNormalize(points)

	for _, chunk := range []int{1, 7, 16, 50, 103, 1000, 0, -1} {
		got := BatchNormalizeParallel(points, chunk)
		if len(got) != len(want) {
			t.Fatalf("chunk %d: got %d results, want %d", chunk, len(got), len(want))
		}
		for i := range want {
			if !G1Curve.EqualAffine(got[i], want[i]) {
				t.Fatalf("chunk %d, index %d: parallel and sequential disagree", chunk, i)
			}
		}
	}
}
