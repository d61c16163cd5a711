// Package pesa implements the PESA density estimator: a Gaussian kernel in
// fitness space evaluated through a precomputed lookup table, and the
// bounding-box-derived per-dimension sigmas that parameterize it.
//
// The lookup table is a build-once, immutable table covering x in [0, 3]
// with 1024 samples per unit, shared by every call. Outside that range the
// kernel is zero.
package pesa

import (
	"math"
	"sync"
)

const (
	lutSamplesPerUnit = 1024
	lutCutoff         = 3.0
	lutSize           = lutSamplesPerUnit * int(lutCutoff) * 1 // 3 units, 1024 samples each
)

var (
	lutOnce sync.Once
	lut     [lutSize + 1]float64
)

func buildLUT() {
	for i := range lut {
		x := lutCutoff * float64(i) / float64(lutSize)
		lut[i] = math.Exp(-(x * x) / 2.0)
	}
}

// gaussian evaluates g(x) = exp(-x^2/2) via the shared lookup table,
// clamping to zero once |x| reaches the cutoff.
func gaussian(x float64) float64 {
	lutOnce.Do(buildLUT)

	ax := math.Abs(x)
	if ax >= lutCutoff {
		return 0
	}
	idx := int(ax / lutCutoff * float64(lutSize))
	return lut[idx]
}

// KernelDistance computes the product, over every dimension, of
// gaussian((a[d]-b[d])/sigma[d]) — the PESA fitness-distance kernel. The
// product short-circuits to zero as soon as one factor is zero.
func KernelDistance(a, b, sigma []float64) float64 {
	product := 1.0
	for d := range a {
		if sigma[d] == 0 {
			continue
		}
		factor := gaussian((a[d] - b[d]) / sigma[d])
		if factor == 0 {
			return 0
		}
		product *= factor
	}
	return product
}
