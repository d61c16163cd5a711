package pesa

import "github.com/tomhoffer/paretoevo/internal/core"

// UpdateSigmas recomputes the per-dimension kernel bandwidth from the
// fitness bounding box: sigma[d] = box.Range(d) / (partition * 6). The
// "divide by 6" is a deliberate choice so the kernel's effective support
// equals one partition cell.
func UpdateSigmas(box *core.FitnessBox, partition int, sigmas []float64) {
	for d := 0; d < box.Dimensionality(); d++ {
		sigmas[d] = box.Range(d) / (float64(partition) * 6.0)
	}
}

// Score returns the PESA density score (squeeze factor) of candidate
// against every fitness in population: the sum of the kernel distance to
// each. Lower is better.
func Score(candidate []float64, population [][]float64, sigmas []float64) float64 {
	var score float64
	for _, other := range population {
		score += KernelDistance(candidate, other, sigmas)
	}
	return score
}
