package engine

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// WriteFrontFile reproduces the original's createFrontFile option: one
// line per archive member, each a fitness vector paired with its decoded
// phenotype, followed by a trailing line recording the final fitness
// bounding box. Unlike the log store, this file is written once at the
// end of a run and is not resumable.
func (e *Engine) WriteFrontFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return core.NewLogReadError("failed to create front file", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, ind := range e.arch.Individuals() {
		phenotype, err := e.genetics.ChromosomeToPhenotype(ind.Chromosome)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "(%s) (%v)\n", formatFitness(ind.Fitness), phenotype); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, ";; BoundingBox %s\n", formatBox(e.state.Box)); err != nil {
		return err
	}
	return w.Flush()
}

func formatFitness(fitness []float64) string {
	parts := make([]string, len(fitness))
	for i, f := range fitness {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func formatBox(box *core.FitnessBox) string {
	var b strings.Builder
	for d := 0; d < box.Dimensionality(); d++ {
		if d > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(box.Min[d], 'g', -1, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(box.Max[d], 'g', -1, 64))
	}
	return b.String()
}
