package logstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomhoffer/paretoevo/internal/core"
)

// EncodeRecord renders a single admitted individual as a bracketed
// fitness/chromosome pair:
// (f0 f1 ... fD-1) (chromosome-bits-string)
func EncodeRecord(ind core.Individual) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range ind.Fitness {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	b.WriteString(") (")
	b.WriteString(ind.Chromosome.String())
	b.WriteByte(')')
	return b.String()
}

// DecodeRecord parses a record line produced by EncodeRecord, validating
// that the fitness dimensionality and chromosome length match the header.
// A trailing " ;; x" dead marker, if present, is reported via dead.
func DecodeRecord(line string, expectedDim, expectedLength int) (ind core.Individual, dead bool, err error) {
	line = strings.TrimSpace(line)
	if strings.HasSuffix(line, ";; x") {
		dead = true
		line = strings.TrimSpace(strings.TrimSuffix(line, ";; x"))
	}

	open1 := strings.IndexByte(line, '(')
	close1 := strings.IndexByte(line, ')')
	if open1 < 0 || close1 < 0 || close1 < open1 {
		return core.Individual{}, false, fmt.Errorf("logstore: malformed record %q", line)
	}
	fitnessPart := line[open1+1 : close1]

	rest := line[close1+1:]
	open2 := strings.IndexByte(rest, '(')
	close2 := strings.IndexByte(rest, ')')
	if open2 < 0 || close2 < 0 || close2 < open2 {
		return core.Individual{}, false, fmt.Errorf("logstore: malformed record %q", line)
	}
	chromosomePart := rest[open2+1 : close2]

	fields := strings.Fields(fitnessPart)
	if len(fields) != expectedDim {
		return core.Individual{}, false, fmt.Errorf("logstore: expected %d fitness values, got %d", expectedDim, len(fields))
	}
	fitness := make([]float64, len(fields))
	for i, f := range fields {
		v, perr := strconv.ParseFloat(f, 64)
		if perr != nil {
			return core.Individual{}, false, fmt.Errorf("logstore: invalid fitness value %q: %w", f, perr)
		}
		fitness[i] = v
	}

	chromosome, cerr := core.ParseChromosome(chromosomePart)
	if cerr != nil {
		return core.Individual{}, false, cerr
	}
	if chromosome.Len() != expectedLength {
		return core.Individual{}, false, fmt.Errorf("logstore: expected chromosome length %d, got %d", expectedLength, chromosome.Len())
	}

	return core.Individual{Chromosome: chromosome, Fitness: fitness, Evaluated: true}, dead, nil
}

// IterationMarker renders the comment line written between iterations:
// ";; Iteration: <n> Front size: <m> New individuals: <k>".
func IterationMarker(iteration, frontSize, newIndividuals int) string {
	return fmt.Sprintf(";; Iteration: %d Front size: %d New individuals: %d", iteration, frontSize, newIndividuals)
}
