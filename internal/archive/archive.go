// Package archive implements the archive manager (C5): the bounded
// external population E, admission of new candidates, and eviction by the
// active algorithm's density score.
package archive

import "github.com/tomhoffer/paretoevo/internal/core"

// Archive maintains the external population. Exactly one implementation
// (PESAArchive or NSGA2Archive) is active per run, selected by the
// configured engine name.
type Archive interface {
	// Individuals returns the current archive members. The caller must
	// treat the returned slice as read-only.
	Individuals() []core.Individual

	// Len reports the number of archive members.
	Len() int

	// Admit runs the admission logic against the given batch (typically
	// the evaluated internal population) and returns the number of members
	// inserted into the archive before any cap truncation.
	Admit(batch []core.Individual) int

	// Rescore recomputes every member's density score from scratch. Called
	// by the evolution loop whenever the fitness bounding box changed and
	// sigmas were recomputed. A no-op for archive variants (NSGA-II) whose
	// score does not depend on a running box.
	Rescore()

	// DeadIndividuals returns every individual evicted or rejected during
	// admission, populated only when logAllEvaluations is enabled.
	DeadIndividuals() []core.Individual
}
