// Package progress implements the optional progress-reporting capability
// and its concrete implementations: a terminal progress bar, an
// interactive TUI, a file-sentinel cancellation source, and a no-op.
package progress

// Listener reports evolution-loop progress and polls for an external
// cancellation request. Reporting never affects computation; it is
// entirely optional.
type Listener interface {
	// Step reports a top-level progress line (one per iteration).
	Step(text string)

	// Substep reports a finer-grained line at the given nesting level.
	Substep(level int, text string)

	// BreakRequested polls for an external cancellation request, checked by
	// the evolution loop between iterations.
	BreakRequested() bool
}
