package progress

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// BarListener is a terminal progress-bar Listener, driving a
// progressbar.Default through the evolution loop.
type BarListener struct {
	bar *progressbar.ProgressBar
}

// NewBarListener builds a listener that ticks once per Step call, up to
// totalIterations.
func NewBarListener(totalIterations int) *BarListener {
	return &BarListener{bar: progressbar.Default(int64(totalIterations))}
}

// Step implements Listener: advances the bar and prints text above it.
func (l *BarListener) Step(text string) {
	_ = l.bar.Add(1)
	if text != "" {
		fmt.Println(text)
	}
}

// Substep implements Listener by printing an indented line; the bar itself
// only advances on Step.
func (l *BarListener) Substep(level int, text string) {
	for i := 0; i < level; i++ {
		fmt.Print("  ")
	}
	fmt.Println(text)
}

// BreakRequested implements Listener. A bare terminal bar has no
// cancellation source of its own.
func (l *BarListener) BreakRequested() bool {
	return false
}
