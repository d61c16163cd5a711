package progress

// Composite pairs a reporting Listener with an independent cancellation
// source, so a FileCancelSource can be layered onto a BarListener or TUI
// listener without either needing to know about the other.
type Composite struct {
	Reporter Listener
	Canceler interface{ BreakRequested() bool }
}

func (c Composite) Step(text string)         { c.Reporter.Step(text) }
func (c Composite) Substep(level int, text string) { c.Reporter.Substep(level, text) }

func (c Composite) BreakRequested() bool {
	if c.Canceler != nil && c.Canceler.BreakRequested() {
		return true
	}
	return c.Reporter.BreakRequested()
}
