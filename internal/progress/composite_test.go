package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeListener struct {
	steps    []string
	substeps []string
	brk      bool
}

func (f *fakeListener) Step(text string)               { f.steps = append(f.steps, text) }
func (f *fakeListener) Substep(level int, text string)  { f.substeps = append(f.substeps, text) }
func (f *fakeListener) BreakRequested() bool            { return f.brk }

type fakeCanceler struct{ brk bool }

func (f fakeCanceler) BreakRequested() bool { return f.brk }

func TestComposite_DelegatesReporting(t *testing.T) {
	reporter := &fakeListener{}
	c := Composite{Reporter: reporter}
	c.Step("hello")
	c.Substep(1, "world")
	assert.Equal(t, []string{"hello"}, reporter.steps)
	assert.Equal(t, []string{"world"}, reporter.substeps)
}

func TestComposite_BreakRequested(t *testing.T) {
	t.Run("false when neither requests a break", func(t *testing.T) {
		c := Composite{Reporter: &fakeListener{}, Canceler: fakeCanceler{}}
		assert.False(t, c.BreakRequested())
	})

	t.Run("true when reporter requests a break", func(t *testing.T) {
		c := Composite{Reporter: &fakeListener{brk: true}, Canceler: fakeCanceler{}}
		assert.True(t, c.BreakRequested())
	})

	t.Run("true when canceler requests a break", func(t *testing.T) {
		c := Composite{Reporter: &fakeListener{}, Canceler: fakeCanceler{brk: true}}
		assert.True(t, c.BreakRequested())
	})

	t.Run("nil canceler is treated as never requesting", func(t *testing.T) {
		c := Composite{Reporter: &fakeListener{}}
		assert.False(t, c.BreakRequested())
	})
}
