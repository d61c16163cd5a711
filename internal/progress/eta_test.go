package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatETA(t *testing.T) {
	t.Run("no progress yet is unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", FormatETA(time.Minute, 0, 0, 100))
	})

	t.Run("halfway through estimates the remaining half", func(t *testing.T) {
		got := FormatETA(10*time.Minute, 50, 0, 100)
		assert.Equal(t, "10m 0s", got)
	})

	t.Run("formats hours and minutes", func(t *testing.T) {
		got := FormatETA(2*time.Hour, 1, 0, 3)
		assert.Equal(t, "4h 0m", got)
	})

	t.Run("formats seconds only", func(t *testing.T) {
		got := FormatETA(5*time.Second, 1, 0, 2)
		assert.Equal(t, "5s", got)
	})
}
