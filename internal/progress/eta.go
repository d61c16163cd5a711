package progress

import (
	"fmt"
	"time"
)

// FormatETA estimates the remaining time from the elapsed duration and
// progress so far, rendering it as "Xd Yh", "Xh Ym", "Xm Ys", or "Xs"
// depending on magnitude.
func FormatETA(elapsed time.Duration, currentStep, startStep, maxSteps int) string {
	done := currentStep - startStep
	if done <= 0 || maxSteps <= startStep {
		return "unknown"
	}
	total := maxSteps - startStep
	perStep := elapsed / time.Duration(done)
	remaining := perStep * time.Duration(total-done)
	if remaining < 0 {
		remaining = 0
	}
	return formatDuration(remaining)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		days := d / (24 * time.Hour)
		hours := (d % (24 * time.Hour)) / time.Hour
		return fmt.Sprintf("%dd %dh", days, hours)
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}
