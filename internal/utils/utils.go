package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2f s", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.2f min", d.Minutes())
	}
	return fmt.Sprintf("%.2f h", d.Hours())
}

// NewRunID returns a short unique identifier for one sort run.
func NewRunID() string {
	return uuid.NewString()[:8]
}
