package scenario

import (
	"fmt"
	"time"
)

// Stage ramps the number of virtual users linearly to Target over Duration.
type Stage struct {
	Duration time.Duration
	Target   int
}

func (s Stage) String() string {
	return fmt.Sprintf("%s -> %d VUs", FormatDuration(s.Duration), s.Target)
}

// FormatDuration renders d the way engine options spell durations: 30s, 2m, 1h.
func FormatDuration(d time.Duration) string {
	switch {
	case d > 0 && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d > 0 && d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	case d > 0 && d%time.Second == 0:
		return fmt.Sprintf("%ds", d/time.Second)
	default:
		return d.String()
	}
}
