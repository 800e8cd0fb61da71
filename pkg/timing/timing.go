package timing

import (
	"time"

	"BlogGolang/pkg/apperror"
)

// Timing tracks how long a request has been in flight. Checkpoints are
// cooperative: work already issued always runs to completion before the
// overrun is observed.
type Timing struct {
	start     time.Time
	threshold time.Duration
}

func Start(threshold time.Duration) *Timing {
	return &Timing{
		start:     time.Now(),
		threshold: threshold,
	}
}

// StartAt is Start with an explicit start instant.
func StartAt(start time.Time, threshold time.Duration) *Timing {
	return &Timing{
		start:     start,
		threshold: threshold,
	}
}

func (t *Timing) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Checkpoint returns a request timeout error when the elapsed handling
// time exceeds the threshold, nil otherwise. Safe to call repeatedly.
func (t *Timing) Checkpoint() error {
	if t.Elapsed() > t.threshold {
		return apperror.NewRequestTimeout()
	}
	return nil
}
