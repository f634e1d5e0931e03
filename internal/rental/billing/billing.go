// Package billing computes the cost of a rental session from elapsed
// wall-clock time. Sessions are billed per started minute at a fixed
// process-wide rate; the minimum chargeable duration is one minute.
package billing

import (
	"math"
	"time"
)

// PrecoPorMinuto is the billing rate in currency units per minute. It is
// compiled in, not configurable.
const PrecoPorMinuto = 0.52

// BillableMinutes returns the number of chargeable minutes between inicio and
// fim. Any started minute counts as a whole minute, and a session shorter
// than a minute is still charged one.
func BillableMinutes(inicio, fim time.Time) int64 {
	elapsed := fim.Sub(inicio)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int64(math.Ceil(float64(elapsed.Milliseconds()) / 60000.0))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Cost returns the total cost for the given number of minutes, rounded to
// two decimal places.
func Cost(minutes int64) float64 {
	return math.Round(float64(minutes)*PrecoPorMinuto*100) / 100
}
