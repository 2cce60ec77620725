package nutrition

import (
	"time"

	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/pkg"
)

// WeightTrend compares the 7-day moving average of the week before weekStart
// with the one of the week before that.
type WeightTrend struct {
	WeekStart       time.Time `json:"weekStart"`
	MovingAverage   *float64  `json:"movingAverage,omitempty"`
	PreviousAverage *float64  `json:"previousAverage,omitempty"`
	WeeklyChangePct *float64  `json:"weeklyChangePct,omitempty"`
	Samples         int       `json:"samples"`
}

func (t WeightTrend) Known() bool {
	return t.WeeklyChangePct != nil
}

// ComputeWeightTrend needs at least minWeighIns logs in each of the two weeks
// to report a change. A single missing day does not move the average.
func ComputeWeightTrend(logs []ingest.WeightLog, weekStart time.Time, minWeighIns int) WeightTrend {
	weekStart = pkg.Midnight(weekStart)
	trend := WeightTrend{WeekStart: weekStart}

	current, n := movingAverage(logs, weekStart.AddDate(0, 0, -7), weekStart)
	previous, m := movingAverage(logs, weekStart.AddDate(0, 0, -14), weekStart.AddDate(0, 0, -7))
	trend.Samples = n + m

	if n >= minWeighIns {
		trend.MovingAverage = &current
	}
	if m >= minWeighIns {
		trend.PreviousAverage = &previous
	}
	if trend.MovingAverage != nil && trend.PreviousAverage != nil {
		change := pkg.RoundTo((current-previous)/previous*100, 4)
		trend.WeeklyChangePct = &change
	}

	return trend
}

func movingAverage(logs []ingest.WeightLog, from, to time.Time) (float64, int) {
	var sum float64
	n := 0
	for _, l := range logs {
		if l.Day.Before(from) || !l.Day.Before(to) {
			continue
		}
		sum += l.WeightKg
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return pkg.RoundTo(sum/float64(n), 3), n
}
