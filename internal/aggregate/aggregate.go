package aggregate

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/pkg"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeekOf returns the Monday 00:00 UTC based training week containing t.
func WeekOf(t time.Time) Window {
	start := pkg.WeekStart(t)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// HRProfile carries what is needed to normalize heart rate spikes.
// The zero value means unknown, heart rate spikes are then not computed.
type HRProfile struct {
	Age       int
	RestingHR int
}

func HRProfileOf(p *athlete.Profile) HRProfile {
	if p == nil {
		return HRProfile{}
	}
	return HRProfile{
		Age:       p.Age,
		RestingHR: p.EffectiveRestingHR(),
	}
}

func (h HRProfile) Known() bool {
	return h.Age > 0
}

func (h HRProfile) reserve() float64 {
	return float64(max(220-h.Age-h.RestingHR, 1))
}

// NormalizedSpike is (hrEnd-hrStart)/(ageAdjustedMaxHR-restingHR) clamped to [0, 1].
// It is not available when the profile is unknown or the set carries no heart rate.
func (h HRProfile) NormalizedSpike(s ingest.WorkoutSet) (float64, bool) {
	if !h.Known() || !s.HasHeartRate() {
		return 0, false
	}
	spike := float64(s.HeartRateEnd-s.HeartRateStart) / h.reserve()
	return pkg.Clamp(spike, 0, 1), true
}

// WeeklyAggregate is derived from the sets of one user-week and nothing else,
// recomputing it from the same sets yields the same value.
type WeeklyAggregate struct {
	UserID    string    `json:"userId"`
	PhaseID   *int      `json:"phaseId,omitempty"`
	WeekStart time.Time `json:"weekStart"`
	WeekEnd   time.Time `json:"weekEnd"`
	SetCount  int       `json:"setCount"`
	// nil when no set in the week carries a perceived effort
	AvgEstimatedRIR *float64 `json:"avgEstimatedRIR"`
	// nil when no set carries both effort and heart rate
	AvgNormalizedHRSpike *float64 `json:"avgNormalizedHRSpike"`
	// nil when the week has no sets, which is insufficient data and not a 0% week
	SetsHitTargetPct  *float64 `json:"setsHitTargetPct"`
	TopOfRangeRatePct float64  `json:"topOfRangeRatePct"`
	SorenessRatePct   float64  `json:"sorenessRatePct"`
	PainRatePct       float64  `json:"painRatePct"`
	DisruptionRatePct float64  `json:"disruptionRatePct"`
	AvgPump           float64  `json:"avgPump"`
}

// InsufficientDataError signals a week with too few sets to act on. It is not a failure.
type InsufficientDataError struct {
	UserID    string
	WeekStart time.Time
	SetCount  int
	MinSets   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf(
		"insufficient data for user %s week %s: %d sets, need %d",
		e.UserID, e.WeekStart.Format(time.DateOnly), e.SetCount, e.MinSets,
	)
}

// CheckSufficient returns an InsufficientDataError when the week has fewer than minSets sets.
func (a *WeeklyAggregate) CheckSufficient(minSets int) error {
	if a.SetsHitTargetPct == nil || a.SetCount < minSets {
		return &InsufficientDataError{
			UserID:    a.UserID,
			WeekStart: a.WeekStart,
			SetCount:  a.SetCount,
			MinSets:   minSets,
		}
	}
	return nil
}

const (
	soreThreshold      = 2
	painThreshold      = 2
	disruptedThreshold = 2
)

// Compute folds the sets inside the window into a weekly aggregate. Sets outside
// the window are ignored and input order does not matter.
func Compute(userID string, w Window, sets []ingest.WorkoutSet, hr HRProfile) WeeklyAggregate {
	agg := WeeklyAggregate{
		UserID:    userID,
		WeekStart: w.Start,
		WeekEnd:   w.End,
	}

	inWindow := make([]ingest.WorkoutSet, 0, len(sets))
	for _, s := range sets {
		if w.Contains(s.Timestamp) {
			inWindow = append(inWindow, s)
		}
	}
	if len(inWindow) == 0 {
		return agg
	}

	// float sums depend on order, fold in a canonical one
	slices.SortFunc(inWindow, func(a, b ingest.WorkoutSet) int {
		return cmp.Or(
			a.Timestamp.Compare(b.Timestamp),
			cmp.Compare(a.ExerciseID, b.ExerciseID),
			cmp.Compare(a.SetIndex, b.SetIndex),
			cmp.Compare(a.ID, b.ID),
		)
	})

	var (
		rirSum, spikeSum, pumpSum          float64
		rirCount, spikeCount               int
		hit, top, sore, pain, disrupted, n int
	)
	for _, s := range inWindow {
		n++
		rir, hasEffort := s.PerceivedEffort.ImpliedRIR()
		if hasEffort {
			rirSum += rir
			rirCount++
			if spike, ok := hr.NormalizedSpike(s); ok {
				spikeSum += spike
				spikeCount++
			}
		}
		if s.HitTarget() {
			hit++
		}
		if s.TopOfRange() {
			top++
		}
		if s.Soreness >= soreThreshold {
			sore++
		}
		if s.JointPain >= painThreshold {
			pain++
		}
		if s.Disruption >= disruptedThreshold {
			disrupted++
		}
		pumpSum += float64(s.Pump)
	}

	pct := func(count int) float64 {
		return pkg.RoundTo(float64(count)/float64(n)*100, 4)
	}

	agg.SetCount = n
	hitPct := pct(hit)
	agg.SetsHitTargetPct = &hitPct
	agg.TopOfRangeRatePct = pct(top)
	agg.SorenessRatePct = pct(sore)
	agg.PainRatePct = pct(pain)
	agg.DisruptionRatePct = pct(disrupted)
	agg.AvgPump = pkg.RoundTo(pumpSum/float64(n), 4)
	if rirCount > 0 {
		avg := pkg.RoundTo(rirSum/float64(rirCount), 4)
		agg.AvgEstimatedRIR = &avg
	}
	if spikeCount > 0 {
		avg := pkg.RoundTo(spikeSum/float64(spikeCount), 4)
		agg.AvgNormalizedHRSpike = &avg
	}

	return agg
}
