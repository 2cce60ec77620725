package calibration

import (
	"time"

	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/pkg"
)

type ReadinessSource string

const (
	SourcePhysiological ReadinessSource = "physiological"
	SourceSubjective    ReadinessSource = "subjective"
	SourceDefault       ReadinessSource = "default"
)

const (
	ComponentHRV       = "hrv"
	ComponentRestingHR = "resting_hr"
	ComponentSleep     = "sleep"
	ComponentSoreness  = "soreness"
)

// ReadinessScore is a [0, 1] estimate of recovery. It scales positive training
// deltas and steers the nutrition override, computed once per user-week.
// Low is decided here, against a single threshold, and both engines follow it.
type ReadinessScore struct {
	UserID     string             `json:"userId"`
	Day        time.Time          `json:"day"`
	Value      float64            `json:"value"`
	Low        bool               `json:"low"`
	Source     ReadinessSource    `json:"source"`
	Components map[string]float64 `json:"components,omitempty"`
}

type ReadinessModel struct {
	cfg ReadinessConfig
}

func NewReadinessModel(cfg ReadinessConfig) ReadinessModel {
	return ReadinessModel{cfg: cfg}
}

func (m ReadinessModel) Config() ReadinessConfig {
	return m.cfg
}

// Window returns the range of days the model needs readings and sets for.
func (m ReadinessModel) Window(day time.Time) (from, to time.Time) {
	day = pkg.Midnight(day)
	return day.AddDate(0, 0, -m.cfg.BaselineDays), day.AddDate(0, 0, 1)
}

// Score never fails: without wearable signals it falls back to the subjective
// ratings of the last week of sets, and without those to the neutral value.
func (m ReadinessModel) Score(userID string, day time.Time, readings []ingest.DailyReading, recentSets []ingest.WorkoutSet) ReadinessScore {
	score := m.score(userID, day, readings, recentSets)
	score.Low = score.Value < m.cfg.Low
	return score
}

func (m ReadinessModel) score(userID string, day time.Time, readings []ingest.DailyReading, recentSets []ingest.WorkoutSet) ReadinessScore {
	day = pkg.Midnight(day)
	score := ReadinessScore{
		UserID: userID,
		Day:    day,
	}

	if components := m.physiological(day, readings); len(components) > 0 {
		weights := map[string]float64{
			ComponentHRV:       m.cfg.HRVWeight,
			ComponentRestingHR: m.cfg.RestingHRWeight,
			ComponentSleep:     m.cfg.SleepWeight,
		}
		var sum, weightSum float64
		for name, v := range components {
			sum += weights[name] * v
			weightSum += weights[name]
		}
		if weightSum > 0 {
			score.Value = pkg.RoundTo(pkg.Clamp(sum/weightSum, 0, 1), 4)
			score.Source = SourcePhysiological
			score.Components = components
			return score
		}
	}

	if v, ok := m.subjective(day, recentSets); ok {
		score.Value = pkg.RoundTo(v, 4)
		score.Source = SourceSubjective
		score.Components = map[string]float64{ComponentSoreness: score.Value}
		return score
	}

	score.Value = m.cfg.Neutral
	score.Source = SourceDefault
	return score
}

// latest reading of the day, or of the day before when today's is not in yet
func todayReading(day time.Time, readings []ingest.DailyReading) *ingest.DailyReading {
	var found *ingest.DailyReading
	for i := range readings {
		d := pkg.Midnight(readings[i].Day)
		if d.Equal(day) {
			return &readings[i]
		}
		if d.Equal(day.AddDate(0, 0, -1)) {
			found = &readings[i]
		}
	}
	return found
}

func (m ReadinessModel) physiological(day time.Time, readings []ingest.DailyReading) map[string]float64 {
	today := todayReading(day, readings)
	if today == nil || !today.HasPhysiology() {
		return nil
	}

	baselineFrom := day.AddDate(0, 0, -m.cfg.BaselineDays)
	var hrvBaseline, rhrBaseline []float64
	for _, r := range readings {
		d := pkg.Midnight(r.Day)
		if d.Before(baselineFrom) || !d.Before(pkg.Midnight(today.Day)) {
			continue
		}
		if r.HRVms != nil {
			hrvBaseline = append(hrvBaseline, *r.HRVms)
		}
		if r.RestingHR != nil {
			rhrBaseline = append(rhrBaseline, float64(*r.RestingHR))
		}
	}

	components := make(map[string]float64, 3)
	if today.HRVms != nil && len(hrvBaseline) >= m.cfg.MinBaselineSamples {
		// lower HRV than usual means worse recovery
		z := zScore(*today.HRVms, hrvBaseline)
		components[ComponentHRV] = 1 - pkg.Clamp(-z/2, 0, 1)
	}
	if today.RestingHR != nil && len(rhrBaseline) >= m.cfg.MinBaselineSamples {
		// elevated resting HR means worse recovery
		z := zScore(float64(*today.RestingHR), rhrBaseline)
		components[ComponentRestingHR] = 1 - pkg.Clamp(z/2, 0, 1)
	}
	if sleep, ok := m.sleepComponent(today); ok {
		components[ComponentSleep] = sleep
	}

	for k, v := range components {
		components[k] = pkg.RoundTo(v, 4)
	}
	return components
}

func (m ReadinessModel) sleepComponent(r *ingest.DailyReading) (float64, bool) {
	switch {
	case r.SleepHours != nil && r.SleepQuality != nil:
		hours := pkg.Clamp(*r.SleepHours/m.cfg.SleepTargetHours, 0, 1)
		return (hours + float64(*r.SleepQuality)/10) / 2, true
	case r.SleepHours != nil:
		return pkg.Clamp(*r.SleepHours/m.cfg.SleepTargetHours, 0, 1), true
	case r.SleepQuality != nil:
		return float64(*r.SleepQuality) / 10, true
	default:
		return 0, false
	}
}

// zScore of v against the baseline, with the spread floored at 5% of the mean
// so a very stable baseline does not turn noise into a large deviation.
func zScore(v float64, baseline []float64) float64 {
	mean, std := pkg.MeanStdDev(baseline)
	floor := 0.05 * mean
	if floor <= 0 {
		floor = 1
	}
	return (v - mean) / max(std, floor)
}

func (m ReadinessModel) subjective(day time.Time, sets []ingest.WorkoutSet) (float64, bool) {
	from := day.AddDate(0, 0, -7)
	to := day.AddDate(0, 0, 1)

	var soreness, jointPain, disruption float64
	n := 0
	for _, s := range sets {
		if s.Timestamp.Before(from) || !s.Timestamp.Before(to) {
			continue
		}
		soreness += float64(s.Soreness)
		jointPain += float64(s.JointPain)
		disruption += float64(s.Disruption)
		n++
	}
	if n == 0 {
		return 0, false
	}

	// ratings are 0..3, joint pain weighs as much as soreness, disruption less
	load := (0.4*soreness + 0.4*jointPain + 0.2*disruption) / float64(n) / 3
	return pkg.Clamp(1-load, 0, 1), true
}
