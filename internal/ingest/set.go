package ingest

import (
	"fmt"
	"strings"
	"time"
)

type Effort string

const (
	EffortEasy     Effort = "easy"
	EffortModerate Effort = "moderate"
	EffortHard     Effort = "hard"
	// EffortMissing means the user skipped the effort prompt.
	EffortMissing Effort = ""
)

// ImpliedRIR maps a perceived effort to the reps in reserve it implies.
func (e Effort) ImpliedRIR() (float64, bool) {
	switch e {
	case EffortEasy:
		return 4, true
	case EffortModerate:
		return 2, true
	case EffortHard:
		return 0.5, true
	default:
		return 0, false
	}
}

const (
	LoadUnitKg = "kg"
	LoadUnitLb = "lb"

	kgPerLb = 0.45359237
)

// WorkoutSet is one completed set. Once stored it is never mutated.
type WorkoutSet struct {
	ID                int64     `json:"id"`
	UserID            string    `json:"userId"`
	ExerciseID        string    `json:"exerciseId"`
	SetIndex          int       `json:"setIndex"`
	Reps              int       `json:"reps"`
	Load              float64   `json:"load"`
	LoadUnit          string    `json:"loadUnit,omitempty"`
	TargetRepMin      int       `json:"targetRepMin"`
	TargetRepMax      int       `json:"targetRepMax"`
	HeartRateStart    int       `json:"heartRateStart,omitempty"`
	HeartRateEnd      int       `json:"heartRateEnd,omitempty"`
	RestBeforeSeconds int       `json:"restBeforeSeconds"`
	PerceivedEffort   Effort    `json:"perceivedEffort"`
	Pump              int       `json:"pump"`
	Soreness          int       `json:"soreness"`
	JointPain         int       `json:"jointPain"`
	Disruption        int       `json:"disruption"`
	Timestamp         time.Time `json:"timestamp"`
}

// HasHeartRate reports whether both start and end heart rates were recorded.
func (s *WorkoutSet) HasHeartRate() bool {
	return s.HeartRateStart > 0 && s.HeartRateEnd > 0
}

func (s *WorkoutSet) HitTarget() bool {
	return s.Reps >= s.TargetRepMin
}

func (s *WorkoutSet) TopOfRange() bool {
	return s.Reps >= s.TargetRepMax
}

// Validate checks the set as received, before Normalize.
func (s *WorkoutSet) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidSet)
	}
	if s.ExerciseID == "" {
		return fmt.Errorf("%w: empty exercise id", ErrInvalidSet)
	}
	if s.SetIndex < 0 {
		return fmt.Errorf("%w: negative set index", ErrInvalidSet)
	}
	if s.Reps < 0 || s.Load < 0 {
		return fmt.Errorf("%w: negative reps or load", ErrInvalidSet)
	}
	if s.TargetRepMin <= 0 || s.TargetRepMax < s.TargetRepMin {
		return fmt.Errorf("%w: target rep range [%d, %d]", ErrInvalidSet, s.TargetRepMin, s.TargetRepMax)
	}
	switch strings.ToLower(s.LoadUnit) {
	case "", LoadUnitKg, LoadUnitLb:
	default:
		return fmt.Errorf("%w: unknown load unit %q", ErrInvalidSet, s.LoadUnit)
	}
	for _, hr := range []int{s.HeartRateStart, s.HeartRateEnd} {
		if hr != 0 && (hr < 25 || hr > 250) {
			return fmt.Errorf("%w: heart rate %d out of range", ErrInvalidSet, hr)
		}
	}
	if s.RestBeforeSeconds < 0 {
		return fmt.Errorf("%w: negative rest", ErrInvalidSet)
	}
	switch s.PerceivedEffort {
	case EffortEasy, EffortModerate, EffortHard, EffortMissing:
	default:
		return fmt.Errorf("%w: unknown effort %q", ErrInvalidSet, s.PerceivedEffort)
	}
	for name, rating := range map[string]int{
		"pump":       s.Pump,
		"soreness":   s.Soreness,
		"jointPain":  s.JointPain,
		"disruption": s.Disruption,
	} {
		if rating < 0 || rating > 3 {
			return fmt.Errorf("%w: %s rating %d not in 0..3", ErrInvalidSet, name, rating)
		}
	}
	if s.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidSet)
	}
	return nil
}

// Normalize converts the load to kg and the timestamp to UTC.
func (s *WorkoutSet) Normalize() {
	if strings.EqualFold(s.LoadUnit, LoadUnitLb) {
		s.Load *= kgPerLb
	}
	s.LoadUnit = LoadUnitKg
	s.Timestamp = s.Timestamp.UTC()
}
