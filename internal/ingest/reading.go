package ingest

import (
	"fmt"
	"time"

	"github.com/2beens/adaptivecoach/pkg"
)

// DailyReading holds the physiological signals of one day. Every signal is
// optional, a user without a wearable sends none of them.
type DailyReading struct {
	UserID       string    `json:"userId"`
	Day          time.Time `json:"day"`
	RestingHR    *int      `json:"restingHr,omitempty"`
	HRVms        *float64  `json:"hrvMs,omitempty"`
	SleepHours   *float64  `json:"sleepHours,omitempty"`
	SleepMinutes *int      `json:"sleepMinutes,omitempty"`
	// SleepQuality is a 0..10 score, as reported by the device or the user.
	SleepQuality *int `json:"sleepQuality,omitempty"`
	Steps        *int `json:"steps,omitempty"`
}

func (r *DailyReading) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidReading)
	}
	if r.Day.IsZero() {
		return fmt.Errorf("%w: missing day", ErrInvalidReading)
	}
	if r.RestingHR != nil && (*r.RestingHR < 25 || *r.RestingHR > 250) {
		return fmt.Errorf("%w: resting hr %d out of range", ErrInvalidReading, *r.RestingHR)
	}
	if r.HRVms != nil && (*r.HRVms <= 0 || *r.HRVms > 300) {
		return fmt.Errorf("%w: hrv %g out of range", ErrInvalidReading, *r.HRVms)
	}
	if r.SleepHours != nil && (*r.SleepHours < 0 || *r.SleepHours > 24) {
		return fmt.Errorf("%w: sleep hours %g out of range", ErrInvalidReading, *r.SleepHours)
	}
	if r.SleepMinutes != nil && (*r.SleepMinutes < 0 || *r.SleepMinutes > 24*60) {
		return fmt.Errorf("%w: sleep minutes %d out of range", ErrInvalidReading, *r.SleepMinutes)
	}
	if r.SleepQuality != nil && (*r.SleepQuality < 0 || *r.SleepQuality > 10) {
		return fmt.Errorf("%w: sleep quality %d not in 0..10", ErrInvalidReading, *r.SleepQuality)
	}
	if r.Steps != nil && *r.Steps < 0 {
		return fmt.Errorf("%w: negative steps", ErrInvalidReading)
	}
	return nil
}

// Normalize folds sleep minutes into hours and truncates the day to UTC midnight.
func (r *DailyReading) Normalize() {
	if r.SleepHours == nil && r.SleepMinutes != nil {
		hours := float64(*r.SleepMinutes) / 60
		r.SleepHours = &hours
	}
	r.SleepMinutes = nil
	r.Day = pkg.Midnight(r.Day)
}

// HasPhysiology reports whether any wearable signal is present.
func (r *DailyReading) HasPhysiology() bool {
	return r.RestingHR != nil || r.HRVms != nil || r.SleepHours != nil || r.SleepQuality != nil
}

type WeightLog struct {
	UserID   string    `json:"userId"`
	Day      time.Time `json:"day"`
	WeightKg float64   `json:"weightKg"`
}

func (w *WeightLog) Validate() error {
	if w.UserID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidWeight)
	}
	if w.Day.IsZero() {
		return fmt.Errorf("%w: missing day", ErrInvalidWeight)
	}
	if w.WeightKg < 30 || w.WeightKg > 350 {
		return fmt.Errorf("%w: weight %g out of range", ErrInvalidWeight, w.WeightKg)
	}
	return nil
}

func (w *WeightLog) Normalize() {
	w.Day = pkg.Midnight(w.Day)
}
