package calibration

import (
	"fmt"
)

// Config holds the tunables of the RIR calibration and the readiness model.
type Config struct {
	Alpha0 float64 `toml:"alpha0"`
	K      float64 `toml:"k"`
	// ConfidenceCap is the asymptote of the confidence, reached as samples grow.
	ConfidenceCap        float64 `toml:"confidence_cap"`
	DriftBound           float64 `toml:"drift_bound"`
	DriftConfidenceReset float64 `toml:"drift_confidence_reset"`

	Readiness ReadinessConfig `toml:"readiness"`
}

type ReadinessConfig struct {
	BaselineDays int `toml:"baseline_days"`
	// MinBaselineSamples needed before HRV and resting HR deviations are trusted.
	MinBaselineSamples int     `toml:"min_baseline_samples"`
	HRVWeight          float64 `toml:"hrv_weight"`
	RestingHRWeight    float64 `toml:"resting_hr_weight"`
	SleepWeight        float64 `toml:"sleep_weight"`
	SleepTargetHours   float64 `toml:"sleep_target_hours"`
	// Neutral is returned when there is no signal at all.
	Neutral float64 `toml:"neutral"`
	// Low is the one cutoff below which training flags low readiness, nutrition
	// holds the deficit and a light day is suggested.
	Low float64 `toml:"low"`
}

func DefaultConfig() Config {
	return Config{
		Alpha0:               0.5,
		K:                    10,
		ConfidenceCap:        0.95,
		DriftBound:           5,
		DriftConfidenceReset: 0.2,
		Readiness: ReadinessConfig{
			BaselineDays:       14,
			MinBaselineSamples: 4,
			HRVWeight:          0.4,
			RestingHRWeight:    0.3,
			SleepWeight:        0.3,
			SleepTargetHours:   8,
			Neutral:            0.75,
			Low:                0.45,
		},
	}
}

func (c Config) Validate() error {
	if c.Alpha0 <= 0 || c.Alpha0 > 1 {
		return fmt.Errorf("alpha0 must be in (0, 1], got %v", c.Alpha0)
	}
	if c.K <= 0 {
		return fmt.Errorf("k must be positive, got %v", c.K)
	}
	if c.ConfidenceCap <= 0 || c.ConfidenceCap > 1 {
		return fmt.Errorf("confidence cap must be in (0, 1], got %v", c.ConfidenceCap)
	}
	if c.DriftBound <= 0 {
		return fmt.Errorf("drift bound must be positive, got %v", c.DriftBound)
	}
	if c.DriftConfidenceReset < 0 || c.DriftConfidenceReset > c.ConfidenceCap {
		return fmt.Errorf("drift confidence reset must be in [0, %v], got %v", c.ConfidenceCap, c.DriftConfidenceReset)
	}

	r := c.Readiness
	if r.BaselineDays <= 0 {
		return fmt.Errorf("readiness baseline days must be positive, got %d", r.BaselineDays)
	}
	if r.HRVWeight < 0 || r.RestingHRWeight < 0 || r.SleepWeight < 0 {
		return fmt.Errorf("readiness weights cannot be negative")
	}
	if r.Neutral < 0 || r.Neutral > 1 {
		return fmt.Errorf("neutral readiness must be in [0, 1], got %v", r.Neutral)
	}
	if r.Low < 0 || r.Low > 1 {
		return fmt.Errorf("low readiness must be in [0, 1], got %v", r.Low)
	}
	return nil
}
