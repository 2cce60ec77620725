package calibration

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/pkg"
)

var (
	ErrProfileNotFound = errors.New("calibration profile not found")
	ErrVersionConflict = errors.New("calibration profile was updated concurrently")
)

// Profile is the long lived RIR calibration of one user on one exercise.
// It survives plan phases and is only ever updated, never deleted.
type Profile struct {
	UserID     string `json:"userId"`
	ExerciseID string `json:"exerciseId"`
	// RIRBiasEstimate is the signed correction added to self reported RIR.
	RIRBiasEstimate float64   `json:"rirBiasEstimate"`
	Confidence      float64   `json:"confidence"`
	SampleCount     int       `json:"sampleCount"`
	Version         int       `json:"version"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

func NewProfile(userID, exerciseID string) Profile {
	return Profile{
		UserID:     userID,
		ExerciseID: exerciseID,
	}
}

// CorrectedRIR applies the bias to a self reported RIR, weighted by how much
// the profile is trusted so far.
func (p Profile) CorrectedRIR(selfReported float64) float64 {
	return math.Max(0, selfReported+p.Confidence*p.RIRBiasEstimate)
}

// DriftWarning is raised when the bias estimate leaves the sanity bound. The
// profile is kept, clamped, and its confidence lowered.
type DriftWarning struct {
	UserID     string
	ExerciseID string
	Bias       float64
	Bound      float64
}

func (w *DriftWarning) Error() string {
	return fmt.Sprintf(
		"calibration drift for user %s exercise %s: bias %.2f beyond ±%.1f RIR",
		w.UserID, w.ExerciseID, w.Bias, w.Bound,
	)
}

// Calibrator holds the learning constants. It has no state of its own, the
// profile is passed in and returned.
type Calibrator struct {
	cfg Config
}

func NewCalibrator(cfg Config) Calibrator {
	return Calibrator{cfg: cfg}
}

// LearningRate is α0/(1+n/k): large for the first sessions, shrinking as samples grow.
func (c Calibrator) LearningRate(sampleCount int) float64 {
	return c.cfg.Alpha0 / (1 + float64(sampleCount)/c.cfg.K)
}

func (c Calibrator) confidenceFor(sampleCount int) float64 {
	n := float64(sampleCount)
	return c.cfg.ConfidenceCap * n / (n + c.cfg.K)
}

// ObservedProxyRIR estimates the reps in reserve of a set from objective signals:
// where the reps landed in the target range and, when recorded, how hard the
// heart rate spiked.
func ObservedProxyRIR(set ingest.WorkoutSet, hr aggregate.HRProfile) float64 {
	var repsProxy float64
	switch {
	case set.Reps < set.TargetRepMin:
		// missed the range, the set went to failure
		repsProxy = 0
	case set.TargetRepMax == set.TargetRepMin:
		repsProxy = 2
	default:
		pos := float64(set.Reps-set.TargetRepMin) / float64(set.TargetRepMax-set.TargetRepMin)
		repsProxy = 1 + 2*math.Min(pos, 1)
	}
	if set.Reps > set.TargetRepMax {
		repsProxy += 0.5 * float64(set.Reps-set.TargetRepMax)
	}
	repsProxy = math.Min(repsProxy, 6)

	spike, ok := hr.NormalizedSpike(set)
	if !ok {
		return repsProxy
	}
	hrProxy := 4 * (1 - spike)
	return 0.6*repsProxy + 0.4*hrProxy
}

// Update folds one completed set into the profile. Sets without a perceived
// effort carry no self report and leave the profile untouched.
//
//	bias' = bias + α·((observed − selfReported) − bias),  α = α0/(1+n/k)
//
// which is an exponentially weighted mean of the observed error, converging to a
// constant true bias as the sample count grows.
func (c Calibrator) Update(p Profile, set ingest.WorkoutSet, hr aggregate.HRProfile) (Profile, *DriftWarning) {
	selfReported, ok := set.PerceivedEffort.ImpliedRIR()
	if !ok {
		return p, nil
	}

	observedErr := ObservedProxyRIR(set, hr) - selfReported
	alpha := c.LearningRate(p.SampleCount)

	// exponentially weighted mean of the observed error, converges to a constant bias
	p.RIRBiasEstimate += alpha * (observedErr - p.RIRBiasEstimate)
	p.SampleCount++
	p.Confidence = c.confidenceFor(p.SampleCount)
	p.LastUpdated = set.Timestamp

	if math.Abs(p.RIRBiasEstimate) <= c.cfg.DriftBound {
		return p, nil
	}

	warning := &DriftWarning{
		UserID:     p.UserID,
		ExerciseID: p.ExerciseID,
		Bias:       p.RIRBiasEstimate,
		Bound:      c.cfg.DriftBound,
	}
	p.RIRBiasEstimate = pkg.Clamp(p.RIRBiasEstimate, -c.cfg.DriftBound, c.cfg.DriftBound)
	// rewind the sample count to where confidence equals the reset value, so it
	// stays consistent with the count and the learning rate grows again
	reset := math.Min(c.cfg.DriftConfidenceReset, c.cfg.ConfidenceCap*0.99)
	p.SampleCount = int(math.Floor(c.cfg.K * reset / (c.cfg.ConfidenceCap - reset)))
	p.Confidence = c.confidenceFor(p.SampleCount)

	return p, warning
}
