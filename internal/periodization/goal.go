package periodization

import (
	"fmt"
	"strings"
)

// Goal is the training goal of a plan phase. It selects the deload cadence,
// the deload directive and the adjustment rule family.
type Goal string

const (
	GoalHypertrophy  Goal = "hypertrophy"
	GoalStrength     Goal = "strength"
	GoalPowerlifting Goal = "powerlifting"
	GoalWeightLoss   Goal = "weightLoss"
	GoalMobility     Goal = "mobility"
)

var AllGoals = []Goal{
	GoalHypertrophy,
	GoalStrength,
	GoalPowerlifting,
	GoalWeightLoss,
	GoalMobility,
}

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalHypertrophy,
		GoalStrength,
		GoalPowerlifting,
		GoalWeightLoss,
		GoalMobility:
		return true
	default:
		return false
	}
}

// ParseGoal accepts the canonical names case-insensitively, plus "weight_loss".
func ParseGoal(s string) (Goal, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	for _, g := range AllGoals {
		if strings.ToLower(string(g)) == normalized {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGoal, s)
}

// State of a plan phase for a given week.
type State string

const (
	StateTraining      State = "training"
	StateDeload        State = "deload"
	StateTransitioning State = "transitioning"
)

// Status is the lifecycle status of the stored phase record.
type Status string

const (
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusTerminated Status = "terminated"
)
