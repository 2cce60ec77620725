package nutrition

import (
	"github.com/2beens/adaptivecoach/internal/athlete"
)

// MifflinStJeor returns the basal metabolic rate in kcal/day.
func MifflinStJeor(weightKg, heightCm float64, age int, sex athlete.Sex) (float64, error) {
	if weightKg <= 0 {
		return 0, &athlete.InvalidAnthropometricsError{Field: "weightKg", Value: weightKg, Reason: "must be positive"}
	}
	if heightCm <= 0 {
		return 0, &athlete.InvalidAnthropometricsError{Field: "heightCm", Value: heightCm, Reason: "must be positive"}
	}
	if age <= 0 {
		return 0, &athlete.InvalidAnthropometricsError{Field: "age", Value: float64(age), Reason: "must be positive"}
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case athlete.SexMale:
		bmr += 5
	case athlete.SexFemale:
		bmr -= 161
	default:
		return 0, &athlete.InvalidAnthropometricsError{Field: "sex", Reason: "must be male or female"}
	}
	return bmr, nil
}

func ActivityMultiplier(level athlete.ActivityLevel) (float64, error) {
	m, ok := level.Multiplier()
	if !ok {
		return 0, &athlete.InvalidAnthropometricsError{Field: "activity", Reason: "unknown activity level " + string(level)}
	}
	return m, nil
}

type TDEE struct {
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
	// StartKcal is the first week's target, TDEE shifted toward the goal.
	StartKcal float64 `json:"startKcal"`
}

// BootstrapTDEE estimates energy expenditure from the profile alone, before any
// weight trend exists. weightKg overrides the profile weight when > 0.
func BootstrapTDEE(p *athlete.Profile, weightKg float64, cfg Config) (TDEE, error) {
	if err := p.Validate(); err != nil {
		return TDEE{}, err
	}
	if weightKg <= 0 {
		weightKg = p.WeightKg
	}

	bmr, err := MifflinStJeor(weightKg, p.HeightCm, p.Age, p.Sex)
	if err != nil {
		return TDEE{}, err
	}
	multiplier, err := ActivityMultiplier(p.Activity)
	if err != nil {
		return TDEE{}, err
	}

	tdee := bmr * multiplier
	start := tdee
	switch p.NutritionGoal {
	case athlete.NutritionCut:
		start = tdee * cfg.CutStartFactor
	case athlete.NutritionGain:
		start = tdee * cfg.GainStartFactor
	}

	return TDEE{
		BMR:       bmr,
		TDEE:      tdee,
		StartKcal: start,
	}, nil
}
