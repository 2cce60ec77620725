package athlete

import (
	"fmt"
	"slices"
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityExtra      ActivityLevel = "extra_active"
)

// Multiplier is the TDEE activity factor applied on top of BMR.
func (a ActivityLevel) Multiplier() (float64, bool) {
	switch a {
	case ActivitySedentary:
		return 1.2, true
	case ActivityLight:
		return 1.375, true
	case ActivityModerate:
		return 1.55, true
	case ActivityVeryActive:
		return 1.725, true
	case ActivityExtra:
		return 1.9, true
	default:
		return 0, false
	}
}

type NutritionGoal string

const (
	NutritionCut      NutritionGoal = "cut"
	NutritionMaintain NutritionGoal = "maintain"
	NutritionGain     NutritionGoal = "gain"
)

func (g NutritionGoal) IsValid() bool {
	return g == NutritionCut || g == NutritionMaintain || g == NutritionGain
}

// HealthFlag marks a condition that restricts what the engines may recommend.
type HealthFlag string

const (
	HealthKidney   HealthFlag = "kidney"
	HealthDiabetes HealthFlag = "diabetes"
	HealthHeart    HealthFlag = "heart"
)

const (
	// DefaultRestingHR is used for heart rate normalization when no resting HR is known.
	DefaultRestingHR = 60
)

// Profile holds the anthropometrics and preferences of a user.
type Profile struct {
	UserID        string        `json:"userId"`
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	HeightCm      float64       `json:"heightCm"`
	WeightKg      float64       `json:"weightKg"`
	RestingHR     int           `json:"restingHr,omitempty"`
	Activity      ActivityLevel `json:"activity"`
	NutritionGoal NutritionGoal `json:"nutritionGoal"`
	// HeavyTrainingDays get the carb bias in the nutrition targets.
	HeavyTrainingDays []time.Weekday `json:"heavyTrainingDays"`
	HealthFlags       []HealthFlag   `json:"healthFlags"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (p *Profile) Validate() error {
	if p.Age < 13 || p.Age > 100 {
		return &InvalidAnthropometricsError{Field: "age", Value: float64(p.Age), Reason: "must be within 13..100"}
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return &InvalidAnthropometricsError{Field: "sex", Reason: fmt.Sprintf("unknown value %q", p.Sex)}
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		return &InvalidAnthropometricsError{Field: "heightCm", Value: p.HeightCm, Reason: "must be within 100..250"}
	}
	if p.WeightKg < 30 || p.WeightKg > 350 {
		return &InvalidAnthropometricsError{Field: "weightKg", Value: p.WeightKg, Reason: "must be within 30..350"}
	}
	if p.RestingHR != 0 && (p.RestingHR < 25 || p.RestingHR > 120) {
		return &InvalidAnthropometricsError{Field: "restingHr", Value: float64(p.RestingHR), Reason: "must be within 25..120"}
	}
	if _, ok := p.Activity.Multiplier(); !ok {
		return &InvalidAnthropometricsError{Field: "activity", Reason: fmt.Sprintf("unknown value %q", p.Activity)}
	}
	if !p.NutritionGoal.IsValid() {
		return &InvalidAnthropometricsError{Field: "nutritionGoal", Reason: fmt.Sprintf("unknown value %q", p.NutritionGoal)}
	}
	for _, f := range p.HealthFlags {
		if f != HealthKidney && f != HealthDiabetes && f != HealthHeart {
			return &InvalidAnthropometricsError{Field: "healthFlags", Reason: fmt.Sprintf("unknown flag %q", f)}
		}
	}
	return nil
}

// MaxHR is the age adjusted maximum heart rate.
func (p *Profile) MaxHR() int {
	return 220 - p.Age
}

func (p *Profile) EffectiveRestingHR() int {
	if p.RestingHR == 0 {
		return DefaultRestingHR
	}
	return p.RestingHR
}

// HRReserve is the span between resting and max heart rate, never below 1.
func (p *Profile) HRReserve() int {
	return max(p.MaxHR()-p.EffectiveRestingHR(), 1)
}

func (p *Profile) BMI() float64 {
	h := p.HeightCm / 100
	return p.WeightKg / (h * h)
}

// LeanMassKg estimates lean body mass with the Boer formula.
func (p *Profile) LeanMassKg() float64 {
	if p.Sex == SexFemale {
		return 0.252*p.WeightKg + 0.473*p.HeightCm - 48.3
	}
	return 0.407*p.WeightKg + 0.267*p.HeightCm - 19.2
}

func (p *Profile) HasFlag(f HealthFlag) bool {
	return slices.Contains(p.HealthFlags, f)
}

func (p *Profile) IsHeavyDay(d time.Weekday) bool {
	return slices.Contains(p.HeavyTrainingDays, d)
}
