package nutrition

import (
	"fmt"

	"github.com/2beens/adaptivecoach/internal/athlete"
)

// Band is a target range of weekly bodyweight change, in percent.
type Band struct {
	MinPct float64 `toml:"min_pct" json:"minPct"`
	MaxPct float64 `toml:"max_pct" json:"maxPct"`
}

func (b Band) Contains(pct float64) bool {
	return pct >= b.MinPct && pct <= b.MaxPct
}

// Distance is the signed distance of pct from the band, 0 inside it.
func (b Band) Distance(pct float64) float64 {
	switch {
	case pct < b.MinPct:
		return pct - b.MinPct
	case pct > b.MaxPct:
		return pct - b.MaxPct
	default:
		return 0
	}
}

type Config struct {
	CutBand      Band `toml:"cut_band"`
	MaintainBand Band `toml:"maintain_band"`
	GainBand     Band `toml:"gain_band"`

	MinNudgeKcal float64 `toml:"min_nudge_kcal"`
	MaxNudgeKcal float64 `toml:"max_nudge_kcal"`
	// KcalPerKg is the energy content of a kilogram of bodyweight change.
	KcalPerKg       float64 `toml:"kcal_per_kg"`
	MinWeighIns     int     `toml:"min_weigh_ins"`
	ExtremeMissPct  float64 `toml:"extreme_miss_pct"`
	CutStartFactor  float64 `toml:"cut_start_factor"`
	GainStartFactor float64 `toml:"gain_start_factor"`

	ProteinMinGPerKg float64 `toml:"protein_min_g_per_kg"`
	ProteinMaxGPerKg float64 `toml:"protein_max_g_per_kg"`
	LeanMassBMI      float64 `toml:"lean_mass_bmi"`
	FatMinGPerKg     float64 `toml:"fat_min_g_per_kg"`
	FatShareOfKcal   float64 `toml:"fat_share_of_kcal"`

	HeavyDayCarbBiasPct      float64 `toml:"heavy_day_carb_bias_pct"`
	LowReadinessCarbBoostPct float64 `toml:"low_readiness_carb_boost_pct"`

	MinKcal        float64 `toml:"min_kcal"`
	BMRFloorFactor float64 `toml:"bmr_floor_factor"`

	HydrationMlPerKg    float64 `toml:"hydration_ml_per_kg"`
	LowReadinessExtraMl float64 `toml:"low_readiness_extra_ml"`

	KidneyProteinMaxGPerKg   float64 `toml:"kidney_protein_max_g_per_kg"`
	DiabetesProteinMaxGPerKg float64 `toml:"diabetes_protein_max_g_per_kg"`
	HeartSodiumLimitMg       int     `toml:"heart_sodium_limit_mg"`

	Intake IntakeLimits `toml:"intake"`
}

// IntakeLimits are absolute daily limits, per kg of bodyweight. Targets outside
// them are still produced but carry a caution.
type IntakeLimits struct {
	MinKcalPerKg      float64 `toml:"min_kcal_per_kg"`
	MaxKcalPerKg      float64 `toml:"max_kcal_per_kg"`
	MinProteinGPerKg  float64 `toml:"min_protein_g_per_kg"`
	MaxProteinGPerKg  float64 `toml:"max_protein_g_per_kg"`
	MinFatShareOfKcal float64 `toml:"min_fat_share_of_kcal"`
}

func DefaultConfig() Config {
	return Config{
		CutBand:                  Band{MinPct: -0.75, MaxPct: -0.25},
		MaintainBand:             Band{MinPct: -0.25, MaxPct: 0.25},
		GainBand:                 Band{MinPct: 0.25, MaxPct: 0.5},
		MinNudgeKcal:             100,
		MaxNudgeKcal:             200,
		KcalPerKg:                7700,
		MinWeighIns:              3,
		ExtremeMissPct:           1,
		CutStartFactor:           0.8,
		GainStartFactor:          1.1,
		ProteinMinGPerKg:         1.6,
		ProteinMaxGPerKg:         2.2,
		LeanMassBMI:              30,
		FatMinGPerKg:             0.6,
		FatShareOfKcal:           0.25,
		HeavyDayCarbBiasPct:      15,
		LowReadinessCarbBoostPct: 5,
		MinKcal:                  1200,
		BMRFloorFactor:           1,
		HydrationMlPerKg:         35,
		LowReadinessExtraMl:      500,
		KidneyProteinMaxGPerKg:   1.2,
		DiabetesProteinMaxGPerKg: 2.0,
		HeartSodiumLimitMg:       1500,
		Intake: IntakeLimits{
			MinKcalPerKg:      15,
			MaxKcalPerKg:      50,
			MinProteinGPerKg:  0.8,
			MaxProteinGPerKg:  3.0,
			MinFatShareOfKcal: 0.15,
		},
	}
}

func (c Config) BandFor(goal athlete.NutritionGoal) Band {
	switch goal {
	case athlete.NutritionCut:
		return c.CutBand
	case athlete.NutritionGain:
		return c.GainBand
	default:
		return c.MaintainBand
	}
}

func (c Config) Validate() error {
	for name, b := range map[string]Band{"cut": c.CutBand, "maintain": c.MaintainBand, "gain": c.GainBand} {
		if b.MinPct > b.MaxPct {
			return fmt.Errorf("%s band: min %v above max %v", name, b.MinPct, b.MaxPct)
		}
	}
	if c.MinNudgeKcal <= 0 || c.MinNudgeKcal > c.MaxNudgeKcal {
		return fmt.Errorf("nudge range [%v, %v] is invalid", c.MinNudgeKcal, c.MaxNudgeKcal)
	}
	if c.KcalPerKg <= 0 {
		return fmt.Errorf("kcal per kg must be positive, got %v", c.KcalPerKg)
	}
	if c.MinKcal <= 0 || c.BMRFloorFactor <= 0 {
		return fmt.Errorf("safety floor must be positive")
	}
	if c.ProteinMinGPerKg <= 0 || c.ProteinMinGPerKg > c.ProteinMaxGPerKg {
		return fmt.Errorf("protein range [%v, %v] g/kg is invalid", c.ProteinMinGPerKg, c.ProteinMaxGPerKg)
	}
	if c.Intake.MinKcalPerKg > c.Intake.MaxKcalPerKg {
		return fmt.Errorf("intake kcal range [%v, %v] per kg is invalid", c.Intake.MinKcalPerKg, c.Intake.MaxKcalPerKg)
	}
	if c.Intake.MinProteinGPerKg > c.Intake.MaxProteinGPerKg {
		return fmt.Errorf("intake protein range [%v, %v] g/kg is invalid", c.Intake.MinProteinGPerKg, c.Intake.MaxProteinGPerKg)
	}
	return nil
}
