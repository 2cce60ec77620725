package nutrition

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/pkg"
)

type NudgeDirection string

const (
	NudgeUp   NudgeDirection = "up"
	NudgeDown NudgeDirection = "down"
	NudgeHold NudgeDirection = "hold"
)

// NutritionWeek holds the targets of one (user, week). KcalTarget never drops
// below the safety floor. BaseKcalTarget is the trend driven target before any
// recovery carbs, the next week is calibrated from it.
type NutritionWeek struct {
	UserID              string    `json:"userId"`
	WeekStart           time.Time `json:"weekStart"`
	KcalTarget          int       `json:"kcalTarget"`
	BaseKcalTarget      int       `json:"baseKcalTarget"`
	ProteinTargetG      int       `json:"proteinTargetG"`
	FatTargetG          int       `json:"fatTargetG"`
	CarbTargetG         int       `json:"carbTargetG"`
	HeavyDayKcalTarget  int       `json:"heavyDayKcalTarget,omitempty"`
	HeavyDayCarbTargetG int       `json:"heavyDayCarbTargetG,omitempty"`
	WeightMovingAverage *float64  `json:"weightMovingAverage,omitempty"`
	WeeklyChangePct     *float64  `json:"weeklyChangePct,omitempty"`
	DeltaVsGoalPct      *float64  `json:"deltaVsGoalPct,omitempty"`
	NudgeKcal           int       `json:"nudgeKcal"`
	SafetyFloorKcal     int       `json:"safetyFloorKcal"`
	SafetyFloorApplied  bool      `json:"safetyFloorApplied"`
	HydrationMl         int       `json:"hydrationMl"`
	SodiumLimitMg       *int      `json:"sodiumLimitMg,omitempty"`
	LightDayRecommended bool      `json:"lightDayRecommended"`
	Readiness           float64   `json:"readiness"`
	Caution             string    `json:"caution,omitempty"`
	Notes               []string  `json:"notes"`
}

func (w *NutritionWeek) Direction() NudgeDirection {
	switch {
	case w.NudgeKcal > 0:
		return NudgeUp
	case w.NudgeKcal < 0:
		return NudgeDown
	default:
		return NudgeHold
	}
}

type RecalibrateInput struct {
	Profile   *athlete.Profile
	WeekStart time.Time
	Trend     WeightTrend
	// PreviousKcal is last week's base target, 0 for the first week of the user.
	PreviousKcal float64
	Readiness    calibration.ReadinessScore
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Recalibrate derives the week's targets from the weight trend. A trend outside
// the goal band moves calories by a bounded step in the correcting direction.
// Low readiness holds a deficit and raises carbs instead of cutting them, for
// that week only.
func (e *Engine) Recalibrate(in RecalibrateInput) (NutritionWeek, error) {
	if in.Profile == nil {
		return NutritionWeek{}, errors.New("recalibrate: missing athlete profile")
	}

	weightKg := in.Profile.WeightKg
	if in.Trend.MovingAverage != nil {
		weightKg = *in.Trend.MovingAverage
	}
	tdee, err := BootstrapTDEE(in.Profile, weightKg, e.cfg)
	if err != nil {
		return NutritionWeek{}, err
	}

	readiness := pkg.Clamp(in.Readiness.Value, 0, 1)
	lowReadiness := in.Readiness.Low
	week := NutritionWeek{
		UserID:              in.Profile.UserID,
		WeekStart:           pkg.WeekStart(in.WeekStart),
		WeightMovingAverage: in.Trend.MovingAverage,
		WeeklyChangePct:     in.Trend.WeeklyChangePct,
		Readiness:           readiness,
		Notes:               []string{},
	}
	var cautions []string

	kcal := in.PreviousKcal
	if kcal <= 0 {
		kcal = tdee.StartKcal
		week.Notes = append(week.Notes, fmt.Sprintf("bootstrapped from TDEE %.0f kcal", tdee.TDEE))
	}

	if in.Trend.Known() {
		band := e.cfg.BandFor(in.Profile.NutritionGoal)
		delta := pkg.RoundTo(band.Distance(*in.Trend.WeeklyChangePct), 4)
		week.DeltaVsGoalPct = &delta

		if delta != 0 {
			// gaining faster than the band (or losing slower) means too much energy
			gapKcal := math.Abs(delta) / 100 * weightKg * e.cfg.KcalPerKg / 7
			step := math.Round(pkg.Clamp(gapKcal, e.cfg.MinNudgeKcal, e.cfg.MaxNudgeKcal))
			if delta > 0 {
				step = -step
			}
			week.NudgeKcal = int(step)
			week.Notes = append(week.Notes, fmt.Sprintf(
				"weight changed %.2f%%/week, target band %.2f..%.2f%%",
				*in.Trend.WeeklyChangePct, band.MinPct, band.MaxPct,
			))
		}
		if math.Abs(delta) >= e.cfg.ExtremeMissPct {
			cautions = append(cautions, fmt.Sprintf(
				"weight changing %.2f%%/week, far outside the target band",
				*in.Trend.WeeklyChangePct,
			))
		}
	} else {
		week.Notes = append(week.Notes, "not enough weigh-ins for a trend, calories held")
	}

	if lowReadiness {
		week.LightDayRecommended = true
		if week.NudgeKcal < 0 {
			week.Notes = append(week.Notes, "deficit increase held, readiness is low")
			week.NudgeKcal = 0
		}
	}
	kcal += float64(week.NudgeKcal)

	floor := math.Max(e.cfg.MinKcal, tdee.BMR*e.cfg.BMRFloorFactor)
	week.SafetyFloorKcal = int(math.Ceil(floor))
	if kcal < floor {
		kcal = floor
		week.SafetyFloorApplied = true
		cautions = append(cautions, fmt.Sprintf("calorie target raised to the safety floor of %d kcal", week.SafetyFloorKcal))
	}

	week.BaseKcalTarget = int(math.Ceil(kcal))

	protein, fat, carbs, notes := e.macros(in.Profile, weightKg, kcal)
	week.Notes = append(week.Notes, notes...)

	if lowReadiness {
		// hold or slightly raise carbs on poor recovery, never cut them
		extra := carbs * e.cfg.LowReadinessCarbBoostPct / 100
		carbs += extra
		kcal += 4 * extra
		week.Notes = append(week.Notes, fmt.Sprintf("carbs raised %.0f%% for recovery, consider a light training day", e.cfg.LowReadinessCarbBoostPct))
	}

	week.KcalTarget = int(math.Ceil(kcal))
	week.ProteinTargetG = int(math.Round(protein))
	week.FatTargetG = int(math.Round(fat))
	week.CarbTargetG = int(math.Round(carbs))

	if len(in.Profile.HeavyTrainingDays) > 0 {
		extra := carbs * e.cfg.HeavyDayCarbBiasPct / 100
		week.HeavyDayCarbTargetG = int(math.Round(carbs + extra))
		week.HeavyDayKcalTarget = int(math.Ceil(kcal + 4*extra))
	}

	hydration := e.cfg.HydrationMlPerKg * weightKg
	if lowReadiness {
		hydration += e.cfg.LowReadinessExtraMl
	}
	week.HydrationMl = int(math.Round(hydration))

	cautions = append(cautions, e.healthCautions(in.Profile, &week)...)
	cautions = append(cautions, e.intakeCautions(in.Profile, weightKg, &week)...)
	for i, c := range cautions {
		if i == 0 {
			week.Caution = c
			continue
		}
		week.Caution += "; " + c
	}

	return week, nil
}

// macros splits kcal into grams. Protein scales with lean mass for BMI >= 30 and
// is capped by kidney or diabetes flags, fat has a per-kg minimum, carbs take
// the rest.
func (e *Engine) macros(p *athlete.Profile, weightKg, kcal float64) (protein, fat, carbs float64, notes []string) {
	basis := weightKg
	sized := *p
	sized.WeightKg = weightKg
	if sized.BMI() >= e.cfg.LeanMassBMI {
		basis = sized.LeanMassKg()
		notes = append(notes, fmt.Sprintf("protein sized on estimated lean mass %.1f kg", basis))
	}

	perKg := e.cfg.ProteinMinGPerKg
	switch p.NutritionGoal {
	case athlete.NutritionCut:
		perKg = e.cfg.ProteinMaxGPerKg
	case athlete.NutritionMaintain:
		perKg = (e.cfg.ProteinMinGPerKg + e.cfg.ProteinMaxGPerKg) / 2
	}
	perKg = pkg.Clamp(perKg, e.cfg.ProteinMinGPerKg, e.cfg.ProteinMaxGPerKg)

	if p.HasFlag(athlete.HealthKidney) {
		perKg = math.Min(perKg, e.cfg.KidneyProteinMaxGPerKg)
		notes = append(notes, fmt.Sprintf("protein capped at %.1f g/kg (kidney)", e.cfg.KidneyProteinMaxGPerKg))
	} else if p.HasFlag(athlete.HealthDiabetes) {
		perKg = math.Min(perKg, e.cfg.DiabetesProteinMaxGPerKg)
	}
	protein = perKg * basis

	fat = math.Max(e.cfg.FatMinGPerKg*weightKg, e.cfg.FatShareOfKcal*kcal/9)
	carbs = (kcal - 4*protein - 9*fat) / 4
	if carbs < 0 {
		// protein and the fat minimum alone exceed the target
		fat = math.Max(e.cfg.FatMinGPerKg*weightKg, (kcal-4*protein)/9)
		carbs = math.Max(0, (kcal-4*protein-9*fat)/4)
		notes = append(notes, "no room for carbs at this calorie target")
	}

	return protein, fat, carbs, notes
}

// proteinLimit is the highest sensible daily protein per kg of bodyweight.
func (e *Engine) proteinLimit(p *athlete.Profile) float64 {
	switch {
	case p.HasFlag(athlete.HealthKidney):
		return e.cfg.KidneyProteinMaxGPerKg
	case p.HasFlag(athlete.HealthDiabetes):
		return e.cfg.DiabetesProteinMaxGPerKg
	default:
		return e.cfg.Intake.MaxProteinGPerKg
	}
}

// intakeCautions checks the finished targets against absolute daily intake limits.
func (e *Engine) intakeCautions(p *athlete.Profile, weightKg float64, week *NutritionWeek) []string {
	if weightKg <= 0 || week.KcalTarget <= 0 {
		return nil
	}
	limits := e.cfg.Intake
	var cautions []string

	kcalPerKg := pkg.RoundTo(float64(week.KcalTarget)/weightKg, 1)
	switch {
	case kcalPerKg < limits.MinKcalPerKg:
		cautions = append(cautions, fmt.Sprintf("very low calorie target: %.1f kcal/kg (min %.0f)", kcalPerKg, limits.MinKcalPerKg))
	case kcalPerKg > limits.MaxKcalPerKg:
		cautions = append(cautions, fmt.Sprintf("very high calorie target: %.1f kcal/kg (max %.0f)", kcalPerKg, limits.MaxKcalPerKg))
	}

	proteinPerKg := pkg.RoundTo(float64(week.ProteinTargetG)/weightKg, 1)
	maxProtein := e.proteinLimit(p)
	switch {
	case proteinPerKg < limits.MinProteinGPerKg:
		cautions = append(cautions, fmt.Sprintf("low protein target: %.1f g/kg (min %.1f)", proteinPerKg, limits.MinProteinGPerKg))
	case proteinPerKg > maxProtein:
		cautions = append(cautions, fmt.Sprintf("high protein target: %.1f g/kg (max %.1f)", proteinPerKg, maxProtein))
	}

	fatShare := 9 * float64(week.FatTargetG) / float64(week.KcalTarget)
	if fatShare < limits.MinFatShareOfKcal {
		cautions = append(cautions, fmt.Sprintf("low fat target: %.0f%% of calories (min %.0f%%)", fatShare*100, limits.MinFatShareOfKcal*100))
	}

	return cautions
}

func (e *Engine) healthCautions(p *athlete.Profile, week *NutritionWeek) []string {
	var cautions []string
	if p.HasFlag(athlete.HealthKidney) {
		cautions = append(cautions, "kidney condition flagged, protein kept low, review targets with a clinician")
	}
	if p.HasFlag(athlete.HealthDiabetes) {
		cautions = append(cautions, "diabetes flagged, spread carbs across meals and monitor glucose")
	}
	if p.HasFlag(athlete.HealthHeart) {
		limit := e.cfg.HeartSodiumLimitMg
		week.SodiumLimitMg = &limit
		cautions = append(cautions, fmt.Sprintf("heart condition flagged, sodium limited to %d mg/day, review changes with a clinician", limit))
	}
	return cautions
}
