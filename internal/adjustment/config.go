package adjustment

// Config holds the thresholds of the decision tables. Rates are percentages of
// the week's sets, deltas are percent changes.
type Config struct {
	MinSets int `toml:"min_sets"`

	LoadStepPct    float64 `toml:"load_step_pct"`
	MaxLoadStepPct float64 `toml:"max_load_step_pct"`

	TopOfRangeThresholdPct float64 `toml:"top_of_range_threshold_pct"`
	SorenessThresholdPct   float64 `toml:"soreness_threshold_pct"`
	PainThresholdPct       float64 `toml:"pain_threshold_pct"`

	// low strain: normalized HR spike below LowStrainSpike, or without heart
	// rate an average estimated RIR of at least LowStrainRIR
	LowStrainSpike float64 `toml:"low_strain_spike"`
	LowStrainRIR   float64 `toml:"low_strain_rir"`
	LowPump        float64 `toml:"low_pump"`

	HighStrainSpike        float64 `toml:"high_strain_spike"`
	HighStrainRIR          float64 `toml:"high_strain_rir"`
	StrengthTargetHitPct   float64 `toml:"strength_target_hit_pct"`
	WeightLossTargetHitPct float64 `toml:"weight_loss_target_hit_pct"`

	TaperIntensityDropPct float64 `toml:"taper_intensity_drop_pct"`
}

func DefaultConfig() Config {
	return Config{
		MinSets:                3,
		LoadStepPct:            2.5,
		MaxLoadStepPct:         5,
		TopOfRangeThresholdPct: 60,
		SorenessThresholdPct:   30,
		PainThresholdPct:       20,
		LowStrainSpike:         0.35,
		LowStrainRIR:           3,
		LowPump:                1,
		HighStrainSpike:        0.6,
		HighStrainRIR:          1,
		StrengthTargetHitPct:   60,
		WeightLossTargetHitPct: 70,
		TaperIntensityDropPct:  10,
	}
}
