//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/ingest"
	"github.com/2beens/adaptivecoach/internal/nutrition"
	"github.com/2beens/adaptivecoach/internal/periodization"
	"github.com/2beens/adaptivecoach/internal/pipeline"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserID() string {
	return "it-" + gofakeit.LetterN(12)
}

func (s *IntegrationTestSuite) putProfile(ctx context.Context, userID string) athlete.Profile {
	profile := athlete.Profile{
		Age:               gofakeit.Number(20, 45),
		Sex:               athlete.SexMale,
		HeightCm:          float64(gofakeit.Number(170, 190)),
		WeightKg:          84,
		Activity:          athlete.ActivityModerate,
		NutritionGoal:     athlete.NutritionCut,
		HeavyTrainingDays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
	}

	var stored athlete.Profile
	s.mustDo(ctx, http.MethodPut, "/users/"+userID+"/profile", profile, http.StatusOK, &stored)
	return stored
}

// logWeek stores sets, readings and weights for the current week, all in the past.
func (s *IntegrationTestSuite) logWeek(ctx context.Context, userID string, now time.Time) {
	weekStart := pkg.WeekStart(now)

	for i := range 6 {
		ts := now.Add(-time.Duration(i+1) * time.Minute)
		if ts.Before(weekStart) {
			ts = weekStart
		}
		set := ingest.WorkoutSet{
			ExerciseID:        "bench_press",
			SetIndex:          i,
			Reps:              12,
			Load:              80,
			LoadUnit:          ingest.LoadUnitKg,
			TargetRepMin:      8,
			TargetRepMax:      12,
			RestBeforeSeconds: 120,
			PerceivedEffort:   ingest.EffortModerate,
			Pump:              2,
			Soreness:          1,
			Timestamp:         ts,
		}
		var res ingest.AddSetResult
		s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/sets", set, http.StatusCreated, &res)
		assert.Equal(s.T(), weekStart, res.WeekStart.UTC())
	}

	for day := weekStart; !day.After(now); day = day.AddDate(0, 0, 1) {
		restingHR := gofakeit.Number(52, 58)
		hrv := gofakeit.Float64Range(55, 70)
		sleep := gofakeit.Float64Range(7, 8.5)
		quality := gofakeit.Number(6, 9)
		reading := ingest.DailyReading{
			Day:          day,
			RestingHR:    &restingHR,
			HRVms:        &hrv,
			SleepHours:   &sleep,
			SleepQuality: &quality,
		}
		s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/readings", reading, http.StatusCreated, nil)

		weight := ingest.WeightLog{Day: day, WeightKg: 84 - 0.05*float64(day.Sub(weekStart).Hours()/24)}
		s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/weights", weight, http.StatusCreated, nil)
	}
}

func (s *IntegrationTestSuite) TestWeeklyPipeline_FullFlow() {
	t := s.T()
	ctx := context.Background()
	now := time.Now().UTC()
	weekStart := pkg.WeekStart(now)
	nextWeek := weekStart.AddDate(0, 0, 7)
	userID := newUserID()

	profile := s.putProfile(ctx, userID)
	assert.Equal(t, userID, profile.UserID)

	var phase periodization.Phase
	s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/phases", periodization.CreatePhaseParams{
		Goal:      periodization.GoalHypertrophy,
		StartDate: weekStart.AddDate(0, 0, -14),
		EndDate:   weekStart.AddDate(0, 0, 8*7),
	}, http.StatusCreated, &phase)
	assert.Equal(t, periodization.StatusActive, phase.Status)

	// a second phase while one is running is a conflict
	s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/phases", periodization.CreatePhaseParams{
		Goal:      periodization.GoalStrength,
		StartDate: weekStart,
		EndDate:   weekStart.AddDate(0, 0, 6*7),
	}, http.StatusConflict, nil)

	s.logWeek(ctx, userID, now)

	runPath := fmt.Sprintf("/users/%s/pipeline/run?week=%s", userID, weekStart.Format(time.DateOnly))
	var res pipeline.UserResult
	s.mustDo(ctx, http.MethodPost, runPath, nil, http.StatusOK, &res)
	assert.Empty(t, res.Error)
	assert.False(t, res.DuplicateDirective)
	require.NotNil(t, res.Aggregate)
	require.NotNil(t, res.Directive)
	require.NotNil(t, res.Nutrition)
	assert.Equal(t, nextWeek, res.Directive.WeekStart.UTC())
	assert.GreaterOrEqual(t, res.Nutrition.KcalTarget, res.Nutrition.SafetyFloorKcal)

	var stored adjustment.WeeklyDirective
	s.mustDo(ctx, http.MethodGet,
		fmt.Sprintf("/users/%s/directives/%s", userID, nextWeek.Format(time.DateOnly)),
		nil, http.StatusOK, &stored,
	)
	assert.Equal(t, res.Directive.ID, stored.ID)
	assert.Equal(t, res.Directive.LoadDeltaPct, stored.LoadDeltaPct)
	assert.Equal(t, res.Directive.SetDelta, stored.SetDelta)

	var week nutrition.NutritionWeek
	s.mustDo(ctx, http.MethodGet,
		fmt.Sprintf("/users/%s/nutrition/weeks/%s", userID, nextWeek.Format(time.DateOnly)),
		nil, http.StatusOK, &week,
	)
	assert.Equal(t, res.Nutrition.KcalTarget, week.KcalTarget)

	// running the same week again never issues a second directive
	var rerun pipeline.UserResult
	s.mustDo(ctx, http.MethodPost, runPath, nil, http.StatusOK, &rerun)
	assert.True(t, rerun.DuplicateDirective)

	var directiveRows int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM weekly_directive WHERE user_id = $1", userID,
	).Scan(&directiveRows))
	assert.Equal(t, 1, directiveRows)

	var setRows int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM workout_set WHERE user_id = $1", userID,
	).Scan(&setRows))
	assert.Equal(t, 6, setRows)
}

func (s *IntegrationTestSuite) TestWeeklyPipeline_NoPhaseStillGetsNutrition() {
	t := s.T()
	ctx := context.Background()
	now := time.Now().UTC()
	weekStart := pkg.WeekStart(now)
	userID := newUserID()

	s.putProfile(ctx, userID)

	var res pipeline.UserResult
	s.mustDo(ctx, http.MethodPost,
		fmt.Sprintf("/users/%s/pipeline/run?week=%s", userID, weekStart.Format(time.DateOnly)),
		nil, http.StatusOK, &res,
	)
	assert.Empty(t, res.Error)
	assert.Nil(t, res.Directive)
	assert.Contains(t, res.Skipped, "directive: no active phase")
	require.NotNil(t, res.Nutrition)

	s.mustDo(ctx, http.MethodGet, "/users/"+userID+"/phases/active", nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestIngest_Rejections() {
	ctx := context.Background()
	userID := newUserID()

	future := ingest.WorkoutSet{
		ExerciseID:   "squat",
		Reps:         5,
		Load:         120,
		TargetRepMin: 3,
		TargetRepMax: 5,
		Timestamp:    time.Now().Add(48 * time.Hour),
	}
	s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/sets", future, http.StatusBadRequest, nil)

	tooLate := future
	tooLate.Timestamp = time.Now().AddDate(0, 0, -30)
	s.mustDo(ctx, http.MethodPost, "/users/"+userID+"/sets", tooLate, http.StatusUnprocessableEntity, nil)

	s.mustDo(ctx, http.MethodGet, "/users/"+userID+"/profile", nil, http.StatusNotFound, nil)
}
