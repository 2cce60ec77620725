package nutrition

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/adaptivecoach/internal/athlete"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionService interface {
	Bootstrap(ctx context.Context, userID string) (*TDEE, error)
	Get(ctx context.Context, userID string, weekStart time.Time) (*NutritionWeek, error)
}

type Handler struct {
	service nutritionService
}

func NewHandler(service nutritionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userId}/nutrition/tdee", h.HandleTDEE).Methods("GET")
	r.HandleFunc("/users/{userId}/nutrition/weeks/{weekStart}", h.HandleGetWeek).Methods("GET")
}

func (h *Handler) HandleTDEE(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.tdee")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	tdee, err := h.service.Bootstrap(ctx, userID)
	if err != nil {
		var invalid *athlete.InvalidAnthropometricsError
		switch {
		case errors.Is(err, athlete.ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		case errors.As(err, &invalid):
			http.Error(w, invalid.Error(), http.StatusUnprocessableEntity)
		default:
			log.Errorf("bootstrap tdee of %s: %s", userID, err)
			http.Error(w, "error, failed to compute tdee", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, tdee, http.StatusOK)
}

func (h *Handler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.week")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	weekStart, err := time.Parse(time.DateOnly, mux.Vars(r)["weekStart"])
	if err != nil {
		http.Error(w, "invalid week start, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	week, err := h.service.Get(ctx, userID, weekStart)
	if err != nil {
		if errors.Is(err, ErrWeekNotFound) {
			http.Error(w, "nutrition week not found", http.StatusNotFound)
			return
		}
		log.Errorf("get nutrition week %s/%s: %s", userID, weekStart.Format(time.DateOnly), err)
		http.Error(w, "error, failed to get nutrition week", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, week, http.StatusOK)
}
