package calibration

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=calibration_test

type calibrationService interface {
	Readiness(ctx context.Context, userID string, day time.Time) ReadinessScore
	InvalidateReadiness(userID string, day time.Time)
	Profiles(ctx context.Context, userID string) ([]Profile, error)
}

type Handler struct {
	service calibrationService
	now     func() time.Time
}

func NewHandler(service calibrationService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userId}/readiness", h.HandleReadiness).Methods("GET")
	r.HandleFunc("/users/{userId}/calibration", h.HandleProfiles).Methods("GET")
}

// HandleReadiness scores ?day=YYYY-MM-DD, today by default. ?fresh=true skips the cache.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calibration.readiness")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	day := h.now().UTC()
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		parsed, err := time.Parse(time.DateOnly, dayParam)
		if err != nil {
			http.Error(w, "invalid day, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	if r.URL.Query().Get("fresh") == "true" {
		h.service.InvalidateReadiness(userID, day)
	}

	pkg.WriteJSON(w, h.service.Readiness(ctx, userID, day), http.StatusOK)
}

func (h *Handler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calibration.profiles")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	profiles, err := h.service.Profiles(ctx, userID)
	if err != nil {
		log.Errorf("list calibration profiles of %s: %s", userID, err)
		http.Error(w, "error, failed to list calibration profiles", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []Profile{}
	}

	pkg.WriteJSON(w, profiles, http.StatusOK)
}
