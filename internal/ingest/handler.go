package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ingest_test

type telemetryService interface {
	AddSet(ctx context.Context, set *WorkoutSet) (*AddSetResult, error)
	AddReading(ctx context.Context, rd *DailyReading) error
	AddWeight(ctx context.Context, w *WeightLog) error
	ListSets(ctx context.Context, userID string, from, to time.Time) ([]WorkoutSet, error)
}

type Handler struct {
	service telemetryService
}

func NewHandler(service telemetryService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userId}/sets", h.HandleAddSet).Methods("POST")
	r.HandleFunc("/users/{userId}/sets", h.HandleListSets).Methods("GET")
	r.HandleFunc("/users/{userId}/readings", h.HandleAddReading).Methods("POST")
	r.HandleFunc("/users/{userId}/weights", h.HandleAddWeight).Methods("POST")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("%s %s, unmarshal json: %s", r.Method, r.URL.Path, err)
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingest.addset")
	defer span.End()

	var set WorkoutSet
	if !decodeJSON(w, r, &set) {
		return
	}
	set.UserID = mux.Vars(r)["userId"]

	res, err := h.service.AddSet(ctx, &set)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSet),
			errors.Is(err, ErrSetInFuture):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrSetTooLate):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ErrDuplicateSet):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("add set for user %s: %s", set.UserID, err)
			http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleAddReading(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingest.addreading")
	defer span.End()

	var rd DailyReading
	if !decodeJSON(w, r, &rd) {
		return
	}
	rd.UserID = mux.Vars(r)["userId"]

	if err := h.service.AddReading(ctx, &rd); err != nil {
		if errors.Is(err, ErrInvalidReading) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add reading for user %s: %s", rd.UserID, err)
		http.Error(w, "error, failed to add reading", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte("added"), http.StatusCreated)
}

func (h *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingest.addweight")
	defer span.End()

	var wl WeightLog
	if !decodeJSON(w, r, &wl) {
		return
	}
	wl.UserID = mux.Vars(r)["userId"]

	if err := h.service.AddWeight(ctx, &wl); err != nil {
		if errors.Is(err, ErrInvalidWeight) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("add weight for user %s: %s", wl.UserID, err)
		http.Error(w, "error, failed to add weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte("added"), http.StatusCreated)
}

// HandleListSets lists sets in [from, to), both given as dates or RFC3339 times.
// Without parameters it returns the current week.
func (h *Handler) HandleListSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingest.listsets")
	defer span.End()

	userID := mux.Vars(r)["userId"]

	from := pkg.WeekStart(time.Now())
	to := from.AddDate(0, 0, 7)
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			http.Error(w, "invalid from", http.StatusBadRequest)
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			http.Error(w, "invalid to", http.StatusBadRequest)
			return
		}
		to = t
	}
	if !to.After(from) {
		http.Error(w, "to must be after from", http.StatusBadRequest)
		return
	}

	sets, err := h.service.ListSets(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list sets for user %s: %s", userID, err)
		http.Error(w, "error, failed to list sets", http.StatusInternalServerError)
		return
	}
	if sets == nil {
		sets = []WorkoutSet{}
	}

	pkg.WriteJSON(w, sets, http.StatusOK)
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
