package periodization

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=periodization_test

type phaseService interface {
	CreatePhase(ctx context.Context, userID string, params CreatePhaseParams) (*Phase, error)
	Active(ctx context.Context, userID string) (*Phase, error)
	TerminatePhase(ctx context.Context, userID string) (int, error)
}

type TerminatePhaseResponse struct {
	TerminatedID int `json:"terminatedId"`
}

type ActivePhaseResponse struct {
	*Phase
	State            State `json:"state"`
	TotalWeeks       int   `json:"totalWeeks"`
	RemainingDeloads []int `json:"remainingDeloads"`
}

type Handler struct {
	service phaseService
}

func NewHandler(service phaseService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userId}/phases", h.HandleCreate).Methods("POST")
	r.HandleFunc("/users/{userId}/phases/active", h.HandleGetActive).Methods("GET")
	r.HandleFunc("/users/{userId}/phases/active", h.HandleTerminate).Methods("DELETE")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.periodization.create")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var params CreatePhaseParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create phase, unmarshal json params: %s", err)
		http.Error(w, "create phase failed", http.StatusBadRequest)
		return
	}

	phase, err := h.service.CreatePhase(ctx, userID, params)
	if err != nil {
		var conflictErr *PhaseStateConflictError
		switch {
		case errors.As(err, &conflictErr):
			http.Error(w, conflictErr.Error(), http.StatusConflict)
		case errors.Is(err, ErrInvalidGoal),
			errors.Is(err, ErrInvalidPhaseDates),
			errors.Is(err, ErrPhaseTooShort),
			errors.Is(err, ErrCadenceOutOfRange),
			errors.Is(err, ErrUnknownRuleset):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("create phase for user %s: %s", userID, err)
			http.Error(w, "error, failed to create phase", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, phase, http.StatusCreated)
}

func (h *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.periodization.active")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	phase, err := h.service.Active(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrPhaseNotFound) {
			http.Error(w, "no active phase", http.StatusNotFound)
			return
		}
		log.Errorf("get active phase for user %s: %s", userID, err)
		http.Error(w, "error, failed to get active phase", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ActivePhaseResponse{
		Phase:            phase,
		State:            phase.StateAt(phase.CurrentWeekIndex),
		TotalWeeks:       phase.TotalWeeks(),
		RemainingDeloads: phase.RemainingDeloads(),
	}, http.StatusOK)
}

func (h *Handler) HandleTerminate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.periodization.terminate")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	id, err := h.service.TerminatePhase(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrPhaseNotFound) {
			http.Error(w, "no active phase", http.StatusNotFound)
			return
		}
		log.Errorf("terminate phase for user %s: %s", userID, err)
		http.Error(w, "error, failed to terminate phase", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, TerminatePhaseResponse{TerminatedID: id}, http.StatusOK)
}
