package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/adaptivecoach/internal/aggregate"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=pipeline_test

type pipelineRunner interface {
	Run(ctx context.Context, closed aggregate.Window) (*RunSummary, error)
	RunUser(ctx context.Context, userID string, closed aggregate.Window) (*UserResult, error)
}

type Handler struct {
	runner pipelineRunner
	now    func() time.Time
}

func NewHandler(runner pipelineRunner) *Handler {
	return &Handler{
		runner: runner,
		now:    time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/pipeline/run", h.HandleRunAll).Methods("POST")
	r.HandleFunc("/users/{userId}/pipeline/run", h.HandleRunUser).Methods("POST")
}

// closedWeekParam reads the optional ?week=YYYY-MM-DD, any day of the closed week.
func (h *Handler) closedWeekParam(r *http.Request) (aggregate.Window, bool) {
	weekParam := r.URL.Query().Get("week")
	if weekParam == "" {
		return ClosedWeek(h.now()), true
	}
	day, err := time.Parse(time.DateOnly, weekParam)
	if err != nil {
		return aggregate.Window{}, false
	}
	return aggregate.WeekOf(day), true
}

func (h *Handler) HandleRunAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pipeline.runall")
	defer span.End()

	closed, ok := h.closedWeekParam(r)
	if !ok {
		http.Error(w, "invalid week, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	summary, err := h.runner.Run(ctx, closed)
	if err != nil {
		log.Errorf("run weekly pipeline: %s", err)
		http.Error(w, "error, failed to run weekly pipeline", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleRunUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.pipeline.runuser")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	closed, ok := h.closedWeekParam(r)
	if !ok {
		http.Error(w, "invalid week, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	res, err := h.runner.RunUser(ctx, userID, closed)
	if err != nil {
		log.Errorf("run weekly pipeline for %s: %s", userID, err)
		// the partial result tells which step failed
		pkg.WriteJSON(w, res, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}
