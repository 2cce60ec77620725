package aggregate

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=aggregate_test

type aggregateReader interface {
	Get(ctx context.Context, userID string, weekStart time.Time) (*WeeklyAggregate, error)
}

type weekAggregator interface {
	Aggregate(ctx context.Context, userID string, w Window) (*WeeklyAggregate, error)
}

type Handler struct {
	reader     aggregateReader
	aggregator weekAggregator
}

func NewHandler(reader aggregateReader, aggregator weekAggregator) *Handler {
	return &Handler{
		reader:     reader,
		aggregator: aggregator,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userId}/aggregates/{weekStart}", h.HandleGet).Methods("GET")
	r.HandleFunc("/users/{userId}/aggregates/{weekStart}", h.HandleRecompute).Methods("POST")
}

func weekFromPath(r *http.Request) (Window, bool) {
	t, err := time.Parse(time.DateOnly, mux.Vars(r)["weekStart"])
	if err != nil {
		return Window{}, false
	}
	return WeekOf(t), true
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aggregate.get")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	week, ok := weekFromPath(r)
	if !ok {
		http.Error(w, "invalid week start, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	agg, err := h.reader.Get(ctx, userID, week.Start)
	if err != nil {
		if errors.Is(err, ErrAggregateNotFound) {
			http.Error(w, "aggregate not found", http.StatusNotFound)
			return
		}
		log.Errorf("get aggregate %s/%s: %s", userID, week.Start.Format(time.DateOnly), err)
		http.Error(w, "error, failed to get aggregate", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, agg, http.StatusOK)
}

// HandleRecompute rebuilds the aggregate of the week containing the given day.
func (h *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aggregate.recompute")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	week, ok := weekFromPath(r)
	if !ok {
		http.Error(w, "invalid week start, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	agg, err := h.aggregator.Aggregate(ctx, userID, week)
	if err != nil {
		log.Errorf("recompute aggregate %s/%s: %s", userID, week.Start.Format(time.DateOnly), err)
		http.Error(w, "error, failed to recompute aggregate", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, agg, http.StatusOK)
}
