package directive

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/telemetry/tracing"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=directive_test

const (
	defaultListLimit = 12
	maxListLimit     = 104
)

type directiveReader interface {
	Get(ctx context.Context, userID string, weekStart time.Time) (*adjustment.WeeklyDirective, error)
	ListForUser(ctx context.Context, userID string, limit int) ([]adjustment.WeeklyDirective, error)
}

type Handler struct {
	reader directiveReader
}

func NewHandler(reader directiveReader) *Handler {
	return &Handler{
		reader: reader,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/{userId}/directives", h.HandleList).Methods("GET")
	r.HandleFunc("/users/{userId}/directives/{weekStart}", h.HandleGet).Methods("GET")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.directive.list")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	limit := defaultListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxListLimit)
	}

	directives, err := h.reader.ListForUser(ctx, userID, limit)
	if err != nil {
		log.Errorf("list directives of %s: %s", userID, err)
		http.Error(w, "error, failed to list directives", http.StatusInternalServerError)
		return
	}
	if directives == nil {
		directives = []adjustment.WeeklyDirective{}
	}

	pkg.WriteJSON(w, directives, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.directive.get")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	weekStart, err := time.Parse(time.DateOnly, mux.Vars(r)["weekStart"])
	if err != nil {
		http.Error(w, "invalid week start, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	d, err := h.reader.Get(ctx, userID, pkg.WeekStart(weekStart))
	if err != nil {
		if errors.Is(err, ErrDirectiveNotFound) {
			http.Error(w, "directive not found", http.StatusNotFound)
			return
		}
		log.Errorf("get directive %s/%s: %s", userID, weekStart.Format(time.DateOnly), err)
		http.Error(w, "error, failed to get directive", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, d, http.StatusOK)
}
