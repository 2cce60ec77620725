package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/2beens/adaptivecoach/internal/adjustment"
	"github.com/2beens/adaptivecoach/internal/calibration"
	"github.com/2beens/adaptivecoach/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultHistoryLimit = 8
	maxHistoryLimit     = 52
)

type contextService interface {
	ActiveAthletes(ctx context.Context) ([]string, error)
	Readiness(ctx context.Context, userID string, day time.Time) calibration.ReadinessScore
	DirectiveHistory(ctx context.Context, userID string, limit int) ([]adjustment.WeeklyDirective, error)
	WeekSummary(ctx context.Context, userID string, weekStart time.Time) (string, error)
}

// Handler turns tool calls into context service calls and formats the results.
type Handler struct {
	service contextService
	now     func() time.Time
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) ListActiveAthletesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		ids, err := h.service.ActiveAthletes(ctx)
		if err != nil {
			return errorResult("Error listing athletes: " + err.Error()), nil, nil
		}
		if len(ids) == 0 {
			return textResult("No athletes with an active phase."), nil, nil
		}
		return textResult(strings.Join(ids, "\n")), nil, nil
	}
}

// WeekSummaryInput is the input for get_week_summary.
type WeekSummaryInput struct {
	UserID    string `json:"user_id" jsonschema:"Athlete id"`
	WeekStart string `json:"week_start,omitempty" jsonschema:"Any day of the week (YYYY-MM-DD), defaults to the current week"`
}

func (h *Handler) WeekSummaryTool() func(context.Context, *mcp.CallToolRequest, WeekSummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekSummaryInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		day, err := h.parseDay(in.WeekStart)
		if err != nil {
			return errorResult("Invalid week_start: use YYYY-MM-DD"), nil, nil
		}

		text, err := h.service.WeekSummary(ctx, in.UserID, pkg.WeekStart(day))
		if err != nil {
			return errorResult("Error building week summary: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// ReadinessInput is the input for get_readiness.
type ReadinessInput struct {
	UserID string `json:"user_id" jsonschema:"Athlete id"`
	Day    string `json:"day,omitempty" jsonschema:"Day (YYYY-MM-DD), defaults to today"`
}

func (h *Handler) ReadinessTool() func(context.Context, *mcp.CallToolRequest, ReadinessInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ReadinessInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		day, err := h.parseDay(in.Day)
		if err != nil {
			return errorResult("Invalid day: use YYYY-MM-DD"), nil, nil
		}

		score := h.service.Readiness(ctx, in.UserID, pkg.Midnight(day))
		return jsonResult(score), nil, nil
	}
}

// DirectiveHistoryInput is the input for get_directive_history.
type DirectiveHistoryInput struct {
	UserID string `json:"user_id" jsonschema:"Athlete id"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of most recent weeks, defaults to 8"`
}

func (h *Handler) DirectiveHistoryTool() func(context.Context, *mcp.CallToolRequest, DirectiveHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DirectiveHistoryInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		limit := in.Limit
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		limit = min(limit, maxHistoryLimit)

		directives, err := h.service.DirectiveHistory(ctx, in.UserID, limit)
		if err != nil {
			return errorResult("Error listing directives: " + err.Error()), nil, nil
		}
		if directives == nil {
			directives = []adjustment.WeeklyDirective{}
		}
		return jsonResult(directives), nil, nil
	}
}

func (h *Handler) parseDay(value string) (time.Time, error) {
	if value == "" {
		return h.now().UTC(), nil
	}
	return time.Parse(time.DateOnly, value)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
