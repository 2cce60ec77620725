package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing read-only coaching tools.
// cmd/coachctl serves it over stdio and the main service mounts it at /mcp.
func NewServer(svc *ContextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "adaptivecoach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_active_athletes",
		Description: "Returns the ids of athletes that currently have an active plan phase, one per line.",
	}, h.ListActiveAthletesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_summary",
		Description: "Returns a markdown summary of one training week for an athlete: active phase, readiness, the weekly load/volume directive and nutrition targets. Args: user_id; optional week_start (YYYY-MM-DD, any day of the week).",
	}, h.WeekSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_readiness",
		Description: "Returns the 0-100 readiness score of an athlete for a day with its source and per-signal components. Args: user_id; optional day (YYYY-MM-DD).",
	}, h.ReadinessTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_directive_history",
		Description: "Returns the most recent weekly directives of an athlete, newest first. Args: user_id; optional limit (max 52).",
	}, h.DirectiveHistoryTool())

	return s
}

// NewHTTPHandler serves the given MCP server over streamable HTTP.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
