// Package mcp implements the Model Context Protocol server for roster.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ajitpratap0/roster/internal/models"
	"github.com/ajitpratap0/roster/internal/store"
)

// Server wraps an MCPServer with the roster store.
type Server struct {
	mcp    *mcpserver.MCPServer
	st     store.Store
	logger *slog.Logger
}

// NewServer creates a new MCP server. If st is nil, tool calls return an
// error response instead of panicking.
func NewServer(st store.Store, version string, logger *slog.Logger) *Server {
	s := &Server{
		st:     st,
		logger: logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		"roster",
		version,
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildListTool(), s.handleList)
	mcpSrv.AddTool(buildFilterTool(), s.handleFilter)
	mcpSrv.AddTool(buildSortTool(), s.handleSort)
	mcpSrv.AddTool(buildGetTool(), s.handleGet)
	mcpSrv.AddTool(buildStatsTool(), s.handleStats)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// HandleList is the exported handler for the "list_persons" tool.
// It is exposed for direct testing without the mcp-go transport layer.
func (s *Server) HandleList(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleList(ctx, req)
}

// HandleFilter is the exported handler for the "filter_persons" tool.
func (s *Server) HandleFilter(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleFilter(ctx, req)
}

// HandleSort is the exported handler for the "sort_persons" tool.
func (s *Server) HandleSort(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleSort(ctx, req)
}

// HandleGet is the exported handler for the "get_person" tool.
func (s *Server) HandleGet(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleGet(ctx, req)
}

// HandleStats is the exported handler for the "stats" tool.
func (s *Server) HandleStats(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleStats(ctx, req)
}

// --- helpers ---

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

func personsResult(persons []models.Person) (*mcpgo.CallToolResult, error) {
	return toolResultJSON(map[string]any{
		"persons": persons,
		"count":   len(persons),
	})
}

// --- tool definitions ---

func buildListTool() mcpgo.Tool {
	return mcpgo.NewTool("list_persons",
		mcpgo.WithDescription("List every person in the roster in store order."),
	)
}

func buildFilterTool() mcpgo.Tool {
	return mcpgo.NewTool("filter_persons",
		mcpgo.WithDescription("List the persons whose status matches exactly (case-sensitive), in store order."),
		mcpgo.WithString("status",
			mcpgo.Required(),
			mcpgo.Description("Status to match, e.g. Active or Inactive"),
		),
	)
}

func buildSortTool() mcpgo.Tool {
	return mcpgo.NewTool("sort_persons",
		mcpgo.WithDescription("List all persons sorted ascending by one field. Equal values keep store order."),
		mcpgo.WithString("field",
			mcpgo.Required(),
			mcpgo.Description("Field to sort by: Name, Favorite Food, Favorite Movie, Date, or Status"),
		),
	)
}

func buildGetTool() mcpgo.Tool {
	return mcpgo.NewTool("get_person",
		mcpgo.WithDescription("Fetch a single person by ID."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The person ID"),
		),
	)
}

func buildStatsTool() mcpgo.Tool {
	return mcpgo.NewTool("stats",
		mcpgo.WithDescription("Return the roster size, counts by status, and whether run dates are set."),
	)
}

// --- handlers ---

func (s *Server) handleList(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}
	return personsResult(s.st.All())
}

func (s *Server) handleFilter(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	status := req.GetString("status", "")
	if strings.TrimSpace(status) == "" {
		return mcpgo.NewToolResultError("status is required and must not be empty"), nil
	}

	matched := s.st.FilterByStatus(models.Status(status))
	s.logger.Debug("mcp: filter_persons", "status", status, "count", len(matched))
	return personsResult(matched)
}

func (s *Server) handleSort(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	field := req.GetString("field", "")
	if strings.TrimSpace(field) == "" {
		return mcpgo.NewToolResultError("field is required and must not be empty"), nil
	}

	sorted, err := store.SortByFieldName(s.st, field)
	if err != nil {
		return mcpgo.NewToolResultErrorf("sort failed: %s", err.Error()), nil
	}
	s.logger.Debug("mcp: sort_persons", "field", field, "count", len(sorted))
	return personsResult(sorted)
}

func (s *Server) handleGet(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	id := req.GetString("id", "")
	if strings.TrimSpace(id) == "" {
		return mcpgo.NewToolResultError("id is required and must not be empty"), nil
	}

	p, err := s.st.Get(id)
	if err != nil {
		return mcpgo.NewToolResultErrorf("get failed: %s", err.Error()), nil
	}
	return toolResultJSON(p)
}

func (s *Server) handleStats(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}
	return toolResultJSON(s.st.Stats())
}
