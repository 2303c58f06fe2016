// Package mcp exposes the planner as an MCP server so agent tooling can
// inspect a timeline project, round-trip share strings, and render the
// action graph.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/domain"
)

// Planner is the surface this adapter needs from the core.
type Planner interface {
	TrackViews() []domain.TrackView
	Connections() []domain.Connection
	LinkSession() domain.LinkSession
	ExportShare() (string, error)
	ImportShare(shareStr string) error
}

// BoardSummary aligns with the HTTP adapter's board projection so both
// adapters present the same shape.
type BoardSummary struct {
	Tracks      []domain.TrackView  `json:"tracks"`
	Connections []domain.Connection `json:"connections"`
	LinkSession domain.LinkSession  `json:"linkSession"`
}

// Server wraps the planner and exposes it as an MCP Server.
type Server struct {
	planner   Planner
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(planner Planner) *Server {
	s := &Server{
		planner:   planner,
		mcpServer: server.NewMCPServer("lattice-mcp", strings.TrimSpace(lattice.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: inspect_board
	inspectTool := mcp.NewTool("inspect_board",
		mcp.WithDescription("Inspect the current timeline: tracks, placed actions, and connections."),
		mcp.WithOutputSchema[BoardSummary](),
	)
	s.mcpServer.AddTool(inspectTool, mcp.NewStructuredToolHandler(s.handleInspect))

	// TOOL: export_share
	s.mcpServer.AddTool(mcp.NewTool("export_share",
		mcp.WithDescription("Export the current timeline as a compact share string."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shareStr, err := s.planner.ExportShare()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
		}
		return mcp.NewToolResultText(shareStr), nil
	})

	// TOOL: import_share
	importTool := mcp.NewTool("import_share",
		mcp.WithDescription("Replace the current timeline from a share string. Malformed input changes nothing."),
		mcp.WithString("share", mcp.Required(), mcp.Description("The share string to import")),
	)
	s.mcpServer.AddTool(importTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shareStr := request.GetString("share", "")
		if err := s.planner.ImportShare(shareStr); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("import rejected: %v", err)), nil
		}
		summary, _ := json.Marshal(s.summary())
		return mcp.NewToolResultText(string(summary)), nil
	})

	// TOOL: render_graph
	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render the action graph as Mermaid flowchart syntax."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(graph.GenerateMermaid(s.planner.TrackViews(), s.planner.Connections())), nil
	})
}

func (s *Server) handleInspect(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (BoardSummary, error) {
	return s.summary(), nil
}

func (s *Server) summary() BoardSummary {
	return BoardSummary{
		Tracks:      s.planner.TrackViews(),
		Connections: s.planner.Connections(),
		LinkSession: s.planner.LinkSession(),
	}
}
