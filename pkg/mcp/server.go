package mcp

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Toolset selects which registration list a server exposes.
type Toolset string

const (
	// ToolsetFull exposes analyze, generate and normalize_quotes.
	ToolsetFull Toolset = "full"
	// ToolsetDiagram exposes analyze and generate only.
	ToolsetDiagram Toolset = "diagram"
)

// FlowsmithServerDeps holds the dependencies for creating a FlowsmithServer.
type FlowsmithServerDeps struct {
	Toolset Toolset
	Logger  *slog.Logger
}

// FlowsmithServer wraps an MCP server with flowsmith tool handlers.
type FlowsmithServer struct {
	toolset   Toolset
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewFlowsmithServer creates a FlowsmithServer with the configured
// toolset registered. An empty toolset defaults to ToolsetFull.
func NewFlowsmithServer(deps FlowsmithServerDeps) *FlowsmithServer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	toolset := deps.Toolset
	if toolset == "" {
		toolset = ToolsetFull
	}

	s := &FlowsmithServer{
		toolset: toolset,
		logger:  logger,
	}

	mcpSrv := server.NewMCPServer(
		"flowsmith",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions("Flowsmith turns natural-language process descriptions into Mermaid flowchart syntax. Use flowsmith.analyze to check whether a description has enough structure for a meaningful diagram, flowsmith.generate to compile it to Mermaid source, and flowsmith.normalize_quotes to strip embedded quote characters from text."),
	)

	mcpSrv.AddTools(s.tools()...)
	s.mcpServer = mcpSrv
	return s
}

// Serve starts the stdio transport and blocks until ctx is cancelled or stdin closes.
func (s *FlowsmithServer) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcpServer)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// ServeSSE starts the SSE transport on addr and blocks until ctx is
// cancelled, then shuts the HTTP server down gracefully.
func (s *FlowsmithServer) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sse := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	errCh := make(chan error, 1)
	go func() { errCh <- sse.Start(addr) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = sse.Shutdown(shutdownCtx)
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// MCPServer returns the underlying MCPServer for testing or custom transports.
func (s *FlowsmithServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// tools returns the explicit registration list for the configured
// toolset. Registration happens once, at construction, with no hidden
// process-global state.
func (s *FlowsmithServer) tools() []server.ServerTool {
	core := []server.ServerTool{
		{Tool: analyzeTool(), Handler: s.withRequestLog("flowsmith.analyze", s.handleAnalyze)},
		{Tool: generateTool(), Handler: s.withRequestLog("flowsmith.generate", s.handleGenerate)},
	}
	if s.toolset == ToolsetDiagram {
		return core
	}
	return append(core, server.ServerTool{
		Tool:    normalizeQuotesTool(),
		Handler: s.withRequestLog("flowsmith.normalize_quotes", s.handleNormalizeQuotes),
	})
}

// --- Tool definitions ---

func analyzeTool() mcp.Tool {
	return mcp.NewTool("flowsmith.analyze",
		mcp.WithDescription("Check whether a process description has enough structure (starting point, connections, decision points) to produce a meaningful flowchart"),
		mcp.WithString("description", mcp.Required(), mcp.Description("Natural-language description of the process")),
	)
}

func generateTool() mcp.Tool {
	return mcp.NewTool("flowsmith.generate",
		mcp.WithDescription("Convert a natural-language process description into Mermaid flowchart syntax"),
		mcp.WithString("description", mcp.Required(), mcp.Description("Natural-language description of the process, with steps separated by periods, commas or newlines")),
	)
}

func normalizeQuotesTool() mcp.Tool {
	return mcp.NewTool("flowsmith.normalize_quotes",
		mcp.WithDescription("Strip embedded quote characters from text and wrap it in a single pair of double quotes"),
		mcp.WithString("description", mcp.Required(), mcp.Description("Text to normalize")),
	)
}
