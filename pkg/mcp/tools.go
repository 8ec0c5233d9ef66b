package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rendis/flowsmith/internal/diagram"
	"github.com/rendis/flowsmith/internal/flow"
	"github.com/rendis/flowsmith/internal/logging"
	"github.com/rendis/flowsmith/pkg/schema"
)

// withRequestLog wraps a tool handler with request correlation and
// start/completion logging. It also converts an escaped panic into a
// textual tool error, since MCP callers expect a response rather than
// a transport-level fault.
func (s *FlowsmithServer) withRequestLog(toolName string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		ctx = logging.WithIDs(ctx, uuid.New().String(), toolName)
		log := logging.LogWith(ctx, s.logger)

		start := time.Now()
		log.Debug("tool call started")

		defer func() {
			if r := recover(); r != nil {
				ferr := schema.NewErrorf(schema.ErrCodeInternal, "unexpected failure: %v", r)
				log.Error("tool call panicked", slog.String("error", ferr.Error()))
				result = mcp.NewToolResultError(ferr.Error())
				err = nil
			}
		}()

		result, err = next(ctx, req)
		if err != nil {
			log.Error("tool call failed",
				slog.String("error", err.Error()),
				slog.Duration("duration", time.Since(start)))
			return result, err
		}

		log.Info("tool call completed",
			slog.Duration("duration", time.Since(start)),
			slog.Bool("is_error", result != nil && result.IsError))
		return result, nil
	}
}

// handleAnalyze reports missing structural elements and a numbered step
// preview for a description.
func (s *FlowsmithServer) handleAnalyze(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description is required"), nil
	}

	return marshalResult(flow.Analyze(description))
}

// handleGenerate compiles a description into Mermaid flowchart source.
// Generation never fails for a string input; an empty description
// yields the header line only.
func (s *FlowsmithServer) handleGenerate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description is required"), nil
	}

	return mcp.NewToolResultText(diagram.Generate(description)), nil
}

// handleNormalizeQuotes strips embedded quote characters from text.
func (s *FlowsmithServer) handleNormalizeQuotes(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description is required"), nil
	}

	return marshalResult(flow.NormalizeQuotes(description))
}

// marshalResult converts a value to a JSON text tool result.
func marshalResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultJSON(json.RawMessage(data))
}
