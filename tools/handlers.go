package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/readyjune/mcp-server-confluence/confluence"
	"github.com/readyjune/mcp-server-confluence/metrics"
	"github.com/readyjune/mcp-server-confluence/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *confluence.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *confluence.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetPage":
		register(h, server, tool, spec, h.client.GetPage)
	case "Search":
		register(h, server, tool, spec, h.client.Search)
	case "GetSpacePages":
		register(h, server, tool, spec, h.client.GetSpacePages)
	case "GetPageChildren":
		register(h, server, tool, spec, h.client.GetPageChildren)
	case "GetSpaces":
		register(h, server, tool, spec, h.client.GetSpaces)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// errorResult builds the uniform error envelope for a failed invocation: an
// error-flagged result whose single text entry is "Error: " plus the message.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging. Every failure is returned as an error envelope rather than a
// handler error, so a failing invocation never ends the process.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (res *mcp.CallToolResult, out Result, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				res = h.recoverPanic(spec.Name, rec)
				var zero Result
				out, err = zero, nil
			}
		}()

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return errorResult(fmt.Errorf("%s failed: %w", spec.Name, err)), zero, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic records a recovered panic and returns the error envelope the
// invocation reports instead of crashing.
func (h *HandlerRegistry) recoverPanic(toolName string, rec any) *mcp.CallToolResult {
	metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
	h.logger.Error("Panic recovered",
		"tool", toolName,
		"panic", rec,
		"stack", string(debug.Stack()))
	return errorResult(fmt.Errorf("%s failed: internal error", toolName))
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	switch a := args.(type) {
	case confluence.GetPageArgs:
		if a.PageID != "" {
			attrs = append(attrs, "page_id", a.PageID)
		} else {
			attrs = append(attrs, "page_title", a.PageTitle, "space_key", a.SpaceKey)
		}
	case confluence.SearchArgs:
		attrs = append(attrs, "query", a.Query)
	case confluence.GetSpacePagesArgs:
		attrs = append(attrs, "space_key", a.SpaceKey)
	case confluence.GetPageChildrenArgs:
		attrs = append(attrs, "page_id", a.PageID)
	}

	switch r := result.(type) {
	case confluence.GetPageResult:
		attrs = append(attrs, "resolved_id", r.ID, "version", r.Version, "content_chars", len(r.Content))
	case confluence.SearchResult:
		attrs = append(attrs, "results_count", r.Count, "total_size", r.TotalSize)
	case confluence.GetSpacePagesResult:
		attrs = append(attrs, "pages_count", len(r.Pages), "total_size", r.TotalSize)
	case confluence.GetPageChildrenResult:
		attrs = append(attrs, "children_count", len(r.Children), "total_size", r.TotalSize)
	case confluence.GetSpacesResult:
		attrs = append(attrs, "spaces_count", len(r.Spaces))
	}

	h.logger.Info("Tool executed", attrs...)
}
