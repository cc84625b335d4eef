// Confluence MCP Server - A Model Context Protocol server for Confluence Cloud
// Provides read-only tools for retrieving, searching, and listing Confluence content
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/readyjune/mcp-server-confluence/confluence"
	"github.com/readyjune/mcp-server-confluence/tools"
	"github.com/readyjune/mcp-server-confluence/tracing"
)

const (
	ServerName    = "confluence-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Logging goes to stderr; stdout carries the MCP protocol frames
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	config, err := confluence.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	tracingConfig := tracing.DefaultConfig()
	tracingConfig.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, tracingConfig)
	if err != nil {
		logger.Warn("Tracing setup failed, continuing without tracing", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	client := confluence.NewClient(config, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Confluence MCP Server provides read-only tools for Confluence Cloud.

Available tools:
- confluence_get_page: Get page content and metadata by ID, or by title within a space
- confluence_search: Search content with a CQL query
- confluence_get_space_pages: List pages in a space
- confluence_get_page_children: List direct child pages of a page
- confluence_get_spaces: List spaces visible to the configured account

Configure via environment variables:
- CONFLUENCE_URL: Site root (e.g., https://example.atlassian.net/wiki)
- CONFLUENCE_EMAIL: Atlassian account email
- CONFLUENCE_API_TOKEN: Atlassian API token`,
	})

	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Optional diagnostics listener; the MCP transport stays on stdio
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	logger.Info("Starting Confluence MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// metricsRouter builds the diagnostics handler: Prometheus metrics and a
// health probe.
func metricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// serveMetrics exposes the diagnostics handler on addr.
func serveMetrics(addr string, logger *slog.Logger) {
	logger.Info("Metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, metricsRouter()); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}
