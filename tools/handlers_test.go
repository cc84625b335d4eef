package tools

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/readyjune/mcp-server-confluence/confluence"
)

func testClient(logger *slog.Logger) *confluence.Client {
	cfg := &confluence.Config{
		BaseURL:  "https://example.atlassian.net/wiki",
		Email:    "bot@example.com",
		APIToken: "token",
	}
	return confluence.NewClient(cfg, logger)
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := testClient(logger)

	registry := NewHandlerRegistry(client, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.client != client {
		t.Error("Registry should hold the client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	registry := NewHandlerRegistry(testClient(logger), logger)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "confluence_search",
				Title:       "Search Confluence",
				Description: "Search pages with CQL",
				Method:      "Search",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName:  "confluence_search",
			wantDesc:  "Search pages with CQL",
			wantRO:    true,
			wantIdem:  true,
			wantDestr: false,
			wantOpen:  false,
		},
		{
			name: "open world tool",
			spec: ToolSpec{
				Name:        "confluence_get_page",
				Title:       "Get Confluence Page",
				Description: "Get page content by ID",
				Method:      "GetPage",
				OpenWorld:   true,
			},
			wantName: "confluence_get_page",
			wantDesc: "Get page content by ID",
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	registry := NewHandlerRegistry(testClient(logger), logger)

	res := registry.recoverPanic("test_tool", "test panic")
	if res == nil {
		t.Fatal("recoverPanic should return an error envelope")
	}
	if !res.IsError {
		t.Error("envelope should be error-flagged")
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "Error: ") {
		t.Errorf("envelope text %q should start with Error: ", text)
	}
	if !strings.Contains(text, "test_tool") {
		t.Errorf("envelope text %q should name the tool", text)
	}
}

func TestErrorResult(t *testing.T) {
	res := errorResult(confluence.ValidateSpaceKey(""))
	if !res.IsError {
		t.Error("result should be error-flagged")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected a single content entry, got %d", len(res.Content))
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "Error: ") {
		t.Errorf("text %q should start with Error: ", text)
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

func TestLogExecution(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	registry := NewHandlerRegistry(testClient(logger), logger)
	spec := ToolSpec{Name: "test_tool"}

	registry.logExecution(spec,
		confluence.GetPageArgs{PageID: "123456"},
		confluence.GetPageResult{ID: "123456", Title: "Home", Version: 3})

	registry.logExecution(spec,
		confluence.GetPageArgs{PageTitle: "Home", SpaceKey: "ENG"},
		confluence.GetPageResult{ID: "123456", Title: "Home"})

	registry.logExecution(spec,
		confluence.SearchArgs{Query: "type=page"},
		confluence.SearchResult{Count: 1, TotalSize: 1})

	registry.logExecution(spec,
		confluence.GetSpacePagesArgs{SpaceKey: "ENG"},
		confluence.GetSpacePagesResult{Pages: []confluence.PageSummary{{Title: "Home"}}})

	registry.logExecution(spec,
		confluence.GetPageChildrenArgs{PageID: "123456"},
		confluence.GetPageChildrenResult{Children: []confluence.PageSummary{{Title: "Child"}}})

	registry.logExecution(spec,
		confluence.GetSpacesArgs{},
		confluence.GetSpacesResult{Spaces: []confluence.SpaceSummary{{Key: "ENG"}}})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"GetPage":         true,
		"GetPageChildren": true,
		"Search":          true,
		"GetSpacePages":   true,
		"GetSpaces":       true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolsByCategory(t *testing.T) {
	readTools := ToolsByCategory("read")
	if len(readTools) == 0 {
		t.Error("Expected read tools")
	}
	for _, tool := range readTools {
		if tool.Category != "read" {
			t.Errorf("Tool %s has category %s, expected read", tool.Name, tool.Category)
		}
	}

	listTools := ToolsByCategory("list")
	if len(listTools) == 0 {
		t.Error("Expected list tools")
	}

	// Non-existent category should return empty
	unknownTools := ToolsByCategory("unknown")
	if len(unknownTools) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknownTools))
	}
}

func TestDispatchOverSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [], "size": 0}`))
	}))
	defer upstream.Close()

	cfg := &confluence.Config{
		BaseURL:  upstream.URL,
		Email:    "bot@example.com",
		APIToken: "token",
	}
	registry := NewHandlerRegistry(confluence.NewClient(cfg, logger), logger)

	server := mcp.NewServer(&mcp.Implementation{Name: "test-server", Version: "0.0.1"}, nil)
	registry.RegisterAll(server)

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	defer serverSession.Close()

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	clientSession, err := mcpClient.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	defer clientSession.Close()

	// Unknown tool name is rejected with an error naming the tool
	_, err = clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "confluence_delete_page",
		Arguments: map[string]any{},
	})
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !strings.Contains(err.Error(), "confluence_delete_page") {
		t.Errorf("error %q should name the unknown tool", err.Error())
	}

	// A failing invocation comes back as an error envelope, not a crash
	res, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "confluence_get_page",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Fatal("invocation without identifiers should yield an error-flagged result")
	}
	text := resultText(t, res)
	if !strings.HasPrefix(text, "Error: ") {
		t.Errorf("envelope text %q should start with Error: ", text)
	}
	if !strings.Contains(text, "confluence_get_page failed") {
		t.Errorf("envelope text %q should name the failing tool", text)
	}

	// The server keeps serving after both failures
	res, err = clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "confluence_get_spaces",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CallTool after failures should succeed: %v", err)
	}
	if res.IsError {
		t.Errorf("expected success result, got error envelope: %v", resultText(t, res))
	}
}

func TestAllToolsReadOnly(t *testing.T) {
	for _, spec := range AllTools {
		if !spec.ReadOnly {
			t.Errorf("Tool %s should be read-only", spec.Name)
		}
		if spec.Destructive {
			t.Errorf("Tool %s should not be destructive", spec.Name)
		}
	}
}
