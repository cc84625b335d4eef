package confluence

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds Confluence connection settings
type Config struct {
	// BaseURL is the Confluence site root (e.g., https://example.atlassian.net/wiki)
	BaseURL string

	// Email is the Atlassian account email used for basic auth
	Email string

	// APIToken is the Atlassian API token used for basic auth
	APIToken string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to Confluence
	UserAgent string
}

// LoadConfig loads configuration from environment variables.
// CONFLUENCE_URL, CONFLUENCE_EMAIL and CONFLUENCE_API_TOKEN are all required;
// the server must not start serving without them.
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("CONFLUENCE_URL")
	if baseURL == "" {
		return nil, errors.New("CONFLUENCE_URL environment variable is required")
	}

	email := os.Getenv("CONFLUENCE_EMAIL")
	if email == "" {
		return nil, errors.New("CONFLUENCE_EMAIL environment variable is required")
	}

	token := os.Getenv("CONFLUENCE_API_TOKEN")
	if token == "" {
		return nil, errors.New("CONFLUENCE_API_TOKEN environment variable is required")
	}

	timeout := 30 * time.Second
	if t := os.Getenv("CONFLUENCE_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	userAgent := os.Getenv("CONFLUENCE_USER_AGENT")
	if userAgent == "" {
		userAgent = "confluence-mcp-server/1.0 (https://github.com/readyjune/mcp-server-confluence)"
	}

	return &Config{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Email:     email,
		APIToken:  token,
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}
