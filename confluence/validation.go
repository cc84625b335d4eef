package confluence

import (
	"regexp"

	apierrors "github.com/readyjune/mcp-server-confluence/internal/errors"
)

// pageIDRegex matches Confluence content IDs (numeric)
var pageIDRegex = regexp.MustCompile(`^\d+$`)

// spaceKeyRegex matches Confluence space keys (alphanumeric, may include
// underscores in personal space keys prefixed with ~)
var spaceKeyRegex = regexp.MustCompile(`^~?[A-Za-z0-9_]+$`)

// MaxQueryLength is the maximum allowed CQL query length
const MaxQueryLength = 2000

// ValidatePageID validates a Confluence content ID.
func ValidatePageID(id string) error {
	if id == "" {
		return apierrors.NewValidationError("page_id", "", "page ID is required")
	}
	if !pageIDRegex.MatchString(id) {
		return apierrors.NewValidationError("page_id", id, "page ID must be numeric")
	}
	return nil
}

// ValidateSpaceKey validates a Confluence space key.
func ValidateSpaceKey(key string) error {
	if key == "" {
		return apierrors.NewValidationError("space_key", "", "space key is required")
	}
	if !spaceKeyRegex.MatchString(key) {
		return apierrors.NewValidationError("space_key", key, "space key must be alphanumeric")
	}
	return nil
}

// ValidateCQL validates a CQL query string.
func ValidateCQL(query string) error {
	if query == "" {
		return apierrors.NewValidationError("query", "", "CQL query is required")
	}
	if len(query) > MaxQueryLength {
		return apierrors.NewValidationError("query", "", "CQL query exceeds maximum length")
	}
	return nil
}
