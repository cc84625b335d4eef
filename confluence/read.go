package confluence

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apierrors "github.com/readyjune/mcp-server-confluence/internal/errors"
)

// GetPage retrieves a single page by ID, or by title within a space when no
// ID is given. Title resolution and the detail fetch are strictly sequential:
// the lookup must complete (and find a page) before the detail fetch begins.
func (c *Client) GetPage(ctx context.Context, args GetPageArgs) (GetPageResult, error) {
	pageID := args.PageID
	if pageID == "" {
		if args.PageTitle == "" || args.SpaceKey == "" {
			return GetPageResult{}, apierrors.NewValidationError("page_id", "",
				"either page_id or page_title together with space_key must be given")
		}
		resolved, err := c.resolvePageID(ctx, args.PageTitle, args.SpaceKey)
		if err != nil {
			return GetPageResult{}, err
		}
		pageID = resolved
	}
	if err := ValidatePageID(pageID); err != nil {
		return GetPageResult{}, err
	}

	includeBody := args.IncludeBody == nil || *args.IncludeBody

	expand := "space,version,ancestors,history.lastUpdated"
	if includeBody {
		expand += ",body.storage"
	}
	params := url.Values{}
	params.Set("expand", expand)

	var page contentPayload
	if err := c.get(ctx, "get_page", "/rest/api/content/"+pageID, params, &page); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return GetPageResult{}, apierrors.NewPageNotFoundError(pageID, "")
		}
		return GetPageResult{}, err
	}

	result := GetPageResult{
		ID:    page.ID,
		Title: page.Title,
		Type:  page.Type,
		URL:   c.webURL(page.Links.WebUI),
	}
	if page.Space != nil {
		result.SpaceKey = page.Space.Key
		result.SpaceName = page.Space.Name
	}
	if page.Version != nil {
		result.Version = page.Version.Number
	}
	if lu := lastUpdated(page); lu != nil {
		result.LastModified = lu.When
		result.LastEditor = lu.By.DisplayName
	}
	if len(page.Ancestors) > 0 {
		titles := make([]string, 0, len(page.Ancestors))
		for _, a := range page.Ancestors {
			titles = append(titles, a.Title)
		}
		result.Breadcrumb = strings.Join(titles, " > ")
	}
	if includeBody && page.Body != nil && page.Body.Storage != nil {
		result.Content = htmlToPlainText(page.Body.Storage.Value)
	}

	return result, nil
}

// resolvePageID looks up a page by title within a space, limited to one
// result. Zero results end the pipeline early with a not-found error.
func (c *Client) resolvePageID(ctx context.Context, title, spaceKey string) (string, error) {
	if err := ValidateSpaceKey(spaceKey); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("title", title)
	params.Set("spaceKey", spaceKey)
	params.Set("limit", "1")

	var list contentList
	if err := c.get(ctx, "resolve_title", "/rest/api/content", params, &list); err != nil {
		return "", err
	}
	if len(list.Results) == 0 {
		return "", apierrors.NewPageNotFoundError(title, spaceKey)
	}

	return list.Results[0].ID, nil
}

// GetPageChildren lists the direct child pages of a page.
func (c *Client) GetPageChildren(ctx context.Context, args GetPageChildrenArgs) (GetPageChildrenResult, error) {
	if err := ValidatePageID(args.PageID); err != nil {
		return GetPageChildrenResult{}, err
	}

	limit := normalizeLimit(args.Limit, DefaultLimit, MaxLimit)

	params := url.Values{}
	params.Set("expand", "space,history.lastUpdated")
	params.Set("limit", strconv.Itoa(limit))

	var list contentList
	err := c.get(ctx, "get_children", "/rest/api/content/"+args.PageID+"/child/page", params, &list)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return GetPageChildrenResult{}, apierrors.NewPageNotFoundError(args.PageID, "")
		}
		return GetPageChildrenResult{}, err
	}

	children := make([]PageSummary, 0, len(list.Results))
	for _, p := range list.Results {
		children = append(children, c.pageSummary(p))
	}

	return GetPageChildrenResult{
		ParentID:  args.PageID,
		Children:  children,
		TotalSize: listTotal(list),
	}, nil
}

// listTotal prefers the totalSize field (search responses) and falls back to
// size (listing responses).
func listTotal(list contentList) int {
	if list.TotalSize > 0 {
		return list.TotalSize
	}
	return list.Size
}
