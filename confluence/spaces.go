package confluence

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	apierrors "github.com/readyjune/mcp-server-confluence/internal/errors"
)

// GetSpacePages lists pages belonging to a space.
func (c *Client) GetSpacePages(ctx context.Context, args GetSpacePagesArgs) (GetSpacePagesResult, error) {
	if err := ValidateSpaceKey(args.SpaceKey); err != nil {
		return GetSpacePagesResult{}, err
	}

	limit := normalizeLimit(args.Limit, DefaultLimit, MaxLimit)

	params := url.Values{}
	params.Set("spaceKey", args.SpaceKey)
	params.Set("type", "page")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("expand", "space,history.lastUpdated")

	var list contentList
	if err := c.get(ctx, "get_space_pages", "/rest/api/content", params, &list); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return GetSpacePagesResult{}, apierrors.NewSpaceNotFoundError(args.SpaceKey)
		}
		return GetSpacePagesResult{}, err
	}

	pages := make([]PageSummary, 0, len(list.Results))
	for _, p := range list.Results {
		pages = append(pages, c.pageSummary(p))
	}

	return GetSpacePagesResult{
		SpaceKey:  args.SpaceKey,
		Pages:     pages,
		TotalSize: listTotal(list),
	}, nil
}

// GetSpaces lists the spaces visible to the configured account.
func (c *Client) GetSpaces(ctx context.Context, args GetSpacesArgs) (GetSpacesResult, error) {
	limit := normalizeLimit(args.Limit, DefaultLimit, MaxLimit)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("expand", "description.plain,homepage")

	var list spaceList
	if err := c.get(ctx, "get_spaces", "/rest/api/space", params, &list); err != nil {
		return GetSpacesResult{}, err
	}

	spaces := make([]SpaceSummary, 0, len(list.Results))
	for _, sp := range list.Results {
		summary := SpaceSummary{
			Key:  sp.Key,
			Name: sp.Name,
			Type: sp.Type,
			URL:  c.webURL(sp.Links.WebUI),
		}
		if sp.Description != nil && sp.Description.Plain != nil {
			summary.Description = htmlToPlainText(sp.Description.Plain.Value)
		}
		if sp.Homepage != nil {
			summary.HomepageID = sp.Homepage.ID
		}
		spaces = append(spaces, summary)
	}

	return GetSpacesResult{
		Spaces:    spaces,
		TotalSize: list.Size,
	}, nil
}
