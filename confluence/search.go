package confluence

import (
	"context"
	"net/url"
	"strconv"
)

// Search runs a CQL query against the site and reshapes each hit into a
// compact summary.
func (c *Client) Search(ctx context.Context, args SearchArgs) (SearchResult, error) {
	if err := ValidateCQL(args.Query); err != nil {
		return SearchResult{}, err
	}

	limit := normalizeLimit(args.Limit, DefaultLimit, MaxLimit)

	params := url.Values{}
	params.Set("cql", args.Query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("expand", "space,history.lastUpdated")

	var list contentList
	if err := c.get(ctx, "search", "/rest/api/content/search", params, &list); err != nil {
		return SearchResult{}, err
	}

	results := make([]PageSummary, 0, len(list.Results))
	for _, p := range list.Results {
		results = append(results, c.pageSummary(p))
	}

	return SearchResult{
		Query:     args.Query,
		Count:     len(results),
		TotalSize: listTotal(list),
		Results:   results,
	}, nil
}
