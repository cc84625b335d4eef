package tools

// AllTools contains all tool specifications for the Confluence MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "confluence_get_page",
		Method:   "GetPage",
		Title:    "Get Page",
		Category: "read",
		Description: `Retrieve a single Confluence page with its metadata and plain-text content.

USE WHEN: User says "show me the X page", "read the release notes page", or provides a page ID or an exact title plus space key.

NOT FOR: Finding pages about a topic (use confluence_search instead). Not for listing what exists in a space (use confluence_get_space_pages).

PARAMETERS:
- page_id: Page ID (preferred when known)
- page_title + space_key: Exact title lookup when no ID is known
- include_body: Include plain-text content (default true)

RETURNS: Page ID, title, space, version, browse URL, last editor and timestamp, ancestor breadcrumb, and the body converted to plain text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "confluence_get_page_children",
		Method:   "GetPageChildren",
		Title:    "Get Page Children",
		Category: "read",
		Description: `List the direct child pages nested under a page.

USE WHEN: User asks "what's under page X", "show subpages of the architecture page", or wants to navigate a page tree downward.

NOT FOR: Listing all pages in a space regardless of nesting (use confluence_get_space_pages).

PARAMETERS:
- page_id: Parent page ID (required)
- limit: Max children (default 50, max 500)

RETURNS: Child page summaries (ID, title, space, URL, last modified) and the total count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "confluence_search",
		Method:   "Search",
		Title:    "Search Content",
		Category: "search",
		Description: `Search Confluence using CQL (Confluence Query Language).

USE WHEN: User asks "find pages about X", "search for X", or doesn't know which page holds the information. Accepts full CQL, e.g. 'space=DOCS and text ~ "deploy"'.

NOT FOR: Retrieving a page whose ID or exact title is already known (use confluence_get_page).

PARAMETERS:
- query: CQL query string (required)
- limit: Max results (default 50, max 500)

RETURNS: Compact hit summaries (ID, title, type, space, URL, last modified) and the total hit count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LIST TOOLS
	// ==========================================================================
	{
		Name:     "confluence_get_space_pages",
		Method:   "GetSpacePages",
		Title:    "Get Space Pages",
		Category: "list",
		Description: `List the pages belonging to a space.

USE WHEN: User asks "what pages are in the DOCS space", "list everything in space X".

NOT FOR: Listing children of one page (use confluence_get_page_children). Not for discovering which spaces exist (use confluence_get_spaces).

PARAMETERS:
- space_key: Space key (required)
- limit: Max pages (default 50, max 500)

RETURNS: Page summaries for the space and the reported total count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "confluence_get_spaces",
		Method:   "GetSpaces",
		Title:    "Get Spaces",
		Category: "list",
		Description: `List the Confluence spaces visible to the configured account.

USE WHEN: User asks "what spaces exist", "which spaces can you see", or a space key is needed before other calls.

NOT FOR: Listing pages (use confluence_get_space_pages).

PARAMETERS:
- limit: Max spaces (default 50, max 500)

RETURNS: Space summaries (key, name, type, plain-text description, homepage ID, URL).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
