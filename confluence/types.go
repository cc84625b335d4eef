package confluence

// Constants for response limits
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ========== Get Page Types ==========

type GetPageArgs struct {
	PageID      string `json:"page_id,omitempty" jsonschema_description:"Confluence page ID. Either page_id or page_title together with space_key must be given"`
	PageTitle   string `json:"page_title,omitempty" jsonschema_description:"Page title, resolved within space_key when page_id is not given"`
	SpaceKey    string `json:"space_key,omitempty" jsonschema_description:"Space key, used together with page_title"`
	IncludeBody *bool  `json:"include_body,omitempty" jsonschema_description:"Include the page body converted to plain text (default true)"`
}

type GetPageResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	SpaceKey     string `json:"space_key,omitempty"`
	SpaceName    string `json:"space_name,omitempty"`
	Version      int    `json:"version"`
	URL          string `json:"url,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	LastEditor   string `json:"last_editor,omitempty"`
	Breadcrumb   string `json:"breadcrumb,omitempty"`
	Content      string `json:"content,omitempty"`
}

// ========== Search Types ==========

type SearchArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"CQL query string (e.g. 'space=DOCS and type=page and text ~ \"release\"')"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 50, max 500)"`
}

type SearchResult struct {
	Query     string        `json:"query"`
	Count     int           `json:"count"`
	TotalSize int           `json:"total_size"`
	Results   []PageSummary `json:"results"`
}

// PageSummary is the compact page representation shared by search and
// listing results.
type PageSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	SpaceKey     string `json:"space_key,omitempty"`
	SpaceName    string `json:"space_name,omitempty"`
	URL          string `json:"url,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// ========== Space Pages Types ==========

type GetSpacePagesArgs struct {
	SpaceKey string `json:"space_key" jsonschema:"required" jsonschema_description:"Space key to list pages from (e.g. 'DOCS')"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum pages to return (default 50, max 500)"`
}

type GetSpacePagesResult struct {
	SpaceKey  string        `json:"space_key"`
	Pages     []PageSummary `json:"pages"`
	TotalSize int           `json:"total_size"`
}

// ========== Page Children Types ==========

type GetPageChildrenArgs struct {
	PageID string `json:"page_id" jsonschema:"required" jsonschema_description:"Parent page ID"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum child pages to return (default 50, max 500)"`
}

type GetPageChildrenResult struct {
	ParentID  string        `json:"parent_id"`
	Children  []PageSummary `json:"children"`
	TotalSize int           `json:"total_size"`
}

// ========== Spaces Types ==========

type GetSpacesArgs struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"Maximum spaces to return (default 50, max 500)"`
}

type GetSpacesResult struct {
	Spaces    []SpaceSummary `json:"spaces"`
	TotalSize int            `json:"total_size"`
}

type SpaceSummary struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	HomepageID  string `json:"homepage_id,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ========== REST payload types (fields we read) ==========

type contentPayload struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Status    string           `json:"status"`
	Title     string           `json:"title"`
	Space     *spacePayload    `json:"space,omitempty"`
	Version   *versionPayload  `json:"version,omitempty"`
	Ancestors []contentPayload `json:"ancestors,omitempty"`
	Body      *bodyPayload     `json:"body,omitempty"`
	History   *historyPayload  `json:"history,omitempty"`
	Links     linksPayload     `json:"_links"`
}

type versionPayload struct {
	Number int         `json:"number"`
	When   string      `json:"when"`
	By     userPayload `json:"by"`
}

type userPayload struct {
	DisplayName string `json:"displayName"`
}

type bodyPayload struct {
	Storage *bodyValue `json:"storage,omitempty"`
}

type bodyValue struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

type historyPayload struct {
	LastUpdated *versionPayload `json:"lastUpdated,omitempty"`
}

type spacePayload struct {
	Key         string              `json:"key"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Description *descriptionPayload `json:"description,omitempty"`
	Homepage    *contentRef         `json:"homepage,omitempty"`
	Links       linksPayload        `json:"_links"`
}

type descriptionPayload struct {
	Plain *bodyValue `json:"plain,omitempty"`
}

type contentRef struct {
	ID string `json:"id"`
}

type linksPayload struct {
	WebUI string `json:"webui,omitempty"`
}

type contentList struct {
	Results   []contentPayload `json:"results"`
	Start     int              `json:"start"`
	Limit     int              `json:"limit"`
	Size      int              `json:"size"`
	TotalSize int              `json:"totalSize"`
}

type spaceList struct {
	Results []spacePayload `json:"results"`
	Size    int            `json:"size"`
}
