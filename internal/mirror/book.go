// SYNCED FROM BENDV3 - DO NOT EDIT
//
// Source: ../bendv3/src/api-v3/schemas/book.ts
// Synced: 2026-01-05T17:45:05Z

package mirror

import (
	"slices"

	"github.com/invopop/jsonschema"
)

// BookProvider is the data source of a v3 book payload. Note the spelling
// differs from DataProvider.
type BookProvider string

const (
	BookProviderAlexandria  BookProvider = "alexandria"
	BookProviderGoogleBooks BookProvider = "google_books"
	BookProviderOpenLibrary BookProvider = "open_library"
	BookProviderISBNdb      BookProvider = "isbndb"
)

var BookProviders = []BookProvider{
	BookProviderAlexandria,
	BookProviderGoogleBooks,
	BookProviderOpenLibrary,
	BookProviderISBNdb,
}

func (v BookProvider) Valid() bool                  { return slices.Contains(BookProviders, v) }
func (BookProvider) Values() []BookProvider         { return slices.Clone(BookProviders) }
func (BookProvider) JSONSchema() *jsonschema.Schema { return enumSchema(BookProviders) }

// Book is the core v3 book metadata, matching the canonical book object
// from Alexandria/Google Books.
type Book struct {
	ISBN          string       `json:"isbn" jsonschema:"minLength=13,maxLength=13" jsonschema_description:"13-digit ISBN (example: 9780439708180)"`
	ISBN10        string       `json:"isbn10,omitempty" jsonschema:"minLength=10,maxLength=10" jsonschema_description:"10-digit ISBN if available (example: 0439708184)"`
	Title         string       `json:"title" jsonschema:"minLength=1" jsonschema_description:"Book title (example: Harry Potter and the Sorcerers Stone)"`
	Subtitle      string       `json:"subtitle,omitempty" jsonschema_description:"Book subtitle"`
	Authors       []string     `json:"authors" jsonschema_description:"List of author names (example: J.K. Rowling)"`
	Publisher     string       `json:"publisher,omitempty" jsonschema_description:"Publisher name (example: Scholastic Inc.)"`
	PublishedDate string       `json:"publishedDate,omitempty" jsonschema_description:"Publication date in ISO 8601 or partial format (example: 1998-09-01)"`
	Description   string       `json:"description,omitempty" jsonschema_description:"Book description/synopsis"`
	PageCount     int          `json:"pageCount,omitempty" jsonschema_description:"Number of pages (example: 309)"`
	Categories    []string     `json:"categories,omitempty" jsonschema_description:"Book categories/genres (example: Fiction, Fantasy)"`
	Language      string       `json:"language,omitempty" jsonschema_description:"ISO 639-1 language code (example: en)"`
	CoverURL      string       `json:"coverUrl,omitempty" jsonschema:"format=uri" jsonschema_description:"Cover image URL"`
	ThumbnailURL  string       `json:"thumbnailUrl,omitempty" jsonschema:"format=uri" jsonschema_description:"Thumbnail image URL"`
	WorkKey       string       `json:"workKey,omitempty" jsonschema_description:"OpenLibrary work key (example: OL82563W)"`
	EditionKey    string       `json:"editionKey,omitempty" jsonschema_description:"OpenLibrary edition key (example: OL7353617M)"`
	Provider      BookProvider `json:"provider" jsonschema_description:"Data source provider (example: alexandria)"`
	Quality       float64      `json:"quality" jsonschema:"minimum=0,maximum=100" jsonschema_description:"Data quality score 0-100 (example: 95)"`
}

// BookResponse is the envelope of a successful book response
type BookResponse struct {
	Success  bool         `json:"success"`
	Data     Book         `json:"data"`
	Metadata BookMetadata `json:"metadata"`
}

type BookMetadata struct {
	Source    string `json:"source" jsonschema_description:"Data source"`
	Cached    bool   `json:"cached" jsonschema_description:"Whether response was served from cache"`
	Timestamp string `json:"timestamp" jsonschema_description:"Response timestamp (ISO 8601)"`
	CacheKey  string `json:"cacheKey,omitempty" jsonschema_description:"Cache key used (for debugging)"`
}

// ErrorResponse is the envelope of a failed request
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code       string         `json:"code" jsonschema_description:"Error code (e.g. NOT_FOUND or VALIDATION_ERROR)"`
	Message    string         `json:"message" jsonschema_description:"Human-readable error message"`
	StatusCode int            `json:"statusCode" jsonschema_description:"HTTP status code"`
	Details    map[string]any `json:"details,omitempty" jsonschema_description:"Additional error context"`
}

// BookSearchResults is returned by the list endpoints
type BookSearchResults struct {
	Success  bool           `json:"success"`
	Data     SearchData     `json:"data"`
	Metadata SearchMetadata `json:"metadata"`
}

type SearchData struct {
	Books []Book `json:"books"`
	Total int    `json:"total" jsonschema_description:"Total number of results"`
	Page  int    `json:"page" jsonschema_description:"Current page number"`
	Limit int    `json:"limit" jsonschema_description:"Results per page"`
}

type SearchMetadata struct {
	Cached    bool   `json:"cached"`
	Timestamp string `json:"timestamp"`
	Query     string `json:"query" jsonschema_description:"Search query"`
}
