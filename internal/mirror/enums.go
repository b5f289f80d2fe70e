// SYNCED FROM BENDV3 - DO NOT EDIT
//
// Source: ../bendv3/src/types/enums.ts
// Synced: 2026-01-05T17:45:05Z

package mirror

import (
	"slices"

	"github.com/invopop/jsonschema"
)

// Canonical enum types. These match the Swift enums in BooksTrackerFeature;
// do not modify without updating the iOS client.

// EditionFormat is the physical or digital format of an edition
type EditionFormat string

const (
	EditionFormatHardcover  EditionFormat = "Hardcover"
	EditionFormatPaperback  EditionFormat = "Paperback"
	EditionFormatEBook      EditionFormat = "E-book"
	EditionFormatAudiobook  EditionFormat = "Audiobook"
	EditionFormatMassMarket EditionFormat = "Mass Market"
)

var EditionFormats = []EditionFormat{
	EditionFormatHardcover,
	EditionFormatPaperback,
	EditionFormatEBook,
	EditionFormatAudiobook,
	EditionFormatMassMarket,
}

func (v EditionFormat) Valid() bool                  { return slices.Contains(EditionFormats, v) }
func (EditionFormat) Values() []EditionFormat        { return slices.Clone(EditionFormats) }
func (EditionFormat) JSONSchema() *jsonschema.Schema { return enumSchema(EditionFormats) }

// AuthorGender is the gender recorded for an author
type AuthorGender string

const (
	AuthorGenderFemale    AuthorGender = "Female"
	AuthorGenderMale      AuthorGender = "Male"
	AuthorGenderNonBinary AuthorGender = "Non-binary"
	AuthorGenderOther     AuthorGender = "Other"
	AuthorGenderUnknown   AuthorGender = "Unknown"
)

var AuthorGenders = []AuthorGender{
	AuthorGenderFemale,
	AuthorGenderMale,
	AuthorGenderNonBinary,
	AuthorGenderOther,
	AuthorGenderUnknown,
}

func (v AuthorGender) Valid() bool                  { return slices.Contains(AuthorGenders, v) }
func (AuthorGender) Values() []AuthorGender         { return slices.Clone(AuthorGenders) }
func (AuthorGender) JSONSchema() *jsonschema.Schema { return enumSchema(AuthorGenders) }

// CulturalRegion is the cultural region attributed to an author
type CulturalRegion string

const (
	CulturalRegionAfrica        CulturalRegion = "Africa"
	CulturalRegionAsia          CulturalRegion = "Asia"
	CulturalRegionEurope        CulturalRegion = "Europe"
	CulturalRegionNorthAmerica  CulturalRegion = "North America"
	CulturalRegionSouthAmerica  CulturalRegion = "South America"
	CulturalRegionOceania       CulturalRegion = "Oceania"
	CulturalRegionMiddleEast    CulturalRegion = "Middle East"
	CulturalRegionCaribbean     CulturalRegion = "Caribbean"
	CulturalRegionCentralAsia   CulturalRegion = "Central Asia"
	CulturalRegionIndigenous    CulturalRegion = "Indigenous"
	CulturalRegionInternational CulturalRegion = "International"
)

var CulturalRegions = []CulturalRegion{
	CulturalRegionAfrica,
	CulturalRegionAsia,
	CulturalRegionEurope,
	CulturalRegionNorthAmerica,
	CulturalRegionSouthAmerica,
	CulturalRegionOceania,
	CulturalRegionMiddleEast,
	CulturalRegionCaribbean,
	CulturalRegionCentralAsia,
	CulturalRegionIndigenous,
	CulturalRegionInternational,
}

func (v CulturalRegion) Valid() bool                  { return slices.Contains(CulturalRegions, v) }
func (CulturalRegion) Values() []CulturalRegion       { return slices.Clone(CulturalRegions) }
func (CulturalRegion) JSONSchema() *jsonschema.Schema { return enumSchema(CulturalRegions) }

// ReviewStatus tracks review of AI-detected books
type ReviewStatus string

const (
	ReviewStatusVerified    ReviewStatus = "verified"
	ReviewStatusNeedsReview ReviewStatus = "needsReview"
	ReviewStatusUserEdited  ReviewStatus = "userEdited"
)

var ReviewStatuses = []ReviewStatus{
	ReviewStatusVerified,
	ReviewStatusNeedsReview,
	ReviewStatusUserEdited,
}

func (v ReviewStatus) Valid() bool                  { return slices.Contains(ReviewStatuses, v) }
func (ReviewStatus) Values() []ReviewStatus         { return slices.Clone(ReviewStatuses) }
func (ReviewStatus) JSONSchema() *jsonschema.Schema { return enumSchema(ReviewStatuses) }

// DataProvider identifies a provider for attribution
type DataProvider string

const (
	DataProviderAlexandria  DataProvider = "alexandria"
	DataProviderGoogleBooks DataProvider = "google-books"
	DataProviderOpenLibrary DataProvider = "openlibrary"
	DataProviderISBNdb      DataProvider = "isbndb"
	DataProviderGemini      DataProvider = "gemini"
)

var DataProviders = []DataProvider{
	DataProviderAlexandria,
	DataProviderGoogleBooks,
	DataProviderOpenLibrary,
	DataProviderISBNdb,
	DataProviderGemini,
}

func (v DataProvider) Valid() bool                  { return slices.Contains(DataProviders, v) }
func (DataProvider) Values() []DataProvider         { return slices.Clone(DataProviders) }
func (DataProvider) JSONSchema() *jsonschema.Schema { return enumSchema(DataProviders) }

// ApiErrorCode is a structured error code
type ApiErrorCode string

const (
	ApiErrorInvalidISBN       ApiErrorCode = "INVALID_ISBN"
	ApiErrorInvalidQuery      ApiErrorCode = "INVALID_QUERY"
	ApiErrorProviderTimeout   ApiErrorCode = "PROVIDER_TIMEOUT"
	ApiErrorProviderError     ApiErrorCode = "PROVIDER_ERROR"
	ApiErrorNotFound          ApiErrorCode = "NOT_FOUND"
	ApiErrorRateLimitExceeded ApiErrorCode = "RATE_LIMIT_EXCEEDED"
	ApiErrorInternalError     ApiErrorCode = "INTERNAL_ERROR"
)

var ApiErrorCodes = []ApiErrorCode{
	ApiErrorInvalidISBN,
	ApiErrorInvalidQuery,
	ApiErrorProviderTimeout,
	ApiErrorProviderError,
	ApiErrorNotFound,
	ApiErrorRateLimitExceeded,
	ApiErrorInternalError,
}

func (v ApiErrorCode) Valid() bool                  { return slices.Contains(ApiErrorCodes, v) }
func (ApiErrorCode) Values() []ApiErrorCode         { return slices.Clone(ApiErrorCodes) }
func (ApiErrorCode) JSONSchema() *jsonschema.Schema { return enumSchema(ApiErrorCodes) }

// EnrichmentSource records where an enrichment request originated.
// Produced by the enrichment queue; consumed by the Alexandria worker.
type EnrichmentSource string

const (
	EnrichmentSourceUserAdd         EnrichmentSource = "user_add"
	EnrichmentSourceCSVImport       EnrichmentSource = "csv_import"
	EnrichmentSourceScanImport      EnrichmentSource = "scan_import"
	EnrichmentSourceBatchEnrichment EnrichmentSource = "batch_enrichment"
	EnrichmentSourceBackground      EnrichmentSource = "background"
)

var EnrichmentSources = []EnrichmentSource{
	EnrichmentSourceUserAdd,
	EnrichmentSourceCSVImport,
	EnrichmentSourceScanImport,
	EnrichmentSourceBatchEnrichment,
	EnrichmentSourceBackground,
}

func (v EnrichmentSource) Valid() bool                  { return slices.Contains(EnrichmentSources, v) }
func (EnrichmentSource) Values() []EnrichmentSource     { return slices.Clone(EnrichmentSources) }
func (EnrichmentSource) JSONSchema() *jsonschema.Schema { return enumSchema(EnrichmentSources) }

// CoverSource is where a cover image came from (matches Alexandria BookResult)
type CoverSource string

const (
	CoverSourceR2               CoverSource = "r2"
	CoverSourceExternal         CoverSource = "external"
	CoverSourceExternalFallback CoverSource = "external-fallback"
	CoverSourceEnrichedCached   CoverSource = "enriched-cached"
)

var CoverSources = []CoverSource{
	CoverSourceR2,
	CoverSourceExternal,
	CoverSourceExternalFallback,
	CoverSourceEnrichedCached,
}

func (v CoverSource) Valid() bool                  { return slices.Contains(CoverSources, v) }
func (CoverSource) Values() []CoverSource          { return slices.Clone(CoverSources) }
func (CoverSource) JSONSchema() *jsonschema.Schema { return enumSchema(CoverSources) }

func enumSchema[T ~string](values []T) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}
