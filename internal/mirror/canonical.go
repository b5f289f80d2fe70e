// SYNCED FROM BENDV3 - DO NOT EDIT
//
// Source: ../bendv3/src/types/canonical.ts
// Synced: 2026-01-05T17:45:05Z

package mirror

// Canonical data transfer objects. iOS Swift Codable structs mirror these
// exactly.

// CoverURLs holds multi-size covers (Alexandria v2.2.4+)
type CoverURLs struct {
	Large  string `json:"large"`
	Medium string `json:"medium"`
	Small  string `json:"small"`
}

// BoundingBox locates a book detected in a photo
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WorkDTO is the abstract representation of a creative work.
// Corresponds to the SwiftData Work model.
type WorkDTO struct {
	Title       string   `json:"title"`
	SubjectTags []string `json:"subjectTags"`

	OriginalLanguage     string       `json:"originalLanguage,omitempty"`
	FirstPublicationYear *int         `json:"firstPublicationYear,omitempty"`
	Description          string       `json:"description,omitempty"`
	CoverImageURL        string       `json:"coverImageURL,omitempty"`
	CoverURLs            *CoverURLs   `json:"coverUrls,omitempty" jsonschema:"nullable"`
	CoverSource          *CoverSource `json:"coverSource,omitempty" jsonschema:"nullable"`

	// Synthetic is true if the work was inferred from edition data
	Synthetic       bool           `json:"synthetic,omitempty"`
	PrimaryProvider DataProvider   `json:"primaryProvider,omitempty"`
	Contributors    []DataProvider `json:"contributors,omitempty"`

	OpenLibraryID       string `json:"openLibraryID,omitempty"`
	OpenLibraryWorkID   string `json:"openLibraryWorkID,omitempty"`
	ISBNdbID            string `json:"isbndbID,omitempty"`
	GoogleBooksVolumeID string `json:"googleBooksVolumeID,omitempty"`
	GoodreadsID         string `json:"goodreadsID,omitempty"`

	GoodreadsWorkIDs     []string `json:"goodreadsWorkIDs"`
	AmazonASINs          []string `json:"amazonASINs"`
	LibrarythingIDs      []string `json:"librarythingIDs"`
	GoogleBooksVolumeIDs []string `json:"googleBooksVolumeIDs"`

	LastISBNdbSync string `json:"lastISBNDBSync,omitempty"`
	ISBNdbQuality  int    `json:"isbndbQuality"`

	ReviewStatus      ReviewStatus `json:"reviewStatus"`
	OriginalImagePath string       `json:"originalImagePath,omitempty"`
	BoundingBox       *BoundingBox `json:"boundingBox,omitempty"`
}

// EditionDTO is a physical or digital manifestation of a work.
// Corresponds to the SwiftData Edition model.
type EditionDTO struct {
	ISBN  string   `json:"isbn,omitempty"`
	ISBNs []string `json:"isbns"`

	Title           string        `json:"title,omitempty"`
	Publisher       string        `json:"publisher,omitempty"`
	PublicationDate string        `json:"publicationDate,omitempty"`
	PageCount       *int          `json:"pageCount,omitempty"`
	Format          EditionFormat `json:"format"`
	CoverImageURL   string        `json:"coverImageURL,omitempty"`
	CoverURLs       *CoverURLs    `json:"coverUrls,omitempty" jsonschema:"nullable"`
	CoverSource     *CoverSource  `json:"coverSource,omitempty" jsonschema:"nullable"`
	EditionTitle    string        `json:"editionTitle,omitempty"`
	// EditionDescription avoids "description", which the Swift @Model macro reserves
	EditionDescription string `json:"editionDescription,omitempty"`
	Language           string `json:"language,omitempty"`

	PrimaryProvider DataProvider   `json:"primaryProvider,omitempty"`
	Contributors    []DataProvider `json:"contributors,omitempty"`

	OpenLibraryID        string `json:"openLibraryID,omitempty"`
	OpenLibraryEditionID string `json:"openLibraryEditionID,omitempty"`
	ISBNdbID             string `json:"isbndbID,omitempty"`
	GoogleBooksVolumeID  string `json:"googleBooksVolumeID,omitempty"`
	GoodreadsID          string `json:"goodreadsID,omitempty"`

	AmazonASINs          []string `json:"amazonASINs"`
	GoogleBooksVolumeIDs []string `json:"googleBooksVolumeIDs"`
	LibrarythingIDs      []string `json:"librarythingIDs"`

	LastISBNdbSync string `json:"lastISBNDBSync,omitempty"`
	ISBNdbQuality  int    `json:"isbndbQuality"`
}

// AuthorDTO is a creator of works.
// Corresponds to the SwiftData Author model.
type AuthorDTO struct {
	Name   string       `json:"name"`
	Gender AuthorGender `json:"gender"`

	CulturalRegion CulturalRegion `json:"culturalRegion,omitempty"`
	Nationality    string         `json:"nationality,omitempty"`
	BirthYear      *int           `json:"birthYear,omitempty"`
	DeathYear      *int           `json:"deathYear,omitempty"`

	// Enriched metadata (Alexandria v2.2.3+)
	Bio         string `json:"bio,omitempty"`
	WikidataID  string `json:"wikidata_id,omitempty"`
	Image       string `json:"image,omitempty"`
	Key         string `json:"key,omitempty"`
	OpenLibrary string `json:"openlibrary,omitempty"`

	OpenLibraryID string `json:"openLibraryID,omitempty"`
	ISBNdbID      string `json:"isbndbID,omitempty"`
	GoogleBooksID string `json:"googleBooksID,omitempty"`
	GoodreadsID   string `json:"goodreadsID,omitempty"`

	BookCount *int `json:"bookCount,omitempty"`
}
