package mirror_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstrack/contracts/internal/mirror"
)

func TestProvenanceHeaders(t *testing.T) {
	for _, file := range []string{"book.go", "canonical.go", "enums.go"} {
		t.Run(file, func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)
			src := string(data)

			assert.True(t, strings.HasPrefix(src, "// SYNCED FROM BENDV3 - DO NOT EDIT\n"))
			assert.Contains(t, src, "// Source: "+mirror.Provenance.SourcePath+"/")
			assert.Contains(t, src, "// Synced: "+mirror.Provenance.SyncedAt+"\n")
		})
	}
	assert.False(t, mirror.SyncedAt().IsZero())
}

func TestEnums(t *testing.T) {
	assert.True(t, mirror.EditionFormatMassMarket.Valid())
	assert.False(t, mirror.EditionFormat("mass market").Valid())
	assert.Len(t, mirror.CulturalRegion("").Values(), 11)
	assert.True(t, mirror.CoverSourceExternalFallback.Valid())
	assert.True(t, mirror.DataProviderGoogleBooks.Valid())
	assert.False(t, mirror.DataProvider("google_books").Valid())
	assert.True(t, mirror.BookProviderGoogleBooks.Valid())
	assert.False(t, mirror.BookProvider("google-books").Valid())

	values := mirror.ReviewStatus("").Values()
	values[0] = "tampered"
	assert.Equal(t, mirror.ReviewStatusVerified, mirror.ReviewStatuses[0])
}

func TestSchema_Book(t *testing.T) {
	s, ok := mirror.Schema("Book")
	require.True(t, ok)

	assert.Equal(t, "object", s.Type)
	assert.Empty(t, s.Version)
	assert.Equal(t, 17, s.Properties.Len())
	assert.Equal(t, []string{"isbn", "title", "authors", "provider", "quality"}, s.Required)

	isbn, ok := s.Properties.Get("isbn")
	require.True(t, ok)
	require.NotNil(t, isbn.MinLength)
	assert.Equal(t, uint64(13), *isbn.MinLength)
	assert.Equal(t, "13-digit ISBN (example: 9780439708180)", isbn.Description)

	provider, ok := s.Properties.Get("provider")
	require.True(t, ok)
	assert.Equal(t, []any{"alexandria", "google_books", "open_library", "isbndb"}, provider.Enum)

	_, ok = mirror.Schema("Magazine")
	assert.False(t, ok)
}

func TestSchemas(t *testing.T) {
	schemas := mirror.Schemas()
	assert.Len(t, schemas, len(mirror.Entities)+len(mirror.Enums))
	for _, name := range mirror.Names() {
		assert.NotNil(t, schemas[name], name)
	}
	assert.Equal(t, "string", schemas["EditionFormat"].Type)
}

func validBook() mirror.Book {
	return mirror.Book{
		ISBN:     "9780439708180",
		Title:    "Harry Potter and the Sorcerers Stone",
		Authors:  []string{"J.K. Rowling"},
		Provider: mirror.BookProviderAlexandria,
		Quality:  95,
	}
}

func TestValidate(t *testing.T) {
	badProvider := validBook()
	badProvider.Provider = "amazon"

	shortISBN := validBook()
	shortISBN.ISBN = "978043970"

	badCover := mirror.CoverSource("s3")

	tests := []struct {
		name    string
		entity  string
		value   any
		wantErr bool
	}{
		{"valid book", "Book", validBook(), false},
		{"book outside enum", "Book", badProvider, true},
		{"short isbn", "Book", shortISBN, true},
		{"missing required", "Book", map[string]any{"title": "Dune"}, true},
		{"quality above range", "Book", map[string]any{
			"isbn": "9780441013593", "title": "Dune", "authors": []string{"Frank Herbert"},
			"provider": "isbndb", "quality": 101,
		}, true},
		{"valid response", "BookResponse", mirror.BookResponse{
			Success:  true,
			Data:     validBook(),
			Metadata: mirror.BookMetadata{Source: "alexandria", Timestamp: "2026-01-05T17:45:05Z"},
		}, false},
		{"valid author", "AuthorDTO", mirror.AuthorDTO{Name: "Octavia Butler", Gender: mirror.AuthorGenderFemale}, false},
		{"author without gender", "AuthorDTO", mirror.AuthorDTO{Name: "Octavia Butler"}, true},
		{"author bad region", "AuthorDTO", mirror.AuthorDTO{
			Name: "Octavia Butler", Gender: mirror.AuthorGenderFemale, CulturalRegion: "Mars",
		}, true},
		{"edition bad cover source", "EditionDTO", mirror.EditionDTO{
			ISBNs: []string{}, Format: mirror.EditionFormatPaperback, CoverSource: &badCover,
			AmazonASINs: []string{}, GoogleBooksVolumeIDs: []string{}, LibrarythingIDs: []string{},
		}, true},
		{"edition null cover", "EditionDTO", map[string]any{
			"isbns": []string{}, "format": "E-book", "coverUrls": nil, "coverSource": nil,
			"amazonASINs": []string{}, "googleBooksVolumeIDs": []string{}, "librarythingIDs": []string{},
			"isbndbQuality": 0,
		}, false},
		{"enum value", "ApiErrorCode", mirror.ApiErrorNotFound, false},
		{"enum outside set", "ApiErrorCode", "TEAPOT", true},
		{"unknown entity", "Magazine", map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mirror.Validate(tt.entity, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
