// Package catalog defines the Book record model and the pure query
// operations over an in-memory book collection.
package catalog

import (
	"fmt"
	"strings"
)

// DefaultGenre is recorded when a book is added without a genre.
const DefaultGenre = "Unknown"

// Book represents a single entry in the catalog.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// NewBook validates the input fields and returns a Book ready for the
// catalog. Title and author are required; a blank genre becomes
// DefaultGenre. The year must fall within [yearMin, yearMax].
func NewBook(title, author string, year int, genre string, read bool, yearMin, yearMax int) (Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	genre = strings.TrimSpace(genre)

	if title == "" {
		return Book{}, fmt.Errorf("title is required")
	}
	if author == "" {
		return Book{}, fmt.Errorf("author is required")
	}
	if year < yearMin || year > yearMax {
		return Book{}, fmt.Errorf("year %d outside allowed range %d-%d", year, yearMin, yearMax)
	}
	if genre == "" {
		genre = DefaultGenre
	}

	return Book{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		Read:   read,
	}, nil
}

// Equal reports whether two books match on every field. Removal works
// on structural equality since books carry no identity field.
func (b Book) Equal(other Book) bool {
	return b == other
}

// String formats the book the way listings display it.
func (b Book) String() string {
	status := "unread"
	if b.Read {
		status = "read"
	}
	return fmt.Sprintf("%s by %s (%d) [%s, %s]", b.Title, b.Author, b.Year, b.Genre, status)
}
