// Package export writes catalog snapshots to JSON and SQLite targets.
package export

import (
	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/fileutil"
)

// WriteJSON dumps the catalog to a JSON file, respecting the overwrite flag.
func WriteJSON(books []catalog.Book, filename string, overwrite bool) error {
	_, err := fileutil.WriteJSONFile(books, filename, overwrite)
	return err
}
