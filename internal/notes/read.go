package notes

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/frontmatter"
)

// Read scans a directory of markdown notes and rebuilds catalog books
// from their frontmatter. Notes that are not book notes or fail
// validation are skipped with a warning.
func Read(directory string, yearMin, yearMax int) ([]catalog.Book, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	var books []catalog.Book
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(directory, entry.Name())
		book, err := readBookNote(path, yearMin, yearMax)
		if err != nil {
			slog.Warn("Skipping note", "filename", path, "error", err)
			continue
		}

		books = append(books, book)
	}

	return books, nil
}

func readBookNote(path string, yearMin, yearMax int) (catalog.Book, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("failed to read note: %w", err)
	}

	note, err := frontmatter.ParseMarkdown(content)
	if err != nil {
		return catalog.Book{}, err
	}

	if note.GetString("type") != "book" {
		return catalog.Book{}, fmt.Errorf("note is not a book note")
	}

	return catalog.NewBook(
		note.GetString("title"),
		note.GetString("author"),
		note.GetInt("year"),
		note.GetString("genre"),
		note.GetBool("read"),
		yearMin,
		yearMax,
	)
}
