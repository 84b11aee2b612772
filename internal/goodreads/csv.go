// Package goodreads imports books from a Goodreads library export CSV
// into the catalog.
package goodreads

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lepinkainen/shelf/internal/catalog"
)

// Column indexes in a Goodreads library export.
const (
	colTitle          = 1
	colAuthor         = 2
	colYearPublished  = 12
	colOriginalYear   = 13
	colBookshelves    = 16
	colExclusiveShelf = 18

	minColumns = 19
)

// ImportCSV reads a Goodreads library export and maps each row to a
// catalog Book. Rows that fail validation are skipped with a warning
// rather than aborting the whole import.
func ImportCSV(filePath string, yearMin, yearMax int) ([]catalog.Book, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	fi, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat CSV file: %w", err)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var books []catalog.Book
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Error reading record", "error", err)
			continue
		}

		book, err := parseBookRecord(record, yearMin, yearMax)
		if err != nil {
			slog.Warn("Skipping invalid book record", "error", err)
			continue
		}

		books = append(books, book)
	}

	slog.Info("Imported books from Goodreads export", "file", filePath, "count", len(books))
	return books, nil
}

func parseBookRecord(record []string, yearMin, yearMax int) (catalog.Book, error) {
	if len(record) < minColumns {
		return catalog.Book{}, fmt.Errorf("record has %d columns, want at least %d", len(record), minColumns)
	}

	year := parseIntField(record[colOriginalYear])
	if year == 0 {
		year = parseIntField(record[colYearPublished])
	}
	// Goodreads leaves the year blank for some editions; the catalog
	// minimum covers that case
	if year < yearMin {
		year = yearMin
	}

	genre := primaryShelf(record[colBookshelves])
	read := strings.EqualFold(record[colExclusiveShelf], "read")

	return catalog.NewBook(record[colTitle], primaryAuthor(record[colAuthor]), year, genre, read, yearMin, yearMax)
}

// primaryAuthor keeps only the first of a comma-separated author list.
func primaryAuthor(value string) string {
	if idx := strings.Index(value, ","); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}

// primaryShelf uses the first bookshelf as the genre, since Goodreads
// has no genre column of its own.
func primaryShelf(value string) string {
	if idx := strings.Index(value, ","); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}

func parseIntField(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}
