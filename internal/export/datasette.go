package export

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/cmdutil"
	"github.com/lepinkainen/shelf/internal/datastore"
)

const booksSchema = `CREATE TABLE IF NOT EXISTS books (
		title TEXT,
		author TEXT,
		year INTEGER,
		genre TEXT,
		read INTEGER
	)`

const booksTable = "books"

// WriteDatasette mirrors the catalog into a local SQLite database for
// browsing with Datasette. Each export replaces the previous contents.
func WriteDatasette(books []catalog.Book, dbFile string) error {
	store := datastore.NewSQLiteStore(dbFile)
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(booksSchema); err != nil {
		return err
	}

	records := make([]map[string]any, len(books))
	for i, book := range books {
		records[i] = bookToRecord(book)
	}

	if err := store.ReplaceAll(booksTable, records); err != nil {
		return err
	}

	slog.Info("Wrote catalog to SQLite database", "dbfile", dbFile, "count", len(books))
	return nil
}

func bookToRecord(book catalog.Book) map[string]any {
	return cmdutil.StructToMap(book, cmdutil.StructToMapOptions{})
}
