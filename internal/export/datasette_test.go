package export

import (
	"database/sql"
	"testing"

	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestWriteDatasette(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dbFile := env.Path("shelf.db")

	books := []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi", Read: true},
		{Title: "Emma", Author: "Austen", Year: 1815, Genre: "Classic", Read: false},
	}
	require.NoError(t, WriteDatasette(books, dbFile))

	db, err := sql.Open("sqlite", dbFile)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	rows, err := db.Query("SELECT title, author, year, genre, read FROM books ORDER BY year")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var got []catalog.Book
	for rows.Next() {
		var b catalog.Book
		require.NoError(t, rows.Scan(&b.Title, &b.Author, &b.Year, &b.Genre, &b.Read))
		got = append(got, b)
	}
	require.NoError(t, rows.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "Emma", got[0].Title)
	assert.Equal(t, "Dune", got[1].Title)
	assert.True(t, got[1].Read)
}

func TestWriteDatasetteReplacesPreviousExport(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dbFile := env.Path("shelf.db")

	books := []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"},
		{Title: "Emma", Author: "Austen", Year: 1815, Genre: "Classic"},
	}
	require.NoError(t, WriteDatasette(books, dbFile))
	require.NoError(t, WriteDatasette(books[:1], dbFile))

	db, err := sql.Open("sqlite", dbFile)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count))
	assert.Equal(t, 1, count, "each export mirrors the current catalog")
}

func TestBookToRecord(t *testing.T) {
	record := bookToRecord(catalog.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi", Read: true})

	assert.Equal(t, map[string]any{
		"title":  "Dune",
		"author": "Herbert",
		"year":   1965,
		"genre":  "Sci-Fi",
		"read":   true,
	}, record)
}
