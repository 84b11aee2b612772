package goodreads

import (
	"strings"
	"testing"

	"github.com/lepinkainen/shelf/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodreadsHeader = `Book Id,Title,Author,Author l-f,Additional Authors,ISBN,ISBN13,My Rating,Average Rating,Publisher,Binding,Number of Pages,Year Published,Original Publication Year,Date Read,Date Added,Bookshelves,Bookshelves with positions,Exclusive Shelf,My Review`

func writeExport(t *testing.T, rows ...string) string {
	t.Helper()
	env := testutil.NewTestEnv(t)
	content := goodreadsHeader + "\n" + strings.Join(rows, "\n") + "\n"
	env.WriteFileString("goodreads_library_export.csv", content)
	return env.Path("goodreads_library_export.csv")
}

func TestImportCSV(t *testing.T) {
	path := writeExport(t,
		`1,Dune,Frank Herbert,"Herbert, Frank",,0441013597,9780441013593,5,4.27,Ace,Paperback,604,2005,1965,2023/01/15,2022/12/01,"sci-fi, favorites","sci-fi (#1)",read,Great`,
		`2,Emma,Jane Austen,"Austen, Jane",,,,0,4.04,Penguin,Paperback,474,2003,1815,,2023/02/01,,,to-read,`,
	)

	books, err := ImportCSV(path, 0, 2023)
	require.NoError(t, err)
	require.Len(t, books, 2)

	dune := books[0]
	assert.Equal(t, "Dune", dune.Title)
	assert.Equal(t, "Frank Herbert", dune.Author)
	assert.Equal(t, 1965, dune.Year, "original publication year wins over edition year")
	assert.Equal(t, "sci-fi", dune.Genre, "first bookshelf becomes the genre")
	assert.True(t, dune.Read)

	emma := books[1]
	assert.Equal(t, "Emma", emma.Title)
	assert.Equal(t, "Jane Austen", emma.Author)
	assert.Equal(t, 1815, emma.Year)
	assert.Equal(t, "Unknown", emma.Genre, "no bookshelves defaults to Unknown")
	assert.False(t, emma.Read)
}

func TestImportCSVSkipsInvalidRecords(t *testing.T) {
	path := writeExport(t,
		// Missing title fails validation and is skipped
		`1,,Frank Herbert,"Herbert, Frank",,,,0,0,,,,2005,1965,,,,,read,`,
		`2,Emma,Jane Austen,"Austen, Jane",,,,0,4.04,,,,2003,1815,,,classics,,read,`,
	)

	books, err := ImportCSV(path, 0, 2023)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Emma", books[0].Title)
}

func TestImportCSVBlankYearFallsBackToMinimum(t *testing.T) {
	path := writeExport(t,
		`1,Epic of Gilgamesh,Anonymous,Anonymous,,,,0,4.0,,,,,,,,myth,,read,`,
	)

	books, err := ImportCSV(path, 0, 2023)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 0, books[0].Year)
}

func TestImportCSVAuthorListKeepsPrimary(t *testing.T) {
	path := writeExport(t,
		`1,Good Omens,"Terry Pratchett, Neil Gaiman","Pratchett, Terry",,,,0,4.25,,,,1990,1990,,,fantasy,,read,`,
	)

	books, err := ImportCSV(path, 0, 2023)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Terry Pratchett", books[0].Author)
}

func TestImportCSVMissingFile(t *testing.T) {
	_, err := ImportCSV("does-not-exist.csv", 0, 2023)
	assert.Error(t, err)
}

func TestImportCSVEmptyFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("empty.csv", "")

	_, err := ImportCSV(env.Path("empty.csv"), 0, 2023)
	require.Error(t, err)
	assert.EqualError(t, err, "CSV file is empty")
}
