package cmd

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/config"
	"github.com/lepinkainen/shelf/internal/library"
	"github.com/lepinkainen/shelf/internal/testutil"
	"github.com/lepinkainen/shelf/internal/tui"
	"github.com/stretchr/testify/require"
)

// setupCatalog points the global config at a sandboxed library file and
// optionally seeds it with books.
func setupCatalog(t *testing.T, books []catalog.Book) *testutil.TestEnv {
	t.Helper()

	testutil.SetTestConfig(t)
	env := testutil.NewTestEnv(t)
	config.LibraryFile = env.Path("library.json")

	if len(books) > 0 {
		require.NoError(t, library.NewStore(config.LibraryFile).Save(books))
	}
	return env
}

func loadCatalog(t *testing.T) []catalog.Book {
	t.Helper()

	books, err := library.NewStore(config.LibraryFile).Load()
	require.NoError(t, err)
	return books
}

func stubSelectBook(t *testing.T, result tui.SelectionResult) {
	t.Helper()

	orig := selectBook
	selectBook = func(prompt string, candidates []catalog.Book) (tui.SelectionResult, error) {
		return result, nil
	}
	t.Cleanup(func() { selectBook = orig })
}

func TestAddCmdPersistsBook(t *testing.T) {
	setupCatalog(t, nil)

	addCmd := &AddCmd{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi", Read: true}
	require.NoError(t, addCmd.Run())

	books := loadCatalog(t)
	require.Len(t, books, 1)
	assert.Equal(t, catalog.Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi", Read: true}, books[0])
}

func TestAddCmdDefaultsGenre(t *testing.T) {
	setupCatalog(t, nil)

	addCmd := &AddCmd{Title: "Emma", Author: "Austen", Year: 1815}
	require.NoError(t, addCmd.Run())

	books := loadCatalog(t)
	require.Len(t, books, 1)
	assert.Equal(t, catalog.DefaultGenre, books[0].Genre)
}

func TestAddCmdRejectsBlankTitle(t *testing.T) {
	setupCatalog(t, nil)

	addCmd := &AddCmd{Title: "   ", Author: "Herbert"}
	err := addCmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestAddCmdRejectsYearOutOfRange(t *testing.T) {
	setupCatalog(t, nil)

	addCmd := &AddCmd{Title: "Dune", Author: "Herbert", Year: 2150}
	err := addCmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside allowed range")
}

func TestRemoveCmdNoInteractive(t *testing.T) {
	setupCatalog(t, []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi", Read: true},
		{Title: "Emma", Author: "Austen", Year: 1815, Genre: "Classic"},
	})

	removeCmd := &RemoveCmd{Term: "Dune", NoInteractive: true}
	require.NoError(t, removeCmd.Run())

	books := loadCatalog(t)
	require.Len(t, books, 1)
	assert.Equal(t, "Emma", books[0].Title)
}

func TestRemoveCmdInteractiveSelection(t *testing.T) {
	emma := catalog.Book{Title: "Emma", Author: "Austen", Year: 1815, Genre: "Classic"}
	setupCatalog(t, []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi", Read: true},
		emma,
	})
	stubSelectBook(t, tui.SelectionResult{Action: tui.ActionSelected, Selection: &emma})

	removeCmd := &RemoveCmd{}
	require.NoError(t, removeCmd.Run())

	books := loadCatalog(t)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestRemoveCmdCancelledLeavesCatalogUntouched(t *testing.T) {
	setupCatalog(t, []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"},
	})
	stubSelectBook(t, tui.SelectionResult{Action: tui.ActionStopped})

	removeCmd := &RemoveCmd{}
	require.NoError(t, removeCmd.Run())

	assert.Equal(t, 1, len(loadCatalog(t)))
}

func TestRemoveCmdNoMatches(t *testing.T) {
	setupCatalog(t, []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"},
	})

	removeCmd := &RemoveCmd{Term: "zzz", NoInteractive: true}
	require.NoError(t, removeCmd.Run())

	assert.Equal(t, 1, len(loadCatalog(t)))
}

func TestRemoveCmdEmptyCatalog(t *testing.T) {
	env := setupCatalog(t, nil)

	removeCmd := &RemoveCmd{NoInteractive: true}
	require.NoError(t, removeCmd.Run())

	assert.False(t, env.FileExists("library.json"))
}

func TestRemoveCmdEmptyTermListsWholeCatalog(t *testing.T) {
	setupCatalog(t, []catalog.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "Sci-Fi"},
		{Title: "Emma", Author: "Austen", Year: 1815, Genre: "Classic"},
	})

	var gotCandidates []catalog.Book
	orig := selectBook
	selectBook = func(prompt string, candidates []catalog.Book) (tui.SelectionResult, error) {
		gotCandidates = candidates
		return tui.SelectionResult{Action: tui.ActionStopped}, nil
	}
	t.Cleanup(func() { selectBook = orig })

	removeCmd := &RemoveCmd{}
	require.NoError(t, removeCmd.Run())

	assert.Equal(t, 2, len(gotCandidates))
}

func TestListCmdRejectsUnknownSortKey(t *testing.T) {
	setupCatalog(t, nil)

	listCmd := &ListCmd{Sort: "isbn"}
	err := listCmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort key")
}

func TestSearchCmdRejectsUnknownField(t *testing.T) {
	setupCatalog(t, nil)

	searchCmd := &SearchCmd{Term: "dune", Field: "genre"}
	err := searchCmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown search field")
}
