package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/config"
	"github.com/lepinkainen/shelf/internal/errors"
	"github.com/lepinkainen/shelf/internal/tui"
)

var selectBook = tui.SelectBook

// AddCmd represents the add command
type AddCmd struct {
	Title  string `short:"t" help:"Book title" required:""`
	Author string `short:"a" help:"Book author" required:""`
	Year   int    `short:"y" help:"Publication year"`
	Genre  string `short:"g" help:"Genre (defaults to Unknown)"`
	Read   bool   `short:"r" help:"Mark the book as read"`
}

// RemoveCmd represents the remove command
type RemoveCmd struct {
	Term          string `arg:"" optional:"" help:"Search term to narrow down candidates (matches title or author)"`
	NoInteractive bool   `help:"Remove the first match instead of showing the picker"`
}

// ListCmd represents the list command
type ListCmd struct {
	Sort string `help:"Sort key: title, author or year" default:"title"`
	Desc bool   `help:"Sort in descending order"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Term  string `arg:"" optional:"" help:"Substring to search for"`
	Field string `help:"Field to match against: title or author" default:"title"`
}

// StatsCmd represents the stats command
type StatsCmd struct{}

func (a *AddCmd) Run() error {
	book, err := catalog.NewBook(a.Title, a.Author, a.Year, a.Genre, a.Read, config.YearMin, config.YearMax)
	if err != nil {
		return err
	}

	lib := openLibrary()
	if err := lib.Add(book); err != nil {
		// The book stays in this session's catalog; only persistence failed
		slog.Warn("Book added but could not be saved", "title", book.Title, "error", err)
		return nil
	}

	slog.Info("Added book to catalog", "title", book.Title, "author", book.Author, "total", lib.Len())
	return nil
}

func (r *RemoveCmd) Run() error {
	lib := openLibrary()
	if lib.Len() == 0 {
		slog.Warn("The catalog is empty, nothing to remove")
		return nil
	}

	// The remove flow lists the whole catalog when no term is given
	candidates := catalog.Filter(lib.Books(), r.Term)
	if len(candidates) == 0 {
		slog.Warn("No books match the search term", "term", r.Term)
		return nil
	}

	target := candidates[0]
	if !r.NoInteractive {
		result, err := selectBook(fmt.Sprintf("Select a book to remove (%d candidates)", len(candidates)), candidates)
		if err != nil {
			return err
		}
		switch result.Action {
		case tui.ActionStopped:
			slog.Info("Removal cancelled")
			return nil
		case tui.ActionSelected:
			target = *result.Selection
		default:
			return nil
		}
	}

	if err := lib.Remove(target); err != nil {
		if errors.IsNotFoundError(err) {
			slog.Warn("Book not found in catalog", "title", target.Title, "author", target.Author)
			return nil
		}
		slog.Warn("Book removed but the catalog could not be saved", "title", target.Title, "error", err)
		return nil
	}

	slog.Info("Removed book from catalog", "title", target.Title, "author", target.Author, "total", lib.Len())
	return nil
}

func (l *ListCmd) Run() error {
	key, err := catalog.ParseSortKey(l.Sort)
	if err != nil {
		return err
	}

	lib := openLibrary()
	if lib.Len() == 0 {
		fmt.Println("Your library is empty.")
		return nil
	}

	sorted := catalog.SortBy(lib.Books(), key, l.Desc)
	fmt.Printf("Your library (%d books):\n", len(sorted))
	for _, book := range sorted {
		fmt.Printf("  %s\n", book)
	}
	return nil
}

func (s *SearchCmd) Run() error {
	field, err := catalog.ParseSearchField(s.Field)
	if err != nil {
		return err
	}

	lib := openLibrary()

	// The search flow shows nothing until a term is entered
	results := catalog.Search(lib.Books(), s.Term, field)
	if len(results) == 0 {
		fmt.Println("No books found matching your search.")
		return nil
	}

	fmt.Printf("Found %d book(s):\n", len(results))
	for _, book := range results {
		fmt.Printf("  %s\n", book)
	}
	return nil
}

func (s *StatsCmd) Run() error {
	lib := openLibrary()
	stats := catalog.Statistics(lib.Books())
	fmt.Print(renderStats(stats))
	return nil
}
