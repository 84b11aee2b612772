// Package notes exports catalog books as markdown notes with YAML
// frontmatter, and imports them back.
package notes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lepinkainen/shelf/internal/catalog"
	"github.com/lepinkainen/shelf/internal/fileutil"
)

// Write renders each book as a markdown note in the given directory.
// Existing notes are skipped unless overwrite is set. Returns the
// number of notes written.
func Write(books []catalog.Book, directory string, overwrite bool) (int, error) {
	written := 0
	for _, book := range books {
		ok, err := writeBookNote(book, directory, overwrite)
		if err != nil {
			return written, fmt.Errorf("failed to write note for %q: %w", book.Title, err)
		}
		if ok {
			written++
		}
	}
	return written, nil
}

func writeBookNote(book catalog.Book, directory string, overwrite bool) (bool, error) {
	filePath := fileutil.GetMarkdownFilePath(book.Title, directory)

	// The frontmatter carries the raw title so a re-import rebuilds the
	// exact book; only the file path is sanitized
	mb := fileutil.NewMarkdownBuilder()
	mb.AddTitle(book.Title).
		AddType("book").
		AddField("author", book.Author).
		AddYear(book.Year).
		AddField("genre", book.Genre).
		AddField("read", book.Read).
		AddTags(noteTags(book)...)

	mb.AddParagraph(fmt.Sprintf("**%s** by %s (%d)", book.Title, book.Author, book.Year))

	wrote, err := fileutil.WriteFileWithOverwrite(filePath, []byte(mb.Build()), 0644, overwrite)
	if err != nil {
		return false, err
	}
	if !wrote {
		slog.Info("Note already exists, skipping", "filename", filePath)
	}
	return wrote, nil
}

func noteTags(book catalog.Book) []string {
	tags := []string{"book"}

	if book.Genre != "" {
		tags = append(tags, "genre/"+tagSlug(book.Genre))
	}

	if book.Year > 0 {
		decade := (book.Year / 10) * 10
		tags = append(tags, fmt.Sprintf("year/%ds", decade))
	}

	if book.Read {
		tags = append(tags, "status/read")
	} else {
		tags = append(tags, "status/unread")
	}

	return tags
}

func tagSlug(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
