package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// SearchField selects which field a search matches against.
type SearchField string

const (
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
)

// SortKey selects the field a sorted view is ordered by.
type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByAuthor SortKey = "author"
	SortByYear   SortKey = "year"
)

// Search returns the books whose selected field contains term,
// case-insensitively. An empty term yields no results: the search view
// has nothing to show until the user types something.
func Search(books []Book, term string, field SearchField) []Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var results []Book
	for _, b := range books {
		var haystack string
		switch field {
		case FieldAuthor:
			haystack = b.Author
		default:
			haystack = b.Title
		}
		if strings.Contains(strings.ToLower(haystack), term) {
			results = append(results, b)
		}
	}
	return results
}

// Filter returns the books whose title or author contains term,
// case-insensitively. An empty term returns the full catalog: the
// remove view lists everything until the user narrows it down. This
// intentionally differs from Search's empty-term behavior.
func Filter(books []Book, term string) []Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return books
	}

	var results []Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term) {
			results = append(results, b)
		}
	}
	return results
}

// SortBy returns a new slice ordered by the given key. String keys
// compare case-insensitively, the sort is stable, and the input slice
// is never mutated.
func SortBy(books []Book, key SortKey, descending bool) []Book {
	sorted := make([]Book, len(books))
	copy(sorted, books)

	var less func(i, j int) bool
	switch key {
	case SortByAuthor:
		less = func(i, j int) bool {
			return strings.ToLower(sorted[i].Author) < strings.ToLower(sorted[j].Author)
		}
	case SortByYear:
		less = func(i, j int) bool {
			return sorted[i].Year < sorted[j].Year
		}
	default:
		less = func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		}
	}

	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(sorted, less)
	return sorted
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(strings.ToLower(value)) {
	case SortByTitle:
		return SortByTitle, nil
	case SortByAuthor:
		return SortByAuthor, nil
	case SortByYear:
		return SortByYear, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want title, author or year)", value)
}

// ParseSearchField validates a user-supplied search field.
func ParseSearchField(value string) (SearchField, error) {
	switch SearchField(strings.ToLower(value)) {
	case FieldTitle:
		return FieldTitle, nil
	case FieldAuthor:
		return FieldAuthor, nil
	}
	return "", fmt.Errorf("unknown search field %q (want title or author)", value)
}

// Stats holds the aggregate numbers the statistics view displays.
type Stats struct {
	Total          int
	ReadCount      int
	ReadPercentage float64
	GenreHistogram map[string]int
}

// Statistics computes totals, read percentage and the genre histogram
// for the given books. The percentage is 0 for an empty catalog.
func Statistics(books []Book) Stats {
	stats := Stats{
		GenreHistogram: make(map[string]int),
	}

	for _, b := range books {
		stats.Total++
		if b.Read {
			stats.ReadCount++
		}
		genre := b.Genre
		if genre == "" {
			genre = DefaultGenre
		}
		stats.GenreHistogram[genre]++
	}

	if stats.Total > 0 {
		stats.ReadPercentage = float64(stats.ReadCount) / float64(stats.Total) * 100
	}

	return stats
}
