package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lepinkainen/shelf/internal/catalog"
)

const histogramWidth = 30

var (
	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statsBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))
)

// renderStats formats the statistics view: totals, read percentage and
// a genre histogram with proportional bars.
func renderStats(stats catalog.Stats) string {
	var out strings.Builder

	out.WriteString(statsHeaderStyle.Render("Library Statistics"))
	out.WriteString("\n\n")
	fmt.Fprintf(&out, "%s %d\n", statsLabelStyle.Render("Total books:"), stats.Total)
	fmt.Fprintf(&out, "%s %d (%.1f%%)\n", statsLabelStyle.Render("Books read:"), stats.ReadCount, stats.ReadPercentage)

	if len(stats.GenreHistogram) == 0 {
		return out.String()
	}

	out.WriteString("\n")
	out.WriteString(statsHeaderStyle.Render("Genre Distribution"))
	out.WriteString("\n")

	genres := sortedGenres(stats.GenreHistogram)
	maxCount := stats.GenreHistogram[genres[0]]
	labelWidth := 0
	for _, genre := range genres {
		if len(genre) > labelWidth {
			labelWidth = len(genre)
		}
	}

	for _, genre := range genres {
		count := stats.GenreHistogram[genre]
		bar := strings.Repeat("█", barLength(count, maxCount))
		fmt.Fprintf(&out, "  %-*s %s %d\n", labelWidth, genre, statsBarStyle.Render(bar), count)
	}

	return out.String()
}

// sortedGenres orders genres by count descending, then name, so the
// histogram is stable across runs.
func sortedGenres(histogram map[string]int) []string {
	genres := make([]string, 0, len(histogram))
	for genre := range histogram {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool {
		if histogram[genres[i]] != histogram[genres[j]] {
			return histogram[genres[i]] > histogram[genres[j]]
		}
		return genres[i] < genres[j]
	})
	return genres
}

func barLength(count, maxCount int) int {
	if maxCount == 0 {
		return 0
	}
	length := count * histogramWidth / maxCount
	if length < 1 {
		length = 1
	}
	return length
}
