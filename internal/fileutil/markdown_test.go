package fileutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownBuilder(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddTitle("Dune").
		AddType("book").
		AddField("author", "Frank Herbert").
		AddYear(1965).
		AddField("genre", "Sci-Fi").
		AddField("read", true).
		AddTags("book", "genre/sci-fi").
		AddParagraph("**Dune** by Frank Herbert (1965)").
		Build()

	expected := `---
title: "Dune"
type: book
author: "Frank Herbert"
year: 1965
genre: "Sci-Fi"
read: true
tags:
  - book
  - genre/sci-fi
---

**Dune** by Frank Herbert (1965)

`
	assert.Equal(t, expected, doc)
}

func TestMarkdownBuilderSkipsEmptyValues(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddTitle("Emma").
		AddField("genre", "").
		AddYear(0).
		AddTags().
		AddParagraph("").
		Build()

	assert.NotContains(t, doc, "genre:")
	assert.NotContains(t, doc, "year:")
	assert.NotContains(t, doc, "tags:")
}

func TestMarkdownBuilderEscapesQuotedValues(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddTitle(`The "Martian" Way`).
		AddField("author", `O\Brien`).
		Build()

	assert.Contains(t, doc, `title: "The \"Martian\" Way"`)
	assert.Contains(t, doc, `author: "O\\Brien"`)
}

func TestMarkdownBuilderBoolFieldAlwaysWritten(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddTitle("Emma").
		AddField("read", false).
		Build()

	// false is a real value for booleans, unlike empty strings
	assert.Contains(t, doc, "read: false")
}
