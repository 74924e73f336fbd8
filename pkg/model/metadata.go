package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// BookMetadata is the validated shape of a book's metadata record. The
// backing store keeps metadata as free-form JSON; the fields the graph
// pipeline depends on are pulled out here so a missing field fails at the
// store boundary instead of somewhere in the middle of graph assembly.
type BookMetadata struct {
	BookID string
	Title  string
	Locc   string
	// Raw is the full metadata document as stored, returned verbatim on
	// graph nodes.
	Raw json.RawMessage
}

// FieldError reports a required metadata field that is missing or empty.
type FieldError struct {
	BookID string
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("book %q: missing required metadata field %q", e.BookID, e.Field)
}

// ParseBookMetadata validates a raw metadata document. book_id, title and
// locc are required and must be non-empty strings.
func ParseBookMetadata(raw []byte) (BookMetadata, error) {
	if !gjson.ValidBytes(raw) {
		return BookMetadata{}, fmt.Errorf("invalid metadata document: not valid JSON")
	}

	bookID := gjson.GetBytes(raw, "book_id").String()
	if bookID == "" {
		return BookMetadata{}, &FieldError{Field: "book_id"}
	}

	title := gjson.GetBytes(raw, "title").String()
	if title == "" {
		return BookMetadata{}, &FieldError{BookID: bookID, Field: "title"}
	}

	locc := gjson.GetBytes(raw, "locc").String()
	if locc == "" {
		return BookMetadata{}, &FieldError{BookID: bookID, Field: "locc"}
	}

	return BookMetadata{
		BookID: bookID,
		Title:  title,
		Locc:   locc,
		Raw:    json.RawMessage(raw),
	}, nil
}

// Group returns the book's primary category: the first semicolon-delimited
// token of the locc classification, trimmed.
func (m BookMetadata) Group() string {
	group, _, _ := strings.Cut(m.Locc, ";")
	return strings.TrimSpace(group)
}
