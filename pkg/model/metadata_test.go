package model

import (
	"errors"
	"testing"
)

func TestParseBookMetadata_Valid(t *testing.T) {
	raw := []byte(`{"book_id":"B1","title":"Moby Dick","locc":"PS;PZ","author":"Melville"}`)

	m, err := ParseBookMetadata(raw)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if m.BookID != "B1" {
		t.Fatalf("expected book id B1, got %s", m.BookID)
	}
	if m.Title != "Moby Dick" {
		t.Fatalf("expected title Moby Dick, got %s", m.Title)
	}
	if m.Locc != "PS;PZ" {
		t.Fatalf("expected locc PS;PZ, got %s", m.Locc)
	}
	if string(m.Raw) != string(raw) {
		t.Fatalf("expected raw metadata preserved, got %s", m.Raw)
	}
}

func TestParseBookMetadata_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing book_id", `{"title":"T","locc":"PS"}`, "book_id"},
		{"missing title", `{"book_id":"B1","locc":"PS"}`, "title"},
		{"missing locc", `{"book_id":"B1","title":"T"}`, "locc"},
		{"empty locc", `{"book_id":"B1","title":"T","locc":""}`, "locc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBookMetadata([]byte(tc.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %T: %v", err, err)
			}
			if fieldErr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, fieldErr.Field)
			}
		})
	}
}

func TestParseBookMetadata_InvalidJSON(t *testing.T) {
	_, err := ParseBookMetadata([]byte(`{"book_id":`))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestGroup(t *testing.T) {
	cases := []struct {
		locc     string
		expected string
	}{
		{"PS", "PS"},
		{"PS;PZ", "PS"},
		{"PS; PZ; PR", "PS"},
		{" PS ;PZ", "PS"},
	}

	for _, tc := range cases {
		m := BookMetadata{Locc: tc.locc}
		if got := m.Group(); got != tc.expected {
			t.Fatalf("locc %q: expected group %q, got %q", tc.locc, tc.expected, got)
		}
	}
}
