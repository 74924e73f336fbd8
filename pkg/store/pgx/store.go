package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/shelfgraph/backend/pkg/model"
	"github.com/shelfgraph/backend/pkg/store"
)

// BookDBStorage implements store.BookStore on PostgreSQL with pgvector.
// Nearest-neighbor search lives in the match_books SQL function so the
// distance math and threshold filtering stay data-side.
type BookDBStorage struct {
	conn *pgxpool.Pool
}

func NewBookDBStorage(conn *pgxpool.Pool) *BookDBStorage {
	return &BookDBStorage{conn: conn}
}

func (s *BookDBStorage) GetBookMetadata(ctx context.Context, bookID string) (model.BookMetadata, error) {
	var raw []byte
	err := s.conn.QueryRow(ctx,
		`SELECT metadata FROM books WHERE book_id = $1`,
		bookID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BookMetadata{}, store.ErrBookNotFound
	}
	if err != nil {
		return model.BookMetadata{}, &store.QueryError{Op: "get book metadata", Err: err}
	}

	return model.ParseBookMetadata(raw)
}

func (s *BookDBStorage) GetBookEmbeddings(ctx context.Context, bookID string) ([]pgvector.Vector, error) {
	rows, err := s.conn.Query(ctx,
		`SELECT embedding FROM book_embeddings WHERE book_id = $1`,
		bookID,
	)
	if err != nil {
		return nil, &store.QueryError{Op: "get book embeddings", Err: err}
	}
	defer rows.Close()

	embeddings := make([]pgvector.Vector, 0)
	for rows.Next() {
		var embedding pgvector.Vector
		if err := rows.Scan(&embedding); err != nil {
			return nil, &store.QueryError{Op: "get book embeddings", Err: err}
		}
		embeddings = append(embeddings, embedding)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.QueryError{Op: "get book embeddings", Err: err}
	}

	return embeddings, nil
}

func (s *BookDBStorage) MatchBooks(
	ctx context.Context,
	embedding pgvector.Vector,
	threshold float64,
	matchCount int,
	excludeBookID string,
) ([]store.BookMatch, error) {
	rows, err := s.conn.Query(ctx,
		`SELECT book_id, metadata, distance FROM match_books($1, $2, $3, $4)`,
		embedding, threshold, matchCount, excludeBookID,
	)
	if err != nil {
		return nil, &store.QueryError{Op: "match books", Err: err}
	}
	defer rows.Close()

	matches := make([]store.BookMatch, 0, max(matchCount, 0))
	for rows.Next() {
		var m store.BookMatch
		if err := rows.Scan(&m.BookID, &m.Metadata, &m.Distance); err != nil {
			return nil, &store.QueryError{Op: "match books", Err: err}
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.QueryError{Op: "match books", Err: err}
	}

	return matches, nil
}
