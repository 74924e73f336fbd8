package store

import (
	"context"
	"encoding/json"

	"github.com/pgvector/pgvector-go"

	"github.com/shelfgraph/backend/pkg/model"
)

// BookMatch is one candidate from a nearest-neighbor query: a book chunk
// whose embedding landed within the similarity threshold. Distance is the
// cosine distance in [0,1]; similarity is 1 - Distance.
type BookMatch struct {
	BookID   string
	Metadata json.RawMessage
	Distance float64
}

// BookStore is the read surface of the backing document store. One
// implementation exists (pgx + pgvector); the graph pipeline only ever sees
// this interface so tests can substitute fakes.
type BookStore interface {
	// GetBookMetadata returns the validated metadata record for a book.
	// Returns ErrBookNotFound if no such book exists.
	GetBookMetadata(ctx context.Context, bookID string) (model.BookMetadata, error)

	// GetBookEmbeddings returns every embedding fragment stored for a book.
	// A book chunked into n pieces yields n vectors; order carries no meaning.
	GetBookEmbeddings(ctx context.Context, bookID string) ([]pgvector.Vector, error)

	// MatchBooks runs one nearest-neighbor query against the store-side
	// similarity operator. Chunks of excludeBookID are filtered data-side;
	// matches below threshold are dropped; at most matchCount rows return.
	MatchBooks(
		ctx context.Context,
		embedding pgvector.Vector,
		threshold float64,
		matchCount int,
		excludeBookID string,
	) ([]BookMatch, error)
}
