package graph

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/shelfgraph/backend/pkg/logger"
	"github.com/shelfgraph/backend/pkg/model"
	"github.com/shelfgraph/backend/pkg/store"
)

// maxRelatedBooks caps the graph size. The caller-supplied match count only
// bounds candidates per fragment, never the final node count.
const maxRelatedBooks = 20

// RelatedBook is one ranked result of similarity aggregation.
type RelatedBook struct {
	ID       string
	Metadata model.BookMetadata
	Score    float64
}

// Aggregator ranks books by similarity to a target book, summing per-chunk
// similarity signals into one score per related book.
type Aggregator struct {
	store store.BookStore
}

func NewAggregator(s store.BookStore) *Aggregator {
	return &Aggregator{store: s}
}

// RelatedBooks returns up to maxRelatedBooks books most similar to targetID,
// highest aggregate similarity first, each with resolved metadata.
//
// Every embedding fragment of the target issues one nearest-neighbor query;
// the queries are independent round trips and run concurrently. Each match
// contributes 1 - distance to its book's running total. Ties rank by book id
// ascending so the ordering is deterministic. A book with no fragments has
// no related books; that is an empty result, not an error.
func (a *Aggregator) RelatedBooks(
	ctx context.Context,
	targetID string,
	threshold float64,
	matchCount int,
) ([]RelatedBook, error) {
	fragments, err := a.store.GetBookEmbeddings(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, nil
	}

	matches := make([][]store.BookMatch, len(fragments))

	eg, ectx := errgroup.WithContext(ctx)
	for i := range fragments {
		idx := i
		fragment := fragments[i]
		eg.Go(func() error {
			res, err := a.store.MatchBooks(ectx, fragment, threshold, matchCount, targetID)
			if err != nil {
				return err
			}
			matches[idx] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	scores := make(map[string]float64)
	for _, fragmentMatches := range matches {
		for _, m := range fragmentMatches {
			if m.BookID == targetID {
				continue
			}
			scores[m.BookID] += 1 - m.Distance
		}
	}

	ranked := make([]string, 0, len(scores))
	for id := range scores {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > maxRelatedBooks {
		ranked = ranked[:maxRelatedBooks]
	}

	related := make([]RelatedBook, 0, len(ranked))
	for _, id := range ranked {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		metadata, err := a.store.GetBookMetadata(ctx, id)
		if err != nil {
			// A related book with broken metadata drops out of the graph
			// instead of failing the whole request.
			logger.Warn("Skipping related book with unresolvable metadata", "book_id", id, "err", err)
			continue
		}
		related = append(related, RelatedBook{
			ID:       id,
			Metadata: metadata,
			Score:    scores[id],
		})
	}

	return related, nil
}
