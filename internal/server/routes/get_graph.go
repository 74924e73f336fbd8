package routes

import (
	"context"
	"errors"
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/shelfgraph/backend/internal/server/middleware"
	"github.com/shelfgraph/backend/pkg/graph"
	"github.com/shelfgraph/backend/pkg/store"
)

const (
	defaultMatchThreshold = 0.75
	defaultTopN           = 3
)

// GetGraphHandler serves GET /api/graph: the similarity graph around one
// book. top_n caps candidates per embedding fragment; the final node count
// is bounded independently by the aggregator.
func GetGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		BookID         string   `query:"book_id"`
		MatchThreshold *float64 `query:"match_threshold" validate:"omitempty,gte=0,lte=1"`
		TopN           *int     `query:"top_n" validate:"omitempty,gte=0"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.BookID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing book_id parameter"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	threshold := defaultMatchThreshold
	if params.MatchThreshold != nil {
		threshold = *params.MatchThreshold
	}
	topN := defaultTopN
	if params.TopN != nil {
		topN = *params.TopN
	}

	cc := c.(*middleware.AppContext)
	app := cc.App

	ctx := c.Request().Context()
	if app.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.RequestTimeout)
		defer cancel()
	}

	target, err := app.Store.GetBookMetadata(ctx, params.BookID)
	if errors.Is(err, store.ErrBookNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Book not found"})
	}
	if err != nil {
		return internalError(cc, "Graph target lookup failed", err)
	}

	related, err := graph.NewAggregator(app.Store).RelatedBooks(ctx, params.BookID, threshold, topN)
	if err != nil {
		return internalError(cc, "Similarity aggregation failed", err)
	}

	return c.JSON(http.StatusOK, graph.Build(target, related))
}
