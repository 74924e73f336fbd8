package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shelfgraph/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Similarity graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
}

// HTTPErrorHandler renders every error the router or a handler surfaces as
// the JSON error envelope the API speaks. Non-GET methods on known paths
// land here as echo.ErrMethodNotAllowed.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}
	if code == http.StatusMethodNotAllowed {
		message = "Method not allowed"
	}

	_ = c.JSON(code, map[string]string{"error": message})
}
