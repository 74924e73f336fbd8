package middleware

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/shelfgraph/backend/pkg/store"
)

// App bundles the process-wide dependencies. Everything is constructed once
// at startup and injected here; handlers never reach for globals, so tests
// can hand them an App with a fake store.
type App struct {
	DBConn         *pgxpool.Pool
	Store          store.BookStore
	RequestTimeout time.Duration
}

// AppContext wraps the echo context with the injected dependencies and the
// per-request correlation id.
type AppContext struct {
	echo.Context
	App       *App
	RequestID string
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{Context: c, App: app})
		}
	}
}
