package middleware

import (
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RequestIDMiddleware tags every request with a nanoid, echoed in the
// X-Request-ID response header and available to handlers for log
// correlation. Must run after AppContextMiddleware.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		if cc, ok := c.(*AppContext); ok {
			cc.RequestID = id
		}
		return next(c)
	}
}
