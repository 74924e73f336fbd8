package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	cc := &AppContext{Context: e.NewContext(req, rec), App: &App{}}

	var seen string
	handler := RequestIDMiddleware(func(c echo.Context) error {
		seen = c.(*AppContext).RequestID
		return nil
	})
	if err := handler(cc); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if seen == "" {
		t.Fatal("expected request id on context")
	}
	if got := rec.Header().Get(echo.HeaderXRequestID); got != seen {
		t.Fatalf("expected response header %s, got %s", seen, got)
	}
}
