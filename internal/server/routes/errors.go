package routes

import (
	"net/http"

	"github.com/shelfgraph/backend/internal/server/middleware"
	"github.com/shelfgraph/backend/pkg/logger"
)

// internalError logs a pipeline failure with the request id and maps it to a
// 500 whose body carries the underlying message verbatim.
func internalError(cc *middleware.AppContext, message string, err error) error {
	logger.Error(message, "request_id", cc.RequestID, "err", err)
	return cc.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
