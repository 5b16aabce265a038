package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/api/response"
	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/models"
)

// LogLister serves filtered, paginated task log pages.
type LogLister interface {
	ListLogs(ctx context.Context, q models.LogQuery) (models.LogPage, error)
}

// LogsHandler handles task log query requests.
type LogsHandler struct {
	service LogLister
	logger  logging.Logger
}

// NewLogsHandler creates a new task log handler.
func NewLogsHandler(service LogLister, logger logging.Logger) *LogsHandler {
	return &LogsHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "logs")),
	}
}

// ListLogs godoc
// @Summary List task log entries
// @Description Retrieves task log entries with filtering and pagination (fixed page size 100, newest insertion first). All supplied filters combine with AND.
// @Tags Logs
// @Produce json
// @Param host query string false "Substring match on inventory hostname"
// @Param playbook query string false "Substring match on playbook name"
// @Param playbook_uuid query string false "Exact match on run identifier"
// @Param module query string false "Substring match on module name"
// @Param task query string false "Substring match on task name"
// @Param status query string false "Exact status match; ALL disables the filter" Enums(ALL, OK, CHANGED, FAILED, FAILED_IGNORED, UNREACHABLE, SKIPPED)
// @Param year query string false "Timestamp year, e.g. 2026"
// @Param month query string false "Timestamp month; single digits are zero-padded"
// @Param day query string false "Timestamp day; single digits are zero-padded"
// @Param hour query string false "Timestamp hour; single digits are zero-padded"
// @Param page query string false "1-based page number; invalid input falls back to 1"
// @Success 200 {object} models.LogPage
// @Failure 500 {object} response.ErrorResponse "Store unreachable"
// @Router /api/logs [get]
func (h *LogsHandler) ListLogs(c *gin.Context) {
	var query models.LogQuery
	// All fields are free-form strings; binding cannot reject them.
	_ = c.ShouldBindQuery(&query)

	page, err := h.service.ListLogs(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("could not list task logs",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "could not query task logs")
		return
	}

	c.JSON(http.StatusOK, page)
}
