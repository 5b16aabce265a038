package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/api/response"
	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/models"
)

// StatsProvider reports aggregate store counts.
type StatsProvider interface {
	Stats(ctx context.Context) (models.StoreStats, error)
}

// MetricsHandler handles metrics requests.
type MetricsHandler struct {
	service StatsProvider
	logger  logging.Logger
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(service StatsProvider, logger logging.Logger) *MetricsHandler {
	return &MetricsHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "metrics")),
	}
}

// Metrics godoc
// @Summary Get store metrics
// @Description Returns aggregate counts over the task log store: total entries, distinct playbook runs and entries per status
// @Tags System
// @Produce json
// @Success 200 {object} response.DataResponse{data=models.StoreStats}
// @Failure 500 {object} response.ErrorResponse "Store unreachable"
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("could not collect store metrics",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "could not query store metrics")
		return
	}

	response.OK(c, stats)
}
