package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/api/response"
	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/models"
)

// PlaybookLister lists aggregated playbook runs.
type PlaybookLister interface {
	ListPlaybooks(ctx context.Context) ([]models.PlaybookRun, error)
}

// PlaybookHandler handles playbook run summary requests.
type PlaybookHandler struct {
	service PlaybookLister
	logger  logging.Logger
}

// NewPlaybookHandler creates a new playbook handler.
func NewPlaybookHandler(service PlaybookLister, logger logging.Logger) *PlaybookHandler {
	return &PlaybookHandler{
		service: service,
		logger:  logger.With(zap.String("handler", "playbooks")),
	}
}

// ListPlaybooks godoc
// @Summary List playbook runs
// @Description Returns one aggregated summary per playbook run (start, end, task count), newest first. Ad-hoc entries without a run identifier are excluded.
// @Tags Playbooks
// @Produce json
// @Success 200 {object} response.DataResponse{data=[]models.PlaybookRun}
// @Failure 500 {object} response.ErrorResponse "Store unreachable"
// @Router /api/playbooks [get]
func (h *PlaybookHandler) ListPlaybooks(c *gin.Context) {
	runs, err := h.service.ListPlaybooks(c.Request.Context())
	if err != nil {
		h.logger.Error("could not list playbook runs",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "could not query playbook runs")
		return
	}

	response.OK(c, runs)
}
