package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/models"
)

func TestHealth_WhenCalled_ThenReturnsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(logging.NewNoOpLogger()).Health)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ansilog")
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

type fakeStatsSvc struct {
	stats models.StoreStats
	err   error
}

func (f *fakeStatsSvc) Stats(ctx context.Context) (models.StoreStats, error) {
	return f.stats, f.err
}

func TestMetrics_WhenStoreSeeded_ThenReturnsCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeStatsSvc{stats: models.StoreStats{
		TotalEntries:  6,
		PlaybookCount: 1,
		StatusCounts:  map[models.Status]int64{models.StatusOK: 4},
	}}
	r := gin.New()
	r.GET("/metrics", NewMetricsHandler(svc, logging.NewNoOpLogger()).Metrics)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_entries":6`)
	assert.Contains(t, w.Body.String(), `"playbook_count":1`)
}

func TestMetrics_WhenStoreUnreachable_ThenInternalServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeStatsSvc{err: errors.New("unable to open database file")}
	r := gin.New()
	r.GET("/metrics", NewMetricsHandler(svc, logging.NewNoOpLogger()).Metrics)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
