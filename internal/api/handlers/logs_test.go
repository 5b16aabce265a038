package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/models"
)

type fakeLogSvc struct {
	lastQuery models.LogQuery
	page      models.LogPage
	err       error
}

func (f *fakeLogSvc) ListLogs(ctx context.Context, q models.LogQuery) (models.LogPage, error) {
	f.lastQuery = q
	return f.page, f.err
}

func newLogsRouter(svc LogLister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/logs", NewLogsHandler(svc, logging.NewNoOpLogger()).ListLogs)
	return r
}

func TestListLogs_WhenEntriesExist_ThenReturnsPage(t *testing.T) {
	svc := &fakeLogSvc{page: models.LogPage{
		Data: []models.TaskLogRow{
			{ID: 2, InventoryHostname: "web1", TaskName: "install", Status: models.StatusOK, Playbook: "site.yml", PlaybookUUID: "u1", Module: "yum"},
		},
		Page:         1,
		TotalPages:   1,
		TotalRecords: 1,
	}}
	r := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.LogPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 1, body.TotalPages)
	assert.Equal(t, int64(1), body.TotalRecords)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "web1", body.Data[0].InventoryHostname)
}

func TestListLogs_WhenFiltersSupplied_ThenPassedToService(t *testing.T) {
	svc := &fakeLogSvc{}
	r := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/logs?host=web&playbook_uuid=u1&status=FAILED&month=3&page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "web", svc.lastQuery.Host)
	assert.Equal(t, "u1", svc.lastQuery.PlaybookUUID)
	assert.Equal(t, "FAILED", svc.lastQuery.Status)
	assert.Equal(t, "3", svc.lastQuery.Month)
	assert.Equal(t, "2", svc.lastQuery.Page)
}

func TestListLogs_WhenEmptyResult_ThenZeroesNotError(t *testing.T) {
	svc := &fakeLogSvc{page: models.LogPage{Data: []models.TaskLogRow{}, Page: 1}}
	r := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/logs?host=nowhere", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.LogPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
	assert.Equal(t, 0, body.TotalPages)
	assert.Equal(t, int64(0), body.TotalRecords)
}

func TestListLogs_WhenStoreUnreachable_ThenInternalServerError(t *testing.T) {
	svc := &fakeLogSvc{err: errors.New("unable to open database file")}
	r := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
