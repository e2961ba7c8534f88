package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"inventory-workflow-backend/internal/models"
	"inventory-workflow-backend/internal/services"
	"inventory-workflow-backend/internal/workflow"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) result(args mock.Arguments) (services.Result, error) {
	res, _ := args.Get(0).(services.Result)
	return res, args.Error(1)
}

func (m *mockService) Upload(ctx context.Context, state models.WorkflowState, uploads []models.UploadedImage) services.Result {
	return m.Called(state, uploads).Get(0).(services.Result)
}

func (m *mockService) Group(ctx context.Context, state models.WorkflowState, ids []string) (services.Result, error) {
	return m.result(m.Called(state, ids))
}

func (m *mockService) Ungroup(ctx context.Context, state models.WorkflowState, ids []string) (services.Result, error) {
	return m.result(m.Called(state, ids))
}

func (m *mockService) Move(ctx context.Context, state models.WorkflowState, itemID, target string) (services.Result, error) {
	return m.result(m.Called(state, itemID, target))
}

func (m *mockService) Categorize(ctx context.Context, state models.WorkflowState, groupKey, category string) (services.Result, error) {
	return m.result(m.Called(state, groupKey, category))
}

func (m *mockService) Describe(ctx context.Context, state models.WorkflowState, itemID, voice, generated string) (services.Result, error) {
	return m.result(m.Called(state, itemID, voice, generated))
}

func (m *mockService) DeleteItem(ctx context.Context, state models.WorkflowState, itemID string) (services.Result, error) {
	return m.result(m.Called(state, itemID))
}

func (m *mockService) Summary(state models.WorkflowState) models.WorkflowSummary {
	return workflow.Snapshot(state)
}

func (m *mockService) SaveState(ctx context.Context, state models.WorkflowState) services.Result {
	return m.Called(state).Get(0).(services.Result)
}

func (m *mockService) OpenBatch(ctx context.Context, batchID uuid.UUID) (services.Result, error) {
	return m.result(m.Called(batchID))
}

func (m *mockService) ListBatches(ctx context.Context) ([]models.WorkflowBatch, error) {
	args := m.Called()
	b, _ := args.Get(0).([]models.WorkflowBatch)
	return b, args.Error(1)
}

func (m *mockService) Finalize(ctx context.Context, state models.WorkflowState) (services.FinalizeResult, error) {
	args := m.Called(state)
	res, _ := args.Get(0).(services.FinalizeResult)
	return res, args.Error(1)
}

func setupRouter(svc *mockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthHandler)

	wf := NewWorkflowHandler(svc)
	b := NewBatchesHandler(svc)
	router.POST("/workflow/upload", wf.Upload)
	router.POST("/workflow/group", wf.Group)
	router.POST("/workflow/move", wf.Move)
	router.POST("/workflow/categorize", wf.Categorize)
	router.POST("/workflow/delete-item", wf.DeleteItem)
	router.POST("/workflow/summary", wf.Summary)
	router.POST("/batches", b.SaveBatch)
	router.GET("/batches", b.ListBatches)
	router.GET("/batches/:batch_id", b.OpenBatch)
	router.POST("/batches/finalize", b.Finalize)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	w := do(t, setupRouter(&mockService{}), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestUpload_ReturnsStateAndBatchID(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("Upload", mock.Anything, mock.Anything).Return(services.Result{
		State:   models.WorkflowState{CurrentBatchID: &id, CurrentBatchNumber: 1},
		Summary: models.WorkflowSummary{TotalImages: 1},
		Saved:   true,
	})

	w := do(t, setupRouter(svc), http.MethodPost, "/workflow/upload", gin.H{
		"images": []gin.H{{"preview": "https://cdn.test/a.jpg"}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.WorkflowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Saved)
	assert.Equal(t, id.String(), resp.BatchID)
	assert.Equal(t, 1, resp.Summary.TotalImages)
}

func TestUpload_RequiresImages(t *testing.T) {
	w := do(t, setupRouter(&mockService{}), http.MethodPost, "/workflow/upload", gin.H{"images": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGroup_RequiresSelection(t *testing.T) {
	w := do(t, setupRouter(&mockService{}), http.MethodPost, "/workflow/group", gin.H{"item_ids": []string{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMove_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown group", fmt.Errorf("group x: %w", models.ErrUnknownGroup), http.StatusBadRequest},
		{"missing item", fmt.Errorf("item y: %w", models.ErrNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Move", mock.Anything, "y", "x").Return(nil, tt.err)

			w := do(t, setupRouter(svc), http.MethodPost, "/workflow/move", gin.H{"item_id": "y", "target_group": "x"})
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCategorize_PassesGroupAndCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("Categorize", mock.Anything, "g1", "Jeans").Return(services.Result{Saved: true}, nil).Once()

	w := do(t, setupRouter(svc), http.MethodPost, "/workflow/categorize", gin.H{"group_id": "g1", "category": "Jeans"})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestSummary_DoesNotSave(t *testing.T) {
	svc := &mockService{}
	w := do(t, setupRouter(svc), http.MethodPost, "/workflow/summary", gin.H{
		"state": gin.H{"uploadedImages": []gin.H{{"id": "a", "groupId": "a"}}},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var summary models.WorkflowSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalImages)
	svc.AssertNotCalled(t, "SaveState", mock.Anything)
}

func TestSaveBatch_StoreDown(t *testing.T) {
	svc := &mockService{}
	svc.On("SaveState", mock.Anything).Return(services.Result{Saved: false})

	w := do(t, setupRouter(svc), http.MethodPost, "/batches", gin.H{"state": gin.H{}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListBatches(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	at := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	svc.On("ListBatches").Return([]models.WorkflowBatch{{
		ID: id, BatchNumber: 3, TotalImages: 8, ThumbnailURL: "https://cdn.test/a.jpg", CreatedAt: at, UpdatedAt: at,
	}}, nil)

	w := do(t, setupRouter(svc), http.MethodGet, "/batches", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.BatchListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Batches, 1)
	assert.Equal(t, id.String(), resp.Batches[0].ID)
	assert.Equal(t, 8, resp.Batches[0].Summary.TotalImages)
}

func TestOpenBatch_InvalidID(t *testing.T) {
	w := do(t, setupRouter(&mockService{}), http.MethodGet, "/batches/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenBatch_NotFound(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("OpenBatch", id).Return(nil, models.ErrNotFound)

	w := do(t, setupRouter(svc), http.MethodGet, "/batches/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinalize_ReportsCounts(t *testing.T) {
	svc := &mockService{}
	id := uuid.New()
	svc.On("Finalize", mock.Anything).Return(services.FinalizeResult{
		BatchID: id, Saved: 2, Failed: 1, Errors: []string{"group k: store unavailable"},
	}, nil)

	w := do(t, setupRouter(svc), http.MethodPost, "/batches/finalize", gin.H{"state": gin.H{}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.FinalizeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id.String(), resp.BatchID)
	assert.Equal(t, 2, resp.Saved)
	assert.Equal(t, 1, resp.Failed)
}

func TestFinalize_StoreUnavailable(t *testing.T) {
	svc := &mockService{}
	svc.On("Finalize", mock.Anything).Return(nil, fmt.Errorf("creating batch: %w", models.ErrStoreUnavailable))

	w := do(t, setupRouter(svc), http.MethodPost, "/batches/finalize", gin.H{"state": gin.H{}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
