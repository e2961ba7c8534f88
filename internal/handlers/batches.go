package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"inventory-workflow-backend/internal/models"
	"inventory-workflow-backend/internal/services"
)

// BatchActions is the batch half of the workflow service.
type BatchActions interface {
	SaveState(ctx context.Context, state models.WorkflowState) services.Result
	OpenBatch(ctx context.Context, batchID uuid.UUID) (services.Result, error)
	ListBatches(ctx context.Context) ([]models.WorkflowBatch, error)
	Finalize(ctx context.Context, state models.WorkflowState) (services.FinalizeResult, error)
}

type BatchesHandler struct {
	service BatchActions
}

func NewBatchesHandler(service BatchActions) *BatchesHandler {
	return &BatchesHandler{service: service}
}

// SaveBatch godoc
// @Summary     Save workflow state
// @Description Saves the state under its current batch, creating the batch on first save
// @Tags        batches
// @Accept      json
// @Produce     json
// @Param       request body models.StateRequest true "State"
// @Success     200 {object} models.WorkflowResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /batches [post]
func (h *BatchesHandler) SaveBatch(c *gin.Context) {
	var req models.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res := h.service.SaveState(c.Request.Context(), req.State)
	if !res.Saved {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "failed to save batch",
			Message: models.ErrStoreUnavailable.Error(),
		})
		return
	}
	respond(c, res)
}

// ListBatches godoc
// @Summary     List batches
// @Description Lists saved batches, most recently updated first
// @Tags        batches
// @Produce     json
// @Success     200 {object} models.BatchListResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /batches [get]
func (h *BatchesHandler) ListBatches(c *gin.Context) {
	batches, err := h.service.ListBatches(c.Request.Context())
	if err != nil {
		writeError(c, "failed to list batches", err)
		return
	}

	out := models.BatchListResponse{Batches: make([]models.BatchSummary, 0, len(batches))}
	for _, b := range batches {
		out.Batches = append(out.Batches, models.BatchSummary{
			ID:           b.ID.String(),
			BatchNumber:  b.BatchNumber,
			ThumbnailURL: b.ThumbnailURL,
			Summary:      b.Summary(),
			CreatedAt:    b.CreatedAt,
			UpdatedAt:    b.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// OpenBatch godoc
// @Summary     Reopen a batch
// @Description Loads a saved batch and restores saved product details onto its items
// @Tags        batches
// @Produce     json
// @Param       batch_id path string true "Batch ID"
// @Success     200 {object} models.WorkflowResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /batches/{batch_id} [get]
func (h *BatchesHandler) OpenBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("batch_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid batch id"})
		return
	}

	res, err := h.service.OpenBatch(c.Request.Context(), batchID)
	if err != nil {
		writeError(c, "failed to open batch", err)
		return
	}
	respond(c, res)
}

// Finalize godoc
// @Summary     Finalize a batch
// @Description Saves the batch and one product per product group of the processed items
// @Tags        batches
// @Accept      json
// @Produce     json
// @Param       request body models.StateRequest true "State"
// @Success     200 {object} models.FinalizeResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /batches/finalize [post]
func (h *BatchesHandler) Finalize(c *gin.Context) {
	var req models.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Finalize(c.Request.Context(), req.State)
	if err != nil {
		writeError(c, "failed to finalize batch", err)
		return
	}
	c.JSON(http.StatusOK, models.FinalizeResponse{
		BatchID: res.BatchID.String(),
		Saved:   res.Saved,
		Failed:  res.Failed,
		Errors:  res.Errors,
	})
}
