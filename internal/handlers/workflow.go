package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"inventory-workflow-backend/internal/models"
	"inventory-workflow-backend/internal/services"
)

// WorkflowActions is the part of the workflow service the HTTP layer drives.
type WorkflowActions interface {
	Upload(ctx context.Context, state models.WorkflowState, uploads []models.UploadedImage) services.Result
	Group(ctx context.Context, state models.WorkflowState, itemIDs []string) (services.Result, error)
	Ungroup(ctx context.Context, state models.WorkflowState, itemIDs []string) (services.Result, error)
	Move(ctx context.Context, state models.WorkflowState, itemID, targetGroup string) (services.Result, error)
	Categorize(ctx context.Context, state models.WorkflowState, groupKey, category string) (services.Result, error)
	Describe(ctx context.Context, state models.WorkflowState, itemID, voice, generated string) (services.Result, error)
	DeleteItem(ctx context.Context, state models.WorkflowState, itemID string) (services.Result, error)
	Summary(state models.WorkflowState) models.WorkflowSummary
}

type WorkflowHandler struct {
	service WorkflowActions
}

func NewWorkflowHandler(service WorkflowActions) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

func respond(c *gin.Context, res services.Result) {
	out := models.WorkflowResponse{
		State:   res.State,
		Summary: res.Summary,
		Saved:   res.Saved,
	}
	if res.State.CurrentBatchID != nil {
		out.BatchID = res.State.CurrentBatchID.String()
	}
	c.JSON(http.StatusOK, out)
}

// Upload godoc
// @Summary     Add uploaded images
// @Description Adds images already stored in object storage as individual items and auto-saves the batch
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.UploadRequest true "State and uploaded images"
// @Success     200 {object} models.WorkflowResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /workflow/upload [post]
func (h *WorkflowHandler) Upload(c *gin.Context) {
	var req models.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	respond(c, h.service.Upload(c.Request.Context(), req.State, req.Images))
}

// Group godoc
// @Summary     Group items
// @Description Groups the selected items into one product, anchored on the first selected item
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.SelectionRequest true "State and selected item ids"
// @Success     200 {object} models.WorkflowResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /workflow/group [post]
func (h *WorkflowHandler) Group(c *gin.Context) {
	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.Group(c.Request.Context(), req.State, req.ItemIDs)
	if err != nil {
		writeError(c, "failed to group items", err)
		return
	}
	respond(c, res)
}

// Ungroup godoc
// @Summary     Ungroup items
// @Description Makes the selected items individual again and clears their category
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.SelectionRequest true "State and selected item ids"
// @Success     200 {object} models.WorkflowResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /workflow/ungroup [post]
func (h *WorkflowHandler) Ungroup(c *gin.Context) {
	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.Ungroup(c.Request.Context(), req.State, req.ItemIDs)
	if err != nil {
		writeError(c, "failed to ungroup items", err)
		return
	}
	respond(c, res)
}

// Move godoc
// @Summary     Move an item
// @Description Moves an item into an existing group, or makes it individual when no target is given
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.MoveRequest true "State, item and target group"
// @Success     200 {object} models.WorkflowResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /workflow/move [post]
func (h *WorkflowHandler) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.Move(c.Request.Context(), req.State, req.ItemID, req.TargetGroup)
	if err != nil {
		writeError(c, "failed to move item", err)
		return
	}
	respond(c, res)
}

// Categorize godoc
// @Summary     Categorize a group
// @Description Assigns a category to every member of a group and merges the category preset
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.CategorizeRequest true "State, group and category"
// @Success     200 {object} models.WorkflowResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /workflow/categorize [post]
func (h *WorkflowHandler) Categorize(c *gin.Context) {
	var req models.CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.Categorize(c.Request.Context(), req.State, req.GroupID, req.Category)
	if err != nil {
		writeError(c, "failed to categorize group", err)
		return
	}
	respond(c, res)
}

// Describe godoc
// @Summary     Describe an item
// @Description Records voice and generated descriptions and moves the item to processed
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.DescribeRequest true "State, item and descriptions"
// @Success     200 {object} models.WorkflowResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /workflow/describe [post]
func (h *WorkflowHandler) Describe(c *gin.Context) {
	var req models.DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.Describe(c.Request.Context(), req.State, req.ItemID, req.VoiceDescription, req.GeneratedDescription)
	if err != nil {
		writeError(c, "failed to describe item", err)
		return
	}
	respond(c, res)
}

// DeleteItem godoc
// @Summary     Delete an item
// @Description Removes an item from the workflow, its storage object and any saved image rows
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.ItemRequest true "State and item"
// @Success     200 {object} models.WorkflowResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /workflow/delete-item [post]
func (h *WorkflowHandler) DeleteItem(c *gin.Context) {
	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.service.DeleteItem(c.Request.Context(), req.State, req.ItemID)
	if err != nil {
		writeError(c, "failed to delete item", err)
		return
	}
	respond(c, res)
}

// Summary godoc
// @Summary     Summarize state
// @Description Returns the derived summary of a state without saving it
// @Tags        workflow
// @Accept      json
// @Produce     json
// @Param       request body models.StateRequest true "State"
// @Success     200 {object} models.WorkflowSummary
// @Router      /workflow/summary [post]
func (h *WorkflowHandler) Summary(c *gin.Context) {
	var req models.StateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.Summary(req.State))
}
