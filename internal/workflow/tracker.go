package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"inventory-workflow-backend/internal/logger"
	"inventory-workflow-backend/internal/models"
)

// BatchStore persists workflow batches.
type BatchStore interface {
	CreateBatch(ctx context.Context, batch *models.WorkflowBatch) error
	UpdateBatch(ctx context.Context, batch *models.WorkflowBatch) error
}

// Tracker snapshots workflow state into batch rows.
type Tracker struct {
	store BatchStore
	log   *logger.Logger
	now   func() time.Time
}

func NewTracker(store BatchStore, log *logger.Logger) *Tracker {
	if log == nil {
		log = logger.Nop()
	}
	return &Tracker{
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Save upserts the batch for state. A nil batchID inserts a new row with a
// fresh id; otherwise the existing row is updated in place. The batch id is
// returned either way.
func (t *Tracker) Save(ctx context.Context, batchID *uuid.UUID, batchNumber int, state models.WorkflowState) (uuid.UUID, error) {
	// The stored state never carries its own batch pointer.
	stored := state
	stored.CurrentBatchID = nil
	stored.CurrentBatchNumber = 0
	encoded, err := json.Marshal(stored)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding workflow state: %w", err)
	}

	summary := Snapshot(state)
	now := t.now()
	batch := &models.WorkflowBatch{
		BatchNumber:        batchNumber,
		CurrentStep:        summary.CurrentStep,
		TotalImages:        summary.TotalImages,
		ProductGroupsCount: summary.ProductGroupsCount,
		CategorizedCount:   summary.CategorizedCount,
		ProcessedCount:     summary.ProcessedCount,
		ThumbnailURL:       Thumbnail(state),
		WorkflowState:      encoded,
		UpdatedAt:          now,
	}

	if batchID == nil {
		batch.ID = uuid.New()
		batch.CreatedAt = now
		if err := t.store.CreateBatch(ctx, batch); err != nil {
			return uuid.Nil, fmt.Errorf("creating batch: %w", err)
		}
		return batch.ID, nil
	}

	batch.ID = *batchID
	if err := t.store.UpdateBatch(ctx, batch); err != nil {
		return *batchID, fmt.Errorf("updating batch %s: %w", batchID, err)
	}
	return batch.ID, nil
}

// AutoSave is Save for the frequent per-action path: a failure is logged
// and reported as saved=false, never returned to the caller.
func (t *Tracker) AutoSave(ctx context.Context, batchID *uuid.UUID, batchNumber int, state models.WorkflowState) (uuid.UUID, bool) {
	id, err := t.Save(ctx, batchID, batchNumber, state)
	if err != nil {
		t.log.Warn("auto-save failed", "batch_id", batchID, "batch_number", batchNumber, "error", err)
		if batchID != nil {
			return *batchID, false
		}
		return uuid.Nil, false
	}
	return id, true
}
