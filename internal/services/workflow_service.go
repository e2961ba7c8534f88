package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"inventory-workflow-backend/internal/grouping"
	"inventory-workflow-backend/internal/logger"
	"inventory-workflow-backend/internal/matching"
	"inventory-workflow-backend/internal/models"
	"inventory-workflow-backend/internal/workflow"
)

// RecordStore is everything the service needs from the record store.
type RecordStore interface {
	workflow.BatchStore
	matching.ProductStore

	GetBatch(ctx context.Context, batchID uuid.UUID) (*models.WorkflowBatch, error)
	ListBatches(ctx context.Context) ([]models.WorkflowBatch, error)
	NextBatchNumber(ctx context.Context) (int, error)

	FindProductByImageURL(ctx context.Context, batchID uuid.UUID, url string) (*models.PersistedProduct, error)
	CreateProduct(ctx context.Context, p *models.PersistedProduct) error
	UpdateProductListing(ctx context.Context, p *models.PersistedProduct) error
	ImageExists(ctx context.Context, productID uuid.UUID, url string) (bool, error)
	CreateImage(ctx context.Context, img *models.PersistedImage) error
	DeleteImagesByURL(ctx context.Context, url string) (int64, error)
}

// PresetSource lists category presets in their selection order.
type PresetSource interface {
	ListPresets(ctx context.Context) ([]models.CategoryPreset, error)
}

// ObjectStore removes uploaded image objects.
type ObjectStore interface {
	DeleteFile(ctx context.Context, storagePath string) error
}

// Result is the outcome of a workflow action: the new state, its summary,
// and whether the auto-save reached the store.
type Result struct {
	State   models.WorkflowState
	Summary models.WorkflowSummary
	Saved   bool
}

type WorkflowService struct {
	store   RecordStore
	presets PresetSource
	objects ObjectStore
	tracker *workflow.Tracker
	matcher *matching.Matcher
	log     *logger.Logger
	now     func() time.Time
}

// NewWorkflowService wires the service. objects may be nil when object
// storage is not configured; deletes then skip the storage step.
func NewWorkflowService(
	store RecordStore,
	presets PresetSource,
	objects ObjectStore,
	matcher *matching.Matcher,
	log *logger.Logger,
) *WorkflowService {
	if log == nil {
		log = logger.Nop()
	}
	return &WorkflowService{
		store:   store,
		presets: presets,
		objects: objects,
		tracker: workflow.NewTracker(store, log),
		matcher: matcher,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Upload adds already-stored images as singleton items.
func (s *WorkflowService) Upload(ctx context.Context, state models.WorkflowState, uploads []models.UploadedImage) Result {
	next, _ := workflow.AddUploads(state, uploads)
	return s.SaveState(ctx, next)
}

func (s *WorkflowService) Group(ctx context.Context, state models.WorkflowState, itemIDs []string) (Result, error) {
	next, _, err := workflow.GroupItems(state, itemIDs)
	if err != nil {
		return Result{}, err
	}
	return s.SaveState(ctx, next), nil
}

func (s *WorkflowService) Ungroup(ctx context.Context, state models.WorkflowState, itemIDs []string) (Result, error) {
	next, err := workflow.UngroupItems(state, itemIDs)
	if err != nil {
		return Result{}, err
	}
	return s.SaveState(ctx, next), nil
}

func (s *WorkflowService) Move(ctx context.Context, state models.WorkflowState, itemID, targetGroup string) (Result, error) {
	next, err := workflow.MoveItem(state, itemID, targetGroup)
	if err != nil {
		return Result{}, err
	}
	return s.SaveState(ctx, next), nil
}

// Categorize assigns a category to a group and merges its preset. When
// presets cannot be loaded the category is still assigned.
func (s *WorkflowService) Categorize(ctx context.Context, state models.WorkflowState, groupKey, category string) (Result, error) {
	list, err := s.presets.ListPresets(ctx)
	if err != nil {
		s.log.Warn("preset lookup failed, assigning category only", "category", category, "error", err)
		list = nil
	}

	next, err := workflow.CategorizeGroup(state, groupKey, category, list)
	if err != nil {
		return Result{}, err
	}
	return s.SaveState(ctx, next), nil
}

func (s *WorkflowService) Describe(ctx context.Context, state models.WorkflowState, itemID, voice, generated string) (Result, error) {
	next, err := workflow.Describe(state, itemID, voice, generated)
	if err != nil {
		return Result{}, err
	}
	return s.SaveState(ctx, next), nil
}

// DeleteItem removes an item everywhere: the state, its storage object,
// and any saved image rows pointing at it. Cleanup failures are logged.
func (s *WorkflowService) DeleteItem(ctx context.Context, state models.WorkflowState, itemID string) (Result, error) {
	next, removed, ok := workflow.RemoveItem(state, itemID)
	if !ok {
		return Result{}, fmt.Errorf("item %s: %w", itemID, models.ErrNotFound)
	}

	if removed.StoragePath != "" {
		if s.objects == nil {
			s.log.Warn("object storage not configured, leaving file", "item_id", itemID, "storage_path", removed.StoragePath)
		} else if err := s.objects.DeleteFile(ctx, removed.StoragePath); err != nil {
			s.log.Warn("failed to delete item file", "item_id", itemID, "storage_path", removed.StoragePath, "error", err)
		}
	}
	if removed.PreviewURL != "" {
		if _, err := s.store.DeleteImagesByURL(ctx, removed.PreviewURL); err != nil {
			s.log.Warn("failed to delete saved image rows", "item_id", itemID, "error", err)
		}
	}

	return s.SaveState(ctx, next), nil
}

// Summary derives the summary without saving.
func (s *WorkflowService) Summary(state models.WorkflowState) models.WorkflowSummary {
	return workflow.Snapshot(state)
}

// SaveState auto-saves state under its current batch, creating the batch
// on first save. It never fails; Saved reports whether the store took it.
func (s *WorkflowService) SaveState(ctx context.Context, state models.WorkflowState) Result {
	next := state.Clone()
	saved := false

	if next.CurrentBatchNumber == 0 && next.CurrentBatchID == nil {
		n, err := s.store.NextBatchNumber(ctx)
		if err != nil {
			s.log.Warn("failed to allocate batch number", "error", err)
			return Result{State: next, Summary: workflow.Snapshot(next)}
		}
		next.CurrentBatchNumber = n
	}

	id, ok := s.tracker.AutoSave(ctx, next.CurrentBatchID, next.CurrentBatchNumber, next)
	if ok {
		next.CurrentBatchID = &id
		saved = true
	}

	return Result{State: next, Summary: workflow.Snapshot(next), Saved: saved}
}

// OpenBatch loads a saved batch and reconciles saved products back onto
// its processed items.
func (s *WorkflowService) OpenBatch(ctx context.Context, batchID uuid.UUID) (Result, error) {
	batch, err := s.store.GetBatch(ctx, batchID)
	if err != nil {
		return Result{}, err
	}

	var state models.WorkflowState
	if len(batch.WorkflowState) > 0 {
		if err := json.Unmarshal(batch.WorkflowState, &state); err != nil {
			return Result{}, fmt.Errorf("decoding state of batch %s: %w", batchID, err)
		}
	}
	state.CurrentBatchID = &batch.ID
	state.CurrentBatchNumber = batch.BatchNumber

	state = s.matcher.Reconcile(ctx, *batch, state)
	return Result{State: state, Summary: workflow.Snapshot(state)}, nil
}

func (s *WorkflowService) ListBatches(ctx context.Context) ([]models.WorkflowBatch, error) {
	return s.store.ListBatches(ctx)
}

// FinalizeResult reports an explicit save of every product in a batch.
type FinalizeResult struct {
	BatchID uuid.UUID
	Saved   int
	Failed  int
	Errors  []string
}

// Finalize explicitly saves the batch and one product row per product group
// of the processed items. Re-running it updates the same product rows and
// skips image rows that already exist. A failed batch save is returned as an
// error; per-product failures are counted.
func (s *WorkflowService) Finalize(ctx context.Context, state models.WorkflowState) (FinalizeResult, error) {
	number := state.CurrentBatchNumber
	if number == 0 && state.CurrentBatchID == nil {
		n, err := s.store.NextBatchNumber(ctx)
		if err != nil {
			return FinalizeResult{}, err
		}
		number = n
	}

	batchID, err := s.tracker.Save(ctx, state.CurrentBatchID, number, state)
	if err != nil {
		return FinalizeResult{}, err
	}

	result := FinalizeResult{BatchID: batchID}
	for _, group := range grouping.Groups(state.ProcessedItems) {
		if err := s.saveProduct(ctx, batchID, group); err != nil {
			s.log.Warn("failed to save product", "batch_id", batchID, "group", group.Key, "error", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("group %s: %v", group.Key, err))
			continue
		}
		result.Saved++
	}
	return result, nil
}

func (s *WorkflowService) saveProduct(ctx context.Context, batchID uuid.UUID, group grouping.ProductGroup) error {
	now := s.now()
	lead := group.Items[0]

	existing, err := s.findExisting(ctx, batchID, group.Items)
	if err != nil {
		return err
	}

	product := existing
	if product == nil {
		product = &models.PersistedProduct{
			ID:        uuid.New(),
			BatchID:   uuid.NullUUID{UUID: batchID, Valid: true},
			CreatedAt: now,
		}
	}
	product.GroupKey = group.Key
	product.Category = lead.Category
	product.SEOTitle = lead.SEOTitle
	product.SEODescription = lead.SEODescription
	product.VoiceDescription = lead.VoiceDescription
	product.GeneratedDescription = lead.GeneratedDescription
	product.Tags = lead.Tags
	product.Price.Valid = lead.Price != nil
	if lead.Price != nil {
		product.Price.Float64 = *lead.Price
	}
	product.UpdatedAt = now

	if existing == nil {
		if err := s.store.CreateProduct(ctx, product); err != nil {
			return err
		}
	} else if err := s.store.UpdateProductListing(ctx, product); err != nil {
		return err
	}

	for pos, item := range group.Items {
		if item.PreviewURL == "" {
			continue
		}
		exists, err := s.store.ImageExists(ctx, product.ID, item.PreviewURL)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.store.CreateImage(ctx, &models.PersistedImage{
			ID:          uuid.New(),
			ProductID:   product.ID,
			ImageURL:    item.PreviewURL,
			StoragePath: item.StoragePath,
			Position:    pos,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
	}
	return nil
}

// findExisting returns the batch's product already holding one of the
// group's images, or nil.
func (s *WorkflowService) findExisting(ctx context.Context, batchID uuid.UUID, items []models.Item) (*models.PersistedProduct, error) {
	for _, item := range items {
		if item.PreviewURL == "" {
			continue
		}
		p, err := s.store.FindProductByImageURL(ctx, batchID, item.PreviewURL)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, nil
}
