// Package matching reconciles saved product rows back onto the items of a
// reopened workflow batch.
package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"inventory-workflow-backend/internal/logger"
	"inventory-workflow-backend/internal/models"
)

// DefaultWindow bounds the orphan search around a batch's creation time.
const DefaultWindow = 24 * time.Hour

// ProductStore is the read side of the record store the matcher needs.
// Both queries return products with their images attached, in a stable
// order.
type ProductStore interface {
	ListProductsByBatch(ctx context.Context, batchID uuid.UUID) ([]models.PersistedProduct, error)
	ListProductsCreatedBetween(ctx context.Context, from, to time.Time) ([]models.PersistedProduct, error)
}

// Phase names which candidate query produced the match set.
type Phase string

const (
	PhaseLinked Phase = "linked"
	PhaseOrphan Phase = "orphan"
)

type Matcher struct {
	store  ProductStore
	log    *logger.Logger
	window time.Duration
}

func NewMatcher(store ProductStore, log *logger.Logger, window time.Duration) *Matcher {
	if log == nil {
		log = logger.Nop()
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Matcher{store: store, log: log, window: window}
}

// Reconcile overlays saved listing data onto the processed items of state.
// It is best-effort: any failure returns state unchanged.
func (m *Matcher) Reconcile(ctx context.Context, batch models.WorkflowBatch, state models.WorkflowState) (result models.WorkflowState) {
	result = state
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn("reconcile aborted", "batch_id", batch.ID, "panic", r)
			result = state
		}
	}()

	if len(state.ProcessedItems) == 0 {
		return state
	}

	candidates, phase, err := m.Candidates(ctx, batch, state.ProcessedItems)
	if err != nil {
		m.log.Warn("reconcile skipped", "batch_id", batch.ID, "error", err)
		return state
	}
	items := Resolve(state.ProcessedItems, candidates)
	for _, item := range items {
		if item.MatchConfidence == models.MatchPositional {
			m.log.Warn("item matched by position only", "batch_id", batch.ID, "item_id", item.ID, "phase", phase)
		}
	}

	out := state.Clone()
	out.ProcessedItems = items
	return out
}

// Candidates returns the products linked to the batch, or when none are
// linked, the orphan products created near the batch that share an image
// URL with one of items.
func (m *Matcher) Candidates(ctx context.Context, batch models.WorkflowBatch, items []models.Item) ([]models.PersistedProduct, Phase, error) {
	linked, err := m.store.ListProductsByBatch(ctx, batch.ID)
	if err != nil {
		return nil, PhaseLinked, fmt.Errorf("listing products for batch %s: %w", batch.ID, err)
	}
	if len(linked) > 0 {
		return linked, PhaseLinked, nil
	}

	from := batch.CreatedAt.Add(-m.window)
	to := batch.CreatedAt.Add(m.window)
	nearby, err := m.store.ListProductsCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, PhaseOrphan, fmt.Errorf("listing products created near batch %s: %w", batch.ID, err)
	}

	previews := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.PreviewURL != "" {
			previews[item.PreviewURL] = struct{}{}
		}
	}

	var orphans []models.PersistedProduct
	for _, p := range nearby {
		for _, img := range p.Images {
			if _, ok := previews[img.ImageURL]; ok {
				orphans = append(orphans, p)
				break
			}
		}
	}
	return orphans, PhaseOrphan, nil
}

// Resolve pairs each item with a candidate, first by trimmed SEO title,
// then by preview URL, then by position, and overlays the candidate's
// listing fields wherever the item's own field is empty. Items get a
// MatchConfidence saying which rule paired them; unpaired items have it
// cleared.
func Resolve(items []models.Item, candidates []models.PersistedProduct) []models.Item {
	out := models.CloneItems(items)
	for i := range out {
		out[i].MatchConfidence = models.MatchNone
		product, confidence, ok := pick(out[i], i, candidates)
		if !ok {
			continue
		}
		overlay(&out[i], product)
		out[i].MatchConfidence = confidence
	}
	return out
}

func pick(item models.Item, pos int, candidates []models.PersistedProduct) (models.PersistedProduct, models.MatchConfidence, bool) {
	if title := strings.TrimSpace(item.SEOTitle); title != "" {
		for _, c := range candidates {
			if strings.TrimSpace(c.SEOTitle) == title {
				return c, models.MatchTitle, true
			}
		}
	}
	if item.PreviewURL != "" {
		for _, c := range candidates {
			if c.HasImageURL(item.PreviewURL) {
				return c, models.MatchImageURL, true
			}
		}
	}
	if pos < len(candidates) {
		return candidates[pos], models.MatchPositional, true
	}
	return models.PersistedProduct{}, models.MatchNone, false
}

// overlay never replaces a value present on the item.
func overlay(item *models.Item, p models.PersistedProduct) {
	if item.VoiceDescription == "" {
		item.VoiceDescription = p.VoiceDescription
	}
	if item.GeneratedDescription == "" {
		item.GeneratedDescription = p.GeneratedDescription
	}
	if item.SEOTitle == "" {
		item.SEOTitle = p.SEOTitle
	}
	if item.SEODescription == "" {
		item.SEODescription = p.SEODescription
	}
	if len(item.Tags) == 0 && len(p.Tags) > 0 {
		item.Tags = append([]string(nil), p.Tags...)
	}
}
