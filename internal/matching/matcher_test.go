package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"inventory-workflow-backend/internal/models"
)

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) ListProductsByBatch(ctx context.Context, batchID uuid.UUID) ([]models.PersistedProduct, error) {
	args := m.Called(ctx, batchID)
	products, _ := args.Get(0).([]models.PersistedProduct)
	return products, args.Error(1)
}

func (m *mockProductStore) ListProductsCreatedBetween(ctx context.Context, from, to time.Time) ([]models.PersistedProduct, error) {
	args := m.Called(ctx, from, to)
	products, _ := args.Get(0).([]models.PersistedProduct)
	return products, args.Error(1)
}

var batchCreated = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func product(title, generated string, urls ...string) models.PersistedProduct {
	p := models.PersistedProduct{
		ID:                   uuid.New(),
		SEOTitle:             title,
		GeneratedDescription: generated,
		CreatedAt:            batchCreated.Add(time.Hour),
	}
	for i, u := range urls {
		p.Images = append(p.Images, models.PersistedImage{ID: uuid.New(), ProductID: p.ID, ImageURL: u, Position: i})
	}
	return p
}

func reopened(items ...models.Item) (models.WorkflowBatch, models.WorkflowState) {
	return models.WorkflowBatch{ID: uuid.New(), CreatedAt: batchCreated},
		models.WorkflowState{ProcessedItems: items}
}

func TestReconcile_OrphanRecoveryByTitle(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened(models.Item{ID: "a", SEOTitle: "Vintage Tee", PreviewURL: "https://cdn.test/a.jpg"})

	orphan := product("Vintage Tee", "Soft cotton tee from the 90s.", "https://cdn.test/a.jpg")
	store.On("ListProductsByBatch", mock.Anything, batch.ID).Return(nil, nil)
	store.On("ListProductsCreatedBetween", mock.Anything, batchCreated.Add(-24*time.Hour), batchCreated.Add(24*time.Hour)).
		Return([]models.PersistedProduct{orphan}, nil)

	out := NewMatcher(store, nil, 0).Reconcile(context.Background(), batch, state)

	require.Len(t, out.ProcessedItems, 1)
	assert.Equal(t, "Soft cotton tee from the 90s.", out.ProcessedItems[0].GeneratedDescription)
	assert.Equal(t, models.MatchTitle, out.ProcessedItems[0].MatchConfidence)
	assert.Empty(t, state.ProcessedItems[0].GeneratedDescription)
	store.AssertExpectations(t)
}

func TestReconcile_LinkedProductsSkipOrphanSearch(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened(models.Item{ID: "a", SEOTitle: "Wool Coat", PreviewURL: "https://cdn.test/a.jpg"})

	linked := product("Wool Coat", "linked description")
	store.On("ListProductsByBatch", mock.Anything, batch.ID).Return([]models.PersistedProduct{linked}, nil)

	out := NewMatcher(store, nil, 0).Reconcile(context.Background(), batch, state)

	assert.Equal(t, "linked description", out.ProcessedItems[0].GeneratedDescription)
	store.AssertNotCalled(t, "ListProductsCreatedBetween", mock.Anything, mock.Anything, mock.Anything)
}

func TestCandidates_OrphansNeedSharedImage(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened(models.Item{ID: "a", PreviewURL: "https://cdn.test/a.jpg"})

	sharing := product("A", "", "https://cdn.test/other.jpg", "https://cdn.test/a.jpg")
	unrelated := product("B", "", "https://cdn.test/b.jpg")
	store.On("ListProductsByBatch", mock.Anything, batch.ID).Return([]models.PersistedProduct{}, nil)
	store.On("ListProductsCreatedBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.PersistedProduct{unrelated, sharing}, nil)

	got, phase, err := NewMatcher(store, nil, time.Hour).Candidates(context.Background(), batch, state.ProcessedItems)
	require.NoError(t, err)
	assert.Equal(t, PhaseOrphan, phase)
	require.Len(t, got, 1)
	assert.Equal(t, sharing.ID, got[0].ID)
}

func TestReconcile_StoreFailureReturnsStateUnchanged(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened(models.Item{ID: "a", SEOTitle: "Tee"})
	store.On("ListProductsByBatch", mock.Anything, batch.ID).Return(nil, errors.New("connection reset"))

	out := NewMatcher(store, nil, 0).Reconcile(context.Background(), batch, state)
	assert.Equal(t, state, out)
}

func TestReconcile_PanicReturnsStateUnchanged(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened(models.Item{ID: "a"})
	store.On("ListProductsByBatch", mock.Anything, batch.ID).Run(func(mock.Arguments) {
		panic("malformed row")
	}).Return(nil, nil)

	out := NewMatcher(store, nil, 0).Reconcile(context.Background(), batch, state)
	assert.Equal(t, state, out)
}

func TestResolve_PriorityOrder(t *testing.T) {
	byTitle := product("Denim Jacket", "title match")
	byURL := product("Something Else", "url match", "https://cdn.test/b.jpg")
	fallback := product("Unrelated", "positional match")

	items := []models.Item{
		{ID: "a", SEOTitle: "  Denim Jacket ", PreviewURL: "https://cdn.test/b.jpg"},
		{ID: "b", PreviewURL: "https://cdn.test/b.jpg"},
		{ID: "c"},
		{ID: "d"},
	}
	out := Resolve(items, []models.PersistedProduct{byTitle, byURL, fallback})

	assert.Equal(t, "title match", out[0].GeneratedDescription)
	assert.Equal(t, models.MatchTitle, out[0].MatchConfidence)
	assert.Equal(t, "url match", out[1].GeneratedDescription)
	assert.Equal(t, models.MatchImageURL, out[1].MatchConfidence)
	assert.Equal(t, "positional match", out[2].GeneratedDescription)
	assert.Equal(t, models.MatchPositional, out[2].MatchConfidence)
	// fourth item has no fourth candidate
	assert.Empty(t, out[3].GeneratedDescription)
	assert.Equal(t, models.MatchNone, out[3].MatchConfidence)
}

func TestResolve_NeverOverwritesPresentData(t *testing.T) {
	p := product("Tee", "stored generated")
	p.VoiceDescription = "stored voice"
	p.SEODescription = "stored seo"
	p.Tags = []string{"stored"}

	items := []models.Item{{
		ID:               "a",
		SEOTitle:         "Tee",
		VoiceDescription: "my own words",
		Tags:             []string{"mine"},
	}}
	out := Resolve(items, []models.PersistedProduct{p})

	assert.Equal(t, "my own words", out[0].VoiceDescription)
	assert.Equal(t, []string{"mine"}, out[0].Tags)
	assert.Equal(t, "stored generated", out[0].GeneratedDescription)
	assert.Equal(t, "stored seo", out[0].SEODescription)
}

func TestReconcile_NoProcessedItemsSkipsStore(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened()
	out := NewMatcher(store, nil, 0).Reconcile(context.Background(), batch, state)
	assert.Equal(t, state, out)
	store.AssertNotCalled(t, "ListProductsByBatch", mock.Anything, mock.Anything)
}

func TestResolve_ClearsStaleConfidence(t *testing.T) {
	items := []models.Item{
		{ID: "a", MatchConfidence: models.MatchPositional},
		{ID: "b", MatchConfidence: models.MatchPositional},
	}
	out := Resolve(items, []models.PersistedProduct{product("Tee", "only one")})

	assert.Equal(t, models.MatchPositional, out[0].MatchConfidence)
	assert.Equal(t, models.MatchNone, out[1].MatchConfidence)
	assert.Equal(t, models.MatchPositional, items[1].MatchConfidence)
}

func TestReconcile_NoCandidatesClearsStaleConfidence(t *testing.T) {
	store := &mockProductStore{}
	batch, state := reopened(models.Item{ID: "a", PreviewURL: "https://cdn.test/a.jpg", MatchConfidence: models.MatchPositional})
	store.On("ListProductsByBatch", mock.Anything, batch.ID).Return(nil, nil)
	store.On("ListProductsCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	out := NewMatcher(store, nil, 0).Reconcile(context.Background(), batch, state)

	require.Len(t, out.ProcessedItems, 1)
	assert.Equal(t, models.MatchNone, out.ProcessedItems[0].MatchConfidence)
}
