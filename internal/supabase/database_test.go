package supabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"inventory-workflow-backend/internal/database"
	"inventory-workflow-backend/internal/models"
)

var base = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T) *DatabaseClient {
	t.Helper()
	return NewDatabaseClient(database.NewTestDB(t), database.DriverSQLite)
}

func createBatch(t *testing.T, d *DatabaseClient, number int, created time.Time) *models.WorkflowBatch {
	t.Helper()
	batch := &models.WorkflowBatch{
		ID:            uuid.New(),
		BatchNumber:   number,
		CurrentStep:   2,
		TotalImages:   1,
		ThumbnailURL:  "https://cdn.test/thumb.jpg",
		WorkflowState: json.RawMessage(`{"uploadedImages":[{"id":"a"}]}`),
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	require.NoError(t, d.CreateBatch(context.Background(), batch))
	return batch
}

func createProduct(t *testing.T, d *DatabaseClient, batchID uuid.NullUUID, title string, created time.Time, urls ...string) *models.PersistedProduct {
	t.Helper()
	ctx := context.Background()
	p := &models.PersistedProduct{
		ID:                   uuid.New(),
		BatchID:              batchID,
		SEOTitle:             title,
		GeneratedDescription: title + " description",
		Tags:                 []string{"vintage"},
		Price:                sql.NullFloat64{Float64: 25, Valid: true},
		CreatedAt:            created,
		UpdatedAt:            created,
	}
	require.NoError(t, d.CreateProduct(ctx, p))
	for i, u := range urls {
		require.NoError(t, d.CreateImage(ctx, &models.PersistedImage{
			ID: uuid.New(), ProductID: p.ID, ImageURL: u, Position: i, CreatedAt: created,
		}))
	}
	return p
}

func TestBatchLifecycle(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	batch := createBatch(t, d, 1, base)

	got, err := d.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.BatchNumber)
	assert.Equal(t, "https://cdn.test/thumb.jpg", got.ThumbnailURL)
	assert.JSONEq(t, `{"uploadedImages":[{"id":"a"}]}`, string(got.WorkflowState))
	assert.True(t, got.CreatedAt.Equal(base))

	batch.CurrentStep = 5
	batch.WorkflowState = json.RawMessage(`{"processedItems":[]}`)
	batch.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, d.UpdateBatch(ctx, batch))

	got, err = d.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.CurrentStep)
	assert.True(t, got.UpdatedAt.Equal(base.Add(time.Hour)))
	assert.True(t, got.CreatedAt.Equal(base))
}

func TestBatchNotFound(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	_, err := d.GetBatch(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = d.UpdateBatch(ctx, &models.WorkflowBatch{ID: uuid.New(), WorkflowState: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestNextBatchNumberAndList(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	n, err := d.NextBatchNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	createBatch(t, d, 1, base)
	createBatch(t, d, 4, base.Add(time.Minute))

	n, err = d.NextBatchNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	batches, err := d.ListBatches(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, 4, batches[0].BatchNumber)
}

func TestListProductsByBatch(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	batch := createBatch(t, d, 1, base)
	linked := uuid.NullUUID{UUID: batch.ID, Valid: true}
	second := createProduct(t, d, linked, "Second", base.Add(2*time.Minute), "https://cdn.test/2.jpg")
	first := createProduct(t, d, linked, "First", base.Add(time.Minute), "https://cdn.test/1a.jpg", "https://cdn.test/1b.jpg")
	createProduct(t, d, uuid.NullUUID{}, "Orphan", base.Add(time.Minute))

	products, err := d.ListProductsByBatch(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)
	assert.Equal(t, []string{"https://cdn.test/1a.jpg", "https://cdn.test/1b.jpg"}, products[0].ImageURLs())
	assert.Equal(t, []string{"vintage"}, products[0].Tags)
	assert.Equal(t, 25.0, products[0].Price.Float64)
	assert.True(t, products[0].BatchID.Valid)
}

func TestListProductsCreatedBetween(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	inside := createProduct(t, d, uuid.NullUUID{}, "Inside", base.Add(-23*time.Hour), "https://cdn.test/in.jpg")
	createProduct(t, d, uuid.NullUUID{}, "Too early", base.Add(-25*time.Hour))
	createProduct(t, d, uuid.NullUUID{}, "Too late", base.Add(25*time.Hour))

	products, err := d.ListProductsCreatedBetween(ctx, base.Add(-24*time.Hour), base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, inside.ID, products[0].ID)
	assert.False(t, products[0].BatchID.Valid)
	assert.True(t, products[0].HasImageURL("https://cdn.test/in.jpg"))
}

func TestProductImagesAndDuplicates(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	batch := createBatch(t, d, 1, base)
	p := createProduct(t, d, uuid.NullUUID{UUID: batch.ID, Valid: true}, "Coat", base, "https://cdn.test/coat.jpg")

	exists, err := d.ImageExists(ctx, p.ID, "https://cdn.test/coat.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = d.ImageExists(ctx, p.ID, "https://cdn.test/other.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := d.FindProductByImageURL(ctx, batch.ID, "https://cdn.test/coat.jpg")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = d.FindProductByImageURL(ctx, batch.ID, "https://cdn.test/other.jpg")
	assert.ErrorIs(t, err, models.ErrNotFound)

	p.SEOTitle = "Wool Coat"
	p.Tags = nil
	p.UpdatedAt = base.Add(time.Hour)
	require.NoError(t, d.UpdateProductListing(ctx, p))
	found, err = d.FindProductByImageURL(ctx, batch.ID, "https://cdn.test/coat.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Wool Coat", found.SEOTitle)
	assert.Empty(t, found.Tags)

	n, err := d.DeleteImagesByURL(ctx, "https://cdn.test/coat.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPresetsRoundTrip(t *testing.T) {
	d := newTestClient(t)
	ctx := context.Background()

	price := 60.0
	shipping := false
	require.NoError(t, d.CreatePreset(ctx, &models.CategoryPreset{
		ID:                  uuid.NewString(),
		CategoryName:        "Outerwear",
		DisplayName:         "Coats",
		IsActive:            true,
		SuggestedPriceMin:   &price,
		RequiresShipping:    &shipping,
		MeasurementTemplate: []string{"chest", "length"},
		Keywords:            []string{"coat"},
		CreatedAt:           base.Add(time.Minute),
	}))
	require.NoError(t, d.CreatePreset(ctx, &models.CategoryPreset{
		ID:           uuid.NewString(),
		CategoryName: "Tops",
		CreatedAt:    base,
	}))

	list, err := d.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tops", list[0].CategoryName)
	assert.False(t, list[0].IsActive)
	assert.Nil(t, list[0].SuggestedPriceMin)

	outer := list[1]
	assert.True(t, outer.IsActive)
	require.NotNil(t, outer.SuggestedPriceMin)
	assert.Equal(t, 60.0, *outer.SuggestedPriceMin)
	require.NotNil(t, outer.RequiresShipping)
	assert.False(t, *outer.RequiresShipping)
	assert.Equal(t, []string{"chest", "length"}, outer.MeasurementTemplate)
	assert.Equal(t, []string{"coat"}, outer.Keywords)
}
