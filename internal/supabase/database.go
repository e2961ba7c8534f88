package supabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"inventory-workflow-backend/internal/database"
	"inventory-workflow-backend/internal/models"
)

// DatabaseClient is the record store for batches, products, images and
// presets. It speaks PostgreSQL in production and SQLite locally.
type DatabaseClient struct {
	db     *sql.DB
	driver string
}

func NewDatabaseClient(db *sql.DB, driver string) *DatabaseClient {
	return &DatabaseClient{db: db, driver: driver}
}

func (d *DatabaseClient) q(query string) string {
	return database.Rebind(d.driver, query)
}

// unavailable marks transport-level failures so callers can tell them from
// validation errors.
func unavailable(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, models.ErrStoreUnavailable, err)
}

const batchColumns = `id, batch_number, current_step, total_images, product_groups_count,
	categorized_count, processed_count, thumbnail_url, workflow_state, created_at, updated_at`

func (d *DatabaseClient) CreateBatch(ctx context.Context, batch *models.WorkflowBatch) error {
	_, err := d.db.ExecContext(ctx, d.q(`
		INSERT INTO workflow_batches (`+batchColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`), batch.ID, batch.BatchNumber, batch.CurrentStep, batch.TotalImages, batch.ProductGroupsCount,
		batch.CategorizedCount, batch.ProcessedCount, nullString(batch.ThumbnailURL),
		string(batch.WorkflowState), batch.CreatedAt.UTC(), batch.UpdatedAt.UTC())
	if err != nil {
		return unavailable("failed to create batch", err)
	}
	return nil
}

// UpdateBatch rewrites the state and derived fields of an existing batch.
func (d *DatabaseClient) UpdateBatch(ctx context.Context, batch *models.WorkflowBatch) error {
	result, err := d.db.ExecContext(ctx, d.q(`
		UPDATE workflow_batches
		SET batch_number = $1, current_step = $2, total_images = $3, product_groups_count = $4,
			categorized_count = $5, processed_count = $6, thumbnail_url = $7,
			workflow_state = $8, updated_at = $9
		WHERE id = $10
	`), batch.BatchNumber, batch.CurrentStep, batch.TotalImages, batch.ProductGroupsCount,
		batch.CategorizedCount, batch.ProcessedCount, nullString(batch.ThumbnailURL),
		string(batch.WorkflowState), batch.UpdatedAt.UTC(), batch.ID)
	if err != nil {
		return unavailable("failed to update batch", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return unavailable("failed to update batch", err)
	}
	if n == 0 {
		return fmt.Errorf("batch %s: %w", batch.ID, models.ErrNotFound)
	}
	return nil
}

func (d *DatabaseClient) GetBatch(ctx context.Context, batchID uuid.UUID) (*models.WorkflowBatch, error) {
	row := d.db.QueryRowContext(ctx, d.q(`
		SELECT `+batchColumns+`
		FROM workflow_batches
		WHERE id = $1
	`), batchID)
	batch, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("batch %s: %w", batchID, models.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("failed to get batch", err)
	}
	return batch, nil
}

// ListBatches returns every batch, most recently modified first.
func (d *DatabaseClient) ListBatches(ctx context.Context) ([]models.WorkflowBatch, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+batchColumns+`
		FROM workflow_batches
		ORDER BY updated_at DESC, batch_number DESC
	`)
	if err != nil {
		return nil, unavailable("failed to list batches", err)
	}
	defer rows.Close()

	var batches []models.WorkflowBatch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, *batch)
	}
	return batches, rows.Err()
}

// NextBatchNumber returns one more than the highest batch number in use.
func (d *DatabaseClient) NextBatchNumber(ctx context.Context) (int, error) {
	var max sql.NullInt64
	if err := d.db.QueryRowContext(ctx, `SELECT MAX(batch_number) FROM workflow_batches`).Scan(&max); err != nil {
		return 0, unavailable("failed to get next batch number", err)
	}
	return int(max.Int64) + 1, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(s scanner) (*models.WorkflowBatch, error) {
	var batch models.WorkflowBatch
	var thumbnail sql.NullString
	var state []byte
	err := s.Scan(
		&batch.ID, &batch.BatchNumber, &batch.CurrentStep, &batch.TotalImages,
		&batch.ProductGroupsCount, &batch.CategorizedCount, &batch.ProcessedCount,
		&thumbnail, &state, &batch.CreatedAt, &batch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	batch.ThumbnailURL = thumbnail.String
	batch.WorkflowState = json.RawMessage(state)
	return &batch, nil
}

const productColumns = `id, batch_id, group_key, category, seo_title, seo_description,
	voice_description, generated_description, tags, price, created_at, updated_at`

// ListProductsByBatch returns the products linked to batchID in creation order.
func (d *DatabaseClient) ListProductsByBatch(ctx context.Context, batchID uuid.UUID) ([]models.PersistedProduct, error) {
	return d.listProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE batch_id = $1
		ORDER BY created_at ASC, id ASC
	`, batchID)
}

// ListProductsCreatedBetween returns products created in [from, to] in
// creation order, linked or not.
func (d *DatabaseClient) ListProductsCreatedBetween(ctx context.Context, from, to time.Time) ([]models.PersistedProduct, error) {
	return d.listProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC, id ASC
	`, from.UTC(), to.UTC())
}

func (d *DatabaseClient) listProducts(ctx context.Context, query string, args ...any) ([]models.PersistedProduct, error) {
	rows, err := d.db.QueryContext(ctx, d.q(query), args...)
	if err != nil {
		return nil, unavailable("failed to list products", err)
	}

	var products []models.PersistedProduct
	for rows.Next() {
		var p models.PersistedProduct
		var tags []byte
		if err := rows.Scan(
			&p.ID, &p.BatchID, &p.GroupKey, &p.Category, &p.SEOTitle, &p.SEODescription,
			&p.VoiceDescription, &p.GeneratedDescription, &tags, &p.Price, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &p.Tags); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to decode tags of product %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, unavailable("failed to list products", err)
	}
	// Release the connection before the image query.
	rows.Close()

	if err := d.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (d *DatabaseClient) attachImages(ctx context.Context, products []models.PersistedProduct) error {
	if len(products) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(products))
	placeholders := make([]string, len(products))
	args := make([]any, len(products))
	for i, p := range products {
		index[p.ID] = i
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = p.ID
	}

	rows, err := d.db.QueryContext(ctx, d.q(`
		SELECT id, product_id, image_url, storage_path, position, created_at
		FROM product_images
		WHERE product_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY position ASC, created_at ASC
	`), args...)
	if err != nil {
		return unavailable("failed to list product images", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.PersistedImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.StoragePath, &img.Position, &img.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}
		if i, ok := index[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	return rows.Err()
}

// FindProductByImageURL returns the batch's product that owns an image
// with url.
func (d *DatabaseClient) FindProductByImageURL(ctx context.Context, batchID uuid.UUID, url string) (*models.PersistedProduct, error) {
	var productID uuid.UUID
	err := d.db.QueryRowContext(ctx, d.q(`
		SELECT p.id
		FROM products p
		JOIN product_images i ON i.product_id = p.id
		WHERE p.batch_id = $1 AND i.image_url = $2
		ORDER BY p.created_at ASC
		LIMIT 1
	`), batchID, url).Scan(&productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product with image %s: %w", url, models.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("failed to find product by image", err)
	}

	products, err := d.listProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, productID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product %s: %w", productID, models.ErrNotFound)
	}
	return &products[0], nil
}

func (d *DatabaseClient) CreateProduct(ctx context.Context, p *models.PersistedProduct) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}
	_, err = d.db.ExecContext(ctx, d.q(`
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`), p.ID, p.BatchID, p.GroupKey, p.Category, p.SEOTitle, p.SEODescription,
		p.VoiceDescription, p.GeneratedDescription, tags, p.Price, p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	if err != nil {
		return unavailable("failed to create product", err)
	}
	return nil
}

// UpdateProductListing rewrites the listing fields of a saved product.
func (d *DatabaseClient) UpdateProductListing(ctx context.Context, p *models.PersistedProduct) error {
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return err
	}
	result, err := d.db.ExecContext(ctx, d.q(`
		UPDATE products
		SET group_key = $1, category = $2, seo_title = $3, seo_description = $4,
			voice_description = $5, generated_description = $6, tags = $7, price = $8, updated_at = $9
		WHERE id = $10
	`), p.GroupKey, p.Category, p.SEOTitle, p.SEODescription, p.VoiceDescription,
		p.GeneratedDescription, tags, p.Price, p.UpdatedAt.UTC(), p.ID)
	if err != nil {
		return unavailable("failed to update product", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return unavailable("failed to update product", err)
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", p.ID, models.ErrNotFound)
	}
	return nil
}

// ImageExists reports whether productID already has an image with url.
func (d *DatabaseClient) ImageExists(ctx context.Context, productID uuid.UUID, url string) (bool, error) {
	var count int
	err := d.db.QueryRowContext(ctx, d.q(`
		SELECT COUNT(*) FROM product_images WHERE product_id = $1 AND image_url = $2
	`), productID, url).Scan(&count)
	if err != nil {
		return false, unavailable("failed to check product image", err)
	}
	return count > 0, nil
}

func (d *DatabaseClient) CreateImage(ctx context.Context, img *models.PersistedImage) error {
	_, err := d.db.ExecContext(ctx, d.q(`
		INSERT INTO product_images (id, product_id, image_url, storage_path, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`), img.ID, img.ProductID, img.ImageURL, img.StoragePath, img.Position, img.CreatedAt.UTC())
	if err != nil {
		return unavailable("failed to create product image", err)
	}
	return nil
}

// DeleteImagesByURL removes every saved image row pointing at url and
// returns how many were removed.
func (d *DatabaseClient) DeleteImagesByURL(ctx context.Context, url string) (int64, error) {
	result, err := d.db.ExecContext(ctx, d.q(`
		DELETE FROM product_images WHERE image_url = $1
	`), url)
	if err != nil {
		return 0, unavailable("failed to delete product images", err)
	}
	return result.RowsAffected()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(b), nil
}
