package supabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"inventory-workflow-backend/internal/models"
)

const presetColumns = `id, category_name, display_name, is_active, suggested_price_min, suggested_price_max,
	default_weight, weight_unit, requires_shipping, continue_selling_out_of_stock,
	measurement_template, keywords, seo_title_template, seo_description_template,
	default_material, default_care, product_type, default_brand, vendor,
	package_type, package_length, package_width, package_height,
	gender, age_group, google_category, tax_code, harmonized_code, country_of_origin,
	return_policy, shipping_profile, inventory_policy, collection, sales_channel, custom_label,
	created_at`

// ListPresets returns every category preset, oldest first. Preset selection
// takes the first active match, so this order is part of the contract.
func (d *DatabaseClient) ListPresets(ctx context.Context) ([]models.CategoryPreset, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+presetColumns+`
		FROM category_presets
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, unavailable("failed to list presets", err)
	}
	defer rows.Close()

	var list []models.CategoryPreset
	for rows.Next() {
		var p models.CategoryPreset
		var priceMin, priceMax, weight, length, width, height sql.NullFloat64
		var requiresShipping, continueSelling sql.NullBool
		var template, keywords []byte
		if err := rows.Scan(
			&p.ID, &p.CategoryName, &p.DisplayName, &p.IsActive, &priceMin, &priceMax,
			&weight, &p.WeightUnit, &requiresShipping, &continueSelling,
			&template, &keywords, &p.SEOTitleTemplate, &p.SEODescriptionTemplate,
			&p.DefaultMaterial, &p.DefaultCare, &p.ProductType, &p.DefaultBrand, &p.Vendor,
			&p.PackageType, &length, &width, &height,
			&p.Gender, &p.AgeGroup, &p.GoogleCategory, &p.TaxCode, &p.HarmonizedCode, &p.CountryOfOrigin,
			&p.ReturnPolicy, &p.ShippingProfile, &p.InventoryPolicy, &p.Collection, &p.SalesChannel, &p.CustomLabel,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		p.SuggestedPriceMin = floatPtr(priceMin)
		p.SuggestedPriceMax = floatPtr(priceMax)
		p.DefaultWeight = floatPtr(weight)
		p.PackageLength = floatPtr(length)
		p.PackageWidth = floatPtr(width)
		p.PackageHeight = floatPtr(height)
		p.RequiresShipping = boolPtr(requiresShipping)
		p.ContinueSellingOutOfStock = boolPtr(continueSelling)
		if err := decodeList(template, &p.MeasurementTemplate); err != nil {
			return nil, fmt.Errorf("preset %s measurement template: %w", p.ID, err)
		}
		if err := decodeList(keywords, &p.Keywords); err != nil {
			return nil, fmt.Errorf("preset %s keywords: %w", p.ID, err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CreatePreset inserts a preset row. Used for seeding and tests.
func (d *DatabaseClient) CreatePreset(ctx context.Context, p *models.CategoryPreset) error {
	template, err := json.Marshal(nonNil(p.MeasurementTemplate))
	if err != nil {
		return fmt.Errorf("encoding measurement template: %w", err)
	}
	keywords, err := json.Marshal(nonNil(p.Keywords))
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}
	_, err = d.db.ExecContext(ctx, d.q(`
		INSERT INTO category_presets (`+presetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36)
	`), p.ID, p.CategoryName, p.DisplayName, p.IsActive, p.SuggestedPriceMin, p.SuggestedPriceMax,
		p.DefaultWeight, p.WeightUnit, p.RequiresShipping, p.ContinueSellingOutOfStock,
		string(template), string(keywords), p.SEOTitleTemplate, p.SEODescriptionTemplate,
		p.DefaultMaterial, p.DefaultCare, p.ProductType, p.DefaultBrand, p.Vendor,
		p.PackageType, p.PackageLength, p.PackageWidth, p.PackageHeight,
		p.Gender, p.AgeGroup, p.GoogleCategory, p.TaxCode, p.HarmonizedCode, p.CountryOfOrigin,
		p.ReturnPolicy, p.ShippingProfile, p.InventoryPolicy, p.Collection, p.SalesChannel, p.CustomLabel,
		p.CreatedAt.UTC())
	if err != nil {
		return unavailable("failed to create preset", err)
	}
	return nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func boolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func decodeList(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
