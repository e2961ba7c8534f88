// Package presets fills category defaults into items. A value the user has
// entered always wins over the preset; the preset only fills blanks.
package presets

import (
	"slices"
	"strings"

	"inventory-workflow-backend/internal/models"
)

// Select returns the first active preset whose category name matches,
// ignoring case and surrounding space. The preset list order decides ties.
func Select(categoryName string, presets []models.CategoryPreset) (models.CategoryPreset, bool) {
	name := strings.TrimSpace(categoryName)
	for _, p := range presets {
		if p.IsActive && strings.EqualFold(strings.TrimSpace(p.CategoryName), name) {
			return p, true
		}
	}
	return models.CategoryPreset{}, false
}

// Apply assigns categoryName to every item and merges the matching preset's
// defaults into each one. Without a matching preset only the category is set
// and any snapshot from an earlier preset is dropped. The input slice is not
// modified.
func Apply(items []models.Item, categoryName string, presets []models.CategoryPreset) []models.Item {
	category := strings.TrimSpace(categoryName)
	preset, ok := Select(category, presets)

	out := models.CloneItems(items)
	for i := range out {
		out[i].Category = category
		if !ok {
			out[i].PresetSnapshot = nil
			continue
		}
		merge(&out[i], preset)
	}
	return out
}

func merge(item *models.Item, p models.CategoryPreset) {
	m := &merger{}

	m.num("price", &item.Price, p.SuggestedPriceMin)
	m.num("weight", &item.Weight, p.DefaultWeight)
	m.str("weightUnit", &item.WeightUnit, p.WeightUnit)

	m.str("material", &item.Material, p.DefaultMaterial)
	m.str("care", &item.Care, p.DefaultCare)
	m.str("productType", &item.ProductType, p.ProductType)
	m.str("brand", &item.Brand, p.DefaultBrand)
	m.str("vendor", &item.Vendor, p.Vendor)

	m.str("packageType", &item.PackageType, p.PackageType)
	m.num("packageLength", &item.PackageLength, p.PackageLength)
	m.num("packageWidth", &item.PackageWidth, p.PackageWidth)
	m.num("packageHeight", &item.PackageHeight, p.PackageHeight)

	m.str("gender", &item.Gender, p.Gender)
	m.str("ageGroup", &item.AgeGroup, p.AgeGroup)
	m.str("googleCategory", &item.GoogleCategory, p.GoogleCategory)
	m.str("taxCode", &item.TaxCode, p.TaxCode)
	m.str("harmonizedCode", &item.HarmonizedCode, p.HarmonizedCode)
	m.str("countryOfOrigin", &item.CountryOfOrigin, p.CountryOfOrigin)

	m.str("returnPolicy", &item.ReturnPolicy, p.ReturnPolicy)
	m.str("shippingProfile", &item.ShippingProfile, p.ShippingProfile)
	m.str("inventoryPolicy", &item.InventoryPolicy, p.InventoryPolicy)
	m.flag("continueSellingOutOfStock", &item.ContinueSellingOutOfStock, p.ContinueSellingOutOfStock)
	m.flag("requiresShipping", &item.RequiresShipping, p.RequiresShipping)

	m.str("collection", &item.Collection, p.Collection)
	m.str("salesChannel", &item.SalesChannel, p.SalesChannel)
	m.str("customLabel", &item.CustomLabel, p.CustomLabel)

	m.tags(&item.Tags, p.Keywords)

	// Templates render after brand so {brand} sees the merged value.
	m.str("seoTitle", &item.SEOTitle, render(p.SEOTitleTemplate, item))
	m.str("seoDescription", &item.SEODescription, render(p.SEODescriptionTemplate, item))

	item.PresetSnapshot = &models.PresetSnapshot{
		PresetID:            p.ID,
		DisplayName:         p.DisplayName,
		MeasurementTemplate: slices.Clone(p.MeasurementTemplate),
		AppliedFields:       m.applied,
	}
}

func render(template string, item *models.Item) string {
	if template == "" {
		return ""
	}
	r := strings.NewReplacer("{category}", item.Category, "{brand}", item.Brand)
	return strings.Join(strings.Fields(r.Replace(template)), " ")
}

// merger records the fields that hold the preset's value after the merge,
// whether filled now or on an earlier run, so re-applying is stable.
type merger struct {
	applied []string
}

func (m *merger) str(field string, dst *string, def string) {
	if def == "" {
		return
	}
	if *dst == "" {
		*dst = def
	}
	if *dst == def {
		m.applied = append(m.applied, field)
	}
}

func (m *merger) num(field string, dst **float64, def *float64) {
	if def == nil {
		return
	}
	if *dst == nil {
		v := *def
		*dst = &v
	}
	if **dst == *def {
		m.applied = append(m.applied, field)
	}
}

// flag coalesces on nil only: an explicit false is a user value.
func (m *merger) flag(field string, dst **bool, def *bool) {
	if def == nil {
		return
	}
	if *dst == nil {
		v := *def
		*dst = &v
	}
	if **dst == *def {
		m.applied = append(m.applied, field)
	}
}

// tags replaces an empty list with the preset keywords; lists are never unioned.
func (m *merger) tags(dst *[]string, def []string) {
	if len(def) == 0 {
		return
	}
	if len(*dst) == 0 {
		*dst = slices.Clone(def)
	}
	if slices.Equal(*dst, def) {
		m.applied = append(m.applied, "tags")
	}
}
