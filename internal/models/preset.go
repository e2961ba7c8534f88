package models

import "time"

// CategoryPreset bundles default listing values for one category name.
type CategoryPreset struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
	DisplayName  string `json:"display_name"`
	IsActive     bool   `json:"is_active"`

	SuggestedPriceMin *float64 `json:"suggested_price_min,omitempty"`
	SuggestedPriceMax *float64 `json:"suggested_price_max,omitempty"`
	DefaultWeight     *float64 `json:"default_weight,omitempty"`
	WeightUnit        string   `json:"weight_unit,omitempty"`

	RequiresShipping          *bool `json:"requires_shipping,omitempty"`
	ContinueSellingOutOfStock *bool `json:"continue_selling_out_of_stock,omitempty"`

	MeasurementTemplate []string `json:"measurement_template,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`

	// SEO templates may reference {category} and {brand}.
	SEOTitleTemplate       string `json:"seo_title_template,omitempty"`
	SEODescriptionTemplate string `json:"seo_description_template,omitempty"`

	DefaultMaterial string `json:"default_material,omitempty"`
	DefaultCare     string `json:"default_care,omitempty"`
	ProductType     string `json:"product_type,omitempty"`
	DefaultBrand    string `json:"default_brand,omitempty"`
	Vendor          string `json:"vendor,omitempty"`

	PackageType   string   `json:"package_type,omitempty"`
	PackageLength *float64 `json:"package_length,omitempty"`
	PackageWidth  *float64 `json:"package_width,omitempty"`
	PackageHeight *float64 `json:"package_height,omitempty"`

	Gender          string `json:"gender,omitempty"`
	AgeGroup        string `json:"age_group,omitempty"`
	GoogleCategory  string `json:"google_category,omitempty"`
	TaxCode         string `json:"tax_code,omitempty"`
	HarmonizedCode  string `json:"harmonized_code,omitempty"`
	CountryOfOrigin string `json:"country_of_origin,omitempty"`

	ReturnPolicy    string `json:"return_policy,omitempty"`
	ShippingProfile string `json:"shipping_profile,omitempty"`
	InventoryPolicy string `json:"inventory_policy,omitempty"`

	Collection   string `json:"collection,omitempty"`
	SalesChannel string `json:"sales_channel,omitempty"`
	CustomLabel  string `json:"custom_label,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PresetSnapshot is provenance only: which preset supplied an item's
// defaults and which fields currently hold the preset's value.
type PresetSnapshot struct {
	PresetID            string   `json:"presetId"`
	DisplayName         string   `json:"displayName"`
	MeasurementTemplate []string `json:"measurementTemplate,omitempty"`
	AppliedFields       []string `json:"appliedFields,omitempty"`
}

func (s PresetSnapshot) Clone() PresetSnapshot {
	out := s
	if s.MeasurementTemplate != nil {
		out.MeasurementTemplate = append([]string(nil), s.MeasurementTemplate...)
	}
	if s.AppliedFields != nil {
		out.AppliedFields = append([]string(nil), s.AppliedFields...)
	}
	return out
}
