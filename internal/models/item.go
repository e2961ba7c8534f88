package models

// MatchConfidence records how a reopened item was paired with a saved product.
type MatchConfidence string

const (
	MatchNone       MatchConfidence = ""
	MatchTitle      MatchConfidence = "title"
	MatchImageURL   MatchConfidence = "image_url"
	MatchPositional MatchConfidence = "positional"
)

// Item is one uploaded image plus everything derived for its listing.
// Nullable numbers and booleans are pointers; empty strings mean unset.
type Item struct {
	ID          string `json:"id"`
	GroupID     string `json:"groupId,omitempty"`
	PreviewURL  string `json:"preview,omitempty"`
	StoragePath string `json:"storagePath,omitempty"`
	FileName    string `json:"fileName,omitempty"`

	Category        string          `json:"category,omitempty"`
	PresetSnapshot  *PresetSnapshot `json:"presetSnapshot,omitempty"`
	MatchConfidence MatchConfidence `json:"matchConfidence,omitempty"`

	// Descriptions
	VoiceDescription     string   `json:"voiceDescription,omitempty"`
	GeneratedDescription string   `json:"generatedDescription,omitempty"`
	SEOTitle             string   `json:"seoTitle,omitempty"`
	SEODescription       string   `json:"seoDescription,omitempty"`
	Tags                 []string `json:"tags,omitempty"`

	// Pricing
	Price          *float64 `json:"price,omitempty"`
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty"`
	CostPerItem    *float64 `json:"costPerItem,omitempty"`
	SKU            string   `json:"sku,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`

	// Attributes
	Brand       string `json:"brand,omitempty"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Flaws       string `json:"flaws,omitempty"`
	Material    string `json:"material,omitempty"`
	Care        string `json:"care,omitempty"`
	ProductType string `json:"productType,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	Era         string `json:"era,omitempty"`
	Style       string `json:"style,omitempty"`
	Pattern     string `json:"pattern,omitempty"`

	// Measurements as entered, keyed by measurement name ("chest", "inseam").
	Measurements map[string]string `json:"measurements,omitempty"`

	// Packaging
	Weight        *float64 `json:"weight,omitempty"`
	WeightUnit    string   `json:"weightUnit,omitempty"`
	PackageType   string   `json:"packageType,omitempty"`
	PackageLength *float64 `json:"packageLength,omitempty"`
	PackageWidth  *float64 `json:"packageWidth,omitempty"`
	PackageHeight *float64 `json:"packageHeight,omitempty"`

	// Classification
	Gender          string `json:"gender,omitempty"`
	AgeGroup        string `json:"ageGroup,omitempty"`
	GoogleCategory  string `json:"googleCategory,omitempty"`
	TaxCode         string `json:"taxCode,omitempty"`
	HarmonizedCode  string `json:"harmonizedCode,omitempty"`
	CountryOfOrigin string `json:"countryOfOrigin,omitempty"`

	// Policy
	ReturnPolicy              string `json:"returnPolicy,omitempty"`
	ShippingProfile           string `json:"shippingProfile,omitempty"`
	InventoryPolicy           string `json:"inventoryPolicy,omitempty"`
	ContinueSellingOutOfStock *bool  `json:"continueSellingOutOfStock,omitempty"`
	RequiresShipping          *bool  `json:"requiresShipping,omitempty"`

	// Marketing
	Collection   string `json:"collection,omitempty"`
	SalesChannel string `json:"salesChannel,omitempty"`
	Status       string `json:"status,omitempty"`
	CustomLabel  string `json:"customLabel,omitempty"`
}

// Clone returns a deep copy so reducers never share slices or maps with
// their input.
func (i Item) Clone() Item {
	out := i
	if i.Tags != nil {
		out.Tags = append([]string(nil), i.Tags...)
	}
	if i.Measurements != nil {
		out.Measurements = make(map[string]string, len(i.Measurements))
		for k, v := range i.Measurements {
			out.Measurements[k] = v
		}
	}
	if i.PresetSnapshot != nil {
		snap := i.PresetSnapshot.Clone()
		out.PresetSnapshot = &snap
	}
	return out
}

// CloneItems deep-copies a collection, preserving nil.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// UploadedImage is what the upload collaborator hands over once the binary
// is already in object storage.
type UploadedImage struct {
	PreviewURL  string `json:"preview" binding:"required"`
	StoragePath string `json:"storagePath"`
	FileName    string `json:"fileName"`
}
