package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PersistedProduct is a saved listing. BatchID is null for products saved
// before batch linkage existed.
type PersistedProduct struct {
	ID                   uuid.UUID
	BatchID              uuid.NullUUID
	GroupKey             string
	Category             string
	SEOTitle             string
	SEODescription       string
	VoiceDescription     string
	GeneratedDescription string
	Tags                 []string
	Price                sql.NullFloat64
	Images               []PersistedImage
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ImageURLs lists the product's image URLs in position order.
func (p PersistedProduct) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.ImageURL)
	}
	return urls
}

// HasImageURL reports whether any of the product's images has url.
func (p PersistedProduct) HasImageURL(url string) bool {
	if url == "" {
		return false
	}
	for _, img := range p.Images {
		if img.ImageURL == url {
			return true
		}
	}
	return false
}

type PersistedImage struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ImageURL    string
	StoragePath string
	Position    int
	CreatedAt   time.Time
}
