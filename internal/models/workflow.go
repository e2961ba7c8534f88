package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WorkflowState is the whole in-progress session: the four item
// collections plus the batch the session is saved under.
type WorkflowState struct {
	UploadedImages []Item `json:"uploadedImages"`
	GroupedImages  []Item `json:"groupedImages"`
	SortedImages   []Item `json:"sortedImages"`
	ProcessedItems []Item `json:"processedItems"`

	CurrentBatchID     *uuid.UUID `json:"currentBatchId,omitempty"`
	CurrentBatchNumber int        `json:"currentBatchNumber,omitempty"`
}

// Clone deep-copies every collection.
func (s WorkflowState) Clone() WorkflowState {
	out := s
	out.UploadedImages = CloneItems(s.UploadedImages)
	out.GroupedImages = CloneItems(s.GroupedImages)
	out.SortedImages = CloneItems(s.SortedImages)
	out.ProcessedItems = CloneItems(s.ProcessedItems)
	if s.CurrentBatchID != nil {
		id := *s.CurrentBatchID
		out.CurrentBatchID = &id
	}
	return out
}

// MarshalJSON writes unset collections as empty lists, never null.
func (s WorkflowState) MarshalJSON() ([]byte, error) {
	type plain WorkflowState
	out := plain(s)
	for _, coll := range []*[]Item{
		&out.UploadedImages,
		&out.GroupedImages,
		&out.SortedImages,
		&out.ProcessedItems,
	} {
		if *coll == nil {
			*coll = []Item{}
		}
	}
	return json.Marshal(out)
}

// WorkflowSummary is derived from a WorkflowState and never edited directly.
type WorkflowSummary struct {
	CurrentStep        int `json:"currentStep"`
	TotalImages        int `json:"totalImages"`
	ProductGroupsCount int `json:"productGroupsCount"`
	CategorizedCount   int `json:"categorizedCount"`
	ProcessedCount     int `json:"processedCount"`
}

// WorkflowBatch is the persisted snapshot of a session.
type WorkflowBatch struct {
	ID                 uuid.UUID
	BatchNumber        int
	CurrentStep        int
	TotalImages        int
	ProductGroupsCount int
	CategorizedCount   int
	ProcessedCount     int
	ThumbnailURL       string
	WorkflowState      json.RawMessage
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Summary returns the derived fields stored on the row.
func (b WorkflowBatch) Summary() WorkflowSummary {
	return WorkflowSummary{
		CurrentStep:        b.CurrentStep,
		TotalImages:        b.TotalImages,
		ProductGroupsCount: b.ProductGroupsCount,
		CategorizedCount:   b.CategorizedCount,
		ProcessedCount:     b.ProcessedCount,
	}
}
