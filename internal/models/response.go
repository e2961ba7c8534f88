package models

import "time"

type WorkflowResponse struct {
	State   WorkflowState   `json:"state"`
	Summary WorkflowSummary `json:"summary"`
	Saved   bool            `json:"saved"`
	BatchID string          `json:"batch_id,omitempty"`
}

type BatchListResponse struct {
	Batches []BatchSummary `json:"batches"`
}

type BatchSummary struct {
	ID           string          `json:"batch_id"`
	BatchNumber  int             `json:"batch_number"`
	ThumbnailURL string          `json:"thumbnail_url,omitempty"`
	Summary      WorkflowSummary `json:"summary"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type FinalizeResponse struct {
	BatchID string   `json:"batch_id"`
	Saved   int      `json:"saved"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
