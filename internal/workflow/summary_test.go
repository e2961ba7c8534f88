package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"inventory-workflow-backend/internal/models"
)

func TestCurrentStep(t *testing.T) {
	item := models.Item{ID: "a", GroupID: "a"}
	categorized := models.Item{ID: "a", GroupID: "a", Category: "Tops"}

	tests := []struct {
		name  string
		state models.WorkflowState
		want  int
	}{
		{"empty", models.WorkflowState{}, StepUpload},
		{"uploaded", models.WorkflowState{UploadedImages: []models.Item{item}}, StepGroup},
		{"grouped", models.WorkflowState{UploadedImages: []models.Item{item}, GroupedImages: []models.Item{item}}, StepCategorize},
		{"sorted without category", models.WorkflowState{GroupedImages: []models.Item{item}, SortedImages: []models.Item{item}}, StepCategorize},
		{"sorted with category", models.WorkflowState{GroupedImages: []models.Item{item}, SortedImages: []models.Item{categorized}}, StepDescribe},
		{"processed only", models.WorkflowState{ProcessedItems: []models.Item{item}}, StepExport},
		{"processed with everything", models.WorkflowState{
			UploadedImages: []models.Item{item},
			GroupedImages:  []models.Item{item},
			SortedImages:   []models.Item{categorized},
			ProcessedItems: []models.Item{item},
		}, StepExport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStep(tt.state))
		})
	}
}

func TestSnapshot_Totals(t *testing.T) {
	state := models.WorkflowState{
		UploadedImages: []models.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		GroupedImages: []models.Item{
			{ID: "a", GroupID: "g1"},
			{ID: "b", GroupID: "g1"},
			{ID: "c"},
		},
		SortedImages: []models.Item{
			{ID: "a", GroupID: "g1", Category: "Tops"},
			{ID: "c"},
		},
		ProcessedItems: []models.Item{
			{ID: "a", VoiceDescription: "soft knit", GeneratedDescription: "A soft knit top."},
			{ID: "b", VoiceDescription: "only voice"},
		},
	}

	got := Snapshot(state)

	assert.Equal(t, models.WorkflowSummary{
		CurrentStep:        StepExport,
		TotalImages:        3,
		ProductGroupsCount: 2,
		CategorizedCount:   1,
		ProcessedCount:     1,
	}, got)
}

func TestThumbnail_Order(t *testing.T) {
	state := models.WorkflowState{
		GroupedImages:  []models.Item{{ID: "a", PreviewURL: "grouped.jpg"}},
		ProcessedItems: []models.Item{{ID: "b", PreviewURL: "processed.jpg"}},
	}
	assert.Equal(t, "grouped.jpg", Thumbnail(state))

	state.UploadedImages = []models.Item{{ID: "c"}, {ID: "d", PreviewURL: "uploaded.jpg"}}
	assert.Equal(t, "uploaded.jpg", Thumbnail(state))

	assert.Empty(t, Thumbnail(models.WorkflowState{}))
}
