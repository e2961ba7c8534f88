package workflow

import (
	"inventory-workflow-backend/internal/grouping"
	"inventory-workflow-backend/internal/models"
)

// Workflow steps as shown to the user.
const (
	StepUpload     = 1
	StepGroup      = 2
	StepCategorize = 3
	StepDescribe   = 4
	StepExport     = 5
)

// CurrentStep derives the step from which collections hold data; the
// furthest-along non-empty collection wins.
func CurrentStep(state models.WorkflowState) int {
	switch {
	case len(state.ProcessedItems) > 0:
		return StepExport
	case len(state.SortedImages) > 0 && anyCategorized(state.SortedImages):
		return StepDescribe
	case len(state.GroupedImages) > 0:
		return StepCategorize
	case len(state.UploadedImages) > 0:
		return StepGroup
	default:
		return StepUpload
	}
}

// Snapshot computes the derived summary of a state.
func Snapshot(state models.WorkflowState) models.WorkflowSummary {
	summary := models.WorkflowSummary{
		CurrentStep:        CurrentStep(state),
		TotalImages:        len(state.UploadedImages),
		ProductGroupsCount: grouping.CountGroups(state.GroupedImages),
	}
	for _, item := range state.SortedImages {
		if item.Category != "" {
			summary.CategorizedCount++
		}
	}
	for _, item := range state.ProcessedItems {
		if item.VoiceDescription != "" && item.GeneratedDescription != "" {
			summary.ProcessedCount++
		}
	}
	return summary
}

// Thumbnail returns the first preview URL across the collections, checked
// uploaded, grouped, sorted, processed.
func Thumbnail(state models.WorkflowState) string {
	for _, items := range [][]models.Item{
		state.UploadedImages,
		state.GroupedImages,
		state.SortedImages,
		state.ProcessedItems,
	} {
		for _, item := range items {
			if item.PreviewURL != "" {
				return item.PreviewURL
			}
		}
	}
	return ""
}

func anyCategorized(items []models.Item) bool {
	for _, item := range items {
		if item.Category != "" {
			return true
		}
	}
	return false
}
