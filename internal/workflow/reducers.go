package workflow

import (
	"fmt"

	"github.com/google/uuid"
	"inventory-workflow-backend/internal/grouping"
	"inventory-workflow-backend/internal/models"
	"inventory-workflow-backend/internal/presets"
)

// Reducers take a state value and return a new one; the input is never
// modified.

// NewItemID allocates item ids at upload time.
var NewItemID = uuid.NewString

// AddUploads appends freshly uploaded images as singleton items to the
// uploaded and grouped collections.
func AddUploads(state models.WorkflowState, uploads []models.UploadedImage) (models.WorkflowState, []models.Item) {
	out := state.Clone()
	added := make([]models.Item, 0, len(uploads))
	for _, u := range uploads {
		id := NewItemID()
		item := models.Item{
			ID:          id,
			GroupID:     id,
			PreviewURL:  u.PreviewURL,
			StoragePath: u.StoragePath,
			FileName:    u.FileName,
		}
		out.UploadedImages = append(out.UploadedImages, item)
		out.GroupedImages = append(out.GroupedImages, item.Clone())
		added = append(added, item)
	}
	return out, added
}

// GroupItems merges the selected grouped items into one new group.
func GroupItems(state models.WorkflowState, itemIDs []string) (models.WorkflowState, string, error) {
	out := state.Clone()
	grouped, key, err := grouping.Group(out.GroupedImages, itemIDs)
	if err != nil {
		return state, "", err
	}
	out.GroupedImages = grouped
	propagateGrouping(&out)
	return out, key, nil
}

// UngroupItems splits the selected items back into singletons.
func UngroupItems(state models.WorkflowState, itemIDs []string) (models.WorkflowState, error) {
	out := state.Clone()
	grouped, err := grouping.Ungroup(out.GroupedImages, itemIDs)
	if err != nil {
		return state, err
	}
	out.GroupedImages = grouped
	propagateGrouping(&out)
	return out, nil
}

// MoveItem moves one item into targetGroup, or makes it individual when
// targetGroup is empty.
func MoveItem(state models.WorkflowState, itemID, targetGroup string) (models.WorkflowState, error) {
	out := state.Clone()
	grouped, err := grouping.Move(out.GroupedImages, itemID, targetGroup)
	if err != nil {
		return state, err
	}
	out.GroupedImages = grouped
	propagateGrouping(&out)
	return out, nil
}

// CategorizeGroup assigns category to every member of the group keyed
// groupKey, merges the category's preset, and records the members as sorted.
func CategorizeGroup(state models.WorkflowState, groupKey, category string, list []models.CategoryPreset) (models.WorkflowState, error) {
	members := grouping.Members(state.GroupedImages, groupKey)
	if len(members) == 0 {
		return state, fmt.Errorf("group %s: %w", groupKey, models.ErrUnknownGroup)
	}

	// Merge into the furthest-along copy of each member so descriptions and
	// edits made in later steps survive.
	latest := make([]models.Item, len(members))
	for i, m := range members {
		latest[i] = m
		if item, ok := find(state.SortedImages, m.ID); ok {
			latest[i] = item
		}
		if item, ok := find(state.ProcessedItems, m.ID); ok {
			latest[i] = item
		}
		latest[i].GroupID = m.GroupID
	}

	out := state.Clone()
	for _, item := range presets.Apply(latest, category, list) {
		out.GroupedImages = replace(out.GroupedImages, item)
		out.SortedImages = upsert(out.SortedImages, item)
		out.ProcessedItems = replace(out.ProcessedItems, item)
	}
	return out, nil
}

// Describe records the voice and generated descriptions for an item and
// moves it into the processed collection.
func Describe(state models.WorkflowState, itemID, voice, generated string) (models.WorkflowState, error) {
	item, ok := find(state.ProcessedItems, itemID)
	if !ok {
		item, ok = find(state.SortedImages, itemID)
	}
	if !ok {
		item, ok = find(state.GroupedImages, itemID)
	}
	if !ok {
		return state, fmt.Errorf("item %s: %w", itemID, models.ErrNotFound)
	}

	out := state.Clone()
	item = item.Clone()
	item.VoiceDescription = voice
	item.GeneratedDescription = generated
	out.ProcessedItems = upsert(out.ProcessedItems, item)
	return out, nil
}

// RemoveItem drops an item from all four collections and returns the
// removed item.
func RemoveItem(state models.WorkflowState, itemID string) (models.WorkflowState, models.Item, bool) {
	var removed models.Item
	found := false
	out := state.Clone()
	for _, coll := range []*[]models.Item{
		&out.UploadedImages,
		&out.GroupedImages,
		&out.SortedImages,
		&out.ProcessedItems,
	} {
		kept := (*coll)[:0]
		for _, item := range *coll {
			if item.ID == itemID {
				if !found {
					removed = item
					found = true
				}
				continue
			}
			kept = append(kept, item)
		}
		*coll = kept
	}
	return out, removed, found
}

// propagateGrouping copies group membership, and the category cleared by
// ungrouping, from the grouped collection onto the later collections.
func propagateGrouping(state *models.WorkflowState) {
	source := make(map[string]models.Item, len(state.GroupedImages))
	for _, item := range state.GroupedImages {
		source[item.ID] = item
	}
	for _, coll := range []*[]models.Item{&state.SortedImages, &state.ProcessedItems} {
		for i := range *coll {
			src, ok := source[(*coll)[i].ID]
			if !ok {
				continue
			}
			(*coll)[i].GroupID = src.GroupID
			if src.Category == "" {
				(*coll)[i].Category = ""
				(*coll)[i].PresetSnapshot = nil
			}
		}
	}
}

func find(items []models.Item, id string) (models.Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// replace swaps in item where an entry with the same id exists.
func replace(items []models.Item, item models.Item) []models.Item {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item.Clone()
		}
	}
	return items
}

// upsert replaces the entry with item's id or appends item.
func upsert(items []models.Item, item models.Item) []models.Item {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item.Clone()
			return items
		}
	}
	return append(items, item.Clone())
}
