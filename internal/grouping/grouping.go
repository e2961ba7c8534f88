// Package grouping assigns items to product groups. Every item resolves to
// exactly one group key; an item that was never grouped is a group of one
// keyed by its own id.
package grouping

import (
	"fmt"

	"github.com/google/uuid"
	"inventory-workflow-backend/internal/models"
)

// Kind distinguishes singleton items from members of a merged group.
type Kind int

const (
	Singleton Kind = iota
	Member
)

// Grouping is the resolved group membership of one item.
type Grouping struct {
	Kind Kind
	Key  string
}

// Of classifies an item's membership.
func Of(item models.Item) Grouping {
	if item.GroupID == "" || item.GroupID == item.ID {
		return Grouping{Kind: Singleton, Key: item.ID}
	}
	return Grouping{Kind: Member, Key: item.GroupID}
}

// ResolveGroupID returns the item's group key, falling back to its own id.
func ResolveGroupID(item models.Item) string {
	return Of(item).Key
}

// NewGroupKey allocates a fresh group key anchored on one of the selected
// items so every key in use traces back to an item id.
var NewGroupKey = func(anchorID string) string {
	return fmt.Sprintf("%s~%s", anchorID, uuid.NewString()[:8])
}

// Group moves every selected item into one freshly keyed group, whatever
// group each was in before. A single selected item is a valid group.
func Group(items []models.Item, selectedIDs []string) ([]models.Item, string, error) {
	selected := toSet(selectedIDs)
	out := models.CloneItems(items)

	anchor := ""
	for _, item := range out {
		if selected[item.ID] {
			anchor = item.ID
			break
		}
	}
	if anchor == "" {
		return out, "", models.ErrEmptySelection
	}

	key := NewGroupKey(anchor)
	for i := range out {
		if selected[out[i].ID] {
			out[i].GroupID = key
		}
	}
	return out, key, nil
}

// Ungroup turns every selected item back into a singleton. Category and
// preset provenance belong to the group, so they are dropped from the
// split-off items.
func Ungroup(items []models.Item, selectedIDs []string) ([]models.Item, error) {
	selected := toSet(selectedIDs)
	out := models.CloneItems(items)

	found := false
	for i := range out {
		if selected[out[i].ID] {
			makeIndividual(&out[i])
			found = true
		}
	}
	if !found {
		return out, models.ErrEmptySelection
	}
	return out, nil
}

// Move reassigns a single item to the group keyed targetKey. An empty
// targetKey makes the item individual, with the same effect as Ungroup.
func Move(items []models.Item, itemID, targetKey string) ([]models.Item, error) {
	out := models.CloneItems(items)

	idx := -1
	for i := range out {
		if out[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out, fmt.Errorf("item %s: %w", itemID, models.ErrNotFound)
	}

	if targetKey == "" || targetKey == itemID {
		makeIndividual(&out[idx])
		return out, nil
	}

	inUse := false
	for _, item := range out {
		if ResolveGroupID(item) == targetKey {
			inUse = true
			break
		}
	}
	if !inUse {
		return out, fmt.Errorf("group %s: %w", targetKey, models.ErrUnknownGroup)
	}

	out[idx].GroupID = targetKey
	return out, nil
}

// ProductGroup is a derived view: the items sharing one key.
type ProductGroup struct {
	Key   string
	Items []models.Item
}

// Groups partitions items by group key in order of first appearance.
func Groups(items []models.Item) []ProductGroup {
	index := make(map[string]int)
	var groups []ProductGroup
	for _, item := range items {
		key := ResolveGroupID(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ProductGroup{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Members returns the items of the group keyed key.
func Members(items []models.Item, key string) []models.Item {
	var members []models.Item
	for _, item := range items {
		if ResolveGroupID(item) == key {
			members = append(members, item)
		}
	}
	return members
}

// CountGroups returns the number of distinct group keys.
func CountGroups(items []models.Item) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[ResolveGroupID(item)] = struct{}{}
	}
	return len(seen)
}

func makeIndividual(item *models.Item) {
	item.GroupID = item.ID
	item.Category = ""
	item.PresetSnapshot = nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
