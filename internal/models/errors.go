package models

import "errors"

var (
	// ErrNotFound is returned when a batch, product or item does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable wraps transport failures from the record or object store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUnknownGroup is returned when a move targets a group no item belongs to.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrEmptySelection is returned when an action needs at least one item.
	ErrEmptySelection = errors.New("no items selected")
)
