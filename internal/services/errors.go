// Package services defines the business logic for the wardrobe: closet
// management and outfit generation. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

var (
	// ErrItemNotFound indicates that the requested clothing item does
	// not exist.
	ErrItemNotFound = errors.New("clothing item not found")

	// ErrOutfitNotFound indicates that the requested saved outfit does
	// not exist.
	ErrOutfitNotFound = errors.New("outfit not found")

	// ErrNoItemsFound is returned when outfit generation is asked for an
	// empty id selection or when none of the requested ids match a stored
	// item. Generation never proceeds with an empty wardrobe.
	ErrNoItemsFound = errors.New("no clothing items found")
)
