// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package models

import "time"

// Supply categories known to the application. The list mirrors what the
// inventory UI offers in its category pickers and filters.
const (
	CategoryYarn   = "Yarn"
	CategoryFabric = "Fabric"
	CategoryTool   = "Tool"
	CategoryNotion = "Notion"
	CategoryOther  = "Other"
)

// Categories returns all known supply categories in display order.
func Categories() []string {
	return []string{CategoryYarn, CategoryFabric, CategoryTool, CategoryNotion, CategoryOther}
}

// IsKnownCategory reports whether category is one of the known supply
// categories.
func IsKnownCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Supply is a single crafting material or tool in a user's inventory.
type Supply struct {
	// ID is the server-assigned unique identifier of the supply.
	ID int64 `json:"id"`

	// UserID is the owner of the supply. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Name is the display name of the supply (e.g. "DK Yarn Blue").
	// Required.
	Name string `json:"name"`

	// Category is one of the known supply categories. Required.
	Category string `json:"category"`

	// Quantity is the amount currently on hand, measured in Unit.
	// Must be >= 0.
	Quantity float64 `json:"quantity"`

	// Unit is the measurement unit of Quantity (see the units package for
	// the known set). Required.
	Unit string `json:"unit"`

	// Color is an optional free-form color description.
	Color string `json:"color,omitempty"`

	// Brand is an optional manufacturer or brand name.
	Brand string `json:"brand,omitempty"`

	// Barcode is an optional product barcode/SKU recorded when the supply
	// was added via catalog lookup.
	Barcode string `json:"barcode,omitempty"`

	// Tags is a free-form list of labels used for search and filtering.
	Tags []string `json:"tags,omitempty"`

	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty"`

	// MinQuantity is the restock threshold: when Quantity drops below it
	// the supply appears on the shopping list. Zero disables restocking.
	MinQuantity float64 `json:"min_quantity,omitempty"`

	// CreatedAt is set by the server when the supply is created.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// UpdatedAt is bumped by the server on every modification.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Supply model.
func (s Supply) TableName() string {
	return "supplies"
}
