package models

// Shopping-list entry reasons.
const (
	// ReasonRestock marks entries caused by a supply falling below its
	// restock threshold.
	ReasonRestock = "restock"
)

// ShoppingItem is a single computed entry of the shopping list. Shopping
// lists are derived from the current inventory and project requirements and
// are never stored.
type ShoppingItem struct {
	// Name is the material name to buy.
	Name string `json:"name"`

	// Needed is the missing amount, measured in Unit. Always > 0.
	Needed float64 `json:"needed"`

	// Unit is the measurement unit of Needed.
	Unit string `json:"unit"`

	// Reasons explains why the entry is present: ReasonRestock and/or the
	// names of projects that require the material.
	Reasons []string `json:"reasons"`
}
