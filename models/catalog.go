package models

// CatalogProduct is a reference record in the barcode catalog used by the
// add-via-lookup flow. Lookup results prefill the add-supply form; every
// field remains editable by the user before saving.
type CatalogProduct struct {
	// Barcode is the product barcode or SKU. Unique within the catalog.
	Barcode string `json:"barcode"`

	// Name is the product display name.
	Name string `json:"name"`

	// Brand is the manufacturer or brand name.
	Brand string `json:"brand,omitempty"`

	// Category is the suggested supply category.
	Category string `json:"category"`

	// Unit is the suggested measurement unit.
	Unit string `json:"unit"`

	// DefaultQuantity is the suggested initial quantity (e.g. 1 for a
	// single skein).
	DefaultQuantity float64 `json:"default_quantity"`

	// Color is the suggested color description.
	Color string `json:"color,omitempty"`
}

// TableName returns the name of the database table
// associated with the CatalogProduct model.
func (p CatalogProduct) TableName() string {
	return "catalog_products"
}
