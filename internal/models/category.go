package models

// Category represents an accounting category for invoice line items.
//
// Categories are created on first sighting of a line item accounting
// code. The code is the natural key, the name is a derived placeholder.
type Category struct {
	DefaultModel
	Code string `gorm:"uniqueIndex"`
	Name string
}
