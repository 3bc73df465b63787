package models

import (
	"github.com/shopspring/decimal"
)

// Vendor represents a party that issues invoices.
//
// The party number is the natural key of the vendor when the extraction
// provides one. Vendors without a party number are deduplicated by name
// only.
type Vendor struct {
	DefaultModel
	Name        string `gorm:"index"`
	Address     *string
	TaxID       *string
	PartyNumber *string `gorm:"uniqueIndex"`

	// TotalSpend is a denormalized rollup over all non-credit-note
	// invoices of this vendor. It is only written by the rollup job.
	TotalSpend decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}
