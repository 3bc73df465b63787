package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one priced entry within an invoice.
//
// AccountingCode and TaxCode are passed through from the extraction.
// The accounting code additionally resolves the category reference.
type LineItem struct {
	DefaultModel
	InvoiceID      uuid.UUID `gorm:"index"`
	Position       *int
	Description    *string
	Quantity       decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	UnitPrice      decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	TotalPrice     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	AccountingCode *string
	TaxCode        *string
	CategoryID     *uuid.UUID `gorm:"index"`
	Category       Category   `json:"-"`
}
