package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice is the header of one migrated invoice. It references exactly
// one vendor and one customer and owns one payment and zero or more
// line items.
type Invoice struct {
	DefaultModel
	InvoiceNumber *string
	InvoiceDate   *time.Time
	InvoiceTotal  decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	IsCreditNote  bool
	VendorID      uuid.UUID `gorm:"index"`
	Vendor        Vendor    `json:"-"`
	CustomerID    uuid.UUID `gorm:"index"`
	Customer      Customer  `json:"-"`
	Payment       Payment   `json:"-"`
	LineItems     []LineItem `json:"-"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (i *Invoice) AfterFind(tx *gorm.DB) (err error) {
	if i.InvoiceDate != nil {
		date := i.InvoiceDate.In(time.UTC)
		i.InvoiceDate = &date
	}

	return i.Timestamps.AfterFind(tx)
}

// BeforeSave sets the timezone for the invoice date to UTC.
func (i *Invoice) BeforeSave(_ *gorm.DB) (err error) {
	if i.InvoiceDate != nil {
		date := i.InvoiceDate.In(time.UTC)
		i.InvoiceDate = &date
	}

	return nil
}
