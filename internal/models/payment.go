package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment holds the payment terms of exactly one invoice. It is created
// together with its parent invoice and never independently.
type Payment struct {
	DefaultModel
	InvoiceID       uuid.UUID `gorm:"uniqueIndex"`
	DueDate         *time.Time
	PaymentTerms    *string
	BankAccount     *string
	BIC             *string
	AccountName     *string
	NetDays         *int
	DiscountPercent *float64
	DiscountDays    *int

	// DiscountedTotal is copied verbatim from the summary's invoice
	// total by the migration. It is not discount-adjusted.
	DiscountedTotal decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
}
