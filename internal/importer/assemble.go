package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/invoicelens/backend/internal/importer/extract"
	"github.com/invoicelens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// requiredBlocks verifies that all extraction blocks the assembler
// needs are present. It runs before any database writes.
func requiredBlocks(payload *extract.Payload) error {
	if payload.Vendor.Fields() == nil {
		return fmt.Errorf("%w: vendor", ErrMissingDataBlock)
	}

	if payload.Customer.Fields() == nil {
		return fmt.Errorf("%w: customer", ErrMissingDataBlock)
	}

	if payload.Payment.Fields() == nil {
		return fmt.Errorf("%w: payment", ErrMissingDataBlock)
	}

	if payload.Invoice.Fields() == nil {
		return fmt.Errorf("%w: invoice", ErrMissingDataBlock)
	}

	if payload.Summary.Fields() == nil {
		return fmt.Errorf("%w: summary", ErrMissingDataBlock)
	}

	return nil
}

// assembleInvoice builds the invoice write set for one document: the
// header and the line items, linked to the resolved vendor, customer
// and categories. The payment is assembled separately since it has to
// be created even when all of its fields are empty.
func assembleInvoice(doc SourceDocument, payload *extract.Payload, vendor models.Vendor, customer models.Customer, categoryIDs map[string]uuid.UUID) models.Invoice {
	invoiceFields := payload.Invoice.Fields()
	total := extract.Decimal(payload.Summary.Fields().Total)

	return models.Invoice{
		InvoiceNumber: extract.String(invoiceFields.Number),
		InvoiceDate:   extract.Date(invoiceFields.Date),
		InvoiceTotal:  nullDecimal(total),
		IsCreditNote:  isCreditNote(doc.Name, total),
		VendorID:      vendor.ID,
		CustomerID:    customer.ID,
		LineItems:     assembleLineItems(payload.Items(), categoryIDs),
	}
}

// isCreditNote classifies an invoice as a credit note when its total
// is negative or the document name marks it as one.
func isCreditNote(documentName string, total *decimal.Decimal) bool {
	if total != nil && total.IsNegative() {
		return true
	}

	return strings.Contains(strings.ToLower(documentName), "gutschrift")
}

// assemblePayment maps the payment block field by field. The
// discounted total is copied from the summary's invoice total without
// applying the discount, preserving the upstream behavior.
func assemblePayment(payload *extract.Payload) models.Payment {
	fields := payload.Payment.Fields()

	return models.Payment{
		DueDate:         extract.Date(fields.DueDate),
		PaymentTerms:    extract.String(fields.Terms),
		BankAccount:     extract.String(fields.BankAccount),
		BIC:             extract.String(fields.BIC),
		AccountName:     extract.String(fields.AccountName),
		NetDays:         extract.Int(fields.NetDays),
		DiscountPercent: extract.Float(fields.DiscountPercent),
		DiscountDays:    extract.Int(fields.DiscountDays),
		DiscountedTotal: nullDecimal(extract.Decimal(payload.Summary.Fields().Total)),
	}
}

func assembleLineItems(items []extract.Item, categoryIDs map[string]uuid.UUID) []models.LineItem {
	lineItems := make([]models.LineItem, 0, len(items))

	for _, item := range items {
		code := extract.String(item.AccountingCode)

		lineItem := models.LineItem{
			Position:       extract.Int(item.Position),
			Description:    extract.String(item.Description),
			Quantity:       nullDecimal(extract.Decimal(item.Quantity)),
			UnitPrice:      nullDecimal(extract.Decimal(item.UnitPrice)),
			TotalPrice:     nullDecimal(extract.Decimal(item.TotalPrice)),
			AccountingCode: code,
			TaxCode:        extract.String(item.TaxCode),
		}

		if code != nil {
			if id, ok := categoryIDs[*code]; ok {
				categoryID := id
				lineItem.CategoryID = &categoryID
			}
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
