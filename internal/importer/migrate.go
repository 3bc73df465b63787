// Package importer migrates document extraction dumps into the
// normalized invoice ledger and maintains the vendor spend rollup.
package importer

import (
	"github.com/invoicelens/backend/internal/importer/extract"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RunResult summarizes one migration run.
type RunResult struct {
	Migrated int // Documents that were committed
	Failed   int // Documents whose transaction was rolled back
	Skipped  int // Documents without an extraction payload
}

// Run migrates all documents in order. Every document is processed in
// its own transaction: either all of its entities become visible or
// none do. A failing document is logged and does not abort the run.
//
// Run does not recalculate the vendor spend rollup, that is a separate
// job.
func Run(db *gorm.DB, documents []SourceDocument) RunResult {
	var result RunResult

	log.Info().Int("documents", len(documents)).Msg("starting migration")

	for _, doc := range documents {
		payload := doc.payload()
		if payload == nil {
			log.Warn().
				Str("document", doc.ID).
				Str("name", doc.Name).
				Msgf("skipping document: %v", ErrNoExtractedData)

			result.Skipped++
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			return migrateDocument(tx, doc, payload)
		})
		if err != nil {
			log.Error().
				Str("document", doc.ID).
				Str("name", doc.Name).
				Err(err).
				Msg("document migration failed")

			result.Failed++
			continue
		}

		log.Info().
			Str("document", doc.ID).
			Str("name", doc.Name).
			Msg("document migrated")

		result.Migrated++
	}

	log.Info().
		Int("migrated", result.Migrated).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("migration complete")

	return result
}

// migrateDocument performs all writes for one document inside the
// transaction that is passed in.
func migrateDocument(tx *gorm.DB, doc SourceDocument, payload *extract.Payload) error {
	if err := requiredBlocks(payload); err != nil {
		return err
	}

	vendor, err := resolveVendor(tx, payload.Vendor.Fields())
	if err != nil {
		return err
	}

	customer, err := resolveCustomer(tx, payload.Customer.Fields())
	if err != nil {
		return err
	}

	categoryIDs, err := resolveCategories(tx, payload.Items())
	if err != nil {
		return err
	}

	// Creating the invoice also creates the nested line items and sets
	// their foreign keys.
	invoice := assembleInvoice(doc, payload, vendor, customer, categoryIDs)
	if err := tx.Create(&invoice).Error; err != nil {
		return err
	}

	// The payment is created explicitly. An association save would skip
	// it when every payment field is empty, but every invoice owns
	// exactly one payment row even if all its terms are unknown.
	payment := assemblePayment(payload)
	payment.InvoiceID = invoice.ID
	if err := tx.Create(&payment).Error; err != nil {
		return err
	}

	document := doc.model(invoice.ID)
	return tx.Create(&document).Error
}
