package importer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/invoicelens/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type vendorSpendUpdate struct {
	VendorID   uuid.UUID
	TotalSpend decimal.Decimal
}

// RecalculateVendorSpend recomputes the lifetime spend rollup of every
// vendor from the invoice ledger, credit notes excluded.
//
// All aggregates are read first, then every update is applied in one
// transaction: the rollup either updates completely or not at all. Any
// failure is fatal to the whole run.
func RecalculateVendorSpend(db *gorm.DB) error {
	var vendors []models.Vendor
	if err := db.Find(&vendors).Error; err != nil {
		return fmt.Errorf("loading vendors failed: %w", err)
	}

	if len(vendors) == 0 {
		log.Info().Msg("no vendors to update")
		return nil
	}

	log.Info().Int("vendors", len(vendors)).Msg("recalculating vendor spend")

	updates := make([]vendorSpendUpdate, 0, len(vendors))
	for _, vendor := range vendors {
		spend, err := models.VendorSpend(vendor.ID)
		if err != nil {
			return err
		}

		log.Debug().
			Str("vendor", vendor.Name).
			Str("totalSpend", spend.String()).
			Msg("calculated vendor spend")

		updates = append(updates, vendorSpendUpdate{
			VendorID:   vendor.ID,
			TotalSpend: spend,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			err := tx.Model(&models.Vendor{}).
				Where("id = ?", update.VendorID).
				Update("total_spend", update.TotalSpend).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("applying the vendor spend updates failed: %w", err)
	}

	log.Info().Int("vendors", len(updates)).Msg("vendor spend updated")
	return nil
}
