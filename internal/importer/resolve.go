package importer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/invoicelens/backend/internal/importer/extract"
	"github.com/invoicelens/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// resolveVendor finds or creates the vendor for one document.
//
// When the extraction provides a party number, it is the natural key:
// an existing vendor with that party number is updated with the latest
// name, address and tax ID. Without a party number the first vendor
// with a matching name wins, address differences are not disambiguated.
func resolveVendor(tx *gorm.DB, fields *extract.VendorFields) (models.Vendor, error) {
	name := extract.String(fields.Name)
	if name == nil {
		return models.Vendor{}, fmt.Errorf("%w: vendor name", ErrMissingRequiredField)
	}

	address := extract.String(fields.Address)
	taxID := extract.String(fields.TaxID)
	partyNumber := extract.String(fields.PartyNumber)

	var vendor models.Vendor

	if partyNumber != nil {
		err := tx.Where("party_number = ?", *partyNumber).First(&vendor).Error
		if err == nil {
			err = tx.Model(&vendor).Updates(map[string]any{
				"name":    *name,
				"address": address,
				"tax_id":  taxID,
			}).Error
			if err != nil {
				return models.Vendor{}, err
			}

			return vendor, nil
		}

		if !errors.Is(err, models.ErrResourceNotFound) {
			return models.Vendor{}, err
		}

		vendor = models.Vendor{
			Name:        *name,
			Address:     address,
			TaxID:       taxID,
			PartyNumber: partyNumber,
		}

		if err := tx.Create(&vendor).Error; err != nil {
			return models.Vendor{}, err
		}

		return vendor, nil
	}

	err := tx.Where("name = ?", *name).First(&vendor).Error
	if err == nil {
		return vendor, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Vendor{}, err
	}

	vendor = models.Vendor{
		Name:    *name,
		Address: address,
		TaxID:   taxID,
	}

	if err := tx.Create(&vendor).Error; err != nil {
		return models.Vendor{}, err
	}

	return vendor, nil
}

// resolveCustomer finds or creates the customer for one document.
// Customers are keyed on the pair of name and address.
func resolveCustomer(tx *gorm.DB, fields *extract.CustomerFields) (models.Customer, error) {
	name := extract.String(fields.Name)
	if name == nil {
		return models.Customer{}, fmt.Errorf("%w: customer name", ErrMissingRequiredField)
	}

	address := extract.String(fields.Address)

	q := tx.Where("name = ?", *name)
	if address == nil {
		q = q.Where("address IS NULL")
	} else {
		q = q.Where("address = ?", *address)
	}

	var customer models.Customer
	err := q.First(&customer).Error
	if err == nil {
		return customer, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Customer{}, err
	}

	customer = models.Customer{
		Name:    *name,
		Address: address,
	}

	if err := tx.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}

	return customer, nil
}

// resolveCategories upserts a category for every distinct accounting
// code in the line items and returns the code to ID mapping the
// assembler uses. The mapping is scoped to one document.
func resolveCategories(tx *gorm.DB, items []extract.Item) (map[string]uuid.UUID, error) {
	codes := make([]string, 0, len(items))
	for _, item := range items {
		code := extract.String(item.AccountingCode)
		if code == nil || slices.Contains(codes, *code) {
			continue
		}

		codes = append(codes, *code)
	}

	categoryIDs := make(map[string]uuid.UUID, len(codes))
	for _, code := range codes {
		var category models.Category
		err := tx.Where("code = ?", code).First(&category).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			category = models.Category{
				Code: code,
				Name: fmt.Sprintf("Category %s", code),
			}

			if err := tx.Create(&category).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		categoryIDs[code] = category.ID
	}

	return categoryIDs, nil
}
