package importer_test

import (
	"github.com/invoicelens/backend/internal/importer"
	"github.com/invoicelens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// createVendorWithInvoices sets up a vendor with one invoice per
// total. Negative totals are stored as credit notes.
func (suite *TestSuiteStandard) createVendorWithInvoices(name string, totals ...float64) models.Vendor {
	vendor := models.Vendor{Name: name}
	suite.Require().Nil(models.DB.Create(&vendor).Error)

	customer := models.Customer{Name: name + " customer"}
	suite.Require().Nil(models.DB.Create(&customer).Error)

	for _, total := range totals {
		invoice := models.Invoice{
			VendorID:     vendor.ID,
			CustomerID:   customer.ID,
			InvoiceTotal: decimal.NewNullDecimal(decimal.NewFromFloat(total)),
			IsCreditNote: total < 0,
		}
		suite.Require().Nil(models.DB.Create(&invoice).Error)
	}

	return vendor
}

func (suite *TestSuiteStandard) TestRecalculateVendorSpend() {
	vendor := suite.createVendorWithInvoices("Acme GmbH", 100, -50, 200)

	suite.Require().Nil(importer.RecalculateVendorSpend(models.DB))

	suite.Require().Nil(models.DB.First(&vendor, vendor.ID).Error)
	suite.Assert().True(decimal.NewFromFloat(300).Equal(vendor.TotalSpend),
		"credit notes must not count into the total spend, got %s", vendor.TotalSpend)
}

func (suite *TestSuiteStandard) TestRecalculateVendorSpendIsIdempotent() {
	vendor := suite.createVendorWithInvoices("Acme GmbH", 100, 200)

	suite.Require().Nil(importer.RecalculateVendorSpend(models.DB))
	suite.Require().Nil(importer.RecalculateVendorSpend(models.DB))

	suite.Require().Nil(models.DB.First(&vendor, vendor.ID).Error)
	suite.Assert().True(decimal.NewFromFloat(300).Equal(vendor.TotalSpend))
}

func (suite *TestSuiteStandard) TestRecalculateVendorSpendWithoutInvoices() {
	vendor := models.Vendor{Name: "Acme GmbH"}
	suite.Require().Nil(models.DB.Create(&vendor).Error)

	suite.Require().Nil(importer.RecalculateVendorSpend(models.DB))

	suite.Require().Nil(models.DB.First(&vendor, vendor.ID).Error)
	suite.Assert().True(vendor.TotalSpend.IsZero())
}

func (suite *TestSuiteStandard) TestRecalculateVendorSpendWithoutVendors() {
	suite.Require().Nil(importer.RecalculateVendorSpend(models.DB))
}
