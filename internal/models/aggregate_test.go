package models_test

import (
	"time"

	"github.com/invoicelens/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createVendor(name string) models.Vendor {
	vendor := models.Vendor{Name: name}
	suite.Require().Nil(models.DB.Create(&vendor).Error)
	return vendor
}

func (suite *TestSuiteStandard) createCustomer(name string) models.Customer {
	customer := models.Customer{Name: name}
	suite.Require().Nil(models.DB.Create(&customer).Error)
	return customer
}

func (suite *TestSuiteStandard) createInvoice(vendor models.Vendor, customer models.Customer, date time.Time, total float64, creditNote bool) models.Invoice {
	invoice := models.Invoice{
		InvoiceDate:  &date,
		InvoiceTotal: decimal.NewNullDecimal(decimal.NewFromFloat(total)),
		IsCreditNote: creditNote,
		VendorID:     vendor.ID,
		CustomerID:   customer.ID,
	}
	suite.Require().Nil(models.DB.Create(&invoice).Error)
	return invoice
}

func (suite *TestSuiteStandard) TestStatsForPeriod() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.createInvoice(vendor, customer, march.AddDate(0, 0, 4), 100, false)
	suite.createInvoice(vendor, customer, march.AddDate(0, 0, 16), 200, false)

	// Credit notes count into the invoice total but not into the spend
	suite.createInvoice(vendor, customer, march.AddDate(0, 0, 20), -50, true)

	// Outside the period
	suite.createInvoice(vendor, customer, april.AddDate(0, 0, 1), 999, false)

	stats, err := models.StatsForPeriod(march, april)
	suite.Require().Nil(err)

	suite.Assert().True(decimal.NewFromFloat(300).Equal(stats.TotalSpend), "got %s", stats.TotalSpend)
	suite.Assert().Equal(int64(3), stats.InvoicesProcessed)
	suite.Assert().True(decimal.NewFromFloat(150).Equal(stats.AverageInvoiceValue), "got %s", stats.AverageInvoiceValue)
}

func (suite *TestSuiteStandard) TestSpendForPeriodEmpty() {
	spend, err := models.SpendForPeriod(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	)

	suite.Require().Nil(err)
	suite.Assert().True(spend.IsZero())
}

func (suite *TestSuiteStandard) TestTopVendorsByInvoiceCount() {
	busy := suite.createVendor("Busy GmbH")
	quiet := suite.createVendor("Quiet GmbH")
	refunder := suite.createVendor("Refunds Only GmbH")
	customer := suite.createCustomer("Muster AG")

	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	suite.createInvoice(busy, customer, date, 100, false)
	suite.createInvoice(busy, customer, date.AddDate(0, 1, 0), 100, false)
	suite.createInvoice(busy, customer, date.AddDate(0, 2, 0), 100, false)
	suite.createInvoice(quiet, customer, date, 500, false)

	// Vendors with a non-positive spend sum are dropped
	suite.createInvoice(refunder, customer, date, -80, true)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(1, 0, 0)

	vendors, err := models.TopVendorsByInvoiceCount(from, until, 10)
	suite.Require().Nil(err)

	suite.Require().Len(vendors, 2)
	suite.Assert().Equal("Busy GmbH", vendors[0].Name)
	suite.Assert().Equal(int64(3), vendors[0].InvoiceCount)
	suite.Assert().True(decimal.NewFromFloat(300).Equal(vendors[0].TotalSpend))
	suite.Assert().Equal("Quiet GmbH", vendors[1].Name)
}

func (suite *TestSuiteStandard) TestTopVendorsBySpend() {
	big := suite.createVendor("Big GmbH")
	small := suite.createVendor("Small GmbH")
	customer := suite.createCustomer("Muster AG")

	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	suite.createInvoice(big, customer, date, 1000, false)
	suite.createInvoice(small, customer, date, 10, false)
	suite.createInvoice(small, customer, date, 20, false)

	// Credit notes do not count
	suite.createInvoice(big, customer, date, -500, true)

	vendors, err := models.TopVendorsBySpend(10)
	suite.Require().Nil(err)

	suite.Require().Len(vendors, 2)
	suite.Assert().Equal("Big GmbH", vendors[0].Name)
	suite.Assert().True(decimal.NewFromFloat(1000).Equal(vendors[0].TotalSpend))
	suite.Assert().Equal("Small GmbH", vendors[1].Name)
	suite.Assert().True(decimal.NewFromFloat(30).Equal(vendors[1].TotalSpend))
}

func (suite *TestSuiteStandard) TestMonthlyTrends() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")

	suite.createInvoice(vendor, customer, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 100, false)
	suite.createInvoice(vendor, customer, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 50, false)
	suite.createInvoice(vendor, customer, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), 200, false)

	// Other year
	suite.createInvoice(vendor, customer, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 999, false)

	trends, err := models.MonthlyTrends(2025)
	suite.Require().Nil(err)

	suite.Require().Len(trends, 2)
	suite.Assert().Equal("2025-01", trends[0].Month)
	suite.Assert().Equal(int64(2), trends[0].InvoiceCount)
	suite.Assert().True(decimal.NewFromFloat(150).Equal(trends[0].TotalSpend))
	suite.Assert().Equal("2025-03", trends[1].Month)
	suite.Assert().Equal(int64(1), trends[1].InvoiceCount)
}

func (suite *TestSuiteStandard) TestCategorySpend() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")
	invoice := suite.createInvoice(vendor, customer, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), 300, false)

	maintenance := models.Category{Code: "4400", Name: "Category 4400"}
	suite.Require().Nil(models.DB.Create(&maintenance).Error)
	travel := models.Category{Code: "4670", Name: "Category 4670"}
	suite.Require().Nil(models.DB.Create(&travel).Error)

	for _, item := range []models.LineItem{
		{InvoiceID: invoice.ID, TotalPrice: decimal.NewNullDecimal(decimal.NewFromFloat(100)), CategoryID: &maintenance.ID},
		{InvoiceID: invoice.ID, TotalPrice: decimal.NewNullDecimal(decimal.NewFromFloat(120)), CategoryID: &maintenance.ID},
		{InvoiceID: invoice.ID, TotalPrice: decimal.NewNullDecimal(decimal.NewFromFloat(80)), CategoryID: &travel.ID},
		// Line items without a category are not part of the aggregation
		{InvoiceID: invoice.ID, TotalPrice: decimal.NewNullDecimal(decimal.NewFromFloat(500))},
	} {
		lineItem := item
		suite.Require().Nil(models.DB.Create(&lineItem).Error)
	}

	entries, err := models.CategorySpend()
	suite.Require().Nil(err)

	suite.Require().Len(entries, 2)
	suite.Assert().Equal("4400", entries[0].Code)
	suite.Assert().True(decimal.NewFromFloat(220).Equal(entries[0].TotalSpend))
	suite.Assert().Equal("4670", entries[1].Code)
	suite.Assert().True(decimal.NewFromFloat(80).Equal(entries[1].TotalSpend))
}

func (suite *TestSuiteStandard) TestCashOutflow() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")

	reference := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)

	createPayment := func(daysUntilDue int, total float64) {
		invoice := suite.createInvoice(vendor, customer, reference.AddDate(0, -1, 0), total, false)
		due := reference.AddDate(0, 0, daysUntilDue)
		payment := models.Payment{InvoiceID: invoice.ID, DueDate: &due}
		suite.Require().Nil(models.DB.Create(&payment).Error)
	}

	createPayment(0, 10)
	createPayment(7, 20)
	createPayment(8, 40)
	createPayment(30, 80)
	createPayment(31, 160)
	createPayment(60, 320)
	createPayment(61, 640)

	// Already due payments are not upcoming outflow
	createPayment(-1, 9999)

	buckets, err := models.CashOutflow(reference)
	suite.Require().Nil(err)

	suite.Require().Len(buckets, 4)
	suite.Assert().Equal("0-7 days", buckets[0].Name)
	suite.Assert().True(decimal.NewFromFloat(30).Equal(buckets[0].Amount), "got %s", buckets[0].Amount)
	suite.Assert().Equal("8-30 days", buckets[1].Name)
	suite.Assert().True(decimal.NewFromFloat(120).Equal(buckets[1].Amount), "got %s", buckets[1].Amount)
	suite.Assert().Equal("31-60 days", buckets[2].Name)
	suite.Assert().True(decimal.NewFromFloat(480).Equal(buckets[2].Amount), "got %s", buckets[2].Amount)
	suite.Assert().Equal("60+ days", buckets[3].Name)
	suite.Assert().True(decimal.NewFromFloat(640).Equal(buckets[3].Amount), "got %s", buckets[3].Amount)
}

func (suite *TestSuiteStandard) TestCashOutflowEmpty() {
	buckets, err := models.CashOutflow(time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC))
	suite.Require().Nil(err)

	suite.Require().Len(buckets, 4)
	for _, bucket := range buckets {
		suite.Assert().True(bucket.Amount.IsZero())
	}
}

func (suite *TestSuiteStandard) TestVendorSpend() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")

	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	suite.createInvoice(vendor, customer, date, 100, false)
	suite.createInvoice(vendor, customer, date, 200, false)
	suite.createInvoice(vendor, customer, date, -50, true)

	spend, err := models.VendorSpend(vendor.ID)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromFloat(300).Equal(spend))
}
