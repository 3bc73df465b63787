package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/invoicelens/backend/internal/controllers/v1"
	"github.com/invoicelens/backend/internal/models"
	"github.com/invoicelens/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetInvoices() {
	acme := suite.createVendor("Acme GmbH")
	schmidt := suite.createVendor("Schmidt Logistik")
	customer := suite.createCustomer("Muster AG")

	march := suite.createInvoice(acme, customer, "RE-2024-0001", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), 130.75, false)
	due := time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC)
	payment := models.Payment{InvoiceID: march.ID, DueDate: &due}
	suite.Require().Nil(models.DB.Create(&payment).Error)

	suite.createInvoice(schmidt, customer, "RE-2024-0002", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), 99, false)

	// Credit notes are never listed
	suite.createInvoice(acme, customer, "GU-2024-0001", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), -50, true)

	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "http://example.com/v1/invoices", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)

	// Newest invoice first
	suite.Assert().Equal("RE-2024-0002", *response.Data[0].InvoiceNumber)
	suite.Assert().Equal("Schmidt Logistik", response.Data[0].Vendor)
	suite.Assert().Nil(response.Data[0].DueDate)

	suite.Assert().Equal("RE-2024-0001", *response.Data[1].InvoiceNumber)
	suite.Assert().Equal("Acme GmbH", response.Data[1].Vendor)
	suite.Assert().Equal("Muster AG", response.Data[1].Customer)
	suite.Require().NotNil(response.Data[1].DueDate)
	suite.Assert().Equal(due, *response.Data[1].DueDate)
	suite.Assert().True(decimal.NewFromFloat(130.75).Equal(response.Data[1].InvoiceTotal))
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/invoices/%s", march.ID), response.Data[1].Links.Self)

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(2, response.Pagination.Count)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
	suite.Assert().Equal(20, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetInvoicesFilters() {
	acme := suite.createVendor("Acme GmbH")
	schmidt := suite.createVendor("Schmidt Logistik")
	muster := suite.createCustomer("Muster AG")
	beispiel := suite.createCustomer("Beispiel e.V.")

	suite.createInvoice(acme, muster, "RE-2024-0001", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), 100, false)
	suite.createInvoice(acme, beispiel, "RE-2024-0002", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), 200, false)
	suite.createInvoice(schmidt, muster, "XX-77", time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), 300, false)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"by vendor", "vendor=" + acme.ID.String(), []string{"RE-2024-0002", "RE-2024-0001"}},
		{"by customer", "customer=" + muster.ID.String(), []string{"XX-77", "RE-2024-0001"}},
		{"by invoice number fragment", "invoiceNumber=XX", []string{"XX-77"}},
		{"from date", "fromDate=2024-05-01", []string{"XX-77", "RE-2024-0002"}},
		{"until date", "untilDate=2024-03-17", []string{"RE-2024-0001"}},
		{"date range", "fromDate=2024-04-01&untilDate=2024-05-31", []string{"RE-2024-0002"}},
		{"amount ascending", "sort=amountAsc", []string{"RE-2024-0001", "RE-2024-0002", "XX-77"}},
		{"amount descending", "sort=amountDesc", []string{"XX-77", "RE-2024-0002", "RE-2024-0001"}},
	}

	r := suite.router()
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, r, http.MethodGet, "/v1/invoices?"+tt.query, "")
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response v1.InvoiceListResponse
			test.DecodeResponse(t, &recorder, &response)

			numbers := make([]string, 0, len(response.Data))
			for _, invoice := range response.Data {
				numbers = append(numbers, *invoice.InvoiceNumber)
			}

			assert.Equal(t, tt.expected, numbers)
		})
	}
}

func (suite *TestSuiteStandard) TestGetInvoicesPagination() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		suite.createInvoice(vendor, customer, fmt.Sprintf("RE-%03d", i), date.AddDate(0, 0, i), 100, false)
	}

	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/invoices?offset=20&limit=10", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Data, 5)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(5, response.Pagination.Count)
	suite.Assert().Equal(uint(20), response.Pagination.Offset)
	suite.Assert().Equal(10, response.Pagination.Limit)
	suite.Assert().Equal(int64(25), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetInvoicesInvalidSort() {
	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/invoices?sort=sideways", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetInvoicesInvalidVendorID() {
	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/invoices?vendor=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
