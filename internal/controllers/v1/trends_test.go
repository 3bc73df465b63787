package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/invoicelens/backend/internal/controllers/v1"
	"github.com/invoicelens/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetTrends() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")

	suite.createInvoice(vendor, customer, "RE-1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100, false)
	suite.createInvoice(vendor, customer, "RE-2", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 50, false)
	suite.createInvoice(vendor, customer, "RE-3", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 200, false)

	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/trends?year=2024", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TrendListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("2024-01", response.Data[0].Month)
	suite.Assert().Equal(int64(2), response.Data[0].InvoiceCount)
	suite.Assert().True(decimal.NewFromFloat(150).Equal(response.Data[0].TotalSpend))
	suite.Assert().Equal("2024-06", response.Data[1].Month)
}

func (suite *TestSuiteStandard) TestGetTrendsEmptyYear() {
	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/trends?year=1999", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.TrendListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestGetTrendsInvalidYear() {
	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/trends?year=later", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
