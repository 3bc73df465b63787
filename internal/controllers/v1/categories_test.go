package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/invoicelens/backend/internal/controllers/v1"
	"github.com/invoicelens/backend/internal/models"
	"github.com/invoicelens/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetCategorySpend() {
	vendor := suite.createVendor("Acme GmbH")
	customer := suite.createCustomer("Muster AG")
	invoice := suite.createInvoice(vendor, customer, "RE-1", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), 300, false)

	category := models.Category{Code: "4400", Name: "Category 4400"}
	suite.Require().Nil(models.DB.Create(&category).Error)

	lineItem := models.LineItem{
		InvoiceID:  invoice.ID,
		TotalPrice: decimal.NewNullDecimal(decimal.NewFromFloat(220)),
		CategoryID: &category.ID,
	}
	suite.Require().Nil(models.DB.Create(&lineItem).Error)

	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/categories/spend", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategorySpendListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("4400", response.Data[0].Code)
	suite.Assert().Equal("Category 4400", response.Data[0].Name)
	suite.Assert().True(decimal.NewFromFloat(220).Equal(response.Data[0].TotalSpend))
}

func (suite *TestSuiteStandard) TestGetCategorySpendEmpty() {
	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "/v1/categories/spend", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.CategorySpendListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}
