package v1_test

import (
	"net/http"

	v1 "github.com/invoicelens/backend/internal/controllers/v1"
	"github.com/invoicelens/backend/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), suite.router(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/stats", response.Links.Stats)
	suite.Assert().Equal("http://example.com/v1/invoices", response.Links.Invoices)
	suite.Assert().Equal("http://example.com/v1/cash-outflow", response.Links.CashOutflow)
}

func (suite *TestSuiteStandard) TestOptions() {
	paths := []string{
		"/v1",
		"/v1/stats",
		"/v1/vendors/top-by-invoices",
		"/v1/vendors/top-by-spend",
		"/v1/trends",
		"/v1/categories/spend",
		"/v1/cash-outflow",
		"/v1/invoices",
	}

	r := suite.router()
	for _, path := range paths {
		recorder := test.Request(suite.T(), r, http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
		suite.Assert().Equal("GET", recorder.Header().Get("allow"), "wrong allow header for %s", path)
	}
}
