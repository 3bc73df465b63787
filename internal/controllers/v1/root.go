package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Stats               string `json:"stats" example:"https://example.com/api/v1/stats"`                                   // URL of the dashboard statistics endpoint
	VendorsTopByInvoice string `json:"vendorsTopByInvoices" example:"https://example.com/api/v1/vendors/top-by-invoices"` // URL of the top vendors by invoice count endpoint
	VendorsTopBySpend   string `json:"vendorsTopBySpend" example:"https://example.com/api/v1/vendors/top-by-spend"`       // URL of the top vendors by spend endpoint
	Trends              string `json:"trends" example:"https://example.com/api/v1/trends"`                                // URL of the monthly invoice trends endpoint
	CategorySpend       string `json:"categorySpend" example:"https://example.com/api/v1/categories/spend"`               // URL of the category spend endpoint
	CashOutflow         string `json:"cashOutflow" example:"https://example.com/api/v1/cash-outflow"`                     // URL of the cash outflow endpoint
	Invoices            string `json:"invoices" example:"https://example.com/api/v1/invoices"`                            // URL of the invoice collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Stats:               url + "/stats",
			VendorsTopByInvoice: url + "/vendors/top-by-invoices",
			VendorsTopBySpend:   url + "/vendors/top-by-spend",
			Trends:              url + "/trends",
			CategorySpend:       url + "/categories/spend",
			CashOutflow:         url + "/cash-outflow",
			Invoices:            url + "/invoices",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
