package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
)

// topVendorLimit is the number of vendors the top vendor endpoints return.
const topVendorLimit = 10

// RegisterVendorRoutes registers the routes for the vendor aggregations
// with the RouterGroup that is passed.
func RegisterVendorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/top-by-invoices", OptionsVendorsTopByInvoices)
	r.GET("/top-by-invoices", GetVendorsTopByInvoices)

	r.OPTIONS("/top-by-spend", OptionsVendorsTopBySpend)
	r.GET("/top-by-spend", GetVendorsTopBySpend)
}

type VendorListResponse struct {
	Data  []models.VendorAggregate `json:"data"`                                             // List of vendor aggregates
	Error *string                  `json:"error" example:"the database is not reachable"` // The error, if any occurred
}

type YearQuery struct {
	Year int `form:"year" example:"2025"` // Calendar year to aggregate over. Defaults to the current year.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vendors
// @Success		204
// @Router			/v1/vendors/top-by-invoices [options]
func OptionsVendorsTopByInvoices(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Top vendors by invoice count
// @Description	Returns the vendors with the most invoices in a calendar year. Vendors without positive spend are not included.
// @Tags			Vendors
// @Produce		json
// @Success		200		{object}	VendorListResponse
// @Failure		400		{object}	VendorListResponse
// @Failure		500		{object}	VendorListResponse
// @Param			year	query		int	false	"Calendar year. Defaults to the current year."
// @Router			/v1/vendors/top-by-invoices [get]
func GetVendorsTopByInvoices(c *gin.Context) {
	var query YearQuery
	if err := c.ShouldBind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, VendorListResponse{Error: &s})
		return
	}

	year := query.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	yearStart := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	nextYearStart := yearStart.AddDate(1, 0, 0)

	vendors, err := models.TopVendorsByInvoiceCount(yearStart, nextYearStart, topVendorLimit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, VendorListResponse{Data: vendors})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Vendors
// @Success		204
// @Router			/v1/vendors/top-by-spend [options]
func OptionsVendorsTopBySpend(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Top vendors by spend
// @Description	Returns the vendors with the highest lifetime spend, credit notes excluded
// @Tags			Vendors
// @Produce		json
// @Success		200	{object}	VendorListResponse
// @Failure		500	{object}	VendorListResponse
// @Router			/v1/vendors/top-by-spend [get]
func GetVendorsTopBySpend(c *gin.Context) {
	vendors, err := models.TopVendorsBySpend(topVendorLimit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), VendorListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, VendorListResponse{Data: vendors})
}
