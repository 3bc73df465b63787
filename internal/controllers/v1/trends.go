package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
)

// RegisterTrendRoutes registers the routes for the monthly invoice
// trends with the RouterGroup that is passed.
func RegisterTrendRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTrends)
	r.GET("", GetTrends)
}

type TrendListResponse struct {
	Data  []models.MonthlyTrend `json:"data"`                                             // Per-month invoice counts and spend sums
	Error *string               `json:"error" example:"the database is not reachable"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trends
// @Success		204
// @Router			/v1/trends [options]
func OptionsTrends(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly invoice trends
// @Description	Returns the per-month invoice count and spend for a calendar year
// @Tags			Trends
// @Produce		json
// @Success		200		{object}	TrendListResponse
// @Failure		400		{object}	TrendListResponse
// @Failure		500		{object}	TrendListResponse
// @Param			year	query		int	false	"Calendar year. Defaults to the current year."
// @Router			/v1/trends [get]
func GetTrends(c *gin.Context) {
	var query YearQuery
	if err := c.ShouldBind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendListResponse{Error: &s})
		return
	}

	year := query.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	trends, err := models.MonthlyTrends(year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TrendListResponse{Data: trends})
}
