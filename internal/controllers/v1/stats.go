package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterStatsRoutes registers the routes for the dashboard statistics
// with the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

// DashboardStats are the aggregates for the dashboard header.
type DashboardStats struct {
	CurrentMonth  models.PeriodStats `json:"currentMonth"`               // Aggregates for the current calendar month
	PreviousMonth models.PeriodStats `json:"previousMonth"`              // Aggregates for the previous calendar month
	TotalSpendYTD decimal.Decimal    `json:"totalSpendYTD" example:"17830.5"` // Spend since the start of the current year
}

type StatsResponse struct {
	Data  *DashboardStats `json:"data"`                                             // The dashboard statistics
	Error *string         `json:"error" example:"the database is not reachable"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Dashboard statistics
// @Description	Returns the spend aggregates for the current month, the previous month and the year to date
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
func GetStats(c *gin.Context) {
	now := time.Now().UTC()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	previousMonthStart := monthStart.AddDate(0, -1, 0)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	currentMonth, err := models.StatsForPeriod(monthStart, nextMonthStart)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
		return
	}

	previousMonth, err := models.StatsForPeriod(previousMonthStart, monthStart)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
		return
	}

	ytdSpend, err := models.SpendForPeriod(yearStart, nextMonthStart)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Data: &DashboardStats{
			CurrentMonth:  currentMonth,
			PreviousMonth: previousMonth,
			TotalSpendYTD: ytdSpend,
		},
	})
}
