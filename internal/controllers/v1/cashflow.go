package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
)

// RegisterCashOutflowRoutes registers the routes for the cash outflow
// projection with the RouterGroup that is passed.
func RegisterCashOutflowRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCashOutflow)
	r.GET("", GetCashOutflow)
}

type CashOutflowListResponse struct {
	Data  []models.OutflowBucket `json:"data"`                                             // Upcoming invoice totals per due date range
	Error *string                `json:"error" example:"the database is not reachable"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CashOutflow
// @Success		204
// @Router			/v1/cash-outflow [options]
func OptionsCashOutflow(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Upcoming cash outflow
// @Description	Returns the invoice totals with an upcoming payment due date, bucketed by how far in the future the due date lies
// @Tags			CashOutflow
// @Produce		json
// @Success		200	{object}	CashOutflowListResponse
// @Failure		500	{object}	CashOutflowListResponse
// @Router			/v1/cash-outflow [get]
func GetCashOutflow(c *gin.Context) {
	buckets, err := models.CashOutflow(time.Now().UTC())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CashOutflowListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CashOutflowListResponse{Data: buckets})
}
