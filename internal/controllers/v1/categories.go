package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for the category
// aggregations with the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/spend", OptionsCategorySpend)
	r.GET("/spend", GetCategorySpend)
}

type CategorySpendListResponse struct {
	Data  []models.CategorySpendEntry `json:"data"`                                             // Line item spend per category, highest first
	Error *string                     `json:"error" example:"the database is not reachable"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/spend [options]
func OptionsCategorySpend(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Category spend
// @Description	Returns the line item spend grouped by category, highest spend first
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategorySpendListResponse
// @Failure		500	{object}	CategorySpendListResponse
// @Router			/v1/categories/spend [get]
func GetCategorySpend(c *gin.Context) {
	entries, err := models.CategorySpend()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySpendListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategorySpendListResponse{Data: entries})
}
