package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
	ez_uuid "github.com/invoicelens/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// RegisterInvoiceRoutes registers the routes for Invoices with
// the RouterGroup that is passed.
func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInvoiceList)
	r.GET("", GetInvoices)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoiceList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List invoices
// @Description	Returns a paginated list of invoices, credit notes excluded
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceListResponse
// @Failure		400	{object}	InvoiceListResponse
// @Failure		500	{object}	InvoiceListResponse
// @Router			/v1/invoices [get]
// @Param			vendor			query	string	false	"Filter by vendor ID"
// @Param			customer		query	string	false	"Filter by customer ID"
// @Param			invoiceNumber	query	string	false	"Invoice number contains this string"
// @Param			fromDate		query	string	false	"Invoices dated on or after this date (YYYY-MM-DD)"
// @Param			untilDate		query	string	false	"Invoices dated on or before this date (YYYY-MM-DD)"
// @Param			sort			query	string	false	"Sort order: amountAsc or amountDesc. Defaults to newest invoice first."
// @Param			offset			query	uint	false	"The offset of the first Invoice returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Invoices to return. Defaults to 20."
func GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{Error: &s})
		return
	}

	if !slices.Contains([]InvoiceSort{SortDateDesc, SortAmountAsc, SortAmountDesc}, filter.Sort) {
		s := errInvoiceSortInvalid.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{Error: &s})
		return
	}

	q := models.DB.
		Model(&models.Invoice{}).
		Preload("Vendor").
		Preload("Customer").
		Preload("Payment").
		Where("invoices.is_credit_note = ?", false)

	if filter.Vendor != ez_uuid.Nil {
		q = q.Where("invoices.vendor_id = ?", filter.Vendor.UUID)
	}

	if filter.Customer != ez_uuid.Nil {
		q = q.Where("invoices.customer_id = ?", filter.Customer.UUID)
	}

	if filter.InvoiceNumber != "" {
		q = q.Where("invoices.invoice_number LIKE ?", fmt.Sprintf("%%%s%%", filter.InvoiceNumber))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("invoices.invoice_date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("invoices.invoice_date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	switch filter.Sort {
	case SortAmountAsc:
		q = q.Order("invoices.invoice_total ASC")
	case SortAmountDesc:
		q = q.Order("invoices.invoice_total DESC")
	default:
		q = q.Order("invoices.invoice_date DESC")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))
	q = q.Limit(filter.Limit)

	var invoices []models.Invoice
	err := q.Find(&invoices).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvoiceListResponse{Error: &s})
		return
	}

	data := make([]Invoice, 0)
	for _, invoice := range invoices {
		data = append(data, newInvoice(c, invoice))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}
