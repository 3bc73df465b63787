package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoicelens/backend/internal/httputil"
	"github.com/invoicelens/backend/internal/models"
	ez_uuid "github.com/invoicelens/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/invoices/d430d7c3-d14c-4712-9336-ee56965a6673"` // The invoice itself
}

// Invoice is the representation of an Invoice in API v1.
type Invoice struct {
	models.DefaultModel
	InvoiceNumber *string         `json:"invoiceNumber" example:"RE-2025-0041"`            // Invoice number as printed on the document
	InvoiceDate   *time.Time      `json:"invoiceDate" example:"2025-03-17T00:00:00Z"`      // Date of the invoice
	InvoiceTotal  decimal.Decimal `json:"invoiceTotal" example:"130.75"`                   // Gross total of the invoice
	Vendor        string          `json:"vendor" example:"Acme GmbH"`                      // Name of the vendor
	Customer      string          `json:"customer" example:"Muster AG"`                    // Name of the customer
	DueDate       *time.Time      `json:"dueDate" example:"2025-04-16T00:00:00Z"`          // Payment due date, if known
	Links         InvoiceLinks    `json:"links"`
}

// newInvoice returns the API v1 representation of the resource
func newInvoice(c *gin.Context, model models.Invoice) Invoice {
	invoice := Invoice{
		DefaultModel:  model.DefaultModel,
		InvoiceNumber: model.InvoiceNumber,
		InvoiceDate:   model.InvoiceDate,
		InvoiceTotal:  model.InvoiceTotal.Decimal,
		Vendor:        model.Vendor.Name,
		Customer:      model.Customer.Name,
		Links: InvoiceLinks{
			Self: fmt.Sprintf("%s/invoices/%s", httputil.RequestPathV1(c), model.ID),
		},
	}

	if model.Payment.InvoiceID == model.ID {
		invoice.DueDate = model.Payment.DueDate
	}

	return invoice
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                             // List of invoices
	Error      *string     `json:"error" example:"the database is not reachable"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                       // Pagination information
}

// swagger:enum InvoiceSort
type InvoiceSort string

const (
	SortDateDesc   InvoiceSort = ""
	SortAmountAsc  InvoiceSort = "amountAsc"
	SortAmountDesc InvoiceSort = "amountDesc"
)

type InvoiceQueryFilter struct {
	Vendor        ez_uuid.UUID `form:"vendor"`                                 // ID of the vendor
	Customer      ez_uuid.UUID `form:"customer"`                               // ID of the customer
	InvoiceNumber string       `form:"invoiceNumber"`                          // Invoice number contains this string
	FromDate      time.Time    `form:"fromDate" time_format:"2006-01-02"`      // Invoices dated on or after this date
	UntilDate     time.Time    `form:"untilDate" time_format:"2006-01-02"`     // Invoices dated on or before this date
	Sort          InvoiceSort  `form:"sort"`                                   // Sort order. Defaults to newest invoice first.
	Offset        uint         `form:"offset"`                                 // The offset of the first Invoice returned. Defaults to 0.
	Limit         int          `form:"limit,default=20"`                       // Maximum number of Invoices to return. Defaults to 20.
}
