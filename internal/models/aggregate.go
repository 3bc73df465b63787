package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodStats are the dashboard aggregates for one date range.
type PeriodStats struct {
	TotalSpend          decimal.Decimal `json:"totalSpend" example:"1830.5"`          // Sum of all non-credit-note invoice totals in the period
	InvoicesProcessed   int64           `json:"totalInvoicesProcessed" example:"14"`  // Number of invoices dated in the period
	DocumentUploads     int64           `json:"documentUploads" example:"17"`         // Number of documents uploaded in the period
	AverageInvoiceValue decimal.Decimal `json:"averageInvoiceValue" example:"130.75"` // Average non-credit-note invoice total in the period
}

// StatsForPeriod calculates the dashboard aggregates for invoices dated
// in [from, until) and documents created in the same range.
func StatsForPeriod(from, until time.Time) (PeriodStats, error) {
	spend, err := SpendForPeriod(from, until)
	if err != nil {
		return PeriodStats{}, err
	}

	var average decimal.NullDecimal
	err = DB.Table("invoices").
		Where("invoice_date >= date(?) AND invoice_date < date(?)", from, until).
		Where("is_credit_note = ?", false).
		Select("AVG(invoice_total)").
		Row().
		Scan(&average)
	if err != nil {
		return PeriodStats{}, fmt.Errorf("calculating the average invoice value failed: %w", err)
	}

	var invoices int64
	err = DB.Model(&Invoice{}).
		Where("invoice_date >= date(?) AND invoice_date < date(?)", from, until).
		Count(&invoices).Error
	if err != nil {
		return PeriodStats{}, fmt.Errorf("counting invoices failed: %w", err)
	}

	var documents int64
	err = DB.Model(&Document{}).
		Where("created_at >= date(?) AND created_at < date(?)", from, until).
		Count(&documents).Error
	if err != nil {
		return PeriodStats{}, fmt.Errorf("counting documents failed: %w", err)
	}

	return PeriodStats{
		TotalSpend:          spend,
		InvoicesProcessed:   invoices,
		DocumentUploads:     documents,
		AverageInvoiceValue: average.Decimal,
	}, nil
}

// SpendForPeriod returns the sum of all non-credit-note invoice totals
// for invoices dated in [from, until). No invoices sum to zero.
func SpendForPeriod(from, until time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("invoices").
		Where("invoice_date >= date(?) AND invoice_date < date(?)", from, until).
		Where("is_credit_note = ?", false).
		Select("SUM(invoice_total)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.NewFromFloat(0.0), fmt.Errorf("calculating the spend sum failed: %w", err)
	}

	return sum.Decimal, nil
}

// VendorSpend returns the lifetime spend of one vendor: the sum of all
// of its invoice totals with credit notes excluded.
func VendorSpend(vendorID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("invoices").
		Where("vendor_id = ? AND is_credit_note = ?", vendorID, false).
		Select("SUM(invoice_total)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.NewFromFloat(0.0), fmt.Errorf("calculating the spend for vendor %s failed: %w", vendorID, err)
	}

	return sum.Decimal, nil
}

// VendorAggregate is one vendor with its invoice count and spend sum.
type VendorAggregate struct {
	VendorID     uuid.UUID       `json:"vendorId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the vendor
	Name         string          `json:"name" example:"Acme GmbH"`                                // Name of the vendor
	InvoiceCount int64           `json:"invoiceCount" example:"12"`                               // Number of invoices for this vendor
	TotalSpend   decimal.Decimal `json:"totalSpend" example:"1830.5"`                             // Sum of the invoice totals
}

type vendorAggregateRow struct {
	VendorID     uuid.UUID
	Name         string
	InvoiceCount int64
	TotalSpend   decimal.NullDecimal
}

// TopVendorsByInvoiceCount returns the vendors with the most invoices
// dated in [from, until), ordered by invoice count. Vendors without
// positive spend in the range are dropped.
func TopVendorsByInvoiceCount(from, until time.Time, limit int) ([]VendorAggregate, error) {
	var rows []vendorAggregateRow

	err := DB.Table("invoices").
		Select("invoices.vendor_id AS vendor_id, vendors.name AS name, COUNT(invoices.id) AS invoice_count, SUM(invoices.invoice_total) AS total_spend").
		Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
		Where("invoices.invoice_date >= date(?) AND invoices.invoice_date < date(?)", from, until).
		Group("invoices.vendor_id, vendors.name").
		Order("invoice_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating vendors by invoice count failed: %w", err)
	}

	aggregates := make([]VendorAggregate, 0, len(rows))
	for _, row := range rows {
		if !row.TotalSpend.Valid || !row.TotalSpend.Decimal.IsPositive() {
			continue
		}

		aggregates = append(aggregates, VendorAggregate{
			VendorID:     row.VendorID,
			Name:         row.Name,
			InvoiceCount: row.InvoiceCount,
			TotalSpend:   row.TotalSpend.Decimal,
		})
	}

	return aggregates, nil
}

// TopVendorsBySpend returns the vendors with the highest lifetime spend,
// credit notes excluded.
func TopVendorsBySpend(limit int) ([]VendorAggregate, error) {
	var rows []vendorAggregateRow

	err := DB.Table("invoices").
		Select("invoices.vendor_id AS vendor_id, vendors.name AS name, COUNT(invoices.id) AS invoice_count, SUM(invoices.invoice_total) AS total_spend").
		Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
		Where("invoices.is_credit_note = ?", false).
		Group("invoices.vendor_id, vendors.name").
		Order("total_spend DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating vendors by spend failed: %w", err)
	}

	aggregates := make([]VendorAggregate, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, VendorAggregate{
			VendorID:     row.VendorID,
			Name:         row.Name,
			InvoiceCount: row.InvoiceCount,
			TotalSpend:   row.TotalSpend.Decimal,
		})
	}

	return aggregates, nil
}

// MonthlyTrend is the invoice count and spend of one calendar month.
type MonthlyTrend struct {
	Month        string          `json:"month" example:"2025-03"`     // Month in YYYY-MM format
	InvoiceCount int64           `json:"invoiceCount" example:"12"`   // Number of invoices dated in the month
	TotalSpend   decimal.Decimal `json:"totalSpend" example:"1830.5"` // Sum of the invoice totals of the month
}

type monthlyTrendRow struct {
	Month        string
	InvoiceCount int64
	TotalSpend   decimal.NullDecimal
}

// MonthlyTrends returns the per-month invoice counts and spend sums for
// one calendar year, in ascending month order.
func MonthlyTrends(year int) ([]MonthlyTrend, error) {
	var rows []monthlyTrendRow

	err := DB.Raw(
		"SELECT strftime('%Y-%m', invoice_date) AS month, COUNT(id) AS invoice_count, SUM(invoice_total) AS total_spend "+
			"FROM invoices WHERE invoice_date IS NOT NULL AND strftime('%Y', invoice_date) = ? "+
			"GROUP BY month ORDER BY month ASC",
		fmt.Sprintf("%04d", year),
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating the invoice trends failed: %w", err)
	}

	trends := make([]MonthlyTrend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, MonthlyTrend{
			Month:        row.Month,
			InvoiceCount: row.InvoiceCount,
			TotalSpend:   row.TotalSpend.Decimal,
		})
	}

	return trends, nil
}

// CategorySpendEntry is the line item spend of one category.
type CategorySpendEntry struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the category
	Name       string          `json:"name" example:"Category 4400"`                              // Name of the category
	Code       string          `json:"code" example:"4400"`                                       // Accounting code of the category
	TotalSpend decimal.Decimal `json:"totalSpend" example:"1830.5"`                               // Sum of the line item total prices
}

type categorySpendRow struct {
	CategoryID uuid.UUID
	Name       string
	Code       string
	TotalSpend decimal.NullDecimal
}

// CategorySpend returns the line item spend per category, highest
// spend first. Line items without a category are not included.
func CategorySpend() ([]CategorySpendEntry, error) {
	var rows []categorySpendRow

	err := DB.Table("line_items").
		Select("line_items.category_id AS category_id, categories.name AS name, categories.code AS code, SUM(line_items.total_price) AS total_spend").
		Joins("JOIN categories ON categories.id = line_items.category_id").
		Where("line_items.category_id IS NOT NULL").
		Group("line_items.category_id, categories.name, categories.code").
		Order("total_spend DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating the category spend failed: %w", err)
	}

	entries := make([]CategorySpendEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, CategorySpendEntry{
			CategoryID: row.CategoryID,
			Name:       row.Name,
			Code:       row.Code,
			TotalSpend: row.TotalSpend.Decimal,
		})
	}

	return entries, nil
}

// OutflowBucket is the upcoming cash outflow for one due date range.
type OutflowBucket struct {
	Name   string          `json:"name" example:"8-30 days"`  // The due date range
	Amount decimal.Decimal `json:"amt" example:"1830.5"`      // Sum of the invoice totals due in the range
}

// outflowBucketNames are the due date ranges in display order.
var outflowBucketNames = [4]string{"0-7 days", "8-30 days", "31-60 days", "60+ days"}

// CashOutflow buckets the totals of all invoices with an upcoming
// payment due date by how far in the future the due date lies. All
// four buckets are always returned, empty ones with a zero amount.
func CashOutflow(reference time.Time) ([]OutflowBucket, error) {
	var rows []struct {
		DueDate      time.Time
		InvoiceTotal decimal.NullDecimal
	}

	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)

	err := DB.Table("payments").
		Select("payments.due_date AS due_date, invoices.invoice_total AS invoice_total").
		Joins("JOIN invoices ON invoices.id = payments.invoice_id").
		Where("payments.due_date >= date(?)", day).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating the cash outflow failed: %w", err)
	}

	amounts := make(map[string]decimal.Decimal, len(outflowBucketNames))
	for _, row := range rows {
		due := time.Date(row.DueDate.Year(), row.DueDate.Month(), row.DueDate.Day(), 0, 0, 0, 0, time.UTC)
		days := int(due.Sub(day).Hours() / 24)

		var name string
		switch {
		case days <= 7:
			name = outflowBucketNames[0]
		case days <= 30:
			name = outflowBucketNames[1]
		case days <= 60:
			name = outflowBucketNames[2]
		default:
			name = outflowBucketNames[3]
		}

		amounts[name] = amounts[name].Add(row.InvoiceTotal.Decimal)
	}

	buckets := make([]OutflowBucket, 0, len(outflowBucketNames))
	for _, name := range outflowBucketNames {
		buckets = append(buckets, OutflowBucket{Name: name, Amount: amounts[name]})
	}

	return buckets, nil
}
