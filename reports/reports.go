// Package reports holds the read-only sales aggregation queries. Nothing in
// here mutates state; an empty date range is a valid empty result, not an
// error.
package reports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"cafe-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GroupBy selects the aggregation dimension for a sales report.
type GroupBy string

const (
	ByItem     GroupBy = "item"
	ByDay      GroupBy = "day"
	ByMonth    GroupBy = "month"
	ByYear     GroupBy = "year"
	ByStaff    GroupBy = "staff"
	ByCustomer GroupBy = "customer"
)

var ErrUnknownGroupBy = errors.New("unknown group_by dimension")

// Row is one aggregate line of a sales report.
type Row struct {
	GroupKey      string          `json:"group_key"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// Summary is the headline numbers for a date range.
type Summary struct {
	OrderCount   int64           `json:"order_count"`
	ItemCount    int64           `json:"item_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Sales aggregates completed-order line items over [from, to) grouped by the
// requested dimension, producing (group key, total quantity, total revenue)
// rows.
func Sales(db *gorm.DB, from, to time.Time, groupBy GroupBy, status models.OrderStatus) ([]Row, error) {
	q := db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", status).
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to)

	// Stored timestamps start with YYYY-MM-DD, so date buckets are plain
	// prefixes.
	switch groupBy {
	case ByItem:
		q = q.Select("order_items.name AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
			Group("order_items.name")
	case ByDay:
		q = q.Select("substr(orders.created_at, 1, 10) AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
			Group("substr(orders.created_at, 1, 10)")
	case ByMonth:
		q = q.Select("substr(orders.created_at, 1, 7) AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
			Group("substr(orders.created_at, 1, 7)")
	case ByYear:
		q = q.Select("substr(orders.created_at, 1, 4) AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
			Group("substr(orders.created_at, 1, 4)")
	case ByStaff:
		q = q.Joins("LEFT JOIN staffs ON staffs.id = orders.staff_id").
			Select("COALESCE(staffs.email, 'unassigned') AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
			Group("COALESCE(staffs.email, 'unassigned')")
	case ByCustomer:
		q = q.Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
			Select("COALESCE(customers.phone_number, 'guest') AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
			Group("COALESCE(customers.phone_number, 'guest')")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroupBy, groupBy)
	}

	var rows []Row
	if err := q.Order("group_key").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopProducts returns the best-selling items by quantity over the trailing
// window ending now.
func TopProducts(db *gorm.DB, window time.Duration, limit int) ([]Row, error) {
	since := time.Now().Add(-window)
	var rows []Row
	err := db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", models.StatusCompleted).
		Where("orders.created_at >= ?", since).
		Select("order_items.name AS group_key, SUM(order_items.quantity) AS total_quantity, SUM(order_items.subtotal) AS total_revenue").
		Group("order_items.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HourBucket is one hour-of-day slot in the peak-hours report.
type HourBucket struct {
	Hour         string          `json:"hour"` // "00".."23"
	OrderCount   int64           `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// PeakHours buckets orders by hour of day over the trailing window, busiest
// hour first, regardless of status: a canceled order was still traffic.
// Stored timestamps carry the hour at a fixed offset after the date.
func PeakHours(db *gorm.DB, window time.Duration) ([]HourBucket, error) {
	since := time.Now().Add(-window)
	var buckets []HourBucket
	err := db.Table("orders").
		Where("created_at >= ?", since).
		Select("substr(created_at, 12, 2) AS hour, COUNT(*) AS order_count, COALESCE(SUM(total_price), 0) AS total_revenue").
		Group("substr(created_at, 12, 2)").
		Order("order_count DESC, hour").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// SalesSummary returns order count, item count, and revenue over [from, to).
func SalesSummary(db *gorm.DB, from, to time.Time, status models.OrderStatus) (*Summary, error) {
	var s Summary
	err := db.Table("orders").
		Where("status = ?", status).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COUNT(*) AS order_count, COALESCE(SUM(total_price), 0) AS total_revenue").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	err = db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ?", status).
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Select("COALESCE(SUM(order_items.quantity), 0) AS item_count").
		Scan(&s.ItemCount).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// WriteCSV writes report rows for export consumers. Spreadsheet styling is
// the caller's problem.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"group", "total_quantity", "total_revenue"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.GroupKey,
			fmt.Sprintf("%d", r.TotalQuantity),
			r.TotalRevenue.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
