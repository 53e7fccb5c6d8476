package reports

import (
	"bytes"
	"testing"
	"time"

	"cafe-pos-api/config"
	"cafe-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedSales creates two Completed orders on different days plus one Pending
// order that must never show up in completed-only reports:
//
//	day 1: 2 × Coffee (5.00)
//	day 2: 1 × Coffee (2.50), 1 × Tea (2.00)
//	day 2: Pending, 5 × Coffee (ignored)
func seedSales(t *testing.T, db *gorm.DB) (day1, day2 time.Time) {
	t.Helper()
	day1 = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)

	makeOrder := func(at time.Time, status models.OrderStatus, total string, items []models.OrderItem) {
		order := models.Order{Status: status, TotalPrice: dec(total), TableNumber: 1, Items: items}
		require.NoError(t, db.Create(&order).Error)
		require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("created_at", at).Error)
	}

	makeOrder(day1, models.StatusCompleted, "5.00", []models.OrderItem{
		{MenuItemID: 1, Name: "Coffee", UnitPrice: dec("2.50"), Quantity: 2, Subtotal: dec("5.00")},
	})
	makeOrder(day2, models.StatusCompleted, "4.50", []models.OrderItem{
		{MenuItemID: 1, Name: "Coffee", UnitPrice: dec("2.50"), Quantity: 1, Subtotal: dec("2.50")},
		{MenuItemID: 2, Name: "Tea", UnitPrice: dec("2.00"), Quantity: 1, Subtotal: dec("2.00")},
	})
	makeOrder(day2, models.StatusPending, "12.50", []models.OrderItem{
		{MenuItemID: 1, Name: "Coffee", UnitPrice: dec("2.50"), Quantity: 5, Subtotal: dec("12.50")},
	})
	return day1, day2
}

func reportRange(day1, day2 time.Time) (time.Time, time.Time) {
	return day1.AddDate(0, 0, -1), day2.AddDate(0, 0, 1)
}

func TestSalesByItem(t *testing.T) {
	db := newTestDB(t)
	day1, day2 := seedSales(t, db)
	from, to := reportRange(day1, day2)

	rows, err := Sales(db, from, to, ByItem, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Rows come back ordered by group key
	assert.Equal(t, "Coffee", rows[0].GroupKey)
	assert.EqualValues(t, 3, rows[0].TotalQuantity)
	assert.True(t, rows[0].TotalRevenue.Equal(dec("7.50")), "revenue %s", rows[0].TotalRevenue)

	assert.Equal(t, "Tea", rows[1].GroupKey)
	assert.EqualValues(t, 1, rows[1].TotalQuantity)
	assert.True(t, rows[1].TotalRevenue.Equal(dec("2.00")), "revenue %s", rows[1].TotalRevenue)
}

func TestSalesByDay(t *testing.T) {
	db := newTestDB(t)
	day1, day2 := seedSales(t, db)
	from, to := reportRange(day1, day2)

	rows, err := Sales(db, from, to, ByDay, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-03-10", rows[0].GroupKey)
	assert.True(t, rows[0].TotalRevenue.Equal(dec("5.00")), "revenue %s", rows[0].TotalRevenue)
	assert.Equal(t, "2026-03-11", rows[1].GroupKey)
	assert.True(t, rows[1].TotalRevenue.Equal(dec("4.50")), "revenue %s", rows[1].TotalRevenue)
}

func TestSalesByMonth(t *testing.T) {
	db := newTestDB(t)
	day1, day2 := seedSales(t, db)
	from, to := reportRange(day1, day2)

	rows, err := Sales(db, from, to, ByMonth, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03", rows[0].GroupKey)
	assert.EqualValues(t, 4, rows[0].TotalQuantity)
	assert.True(t, rows[0].TotalRevenue.Equal(dec("9.50")), "revenue %s", rows[0].TotalRevenue)
}

func TestSalesStatusFilter(t *testing.T) {
	db := newTestDB(t)
	day1, day2 := seedSales(t, db)
	from, to := reportRange(day1, day2)

	rows, err := Sales(db, from, to, ByItem, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 5, rows[0].TotalQuantity)
}

func TestSalesEmptyRange(t *testing.T) {
	db := newTestDB(t)
	day1, _ := seedSales(t, db)

	// A range before any order is a valid empty result, not an error
	rows, err := Sales(db, day1.AddDate(0, -2, 0), day1.AddDate(0, -1, 0), ByItem, models.StatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSalesUnknownGroupBy(t *testing.T) {
	db := newTestDB(t)
	_, err := Sales(db, time.Now().AddDate(0, 0, -1), time.Now(), GroupBy("weather"), models.StatusCompleted)
	assert.ErrorIs(t, err, ErrUnknownGroupBy)
}

func TestSalesSummary(t *testing.T) {
	db := newTestDB(t)
	day1, day2 := seedSales(t, db)
	from, to := reportRange(day1, day2)

	summary, err := SalesSummary(db, from, to, models.StatusCompleted)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.OrderCount)
	assert.EqualValues(t, 4, summary.ItemCount)
	assert.True(t, summary.TotalRevenue.Equal(dec("9.50")), "revenue %s", summary.TotalRevenue)
}

func TestPeakHours(t *testing.T) {
	db := newTestDB(t)
	seedSales(t, db)

	// Window wide enough to cover the seeded orders; Pending traffic counts
	// too, a waiting customer is load regardless of how the order ends up
	buckets, err := PeakHours(db, 10*365*24*time.Hour)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// Busiest hour first: two orders landed at 09:30, one at 12:00
	assert.Equal(t, "09", buckets[0].Hour)
	assert.EqualValues(t, 2, buckets[0].OrderCount)
	assert.True(t, buckets[0].TotalRevenue.Equal(dec("17.00")), "revenue %s", buckets[0].TotalRevenue)

	assert.Equal(t, "12", buckets[1].Hour)
	assert.EqualValues(t, 1, buckets[1].OrderCount)
	assert.True(t, buckets[1].TotalRevenue.Equal(dec("5.00")), "revenue %s", buckets[1].TotalRevenue)
}

func TestPeakHoursEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	seedSales(t, db)

	// Seeded orders are months old; a one-hour window sees none of them
	buckets, err := PeakHours(db, time.Hour)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{GroupKey: "Coffee", TotalQuantity: 3, TotalRevenue: dec("7.50")},
		{GroupKey: "Tea", TotalQuantity: 1, TotalRevenue: dec("2.00")},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))
	assert.Equal(t, "group,total_quantity,total_revenue\nCoffee,3,7.50\nTea,1,2.00\n", buf.String())
}
