package pricing

import (
	"testing"

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

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
	}{
		{"single unit", "2.50", 1, "2.50"},
		{"two units", "2.50", 2, "5.00"},
		{"free item", "0.00", 3, "0.00"},
		{"large quantity", "1.25", 100, "125.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(dec(tt.price), tt.quantity)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func seedOrder(t *testing.T, db *gorm.DB, subtotals ...string) *models.Order {
	t.Helper()
	category := models.Category{Name: "Drinks"}
	require.NoError(t, db.Create(&category).Error)

	order := models.Order{Status: models.StatusPending, TableNumber: 1}
	require.NoError(t, db.Create(&order).Error)

	for _, s := range subtotals {
		item := models.MenuItem{Name: "Coffee", Price: dec(s), CategoryID: category.ID, IsAvailable: true}
		require.NoError(t, db.Create(&item).Error)
		require.NoError(t, db.Create(&models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   1,
			Subtotal:   dec(s),
		}).Error)
	}
	return &order
}

func TestRecomputeTotal(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db, "5.00", "2.50")

	total, err := RecomputeTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("7.50")), "got %s", total)

	// The recomputed total is persisted onto the order row
	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.True(t, stored.TotalPrice.Equal(dec("7.50")), "stored %s", stored.TotalPrice)
}

func TestRecomputeTotalAfterDelete(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db, "5.00", "2.50")

	_, err := RecomputeTotal(db, order.ID)
	require.NoError(t, err)

	var first models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id").First(&first).Error)
	require.NoError(t, db.Delete(&first).Error)

	total, err := RecomputeTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("2.50")), "got %s", total)
}

func TestRecomputeTotalEmptyOrder(t *testing.T) {
	db := newTestDB(t)
	order := models.Order{Status: models.StatusPending, TotalPrice: dec("9.99")}
	require.NoError(t, db.Create(&order).Error)

	total, err := RecomputeTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "got %s", total)
}

func TestSubtotalUnaffectedByMenuPriceChange(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db, "2.50")

	// Raise the menu price; the line item snapshot must not move
	require.NoError(t, db.Model(&models.MenuItem{}).Where("1 = 1").
		Update("price", dec("99.00")).Error)

	total, err := RecomputeTotal(db, order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("2.50")), "got %s", total)
}
