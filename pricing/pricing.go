package pricing

import (
	"cafe-pos-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subtotal returns quantity × unit price, rounded half-up to two decimal
// places. Inputs are already 2dp prices so rounding is normally a no-op.
func Subtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// RecomputeTotal derives an order's total price from its current line items
// and persists it back onto the order row. The stored total is never trusted:
// every line-item create, update, or delete must call this afterwards.
func RecomputeTotal(db *gorm.DB, orderID uint) (decimal.Decimal, error) {
	var items []models.OrderItem
	if err := db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	total = total.Round(2)

	if err := db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
