// Package checkout converts a cart of menu items into a persisted, priced
// order. Submission is all-or-nothing: any unknown or unavailable menu item
// rejects the whole cart, and the order, its line items, the customer's
// loyalty points, and the cart deletion all commit in a single transaction.
package checkout

import (
	"errors"
	"fmt"

	"cafe-pos-api/models"
	"cafe-pos-api/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart       = errors.New("cart has no items")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrInvalidPhone    = errors.New("invalid phone number")
)

// Line is one cart entry: a menu item and a desired quantity.
type Line struct {
	MenuItemID uint
	Quantity   int
}

// SubmitRequest carries everything needed to turn a cart into an order.
type SubmitRequest struct {
	Lines       []Line
	TableNumber int

	// Phone identifies the purchaser. Empty means an anonymous guest order
	// with no loyalty points awarded.
	Phone string

	// StaffID is set when a staff member keys in the order at the counter.
	StaffID *uint

	// IdempotencyKey guards against double submission (double-click
	// checkout). A repeat submit with the same key returns the order
	// created the first time instead of creating a duplicate.
	IdempotencyKey string

	// CartID, when set, is the persisted cart to delete inside the same
	// transaction that creates the order.
	CartID *uint
}

// Submit validates the cart, creates the order with its line items, awards
// loyalty points, and clears the persisted cart, all in one transaction.
func Submit(db *gorm.DB, req SubmitRequest) (*models.Order, error) {
	if req.IdempotencyKey != "" {
		var existing models.Order
		err := db.Preload("Items").
			Where("idempotency_key = ?", req.IdempotencyKey).
			First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if req.Phone != "" && !models.ValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, req.Phone)
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var customer *models.Customer
		if req.Phone != "" {
			var err error
			customer, err = getOrCreateCustomer(tx, req.Phone, req.TableNumber)
			if err != nil {
				return err
			}
		}

		total := decimal.Zero
		points := 0
		var items []models.OrderItem
		for _, line := range req.Lines {
			if line.Quantity < 1 {
				return fmt.Errorf("%w: got %d for item %d", ErrInvalidQuantity, line.Quantity, line.MenuItemID)
			}
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrItemNotFound, line.MenuItemID)
				}
				return err
			}
			if !menuItem.IsAvailable {
				return fmt.Errorf("%w: %s", ErrItemUnavailable, menuItem.Name)
			}

			subtotal := pricing.Subtotal(menuItem.Price, line.Quantity)
			total = total.Add(subtotal)
			points += menuItem.Points * line.Quantity
			items = append(items, models.OrderItem{
				MenuItemID: menuItem.ID,
				Name:       menuItem.Name,
				UnitPrice:  menuItem.Price,
				Quantity:   line.Quantity,
				Subtotal:   subtotal,
			})
		}

		order = models.Order{
			StaffID:     req.StaffID,
			TableNumber: req.TableNumber,
			Status:      models.StatusPending,
			TotalPrice:  total.Round(2),
			Items:       items,
		}
		if customer != nil {
			order.CustomerID = &customer.ID
		}
		if req.IdempotencyKey != "" {
			key := req.IdempotencyKey
			order.IdempotencyKey = &key
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if customer != nil && points > 0 {
			if err := tx.Model(customer).
				Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
				return err
			}
		}

		if req.CartID != nil {
			if err := tx.Where("cart_id = ?", *req.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Cart{}, *req.CartID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Two concurrent submits with the same key can both miss the
		// pre-check; the loser hits the unique index. The order it
		// wanted already exists, so hand that one back.
		if req.IdempotencyKey != "" {
			var existing models.Order
			if lookupErr := db.Preload("Items").
				Where("idempotency_key = ?", req.IdempotencyKey).
				First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &order, nil
}

func getOrCreateCustomer(tx *gorm.DB, phone string, tableNumber int) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("phone_number = ?", phone).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	customer = models.Customer{
		PhoneNumber: phone,
		TableNumber: tableNumber,
		IsActive:    true,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
