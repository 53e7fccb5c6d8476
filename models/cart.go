package models

import "time"

// Cart is a pending selection before checkout. It is addressed by an opaque
// token handed to the client, not by customer identity: guests can carry a
// cart too. Carts are deleted as part of the order submission transaction.
type Cart struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Token      string     `json:"token" gorm:"uniqueIndex;not null"`
	CustomerID *uint      `json:"customer_id"`
	Customer   *Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items      []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CartID     uint     `json:"cart_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
}
