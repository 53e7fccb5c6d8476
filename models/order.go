package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a café order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCanceled  OrderStatus = "Canceled"
)

type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	CustomerID     *uint           `json:"customer_id"`
	Customer       *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	StaffID        *uint           `json:"staff_id"`
	Staff          *Staff          `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	TableNumber    int             `json:"table_number"`
	Status         OrderStatus     `json:"status" gorm:"not null;default:'Pending'"`
	TotalPrice     decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2)"` // derived, recomputed on every line mutation
	IdempotencyKey *string         `json:"idempotency_key,omitempty" gorm:"uniqueIndex"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null"`
	MenuItemID uint            `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Name       string          `json:"name"`                                 // snapshot name at time of order
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"` // snapshot price at time of order
	Quantity   int             `json:"quantity" gorm:"not null"`
	Subtotal   decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"` // quantity × unit price, fixed at creation
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
