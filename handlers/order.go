package handlers

import (
	"errors"
	"net/http"

	"cafe-pos-api/checkout"
	"cafe-pos-api/config"
	"cafe-pos-api/models"

	"github.com/gin-gonic/gin"
)

type SubmitOrderRequest struct {
	// Either a persisted cart token or inline items.
	CartToken string `json:"cart_token"`
	Items     []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items"`

	TableNumber    int    `json:"table_number" binding:"required,min=1"`
	Phone          string `json:"phone"`
	IdempotencyKey string `json:"idempotency_key"`
}

// SubmitOrder converts a cart into a priced Pending order
func SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submit := checkout.SubmitRequest{
		TableNumber:    req.TableNumber,
		Phone:          req.Phone,
		IdempotencyKey: req.IdempotencyKey,
	}

	if req.CartToken != "" {
		var cart models.Cart
		if err := config.DB.Preload("Items").Where("token = ?", req.CartToken).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		for _, item := range cart.Items {
			submit.Lines = append(submit.Lines, checkout.Line{
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
			})
		}
		submit.CartID = &cart.ID
	} else {
		for _, item := range req.Items {
			submit.Lines = append(submit.Lines, checkout.Line{
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
			})
		}
	}

	order, err := checkout.Submit(config.DB, submit)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, checkout.ErrItemNotFound):
			status = http.StatusNotFound
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrInvalidQuantity),
			errors.Is(err, checkout.ErrItemUnavailable),
			errors.Is(err, checkout.ErrInvalidPhone):
			status = http.StatusBadRequest
		default:
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Items").Preload("Customer").First(order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order submitted successfully",
		"order":   order,
	})
}

// GetOrder returns a single order with its line items (public, by id)
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.
		Preload("Items.MenuItem").
		Preload("Customer").
		Preload("Staff").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
