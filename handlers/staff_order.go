package handlers

import (
	"net/http"

	"cafe-pos-api/config"
	"cafe-pos-api/middleware"
	"cafe-pos-api/models"
	"cafe-pos-api/pricing"
	"cafe-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrders returns orders for staff, newest first
func ListOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items.MenuItem").Preload("Customer").Preload("Staff")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if table := c.Query("table"); table != "" {
		query = query.Where("table_number = ?", table)
	}

	query.Order("created_at desc").Find(&orders)

	// Dashboard summary: counts by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through the state machine
func UpdateOrderStatus(c *gin.Context) {
	staffID := middleware.GetStaffID(c)
	role := middleware.GetRole(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, role); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Updates(map[string]interface{}{
		"status":   req.Status,
		"staff_id": staffID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

type AddOrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// AddOrderItem appends a line item to a Pending order, snapshotting the
// current menu price, then recomputes the order total.
func AddOrderItem(c *gin.Context) {
	order, ok := mutableOrder(c)
	if !ok {
		return
	}

	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !menuItem.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + menuItem.Name + "' is not available"})
		return
	}

	var total decimal.Decimal
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		item := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   req.Quantity,
			Subtotal:   pricing.Subtotal(menuItem.Price, req.Quantity),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		t, err := pricing.RecomputeTotal(tx, order.ID)
		if err != nil {
			return err
		}
		total = t
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Item added to order",
		"order_id":    order.ID,
		"total_price": total,
	})
}

type UpdateOrderItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// UpdateOrderItem changes a line item's quantity; zero removes the line.
// The subtotal is recomputed from the snapshotted unit price, never from the
// current menu price.
func UpdateOrderItem(c *gin.Context) {
	order, ok := mutableOrder(c)
	if !ok {
		return
	}

	var item models.OrderItem
	if err := config.DB.Where("order_id = ? AND menu_item_id = ?", order.ID, c.Param("itemId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Line item not found on this order"})
		return
	}

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var total decimal.Decimal
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if *req.Quantity == 0 {
			if err := tx.Delete(&item).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&item).Updates(map[string]interface{}{
				"quantity": *req.Quantity,
				"subtotal": pricing.Subtotal(item.UnitPrice, *req.Quantity),
			}).Error; err != nil {
				return err
			}
		}
		t, err := pricing.RecomputeTotal(tx, order.ID)
		if err != nil {
			return err
		}
		total = t
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Line item updated",
		"order_id":    order.ID,
		"total_price": total,
	})
}

// RemoveOrderItem deletes a line item and recomputes the order total
func RemoveOrderItem(c *gin.Context) {
	order, ok := mutableOrder(c)
	if !ok {
		return
	}

	var item models.OrderItem
	if err := config.DB.Where("order_id = ? AND menu_item_id = ?", order.ID, c.Param("itemId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Line item not found on this order"})
		return
	}

	var total decimal.Decimal
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		t, err := pricing.RecomputeTotal(tx, order.ID)
		if err != nil {
			return err
		}
		total = t
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Line item removed",
		"order_id":    order.ID,
		"total_price": total,
	})
}

// mutableOrder loads the order from the path and rejects mutations on
// terminal orders.
func mutableOrder(c *gin.Context) (*models.Order, bool) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}
	if statemachine.IsTerminal(order.Status) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Order can no longer be modified",
			"current_status": order.Status,
		})
		return nil, false
	}
	return &order, true
}
