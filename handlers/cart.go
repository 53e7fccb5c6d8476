package handlers

import (
	"net/http"

	"cafe-pos-api/config"
	"cafe-pos-api/models"
	"cafe-pos-api/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddToCartRequest struct {
	CartToken  string `json:"cart_token"`
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

// AddToCart adds a menu item to a cart, creating the cart on first use.
// Repeat adds of the same item merge quantities.
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
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

	var cart models.Cart
	if req.CartToken != "" {
		if err := config.DB.Where("token = ?", req.CartToken).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
	} else {
		cart = models.Cart{Token: uuid.NewString()}
		if err := config.DB.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
	}

	var existing models.CartItem
	err := config.DB.Where("cart_id = ? AND menu_item_id = ?", cart.ID, menuItem.ID).First(&existing).Error
	if err == nil {
		config.DB.Model(&existing).Update("quantity", existing.Quantity+req.Quantity)
	} else {
		config.DB.Create(&models.CartItem{
			CartID:     cart.ID,
			MenuItemID: menuItem.ID,
			Quantity:   req.Quantity,
		})
	}

	respondWithCart(c, cart.Token, http.StatusOK)
}

// GetCart returns the cart with per-line and grand totals. Totals are
// computed from current menu prices, never stored: the cart is not an order.
func GetCart(c *gin.Context) {
	respondWithCart(c, c.Param("token"), http.StatusOK)
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// UpdateCartItem changes a cart line's quantity; zero removes the line.
func UpdateCartItem(c *gin.Context) {
	var cart models.Cart
	if err := config.DB.Where("token = ?", c.Param("token")).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	var item models.CartItem
	if err := config.DB.Where("cart_id = ? AND menu_item_id = ?", cart.ID, c.Param("itemId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Quantity == 0 {
		config.DB.Delete(&item)
	} else {
		config.DB.Model(&item).Update("quantity", *req.Quantity)
	}

	respondWithCart(c, cart.Token, http.StatusOK)
}

// RemoveCartItem deletes a line from the cart
func RemoveCartItem(c *gin.Context) {
	var cart models.Cart
	if err := config.DB.Where("token = ?", c.Param("token")).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	result := config.DB.Where("cart_id = ? AND menu_item_id = ?", cart.ID, c.Param("itemId")).Delete(&models.CartItem{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}

	respondWithCart(c, cart.Token, http.StatusOK)
}

func respondWithCart(c *gin.Context, token string, status int) {
	var cart models.Cart
	if err := config.DB.Preload("Items.MenuItem").Where("token = ?", token).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	total := decimal.Zero
	lines := make([]gin.H, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineTotal := pricing.Subtotal(item.MenuItem.Price, item.Quantity)
		total = total.Add(lineTotal)
		lines = append(lines, gin.H{
			"menu_item_id": item.MenuItemID,
			"name":         item.MenuItem.Name,
			"unit_price":   item.MenuItem.Price,
			"quantity":     item.Quantity,
			"line_total":   lineTotal,
		})
	}

	c.JSON(status, gin.H{
		"cart_token":  cart.Token,
		"items":       lines,
		"total_price": total,
	})
}
