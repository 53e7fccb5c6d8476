package handlers

import (
	"net/http"
	"time"

	"cafe-pos-api/config"
	"cafe-pos-api/models"
	"cafe-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListCategories returns all menu categories (public)
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Order("name").Find(&categories)
	c.JSON(http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	})
}

// GetMenu returns the menu (public)
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Category")

	if category := c.Query("category"); category != "" {
		query = query.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.name = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("menu_items.name LIKE ?", "%"+search+"%")
	}
	// Hide unavailable items unless explicitly asked for everything
	if c.Query("all") != "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetMenuItem returns a single menu item (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Preload("Category").First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetCafeInfo returns café details plus whether it is open right now (public)
func GetCafeInfo(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.Preload("Tables").First(&cafe).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Café not configured"})
		return
	}

	available := 0
	for _, t := range cafe.Tables {
		if t.IsAvailable() {
			available++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"cafe":             cafe,
		"open_now":         cafe.IsOpenAt(time.Now()),
		"available_tables": available,
	})
}

// GetStateMachineInfo returns the full order state machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCanceled},
		"description":     "Café Order Lifecycle State Machine",
	})
}
