package handlers

import (
	"net/http"
	"strconv"
	"time"

	"cafe-pos-api/config"
	"cafe-pos-api/models"
	"cafe-pos-api/reports"

	"github.com/gin-gonic/gin"
)

// ── Reports ─────────────────────────────────────────────────────────────────

// parseReportRange reads from/to query params ("2006-01-02"). Defaults to the
// trailing 30 days.
func parseReportRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return from, to, false
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return from, to, false
		}
		// inclusive end date
		to = t.AddDate(0, 0, 1)
	}
	return from, to, true
}

func reportStatus(c *gin.Context) models.OrderStatus {
	if s := c.Query("status"); s != "" {
		return models.OrderStatus(s)
	}
	return models.StatusCompleted
}

// SalesReport returns aggregate (group, quantity, revenue) rows — manager only
func SalesReport(c *gin.Context) {
	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	groupBy := reports.GroupBy(c.DefaultQuery("group_by", "item"))
	rows, err := reports.Sales(config.DB, from, to, groupBy, reportStatus(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group_by": groupBy,
		"from":     from.Format("2006-01-02"),
		"to":       to.AddDate(0, 0, -1).Format("2006-01-02"),
		"count":    len(rows),
		"rows":     rows,
	})
}

// ExportSalesReport streams the same aggregate rows as CSV — manager only
func ExportSalesReport(c *gin.Context) {
	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	groupBy := reports.GroupBy(c.DefaultQuery("group_by", "item"))
	rows, err := reports.Sales(config.DB, from, to, groupBy, reportStatus(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="sales_report.csv"`)
	if err := reports.WriteCSV(c.Writer, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
	}
}

// TopProducts returns best sellers over a trailing window — manager only
func TopProducts(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'days' value"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'limit' value"})
		return
	}

	rows, err := reports.TopProducts(config.DB, time.Duration(days)*24*time.Hour, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate top products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "top_products": rows})
}

// PeakHours returns order traffic bucketed by hour of day — manager only
func PeakHours(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'days' value"})
		return
	}

	buckets, err := reports.PeakHours(config.DB, time.Duration(days)*24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate peak hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "peak_hours": buckets})
}

// SalesSummary returns headline totals for a date range — manager only
func SalesSummary(c *gin.Context) {
	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	summary, err := reports.SalesSummary(config.DB, from, to, reportStatus(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ── Customers ───────────────────────────────────────────────────────────────

// ListCustomers returns all customers with their loyalty points — manager only
func ListCustomers(c *gin.Context) {
	var customers []models.Customer
	query := config.DB
	if phone := c.Query("phone"); phone != "" {
		query = query.Where("phone_number = ?", phone)
	}
	if active := c.Query("active"); active == "true" {
		query = query.Where("is_active = ?", true)
	}
	query.Order("points desc").Find(&customers)
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// DeactivateCustomer flags a customer account inactive — manager only
func DeactivateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.First(&customer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	config.DB.Model(&customer).Update("is_active", false)
	c.JSON(http.StatusOK, gin.H{"message": "Customer deactivated", "customer_id": customer.ID})
}

// ── Staff ───────────────────────────────────────────────────────────────────

// ListStaff returns all staff accounts — manager only
func ListStaff(c *gin.Context) {
	var staff []models.Staff
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&staff)
	c.JSON(http.StatusOK, gin.H{"count": len(staff), "staff": staff})
}

// ── Housekeeping ────────────────────────────────────────────────────────────

// CleanupOrders deletes terminal orders older than a cutoff — manager only
func CleanupOrders(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'days' value"})
		return
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	var stale []models.Order
	config.DB.Where("status IN ?", []models.OrderStatus{models.StatusCompleted, models.StatusCanceled}).
		Where("created_at < ?", cutoff).Find(&stale)

	deleted := 0
	for _, order := range stale {
		config.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{})
		config.DB.Delete(&order)
		deleted++
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Old orders cleaned up",
		"deleted_count": deleted,
		"cutoff":        cutoff.Format("2006-01-02"),
	})
}
