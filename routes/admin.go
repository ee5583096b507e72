package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labourhub-server/database"
	"labourhub-server/middleware"
	"labourhub-server/models"
)

// RegisterAdminRoutes registers the admin dashboard routes
func RegisterAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.GET("/stats", getDashboardStats)
}

// getDashboardStats returns simple entity counts for the admin dashboard
func getDashboardStats(c *gin.Context) {
	var totalWorkers, verifiedWorkers, totalCustomers, totalBookings int64

	database.DB.Model(&models.Worker{}).Count(&totalWorkers)
	database.DB.Model(&models.Worker{}).Where("is_verified = ?", true).Count(&verifiedWorkers)
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&totalCustomers)
	database.DB.Model(&models.Booking{}).Count(&totalBookings)

	bookingsByStatus := gin.H{}
	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
	} {
		var count int64
		database.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count)
		bookingsByStatus[string(status)] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"totalWorkers":     totalWorkers,
			"verifiedWorkers":  verifiedWorkers,
			"pendingWorkers":   totalWorkers - verifiedWorkers,
			"totalCustomers":   totalCustomers,
			"totalBookings":    totalBookings,
			"bookingsByStatus": bookingsByStatus,
		},
	})
}
