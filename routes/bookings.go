package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labourhub-server/middleware"
	"labourhub-server/models"
)

// RegisterBookingRoutes registers the booking ledger routes
func RegisterBookingRoutes(api *gin.RouterGroup) {
	bookings := api.Group("/bookings")

	bookings.POST("", createBooking)
	bookings.GET("/customer/:id", listCustomerBookings)
	bookings.GET("/worker/:id", listWorkerBookings)
	bookings.PUT("/:id/accept", acceptBooking)
	bookings.PUT("/:id/reject", rejectBooking)
	bookings.PUT("/:id/status", updateBookingStatus)
	bookings.PUT("/:id/rate", rateBooking)

	bookings.GET("", middleware.AuthMiddleware(), middleware.AdminOnly(), listAllBookings)
}

func createBooking(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	booking, err := bookingService.Create(req)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": booking,
	})
}

func listCustomerBookings(c *gin.Context) {
	customerID, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	bookings, err := bookingService.ListByCustomer(customerID)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

func listWorkerBookings(c *gin.Context) {
	workerID, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	bookings, err := bookingService.ListByWorker(workerID)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

func listAllBookings(c *gin.Context) {
	bookings, err := bookingService.ListAll()
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
	})
}

func acceptBooking(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	booking, err := bookingService.Accept(id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
		"message": "Job accepted successfully",
	})
}

func rejectBooking(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	booking, err := bookingService.Reject(id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
		"message": "Job rejected",
	})
}

// updateBookingStatus is the generic status endpoint. Unlike the customer
// accept/reject shortcuts it takes the target status in the body, but it is
// validated against the same transition table: completed still requires a
// prior confirmed.
func updateBookingStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	var req models.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	booking, err := bookingService.Transition(id, req.Status)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

func rateBooking(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	var req models.BookingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	booking, err := bookingService.Rate(id, req)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}
