package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"labourhub-server/services"
	"labourhub-server/types"
)

var (
	workerService  *services.WorkerService
	bookingService *services.BookingService
)

// Setup wires the route handlers to their services
func Setup(db *gorm.DB) {
	workerService = services.NewWorkerService(db)
	bookingService = services.NewBookingService(db, workerService)
}

// Fail maps a domain error onto the HTTP response envelope. Validation,
// policy and transition errors are 400, missing records 404, everything
// else is a storage failure and returns 500. The error message is surfaced
// verbatim in the message field.
func Fail(c *gin.Context, err error) {
	var (
		validationErr *types.ValidationError
		notFoundErr   *types.NotFoundError
		policyErr     *types.PolicyError
		transitionErr *types.InvalidTransitionError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &policyErr), errors.As(err, &transitionErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		log.Printf("❌ Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// bindError converts a gin binding failure into the validation taxonomy
func bindError(err error) error {
	return types.NewValidationError("invalid request data: %v", err)
}

// paramID parses a numeric path parameter
func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, types.NewValidationError("invalid %s", name)
	}
	return uint(id), nil
}

// Register wires every route group under the given API group
func Register(api *gin.RouterGroup) {
	RegisterAuthRoutes(api)
	RegisterWorkerRoutes(api)
	RegisterBookingRoutes(api)
	RegisterAdminRoutes(api)
}
