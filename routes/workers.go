package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labourhub-server/middleware"
	"labourhub-server/models"
	"labourhub-server/services"
)

// RegisterWorkerRoutes registers the worker directory routes
func RegisterWorkerRoutes(api *gin.RouterGroup) {
	workers := api.Group("/workers")

	workers.POST("", registerWorker)
	workers.POST("/register", registerWorker) // alias kept for older clients
	workers.GET("", listVerifiedWorkers)
	workers.GET("/user/:userId", getWorkerByUser)
	workers.GET("/:id", getWorker)
	workers.PUT("/:id/status", updateWorkerStatus)

	admin := workers.Group("", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.GET("/all", listAllWorkers)
	admin.PUT("/:id/approve", approveWorker)
	admin.DELETE("/:id/reject", rejectWorker)

	// Registered outside /workers so the static segment cannot collide
	// with the :id parameter
	api.GET("/skills", listSkills)
}

// listSkills returns the supported trades for registration forms
func listSkills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"skills":  models.GetWorkerSkills(),
	})
}

func registerWorker(c *gin.Context) {
	var req models.WorkerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	worker, user, err := workerService.Register(req)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Worker registered successfully",
		"worker":  worker.Summary(),
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// listVerifiedWorkers is the customer-facing directory. Unverified workers
// never show up here, whatever the filter.
func listVerifiedWorkers(c *gin.Context) {
	filter := services.WorkerFilter{
		Skill: c.Query("skill"),
		Sort:  c.Query("sort"),
	}

	workers, err := workerService.ListDiscoverable(filter)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": workers,
	})
}

func listAllWorkers(c *gin.Context) {
	workers, err := workerService.ListAll()
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"workers": workers,
	})
}

func getWorker(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	worker, err := workerService.GetByID(id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}

func getWorkerByUser(c *gin.Context) {
	userID, err := paramID(c, "userId")
	if err != nil {
		Fail(c, err)
		return
	}

	worker, err := workerService.GetByUserID(userID)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}

func approveWorker(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	worker, err := workerService.Approve(id)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}

func rejectWorker(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	if err := workerService.Reject(id); err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Worker rejected and deleted",
	})
}

func updateWorkerStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}

	var req struct {
		IsOnline *bool `json:"isOnline" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	worker, err := workerService.SetAvailability(id, *req.IsOnline)
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"worker":  worker,
	})
}
