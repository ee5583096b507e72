package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"labourhub-server/database"
	"labourhub-server/middleware"
	"labourhub-server/models"
	"labourhub-server/types"
	"labourhub-server/utils"
)

// RegisterRequest represents the account registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAuthRoutes registers authentication routes
func RegisterAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/register", register)
	auth.POST("/login", login)
	auth.GET("/me", middleware.AuthMiddleware(), me)
}

func register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.RoleCustomer
	}
	switch role {
	case models.RoleCustomer, models.RoleWorker, models.RoleAdmin:
	default:
		Fail(c, types.NewValidationError("invalid role '%s'", req.Role))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		Fail(c, types.NewPolicyError("user already exists"))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, types.NewInfrastructureError("failed to process password", err))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		Fail(c, types.NewInfrastructureError("failed to create user", err))
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		Fail(c, types.NewInfrastructureError("failed to generate token", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// login authenticates any role; worker accounts get their profile summary
// attached so the client can route them to the right dashboard.
func login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, bindError(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		Fail(c, types.NewInfrastructureError("failed to generate token", err))
		return
	}

	response := gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	}

	if user.IsWorker() {
		if worker, err := workerService.GetByUserID(user.ID); err == nil {
			response["worker"] = gin.H{
				"id":         worker.ID,
				"skill":      worker.Skill,
				"isVerified": worker.IsVerified,
				"isOnline":   worker.IsOnline,
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

func me(c *gin.Context) {
	user, _ := c.Get("user")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
