package models

import (
	"time"

	"github.com/lib/pq"
)

// WorkerSkill represents the trade a worker offers
type WorkerSkill string

const (
	Electrician WorkerSkill = "Electrician"
	Plumber     WorkerSkill = "Plumber"
	Carpenter   WorkerSkill = "Carpenter"
	Painter     WorkerSkill = "Painter"
	Mason       WorkerSkill = "Mason"
	Cleaner     WorkerSkill = "Cleaner"
	Gardener    WorkerSkill = "Gardener"
	Welder      WorkerSkill = "Welder"
	Mechanic    WorkerSkill = "Mechanic"
	Driver      WorkerSkill = "Driver"
)

// Worker represents a labour-service provider profile, distinct from the
// login account in users. Rating and CompletedJobs are derived from the
// worker's bookings and must stay recomputable from them.
type Worker struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      uint   `json:"userId" gorm:"uniqueIndex;not null"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Email       string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone       string `json:"phone" gorm:"size:20;not null"`
	Skill       string `json:"skill" gorm:"size:100;not null"`
	Experience  int    `json:"experience" gorm:"not null"`
	PricePerDay int    `json:"pricePerDay" gorm:"not null"`
	Address     string `json:"address" gorm:"type:text;not null"`
	Aadhaar     string `json:"aadhaar" gorm:"size:20"`
	Image       string `json:"image" gorm:"size:500"`

	Languages pq.StringArray `json:"languages" gorm:"type:text[]"`

	// IsVerified gates discoverability and bookability; only admins set it.
	// Aadhaar/police flags are informational and gate nothing.
	IsVerified      bool `json:"isVerified" gorm:"default:false"`
	AadhaarVerified bool `json:"aadhaarVerified" gorm:"default:false"`
	PoliceVerified  bool `json:"policeVerified" gorm:"default:false"`

	// IsOnline is worker self-service and only meaningful once verified
	IsOnline bool `json:"isOnline" gorm:"default:false"`

	Rating        float64 `json:"rating" gorm:"type:decimal(3,1);default:0"`
	CompletedJobs int     `json:"completedJobs" gorm:"default:0"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Worker model
func (Worker) TableName() string {
	return "workers"
}

// WorkerRegisterRequest represents the worker registration payload
type WorkerRegisterRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Phone       string   `json:"phone" binding:"required"`
	Skill       string   `json:"skill" binding:"required"`
	Experience  *int     `json:"experience" binding:"required"`
	PricePerDay *int     `json:"pricePerDay" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Aadhaar     string   `json:"aadhaar"`
	Languages   []string `json:"languages"`
}

// WorkerSummary is the trimmed worker view returned on registration
type WorkerSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Skill      string `json:"skill"`
	IsVerified bool   `json:"isVerified"`
}

// Summary returns the trimmed registration view of the worker
func (w *Worker) Summary() WorkerSummary {
	return WorkerSummary{
		ID:         w.ID,
		Name:       w.Name,
		Email:      w.Email,
		Skill:      w.Skill,
		IsVerified: w.IsVerified,
	}
}

// GetWorkerSkills returns all supported worker skills
func GetWorkerSkills() []WorkerSkill {
	return []WorkerSkill{
		Electrician,
		Plumber,
		Carpenter,
		Painter,
		Mason,
		Cleaner,
		Gardener,
		Welder,
		Mechanic,
		Driver,
	}
}
