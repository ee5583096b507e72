package services

import (
	"errors"
	"log"
	"math"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"labourhub-server/models"
	"labourhub-server/types"
	"labourhub-server/utils"
)

// WorkerService owns the worker directory: profile storage, the
// verification gate, availability, and the derived aggregates
// (rating, completedJobs).
type WorkerService struct {
	db *gorm.DB
}

// NewWorkerService creates a new worker service
func NewWorkerService(db *gorm.DB) *WorkerService {
	return &WorkerService{db: db}
}

// WorkerFilter narrows and orders the discoverable-workers query
type WorkerFilter struct {
	Skill string
	Sort  string // "rating" or "price"; newest-first otherwise
}

// Register creates the login account and the worker profile. New workers
// start unverified, offline, with zero aggregates.
func (s *WorkerService) Register(req models.WorkerRegisterRequest) (*models.Worker, *models.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User
	if err := s.db.Where("email = ?", email).First(&existingUser).Error; err == nil {
		return nil, nil, types.NewPolicyError("email already registered")
	}
	var existingWorker models.Worker
	if err := s.db.Where("email = ?", email).First(&existingWorker).Error; err == nil {
		return nil, nil, types.NewPolicyError("worker with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, types.NewInfrastructureError("failed to process password", err)
	}

	languages := req.Languages
	if len(languages) == 0 {
		languages = []string{"Hindi"}
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleWorker,
	}
	worker := models.Worker{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		Skill:       req.Skill,
		Experience:  *req.Experience,
		PricePerDay: *req.PricePerDay,
		Address:     req.Address,
		Aadhaar:     req.Aadhaar,
		Languages:   pq.StringArray(languages),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		worker.UserID = user.ID
		return tx.Create(&worker).Error
	})
	if err != nil {
		return nil, nil, types.NewInfrastructureError("failed to register worker", err)
	}

	log.Printf("✅ Worker registered - ID: %d, skill: %s", worker.ID, worker.Skill)
	return &worker, &user, nil
}

func validateRegistration(req models.WorkerRegisterRequest) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Skill) == "" {
		missing = append(missing, "skill")
	}
	if req.Experience == nil {
		missing = append(missing, "experience")
	}
	if req.PricePerDay == nil {
		missing = append(missing, "pricePerDay")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return types.NewValidationError("missing required fields: %s", strings.Join(missing, ", "))
	}
	if len(req.Password) < 6 {
		return types.NewValidationError("password must be at least 6 characters long")
	}
	if *req.Experience < 0 {
		return types.NewValidationError("experience must be zero or greater")
	}
	if *req.PricePerDay <= 0 {
		return types.NewValidationError("pricePerDay must be greater than zero")
	}
	return nil
}

// Approve marks a worker as verified. Approving an already verified worker
// is harmless.
func (s *WorkerService) Approve(workerID uint) (*models.Worker, error) {
	worker, err := s.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker.IsVerified {
		return worker, nil
	}
	if err := s.db.Model(worker).Update("is_verified", true).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to approve worker", err)
	}
	log.Printf("✅ Worker %d approved", worker.ID)
	return worker, nil
}

// Reject permanently removes the worker profile and its login account.
// The worker's booking history is left in place, orphaned.
func (s *WorkerService) Reject(workerID uint) error {
	worker, err := s.GetByID(workerID)
	if err != nil {
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.User{}, worker.UserID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Worker{}, worker.ID).Error
	})
	if err != nil {
		return types.NewInfrastructureError("failed to reject worker", err)
	}
	log.Printf("🗑️ Worker %d rejected and deleted", workerID)
	return nil
}

// SetAvailability flips the worker's online flag. Going online requires a
// verified profile; a verified worker may always go offline.
func (s *WorkerService) SetAvailability(workerID uint, online bool) (*models.Worker, error) {
	worker, err := s.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if online && !worker.IsVerified {
		return nil, types.NewPolicyError("worker is not verified")
	}
	if err := s.db.Model(worker).Update("is_online", online).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to update availability", err)
	}
	return worker, nil
}

// ListDiscoverable returns verified workers only, whatever the filter says
func (s *WorkerService) ListDiscoverable(filter WorkerFilter) ([]models.Worker, error) {
	query := s.db.Where("is_verified = ?", true)
	if filter.Skill != "" {
		query = query.Where("skill = ?", filter.Skill)
	}
	switch filter.Sort {
	case "rating":
		query = query.Order("rating DESC")
	case "price":
		query = query.Order("price_per_day ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var workers []models.Worker
	if err := query.Find(&workers).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to fetch workers", err)
	}
	return workers, nil
}

// ListAll returns every worker regardless of verification (admin view)
func (s *WorkerService) ListAll() ([]models.Worker, error) {
	var workers []models.Worker
	if err := s.db.Order("created_at DESC").Find(&workers).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to fetch workers", err)
	}
	return workers, nil
}

// GetByID fetches a worker by profile id
func (s *WorkerService) GetByID(workerID uint) (*models.Worker, error) {
	var worker models.Worker
	if err := s.db.First(&worker, workerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("worker not found")
		}
		return nil, types.NewInfrastructureError("failed to fetch worker", err)
	}
	return &worker, nil
}

// GetByUserID fetches a worker by its login account id
func (s *WorkerService) GetByUserID(userID uint) (*models.Worker, error) {
	var worker models.Worker
	if err := s.db.Where("user_id = ?", userID).First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("worker not found")
		}
		return nil, types.NewInfrastructureError("failed to fetch worker", err)
	}
	return &worker, nil
}

// RecordCompletion re-derives completedJobs from the bookings table instead
// of incrementing, so concurrent completions and retries converge on the
// same value.
func (s *WorkerService) RecordCompletion(workerID uint) error {
	var count int64
	if err := s.db.Model(&models.Booking{}).
		Where("worker_id = ? AND status = ?", workerID, models.BookingStatusCompleted).
		Count(&count).Error; err != nil {
		return types.NewInfrastructureError("failed to count completed bookings", err)
	}
	if err := s.db.Model(&models.Worker{}).Where("id = ?", workerID).
		Update("completed_jobs", count).Error; err != nil {
		return types.NewInfrastructureError("failed to update completed jobs", err)
	}
	return nil
}

// RecomputeRating sets the worker's rating to the mean of all rated
// bookings, rounded to one decimal place; 0 when no ratings exist. The
// read-recompute-write cycle is idempotent and safe to re-apply.
func (s *WorkerService) RecomputeRating(workerID uint) error {
	var ratings []int
	if err := s.db.Model(&models.Booking{}).
		Where("worker_id = ? AND rating IS NOT NULL", workerID).
		Pluck("rating", &ratings).Error; err != nil {
		return types.NewInfrastructureError("failed to fetch booking ratings", err)
	}

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	if err := s.db.Model(&models.Worker{}).Where("id = ?", workerID).
		Update("rating", average).Error; err != nil {
		return types.NewInfrastructureError("failed to update worker rating", err)
	}
	return nil
}
