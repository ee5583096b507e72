package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"labourhub-server/models"
	"labourhub-server/types"
)

// BookingService owns the booking ledger and drives the booking lifecycle:
// pending -> confirmed -> completed, or pending -> cancelled. Completion and
// rating propagate to the worker's aggregates through WorkerService.
type BookingService struct {
	db      *gorm.DB
	workers *WorkerService
}

// NewBookingService creates a new booking service
func NewBookingService(db *gorm.DB, workers *WorkerService) *BookingService {
	return &BookingService{db: db, workers: workers}
}

// Create books a verified worker. The worker's name, skill and price per day
// are snapshotted onto the booking; later profile edits never change them.
func (s *BookingService) Create(req models.BookingCreateRequest) (*models.Booking, error) {
	worker, err := s.workers.GetByID(req.WorkerID)
	if err != nil {
		return nil, err
	}
	if !worker.IsVerified {
		return nil, types.NewPolicyError("worker is not verified, cannot create booking")
	}

	booking := models.Booking{
		Reference:    uuid.NewString(),
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		WorkerID:     worker.ID,
		WorkerName:   worker.Name,
		WorkerSkill:  worker.Skill,
		Date:         req.Date,
		Address:      req.Address,
		Amount:       worker.PricePerDay,
		Status:       models.BookingStatusPending,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to create booking", err)
	}

	log.Printf("📒 Booking %s created for worker %d", booking.Reference, worker.ID)
	return &booking, nil
}

// GetByID fetches a booking by id
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("booking not found")
		}
		return nil, types.NewInfrastructureError("failed to fetch booking", err)
	}
	return &booking, nil
}

// ListByCustomer returns a customer's bookings, newest first
func (s *BookingService) ListByCustomer(customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to fetch bookings", err)
	}
	return bookings, nil
}

// ListByWorker returns a worker's bookings, newest first. The id is resolved
// first as a login account id and then as a worker id, so worker clients can
// pass either. An unknown worker yields an empty list, not an error.
func (s *BookingService) ListByWorker(id uint) ([]models.Booking, error) {
	worker, err := s.workers.GetByUserID(id)
	if err != nil {
		var notFound *types.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		worker, err = s.workers.GetByID(id)
		if err != nil {
			if errors.As(err, &notFound) {
				return []models.Booking{}, nil
			}
			return nil, err
		}
	}

	var bookings []models.Booking
	if err := s.db.Where("worker_id = ?", worker.ID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to fetch bookings", err)
	}
	return bookings, nil
}

// ListAll returns every booking (admin view)
func (s *BookingService) ListAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to fetch bookings", err)
	}
	return bookings, nil
}

// Accept moves a pending booking to confirmed
func (s *BookingService) Accept(bookingID uint) (*models.Booking, error) {
	return s.Transition(bookingID, models.BookingStatusConfirmed)
}

// Reject moves a pending booking to cancelled, a terminal state
func (s *BookingService) Reject(bookingID uint) (*models.Booking, error) {
	return s.Transition(bookingID, models.BookingStatusCancelled)
}

// Complete moves a confirmed booking to completed
func (s *BookingService) Complete(bookingID uint) (*models.Booking, error) {
	return s.Transition(bookingID, models.BookingStatusCompleted)
}

// Transition applies a status change after checking it against the legal
// transition table. An illegal move returns InvalidTransitionError and
// leaves the booking unchanged. Moving to completed re-derives the worker's
// completed-job counter.
func (s *BookingService) Transition(bookingID uint, next models.BookingStatus) (*models.Booking, error) {
	if !next.IsValid() {
		return nil, types.NewValidationError("unknown booking status '%s'", next)
	}

	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, types.NewInvalidTransitionError(string(booking.Status), string(next))
	}

	if err := s.db.Model(booking).Update("status", next).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to update booking status", err)
	}
	booking.Status = next

	if next == models.BookingStatusCompleted {
		// The booking write and the aggregate write are separate statements;
		// RecordCompletion recomputes from source so a retry is harmless.
		if err := s.workers.RecordCompletion(booking.WorkerID); err != nil {
			return nil, err
		}
		log.Printf("✅ Booking %d completed, worker %d aggregates refreshed", booking.ID, booking.WorkerID)
	}

	return booking, nil
}

// Rate attaches feedback to a completed booking, at most once, and
// recomputes the worker's average rating.
func (s *BookingService) Rate(bookingID uint, req models.BookingRateRequest) (*models.Booking, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, types.NewValidationError("rating must be between 1 and 5")
	}

	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, types.NewPolicyError("only completed bookings can be rated")
	}
	if booking.IsRated() {
		return nil, types.NewPolicyError("booking has already been rated")
	}

	updates := map[string]interface{}{"rating": req.Rating}
	if req.Review != nil {
		updates["review"] = *req.Review
	}
	if err := s.db.Model(booking).Updates(updates).Error; err != nil {
		return nil, types.NewInfrastructureError("failed to save rating", err)
	}
	booking.Rating = &req.Rating
	booking.Review = req.Review

	if err := s.workers.RecomputeRating(booking.WorkerID); err != nil {
		return nil, err
	}

	log.Printf("⭐ Booking %d rated %d, worker %d rating recomputed", booking.ID, req.Rating, booking.WorkerID)
	return booking, nil
}
