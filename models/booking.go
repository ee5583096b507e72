package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether the move from s to next is legal.
//
//	pending   -> confirmed  (worker accepts)
//	pending   -> cancelled  (worker rejects)
//	confirmed -> completed  (either party marks done)
//
// completed and cancelled are terminal. A booking must be confirmed before
// it can complete; the generic status endpoint goes through the same table.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted
	}
	return false
}

// Booking represents one request for a worker's services on a given date.
// CustomerName, WorkerName, WorkerSkill and Amount are snapshots taken at
// creation time; later edits to the worker profile never change them.
type Booking struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Reference string `json:"reference" gorm:"size:36;uniqueIndex;not null"`

	CustomerID   uint   `json:"customerId" gorm:"not null;index"`
	CustomerName string `json:"customerName" gorm:"size:255;not null"`
	WorkerID     uint   `json:"workerId" gorm:"not null;index"`
	WorkerName   string `json:"workerName" gorm:"size:255;not null"`
	WorkerSkill  string `json:"workerSkill" gorm:"size:100;not null"`

	Date    string `json:"date" gorm:"size:20;not null"`
	Address string `json:"address" gorm:"type:text;not null"`
	Amount  int    `json:"amount" gorm:"not null"`

	Status BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','confirmed','completed','cancelled')"`

	// Set at most once, and only on a completed booking
	Rating *int    `json:"rating"`
	Review *string `json:"review" gorm:"size:1000"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsRated reports whether feedback has already been attached
func (b *Booking) IsRated() bool {
	return b.Rating != nil
}

// BookingCreateRequest represents the booking creation payload
type BookingCreateRequest struct {
	CustomerID   uint   `json:"customerId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	WorkerID     uint   `json:"workerId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Address      string `json:"address" binding:"required"`
}

// BookingRateRequest represents the rating payload
type BookingRateRequest struct {
	Rating int     `json:"rating" binding:"required,min=1,max=5"`
	Review *string `json:"review"`
}

// BookingStatusRequest represents the generic status update payload
type BookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}
