package entities

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents a member's reservation of a service.
// Service is nil when the referenced service no longer resolves. Member is
// only filled in by the admin overview.
type Booking struct {
	ID              string        `json:"id" db:"id"`
	UserID          string        `json:"user_id" db:"user_id"`
	ServiceID       string        `json:"service_id" db:"service_id"`
	StartDate       time.Time     `json:"start_date" db:"start_date"`
	EndDate         *time.Time    `json:"end_date,omitempty" db:"end_date"`
	Status          BookingStatus `json:"status" db:"status"`
	TotalAmount     float64       `json:"total_amount" db:"total_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentID       string        `json:"payment_id,omitempty" db:"payment_id"`
	SpecialRequests string        `json:"special_requests,omitempty" db:"special_requests"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
	Service         *Service      `json:"service"`
	Member          *Profile      `json:"member,omitempty"`
}
