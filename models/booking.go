package models

import "time"

// Booking statuses. A booking is "active" while Pending or Confirmed; only
// active bookings hold a slot.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
)

// ValidStatus reports whether s is one of the recognized booking statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCompleted
}

// Booking is one reservation record against an expert's time slot. Fields
// other than Status are immutable after creation; date, time and expert name
// are denormalized copies taken from the slot at booking time.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	ExpertID   string    `bson:"expertId" json:"expertId"`
	ExpertName string    `bson:"expertName" json:"expertName"`
	SlotID     string    `bson:"slotId" json:"slotId"`
	Date       string    `bson:"date" json:"date"`
	Time       string    `bson:"time" json:"time"`
	UserName   string    `bson:"userName" json:"userName"`
	UserEmail  string    `bson:"userEmail" json:"userEmail"`
	UserPhone  string    `bson:"userPhone" json:"userPhone"`
	Notes      string    `bson:"notes" json:"notes"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the booking currently holds its slot.
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingRequest carries the requester fields submitted with a booking
// attempt. Validation happens in the reservation service, never in handlers.
type BookingRequest struct {
	SlotID    string `json:"slotId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
	Notes     string `json:"notes"`
}
