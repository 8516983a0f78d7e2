package models

import "time"

// TimeSlot represents a single bookable window embedded in an expert document.
type TimeSlot struct {
	ID       string `bson:"id" json:"id"`             // Stable within the owning expert.
	Date     string `bson:"date" json:"date"`         // e.g., "2026-03-14"
	Time     string `bson:"time" json:"time"`         // Display label, e.g., "10:00 AM"
	IsBooked bool   `bson:"isBooked" json:"isBooked"` // Occupancy flag, derived from the booking ledger.
}

// Expert is a service provider offering bookable time slots.
type Expert struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Category   string     `bson:"category" json:"category"`
	Experience string     `bson:"experience" json:"experience"` // e.g., "8 years"
	Rating     float64    `bson:"rating" json:"rating"`
	Avatar     string     `bson:"avatar" json:"avatar"`
	TimeSlots  []TimeSlot `bson:"timeSlots" json:"timeSlots"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// SlotByID returns a pointer to the slot with the given id, or nil if the
// expert has no such slot.
func (e *Expert) SlotByID(slotID string) *TimeSlot {
	for i := range e.TimeSlots {
		if e.TimeSlots[i].ID == slotID {
			return &e.TimeSlots[i]
		}
	}
	return nil
}

// ExpertPage is one page of a directory listing.
type ExpertPage struct {
	Experts []Expert `json:"experts"`
	Page    int64    `json:"page"`
	Pages   int64    `json:"pages"`
	Total   int64    `json:"total"`
}
