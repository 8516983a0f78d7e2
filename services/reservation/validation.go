package reservation

import (
	"regexp"
	"strings"

	"bookexpert/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

const minPhoneDigits = 10

// validateHexID checks the opaque 24-character hex id format used for experts
// and bookings at the transport boundary.
func validateHexID(field, id string) error {
	if !hexIDPattern.MatchString(id) {
		return &ValidationError{Field: field, Message: "must be a 24-character hexadecimal id"}
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "userEmail", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "userEmail", Message: "a valid email is required"}
	}
	return nil
}

// validateBookingRequest checks every requester field before any storage
// access.
func validateBookingRequest(req models.BookingRequest) error {
	if strings.TrimSpace(req.UserName) == "" {
		return &ValidationError{Field: "userName", Message: "name is required"}
	}
	if err := validateEmail(req.UserEmail); err != nil {
		return err
	}
	digits := nonDigits.ReplaceAllString(req.UserPhone, "")
	if len(digits) < minPhoneDigits {
		return &ValidationError{Field: "userPhone", Message: "a valid phone number with at least 10 digits is required"}
	}
	if strings.TrimSpace(req.SlotID) == "" {
		return &ValidationError{Field: "slotId", Message: "slot id is required"}
	}
	return nil
}
