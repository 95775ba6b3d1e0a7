package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
	BookingCanceled BookingStatus = "canceled"
)

type DogGender string

const (
	DogMale   DogGender = "male"
	DogFemale DogGender = "female"
)

// Booking is a reservation against a course, optionally pinned to one of the
// course's rounds. RoundID survives as nil when the round is later deleted;
// the booking itself is removed only with its course.
type Booking struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	CourseID int64  `json:"course_id"`
	RoundID  *int64 `json:"round_id,omitempty"`

	OwnerFullName string `json:"owner_full_name" validate:"required"`
	OwnerNickname string `json:"owner_nickname,omitempty"`
	OwnerPhone    string `json:"owner_phone" validate:"required"`

	DogName    string    `json:"dog_name,omitempty"`
	DogCount   int       `json:"dog_count" validate:"gte=1"`
	DogGender  DogGender `json:"dog_gender,omitempty"`
	DogAgeYear int       `json:"dog_age_year"`
	DogBreed   string    `json:"dog_breed,omitempty"`

	Message   string        `json:"message,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ValidBookingStatus reports whether s is one of the four stored statuses.
// Used for list filters: anything else means "no filter", not an error.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingApproved, BookingRejected, BookingCanceled:
		return true
	}
	return false
}

// IsDecided reports whether the booking left pending. All three outcomes are
// terminal: no workflow transition exists out of them.
func (b *Booking) IsDecided() bool {
	return b.Status != BookingPending
}
