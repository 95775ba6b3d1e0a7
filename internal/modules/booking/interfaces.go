package booking

import (
	"context"

	"trainmydog/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetCourseTrainerForBooking(ctx context.Context, bookingID int64) (trainerID int64, status string, err error)
	UpdateStatusIfPending(ctx context.Context, bookingID int64, status domain.BookingStatus) (int64, error)
	ListByTrainer(ctx context.Context, trainerID int64, status string) ([]domain.Booking, error)
	ListByRequester(ctx context.Context, userID int64) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationSender delivers advisory messages after workflow actions.
// Delivery failures are ignored; the workflow result never depends on them.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, trainerID, bookingID, courseID int64) error
	NotifyBookingDecided(ctx context.Context, requesterID, bookingID int64, status domain.BookingStatus) error
	NotifyBookingCanceled(ctx context.Context, trainerID, bookingID int64) error
}
