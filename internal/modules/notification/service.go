package notification

import (
	"context"
	"fmt"
	"log"

	"trainmydog/internal/domain"
)

// Service creates and lists advisory notifications. Write failures are
// logged and swallowed so that workflow actions never fail on delivery.
type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	items, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, trainerID, bookingID, courseID int64) error {
	s.create(ctx, trainerID, domain.NotifBookingCreated,
		fmt.Sprintf("New booking request #%d for your course #%d", bookingID, courseID))
	return nil
}

func (s *Service) NotifyBookingDecided(ctx context.Context, requesterID, bookingID int64, status domain.BookingStatus) error {
	typ := domain.NotifBookingApproved
	msg := fmt.Sprintf("Your booking #%d was approved", bookingID)
	if status == domain.BookingRejected {
		typ = domain.NotifBookingRejected
		msg = fmt.Sprintf("Your booking #%d was rejected", bookingID)
	}
	s.create(ctx, requesterID, typ, msg)
	return nil
}

func (s *Service) NotifyBookingCanceled(ctx context.Context, trainerID, bookingID int64) error {
	s.create(ctx, trainerID, domain.NotifBookingCanceled,
		fmt.Sprintf("Booking request #%d was canceled by the requester", bookingID))
	return nil
}

func (s *Service) NotifyApplicationReceived(ctx context.Context, userID, applicationID int64) error {
	s.create(ctx, userID, domain.NotifApplicationReceived,
		fmt.Sprintf("Your trainer application #%d was received and is awaiting review", applicationID))
	return nil
}

func (s *Service) NotifyApplicationReviewed(ctx context.Context, userID, applicationID int64, status domain.ApplicationStatus) error {
	typ := domain.NotifApplicationApproved
	msg := fmt.Sprintf("Your trainer application #%d was approved. Welcome aboard!", applicationID)
	if status == domain.ApplicationRejected {
		typ = domain.NotifApplicationRejected
		msg = fmt.Sprintf("Your trainer application #%d was rejected", applicationID)
	}
	s.create(ctx, userID, typ, msg)
	return nil
}

func (s *Service) create(ctx context.Context, userID int64, typ domain.NotificationType, msg string) {
	n := &domain.Notification{UserID: userID, Type: typ, Message: msg}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification: failed to store %s for user %d: %v", typ, userID, err)
	}
}
