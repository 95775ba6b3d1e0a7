package booking

import (
	"context"
	"errors"

	"trainmydog/internal/domain"
	"trainmydog/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	courses  CourseRepository
	users    UserRepository
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	courses CourseRepository,
	users UserRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		courses:  courses,
		users:    users,
		notifs:   notifs,
	}
}

// Create reserves a spot on a course. Self-booking is always rejected, even
// for unpublished courses; courses that are not publicly visible look like
// they do not exist. When the course has rounds, the chosen round must be one
// of its own; when it has none, no round may be selected.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if course.TrainerID == actor.ID {
		return nil, ErrSelfBooking
	}

	visible := course.IsPublished
	if visible {
		owner, err := s.users.GetByID(ctx, course.TrainerID)
		if err != nil {
			return nil, err
		}
		visible = owner.IsTrainer()
	}
	if !visible {
		return nil, ErrNotFound
	}

	if len(course.Rounds) > 0 {
		if req.RoundID == nil {
			return nil, ErrRoundMissing
		}
		found := false
		for _, r := range course.Rounds {
			if r.ID == *req.RoundID {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrWrongRound
		}
	} else if req.RoundID != nil {
		return nil, ErrWrongRound
	}

	dogCount := req.DogCount
	if dogCount == 0 {
		dogCount = 1
	}

	b := &domain.Booking{
		UserID:        actor.ID,
		CourseID:      course.ID,
		RoundID:       req.RoundID,
		OwnerFullName: req.OwnerFullName,
		OwnerNickname: req.OwnerNickname,
		OwnerPhone:    req.OwnerPhone,
		DogName:       req.DogName,
		DogCount:      dogCount,
		DogGender:     req.DogGender,
		DogAgeYear:    req.DogAgeYear,
		DogBreed:      req.DogBreed,
		Message:       req.Message,
		Status:        domain.BookingPending,
	}

	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, course.TrainerID, b.ID, course.ID)
	}

	return b, nil
}

// Decide moves a pending booking to approved or rejected. Only the owning
// trainer may decide; the pending check rides on a conditional update so that
// of two concurrent decisions only the first one lands and the second gets
// the already-terminal state back.
func (s *Service) Decide(ctx context.Context, actor domain.Actor, bookingID int64, decision string) (*domain.Booking, error) {
	status := domain.BookingStatus(decision)
	if status != domain.BookingApproved && status != domain.BookingRejected {
		return nil, ErrValidation
	}

	trainerID, current, err := s.bookings.GetCourseTrainerForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if trainerID == 0 && current == "" {
		return nil, ErrNotFound
	}
	if trainerID != actor.ID {
		return nil, ErrForbidden
	}
	if current != string(domain.BookingPending) {
		return nil, ErrStateConflict
	}

	n, err := s.bookings.UpdateStatusIfPending(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Lost the race against a concurrent decision.
		return nil, ErrStateConflict
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingDecided(ctx, b.UserID, b.ID, b.Status)
	}

	return b, nil
}

// Cancel is the requester-side exit from pending. Terminal like the trainer
// decisions: nothing transitions out of canceled.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actor.ID {
		return nil, ErrNotFound
	}
	if b.IsDecided() {
		return nil, ErrStateConflict
	}

	n, err := s.bookings.UpdateStatusIfPending(ctx, bookingID, domain.BookingCanceled)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrStateConflict
	}

	if s.notifs != nil {
		if trainerID, _, err := s.bookings.GetCourseTrainerForBooking(ctx, bookingID); err == nil && trainerID != 0 {
			_ = s.notifs.NotifyBookingCanceled(ctx, trainerID, bookingID)
		}
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// Get returns one booking to the requester who created it. Anyone else gets
// not-found, the same rule Cancel applies.
func (s *Service) Get(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actor.ID {
		return nil, ErrNotFound
	}
	return b, nil
}

// Delete removes a booking outright. Owning-trainer action, any status;
// a removal, not a status transition.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, bookingID int64) error {
	trainerID, current, err := s.bookings.GetCourseTrainerForBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if trainerID == 0 && current == "" {
		return ErrNotFound
	}
	if trainerID != actor.ID {
		return ErrForbidden
	}
	return s.bookings.Delete(ctx, bookingID)
}

// ListForTrainer lists bookings against the trainer's courses. A filter value
// that is not one of the four stored statuses means "show all".
func (s *Service) ListForTrainer(ctx context.Context, actor domain.Actor, statusFilter string) ([]domain.Booking, error) {
	if !actor.IsTrainer() {
		return nil, ErrForbidden
	}
	if !domain.ValidBookingStatus(statusFilter) {
		statusFilter = ""
	}
	return s.bookings.ListByTrainer(ctx, actor.ID, statusFilter)
}

// ListMine lists the requester's own bookings, newest first.
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	return s.bookings.ListByRequester(ctx, actor.ID)
}
