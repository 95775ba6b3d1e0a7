package application

import (
	"context"
	"errors"
	"time"

	"trainmydog/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	apps   ApplicationRepository
	users  UserRepository
	notifs NotificationSender

	// refreshRepeatedReview controls what a bulk action does with an item
	// already in the target state: refresh reviewer/timestamp (true) or skip
	// it entirely (false). The single-review path is never affected.
	refreshRepeatedReview bool
}

func NewService(
	apps ApplicationRepository,
	users UserRepository,
	notifs NotificationSender,
	refreshRepeatedReview bool,
) *Service {
	return &Service{
		apps:                  apps,
		users:                 users,
		notifs:                notifs,
		refreshRepeatedReview: refreshRepeatedReview,
	}
}

// Submit files a new trainer application for the actor. Blocked while the
// latest application is pending or approved; a rejected one may be followed
// by a fresh submission. When certPath is non-empty exactly one certificate
// record is attached.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, req SubmitRequest, certPath string) (*domain.TrainerApplication, error) {
	latest, err := s.apps.GetLatestByUser(ctx, actor.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if latest != nil {
		switch latest.Status {
		case domain.ApplicationPending, domain.ApplicationApproved:
			return nil, ErrAlreadyApplied
		}
	}

	email := req.EmailSnapshot
	if email == "" {
		u, err := s.users.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		email = u.Email
	}

	a := &domain.TrainerApplication{
		UserID:        actor.ID,
		FullName:      req.FullName,
		Age:           req.Age,
		Gender:        req.Gender,
		Phone:         req.Phone,
		EmailSnapshot: email,
		Intro:         req.Intro,
		PortfolioLink: req.PortfolioLink,
		Status:        domain.ApplicationPending,
	}
	if certPath != "" {
		a.Certificates = []domain.TrainerCertificate{{FilePath: certPath}}
	}

	if err := s.apps.Create(ctx, a); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyApplicationReceived(ctx, actor.ID, a.ID)
	}

	return a, nil
}

// Review is the single-application decision path: admin-only, pending-only.
// Status, reviewer and review time are persisted together; on approval the
// applicant is promoted to trainer.
func (s *Service) Review(ctx context.Context, actor domain.Actor, applicationID int64, decision string) (*domain.TrainerApplication, error) {
	status := domain.ApplicationStatus(decision)
	if status != domain.ApplicationApproved && status != domain.ApplicationRejected {
		return nil, ErrValidation
	}
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	a, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if a.UserID == actor.ID {
		return nil, ErrForbidden
	}
	if a.Status.IsTerminal() {
		return nil, ErrStateConflict
	}

	if err := s.finishReview(ctx, a, status, actor.ID); err != nil {
		return nil, err
	}
	return s.apps.GetByID(ctx, applicationID)
}

// BulkReview applies one decision to a batch of applications, the admin list
// action. Unlike Review it may move an application out of the opposite
// terminal state; items already in the target state are refreshed or skipped
// depending on configuration. Returns how many rows were touched.
func (s *Service) BulkReview(ctx context.Context, actor domain.Actor, ids []int64, decision string) (int, error) {
	status := domain.ApplicationStatus(decision)
	if status != domain.ApplicationApproved && status != domain.ApplicationRejected {
		return 0, ErrValidation
	}
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}

	count := 0
	for _, id := range ids {
		a, err := s.apps.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return count, err
		}
		if a.UserID == actor.ID {
			continue
		}
		if a.Status == status && !s.refreshRepeatedReview {
			continue
		}

		if err := s.finishReview(ctx, a, status, actor.ID); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Latest returns the actor's most recent application.
func (s *Service) Latest(ctx context.Context, actor domain.Actor) (*domain.TrainerApplication, error) {
	a, err := s.apps.GetLatestByUser(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// List is the admin review queue, newest first, optionally status-filtered.
func (s *Service) List(ctx context.Context, actor domain.Actor, statusFilter string, page, limit int) ([]domain.TrainerApplication, int, error) {
	if !actor.IsAdmin() {
		return nil, 0, ErrForbidden
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	switch domain.ApplicationStatus(statusFilter) {
	case domain.ApplicationPending, domain.ApplicationApproved, domain.ApplicationRejected:
	default:
		statusFilter = ""
	}

	apps, total, err := s.apps.List(ctx, statusFilter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return apps, int(total), nil
}

// finishReview persists the transition and runs the approval side effect.
// Promotion happens here, explicitly after the state change, never via a
// persistence hook — and only upgrades: a user already holding the trainer
// role (or an admin) is left untouched, so repeat approvals change nothing.
func (s *Service) finishReview(ctx context.Context, a *domain.TrainerApplication, status domain.ApplicationStatus, reviewerID int64) error {
	if err := s.apps.MarkReviewed(ctx, a.ID, status, reviewerID, time.Now()); err != nil {
		return err
	}

	if status == domain.ApplicationApproved {
		u, err := s.users.GetByID(ctx, a.UserID)
		if err != nil {
			return err
		}
		if u.Role == domain.RoleNone {
			if err := s.users.UpdateRole(ctx, a.UserID, domain.RoleTrainer); err != nil {
				return err
			}
		}
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyApplicationReviewed(ctx, a.UserID, a.ID, status)
	}
	return nil
}
