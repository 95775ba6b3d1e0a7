package application

import (
	"context"
	"time"

	"trainmydog/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.TrainerApplication) error
	GetByID(ctx context.Context, id int64) (*domain.TrainerApplication, error)
	GetLatestByUser(ctx context.Context, userID int64) (*domain.TrainerApplication, error)
	MarkReviewed(ctx context.Context, id int64, status domain.ApplicationStatus, reviewerID int64, reviewedAt time.Time) error
	List(ctx context.Context, status string, limit, offset int) ([]domain.TrainerApplication, int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateRole(ctx context.Context, userID int64, role domain.UserRole) error
}

// NotificationSender delivers advisory messages; failures never fail the
// workflow action.
type NotificationSender interface {
	NotifyApplicationReceived(ctx context.Context, userID, applicationID int64) error
	NotifyApplicationReviewed(ctx context.Context, userID, applicationID int64, status domain.ApplicationStatus) error
}
