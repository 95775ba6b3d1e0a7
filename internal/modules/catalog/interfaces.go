package catalog

import (
	"context"

	"trainmydog/internal/domain"
)

// CourseRepository is what the catalog service needs from persistence.
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	GetVisibleByID(ctx context.Context, id int64) (*domain.Course, error)
	ListVisible(ctx context.Context, limit, offset int) ([]domain.Course, int64, error)
	ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	GetRounds(ctx context.Context, courseID int64) ([]domain.CourseRound, error)
	ReplaceRounds(ctx context.Context, courseID int64, rounds []domain.CourseRound) ([]domain.CourseRound, error)
	Delete(ctx context.Context, courseID int64) error
}
