package catalog

import (
	"context"
	"errors"

	"trainmydog/internal/domain"
	"trainmydog/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	courses CourseRepository
}

func NewService(courses CourseRepository) *Service {
	return &Service{courses: courses}
}

// CreateCourse creates a course with its initial round set. Trainer-only.
func (s *Service) CreateCourse(ctx context.Context, actor domain.Actor, req CourseInput) (*domain.Course, error) {
	if !actor.IsTrainer() {
		return nil, ErrForbidden
	}

	rounds, err := validateRounds(req.Rounds, nil)
	if err != nil {
		return nil, err
	}

	c := &domain.Course{
		TrainerID:    actor.ID,
		Title:        req.Title,
		Description:  req.Description,
		DurationHr:   req.DurationHr,
		Price:        req.Price,
		DepositPrice: req.DepositPrice,
		Location:     req.Location,
		MaxDogs:      req.MaxDogs,
		Benefits:     req.Benefits,
		IsPublished:  req.IsPublished,
	}

	if fields := validator.Validate(c); fields != nil {
		return nil, ErrValidation
	}

	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}

	c.Rounds, err = s.courses.ReplaceRounds(ctx, c.ID, rounds)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCourse saves the course fields and applies the submitted round set as
// an all-or-nothing replace: kept rounds are addressed by id, omitted stored
// rounds are deleted. Only the owning trainer may call; anyone else sees the
// course as missing.
func (s *Service) UpdateCourse(ctx context.Context, actor domain.Actor, courseID int64, req CourseInput) (*domain.Course, error) {
	c, err := s.ownedCourse(ctx, actor, courseID)
	if err != nil {
		return nil, err
	}

	existing := make(map[int64]bool, len(c.Rounds))
	for _, r := range c.Rounds {
		existing[r.ID] = true
	}

	rounds, err := validateRounds(req.Rounds, existing)
	if err != nil {
		return nil, err
	}

	c.Title = req.Title
	c.Description = req.Description
	c.DurationHr = req.DurationHr
	c.Price = req.Price
	c.DepositPrice = req.DepositPrice
	c.Location = req.Location
	c.MaxDogs = req.MaxDogs
	c.Benefits = req.Benefits
	c.IsPublished = req.IsPublished

	if fields := validator.Validate(c); fields != nil {
		return nil, ErrValidation
	}

	if err := s.courses.Update(ctx, c); err != nil {
		return nil, err
	}

	c.Rounds, err = s.courses.ReplaceRounds(ctx, c.ID, rounds)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetPublished toggles the visibility flag. Owner-only.
func (s *Service) SetPublished(ctx context.Context, actor domain.Actor, courseID int64, published bool) (*domain.Course, error) {
	c, err := s.ownedCourse(ctx, actor, courseID)
	if err != nil {
		return nil, err
	}

	c.IsPublished = published
	if err := s.courses.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetCover stores the uploaded cover image reference on the course.
func (s *Service) SetCover(ctx context.Context, actor domain.Actor, courseID int64, path string) (*domain.Course, error) {
	c, err := s.ownedCourse(ctx, actor, courseID)
	if err != nil {
		return nil, err
	}

	c.CoverImage = path
	if err := s.courses.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCourse removes the course and, through the store's cascade, its
// rounds and bookings.
func (s *Service) DeleteCourse(ctx context.Context, actor domain.Actor, courseID int64) error {
	if _, err := s.ownedCourse(ctx, actor, courseID); err != nil {
		return err
	}
	return s.courses.Delete(ctx, courseID)
}

// GetPublic returns one publicly visible course. Unpublished courses and
// courses whose owner lost the trainer role are indistinguishable from
// missing ones.
func (s *Service) GetPublic(ctx context.Context, courseID int64) (*domain.Course, error) {
	c, err := s.courses.GetVisibleByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListPublic returns the public catalog, newest first.
func (s *Service) ListPublic(ctx context.Context, page, limit int) ([]domain.Course, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	courses, total, err := s.courses.ListVisible(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return courses, int(total), nil
}

// ListMine returns the trainer's own courses with rounds, newest first.
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Course, error) {
	if !actor.IsTrainer() {
		return nil, ErrForbidden
	}
	return s.courses.ListByTrainer(ctx, actor.ID)
}

// ownedCourse loads the course and enforces ownership. A foreign course is
// reported as not found, never as forbidden, so existence does not leak.
func (s *Service) ownedCourse(ctx context.Context, actor domain.Actor, courseID int64) (*domain.Course, error) {
	if !actor.IsTrainer() {
		return nil, ErrForbidden
	}

	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.TrainerID != actor.ID {
		return nil, ErrNotFound
	}
	return c, nil
}

// validateRounds runs the scheduling validator over every submitted round and
// checks that round ids, when present, belong to the course being edited.
func validateRounds(inputs []RoundInput, existing map[int64]bool) ([]domain.CourseRound, error) {
	out := make([]domain.CourseRound, 0, len(inputs))
	for _, in := range inputs {
		r, err := ValidateRound(in.Days, in.Start, in.End)
		if err != nil {
			return nil, err
		}
		if in.ID != 0 {
			if existing == nil || !existing[in.ID] {
				return nil, ErrUnknownRound
			}
			r.ID = in.ID
		}
		out = append(out, r)
	}
	return out, nil
}
