package repository

import (
	"context"
	"encoding/json"
	"time"

	"trainmydog/internal/domain"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) DB() *gorm.DB { return r.db }

type courseModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	TrainerID    int64     `gorm:"column:trainer_id;index"`
	Title        string    `gorm:"column:title"`
	Description  string    `gorm:"column:description"`
	DurationHr   int       `gorm:"column:duration_hr"`
	Price        float64   `gorm:"column:price"`
	DepositPrice float64   `gorm:"column:deposit_price"`
	CoverImage   *string   `gorm:"column:cover_image"`
	Location     string    `gorm:"column:location"`
	MaxDogs      *int      `gorm:"column:max_dogs"`
	Benefits     string    `gorm:"column:benefits"`
	IsPublished  bool      `gorm:"column:is_published;index:idx_courses_published_created"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_courses_published_created"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (courseModel) TableName() string { return "courses" }

type courseRoundModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	CourseID  int64   `gorm:"column:course_id;index"`
	Days      string  `gorm:"column:days"` // JSON array of weekday ints
	StartTime *string `gorm:"column:start_time"`
	EndTime   *string `gorm:"column:end_time"`
}

func (courseRoundModel) TableName() string { return "course_rounds" }

func toDomainCourse(m courseModel) *domain.Course {
	var cover string
	if m.CoverImage != nil {
		cover = *m.CoverImage
	}

	return &domain.Course{
		ID:           m.ID,
		TrainerID:    m.TrainerID,
		Title:        m.Title,
		Description:  m.Description,
		DurationHr:   m.DurationHr,
		Price:        m.Price,
		DepositPrice: m.DepositPrice,
		CoverImage:   cover,
		Location:     m.Location,
		MaxDogs:      m.MaxDogs,
		Benefits:     m.Benefits,
		IsPublished:  m.IsPublished,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCourseModel(c *domain.Course) courseModel {
	var cover *string
	if c.CoverImage != "" {
		v := c.CoverImage
		cover = &v
	}

	return courseModel{
		ID:           c.ID,
		TrainerID:    c.TrainerID,
		Title:        c.Title,
		Description:  c.Description,
		DurationHr:   c.DurationHr,
		Price:        c.Price,
		DepositPrice: c.DepositPrice,
		CoverImage:   cover,
		Location:     c.Location,
		MaxDogs:      c.MaxDogs,
		Benefits:     c.Benefits,
		IsPublished:  c.IsPublished,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toDomainRound(m courseRoundModel) domain.CourseRound {
	days := []int{}
	if m.Days != "" {
		_ = json.Unmarshal([]byte(m.Days), &days)
	}

	var start, end string
	if m.StartTime != nil {
		start = *m.StartTime
	}
	if m.EndTime != nil {
		end = *m.EndTime
	}

	return domain.CourseRound{
		ID:       m.ID,
		CourseID: m.CourseID,
		Days:     days,
		Start:    start,
		End:      end,
	}
}

func toRoundModel(r domain.CourseRound) courseRoundModel {
	days := r.Days
	if days == nil {
		days = []int{}
	}
	raw, _ := json.Marshal(days)

	var start, end *string
	if r.Start != "" {
		v := r.Start
		start = &v
	}
	if r.End != "" {
		v := r.End
		end = &v
	}

	return courseRoundModel{
		ID:        r.ID,
		CourseID:  r.CourseID,
		Days:      string(raw),
		StartTime: start,
		EndTime:   end,
	}
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	m := toCourseModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	rounds := c.Rounds
	*c = *toDomainCourse(m)
	c.Rounds = rounds
	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var m courseModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	c := toDomainCourse(m)
	rounds, err := r.GetRounds(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Rounds = rounds
	return c, nil
}

// GetVisibleByID returns the course only if it is published AND its owner
// currently holds the trainer role; otherwise gorm.ErrRecordNotFound.
func (r *CourseRepository) GetVisibleByID(ctx context.Context, id int64) (*domain.Course, error) {
	var m courseModel
	tx := r.db.WithContext(ctx).
		Table("courses").
		Joins("JOIN users u ON u.id = courses.trainer_id").
		Where("courses.id = ? AND courses.is_published = ? AND u.role = ?", id, true, string(domain.RoleTrainer)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}

	c := toDomainCourse(m)
	rounds, err := r.GetRounds(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Rounds = rounds
	return c, nil
}

// ListVisible returns the public catalog: published courses whose owner still
// holds the trainer role, newest first.
func (r *CourseRepository) ListVisible(ctx context.Context, limit, offset int) ([]domain.Course, int64, error) {
	q := r.db.WithContext(ctx).
		Table("courses").
		Joins("JOIN users u ON u.id = courses.trainer_id").
		Where("courses.is_published = ? AND u.role = ?", true, string(domain.RoleTrainer))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []courseModel
	if err := q.
		Order("courses.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Course, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCourse(m))
	}
	return out, total, nil
}

// ListByTrainer returns the trainer's own courses with rounds, newest first.
func (r *CourseRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Course, error) {
	var models []courseModel
	if err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Course, 0, len(models))
	for _, m := range models {
		c := toDomainCourse(m)
		rounds, err := r.GetRounds(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		c.Rounds = rounds
		out = append(out, *c)
	}
	return out, nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	m := toCourseModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *CourseRepository) GetRounds(ctx context.Context, courseID int64) ([]domain.CourseRound, error) {
	var models []courseRoundModel
	if err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.CourseRound, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainRound(m))
	}
	return out, nil
}

// ReplaceRounds applies the submitted round set against the stored one inside
// a single transaction: rounds with a known id are updated, rounds without an
// id are inserted, stored rounds missing from the submission are deleted.
// Bookings pointing at a deleted round get round_id set to NULL, the booking
// rows themselves survive.
func (r *CourseRepository) ReplaceRounds(ctx context.Context, courseID int64, rounds []domain.CourseRound) ([]domain.CourseRound, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []courseRoundModel
		if err := tx.Where("course_id = ?", courseID).Find(&existing).Error; err != nil {
			return err
		}

		keep := make(map[int64]bool, len(rounds))
		for _, rd := range rounds {
			rd.CourseID = courseID
			m := toRoundModel(rd)
			if m.ID == 0 {
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
				continue
			}
			keep[m.ID] = true
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		}

		removed := []int64{}
		for _, ex := range existing {
			if !keep[ex.ID] {
				removed = append(removed, ex.ID)
			}
		}
		if len(removed) > 0 {
			if err := tx.Model(&bookingModel{}).
				Where("round_id IN ?", removed).
				Update("round_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", removed).Delete(&courseRoundModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetRounds(ctx, courseID)
}

// Delete removes the course together with its rounds and bookings, the same
// all-or-nothing cascade the relational schema promises.
func (r *CourseRepository) Delete(ctx context.Context, courseID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", courseID).Delete(&courseRoundModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&courseModel{}, courseID).Error
	})
}
