package repository

import (
	"context"
	"time"

	"trainmydog/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

type bookingModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	UserID   int64  `gorm:"column:user_id;index"`
	CourseID int64  `gorm:"column:course_id;index"`
	RoundID  *int64 `gorm:"column:round_id"`

	OwnerFullName string  `gorm:"column:owner_full_name"`
	OwnerNickname *string `gorm:"column:owner_nickname"`
	OwnerPhone    string  `gorm:"column:owner_phone"`

	DogName    *string `gorm:"column:dog_name"`
	DogCount   int     `gorm:"column:dog_count"`
	DogGender  *string `gorm:"column:dog_gender"`
	DogAgeYear int     `gorm:"column:dog_age_year"`
	DogBreed   *string `gorm:"column:dog_breed"`

	Message   *string   `gorm:"column:message"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		CourseID:      m.CourseID,
		RoundID:       m.RoundID,
		OwnerFullName: m.OwnerFullName,
		OwnerNickname: strOrEmpty(m.OwnerNickname),
		OwnerPhone:    m.OwnerPhone,
		DogName:       strOrEmpty(m.DogName),
		DogCount:      m.DogCount,
		DogGender:     domain.DogGender(strOrEmpty(m.DogGender)),
		DogAgeYear:    m.DogAgeYear,
		DogBreed:      strOrEmpty(m.DogBreed),
		Message:       strOrEmpty(m.Message),
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		UserID:        b.UserID,
		CourseID:      b.CourseID,
		RoundID:       b.RoundID,
		OwnerFullName: b.OwnerFullName,
		OwnerNickname: strOrNil(b.OwnerNickname),
		OwnerPhone:    b.OwnerPhone,
		DogName:       strOrNil(b.DogName),
		DogCount:      b.DogCount,
		DogGender:     strOrNil(string(b.DogGender)),
		DogAgeYear:    b.DogAgeYear,
		DogBreed:      strOrNil(b.DogBreed),
		Message:       strOrNil(b.Message),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetCourseTrainerForBooking returns the owning trainer of the booking's
// course plus the booking's current status, without loading either row fully.
func (r *BookingRepository) GetCourseTrainerForBooking(ctx context.Context, bookingID int64) (trainerID int64, status string, err error) {
	var row struct {
		TrainerID int64  `gorm:"column:trainer_id"`
		Status    string `gorm:"column:status"`
	}
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("c.trainer_id AS trainer_id, bookings.status AS status").
		Joins("JOIN courses c ON c.id = bookings.course_id").
		Where("bookings.id = ?", bookingID).
		Scan(&row)
	if tx.Error != nil {
		return 0, "", tx.Error
	}
	return row.TrainerID, row.Status, nil
}

// UpdateStatusIfPending performs the optimistic pending-only transition.
// Returns the number of rows changed: zero means the booking was already
// decided (or does not exist) and the caller lost the race.
func (r *BookingRepository) UpdateStatusIfPending(ctx context.Context, bookingID int64, status domain.BookingStatus) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", bookingID, string(domain.BookingPending)).
		Update("status", string(status))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

// ListByTrainer returns bookings against any of the trainer's courses,
// optionally narrowed to one status, newest first.
func (r *BookingRepository) ListByTrainer(ctx context.Context, trainerID int64, status string) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Table("bookings").
		Joins("JOIN courses c ON c.id = bookings.course_id").
		Where("c.trainer_id = ?", trainerID)

	if status != "" {
		q = q.Where("bookings.status = ?", status)
	}

	var models []bookingModel
	if err := q.Order("bookings.created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListByRequester returns the user's own bookings, newest first.
func (r *BookingRepository) ListByRequester(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}
