package repository

import (
	"context"
	"time"

	"trainmydog/internal/domain"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) DB() *gorm.DB { return r.db }

type applicationModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	UserID        int64      `gorm:"column:user_id;index"`
	FullName      string     `gorm:"column:full_name"`
	Age           *int       `gorm:"column:age"`
	Gender        *string    `gorm:"column:gender"`
	Phone         string     `gorm:"column:phone"`
	EmailSnapshot string     `gorm:"column:email_snapshot"`
	Intro         *string    `gorm:"column:intro"`
	PortfolioLink *string    `gorm:"column:portfolio_link"`
	Status        string     `gorm:"column:status;index"`
	ReviewedBy    *int64     `gorm:"column:reviewed_by"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
}

func (applicationModel) TableName() string { return "trainer_applications" }

type certificateModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ApplicationID int64     `gorm:"column:application_id;index"`
	FilePath      string    `gorm:"column:file_path"`
	UploadedAt    time.Time `gorm:"column:uploaded_at"`
}

func (certificateModel) TableName() string { return "trainer_certificates" }

func toDomainApplication(m applicationModel) *domain.TrainerApplication {
	return &domain.TrainerApplication{
		ID:            m.ID,
		UserID:        m.UserID,
		FullName:      m.FullName,
		Age:           m.Age,
		Gender:        domain.Gender(strOrEmpty(m.Gender)),
		Phone:         m.Phone,
		EmailSnapshot: m.EmailSnapshot,
		Intro:         strOrEmpty(m.Intro),
		PortfolioLink: strOrEmpty(m.PortfolioLink),
		Status:        domain.ApplicationStatus(m.Status),
		ReviewedBy:    m.ReviewedBy,
		ReviewedAt:    m.ReviewedAt,
		CreatedAt:     m.CreatedAt,
	}
}

func toApplicationModel(a *domain.TrainerApplication) applicationModel {
	return applicationModel{
		ID:            a.ID,
		UserID:        a.UserID,
		FullName:      a.FullName,
		Age:           a.Age,
		Gender:        strOrNil(string(a.Gender)),
		Phone:         a.Phone,
		EmailSnapshot: a.EmailSnapshot,
		Intro:         strOrNil(a.Intro),
		PortfolioLink: strOrNil(a.PortfolioLink),
		Status:        string(a.Status),
		ReviewedBy:    a.ReviewedBy,
		ReviewedAt:    a.ReviewedAt,
		CreatedAt:     a.CreatedAt,
	}
}

func toDomainCertificate(m certificateModel) domain.TrainerCertificate {
	return domain.TrainerCertificate{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		FilePath:      m.FilePath,
		UploadedAt:    m.UploadedAt,
	}
}

// Create inserts the application and, when certificate paths are attached,
// their records in one transaction.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.TrainerApplication) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toApplicationModel(a)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		certs := make([]domain.TrainerCertificate, 0, len(a.Certificates))
		for _, c := range a.Certificates {
			cm := certificateModel{
				ApplicationID: m.ID,
				FilePath:      c.FilePath,
				UploadedAt:    time.Now(),
			}
			if err := tx.Create(&cm).Error; err != nil {
				return err
			}
			certs = append(certs, toDomainCertificate(cm))
		}

		*a = *toDomainApplication(m)
		a.Certificates = certs
		return nil
	})
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.TrainerApplication, error) {
	var m applicationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}

	a := toDomainApplication(m)
	certs, err := r.getCertificates(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Certificates = certs
	return a, nil
}

// GetLatestByUser returns the user's most recent application or
// gorm.ErrRecordNotFound when they never applied.
func (r *ApplicationRepository) GetLatestByUser(ctx context.Context, userID int64) (*domain.TrainerApplication, error) {
	var m applicationModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainApplication(m), nil
}

// MarkReviewed sets status, reviewer and review time in one update so the
// three always change together.
func (r *ApplicationRepository) MarkReviewed(ctx context.Context, id int64, status domain.ApplicationStatus, reviewerID int64, reviewedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&applicationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      string(status),
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
		}).Error
}

// List returns applications newest first, optionally filtered by status.
func (r *ApplicationRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.TrainerApplication, int64, error) {
	q := r.db.WithContext(ctx).Model(&applicationModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []applicationModel
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.TrainerApplication, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainApplication(m))
	}
	return out, total, nil
}

// Delete removes the application and its certificates (cascade ownership).
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", id).Delete(&certificateModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&applicationModel{}, id).Error
	})
}

func (r *ApplicationRepository) getCertificates(ctx context.Context, applicationID int64) ([]domain.TrainerCertificate, error) {
	var models []certificateModel
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.TrainerCertificate, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainCertificate(m))
	}
	return out, nil
}
