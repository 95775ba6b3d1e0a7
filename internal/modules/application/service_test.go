package application

import (
	"context"
	"testing"
	"time"

	"trainmydog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, a *domain.TrainerApplication) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.TrainerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainerApplication), args.Error(1)
}

func (m *MockApplicationRepository) GetLatestByUser(ctx context.Context, userID int64) (*domain.TrainerApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainerApplication), args.Error(1)
}

func (m *MockApplicationRepository) MarkReviewed(ctx context.Context, id int64, status domain.ApplicationStatus, reviewerID int64, reviewedAt time.Time) error {
	args := m.Called(ctx, id, status, reviewerID, reviewedAt)
	return args.Error(0)
}

func (m *MockApplicationRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.TrainerApplication, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TrainerApplication), args.Get(1).(int64), args.Error(2)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, userID int64, role domain.UserRole) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func adminActor() domain.Actor { return domain.Actor{ID: 99, Role: domain.RoleAdmin} }

func TestSubmit_FirstApplication(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	apps.On("GetLatestByUser", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Email: "nid@example.com"}, nil)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Submit(context.Background(), domain.Actor{ID: 1}, SubmitRequest{FullName: "Nid"}, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, a.Status)
	assert.Equal(t, "nid@example.com", a.EmailSnapshot) // snapshot from the account
	assert.Empty(t, a.Certificates)
}

func TestSubmit_WithCertificate(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	apps.On("GetLatestByUser", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Email: "nid@example.com"}, nil)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Submit(context.Background(), domain.Actor{ID: 1}, SubmitRequest{FullName: "Nid"}, "trainer_certs/user_1/cert.pdf")

	assert.NoError(t, err)
	assert.Len(t, a.Certificates, 1)
	assert.Equal(t, "trainer_certs/user_1/cert.pdf", a.Certificates[0].FilePath)
}

func TestSubmit_BlockedWhilePending(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := NewService(apps, new(MockUserRepository), nil, false)

	apps.On("GetLatestByUser", mock.Anything, int64(1)).Return(&domain.TrainerApplication{
		ID:     5,
		UserID: 1,
		Status: domain.ApplicationPending,
	}, nil)

	_, err := svc.Submit(context.Background(), domain.Actor{ID: 1}, SubmitRequest{}, "")

	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSubmit_BlockedAfterApproval(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := NewService(apps, new(MockUserRepository), nil, false)

	apps.On("GetLatestByUser", mock.Anything, int64(1)).Return(&domain.TrainerApplication{
		ID:     5,
		UserID: 1,
		Status: domain.ApplicationApproved,
	}, nil)

	_, err := svc.Submit(context.Background(), domain.Actor{ID: 1}, SubmitRequest{}, "")

	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSubmit_AllowedAfterRejection(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	apps.On("GetLatestByUser", mock.Anything, int64(1)).Return(&domain.TrainerApplication{
		ID:     5,
		UserID: 1,
		Status: domain.ApplicationRejected,
	}, nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Email: "nid@example.com"}, nil)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Submit(context.Background(), domain.Actor{ID: 1}, SubmitRequest{}, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, a.Status)
}

func TestReview_ApprovePromotes(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	pending := &domain.TrainerApplication{ID: 5, UserID: 1, Status: domain.ApplicationPending}
	reviewed := &domain.TrainerApplication{ID: 5, UserID: 1, Status: domain.ApplicationApproved}
	apps.On("GetByID", mock.Anything, int64(5)).Return(pending, nil).Once()
	apps.On("MarkReviewed", mock.Anything, int64(5), domain.ApplicationApproved, int64(99), mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleNone}, nil)
	users.On("UpdateRole", mock.Anything, int64(1), domain.RoleTrainer).Return(nil)
	apps.On("GetByID", mock.Anything, int64(5)).Return(reviewed, nil).Once()

	a, err := svc.Review(context.Background(), adminActor(), 5, "approved")

	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, a.Status)
	users.AssertExpectations(t)
}

func TestReview_ApproveDoesNotDemoteOrRepromote(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	pending := &domain.TrainerApplication{ID: 5, UserID: 1, Status: domain.ApplicationPending}
	apps.On("GetByID", mock.Anything, int64(5)).Return(pending, nil)
	apps.On("MarkReviewed", mock.Anything, int64(5), domain.ApplicationApproved, int64(99), mock.Anything).Return(nil)
	// Already a trainer: the role write must not happen again.
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleTrainer}, nil)

	_, err := svc.Review(context.Background(), adminActor(), 5, "approved")

	assert.NoError(t, err)
	users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestReview_NonAdminForbidden(t *testing.T) {
	svc := NewService(new(MockApplicationRepository), new(MockUserRepository), nil, false)

	_, err := svc.Review(context.Background(), domain.Actor{ID: 1, Role: domain.RoleTrainer}, 5, "approved")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReview_SelfReviewForbidden(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := NewService(apps, new(MockUserRepository), nil, false)

	apps.On("GetByID", mock.Anything, int64(5)).Return(&domain.TrainerApplication{
		ID:     5,
		UserID: 99, // the reviewing admin's own application
		Status: domain.ApplicationPending,
	}, nil)

	_, err := svc.Review(context.Background(), adminActor(), 5, "approved")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReview_TerminalStateConflict(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := NewService(apps, new(MockUserRepository), nil, false)

	apps.On("GetByID", mock.Anything, int64(5)).Return(&domain.TrainerApplication{
		ID:     5,
		UserID: 1,
		Status: domain.ApplicationApproved,
	}, nil)

	_, err := svc.Review(context.Background(), adminActor(), 5, "rejected")

	assert.ErrorIs(t, err, ErrStateConflict)
	apps.AssertNotCalled(t, "MarkReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReview_InvalidDecision(t *testing.T) {
	svc := NewService(new(MockApplicationRepository), new(MockUserRepository), nil, false)

	_, err := svc.Review(context.Background(), adminActor(), 5, "pending")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestBulkReview_SkipsMissingAndSelf(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	apps.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)
	apps.On("GetByID", mock.Anything, int64(2)).Return(&domain.TrainerApplication{
		ID: 2, UserID: 99, Status: domain.ApplicationPending,
	}, nil)
	apps.On("GetByID", mock.Anything, int64(3)).Return(&domain.TrainerApplication{
		ID: 3, UserID: 7, Status: domain.ApplicationPending,
	}, nil)
	apps.On("MarkReviewed", mock.Anything, int64(3), domain.ApplicationRejected, int64(99), mock.Anything).Return(nil)

	count, err := svc.BulkReview(context.Background(), adminActor(), []int64{1, 2, 3}, "rejected")

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBulkReview_CanFlipOppositeTerminalState(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, false)

	// Already rejected; the bulk approve action still moves it.
	apps.On("GetByID", mock.Anything, int64(4)).Return(&domain.TrainerApplication{
		ID: 4, UserID: 7, Status: domain.ApplicationRejected,
	}, nil)
	apps.On("MarkReviewed", mock.Anything, int64(4), domain.ApplicationApproved, int64(99), mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleNone}, nil)
	users.On("UpdateRole", mock.Anything, int64(7), domain.RoleTrainer).Return(nil)

	count, err := svc.BulkReview(context.Background(), adminActor(), []int64{4}, "approved")

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBulkReview_SameStateSkippedByDefault(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := NewService(apps, new(MockUserRepository), nil, false)

	apps.On("GetByID", mock.Anything, int64(4)).Return(&domain.TrainerApplication{
		ID: 4, UserID: 7, Status: domain.ApplicationApproved,
	}, nil)

	count, err := svc.BulkReview(context.Background(), adminActor(), []int64{4}, "approved")

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	apps.AssertNotCalled(t, "MarkReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkReview_SameStateRefreshedWhenConfigured(t *testing.T) {
	apps := new(MockApplicationRepository)
	users := new(MockUserRepository)
	svc := NewService(apps, users, nil, true)

	apps.On("GetByID", mock.Anything, int64(4)).Return(&domain.TrainerApplication{
		ID: 4, UserID: 7, Status: domain.ApplicationApproved,
	}, nil)
	apps.On("MarkReviewed", mock.Anything, int64(4), domain.ApplicationApproved, int64(99), mock.Anything).Return(nil)
	// Promotion stays idempotent even on refresh.
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleTrainer}, nil)

	count, err := svc.BulkReview(context.Background(), adminActor(), []int64{4}, "approved")

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestList_InvalidStatusMeansNoFilter(t *testing.T) {
	apps := new(MockApplicationRepository)
	svc := NewService(apps, new(MockUserRepository), nil, false)

	apps.On("List", mock.Anything, "", 20, 0).
		Return([]domain.TrainerApplication{{ID: 1}}, int64(1), nil)

	out, total, err := svc.List(context.Background(), adminActor(), "bogus", 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, out, 1)
	apps.AssertExpectations(t)
}

func TestList_NonAdminForbidden(t *testing.T) {
	svc := NewService(new(MockApplicationRepository), new(MockUserRepository), nil, false)

	_, _, err := svc.List(context.Background(), domain.Actor{ID: 1, Role: domain.RoleTrainer}, "", 1, 20)

	assert.ErrorIs(t, err, ErrForbidden)
}
