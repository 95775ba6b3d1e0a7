package auth

import (
	"context"
	"testing"
	"time"

	"trainmydog/internal/domain"
	jwtsvc "trainmydog/internal/pkg/jwt"
	"trainmydog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newAuthService(users *MockUserRepository) *Service {
	return NewService(users, jwtsvc.New("test-secret", time.Hour))
}

func TestRegister_DefaultsToNoRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Nid@Example.COM",
		Password: "secret-password",
		Name:     "Nid",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleNone, u.Role)
	assert.Equal(t, "nid@example.com", u.Email) // normalized
	assert.NotEqual(t, "secret-password", u.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "nid@example.com",
		Password: "secret-password",
		Name:     "Nid",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "nid@example.com").Return(&domain.User{
		ID:           42,
		Email:        "nid@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleTrainer,
	}, nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nid@example.com",
		Password: "secret-password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(res.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "trainer", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "nid@example.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nid@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
