package repository

import (
	"context"
	"fmt"
	"testing"

	"trainmydog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// testDB opens a private in-memory database, migrated and scoped to the test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedTrainerWithCourse(t *testing.T, db *gorm.DB) (*domain.User, *domain.Course) {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(db)
	trainer := &domain.User{
		Email:        fmt.Sprintf("trainer-%s@example.com", t.Name()),
		PasswordHash: "x",
		Role:         domain.RoleTrainer,
		Name:         "Somchai",
	}
	require.NoError(t, users.Create(ctx, trainer))

	courses := NewCourseRepository(db)
	c := &domain.Course{
		TrainerID:   trainer.ID,
		Title:       "Puppy Basics",
		DurationHr:  2,
		Price:       4500,
		IsPublished: true,
	}
	require.NoError(t, courses.Create(ctx, c))
	return trainer, c
}

func TestReplaceRounds_InsertUpdateDelete(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	courses := NewCourseRepository(db)
	_, c := seedTrainerWithCourse(t, db)

	initial, err := courses.ReplaceRounds(ctx, c.ID, []domain.CourseRound{
		{Days: []int{5, 6}, Start: "09:00", End: "11:00"},
		{Days: []int{2}, Start: "18:00", End: "20:00"},
	})
	require.NoError(t, err)
	require.Len(t, initial, 2)

	// Keep the first round (edited), drop the second, add a third.
	after, err := courses.ReplaceRounds(ctx, c.ID, []domain.CourseRound{
		{ID: initial[0].ID, Days: []int{5}, Start: "10:00", End: "12:00"},
		{Days: []int{0}, Start: "07:00", End: "08:00"},
	})
	require.NoError(t, err)
	require.Len(t, after, 2)

	// The kept round retains its id across the replace.
	assert.Equal(t, initial[0].ID, after[0].ID)
	assert.Equal(t, []int{5}, after[0].Days)
	assert.Equal(t, "10:00", after[0].Start)

	assert.NotEqual(t, initial[1].ID, after[1].ID)
	for _, r := range after {
		assert.NotEqual(t, initial[1].ID, r.ID)
	}
}

func TestReplaceRounds_DetachesBookingsFromDeletedRound(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	courses := NewCourseRepository(db)
	bookings := NewBookingRepository(db)
	_, c := seedTrainerWithCourse(t, db)

	rounds, err := courses.ReplaceRounds(ctx, c.ID, []domain.CourseRound{
		{Days: []int{5}, Start: "09:00", End: "11:00"},
	})
	require.NoError(t, err)

	b := &domain.Booking{
		UserID:        77,
		CourseID:      c.ID,
		RoundID:       &rounds[0].ID,
		OwnerFullName: "Nid",
		OwnerPhone:    "000",
		DogCount:      1,
		Status:        domain.BookingPending,
	}
	require.NoError(t, bookings.Create(ctx, b))

	// Remove every round; the booking must survive with round_id cleared.
	_, err = courses.ReplaceRounds(ctx, c.ID, nil)
	require.NoError(t, err)

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RoundID)
	assert.Equal(t, domain.BookingPending, got.Status)
}

func TestCourseDelete_Cascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	courses := NewCourseRepository(db)
	bookings := NewBookingRepository(db)
	_, c := seedTrainerWithCourse(t, db)

	rounds, err := courses.ReplaceRounds(ctx, c.ID, []domain.CourseRound{
		{Days: []int{5}, Start: "09:00", End: "11:00"},
	})
	require.NoError(t, err)

	b := &domain.Booking{
		UserID:        77,
		CourseID:      c.ID,
		RoundID:       &rounds[0].ID,
		OwnerFullName: "Nid",
		OwnerPhone:    "000",
		DogCount:      1,
		Status:        domain.BookingApproved,
	}
	require.NoError(t, bookings.Create(ctx, b))

	require.NoError(t, courses.Delete(ctx, c.ID))

	_, err = courses.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = bookings.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	left, err := courses.GetRounds(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestVisibility_HiddenWhenOwnerLosesTrainerRole(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	courses := NewCourseRepository(db)
	trainer, c := seedTrainerWithCourse(t, db)

	got, err := courses.GetVisibleByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	require.NoError(t, users.UpdateRole(ctx, trainer.ID, domain.RoleNone))

	_, err = courses.GetVisibleByID(ctx, c.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	visible, _, err := courses.ListVisible(ctx, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestUpdateStatusIfPending_FirstDecisionWins(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	bookings := NewBookingRepository(db)
	_, c := seedTrainerWithCourse(t, db)

	b := &domain.Booking{
		UserID:        77,
		CourseID:      c.ID,
		OwnerFullName: "Nid",
		OwnerPhone:    "000",
		DogCount:      1,
		Status:        domain.BookingPending,
	}
	require.NoError(t, bookings.Create(ctx, b))

	n, err := bookings.UpdateStatusIfPending(ctx, b.ID, domain.BookingApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// The opposite decision arriving second changes nothing.
	n, err = bookings.UpdateStatusIfPending(ctx, b.ID, domain.BookingRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, got.Status)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	first := &domain.User{Email: "dup@example.com", PasswordHash: "x", Name: "A"}
	require.NoError(t, users.Create(ctx, first))

	second := &domain.User{Email: "DUP@example.com", PasswordHash: "x", Name: "B"}
	err := users.Create(ctx, second)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
