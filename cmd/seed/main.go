package main

import (
	"context"
	"log"
	"os"

	"trainmydog/internal/database"
	"trainmydog/internal/domain"
	"trainmydog/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with demo accounts and courses.
// Passwords: admin123 / trainer123 / owner123.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "trainmydog.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM trainer_certificates")
	db.Exec("DELETE FROM trainer_applications")
	db.Exec("DELETE FROM course_rounds")
	db.Exec("DELETE FROM courses")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	bookings := repository.NewBookingRepository(db)

	log.Println("Creating users...")

	admin := &domain.User{
		Email:        "admin@trainmydog.local",
		PasswordHash: hash("admin123"),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	trainer := &domain.User{
		Email:        "trainer@trainmydog.local",
		PasswordHash: hash("trainer123"),
		Role:         domain.RoleTrainer,
		Name:         "Somchai",
		Phone:        "+66-81-000-0001",
	}
	owner := &domain.User{
		Email:        "owner@trainmydog.local",
		PasswordHash: hash("owner123"),
		Role:         domain.RoleNone,
		Name:         "Nid",
		Phone:        "+66-81-000-0002",
	}
	for _, u := range []*domain.User{admin, trainer, owner} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("user seed failed: ", err)
		}
	}

	log.Println("Creating courses...")

	maxDogs := 6
	basic := &domain.Course{
		TrainerID:    trainer.ID,
		Title:        "Puppy Basics",
		Description:  "Eight weeks of obedience fundamentals for puppies under one year.",
		DurationHr:   2,
		Price:        4500,
		DepositPrice: 1000,
		Location:     "Bangkok, Chatuchak Park",
		MaxDogs:      &maxDogs,
		Benefits:     "1) Free first bath\n- Progress report every week\n2. Follow-up call after the course",
		IsPublished:  true,
	}
	if err := courses.Create(ctx, basic); err != nil {
		log.Fatal("course seed failed: ", err)
	}
	rounds, err := courses.ReplaceRounds(ctx, basic.ID, []domain.CourseRound{
		{Days: []int{5, 6}, Start: "09:00", End: "11:00"},
		{Days: []int{2}, Start: "18:00", End: "20:00"},
	})
	if err != nil {
		log.Fatal("round seed failed: ", err)
	}

	draft := &domain.Course{
		TrainerID:   trainer.ID,
		Title:       "Advanced Agility",
		Description: "Draft program, not yet open for booking.",
		DurationHr:  3,
		Price:       8000,
		IsPublished: false,
	}
	if err := courses.Create(ctx, draft); err != nil {
		log.Fatal("course seed failed: ", err)
	}

	log.Println("Creating bookings...")

	b := &domain.Booking{
		UserID:        owner.ID,
		CourseID:      basic.ID,
		RoundID:       &rounds[0].ID,
		OwnerFullName: "Nid Saetang",
		OwnerPhone:    "+66-81-000-0002",
		DogName:       "Mocha",
		DogCount:      1,
		DogGender:     domain.DogFemale,
		DogAgeYear:    1,
		DogBreed:      "Shiba Inu",
		Message:       "She pulls on the leash a lot.",
		Status:        domain.BookingPending,
	}
	if err := bookings.Create(ctx, b); err != nil {
		log.Fatal("booking seed failed: ", err)
	}

	log.Println("Seed complete.")
	log.Println("  admin@trainmydog.local / admin123")
	log.Println("  trainer@trainmydog.local / trainer123")
	log.Println("  owner@trainmydog.local / owner123")
}

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}
