package booking

import "trainmydog/internal/domain"

type CreateBookingRequest struct {
	CourseID int64  `json:"course_id" binding:"required"`
	RoundID  *int64 `json:"round_id"`

	OwnerFullName string `json:"owner_full_name" binding:"required"`
	OwnerNickname string `json:"owner_nickname"`
	OwnerPhone    string `json:"owner_phone" binding:"required"`

	DogName    string           `json:"dog_name"`
	DogCount   int              `json:"dog_count" binding:"omitempty,gte=1"`
	DogGender  domain.DogGender `json:"dog_gender" binding:"omitempty,oneof=male female"`
	DogAgeYear int              `json:"dog_age_year" binding:"gte=0"`
	DogBreed   string           `json:"dog_breed"`

	Message string `json:"message"`
}

type DecideRequest struct {
	Decision string `json:"decision" binding:"required"`
}
