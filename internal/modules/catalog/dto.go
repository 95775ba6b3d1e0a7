package catalog

import "trainmydog/internal/domain"

type RoundInput struct {
	ID    int64  `json:"id"`
	Days  []int  `json:"days"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

type CourseInput struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description"`
	DurationHr   int          `json:"duration_hr" binding:"required,gte=1"`
	Price        float64      `json:"price" binding:"gte=0"`
	DepositPrice float64      `json:"deposit_price" binding:"gte=0"`
	Location     string       `json:"location"`
	MaxDogs      *int         `json:"max_dogs" binding:"omitempty,gte=1"`
	Benefits     string       `json:"benefits"`
	IsPublished  bool         `json:"is_published"`
	Rounds       []RoundInput `json:"rounds"`
}

// CourseView is the public card shape: derived display fields included,
// trainer-internal ones not.
type CourseView struct {
	ID           int64       `json:"id"`
	TrainerID    int64       `json:"trainer_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	DurationHr   int         `json:"duration_hr"`
	Price        float64     `json:"price"`
	DepositPrice float64     `json:"deposit_price"`
	CoverImage   string      `json:"cover_image,omitempty"`
	Location     string      `json:"location,omitempty"`
	MaxDogs      *int        `json:"max_dogs,omitempty"`
	Benefits     []string    `json:"benefits"`
	TrainingDays string      `json:"training_days"`
	Rounds       []RoundView `json:"rounds"`
	CreatedAt    string      `json:"created_at"`
}

type RoundView struct {
	ID          int64  `json:"id"`
	Days        []int  `json:"days"`
	DisplayDays string `json:"display_days"`
	Start       string `json:"start_time,omitempty"`
	End         string `json:"end_time,omitempty"`
}

func toRoundView(r domain.CourseRound) RoundView {
	return RoundView{
		ID:          r.ID,
		Days:        domain.SortedDays(r.Days),
		DisplayDays: domain.DisplayDays(r.Days),
		Start:       r.Start,
		End:         r.End,
	}
}

func toCourseView(c *domain.Course) CourseView {
	rounds := make([]RoundView, 0, len(c.Rounds))
	for _, r := range c.Rounds {
		rounds = append(rounds, toRoundView(r))
	}

	return CourseView{
		ID:           c.ID,
		TrainerID:    c.TrainerID,
		Title:        c.Title,
		Description:  c.Description,
		DurationHr:   c.DurationHr,
		Price:        c.Price,
		DepositPrice: c.DepositPrice,
		CoverImage:   c.CoverImage,
		Location:     c.Location,
		MaxDogs:      c.MaxDogs,
		Benefits:     c.BenefitsList(),
		TrainingDays: c.DisplayTrainingDays(),
		Rounds:       rounds,
		CreatedAt:    c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
