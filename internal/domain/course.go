package domain

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// ThaiDays maps weekday indices (0=Monday .. 6=Sunday) to display labels.
var ThaiDays = map[int]string{
	0: "จันทร์",
	1: "อังคาร",
	2: "พุธ",
	3: "พฤหัสบดี",
	4: "ศุกร์",
	5: "เสาร์",
	6: "อาทิตย์",
}

type Course struct {
	ID           int64     `json:"id"`
	TrainerID    int64     `json:"trainer_id"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description,omitempty"`
	DurationHr   int       `json:"duration_hr" validate:"gte=1"`
	Price        float64   `json:"price" validate:"gte=0"`
	DepositPrice float64   `json:"deposit_price" validate:"gte=0"`
	CoverImage   string    `json:"cover_image,omitempty"`
	Location     string    `json:"location,omitempty"`
	MaxDogs      *int      `json:"max_dogs,omitempty"`
	Benefits     string    `json:"benefits,omitempty"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Rounds []CourseRound `json:"rounds,omitempty"`
}

// CourseRound is a recurring session slot under a course. Days hold weekday
// indices 0=Monday..6=Sunday; Start/End are wall-clock "HH:MM" strings with
// no date or timezone. A round with no days may leave both times empty.
type CourseRound struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Days     []int  `json:"days"`
	Start    string `json:"start_time,omitempty"`
	End      string `json:"end_time,omitempty"`
}

// SortedDays returns the weekday set sorted ascending with duplicates removed.
func SortedDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// DisplayDays renders a weekday set as sorted Thai labels, e.g. "จันทร์, พุธ".
func DisplayDays(days []int) string {
	labels := make([]string, 0, len(days))
	for _, d := range SortedDays(days) {
		labels = append(labels, ThaiDays[d])
	}
	return strings.Join(labels, ", ")
}

// BenefitsList splits the free-text benefits field into display items:
// one item per non-blank line, with any leading run of list markers
// (digits, '-', '*', ')', '•', '.') stripped. Running it over its own
// output returns the same list.
func (c *Course) BenefitsList() []string {
	items := []string{}
	for _, raw := range strings.Split(c.Benefits, "\n") {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		for item != "" {
			r, size := utf8.DecodeRuneInString(item)
			if !isListMarker(r) {
				break
			}
			item = strings.TrimSpace(item[size:])
		}
		items = append(items, item)
	}
	return items
}

func isListMarker(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '-', '*', ')', '•', '.':
		return true
	}
	return false
}

// DisplayTrainingDays merges the day sets of all rounds for course cards.
func (c *Course) DisplayTrainingDays() string {
	all := []int{}
	for _, r := range c.Rounds {
		all = append(all, r.Days...)
	}
	return DisplayDays(all)
}
