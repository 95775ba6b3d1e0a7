package catalog

import (
	"time"

	"trainmydog/internal/domain"
)

// ValidateRound checks a candidate round: weekday indices in [0,6] with
// duplicates collapsed, and, when any day is selected, both wall-clock times
// present with start strictly before end. A round with no days is a
// placeholder and may leave both times empty. On success the returned round
// carries the normalized (sorted, deduplicated) day set.
func ValidateRound(days []int, start, end string) (domain.CourseRound, error) {
	norm := domain.SortedDays(days)
	for _, d := range norm {
		if d < 0 || d > 6 {
			return domain.CourseRound{}, ErrInvalidDay
		}
	}

	if len(norm) > 0 {
		if start == "" || end == "" {
			return domain.CourseRound{}, ErrRoundTimeRequired
		}
	}

	var st, et time.Time
	var err error
	if start != "" {
		if st, err = time.Parse("15:04", start); err != nil {
			return domain.CourseRound{}, ErrInvalidTime
		}
	}
	if end != "" {
		if et, err = time.Parse("15:04", end); err != nil {
			return domain.CourseRound{}, ErrInvalidTime
		}
	}

	// A zero-length session is invalid: equal times are rejected too.
	if len(norm) > 0 && !st.Before(et) {
		return domain.CourseRound{}, ErrRoundTimeOrder
	}

	return domain.CourseRound{Days: norm, Start: start, End: end}, nil
}
