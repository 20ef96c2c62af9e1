package study

import (
	"fmt"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Day offsets applied to the review instant for each difficulty.
var difficultyOffsets = map[domain.Difficulty]int{
	domain.DifficultyEasy:   5,
	domain.DifficultyMedium: 3,
	domain.DifficultyHard:   1,
}

// Rating is a review outcome: either a named difficulty or a raw day offset.
type Rating struct {
	difficulty domain.Difficulty
	days       int
	isDays     bool
}

// RatingOf rates a review with a named difficulty.
func RatingOf(d domain.Difficulty) Rating {
	return Rating{difficulty: d}
}

// RatingDays rates a review with an explicit offset in days.
func RatingDays(n int) Rating {
	return Rating{days: n, isDays: true}
}

// Offset returns the number of days the rating pushes the next review out.
// ok is false for a difficulty the scheduler does not know.
func (r Rating) Offset() (days int, ok bool) {
	if r.isDays {
		return max(r.days, 0), true
	}
	days, ok = difficultyOffsets[r.difficulty]
	return days, ok
}

func (r Rating) String() string {
	if r.isDays {
		return fmt.Sprintf("%dd", r.days)
	}
	return string(r.difficulty)
}

// NextReviewDate returns now shifted by the rating's offset in calendar days.
// An unknown rating schedules the card at now and reports ok=false.
// Negative day offsets are treated as zero.
func NextReviewDate(now time.Time, r Rating) (next time.Time, ok bool) {
	days, ok := r.Offset()
	return now.AddDate(0, 0, days), ok
}
