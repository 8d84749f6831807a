// Package spaced computes flashcard review intervals from recall difficulty.
//
// The policy is a fixed single-step table, not an ease-factor algorithm:
// only the rating just given determines the next interval.
package spaced

import "time"

// intervalDays maps a rating to the days until the next review.
var intervalDays = map[Rating]int{
	Hard:   1,
	Medium: 3,
	Easy:   7,
}

// ReviewSchedule is the scheduler's output for one review action.
// The caller binds it to a card and learner when persisting.
type ReviewSchedule struct {
	Rating       Rating
	ReviewedAt   time.Time
	NextReviewAt time.Time
}

// Schedule computes the next review time for a rating given at now.
// Calendar-correct date addition, so the result survives DST transitions.
// Invalid ratings are a caller contract violation and return ErrInvalidRating.
func Schedule(rating Rating, now time.Time) (ReviewSchedule, error) {
	days, ok := intervalDays[rating]
	if !ok {
		return ReviewSchedule{}, ErrInvalidRating
	}
	return ReviewSchedule{
		Rating:       rating,
		ReviewedAt:   now,
		NextReviewAt: now.AddDate(0, 0, days),
	}, nil
}

// Interval returns the review interval for a rating, zero if invalid.
func Interval(rating Rating) time.Duration {
	return time.Duration(intervalDays[rating]) * 24 * time.Hour
}
