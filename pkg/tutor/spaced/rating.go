package spaced

import (
	"encoding"
	"errors"
	"fmt"
)

// ErrInvalidRating is returned for ratings outside Hard..Easy.
var ErrInvalidRating = errors.New("spaced: invalid rating")

// Rating is the learner's self-assessment of recall difficulty.
type Rating int

const (
	Hard Rating = iota + 1 // Struggled to recall.
	Medium
	Easy
)

var (
	ratingNames  = [...]string{Hard: "hard", Medium: "medium", Easy: "easy"}
	ratingByName = map[string]Rating{
		"hard":   Hard,
		"medium": Medium,
		"easy":   Easy,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// String returns the lowercase rating name used on the wire and in rows.
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// IsValid reports whether r is Hard, Medium or Easy.
func (r Rating) IsValid() bool {
	return r >= Hard && r <= Easy
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, ok := ratingByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRating, text)
	}
	*r = v
	return nil
}

// ParseRating converts a wire value ("hard", "medium", "easy") to a Rating.
func ParseRating(s string) (Rating, error) {
	v, ok := ratingByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return v, nil
}
