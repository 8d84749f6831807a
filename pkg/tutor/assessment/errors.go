package assessment

import "errors"

// Guard violations are caller contract errors: the session state is left
// untouched when any of these is returned.
var (
	ErrNoQuestions     = errors.New("assessment: case has no questions")
	ErrNotInProgress   = errors.New("assessment: session is not in progress")
	ErrNotCompleted    = errors.New("assessment: session is not completed")
	ErrUnanswered      = errors.New("assessment: current question is unanswered")
	ErrAtFirstQuestion = errors.New("assessment: already at the first question")
	ErrInvalidOption   = errors.New("assessment: option index out of range")
)
