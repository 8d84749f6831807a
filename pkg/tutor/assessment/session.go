// Package assessment drives a multiple-choice case study through answer
// selection, navigation, scoring and review.
package assessment

import (
	"math"
	"time"

	"ai-medtutor-be/internal/entity"
)

// State is the session lifecycle phase.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Completion is the scoring result produced on the final Advance.
// The caller binds it to a learner and case id before persisting.
type Completion struct {
	Score          int
	CorrectCount   int
	TotalQuestions int
	CompletedAt    time.Time
}

// QuestionReview is the post-completion detail for one question.
type QuestionReview struct {
	Prompt         string
	Options        []string
	SelectedOption int
	CorrectOption  int
	Explanation    string
}

// Session is one learner's in-progress attempt at a case study.
// It is owned by a single interaction and is not safe for concurrent use.
type Session struct {
	caseStudy entity.CaseStudy
	state     State
	current   int
	answers   map[int]int
}

// NewSession creates a session in NotStarted for the given case.
func NewSession(cs entity.CaseStudy) (*Session, error) {
	if len(cs.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		caseStudy: cs,
		state:     NotStarted,
		answers:   map[int]int{},
	}, nil
}

// Start moves the session to InProgress, resetting index and answers.
// Valid from NotStarted or Completed.
func (s *Session) Start() error {
	if s.state == InProgress {
		return ErrNotInProgress
	}
	s.state = InProgress
	s.current = 0
	s.answers = map[int]int{}
	return nil
}

// Retry restarts a completed session. Identical reset to Start.
func (s *Session) Retry() error {
	if s.state != Completed {
		return ErrNotCompleted
	}
	return s.Start()
}

// SelectAnswer records the option for the current question. Re-selecting
// before advancing overwrites the prior choice; the index does not move.
func (s *Session) SelectAnswer(optionIdx int) error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	if optionIdx < 0 || optionIdx >= len(s.caseStudy.Questions[s.current].Options) {
		return ErrInvalidOption
	}
	s.answers[s.current] = optionIdx
	return nil
}

// Advance moves to the next question, or completes the session when the
// current question is the last one. The current question must be answered.
// The returned Completion is non-nil only on the completing transition.
func (s *Session) Advance(now time.Time) (*Completion, error) {
	if s.state != InProgress {
		return nil, ErrNotInProgress
	}
	if _, answered := s.answers[s.current]; !answered {
		return nil, ErrUnanswered
	}

	if s.current < len(s.caseStudy.Questions)-1 {
		s.current++
		return nil, nil
	}

	s.state = Completed
	completion := s.scoreCompletion(now)
	return &completion, nil
}

// Retreat moves back one question. The answer recorded for the question
// left behind is kept.
func (s *Session) Retreat() error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	if s.current == 0 {
		return ErrAtFirstQuestion
	}
	s.current--
	return nil
}

func (s *Session) scoreCompletion(now time.Time) Completion {
	correct, total := Score(s.answers, s.caseStudy.Questions)
	return Completion{
		Score:          roundedPercentage(correct, total),
		CorrectCount:   correct,
		TotalQuestions: total,
		CompletedAt:    now,
	}
}

// Score counts correct answers against the question key. Pure, so
// re-scoring identical input always yields identical results.
func Score(answers map[int]int, questions []entity.CaseQuestion) (correct, total int) {
	for i, q := range questions {
		if answer, ok := answers[i]; ok && answer == q.CorrectOption {
			correct++
		}
	}
	return correct, len(questions)
}

// roundedPercentage rounds to nearest with 0.5 rounding up.
func roundedPercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Review returns the per-question detail after completion.
func (s *Session) Review() ([]QuestionReview, error) {
	if s.state != Completed {
		return nil, ErrNotCompleted
	}

	reviews := make([]QuestionReview, len(s.caseStudy.Questions))
	for i, q := range s.caseStudy.Questions {
		selected, ok := s.answers[i]
		if !ok {
			// The advance guard makes this unreachable; flag it if a bug slips through.
			selected = -1
		}
		reviews[i] = QuestionReview{
			Prompt:         q.Prompt,
			Options:        q.Options,
			SelectedOption: selected,
			CorrectOption:  q.CorrectOption,
			Explanation:    q.Explanation,
		}
	}
	return reviews, nil
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// CurrentIndex returns the zero-based index of the current question.
func (s *Session) CurrentIndex() int {
	return s.current
}

// CurrentQuestion returns the question the learner is on.
func (s *Session) CurrentQuestion() entity.CaseQuestion {
	return s.caseStudy.Questions[s.current]
}

// Case returns the case study this session runs.
func (s *Session) Case() entity.CaseStudy {
	return s.caseStudy
}

// Answers returns a copy of the recorded answers keyed by question index.
func (s *Session) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}
