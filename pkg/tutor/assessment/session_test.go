package assessment

import (
	"errors"
	"testing"
	"time"

	"ai-medtutor-be/internal/entity"
)

func threeQuestionCase() entity.CaseStudy {
	return entity.CaseStudy{
		Id:    "case1",
		Title: "Emergency Pneumothorax",
		Questions: []entity.CaseQuestion{
			{Id: "q1", Prompt: "Most likely diagnosis?", Options: []string{"MI", "Pneumothorax", "PE"}, CorrectOption: 1, Explanation: "Classic presentation."},
			{Id: "q2", Prompt: "Next diagnostic step?", Options: []string{"Chest X-ray", "CT", "ECG"}, CorrectOption: 0, Explanation: "Initial imaging of choice."},
			{Id: "q3", Prompt: "Management?", Options: []string{"Observation", "Needle decompression", "Chest tube"}, CorrectOption: 2, Explanation: "40% pneumothorax needs drainage."},
		},
	}
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(threeQuestionCase())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return s
}

func answerAndAdvance(t *testing.T, s *Session, option int) *Completion {
	t.Helper()
	if err := s.SelectAnswer(option); err != nil {
		t.Fatalf("SelectAnswer(%d) error = %v", option, err)
	}
	completion, err := s.Advance(time.Now())
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	return completion
}

func TestNewSessionRequiresQuestions(t *testing.T) {
	if _, err := NewSession(entity.CaseStudy{Id: "empty"}); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("NewSession() error = %v, want ErrNoQuestions", err)
	}
}

func TestFullRunScoring(t *testing.T) {
	s := startedSession(t)

	// Correct key is [1, 0, 2]; the learner answers [1, 0, 1].
	if c := answerAndAdvance(t, s, 1); c != nil {
		t.Fatalf("Advance() mid-case returned a completion")
	}
	if c := answerAndAdvance(t, s, 0); c != nil {
		t.Fatalf("Advance() mid-case returned a completion")
	}
	completion := answerAndAdvance(t, s, 1)
	if completion == nil {
		t.Fatalf("Advance() on last question returned no completion")
	}

	if completion.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", completion.CorrectCount)
	}
	if completion.Score != 67 {
		t.Errorf("Score = %d, want 67", completion.Score)
	}
	if completion.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", completion.TotalQuestions)
	}
	if s.State() != Completed {
		t.Errorf("State = %v, want Completed", s.State())
	}
}

func TestScoreRoundsHalfUp(t *testing.T) {
	cs := threeQuestionCase()
	cs.Questions = cs.Questions[:2]
	s, _ := NewSession(cs)
	_ = s.Start()

	// 1 of 2 correct: exactly 50, no rounding needed.
	_ = answerAndAdvance(t, s, 1)
	completion := answerAndAdvance(t, s, 2)
	if completion.Score != 50 {
		t.Errorf("Score = %d, want 50", completion.Score)
	}
}

func TestScoreIdempotent(t *testing.T) {
	questions := threeQuestionCase().Questions
	answers := map[int]int{0: 1, 1: 0, 2: 1}

	c1, t1 := Score(answers, questions)
	c2, t2 := Score(answers, questions)
	if c1 != c2 || t1 != t2 {
		t.Errorf("Score() not idempotent: (%d/%d) vs (%d/%d)", c1, t1, c2, t2)
	}
}

func TestAdvanceGuardsUnanswered(t *testing.T) {
	s := startedSession(t)

	if _, err := s.Advance(time.Now()); !errors.Is(err, ErrUnanswered) {
		t.Errorf("Advance() error = %v, want ErrUnanswered", err)
	}
	if s.State() != InProgress || s.CurrentIndex() != 0 {
		t.Errorf("rejected Advance() changed state: %v index %d", s.State(), s.CurrentIndex())
	}
}

func TestRetreatGuardAtFirstQuestion(t *testing.T) {
	s := startedSession(t)

	if err := s.Retreat(); !errors.Is(err, ErrAtFirstQuestion) {
		t.Errorf("Retreat() error = %v, want ErrAtFirstQuestion", err)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("rejected Retreat() moved index to %d", s.CurrentIndex())
	}
}

func TestRetreatKeepsAnswer(t *testing.T) {
	s := startedSession(t)

	_ = answerAndAdvance(t, s, 1)
	if err := s.Retreat(); err != nil {
		t.Fatalf("Retreat() error = %v", err)
	}
	if got := s.Answers()[0]; got != 1 {
		t.Errorf("answer for question 0 after retreat = %d, want 1", got)
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	s := startedSession(t)

	_ = s.SelectAnswer(0)
	_ = s.SelectAnswer(2)
	if got := s.Answers()[0]; got != 2 {
		t.Errorf("answer = %d, want last write 2", got)
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	s := startedSession(t)

	if err := s.SelectAnswer(-1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("SelectAnswer(-1) error = %v, want ErrInvalidOption", err)
	}
	if err := s.SelectAnswer(3); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("SelectAnswer(3) error = %v, want ErrInvalidOption", err)
	}
}

func TestTransitionsOutsideInProgress(t *testing.T) {
	s, _ := NewSession(threeQuestionCase())

	if err := s.SelectAnswer(0); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("SelectAnswer() before start error = %v, want ErrNotInProgress", err)
	}
	if _, err := s.Advance(time.Now()); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Advance() before start error = %v, want ErrNotInProgress", err)
	}
	if err := s.Retry(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("Retry() before completion error = %v, want ErrNotCompleted", err)
	}
}

func TestCompletionEmittedOnce(t *testing.T) {
	s := startedSession(t)
	_ = answerAndAdvance(t, s, 1)
	_ = answerAndAdvance(t, s, 0)
	if completion := answerAndAdvance(t, s, 2); completion == nil {
		t.Fatalf("expected completion")
	}

	// Completed sessions reject further advances; no second emission.
	if _, err := s.Advance(time.Now()); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Advance() after completion error = %v, want ErrNotInProgress", err)
	}
}

func TestRetryResets(t *testing.T) {
	s := startedSession(t)
	_ = answerAndAdvance(t, s, 1)
	_ = answerAndAdvance(t, s, 0)
	_ = answerAndAdvance(t, s, 2)

	if err := s.Retry(); err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if s.State() != InProgress || s.CurrentIndex() != 0 || len(s.Answers()) != 0 {
		t.Errorf("Retry() did not reset: state=%v index=%d answers=%d", s.State(), s.CurrentIndex(), len(s.Answers()))
	}
}

func TestReview(t *testing.T) {
	s := startedSession(t)

	if _, err := s.Review(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("Review() mid-case error = %v, want ErrNotCompleted", err)
	}

	_ = answerAndAdvance(t, s, 1)
	_ = answerAndAdvance(t, s, 0)
	_ = answerAndAdvance(t, s, 1)

	reviews, err := s.Review()
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("Review() returned %d entries, want 3", len(reviews))
	}
	if reviews[2].SelectedOption != 1 || reviews[2].CorrectOption != 2 {
		t.Errorf("review[2] = selected %d correct %d, want 1 and 2", reviews[2].SelectedOption, reviews[2].CorrectOption)
	}
	if reviews[0].Explanation == "" {
		t.Errorf("review entries must carry the explanation")
	}
}
