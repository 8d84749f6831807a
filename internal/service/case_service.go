package service

import (
	"context"
	"errors"
	"math"
	"time"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/pkg/logger"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/repository/memory"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"
	"ai-medtutor-be/pkg/tutor/assessment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICaseService interface {
	GetAll(ctx context.Context) ([]*dto.CaseSummaryResponse, error)
	Start(ctx context.Context, userId uuid.UUID, caseId string) (*dto.StartCaseResponse, error)
	Session(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.CaseStepResponse, error)
	Answer(ctx context.Context, userId uuid.UUID, req *dto.AnswerCaseRequest) (*dto.CaseStepResponse, error)
	Advance(ctx context.Context, userId uuid.UUID, req *dto.AdvanceCaseRequest) (*dto.CaseStepResponse, error)
	Retreat(ctx context.Context, userId uuid.UUID, req *dto.AdvanceCaseRequest) (*dto.CaseStepResponse, error)
	Retry(ctx context.Context, userId uuid.UUID, req *dto.AdvanceCaseRequest) (*dto.CaseStepResponse, error)
	Review(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.CaseReviewResponse, error)
	Completions(ctx context.Context, userId uuid.UUID) ([]*dto.CompletedCaseResponse, error)
}

type caseService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.CaseSessionRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCaseService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.CaseSessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ICaseService {
	return &caseService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *caseService) GetAll(ctx context.Context) ([]*dto.CaseSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cases, err := uow.CaseStudyRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CaseSummaryResponse, 0, len(cases))
	for _, cs := range cases {
		result = append(result, &dto.CaseSummaryResponse{
			Id:          cs.Id,
			Title:       cs.Title,
			Description: cs.Description,
			Difficulty:  cs.Difficulty,
			Duration:    cs.Duration,
			Objectives:  cs.LearningObjectives,
		})
	}
	return result, nil
}

func (s *caseService) Start(ctx context.Context, userId uuid.UUID, caseId string) (*dto.StartCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cs, err := uow.CaseStudyRepository().FindOne(ctx, specification.ByKey{Key: caseId})
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Case study not found")
	}

	session, err := assessment.NewSession(*cs)
	if err != nil {
		return nil, mapAssessmentError(err)
	}
	if err := session.Start(); err != nil {
		return nil, mapAssessmentError(err)
	}

	entry := &memory.CaseSessionEntry{
		Id:        uuid.New().String(),
		UserId:    userId,
		CaseId:    cs.Id,
		Session:   session,
		StartedAt: time.Now(),
	}
	s.sessions.Save(entry)

	return &dto.StartCaseResponse{
		SessionId: entry.Id,
		CaseId:    cs.Id,
		Title:     cs.Title,
		Scenario:  cs.Scenario,
		Question:  questionView(session),
	}, nil
}

func (s *caseService) Session(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.CaseStepResponse, error) {
	entry, err := s.ownedSession(userId, sessionId)
	if err != nil {
		return nil, err
	}

	return s.stepResponse(entry, nil), nil
}

func (s *caseService) Answer(ctx context.Context, userId uuid.UUID, req *dto.AnswerCaseRequest) (*dto.CaseStepResponse, error) {
	entry, err := s.ownedSession(userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	if req.Selected == nil {
		return nil, serverutils.NewApiError(fiber.StatusUnprocessableEntity, "Selected option is required")
	}
	if err := entry.Session.SelectAnswer(*req.Selected); err != nil {
		return nil, mapAssessmentError(err)
	}
	s.sessions.Save(entry)

	return s.stepResponse(entry, nil), nil
}

// Advance moves to the next question. On the completing transition the
// score is computed once and handed to the record pipeline.
func (s *caseService) Advance(ctx context.Context, userId uuid.UUID, req *dto.AdvanceCaseRequest) (*dto.CaseStepResponse, error) {
	entry, err := s.ownedSession(userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	completion, err := entry.Session.Advance(time.Now())
	if err != nil {
		return nil, mapAssessmentError(err)
	}
	s.sessions.Save(entry)

	if completion != nil {
		record := dto.PublishTutorRecordMessage{
			Kind: dto.RecordKindCaseCompletion,
			CaseCompletion: &dto.CaseCompletionRecord{
				UserId:         entry.UserId,
				CaseId:         entry.CaseId,
				Score:          completion.Score,
				CorrectCount:   completion.CorrectCount,
				TotalQuestions: completion.TotalQuestions,
				TimeTaken:      int(completion.CompletedAt.Sub(entry.StartedAt).Seconds()),
				CompletedAt:    completion.CompletedAt,
			},
		}
		if err := s.publisherService.Publish(record); err != nil {
			// Persistence is best effort. The completed state and score
			// still reach the learner.
			s.logger.Warn("case", "Failed to publish completion record", map[string]interface{}{
				"error":   err.Error(),
				"case_id": entry.CaseId,
			})
		}
	}

	return s.stepResponse(entry, completion), nil
}

func (s *caseService) Retreat(ctx context.Context, userId uuid.UUID, req *dto.AdvanceCaseRequest) (*dto.CaseStepResponse, error) {
	entry, err := s.ownedSession(userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	if err := entry.Session.Retreat(); err != nil {
		return nil, mapAssessmentError(err)
	}
	s.sessions.Save(entry)

	return s.stepResponse(entry, nil), nil
}

// Retry restarts a completed attempt in place. The completion already
// recorded stays recorded; a fresh run produces a new one.
func (s *caseService) Retry(ctx context.Context, userId uuid.UUID, req *dto.AdvanceCaseRequest) (*dto.CaseStepResponse, error) {
	entry, err := s.ownedSession(userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	if err := entry.Session.Retry(); err != nil {
		return nil, mapAssessmentError(err)
	}
	entry.StartedAt = time.Now()
	s.sessions.Save(entry)

	return s.stepResponse(entry, nil), nil
}

func (s *caseService) Review(ctx context.Context, userId uuid.UUID, sessionId string) (*dto.CaseReviewResponse, error) {
	entry, err := s.ownedSession(userId, sessionId)
	if err != nil {
		return nil, err
	}

	reviews, err := entry.Session.Review()
	if err != nil {
		return nil, mapAssessmentError(err)
	}

	questions := entry.Session.Case().Questions
	correct, total := assessment.Score(entry.Session.Answers(), questions)

	items := make([]dto.CaseReviewItem, 0, len(reviews))
	for i, review := range reviews {
		items = append(items, dto.CaseReviewItem{
			QuestionId:  questions[i].Id,
			Question:    review.Prompt,
			Selected:    review.SelectedOption,
			Correct:     review.CorrectOption,
			WasCorrect:  review.SelectedOption == review.CorrectOption,
			Explanation: review.Explanation,
		})
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}

	return &dto.CaseReviewResponse{
		SessionId: entry.Id,
		Completion: dto.CaseCompletionView{
			Score:          score,
			CorrectCount:   correct,
			TotalQuestions: total,
		},
		Items: items,
	}, nil
}

func (s *caseService) Completions(ctx context.Context, userId uuid.UUID) ([]*dto.CompletedCaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	completions, err := uow.CaseCompletionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "completed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CompletedCaseResponse, 0, len(completions))
	for _, completion := range completions {
		result = append(result, &dto.CompletedCaseResponse{
			Id:          completion.Id,
			CaseId:      completion.CaseId,
			Score:       completion.Score,
			CompletedAt: completion.CompletedAt,
		})
	}
	return result, nil
}

func (s *caseService) ownedSession(userId uuid.UUID, sessionId string) (*memory.CaseSessionEntry, error) {
	entry, found := s.sessions.Get(sessionId)
	if !found {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Case session not found or expired")
	}
	if entry.UserId != userId {
		return nil, serverutils.NewApiError(fiber.StatusForbidden, "Case session belongs to another user")
	}
	return entry, nil
}

func (s *caseService) stepResponse(entry *memory.CaseSessionEntry, completion *assessment.Completion) *dto.CaseStepResponse {
	res := &dto.CaseStepResponse{
		SessionId: entry.Id,
		State:     entry.Session.State().String(),
	}
	if entry.Session.State() == assessment.InProgress {
		q := questionView(entry.Session)
		res.Question = &q
	}
	if completion != nil {
		res.Completion = &dto.CaseCompletionView{
			Score:          completion.Score,
			CorrectCount:   completion.CorrectCount,
			TotalQuestions: completion.TotalQuestions,
			CompletedAt:    completion.CompletedAt,
		}
	}
	return res
}

func questionView(session *assessment.Session) dto.CaseQuestionView {
	q := session.CurrentQuestion()
	view := dto.CaseQuestionView{
		Id:       q.Id,
		Question: q.Prompt,
		Options:  q.Options,
		Index:    session.CurrentIndex(),
		Total:    len(session.Case().Questions),
	}
	if selected, ok := session.Answers()[session.CurrentIndex()]; ok {
		view.Selected = &selected
	}
	return view
}

// mapAssessmentError translates state machine guard violations into HTTP
// statuses: contract misuse is 409, bad input is 422.
func mapAssessmentError(err error) error {
	switch {
	case errors.Is(err, assessment.ErrInvalidOption):
		return serverutils.NewApiError(fiber.StatusUnprocessableEntity, "Option index out of range")
	case errors.Is(err, assessment.ErrUnanswered):
		return serverutils.NewApiError(fiber.StatusConflict, "Current question must be answered first")
	case errors.Is(err, assessment.ErrNotInProgress):
		return serverutils.NewApiError(fiber.StatusConflict, "Case session is not in progress")
	case errors.Is(err, assessment.ErrNotCompleted):
		return serverutils.NewApiError(fiber.StatusConflict, "Case session is not completed")
	case errors.Is(err, assessment.ErrAtFirstQuestion):
		return serverutils.NewApiError(fiber.StatusConflict, "Already at the first question")
	case errors.Is(err, assessment.ErrNoQuestions):
		return serverutils.NewApiError(fiber.StatusUnprocessableEntity, "Case has no questions")
	}
	return err
}
