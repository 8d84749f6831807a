package service

import (
	"context"
	"time"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProgressService interface {
	Overview(ctx context.Context, userId uuid.UUID) (*dto.ProgressOverviewResponse, error)
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProgressRequest) error
}

type progressService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProgressService(uowFactory unitofwork.RepositoryFactory) IProgressService {
	return &progressService{
		uowFactory: uowFactory,
	}
}

func (s *progressService) Overview(ctx context.Context, userId uuid.UUID) (*dto.ProgressOverviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	areas, err := uow.KnowledgeProgressRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "area"},
	)
	if err != nil {
		return nil, err
	}

	reviews, err := uow.FlashcardReviewRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	cases, err := uow.CaseCompletionRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	sessions, err := uow.VoiceSessionRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	areaViews := make([]dto.KnowledgeProgressResponse, 0, len(areas))
	for _, area := range areas {
		view := dto.KnowledgeProgressResponse{
			Area:               area.Area,
			ProgressPercentage: area.ProgressPercentage,
		}
		if area.LastStudied != nil {
			view.LastStudied = *area.LastStudied
		}
		areaViews = append(areaViews, view)
	}

	return &dto.ProgressOverviewResponse{
		Areas:           areaViews,
		ReviewsLogged:   reviews,
		CasesCompleted:  cases,
		SessionsCreated: sessions,
	}, nil
}

func (s *progressService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProgressRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	return uow.KnowledgeProgressRepository().Upsert(ctx, &entity.KnowledgeProgress{
		Id:                 uuid.New(),
		UserId:             userId,
		Area:               req.Area,
		ProgressPercentage: req.ProgressPercentage,
		LastStudied:        &now,
	})
}
