package service

import (
	"context"
	"time"

	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPromptService interface {
	GetAll(ctx context.Context) ([]*dto.PromptResponse, error)
	Create(ctx context.Context, req *dto.CreatePromptRequest) (*dto.CreatePromptResponse, error)
	Update(ctx context.Context, req *dto.UpdatePromptRequest) (*dto.PromptResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promptService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPromptService(uowFactory unitofwork.RepositoryFactory) IPromptService {
	return &promptService{
		uowFactory: uowFactory,
	}
}

func (s *promptService) GetAll(ctx context.Context) ([]*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts, err := uow.TutorPromptRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		result = append(result, promptResponse(p))
	}
	return result, nil
}

func (s *promptService) Create(ctx context.Context, req *dto.CreatePromptRequest) (*dto.CreatePromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	p := entity.TutorPrompt{
		Id:         uuid.New(),
		PromptType: req.PromptType,
		Content:    req.Content,
		IsActive:   req.IsActive,
		CreatedAt:  time.Now(),
	}

	if err := uow.TutorPromptRepository().Create(ctx, &p); err != nil {
		return nil, err
	}
	return &dto.CreatePromptResponse{Id: p.Id}, nil
}

func (s *promptService) Update(ctx context.Context, req *dto.UpdatePromptRequest) (*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	p, err := uow.TutorPromptRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Prompt not found")
	}

	now := time.Now()
	p.PromptType = req.PromptType
	p.Content = req.Content
	p.IsActive = req.IsActive
	p.UpdatedAt = &now

	if err := uow.TutorPromptRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	return promptResponse(p), nil
}

func (s *promptService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	p, err := uow.TutorPromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if p == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "Prompt not found")
	}

	return uow.TutorPromptRepository().Delete(ctx, id)
}

func promptResponse(p *entity.TutorPrompt) *dto.PromptResponse {
	return &dto.PromptResponse{
		Id:         p.Id,
		PromptType: p.PromptType,
		Content:    p.Content,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
