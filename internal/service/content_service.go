package service

import (
	"context"
	"fmt"
	"time"

	"ai-medtutor-be/internal/constant"
	"ai-medtutor-be/internal/dto"
	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/pkg/serverutils"
	"ai-medtutor-be/internal/repository/specification"
	"ai-medtutor-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
)

type IContentService interface {
	GetAll(ctx context.Context) ([]*dto.ContentItemResponse, error)
	Show(ctx context.Context, id string) (*dto.ContentItemResponse, error)
	Create(ctx context.Context, req *dto.CreateContentRequest) (*dto.CreateContentResponse, error)
	Update(ctx context.Context, req *dto.UpdateContentRequest) (*dto.ContentItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContentService(uowFactory unitofwork.RepositoryFactory) IContentService {
	return &contentService{
		uowFactory: uowFactory,
	}
}

func (s *contentService) GetAll(ctx context.Context) ([]*dto.ContentItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.ContentItemRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContentItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, contentResponse(item))
	}
	return result, nil
}

func (s *contentService) Show(ctx context.Context, id string) (*dto.ContentItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ContentItemRepository().FindOne(ctx, specification.ByKey{Key: id})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Content item not found")
	}
	return contentResponse(item), nil
}

func (s *contentService) Create(ctx context.Context, req *dto.CreateContentRequest) (*dto.CreateContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item := entity.ContentItem{
		Id:          mintContentId(time.Now()),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		ContentType: req.Type,
		Body:        req.Body,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := uow.ContentItemRepository().Create(ctx, &item); err != nil {
		return nil, err
	}

	return &dto.CreateContentResponse{Id: item.Id}, nil
}

func (s *contentService) Update(ctx context.Context, req *dto.UpdateContentRequest) (*dto.ContentItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ContentItemRepository().FindOne(ctx, specification.ByKey{Key: req.Id})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Content item not found")
	}

	now := time.Now()
	item.Title = req.Title
	item.Description = req.Description
	item.Category = req.Category
	item.Tags = req.Tags
	item.ContentType = req.Type
	item.Body = req.Body
	item.IsActive = req.IsActive
	item.UpdatedAt = &now

	if err := uow.ContentItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}
	return contentResponse(item), nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ContentItemRepository().FindOne(ctx, specification.ByKey{Key: id})
	if err != nil {
		return err
	}
	if item == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "Content item not found")
	}

	return uow.ContentItemRepository().Delete(ctx, id)
}

// mintContentId builds the opaque catalog id from the creation instant.
func mintContentId(now time.Time) string {
	return fmt.Sprintf("%s%d", constant.ContentIdPrefix, now.UnixMilli())
}

func contentResponse(item *entity.ContentItem) *dto.ContentItemResponse {
	return &dto.ContentItemResponse{
		Id:          item.Id,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Type:        item.ContentType,
		Body:        item.Body,
		Tags:        item.Tags,
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
