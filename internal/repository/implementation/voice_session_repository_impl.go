package implementation

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/mapper"
	"ai-medtutor-be/internal/model"
	"ai-medtutor-be/internal/repository/contract"
	"ai-medtutor-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VoiceSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoiceSessionMapper
}

func NewVoiceSessionRepository(db *gorm.DB) contract.VoiceSessionRepository {
	return &VoiceSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoiceSessionMapper(),
	}
}

func (r *VoiceSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VoiceSessionRepositoryImpl) Create(ctx context.Context, session *entity.VoiceSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoiceSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoiceSession, error) {
	var models []*model.VoiceSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VoiceSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VoiceSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
