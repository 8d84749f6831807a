package implementation

import (
	"context"

	"ai-medtutor-be/internal/entity"
	"ai-medtutor-be/internal/mapper"
	"ai-medtutor-be/internal/model"
	"ai-medtutor-be/internal/repository/contract"
	"ai-medtutor-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KnowledgeProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeProgressMapper
}

func NewKnowledgeProgressRepository(db *gorm.DB) contract.KnowledgeProgressRepository {
	return &KnowledgeProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeProgressMapper(),
	}
}

func (r *KnowledgeProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeProgressRepositoryImpl) Upsert(ctx context.Context, progress *entity.KnowledgeProgress) error {
	m := r.mapper.ToModel(progress)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "area"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress_percentage", "last_studied"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeProgressRepositoryImpl) Touch(ctx context.Context, progress *entity.KnowledgeProgress) error {
	m := r.mapper.ToModel(progress)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "area"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_studied"}),
	}).Create(m).Error
}

func (r *KnowledgeProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeProgress, error) {
	var models []*model.KnowledgeProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
