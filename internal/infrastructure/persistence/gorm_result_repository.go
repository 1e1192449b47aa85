package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgSquared/livesketch/internal/domain/evaluation"
	"github.com/georgSquared/livesketch/internal/infrastructure/persistence/models"
	"github.com/georgSquared/livesketch/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormResultRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormResultRepository creates a new GORM-based ResultRepository implementation
func NewGormResultRepository(db *gorm.DB, logger logger.Logger) (evaluation.ResultRepository, error) {
	return &gormResultRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormResultRepository) Create(ctx context.Context, result *evaluation.Result) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EvaluationResultModel{}
	model.FromDomain(result)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create evaluation result: %w", err)
	}

	r.logger.Info("Created evaluation result with id ", result.ID)
	return nil
}

func (r *gormResultRepository) List(ctx context.Context, query *evaluation.ResultQuery) ([]*evaluation.Result, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EvaluationResultModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EvaluationResultModel{})

	if query.DatasetID != "" {
		dbQuery = dbQuery.Where("dataset_id = ?", query.DatasetID)
	}
	if query.Metric != "" {
		dbQuery = dbQuery.Where("metric = ?", query.Metric)
	}
	if query.Model != "" {
		dbQuery = dbQuery.Where("model = ?", query.Model)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch evaluation results: %w", err)
	}

	domainList := make([]*evaluation.Result, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormResultRepository) GetByID(ctx context.Context, resultID string) (*evaluation.Result, error) {
	var model models.EvaluationResultModel
	if err := r.db.WithContext(ctx).Where("id = ?", resultID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("evaluation result with ID %s not found", resultID)
		}
		return nil, fmt.Errorf("failed to fetch evaluation result: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormResultRepository) DeleteByID(ctx context.Context, resultID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", resultID).Delete(&models.EvaluationResultModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete evaluation result: %w", err)
	}

	r.logger.Info("Deleted evaluation result with id ", resultID)
	return nil
}
