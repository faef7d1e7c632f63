package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	domainRepo "github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

type cashMovementRepository struct {
	db *gorm.DB
}

// NewCashMovementRepository creates a new cash movement repository
func NewCashMovementRepository(db *gorm.DB) domainRepo.CashMovementRepository {
	return &cashMovementRepository{db: db}
}

func (r *cashMovementRepository) Create(ctx context.Context, movement *entity.CashMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *cashMovementRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.CashMovement, int64, error) {
	var movements []entity.CashMovement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashMovement{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("movement_date DESC, created_at DESC").
		Find(&movements).Error

	return movements, total, err
}

func (r *cashMovementRepository) LatestBalance(ctx context.Context) (int64, error) {
	var movement entity.CashMovement
	err := r.db.WithContext(ctx).
		Order("movement_date DESC, created_at DESC").
		First(&movement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return movement.CurrentBalance, nil
}
