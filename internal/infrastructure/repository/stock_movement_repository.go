package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	domainRepo "github.com/fandresena/gereo-server/internal/domain/repository"
)

type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(db *gorm.DB) domainRepo.StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r *stockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *stockMovementRepository) ListWithProduct(ctx context.Context) ([]domainRepo.MovementRow, error) {
	var rows []domainRepo.MovementRow
	err := r.db.WithContext(ctx).
		Model(&entity.StockMovement{}).
		Select("stock_movements.*, products.name AS product_name").
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Order("stock_movements.movement_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *stockMovementRepository) SumQuantity(ctx context.Context, productID uuid.UUID) (int, error) {
	var sum *int
	err := r.db.WithContext(ctx).
		Model(&entity.StockMovement{}).
		Select("SUM(quantity)").
		Where("product_id = ?", productID).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}
