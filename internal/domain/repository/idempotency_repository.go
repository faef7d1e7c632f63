package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
)

// IdempotencyRepository defines idempotency key data access
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
