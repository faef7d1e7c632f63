package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/pkg/apperror"
)

func TestRecordEntryAccumulatesStock(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Bougie", 0)

	first, err := env.stock.RecordEntry(context.Background(), &RecordEntryInput{
		ProductID: product.ID,
		Quantity:  5,
		UnitPrice: 2.50,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.MovementEntry, first.MovementType)
	assert.Equal(t, int64(250), first.UnitPrice)

	_, err = env.stock.RecordEntry(context.Background(), &RecordEntryInput{
		ProductID: product.ID,
		Quantity:  3,
		UnitPrice: 2.60,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, reloadProduct(t, env, product.ID).CurrentStock)

	var movements []entity.StockMovement
	require.NoError(t, env.db.
		Where("product_id = ?", product.ID).
		Order("created_at ASC").
		Find(&movements).Error)
	require.Len(t, movements, 2)
	assert.Equal(t, 5, movements[0].Quantity)
	assert.Equal(t, 3, movements[1].Quantity)
}

func TestRecordEntryUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.stock.RecordEntry(context.Background(), &RecordEntryInput{
		ProductID: uuid.New(),
		Quantity:  5,
		UnitPrice: 1.00,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Equal(t, int64(0), countRows(t, env, &entity.StockMovement{}))
}

func TestRecordEntryValidation(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Allumettes", 2)

	_, err := env.stock.RecordEntry(context.Background(), &RecordEntryInput{
		ProductID: product.ID,
		Quantity:  0,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = env.stock.RecordEntry(context.Background(), &RecordEntryInput{
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: -0.50,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	assert.Equal(t, 2, reloadProduct(t, env, product.ID).CurrentStock)
}

func TestRecordEntryKeepsProvidedDate(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Pile AA", 0)

	date := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	movement, err := env.stock.RecordEntry(context.Background(), &RecordEntryInput{
		ProductID: product.ID,
		Quantity:  4,
		UnitPrice: 1.00,
		Date:      &date,
	})
	require.NoError(t, err)
	assert.True(t, movement.MovementDate.Equal(date))
}

func TestListEntriesIncludesProductName(t *testing.T) {
	env := newTestEnv(t)
	product := createProduct(t, env, "Thé vert", 6)

	rows, err := env.stock.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, product.ID, rows[0].ProductID)
	assert.Equal(t, "Thé vert", rows[0].ProductName)
	assert.Equal(t, 6, rows[0].Quantity)
}
