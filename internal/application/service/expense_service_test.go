package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/pkg/apperror"
)

func TestRecordExpenseDebitsRegister(t *testing.T) {
	env := newTestEnv(t)

	expense, err := env.expenses.RecordExpense(context.Background(), &RecordExpenseInput{
		Description: "Loyer du local",
		Category:    "rent",
		Amount:      45.00,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), expense.Amount)

	var cash entity.CashMovement
	require.NoError(t, env.db.First(&cash).Error)
	assert.Equal(t, enum.CashExpense, cash.MovementType)
	assert.Equal(t, int64(-4500), cash.Amount)
	assert.Equal(t, int64(-4500), cash.CurrentBalance)
}

func TestRecordExpenseValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.expenses.RecordExpense(context.Background(), &RecordExpenseInput{
		Description: "  ",
		Amount:      0,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)

	assert.Equal(t, int64(0), countRows(t, env, &entity.Expense{}))
	assert.Equal(t, int64(0), countRows(t, env, &entity.CashMovement{}))
}

func TestDeleteExpenseRestoresBalance(t *testing.T) {
	env := newTestEnv(t)

	expense, err := env.expenses.RecordExpense(context.Background(), &RecordExpenseInput{
		Description: "Fournitures",
		Amount:      10.00,
	})
	require.NoError(t, err)

	require.NoError(t, env.expenses.DeleteExpense(context.Background(), expense.ID))

	var adjust entity.CashMovement
	require.NoError(t, env.db.
		Where("movement_type = ?", enum.CashAdjust).
		First(&adjust).Error)
	assert.Equal(t, int64(1000), adjust.Amount)
	assert.Equal(t, int64(0), adjust.CurrentBalance)

	var expenses int64
	require.NoError(t, env.db.Model(&entity.Expense{}).Count(&expenses).Error)
	assert.Equal(t, int64(0), expenses)
}
