package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fandresena/gereo-server/internal/domain/entity"
	"github.com/fandresena/gereo-server/internal/domain/enum"
	"github.com/fandresena/gereo-server/internal/domain/repository"
	"github.com/fandresena/gereo-server/pkg/apperror"
	"github.com/fandresena/gereo-server/pkg/money"
	"github.com/fandresena/gereo-server/pkg/pagination"
)

// ExpenseService handles expense records and their cash register effects
type ExpenseService struct {
	uow         repository.UnitOfWork
	expenseRepo repository.ExpenseRepository
	cashRepo    repository.CashMovementRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(uow repository.UnitOfWork, expenseRepo repository.ExpenseRepository, cashRepo repository.CashMovementRepository) *ExpenseService {
	return &ExpenseService{
		uow:         uow,
		expenseRepo: expenseRepo,
		cashRepo:    cashRepo,
	}
}

// RecordExpenseInput represents the record expense input
type RecordExpenseInput struct {
	Description string
	Category    string
	Amount      float64
	Date        *time.Time
}

// RecordExpense creates an expense and the matching outgoing cash movement,
// atomically
func (s *ExpenseService) RecordExpense(ctx context.Context, input *RecordExpenseInput) (*entity.Expense, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "must not be empty"})
	}
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	amountCents := money.ToCents(input.Amount)

	expense := &entity.Expense{
		ExpenseDate: date,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Amount:      amountCents,
	}

	err := s.uow.Do(ctx, func(tx repository.Store) error {
		if err := tx.Expenses().Create(ctx, expense); err != nil {
			return err
		}

		balance, err := tx.CashMovements().LatestBalance(ctx)
		if err != nil {
			return err
		}
		return tx.CashMovements().Create(ctx, &entity.CashMovement{
			MovementDate:   date,
			MovementType:   enum.CashExpense,
			Amount:         -amountCents,
			ReferenceID:    &expense.ID,
			CurrentBalance: balance - amountCents,
		})
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// ListExpenses lists expenses, most recent first
func (s *ExpenseService) ListExpenses(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// DeleteExpense removes an expense and restores the register balance with an
// ADJUST movement, atomically
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(tx repository.Store) error {
		expense, err := tx.Expenses().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if expense == nil {
			return apperror.NewNotFoundError("Expense")
		}

		if err := tx.Expenses().Delete(ctx, id); err != nil {
			return err
		}

		balance, err := tx.CashMovements().LatestBalance(ctx)
		if err != nil {
			return err
		}
		notes := "Expense deleted"
		return tx.CashMovements().Create(ctx, &entity.CashMovement{
			MovementDate:   time.Now(),
			MovementType:   enum.CashAdjust,
			Amount:         expense.Amount,
			ReferenceID:    &id,
			CurrentBalance: balance + expense.Amount,
			Notes:          &notes,
		})
	})
}

// ListCashMovements lists cash register movements, most recent first
func (s *ExpenseService) ListCashMovements(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.CashMovement], error) {
	movements, total, err := s.cashRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}
