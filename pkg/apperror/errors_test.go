package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInsufficientStock(t *testing.T) {
	assert.True(t, IsInsufficientStock(ErrInsufficientStock))
	assert.True(t, IsInsufficientStock(NewInsufficientStockError("Savon 200g")))
	assert.True(t, IsInsufficientStock(fmt.Errorf("recording sale: %w", NewInsufficientStockError("Savon 200g"))))

	assert.False(t, IsInsufficientStock(nil))
	assert.False(t, IsInsufficientStock(errors.New("Insufficient stock"))) // not an AppError
	assert.False(t, IsInsufficientStock(NewBadRequestError("Payment exceeds outstanding debt")))
	assert.False(t, IsInsufficientStock(NewNotFoundError("Product")))
}

func TestGetAppErrorSanitizesUnknownErrors(t *testing.T) {
	appErr := GetAppError(errors.New("sqlite: disk I/O error"))
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "An internal error occurred", appErr.Message)

	known := NewConflictError("A product with this name already exists")
	assert.Equal(t, known, GetAppError(known))
}
