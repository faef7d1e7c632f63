package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1234), ToCents(12.34))
	assert.Equal(t, int64(0), ToCents(0))
	assert.Equal(t, int64(100), ToCents(1.0))
	// Values float64 cannot hold exactly still round to the right cent
	assert.Equal(t, int64(10), ToCents(0.1))
	assert.Equal(t, int64(2999), ToCents(29.99))
}

func TestFromCents(t *testing.T) {
	assert.Equal(t, 12.34, FromCents(1234))
	assert.Equal(t, 0.0, FromCents(0))
	assert.Equal(t, -5.5, FromCents(-550))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(3000), LineTotal(3, 1000))
	assert.Equal(t, int64(0), LineTotal(0, 1000))
	assert.Equal(t, int64(2997), LineTotal(3, 999))
}
