package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQuotationNo(t *testing.T) {
	ts := time.Date(2025, time.August, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "ITA150820251430", GenerateQuotationNo(ts))

	// Single-digit day and month are zero-padded
	ts = time.Date(2026, time.January, 2, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "ITA020120260905", GenerateQuotationNo(ts))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
