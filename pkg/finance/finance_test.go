package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 100.0, LineAmount(2, 50, 0))
	assert.Equal(t, 90.0, LineAmount(2, 50, 10))
	assert.Equal(t, 0.0, LineAmount(0, 50, 10))
	assert.Equal(t, 0.0, LineAmount(3, 100, 100))
}

func TestLineAmountMonotonicInQty(t *testing.T) {
	prev := 0.0
	for qty := 1; qty <= 10; qty++ {
		amount := LineAmount(float64(qty), 75, 5)
		assert.Greater(t, amount, prev)
		prev = amount
	}
}

func TestFlatGST(t *testing.T) {
	assert.InDelta(t, 180.0, FlatGST(1000), 1e-9)
	assert.InDelta(t, 1180.0, TotalWithFlatGST(1000), 1e-9)
}

func TestSplitGST(t *testing.T) {
	sgst, cgst := SplitGST(1000)
	assert.InDelta(t, 90.0, sgst, 1e-9)
	assert.InDelta(t, 90.0, cgst, 1e-9)
	assert.InDelta(t, 1180.0, TotalWithSplitGST(1000), 1e-9)
}

func TestProjectProfit(t *testing.T) {
	assert.Equal(t, 6500.0, ProjectProfit(10000, 2000, 1000, 500))
	assert.Equal(t, -500.0, ProjectProfit(1000, 1000, 500, 0))
	assert.Equal(t, 0.0, ProjectProfit(0, 0, 0, 0))
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("1234.56")
	assert.NoError(t, err)
	assert.Equal(t, 1234.56, v)

	v, err = ParseAmount("  ")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = ParseAmount("12x")
	assert.Error(t, err)
}
