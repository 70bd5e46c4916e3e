package checkout

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingBrackets(t *testing.T) {
	tests := []struct {
		subtotal int
		want     int
	}{
		{subtotal: 2500, want: 0},
		{subtotal: 2001, want: 0},
		{subtotal: 2000, want: 150},
		{subtotal: 1500, want: 150},
		{subtotal: 1, want: 150},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShippingFee(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestTaxIsRoundedGST(t *testing.T) {
	assert.Equal(t, 180, Tax(1000))
	assert.Equal(t, 270, Tax(1500))
	assert.Equal(t, 18, Tax(99))  // 17.82 rounds up
	assert.Equal(t, 0, Tax(0))
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(1000)
	assert.Equal(t, Totals{Subtotal: 1000, Shipping: 150, Tax: 180, Total: 1330}, got)

	got = ComputeTotals(2500)
	assert.Equal(t, Totals{Subtotal: 2500, Shipping: 0, Tax: 450, Total: 2950}, got)
}

func TestOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^HDR-\d+-[A-Z0-9]{5}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := OrderNumber()
		assert.Regexp(t, pattern, n)
		seen[n] = true
	}
	// Practical uniqueness only; the format carries no guarantee.
	assert.Greater(t, len(seen), 1)
}
