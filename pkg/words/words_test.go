package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupees(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, ""},
		{1, "One"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred and Five"},
		{999, "Nine Hundred and Ninety Nine"},
		{1500, "One Thousand Five Hundred"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred and Fifty Six"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Rupees(tc.n), "n=%d", tc.n)
	}
}

func TestRupeesNegative(t *testing.T) {
	assert.Equal(t, "", Rupees(-7))
}
