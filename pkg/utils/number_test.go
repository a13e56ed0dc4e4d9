package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "17940", want: "17940"},
		{in: "2.5", want: "3"},
		{in: "2.4999", want: "2"},
		{in: "-2.5", want: "-2"},
		{in: "-2.6", want: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundHalfUp(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(decimal.NewFromInt(50), decimal.NewFromInt(100)))
	assert.Equal(t, 33.33, Percentage(decimal.NewFromInt(1), decimal.NewFromInt(3)))
}
