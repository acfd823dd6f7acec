package utils_test

import (
	"testing"

	"github.com/SscSPs/ct_order_jobs/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		amount    float64
		precision int
		want      string
	}{
		{10 / 0.9, 2, "11.11"},
		{12.5, 0, "13"},
		{0.1 + 0.2, 2, "0.30"},
		{1500, 2, "1500.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatWithPrecision(tt.amount, tt.precision))
	}
	assert.Equal(t, "11.11", utils.FormatUSD(10/0.9))
}
