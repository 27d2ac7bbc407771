package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"150", 150},
		{" 150 ", 150},
		{"99.5", 99.5},
		{"99,5", 99.5},
		{"10000", 10000},
		{"0.01", 0.01},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAmountErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"abc", errNotANumber},
		{"", errNotANumber},
		{"12a", errNotANumber},
		{"NaN", errNotANumber},
		{"Inf", errNotANumber},
		{"0", errOutOfRange},
		{"-5", errOutOfRange},
		{"15000", errOutOfRange},
		{"10000.01", errOutOfRange},
	}
	for _, tt := range tests {
		_, err := parseAmount(tt.in)
		assert.ErrorIs(t, err, tt.want, tt.in)
	}
}

func TestAmountErrText(t *testing.T) {
	assert.Equal(t, "❌ Сумма должна быть от 1 до 10000.", amountErrText(errOutOfRange))
	assert.Equal(t, "❌ Введите корректное число.", amountErrText(errNotANumber))
}

func TestFmtStars(t *testing.T) {
	assert.Equal(t, "100", fmtStars(100))
	assert.Equal(t, "99.5", fmtStars(99.5))
	assert.Equal(t, "0.25", fmtStars(0.25))
	assert.Equal(t, "0", fmtStars(0))
	assert.Equal(t, "1.1", fmtStars(1.10))
}
