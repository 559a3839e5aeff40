package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"integer", 2, "2"},
		{"zero", 0, "0"},
		{"half", 0.5, "1/2"},
		{"quarter", 0.25, "1/4"},
		{"eighth", 0.125, "1/8"},
		{"third within tolerance", 0.33, "1/3"},
		{"two thirds", 2.0 / 3, "2/3"},
		{"mixed number", 1.5, "1 1/2"},
		{"mixed quarter", 2.25, "2 1/4"},
		{"near integer rounds up", 1.99, "2"},
		{"near integer rounds down", 3.01, "3"},
		{"no common fraction", 0.23, "0.23"},
		{"decimal fallback", 2.7, "2.7"},
		{"rounds to two decimals", 1.23456, "1.23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuantity(tt.value))
		})
	}
}
