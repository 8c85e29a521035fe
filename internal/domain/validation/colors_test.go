package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#30b0c7", true},
		{"#FFF", true},
		{"#abcdef", true},
		{"30b0c7", false},
		{"#30b0c", false},
		{"#30b0c7ff", false},
		{"#ggg", false},
		{"", false},
		{"blue", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexColor(tt.value))
		})
	}
}
