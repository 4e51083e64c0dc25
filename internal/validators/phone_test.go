package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatToE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0888123456", "+359888123456"},
		{"888123456", "+359888123456"},
		{"988123456", "+359988123456"},
		{"+359888123456", "+359888123456"},
		{"0888 123 456", "+359888123456"},
		{"088-812-34-56", "+359888123456"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatToE164(tt.in), "input %q", tt.in)
	}
}

func TestIsValidBulgarianPhone(t *testing.T) {
	valid := []string{
		"0888123456",
		"+359888123456",
		"0888 123 456",
		"888123456",
	}
	for _, p := range valid {
		assert.True(t, IsValidBulgarianPhone(p), "expected %q to be valid", p)
	}

	invalid := []string{
		"",
		"12345",
		"+49170123456",
		"abc",
		"+3591",
	}
	for _, p := range invalid {
		assert.False(t, IsValidBulgarianPhone(p), "expected %q to be invalid", p)
	}
}
