package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlots(t *testing.T) {
	got, ok := normalizeSlots([]string{"10:30", "09:00", "10:30", "14:00"})
	assert.True(t, ok)
	assert.Equal(t, []string{"09:00", "10:30", "14:00"}, got)

	got, ok = normalizeSlots([]string{})
	assert.True(t, ok)
	assert.Empty(t, got)

	for _, bad := range []string{"9:00 AM", "25:00", "10.30", "1030"} {
		_, ok := normalizeSlots([]string{bad})
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}
