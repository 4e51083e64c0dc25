package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbershop-bg/booking-api/internal/httperr"
	"github.com/barbershop-bg/booking-api/internal/models"
)

func TestCancelAndComplete(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(b, now))
	assert.Equal(t, string(StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)

	// completed is terminal
	assert.Error(t, Cancel(b, now))
	assert.Error(t, Complete(b, now))

	b = &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)

	// cancelled is terminal
	assert.Error(t, Cancel(b, now))
	assert.Error(t, Complete(b, now))
}

func TestCanCancelAsCustomer(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		status   Status
		startIn  time.Duration
		wantCode string
	}{
		{"three hours ahead", StatusConfirmed, 3 * time.Hour, ""},
		{"exactly at window", StatusConfirmed, 2 * time.Hour, "too_late_to_cancel"},
		{"one hour ahead", StatusConfirmed, time.Hour, "too_late_to_cancel"},
		{"already started", StatusConfirmed, -time.Minute, "booking_already_started"},
		{"already cancelled", StatusCancelled, 3 * time.Hour, "invalid_state"},
		{"already completed", StatusCompleted, 3 * time.Hour, "invalid_state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{
				Status:    string(tt.status),
				StartTime: now.Add(tt.startIn),
			}

			err := CanCancelAsCustomer(b, now)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}
}
