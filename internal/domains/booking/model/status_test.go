package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  date(2025, 6, 1),
			checkOut: date(2025, 6, 2),
			want:     1,
		},
		{
			name:     "week long stay",
			checkIn:  date(2025, 6, 1),
			checkOut: date(2025, 6, 8),
			want:     7,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "same day",
			checkIn:  date(2025, 6, 1),
			checkOut: date(2025, 6, 1),
			want:     0,
		},
		{
			name:     "inverted range",
			checkIn:  date(2025, 6, 8),
			checkOut: date(2025, 6, 1),
			want:     0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, NightsBetween(test.checkIn, test.checkOut))
		})
	}
}

func TestDepositAmount(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		percent int
		want    int64
	}{
		{
			name:    "ten percent of even total",
			total:   127500,
			percent: 10,
			want:    12750,
		},
		{
			name:    "rounds up on remainder",
			total:   101,
			percent: 10,
			want:    11,
		},
		{
			name:    "zero percent",
			total:   127500,
			percent: 0,
			want:    0,
		},
		{
			name:    "zero total",
			total:   0,
			percent: 10,
			want:    0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, DepositAmount(test.total, test.percent))
		})
	}
}

func TestFullPaymentAmount(t *testing.T) {
	// Deposit and remainder must always sum back to the total, including
	// when the deposit rounded up.
	for _, total := range []int64{127500, 101, 99, 1} {
		deposit := DepositAmount(total, 10)
		full := FullPaymentAmount(total, deposit)

		assert.Equal(t, total, deposit+full)
	}

	assert.Equal(t, int64(114750), FullPaymentAmount(127500, 12750))
}

func TestTotalAmount(t *testing.T) {
	assert.Equal(t, int64(127500), TotalAmount(5, 25500))
	assert.Equal(t, int64(0), TotalAmount(0, 25500))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		aIn  time.Time
		aOut time.Time
		bIn  time.Time
		bOut time.Time
		want bool
	}{
		{
			name: "full overlap",
			aIn:  date(2025, 6, 1),
			aOut: date(2025, 6, 10),
			bIn:  date(2025, 6, 3),
			bOut: date(2025, 6, 5),
			want: true,
		},
		{
			name: "partial overlap",
			aIn:  date(2025, 6, 1),
			aOut: date(2025, 6, 5),
			bIn:  date(2025, 6, 4),
			bOut: date(2025, 6, 8),
			want: true,
		},
		{
			name: "back to back stays do not overlap",
			aIn:  date(2025, 6, 1),
			aOut: date(2025, 6, 5),
			bIn:  date(2025, 6, 5),
			bOut: date(2025, 6, 8),
			want: false,
		},
		{
			name: "disjoint ranges",
			aIn:  date(2025, 6, 1),
			aOut: date(2025, 6, 3),
			bIn:  date(2025, 6, 10),
			bOut: date(2025, 6, 12),
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Overlaps(test.aIn, test.aOut, test.bIn, test.bOut))
			assert.Equal(t, test.want, Overlaps(test.bIn, test.bOut, test.aIn, test.aOut))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, CanConfirmCheckIn(StatusPending))
	assert.True(t, CanConfirmCheckIn(StatusConfirmed))
	assert.False(t, CanConfirmCheckIn(StatusCheckedIn))
	assert.False(t, CanConfirmCheckIn(StatusCompleted))

	assert.True(t, CanConfirmCheckOut(StatusCheckedIn))
	assert.False(t, CanConfirmCheckOut(StatusConfirmed))
	assert.False(t, CanConfirmCheckOut(StatusDisputed))

	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelledByGuest))
	assert.True(t, IsTerminal(StatusCancelledByOwner))
	assert.True(t, IsTerminal(StatusDisputed))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusCheckedIn))

	assert.True(t, IsCancelled(StatusCancelledByGuest))
	assert.True(t, IsCancelled(StatusCancelledByOwner))
	assert.False(t, IsCancelled(StatusDisputed))
}
