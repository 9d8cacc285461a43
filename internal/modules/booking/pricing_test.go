package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNightsBetween(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, nightsBetween(checkIn, checkIn.AddDate(0, 0, 1)))
	assert.Equal(t, 3, nightsBetween(checkIn, checkIn.AddDate(0, 0, 3)))
	assert.Equal(t, 30, nightsBetween(checkIn, checkIn.AddDate(0, 0, 30)))
}

func TestSplitDownpayment(t *testing.T) {
	cases := []struct {
		name        string
		total       int64
		percentage  int
		downpayment int64
		balance     int64
	}{
		{"guest half", 30000, 50, 15000, 15000},
		{"registered fifth", 30000, 20, 6000, 24000},
		{"zero percent", 20000, 0, 0, 20000},
		{"full percent", 20000, 100, 20000, 0},
		{"half cent rounds up", 12345, 50, 6173, 6172},
		{"below half cent rounds down", 10001, 20, 2000, 8001},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			down, balance := splitDownpayment(tc.total, tc.percentage)
			assert.Equal(t, tc.downpayment, down)
			assert.Equal(t, tc.balance, balance)
			// the split never loses a cent
			assert.Equal(t, tc.total, down+balance)
		})
	}
}

func TestDownpaymentPercentages(t *testing.T) {
	// the channel table drives pricing; these values are contractual
	assert.Equal(t, 50, downpaymentPercentages["guest"])
	assert.Equal(t, 20, downpaymentPercentages["registered"])
	assert.Equal(t, 20, downpaymentPercentages["staff_assisted"])
	assert.Equal(t, 0, downpaymentPercentages["reserved"])
}
