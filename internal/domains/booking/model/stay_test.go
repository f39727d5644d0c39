package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"paradasia/internal/domains/booking/model"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestComputeStay(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		rateMinor  int64
		wantNights int
		wantTotal  int64
	}{
		{
			name:       "three nights at standard rate",
			checkIn:    date("2025-03-01"),
			checkOut:   date("2025-03-04"),
			rateMinor:  300000,
			wantNights: 3,
			wantTotal:  900000,
		},
		{
			name:       "single night",
			checkIn:    date("2025-03-01"),
			checkOut:   date("2025-03-02"),
			rateMinor:  500000,
			wantNights: 1,
			wantTotal:  500000,
		},
		{
			name:       "same day yields zero stay",
			checkIn:    date("2025-03-01"),
			checkOut:   date("2025-03-01"),
			rateMinor:  300000,
			wantNights: 0,
			wantTotal:  0,
		},
		{
			name:       "check-out before check-in yields zero stay",
			checkIn:    date("2025-03-04"),
			checkOut:   date("2025-03-01"),
			rateMinor:  300000,
			wantNights: 0,
			wantTotal:  0,
		},
		{
			name:       "time of day does not change the night count",
			checkIn:    date("2025-03-01").Add(23 * time.Hour),
			checkOut:   date("2025-03-02").Add(1 * time.Hour),
			rateMinor:  300000,
			wantNights: 1,
			wantTotal:  300000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := model.ComputeStay(tt.checkIn, tt.checkOut, tt.rateMinor)

			assert.Equal(t, tt.wantNights, stay.Nights)
			assert.Equal(t, tt.wantTotal, stay.TotalMinor)
			assert.Equal(t, tt.wantNights >= 1, stay.Valid())
		})
	}
}

func TestComputeStay_NoRoundingDrift(t *testing.T) {
	// Integer minor units must stay exact for any realistic stay length.
	const rateMinor = int64(300000)

	checkIn := date("2025-03-01")

	for nights := 1; nights <= 365; nights++ {
		checkOut := checkIn.AddDate(0, 0, nights)

		stay := model.ComputeStay(checkIn, checkOut, rateMinor)

		assert.Equal(t, nights, stay.Nights, "nights for a %d-night stay", nights)
		assert.Equal(t, int64(nights)*rateMinor, stay.TotalMinor, "total for a %d-night stay", nights)
	}
}

func TestNormalizeDate(t *testing.T) {
	noisy := time.Date(2025, 3, 1, 22, 15, 4, 99, time.FixedZone("GMT+3", 3*3600))

	normalized := model.NormalizeDate(noisy)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), normalized)
}
