package model

import (
	"time"
)

// Stay is the derived length and price of a reservation. TotalMinor is in
// minor currency units (pesewas) so multiplication stays exact.
type Stay struct {
	Nights     int
	TotalMinor int64
}

// Valid reports whether the stay covers at least one night. A zero-night stay
// must block booking creation, never produce a zero-cost booking.
func (s Stay) Valid() bool {
	return s.Nights >= 1
}

// NormalizeDate strips the time of day so day counting is immune to
// time-of-day and timezone noise.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStay derives nights and total price from the stay window and the
// snapshotted nightly rate. checkOut on or before checkIn yields zero nights.
func ComputeStay(checkIn, checkOut time.Time, rateMinor int64) Stay {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)

	if !out.After(in) {
		return Stay{}
	}

	nights := int(out.Sub(in) / (24 * time.Hour))

	return Stay{
		Nights:     nights,
		TotalMinor: int64(nights) * rateMinor,
	}
}
