// Package stay derives booking fields from the stay dates.
package stay

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Nights returns the elapsed time between checkIn and checkOut divided by 24
// hours and truncated toward minus infinity. Only full 24-hour periods count,
// so a stay from 14:00 on the 1st to 11:00 on the 4th is 2 nights, not 3.
// A check-out before check-in yields a negative count. Nil when either date
// is missing.
func Nights(checkIn, checkOut *time.Time) *int {
	if checkIn == nil || checkOut == nil {
		return nil
	}

	diff := checkOut.Sub(*checkIn)
	n := int(math.Floor(float64(diff) / float64(day)))
	return &n
}
