package types

import (
	"fmt"
	"time"
)

// Rational is a SMPTE rational (two signed 32-bit integers).
type Rational struct {
	Numerator   int32 `json:"numerator"`
	Denominator int32 `json:"denominator"`
}

func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator) }

// Float returns the rational as a float64, or 0 for a zero denominator.
func (r Rational) Float() float64 {
	if r.Denominator == 0 {
		return 0
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

// Timestamp is an MXF timestamp. Valid is false for the all-zero "unknown"
// encoding and for field combinations time.Date would normalize.
type Timestamp struct {
	Time  time.Time `json:"time"`
	Valid bool      `json:"valid"`
}

func (t Timestamp) String() string {
	if !t.Valid {
		return "unknown"
	}
	return t.Time.Format(time.RFC3339Nano)
}
