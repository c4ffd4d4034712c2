package format

import (
	"time"

	"github.com/Netflix/photon-sub001/pkg/types"
)

// DecodeTimestamp decodes an 8-byte MXF timestamp:
//
//	year u16, month u8, day u8, hour u8, minute u8, second u8, quarter-ms u8
//
// An all-zero value and out-of-range fields yield an invalid Timestamp
// rather than an error.
func DecodeTimestamp(b []byte) (types.Timestamp, error) {
	if len(b) < TimestampSize {
		return types.Timestamp{}, ErrTruncated
	}
	year := int(uint16(b[0])<<8 | uint16(b[1]))
	month, day := int(b[2]), int(b[3])
	hour, minute, sec, qms := int(b[4]), int(b[5]), int(b[6]), int(b[7])
	if year == 0 && month == 0 && day == 0 {
		return types.Timestamp{}, nil
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 || sec > 59 || qms > 249 {
		return types.Timestamp{}, nil
	}
	t := time.Date(year, time.Month(month), day, hour, minute, sec, qms*4*int(time.Millisecond), time.UTC)
	if t.Day() != day {
		return types.Timestamp{}, nil
	}
	return types.Timestamp{Time: t, Valid: true}, nil
}

// EncodeTimestamp encodes t in MXF form. The zero time encodes as all zeros.
func EncodeTimestamp(t time.Time) [TimestampSize]byte {
	var out [TimestampSize]byte
	if t.IsZero() {
		return out
	}
	t = t.UTC()
	out[0] = byte(t.Year() >> 8)
	out[1] = byte(t.Year())
	out[2] = byte(t.Month())
	out[3] = byte(t.Day())
	out[4] = byte(t.Hour())
	out[5] = byte(t.Minute())
	out[6] = byte(t.Second())
	out[7] = byte(t.Nanosecond() / int(time.Millisecond) / 4)
	return out
}
