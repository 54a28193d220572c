package propset

import (
	"time"

	"github.com/onenote-go/onenote/onestore"
)

// epoch1601 is the origin both OneNote time representations count from.
var epoch1601 = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// parseTime reads a "Time" property: whole minutes since 1601-01-01 UTC,
// stored as a truncated U32 (§4.9).
func parseTime(o *onestore.Object, id PropertyID) (time.Time, bool, error) {
	v, ok, err := getU32(o, id)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	return epoch1601.Add(time.Duration(v) * time.Minute), true, nil
}

// parseTimestamp reads a "Timestamp" property: a FILETIME-like 64-bit
// count of 100ns intervals since 1601-01-01 UTC (§4.9).
func parseTimestamp(o *onestore.Object, id PropertyID) (time.Time, bool, error) {
	v, ok, err := getU64(o, id)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}
	return epoch1601.Add(time.Duration(v) * 100 * time.Nanosecond), true, nil
}
