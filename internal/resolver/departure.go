package resolver

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// Epoch seconds sit at a fixed offset in the provider's DepartureTime
// string, e.g. "/Date(1700000180000-0600)/" -> "1700000180".
const (
	epochStart = 6
	epochEnd   = 16
)

// ParseDepartureTime extracts the scheduled departure, in epoch seconds, from
// a provider DepartureTime value. The ten characters at the epoch offset must
// all be decimal digits.
func ParseDepartureTime(raw string) (float64, error) {
	if len(raw) < epochEnd {
		return 0, fmt.Errorf("%w: %q is too short", types.ErrBadTimestamp, raw)
	}
	digits := raw[epochStart:epochEnd]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q: epoch seconds %q are not all digits", types.ErrBadTimestamp, raw, digits)
		}
	}
	secs, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", types.ErrBadTimestamp, raw, err)
	}
	return float64(secs), nil
}

// MinutesUntil returns floor((scheduled - now) / 60) with scheduled in epoch
// seconds. Departures already past produce negative values.
func MinutesUntil(scheduled float64, now time.Time) int {
	nowSecs := float64(now.UnixNano()) / float64(time.Second)
	return int(math.Floor((scheduled - nowSecs) / 60))
}
