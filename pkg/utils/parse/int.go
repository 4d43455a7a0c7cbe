// ABOUTME: Utility functions for parsing numbers from request strings
// ABOUTME: Provides strict unsigned parsing for durations expressed in seconds

package parse

import (
	"math"
	"strconv"
	"time"
)

// maxSeconds is the largest second count representable as a time.Duration
const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// Seconds parses an unsigned base-10 count of seconds. Values too large for
// a time.Duration are clamped to the largest representable whole second.
func Seconds(s string) (time.Duration, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n > maxSeconds {
		n = maxSeconds
	}
	return time.Duration(n) * time.Second, nil
}
