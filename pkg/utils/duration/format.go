// ABOUTME: Duration parsing utilities for configuration values
// ABOUTME: Accepts plain seconds, Go duration strings and HH:MM:SS or MM:SS clock strings

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse converts "30", "1h30m", "01:30:00" or "05:00" to a time.Duration.
// A bare number is taken as seconds.
func Parse(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	if dur, err := time.ParseDuration(value); err == nil {
		return dur, nil
	}

	parts := strings.Split(value, ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", value)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 3: // HH:MM:SS
		return time.Duration(nums[0])*time.Hour + time.Duration(nums[1])*time.Minute + time.Duration(nums[2])*time.Second, nil
	case 2: // MM:SS
		return time.Duration(nums[0])*time.Minute + time.Duration(nums[1])*time.Second, nil
	}

	return 0, fmt.Errorf("invalid duration %q", value)
}

// OrDefault parses value and returns def when it is empty or invalid
func OrDefault(value string, def time.Duration) time.Duration {
	if d, err := Parse(value); err == nil {
		return d
	}
	return def
}
