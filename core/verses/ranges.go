// ABOUTME: Verse range compression and expansion for human readable references
// ABOUTME: Collapses verse numbers into "16-17,19" style ranges and parses them back

package verses

import (
	"sort"
	"strconv"
	"strings"

	"scripture-tags/core/errors"
)

// Compress collapses verse numbers into comma separated ranges.
// Numbers are sorted and deduplicated first; the input slice is not modified.
//
//	Compress([]int{19, 16, 17}) == "16-17,19"
func Compress(numbers []int) string {
	if len(numbers) == 0 {
		return ""
	}

	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	var parts []string
	start, end := sorted[0], sorted[0]
	for _, n := range sorted[1:] {
		switch {
		case n == end:
			// duplicate
		case n == end+1:
			end = n
		default:
			parts = append(parts, formatRun(start, end))
			start, end = n, n
		}
	}
	parts = append(parts, formatRun(start, end))

	return strings.Join(parts, ",")
}

func formatRun(start, end int) string {
	if start == end {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// MaxSpan is the widest single run Expand accepts. No chapter has more verses.
const MaxSpan = 200

// Expand parses a range string produced by Compress back into the sorted,
// deduplicated list of verse numbers.
func Expand(ranges string) ([]int, error) {
	ranges = strings.TrimSpace(ranges)
	if ranges == "" {
		return []int{}, nil
	}

	seen := make(map[int]struct{})
	var result []int
	for _, part := range strings.Split(ranges, ",") {
		part = strings.TrimSpace(part)
		startText, endText, isRange := strings.Cut(part, "-")

		start, err := strconv.Atoi(strings.TrimSpace(startText))
		if err != nil || start < 0 {
			return nil, &errors.ValidationError{Field: "verses", Message: "malformed range " + strconv.Quote(part)}
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(endText))
			if err != nil || end < start {
				return nil, &errors.ValidationError{Field: "verses", Message: "malformed range " + strconv.Quote(part)}
			}
			if end-start >= MaxSpan {
				return nil, &errors.ValidationError{Field: "verses", Message: "range " + strconv.Quote(part) + " is too wide"}
			}
		}

		for n := start; n <= end; n++ {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}

	sort.Ints(result)
	return result, nil
}
