package elecmap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseWellList parses a comma separated list of wells and ranges such as
// "1,3,7" or "1-4, 9". Reversed ranges are accepted. The result is sorted
// and free of duplicates; an empty string yields an empty list.
func ParseWellList(s string) ([]WellID, error) {
	seen := make(map[WellID]bool)
	var invalid []int

	add := func(n int) {
		w := WellID(n)
		if !w.Valid() {
			invalid = append(invalid, n)
			return
		}
		seen[w] = true
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid well range %q: %w", part, err)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid well range %q: %w", part, err)
			}
			if start > end {
				start, end = end, start
			}
			if start < 1 {
				invalid = append(invalid, start)
			}
			if end > NumWells {
				invalid = append(invalid, end)
			}
			for n := max(start, 1); n <= min(end, NumWells); n++ {
				add(n)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid well number %q: %w", part, err)
		}
		add(n)
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("well numbers must be 1-%d, invalid: %v", NumWells, invalid)
	}

	out := make([]WellID, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
