package goal

import (
	"strings"

	"github.com/spf13/cast"
)

var letterDays = map[string]int{
	"L": 1,
	"M": 2,
	"X": 3,
	"J": 4,
	"V": 5,
	"S": 6,
	"D": 0,
}

// ParseDay reads one plan-day entry: a weekday index (7 means Sunday) or a
// Spanish initial L M X J V S D.
func ParseDay(raw any) (int, bool) {
	if s, ok := raw.(string); ok {
		key := strings.ToUpper(strings.TrimSpace(s))
		if d, ok := letterDays[key]; ok {
			return d, true
		}
	}
	n, err := cast.ToIntE(raw)
	if err != nil || n < 0 || n > 7 {
		return 0, false
	}
	if n == 7 {
		n = 0
	}
	return n, true
}

// ParseDays converts a raw day list, dropping unreadable entries and duplicates.
// ok is false when raw is not a list at all.
func ParseDays(raw any) ([]int, bool) {
	items, ok := raw.([]any)
	if !ok {
		ints, isInts := raw.([]int)
		if !isInts {
			return nil, false
		}
		items = make([]any, len(ints))
		for i, v := range ints {
			items[i] = v
		}
	}

	days := make([]int, 0, len(items))
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		d, ok := ParseDay(item)
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days, true
}
