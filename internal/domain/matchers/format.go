package matchers

import (
	"time"

	"github.com/ncruces/go-strftime"
)

func formatDate(layout string, at time.Time) string {
	return strftime.Format(layout, at)
}

// DateFormat picks the default layout depending on whether time is included.
func DateFormat(withTime bool) string {
	if withTime {
		return DefaultDateTimeFormat
	}

	return DefaultDateFormat
}

// offsetProbes are the distances around a wall clock at which zone offsets
// are sampled. They cover any transition that can affect that wall clock.
var offsetProbes = []time.Duration{-26 * time.Hour, -13 * time.Hour, 0, 13 * time.Hour, 26 * time.Hour}

// resolveLocal turns a wall clock into an instant of loc. It fails when the
// date does not exist in the calendar, falls into a DST gap, or is ambiguous
// because of a DST overlap.
func resolveLocal(year, month, day, hour, minute, sec int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 || sec > 59 {
		return time.Time{}, false
	}

	if hour < 0 || minute < 0 || sec < 0 {
		return time.Time{}, false
	}

	wall := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	if wall.Day() != day || int(wall.Month()) != month {
		return time.Time{}, false
	}

	seen := make(map[int]struct{}, 2)

	var (
		found time.Time
		count int
	)

	for _, probe := range offsetProbes {
		_, offset := wall.Add(probe).In(loc).Zone()
		if _, ok := seen[offset]; ok {
			continue
		}

		seen[offset] = struct{}{}

		candidate := wall.Add(-time.Duration(offset) * time.Second).In(loc)
		if sameWallClock(candidate, wall) {
			found = candidate
			count++
		}
	}

	if count != 1 {
		return time.Time{}, false
	}

	return found, true
}

func sameWallClock(local, wall time.Time) bool {
	y1, mo1, d1 := local.Date()
	y2, mo2, d2 := wall.Date()
	h1, mi1, s1 := local.Clock()
	h2, mi2, s2 := wall.Clock()

	return y1 == y2 && mo1 == mo2 && d1 == d2 && h1 == h2 && mi1 == mi2 && s1 == s2
}
