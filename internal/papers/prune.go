// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import "time"

// Prune drops entries published more than keepDays before today, mutating
// the store in place, and returns the entry counts before and after. A
// non-positive keepDays is a no-op. Entries whose date field does not
// parse are kept: a malformed row is never grounds for data loss.
func Prune(s Store, keepDays int, today time.Time) (before, after int) {
	if keepDays <= 0 {
		return 0, 0
	}

	// Compare calendar dates, not instants: row dates parse to midnight,
	// so an entry dated exactly keepDays ago stays regardless of the
	// run's clock time.
	y, m, d := today.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -keepDays)
	before = s.Count()

	for _, entries := range s {
		for key, row := range entries {
			date, err := rowDate(row)
			if err != nil {
				continue
			}
			if date.Before(cutoff) {
				delete(entries, key)
			}
		}
	}

	return before, s.Count()
}
