// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strings"
	"time"
)

const (
	submittedDateFmt = "20060102"

	// Sentinels for open-ended date ranges.
	earliestDate = "19910101"
	farFuture    = "20301231"
)

// BuildQuery joins keyword filter terms into one boolean-OR query string.
// Multi-word terms are quoted, single tokens are emitted bare. An empty
// filter list produces an empty query.
func BuildQuery(filters []string) string {
	var b strings.Builder
	for i, f := range filters {
		if i > 0 {
			b.WriteString(" OR ")
		}
		if len(strings.Fields(f)) > 1 {
			b.WriteString(`"` + f + `"`)
		} else {
			b.WriteString(f)
		}
	}
	return b.String()
}

// WithDateRange wraps query with a submittedDate clause. An unset bound is
// replaced by its sentinel. When both bounds are unset the query is
// returned as-is.
func WithDateRange(query string, start, end time.Time) string {
	if start.IsZero() && end.IsZero() {
		return query
	}
	from, to := earliestDate, farFuture
	if !start.IsZero() {
		from = start.Format(submittedDateFmt)
	}
	if !end.IsZero() {
		to = end.Format(submittedDateFmt)
	}
	return fmt.Sprintf("(%s) AND submittedDate:[%s TO %s]", query, from, to)
}
