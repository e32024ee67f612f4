// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers maintains the keyed paper store: the formatted-row codec,
// the persisted JSON document, incremental reconciliation, and retention
// pruning.
package papers

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dateFmt is the publish-date layout used in formatted rows. Lexicographic
// order on this layout matches chronological order.
const dateFmt = "2006-01-02"

// linkPattern matches the [key](url) markup embedded in a row.
var linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)

// Record is the typed form of one stored paper entry. The on-disk store
// keeps the delimited-row representation for compatibility with existing
// store files; Row and ParseRow convert between the two.
type Record struct {
	// Date is the publish date in YYYY-MM-DD form, empty when unknown.
	Date       string
	Title      string
	LastAuthor string
	Categories []string
	// Key is the canonical entry key (arXiv ID without version suffix).
	Key string
	// URL is the abstract page built from Key.
	URL      string
	Comment  string
	Abstract string
}

// Row encodes the record as a single delimited line, terminated by a
// newline. Field order is fixed: date, title, last author, categories,
// link, comment, and optionally abstract. Date and title carry bold
// markup; no field value is escaped.
func (r Record) Row(showAbstract bool) string {
	cats := strings.Join(r.Categories, "; ")
	link := fmt.Sprintf("[%s](%s)", r.Key, r.URL)
	if showAbstract {
		return fmt.Sprintf("|**%s**|**%s**|%s|%s|%s|%s|%s|\n",
			r.Date, r.Title, r.LastAuthor, cats, link, r.Comment, r.Abstract)
	}
	return fmt.Sprintf("|**%s**|**%s**|%s|%s|%s|%s|\n",
		r.Date, r.Title, r.LastAuthor, cats, link, r.Comment)
}

// ParseRow decodes a stored row back into a Record. It accepts rows with
// and without the abstract field and round-trips the output of Row.
func ParseRow(row string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(row), "|")
	if len(parts) < 7 {
		return Record{}, fmt.Errorf("malformed row: %d fields", len(parts))
	}

	// parts[0] is the empty segment before the leading delimiter.
	r := Record{
		Date:       stripBold(parts[1]),
		Title:      stripBold(parts[2]),
		LastAuthor: strings.TrimSpace(parts[3]),
		Comment:    strings.TrimSpace(parts[6]),
	}
	if cats := strings.TrimSpace(parts[4]); cats != "" {
		r.Categories = strings.Split(cats, "; ")
	}
	if m := linkPattern.FindStringSubmatch(parts[5]); m != nil {
		r.Key, r.URL = m[1], m[2]
	}
	// A row with an abstract has nine segments: the trailing delimiter
	// contributes a final empty one.
	if len(parts) >= 9 {
		r.Abstract = strings.TrimSpace(parts[7])
	}
	return r, nil
}

// rowDate extracts and parses the publish-date field of a stored row.
func rowDate(row string) (time.Time, error) {
	parts := strings.Split(row, "|")
	if len(parts) < 3 {
		return time.Time{}, fmt.Errorf("malformed row: no date field")
	}
	return time.Parse(dateFmt, stripBold(parts[1]))
}

// DateField returns the raw publish-date string of a row for sorting, or
// "" when the row is malformed. Malformed rows sort last.
func DateField(row string) string {
	parts := strings.Split(row, "|")
	if len(parts) < 3 {
		return ""
	}
	return stripBold(parts[1])
}

func stripBold(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

// JoinAuthors formats an author list: the full comma-joined list, or only
// the last author when lastOnly is set.
func JoinAuthors(authors []string, lastOnly bool) string {
	if lastOnly {
		if len(authors) == 0 {
			return ""
		}
		return authors[len(authors)-1]
	}
	return strings.Join(authors, ", ")
}
