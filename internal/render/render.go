// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns the paper store into a markdown listing document,
// either as a plain table for web publishing or as a styled card list.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-daily/internal/papers"
)

// Options selects the document layout.
type Options struct {
	// Web selects the plain table layout used for the published page;
	// otherwise entries render as styled cards.
	Web bool

	// Title emits the "## Updated on" heading (and, with Web, a leading
	// front-matter block); otherwise the date renders as a blockquote.
	Title bool

	// TOC emits a table of contents over the non-empty topics.
	TOC bool

	// BackToTop appends a per-topic anchor back to the date heading.
	BackToTop bool

	// ShowAbstract renders the abstract field where the layout has room
	// for it.
	ShowAbstract bool

	// TopicOrder fixes the topic section order; topics not listed follow
	// in sorted order. The store itself is unordered.
	TopicOrder []string

	// Now is the render date. Zero means time.Now().
	Now time.Time
}

// File re-reads the store from disk and renders it. Rendering always works
// from the persisted document, never from an in-memory copy, so the output
// matches what the last save wrote. The entry count is returned for
// reporting.
func File(path string, opts Options) (string, int, error) {
	s, err := papers.Load(path)
	if err != nil {
		return "", 0, err
	}
	return Document(s, opts), s.Count(), nil
}

// Document renders the store according to opts.
func Document(s papers.Store, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	dateNow := strings.ReplaceAll(now.Format("2006-01-02"), "-", ".")

	var b strings.Builder

	if opts.Title && opts.Web {
		b.WriteString("---\nlayout: default\n---\n\n")
	}
	if opts.Title {
		b.WriteString("## Updated on " + dateNow + "\n")
	} else {
		b.WriteString("> Updated on " + dateNow + "\n")
	}

	topics := orderedTopics(s, opts.TopicOrder)

	if opts.TOC {
		writeTOC(&b, s, topics)
	}
	if !opts.Web {
		b.WriteString(styleBlock)
	}

	for _, topic := range topics {
		entries := s[topic]
		if len(entries) == 0 {
			continue
		}
		b.WriteString("## " + topic + "\n\n")

		rows := sortedRows(entries)
		if opts.Web {
			writeTable(&b, rows, opts)
		} else {
			writeCards(&b, rows, opts)
		}

		if opts.BackToTop {
			anchor := "#Updated on " + dateNow
			anchor = strings.ReplaceAll(anchor, " ", "-")
			anchor = strings.ReplaceAll(anchor, ".", "")
			fmt.Fprintf(&b, "<p align=right>(<a href=%s>back to top</a>)</p>\n\n", strings.ToLower(anchor))
		}
	}

	return b.String()
}

// orderedTopics returns the store's topics, preferred order first, then any
// remaining topics sorted by name.
func orderedTopics(s papers.Store, preferred []string) []string {
	seen := make(map[string]bool, len(s))
	var topics []string
	for _, name := range preferred {
		if _, ok := s[name]; ok && !seen[name] {
			topics = append(topics, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range s {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(topics, rest...)
}

type keyedRow struct {
	key string
	row string
}

// sortedRows orders a topic's entries by descending publish date. The date
// field is YYYY-MM-DD, so plain string comparison is chronological. Entry
// keys break ties for a stable document.
func sortedRows(entries papers.Papers) []keyedRow {
	rows := make([]keyedRow, 0, len(entries))
	for key, row := range entries {
		rows = append(rows, keyedRow{key: key, row: row})
	}
	sort.Slice(rows, func(i, j int) bool {
		di, dj := papers.DateField(rows[i].row), papers.DateField(rows[j].row)
		if di != dj {
			return di > dj
		}
		return rows[i].key > rows[j].key
	})
	return rows
}

func writeTOC(b *strings.Builder, s papers.Store, topics []string) {
	b.WriteString("## Table of Contents\n<ol>\n")
	for _, topic := range topics {
		if len(s[topic]) == 0 {
			continue
		}
		anchor := strings.ToLower(strings.ReplaceAll(topic, " ", "-"))
		fmt.Fprintf(b, "<li><a href=#%s>%s</a></li>\n", anchor, topic)
	}
	b.WriteString("</ol>\n\n")
}

// writeTable emits the plain markdown table: a header row matched to the
// column set, then the raw stored rows.
func writeTable(b *strings.Builder, rows []keyedRow, opts Options) {
	if opts.Title {
		if opts.ShowAbstract {
			b.WriteString("| Publish Date | Title | Last Author | Categories | PDF | Comments | Abstract |\n")
			b.WriteString("|:---------|:-----------------------|:---------|:----------|:------|:----------|:----------|\n")
		} else {
			b.WriteString("| Publish Date | Title | Last Author | Categories | PDF | Comments |\n")
			b.WriteString("|:---------|:-----------------------|:---------|:----------|:------|:----------|\n")
		}
	}
	for _, r := range rows {
		b.WriteString(NormalizeMath(r.row))
	}
	b.WriteString("\n")
}

// writeCards emits the styled card list: each entry parsed back into its
// fields and rendered as a block, with odd/even classes alternating by
// position and a spacer between consecutive entries.
func writeCards(b *strings.Builder, rows []keyedRow, opts Options) {
	b.WriteString("<div class=\"paper-list\">\n")

	for i, r := range rows {
		rec, err := papers.ParseRow(r.row)
		if err != nil {
			continue
		}

		class := "paper-item-even"
		if i%2 == 0 {
			class = "paper-item-odd"
		}
		fmt.Fprintf(b, "<div class=\"paper-item %s\">\n", class)

		b.WriteString("  <div class=\"paper-header\">\n")
		fmt.Fprintf(b, "    <div class=\"paper-title\">%s</div>\n", NormalizeMath(rec.Title))
		fmt.Fprintf(b, "    <div class=\"paper-date\">%s</div>\n", rec.Date)
		b.WriteString("  </div>\n")

		if rec.LastAuthor != "" {
			fmt.Fprintf(b, "  <div class=\"paper-authors\">%s (last author)</div>\n", rec.LastAuthor)
		}

		b.WriteString("  <div class=\"paper-meta\">\n")
		if len(rec.Categories) > 0 {
			fmt.Fprintf(b, "    <span class=\"paper-categories\">%s</span>\n", strings.Join(rec.Categories, "; "))
		}
		fmt.Fprintf(b, "    <a class=\"paper-link\" href=\"%s\" target=\"_blank\">📄 PDF: %s</a>\n", rec.URL, rec.Key)
		b.WriteString("  </div>\n")

		if rec.Comment != "" {
			fmt.Fprintf(b, "  <div class=\"paper-comments\">💬 %s</div>\n", rec.Comment)
		}

		if opts.ShowAbstract && rec.Abstract != "" {
			b.WriteString("  <div class=\"paper-abstract\">\n")
			b.WriteString("    <div class=\"abstract-label\">📖 Abstract:</div>\n")
			fmt.Fprintf(b, "    %s\n", NormalizeMath(rec.Abstract))
			b.WriteString("  </div>\n")
		}

		b.WriteString("</div>\n")
		if i < len(rows)-1 {
			b.WriteString("<div style=\"height: 10px;\"></div>\n")
		}
	}

	b.WriteString("</div>\n\n")
}
