// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch turns provider search results into formatted store batches,
// one topic at a time.
package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/arxiv-daily/internal/arxiv"
	"github.com/pdiddy/arxiv-daily/internal/papers"
)

// Provider searches the paper source. *arxiv.Client implements it; tests
// substitute a stub.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]arxiv.Entry, error)
}

// Options bounds one topic fetch.
type Options struct {
	MaxResults   int
	ShowAbstract bool
}

// Topic fetches one topic's papers and formats them into a keyed batch.
// Any provider failure is reported to w and yields an empty batch: a topic
// that cannot be fetched never aborts the run.
func Topic(ctx context.Context, p Provider, topic, query string, opts Options, w io.Writer) papers.TopicPapers {
	fmt.Fprintf(w, "searching %q: %s\n", topic, query)

	found := papers.Papers{}
	entries, err := p.Search(ctx, query, opts.MaxResults)
	if err != nil {
		fmt.Fprintf(w, "warning: fetch for %q failed: %v\n", topic, err)
		return papers.TopicPapers{Topic: topic, Papers: found}
	}

	for _, e := range entries {
		key := arxiv.Key(e.ID)
		if key == "" {
			continue
		}

		rec := papers.Record{
			Title:      e.Title,
			LastAuthor: papers.JoinAuthors(e.Authors, true),
			Categories: e.Categories,
			Key:        key,
			URL:        arxiv.AbsURL(key),
			Comment:    e.Comment,
		}
		if !e.Published.IsZero() {
			rec.Date = e.Published.Format("2006-01-02")
		}
		if opts.ShowAbstract {
			rec.Abstract = flatten(e.Summary)
		}

		found[key] = rec.Row(opts.ShowAbstract)
	}

	fmt.Fprintf(w, "found %d papers for %q\n", len(found), topic)
	return papers.TopicPapers{Topic: topic, Papers: found}
}

// flatten folds an abstract's line breaks into spaces so it fits a
// single-line row.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
