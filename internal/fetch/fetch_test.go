// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-daily/internal/arxiv"
)

// stubProvider returns a fixed result set, or an error.
type stubProvider struct {
	entries []arxiv.Entry
	err     error
}

func (p *stubProvider) Search(ctx context.Context, query string, maxResults int) ([]arxiv.Entry, error) {
	return p.entries, p.err
}

func TestTopicFormatsEntries(t *testing.T) {
	p := &stubProvider{entries: []arxiv.Entry{
		{
			ID:         "2108.09112v2",
			Title:      "A Survey on SLAM",
			Summary:    "Line one.\nLine two.",
			Comment:    "22 pages",
			Published:  time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC),
			Authors:    []string{"Ann Author", "Bob Builder"},
			Categories: []string{"cs.RO"},
		},
		{ID: "", Title: "No usable key"},
	}}

	var buf bytes.Buffer
	tp := Topic(context.Background(), p, "SLAM", "SLAM OR \"Visual SLAM\"", Options{MaxResults: 10}, &buf)

	if tp.Topic != "SLAM" {
		t.Errorf("Topic = %q, want SLAM", tp.Topic)
	}
	if len(tp.Papers) != 1 {
		t.Fatalf("len(Papers) = %d, want 1", len(tp.Papers))
	}

	// The version suffix is stripped from the key.
	row, ok := tp.Papers["2108.09112"]
	if !ok {
		t.Fatalf("missing key 2108.09112, got %v", tp.Papers)
	}
	want := "|**2021-08-20**|**A Survey on SLAM**|Bob Builder|cs.RO|" +
		"[2108.09112](http://arxiv.org/abs/2108.09112)|22 pages|\n"
	if row != want {
		t.Errorf("row = %q, want %q", row, want)
	}

	out := buf.String()
	if !strings.Contains(out, `searching "SLAM"`) {
		t.Errorf("missing search line in output: %q", out)
	}
	if !strings.Contains(out, `found 1 papers for "SLAM"`) {
		t.Errorf("missing found line in output: %q", out)
	}
}

func TestTopicFlattensAbstract(t *testing.T) {
	p := &stubProvider{entries: []arxiv.Entry{
		{
			ID:        "2108.09112v1",
			Title:     "Paper",
			Summary:   "  Line one.\nLine two.\r\n",
			Published: time.Date(2021, 8, 20, 0, 0, 0, 0, time.UTC),
		},
	}}

	var buf bytes.Buffer
	tp := Topic(context.Background(), p, "SLAM", "SLAM", Options{ShowAbstract: true}, &buf)

	row := tp.Papers["2108.09112"]
	if !strings.Contains(row, "|Line one. Line two.|") {
		t.Errorf("abstract not flattened: %q", row)
	}
}

func TestTopicProviderFailure(t *testing.T) {
	p := &stubProvider{err: errors.New("boom")}

	var buf bytes.Buffer
	tp := Topic(context.Background(), p, "SLAM", "SLAM", Options{}, &buf)

	if len(tp.Papers) != 0 {
		t.Errorf("failed fetch should yield an empty batch, got %v", tp.Papers)
	}
	if !strings.Contains(buf.String(), `warning: fetch for "SLAM" failed: boom`) {
		t.Errorf("missing warning in output: %q", buf.String())
	}
}
