// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one full update run: fetch every configured
// topic, then per output target prune, reconcile, persist, and render.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pdiddy/arxiv-daily/internal/arxiv"
	"github.com/pdiddy/arxiv-daily/internal/fetch"
	"github.com/pdiddy/arxiv-daily/internal/papers"
	"github.com/pdiddy/arxiv-daily/internal/render"
	"github.com/pdiddy/arxiv-daily/pkg/types"
)

// Target is one output destination: a store file and the document rendered
// from it.
type Target struct {
	Name       string
	StorePath  string
	OutputPath string
	Render     render.Options
}

// Targets derives the enabled output targets from the configuration. The
// primary listing renders as styled cards with navigation; the publishable
// page renders as a plain table.
func Targets(cfg types.Config) []Target {
	names := cfg.TopicNames()
	var targets []Target
	if cfg.PublishReadme {
		targets = append(targets, Target{
			Name:       "README",
			StorePath:  cfg.JSONReadmePath,
			OutputPath: cfg.MDReadmePath,
			Render: render.Options{
				Title:        true,
				TOC:          cfg.TOC,
				BackToTop:    cfg.BackToTop,
				ShowAbstract: cfg.ShowAbstract,
				TopicOrder:   names,
			},
		})
	}
	if cfg.PublishGitPage {
		targets = append(targets, Target{
			Name:       "GitPage",
			StorePath:  cfg.JSONGitPagePath,
			OutputPath: cfg.MDGitPagePath,
			Render: render.Options{
				Web:        true,
				Title:      true,
				TopicOrder: names,
			},
		})
	}
	return targets
}

// TargetStats summarizes one target's update.
type TargetStats struct {
	Name    string
	Added   int // entries added by reconciliation
	Pruned  int // entries dropped by retention pruning
	Removed int // entries dropped with stale topics
	Total   int // entries in the store after the update
}

// Stats aggregates a full run.
type Stats struct {
	Fetched int // papers fetched across all topics, before dedup
	Targets []TargetStats
}

// Run executes one update: every configured topic is fetched once
// (failures isolated per topic), then each enabled target is pruned,
// reconciled, persisted, and rendered. Store I/O failures are fatal. The
// rendered document is always produced from the just-written store file,
// never from the in-memory state.
func Run(ctx context.Context, cfg types.Config, p fetch.Provider, w io.Writer) (Stats, error) {
	var stats Stats

	opts := fetch.Options{
		MaxResults:   cfg.MaxResults,
		ShowAbstract: cfg.ShowAbstract,
	}
	dateRange := cfg.DateRange.Active()

	var batch []papers.TopicPapers
	for _, topic := range cfg.Topics {
		query := arxiv.BuildQuery(topic.Filters)
		if dateRange {
			query = arxiv.WithDateRange(query, cfg.DateRange.Start(), cfg.DateRange.End())
		}
		tp := fetch.Topic(ctx, p, topic.Name, query, opts, w)
		stats.Fetched += len(tp.Papers)
		batch = append(batch, tp)
	}
	fmt.Fprintf(w, "collected %d papers across %d topics\n", stats.Fetched, len(cfg.Topics))

	for _, target := range Targets(cfg) {
		ts, err := updateTarget(cfg, target, batch, w)
		if err != nil {
			return stats, fmt.Errorf("updating %s: %w", target.Name, err)
		}
		stats.Targets = append(stats.Targets, ts)
	}

	return stats, nil
}

func updateTarget(cfg types.Config, target Target, batch []papers.TopicPapers, w io.Writer) (TargetStats, error) {
	ts := TargetStats{Name: target.Name}
	clearExisting := cfg.DateRange.Active()

	store, err := papers.Load(target.StorePath)
	if err != nil {
		return ts, err
	}

	switch {
	case clearExisting:
		fmt.Fprintf(w, "%s: skipping cleanup, date range active\n", target.Name)
	case cfg.Cleanup.Enabled:
		before, after := papers.Prune(store, cfg.Cleanup.KeepDays, time.Now())
		ts.Pruned = before - after
		fmt.Fprintf(w, "%s: pruned %d papers older than %d days (%d -> %d)\n",
			target.Name, ts.Pruned, cfg.Cleanup.KeepDays, before, after)
	}

	rep := papers.Reconcile(store, batch, cfg.TopicNames(), clearExisting)
	reportReconcile(w, target.Name, rep, &ts)

	if dir := filepath.Dir(target.StorePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ts, fmt.Errorf("creating store directory: %w", err)
		}
	}
	if err := store.Save(target.StorePath); err != nil {
		return ts, err
	}

	target.Render.Now = time.Now()
	doc, total, err := render.File(target.StorePath, target.Render)
	if err != nil {
		return ts, err
	}
	ts.Total = total

	if dir := filepath.Dir(target.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ts, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(target.OutputPath, []byte(doc), 0o644); err != nil {
		return ts, fmt.Errorf("writing document %s: %w", target.OutputPath, err)
	}

	fmt.Fprintf(w, "%s: wrote %s with %d papers\n", target.Name, target.OutputPath, total)
	return ts, nil
}

func reportReconcile(w io.Writer, name string, rep papers.ReconcileReport, ts *TargetStats) {
	removed := make([]string, 0, len(rep.RemovedTopics))
	for topic := range rep.RemovedTopics {
		removed = append(removed, topic)
	}
	sort.Strings(removed)
	for _, topic := range removed {
		n := rep.RemovedTopics[topic]
		ts.Removed += n
		fmt.Fprintf(w, "%s: removed stale topic %q with %d papers\n", name, topic, n)
	}

	added := make([]string, 0, len(rep.Added))
	for topic := range rep.Added {
		added = append(added, topic)
	}
	sort.Strings(added)
	for _, topic := range added {
		if n := rep.Added[topic]; n > 0 {
			ts.Added += n
			fmt.Fprintf(w, "%s: added %d new papers to %q\n", name, n, topic)
		}
	}
}
