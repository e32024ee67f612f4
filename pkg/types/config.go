// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration records shared across stages.
package types

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

const dateFmt = "2006-01-02"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-daily/0.1").
	UserAgent string `yaml:"user_agent"`
}

// CleanupConfig controls retention pruning of the paper store.
type CleanupConfig struct {
	// Enabled turns retention pruning on.
	Enabled bool `yaml:"enabled"`

	// KeepDays is the retention window; entries older than this many days
	// are dropped. Zero or negative disables pruning.
	KeepDays int `yaml:"keep_days"`
}

// DateRangeConfig restricts fetching to a submission-date window. An active
// date range forces clear-and-replace store semantics and disables cleanup.
type DateRangeConfig struct {
	Enabled   bool   `yaml:"enabled"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`

	start time.Time
	end   time.Time
}

// Start returns the resolved range start, or the zero time when unset.
func (d DateRangeConfig) Start() time.Time { return d.start }

// End returns the resolved range end, or the zero time when unset.
func (d DateRangeConfig) End() time.Time { return d.end }

// Active reports whether a usable date range is configured: the range must
// be enabled and at least one bound must have parsed.
func (d DateRangeConfig) Active() bool {
	return d.Enabled && (!d.start.IsZero() || !d.end.IsZero())
}

// resolve parses the configured bounds. A malformed bound is reported to w
// and treated as unset; it never aborts the load.
func (d *DateRangeConfig) resolve(w io.Writer) {
	if !d.Enabled {
		return
	}
	if d.StartDate != "" {
		t, err := time.Parse(dateFmt, d.StartDate)
		if err != nil {
			fmt.Fprintf(w, "warning: invalid start_date %q, ignoring\n", d.StartDate)
		} else {
			d.start = t
		}
	}
	if d.EndDate != "" {
		t, err := time.Parse(dateFmt, d.EndDate)
		if err != nil {
			fmt.Fprintf(w, "warning: invalid end_date %q, ignoring\n", d.EndDate)
		} else {
			d.end = t
		}
	}
}

// Topic is one configured search topic with its keyword filter terms.
type Topic struct {
	Name    string
	Filters []string
}

// TopicList preserves the document order of the keywords mapping, so the
// rendered document lists topics in the order the user wrote them.
type TopicList []Topic

// UnmarshalYAML decodes the keywords mapping while keeping key order.
func (tl *TopicList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("keywords: expected a mapping, got %s", node.Tag)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("keywords: decoding topic name: %w", err)
		}
		var body struct {
			Filters []string `yaml:"filters"`
		}
		if err := node.Content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("keywords: topic %q: %w", name, err)
		}
		*tl = append(*tl, Topic{Name: name, Filters: body.Filters})
	}
	return nil
}

// Config holds the full run configuration. Field names mirror the YAML keys
// of the configuration file.
type Config struct {
	HTTP HTTPConfig `yaml:"http"`

	// MaxResults is the maximum number of papers fetched per topic.
	MaxResults int `yaml:"max_results"`

	// ShowAbstract includes paper abstracts in stored rows and documents.
	ShowAbstract bool `yaml:"show_abstract"`

	// TOC and BackToTop control the styled listing's navigation blocks.
	TOC       bool `yaml:"toc"`
	BackToTop bool `yaml:"back_to_top"`

	Cleanup   CleanupConfig   `yaml:"cleanup"`
	DateRange DateRangeConfig `yaml:"date_range"`

	// Primary listing target.
	PublishReadme  bool   `yaml:"publish_readme"`
	JSONReadmePath string `yaml:"json_readme_path"`
	MDReadmePath   string `yaml:"md_readme_path"`

	// Publishable secondary listing target (GitHub Pages).
	PublishGitPage  bool   `yaml:"publish_gitpage"`
	JSONGitPagePath string `yaml:"json_gitpage_path"`
	MDGitPagePath   string `yaml:"md_gitpage_path"`

	Topics TopicList `yaml:"keywords"`
}

// TopicNames returns the configured topic names in document order.
func (c Config) TopicNames() []string {
	names := make([]string, len(c.Topics))
	for i, t := range c.Topics {
		names[i] = t.Name
	}
	return names
}

func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "arxiv-daily/0.1",
		},
		MaxResults:      10,
		TOC:             true,
		BackToTop:       true,
		JSONReadmePath:  "arxiv-daily.json",
		MDReadmePath:    "README.md",
		JSONGitPagePath: "docs/arxiv-daily-web.json",
		MDGitPagePath:   "docs/index.md",
	}
}

// LoadConfig reads and validates the YAML configuration at path. Recoverable
// warnings go to w. An active date range disables cleanup, since date-range
// mode replaces the store wholesale.
func LoadConfig(path string, w io.Writer) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if len(cfg.Topics) == 0 {
		return Config{}, fmt.Errorf("config %s: no keywords configured", path)
	}

	cfg.DateRange.resolve(w)
	if cfg.DateRange.Active() && cfg.Cleanup.Enabled {
		cfg.Cleanup.Enabled = false
		fmt.Fprintln(w, "cleanup disabled: custom date range active")
	}

	return cfg, nil
}
