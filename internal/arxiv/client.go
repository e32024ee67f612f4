// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv search API and returns paper entries.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-daily/internal/httputil"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// absBase is the prefix of canonical abstract page URLs.
const absBase = "http://arxiv.org/abs/"

// Entry is one paper returned by the arXiv API.
type Entry struct {
	// ID is the short arXiv identifier including the version suffix,
	// e.g. "2108.09112v2".
	ID         string
	Title      string
	Summary    string
	Comment    string
	Published  time.Time
	Authors    []string
	Categories []string
}

// Client calls the arXiv search API.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// Search queries the API for up to maxResults entries matching query,
// ordered by descending submission date.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty arXiv query")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	resp, err := httputil.Get(ctx, c.client(), apiBase+"?"+params.Encode(), c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var entries []Entry
	for _, ae := range feed.Entries {
		id := shortID(ae.ID)
		if id == "" {
			continue
		}

		e := Entry{
			ID:      id,
			Title:   collapseSpace(ae.Title),
			Summary: strings.TrimSpace(ae.Summary),
			Comment: collapseSpace(ae.Comment),
		}
		for _, a := range ae.Authors {
			e.Authors = append(e.Authors, strings.TrimSpace(a.Name))
		}
		for _, cat := range ae.Categories {
			if cat.Term != "" {
				e.Categories = append(e.Categories, cat.Term)
			}
		}
		if t, parseErr := time.Parse(time.RFC3339, ae.Published); parseErr == nil {
			e.Published = t
		}

		entries = append(entries, e)
	}
	return entries, nil
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// arXiv Atom feed XML structures. Comment comes from the arxiv namespace
// extension; the decoder matches it by local name.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Comment    string         `xml:"comment"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// shortID pulls the short arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" -> "2301.07041v1").
func shortID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return idURL[idx+len(prefix):]
}

// Key canonicalizes a short arXiv ID by stripping the version suffix
// (e.g. "2108.09112v2" -> "2108.09112"). IDs without a version pass
// through unchanged.
func Key(id string) string {
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			return id[:vIdx]
		}
	}
	return id
}

// AbsURL returns the canonical abstract page URL for an entry key.
func AbsURL(key string) string {
	return absBase + key
}

// collapseSpace joins the whitespace-split fields of s with single spaces.
// Atom titles and comments arrive with embedded newlines and indentation.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
