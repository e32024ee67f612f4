// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import "testing"

func sampleRecord() Record {
	return Record{
		Date:       "2023-01-17",
		Title:      "Sample Paper: A Study",
		LastAuthor: "Bob Builder",
		Categories: []string{"cs.CV", "cs.RO"},
		Key:        "2301.07041",
		URL:        "http://arxiv.org/abs/2301.07041",
		Comment:    "Accepted at CVPR 2023",
		Abstract:   "An abstract with details.",
	}
}

func TestRowFormat(t *testing.T) {
	r := sampleRecord()

	want := "|**2023-01-17**|**Sample Paper: A Study**|Bob Builder|cs.CV; cs.RO|" +
		"[2301.07041](http://arxiv.org/abs/2301.07041)|Accepted at CVPR 2023|\n"
	if got := r.Row(false); got != want {
		t.Errorf("Row(false) = %q, want %q", got, want)
	}

	wantAbs := "|**2023-01-17**|**Sample Paper: A Study**|Bob Builder|cs.CV; cs.RO|" +
		"[2301.07041](http://arxiv.org/abs/2301.07041)|Accepted at CVPR 2023|An abstract with details.|\n"
	if got := r.Row(true); got != wantAbs {
		t.Errorf("Row(true) = %q, want %q", got, wantAbs)
	}
}

func TestRowRoundTrip(t *testing.T) {
	for _, showAbstract := range []bool{false, true} {
		r := sampleRecord()
		if !showAbstract {
			r.Abstract = ""
		}

		parsed, err := ParseRow(r.Row(showAbstract))
		if err != nil {
			t.Fatalf("ParseRow() error: %v", err)
		}

		if parsed.Date != r.Date {
			t.Errorf("Date = %q, want %q", parsed.Date, r.Date)
		}
		if parsed.Title != r.Title {
			t.Errorf("Title = %q, want %q", parsed.Title, r.Title)
		}
		if parsed.LastAuthor != r.LastAuthor {
			t.Errorf("LastAuthor = %q, want %q", parsed.LastAuthor, r.LastAuthor)
		}
		if len(parsed.Categories) != 2 || parsed.Categories[0] != "cs.CV" || parsed.Categories[1] != "cs.RO" {
			t.Errorf("Categories = %v, want %v", parsed.Categories, r.Categories)
		}
		if parsed.Key != r.Key || parsed.URL != r.URL {
			t.Errorf("link = (%q, %q), want (%q, %q)", parsed.Key, parsed.URL, r.Key, r.URL)
		}
		if parsed.Comment != r.Comment {
			t.Errorf("Comment = %q, want %q", parsed.Comment, r.Comment)
		}
		if parsed.Abstract != r.Abstract {
			t.Errorf("Abstract = %q, want %q", parsed.Abstract, r.Abstract)
		}
	}
}

func TestParseRowMalformed(t *testing.T) {
	if _, err := ParseRow("not a row"); err == nil {
		t.Error("ParseRow should reject a row without delimiters")
	}
	if _, err := ParseRow("|only|three|"); err == nil {
		t.Error("ParseRow should reject a row with too few fields")
	}
}

func TestDateField(t *testing.T) {
	row := sampleRecord().Row(false)
	if got := DateField(row); got != "2023-01-17" {
		t.Errorf("DateField() = %q, want 2023-01-17", got)
	}
	if got := DateField("garbage"); got != "" {
		t.Errorf("DateField(garbage) = %q, want empty", got)
	}
}

func TestJoinAuthors(t *testing.T) {
	authors := []string{"Ann Author", "Bob Builder", "Cem Coder"}

	if got := JoinAuthors(authors, false); got != "Ann Author, Bob Builder, Cem Coder" {
		t.Errorf("full join = %q", got)
	}
	if got := JoinAuthors(authors, true); got != "Cem Coder" {
		t.Errorf("last only = %q", got)
	}
	if got := JoinAuthors(nil, true); got != "" {
		t.Errorf("empty list = %q, want empty", got)
	}
}
