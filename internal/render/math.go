// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// mathSpan greedily matches from the first to the last dollar sign, so a
// string is treated as holding at most one inline math span. Inputs with
// several spans keep this single-span treatment for compatibility with
// existing documents.
var mathSpan = regexp.MustCompile(`\$.*\$`)

// NormalizeMath fixes the spacing around an inline $...$ math span: the
// span's inner whitespace is trimmed and a single space is inserted on each
// side unless the neighbor is already whitespace, a string boundary, or a
// '*' emphasis marker.
func NormalizeMath(s string) string {
	loc := mathSpan.FindStringIndex(s)
	if loc == nil {
		return s
	}

	before := s[:loc[0]]
	after := s[loc[1]:]
	content := strings.TrimSpace(s[loc[0]+1 : loc[1]-1])

	spaceBefore, spaceAfter := "", ""
	if before != "" {
		if r, _ := utf8.DecodeLastRuneInString(before); !unicode.IsSpace(r) && r != '*' {
			spaceBefore = " "
		}
	}
	if after != "" {
		if r, _ := utf8.DecodeRuneInString(after); !unicode.IsSpace(r) && r != '*' {
			spaceAfter = " "
		}
	}

	return before + spaceBefore + "$" + content + "$" + spaceAfter + after
}
