package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/howto"
	"golang.org/x/text/unicode/norm"
)

// Length thresholds, in runes of cleaned text. Candidates found by the
// aggressive fallback need more text because their structure says less.
const (
	MinStepDescription = 10
	MinFallbackItem    = 20
)

// Clean normalizes s to NFC, collapses every run of whitespace (including
// non-breaking spaces) into a single space, and trims the result.
func Clean(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// long reports whether s has at least min runes.
func long(s string, min int) bool {
	return utf8.RuneCountInString(s) >= min
}

// texts returns the cleaned, non-empty text of each node.
func texts(nodes []howto.Node) []string {
	var out []string
	for _, n := range nodes {
		if t := Clean(n.Text(" ")); t != "" {
			out = append(out, t)
		}
	}
	return out
}
