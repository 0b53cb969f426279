// Package sqlguard rejects input strings that resemble SQL injection
// payloads: boolean tautologies, comment sequences, UNION/SELECT
// combinations, stacked statements, timing functions, hex literals, and
// schema introspection keywords.
//
// This is a defense-in-depth heuristic, applied in addition to (never
// instead of) parameterized queries. The pattern list lives in an embedded
// data file that is also served to the browser client, so the advisory
// client-side check and the authoritative server-side gate share one
// specification.
package sqlguard

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed patterns.json
var patternsJSON []byte

// Pattern is a single detection rule. Flags uses JavaScript regexp flag
// syntax ("i" for case-insensitive) so the same file works in the browser.
type Pattern struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags,omitempty"`
}

var compiled []*regexp.Regexp

func init() {
	var patterns []Pattern
	if err := json.Unmarshal(patternsJSON, &patterns); err != nil {
		panic(fmt.Sprintf("sqlguard: parsing embedded patterns: %v", err))
	}

	compiled = make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		expr := p.Pattern
		if strings.Contains(p.Flags, "i") {
			expr = "(?i)" + expr
		}
		compiled[i] = regexp.MustCompile(expr)
	}
}

// Detect reports whether s matches any injection pattern.
func Detect(s string) bool {
	for _, re := range compiled {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// PatternsJSON returns the raw embedded pattern list, suitable for serving
// to clients that mirror the check.
func PatternsJSON() []byte {
	return patternsJSON
}
