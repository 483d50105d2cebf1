// Package link implements wikilink formatting and reference resolution for
// markdown note vaults.
package link

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/grovetools/notelink/pkg/models"
)

var (
	patternMu    sync.Mutex
	patternCache = map[int]*regexp.Regexp{}
)

// timestampPattern matches exactly n leading digits. A longer digit run must
// not match, so the remainder group is required to start with a non-digit.
func timestampPattern(n int) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := patternCache[n]; ok {
		return re
	}
	re := regexp.MustCompile(fmt.Sprintf(`^(\d{%d})(\D.*)?$`, n))
	patternCache[n] = re
	return re
}

// Format renders the link text to insert for a selected note basename.
//
// With timestamp extraction off, or when the basename does not start with
// exactly TimestampLength digits, the whole basename becomes the link target.
// Otherwise the digit run becomes the target, and the trimmed remainder is
// appended after the link when AppendFileName is set and the remainder is
// non-empty.
//
// Format is pure and total: any basename, including empty, yields a link.
func Format(basename string, s models.LinkSettings) string {
	if !s.ExtractTimestamps || s.TimestampLength <= 0 {
		return "[[" + basename + "]]"
	}

	m := timestampPattern(s.TimestampLength).FindStringSubmatch(basename)
	if m == nil {
		return "[[" + basename + "]]"
	}

	timestamp := m[1]
	rest := strings.TrimSpace(m[2])
	if s.AppendFileName && rest != "" {
		return "[[" + timestamp + "]] " + rest
	}
	return "[[" + timestamp + "]]"
}
