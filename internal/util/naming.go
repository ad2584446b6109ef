package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	unnamedFile       = "unnamed"
	maxFilenameLength = 255
)

var filenameStripRegexp = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)

// SanitizeFilename reduces a client-supplied filename to a safe ASCII form:
// compatibility-decomposed, non-ASCII dropped, path separators turned into
// whitespace, whitespace runs joined by underscores, and any remaining
// character outside [A-Za-z0-9_.-] removed. Leading and trailing dots and
// underscores are trimmed. An empty result becomes "unnamed".
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)
	name = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		if r == '/' || r == '\\' {
			return ' '
		}
		return r
	}, name)

	name = strings.Join(strings.Fields(name), "_")
	name = filenameStripRegexp.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if len(name) > maxFilenameLength {
		name = name[len(name)-maxFilenameLength:]
	}
	if name == "" {
		return unnamedFile
	}
	return name
}
