package fastasplit

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate checks that path is a FASTA sequences file that can be split.
// Checks run in order and stop at the first failure:
// the file exists, its extension is allowed, it has at least one description line,
// none of them is malformed, and it has at least two lines.
func Validate(path string, opts Options) error {
	opts = opts.withDefaults()

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &Error{Kind: KindNotFound, Op: "validate", Path: path, Err: err}
	}

	if !opts.allowsExtension(DeriveExtension(path)) {
		return &Error{Kind: KindInvalidExtension, Op: "validate", Path: path, Extensions: opts.Extensions}
	}

	lines, err := readLines(path)
	if err != nil {
		return ioError("validate", path, err)
	}

	descriptions, malformed := countDescriptionLines(lines, opts.Marker)
	if descriptions == 0 {
		return &Error{Kind: KindNoDescriptionLine, Op: "validate", Path: path}
	}
	if malformed > 0 {
		return &Error{Kind: KindMalformedDescriptionLines, Op: "validate", Path: path, Count: malformed}
	}
	if len(lines) < 2 {
		return &Error{Kind: KindEmptyFile, Op: "validate", Path: path}
	}
	return nil
}

// countDescriptionLines returns how many lines are description lines
// and how many of those are malformed
func countDescriptionLines(lines []string, marker string) (descriptions, malformed int) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !isDescriptionLine(trimmed, marker) {
			continue
		}
		descriptions++
		if isMalformedDescription(line, marker) {
			malformed++
		}
	}
	return descriptions, malformed
}

// isDescriptionLine checks if the trimmed line starts a record
func isDescriptionLine(trimmed, marker string) bool {
	return strings.HasPrefix(trimmed, marker)
}

// isMalformedDescription checks if the marker is followed by whitespace or nothing.
// line must already be known to be a description line.
func isMalformedDescription(line, marker string) bool {
	rest := strings.TrimPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), marker)
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}
