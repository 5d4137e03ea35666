package fastasplit

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the failures a split can abort with
type Kind int

const (
	// KindIO is any read or write failure while parsing or writing
	KindIO Kind = iota
	// KindInvalidArgumentCount means the CLI did not get exactly one argument
	KindInvalidArgumentCount
	// KindNotFound means the input path is not an existing regular file
	KindNotFound
	// KindInvalidExtension means the extension is not an allowed FASTA extension
	KindInvalidExtension
	// KindNoDescriptionLine means the file has no line starting with the marker
	KindNoDescriptionLine
	// KindMalformedDescriptionLines means some description lines have nothing after the marker
	KindMalformedDescriptionLines
	// KindEmptyFile means the file has fewer than two lines
	KindEmptyFile
	// KindInvariant means the name and record lists handed to the writer are not aligned
	KindInvariant
)

var kindNames = map[Kind]string{
	KindIO:                        "io failure",
	KindInvalidArgumentCount:      "invalid argument count",
	KindNotFound:                  "not found",
	KindInvalidExtension:          "invalid extension",
	KindNoDescriptionLine:         "no description line",
	KindMalformedDescriptionLines: "malformed description lines",
	KindEmptyFile:                 "empty file",
	KindInvariant:                 "invariant violation",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrIO                        = errors.New("fastasplit: io failure")
	ErrInvalidArgumentCount      = errors.New("fastasplit: invalid argument count")
	ErrNotFound                  = errors.New("fastasplit: sequences file not found")
	ErrInvalidExtension          = errors.New("fastasplit: invalid extension")
	ErrNoDescriptionLine         = errors.New("fastasplit: no description line")
	ErrMalformedDescriptionLines = errors.New("fastasplit: malformed description lines")
	ErrEmptyFile                 = errors.New("fastasplit: empty file")
	ErrInvariant                 = errors.New("fastasplit: invariant violation")
)

var kindSentinels = map[Kind]error{
	KindIO:                        ErrIO,
	KindInvalidArgumentCount:      ErrInvalidArgumentCount,
	KindNotFound:                  ErrNotFound,
	KindInvalidExtension:          ErrInvalidExtension,
	KindNoDescriptionLine:         ErrNoDescriptionLine,
	KindMalformedDescriptionLines: ErrMalformedDescriptionLines,
	KindEmptyFile:                 ErrEmptyFile,
	KindInvariant:                 ErrInvariant,
}

// Error is the error type returned by every operation of the package.
type Error struct {
	// Kind is the failed check
	Kind Kind
	// Op is the operation that failed, e.g. "validate" or "write record"
	Op string
	// Path is the file the failure is about, if any
	Path string
	// Count carries the argument count or the malformed line count
	Count int
	// Extensions is the allow-list reported by KindInvalidExtension
	Extensions []string
	// Err is the underlying cause, if any
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidArgumentCount:
		return fmt.Sprintf("invalid number of arguments provided: expected 1 argument (FASTA sequences file), provided %d argument(s)", e.Count)
	case KindNotFound:
		return fmt.Sprintf("FASTA sequences file not found: '%s'", e.Path)
	case KindInvalidExtension:
		return fmt.Sprintf("'%s': only FASTA extension files (%s) are allowed", e.Path, listExtensions(e.Extensions))
	case KindNoDescriptionLine:
		return fmt.Sprintf("'%s' has no description line", e.Path)
	case KindMalformedDescriptionLines:
		return fmt.Sprintf("'%s' contains %d line(s) with invalid description format", e.Path, e.Count)
	case KindEmptyFile:
		return fmt.Sprintf("'%s' seems an empty FASTA file", e.Path)
	}
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg += " '" + e.Path + "'"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// KindOf returns the Kind of the first *Error in err's chain.
// ok is false when err carries no *Error.
func KindOf(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// listExtensions renders [fa faa fasta] as ".fa, .faa or .fasta"
func listExtensions(exts []string) string {
	dotted := make([]string, len(exts))
	for i, ext := range exts {
		dotted[i] = "." + ext
	}
	if len(dotted) < 2 {
		return strings.Join(dotted, "")
	}
	return strings.Join(dotted[:len(dotted)-1], ", ") + " or " + dotted[len(dotted)-1]
}

func ioError(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}
