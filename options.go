package fastasplit

import (
	"slices"
	"strings"
)

// DefaultMarker starts every description line
const DefaultMarker = ">"

const (
	// DefaultIndexSuffix is appended to the input directory to name the index file
	DefaultIndexSuffix = "_Sequences_List.txt"
	// DefaultIndexName names the index file when the input has no directory
	DefaultIndexName = "Sequences_List.txt"
)

// DefaultExtensions are the accepted FASTA extensions, without the leading dot.
var DefaultExtensions = []string{"fa", "faa", "fasta", "ffn", "fna", "frn"}

// NameFunc derives a record name from a trimmed description line.
type NameFunc func(line, marker string) string

// NameBeforePipe strips the marker, keeps the text before the first '|'
// and removes every space from it.
//
//	">Sequence2 |text2" -> "Sequence2"
func NameBeforePipe(line, marker string) string {
	name := strings.TrimPrefix(line, marker)
	name, _, _ = strings.Cut(name, "|")
	return strings.ReplaceAll(name, " ", "")
}

// NameFirstToken strips the marker and keeps the text before the first space.
// NCBI downloads put the accession there.
//
//	">NC_045512.2 Severe acute respiratory syndrome" -> "NC_045512.2"
func NameFirstToken(line, marker string) string {
	name := strings.TrimPrefix(line, marker)
	name, _, _ = strings.Cut(name, " ")
	return name
}

// Options holds the fixed conventions of a split.
// The CLI always uses DefaultOptions; library callers may adjust them.
type Options struct {
	Marker      string   // Default: ">".
	Extensions  []string // Default: DefaultExtensions.
	Naming      NameFunc // Default: NameBeforePipe.
	IndexSuffix string   // Default: "_Sequences_List.txt".
	IndexName   string   // Default: "Sequences_List.txt".
}

// DefaultOptions returns the conventions used by the fastasplit command.
func DefaultOptions() Options {
	return Options{
		Marker:      DefaultMarker,
		Extensions:  append([]string(nil), DefaultExtensions...),
		Naming:      NameBeforePipe,
		IndexSuffix: DefaultIndexSuffix,
		IndexName:   DefaultIndexName,
	}
}

// withDefaults fills zero fields from DefaultOptions
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Marker == "" {
		o.Marker = d.Marker
	}
	if len(o.Extensions) == 0 {
		o.Extensions = d.Extensions
	}
	if o.Naming == nil {
		o.Naming = d.Naming
	}
	if o.IndexSuffix == "" {
		o.IndexSuffix = d.IndexSuffix
	}
	if o.IndexName == "" {
		o.IndexName = d.IndexName
	}
	return o
}

func (o Options) allowsExtension(ext string) bool {
	return slices.Contains(o.Extensions, ext)
}
