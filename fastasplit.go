// Package fastasplit splits a multi-record FASTA file into one file per record,
// written next to the input, plus an index file listing them.
package fastasplit

import (
	"github.com/qiniu/x/log"
)

// Result describes a completed split
type Result struct {
	// Source is the split FASTA file
	Source string
	// Prefix is the directory part of Source, with its trailing separator
	Prefix string
	// Extension is the extension of Source, without the dot
	Extension string
	// Names are the record names, in file order
	Names []string
	// RecordFiles are the written record files, aligned with Names
	RecordFiles []string
	// IndexFile is the written index file
	IndexFile string
}

// CheckArgs checks that exactly one positional argument, the sequences file, was given
func CheckArgs(args []string) error {
	if len(args) != 1 {
		return &Error{Kind: KindInvalidArgumentCount, Op: "check args", Count: len(args)}
	}
	return nil
}

// Run splits the FASTA file at path with DefaultOptions.
func Run(path string) (*Result, error) {
	return Split(path, DefaultOptions())
}

// Split validates the FASTA file at path, writes one file per record next to it
// and finally writes the index file.
// Nothing is written unless validation succeeds. A write failure aborts the split
// and leaves the files already written in place.
func Split(path string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := Validate(path, opts); err != nil {
		return nil, err
	}

	res := &Result{
		Source:    path,
		Prefix:    DerivePrefix(path),
		Extension: DeriveExtension(path),
	}

	names, err := ExtractNames(path, opts)
	if err != nil {
		return nil, err
	}
	log.Debugf("%s: %d sequence names", path, len(names))

	records, err := ExtractRecords(path, opts)
	if err != nil {
		return nil, err
	}
	log.Debugf("%s: %d sequence records", path, len(records))

	written, err := WriteRecordFiles(res.Prefix, res.Extension, names, records)
	if err != nil {
		return nil, err
	}

	indexPath, indexed, err := WriteIndexFile(res.Prefix, res.Extension, names, opts)
	if err != nil {
		return nil, err
	}

	res.Names = names
	res.RecordFiles = make([]string, len(names))
	for i, name := range names {
		res.RecordFiles[i] = RecordFilePath(res.Prefix, name, res.Extension)
	}
	res.IndexFile = indexPath

	log.Infof("%s: wrote %d sequence files, %d indexed in %s", path, written, indexed, indexPath)
	return res, nil
}
