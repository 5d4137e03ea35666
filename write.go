package fastasplit

import (
	"fmt"

	"github.com/qiniu/x/log"
)

// WriteRecordFiles writes records[i] to RecordFilePath(prefix, names[i], ext) for every i.
// It stops at the first failure and leaves the files already written in place.
// It returns the number of files written.
func WriteRecordFiles(prefix, ext string, names []string, records [][]string) (int, error) {
	if len(names) != len(records) {
		return 0, &Error{
			Kind: KindInvariant,
			Op:   "write records",
			Err:  fmt.Errorf("%d names for %d records", len(names), len(records)),
		}
	}

	written := 0
	for i, name := range names {
		path := RecordFilePath(prefix, name, ext)
		if err := writeLines(path, records[i]); err != nil {
			return written, ioError("write record", path, err)
		}
		log.Debugf("wrote record %d/%d to %s (%d lines)", i+1, len(names), path, len(records[i]))
		written++
	}
	return written, nil
}

// WriteIndexFile writes the index file listing the record file of each name, one per line.
// It must only be called once every record file has been written.
// It returns the index path and the number of entries.
func WriteIndexFile(prefix, ext string, names []string, opts Options) (string, int, error) {
	indexPath := DeriveIndexFileName(prefix, opts)
	entries := make([]string, len(names))
	for i, name := range names {
		entries[i] = RecordFilePath(prefix, name, ext)
	}
	if err := writeLines(indexPath, entries); err != nil {
		return indexPath, 0, ioError("write index", indexPath, err)
	}
	return indexPath, len(entries), nil
}
