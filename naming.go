package fastasplit

import (
	"path/filepath"
	"strings"
)

// DerivePrefix returns the directory part of path including its trailing separator,
// or "" when path has no directory.
func DerivePrefix(path string) string {
	dir, _ := filepath.Split(path)
	return dir
}

// DeriveExtension returns the text after the last '.' of the file name, without the dot.
// It returns "" when the file name has no dot.
func DeriveExtension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i+1:]
}

// DeriveIndexFileName names the index file after the input directory:
//
//	"dir/"     -> "dir_Sequences_List.txt"
//	"a/b/"     -> "a/b_Sequences_List.txt"
//	"" or "/"  -> "Sequences_List.txt"
//
// The index therefore sits next to the directory holding the record files, not inside it.
func DeriveIndexFileName(prefix string, opts Options) string {
	opts = opts.withDefaults()
	dir := strings.TrimSuffix(prefix, string(filepath.Separator))
	if filepath.Separator != '/' {
		dir = strings.TrimSuffix(dir, "/")
	}
	if dir == "" {
		return opts.IndexName
	}
	return dir + opts.IndexSuffix
}

// RecordFilePath returns the path a record named name is written to
func RecordFilePath(prefix, name, ext string) string {
	return prefix + name + "." + ext
}
