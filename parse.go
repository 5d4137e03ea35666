package fastasplit

import "strings"

// ExtractNames reads path and returns one name per description line, in file order.
func ExtractNames(path string, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	lines, err := readLines(path)
	if err != nil {
		return nil, ioError("extract names", path, err)
	}
	return namesFromLines(lines, opts), nil
}

// ExtractRecords reads path and returns the trimmed lines of each record, in file order.
// Each group starts with its description line, except that lines found before
// the first description line are kept at the head of the first group.
func ExtractRecords(path string, opts Options) ([][]string, error) {
	opts = opts.withDefaults()
	lines, err := readLines(path)
	if err != nil {
		return nil, ioError("extract records", path, err)
	}
	return recordsFromLines(lines, opts.Marker), nil
}

func namesFromLines(lines []string, opts Options) []string {
	var names []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isDescriptionLine(trimmed, opts.Marker) {
			names = append(names, opts.Naming(trimmed, opts.Marker))
		}
	}
	return names
}

func recordsFromLines(lines []string, marker string) [][]string {
	var (
		records   [][]string
		current   []string
		hasHeader bool
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isDescriptionLine(trimmed, marker) {
			// leading lines stay with the first header
			if hasHeader {
				records = append(records, current)
				current = nil
			}
			hasHeader = true
		}
		current = append(current, trimmed)
	}
	return append(records, current)
}
