package utils

import "strings"

// NormalizeFileList flattens raw --files values into one ordered list of
// paths. A single value may carry several newline-separated paths when the
// flag is fed from a multi-line CI input field; both LF and CRLF line breaks
// are supported. Leading and trailing whitespace is stripped per line, blank
// lines are dropped, and interior whitespace is left alone since it can be
// part of a path.
func NormalizeFileList(args []string) []string {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		for _, line := range strings.Split(arg, "\n") {
			if path := strings.TrimSpace(line); path != "" {
				files = append(files, path)
			}
		}
	}
	return files
}
