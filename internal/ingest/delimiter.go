package ingest

import "strings"

// DetectDelimiter picks the field separator from the first line of content.
// A pipe wins only when it strictly outnumbers commas; ties and empty input give a comma.
func DetectDelimiter(content string) rune {
	first := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		first = content[:i]
	}

	if strings.Count(first, "|") > strings.Count(first, ",") {
		return '|'
	}
	return ','
}
