package ingest

import "strings"

// maxSpreadsheetValueLength bounds organization detail values.
const maxSpreadsheetValueLength = 100

// Sanitizer normalizes one raw cell; ok=false means the value is absent.
type Sanitizer func(raw string) (value string, ok bool)

// TrimOnly trims surrounding whitespace and treats the empty string as absent
func TrimOnly(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	return v, v != ""
}

// SpreadsheetSafe additionally drops spreadsheet error markers (#REF!, #N/A, ...)
// and values longer than 100 characters.
func SpreadsheetSafe(raw string) (string, bool) {
	v, ok := TrimOnly(raw)
	if !ok || strings.HasPrefix(v, "#") || len([]rune(v)) > maxSpreadsheetValueLength {
		return "", false
	}
	return v, true
}

// Row is one sanitized data record
type Row struct {
	Line   int
	values map[Field]string
}

func newRow(line int, record []string, mapping Mapping, sanitize Sanitizer) Row {
	row := Row{Line: line, values: make(map[Field]string, len(mapping))}
	for field, idx := range mapping {
		if idx >= len(record) {
			continue
		}
		if v, ok := sanitize(record[idx]); ok {
			row.values[field] = v
		}
	}
	return row
}

// Get returns the value of f, or "" when absent
func (r Row) Get(f Field) string {
	return r.values[f]
}

// Has reports whether f carries a value
func (r Row) Has(f Field) bool {
	_, ok := r.values[f]
	return ok
}

// Ptr returns a pointer to the value of f, or nil when absent
func (r Row) Ptr(f Field) *string {
	v, ok := r.values[f]
	if !ok {
		return nil
	}
	return &v
}

// missing returns the required fields that are absent, in the given order
func (r Row) missing(required []Field) []string {
	var out []string
	for _, f := range required {
		if !r.Has(f) {
			out = append(out, string(f))
		}
	}
	return out
}
