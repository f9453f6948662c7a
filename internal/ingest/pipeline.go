package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "assignment-admin-backend/internal/errors"
	"assignment-admin-backend/internal/logger"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Pipeline turns a delimited text file into persisted records of type T
type Pipeline[T any] struct {
	Kind     Kind
	Rules    []Rule
	Required []Field
	Sanitize Sanitizer

	// Build converts a row that passed the required-field check into a record
	Build func(row Row) (*T, error)
	// IsDuplicate is optional; nil disables the duplicate guard
	IsDuplicate func(ctx context.Context, record *T) (bool, error)
	// Describe renders a record for log lines; optional
	Describe func(record *T) string

	Persister Persister[T]
}

// Run imports content. A returned error means the file was rejected as a whole
// and nothing was imported; row level problems only show up in the Outcome.
func (p *Pipeline[T]) Run(ctx context.Context, content []byte, log *logger.Logger) (*Outcome, error) {
	if log == nil {
		log = logger.WithContext(ctx)
	}
	log = log.WithField("import_kind", string(p.Kind))

	text, err := decode(content)
	if err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("Error reading CSV file: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyImportFile
	}

	comma := DetectDelimiter(text)
	lines := physicalLines(text)
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyImportFile
	}

	headers, err := parseLine(lines[0].text, comma)
	if err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("Error reading CSV header: %v", err))
	}

	rules := p.Rules
	if rules == nil {
		rules = RulesFor(p.Kind)
	}
	mapping := MapHeaders(headers, rules)
	if missing := mapping.Missing(p.Required); len(missing) > 0 {
		return nil, apperrors.NewMissingColumnsError(missing)
	}
	log.WithField("columns", mappedColumns(headers, mapping)).Info("CSV header mapped")

	sanitize := p.Sanitize
	if sanitize == nil {
		sanitize = TrimOnly
	}

	outcome := newOutcome(p.Kind, log)
	for _, line := range lines[1:] {
		outcome.Processed++

		record, err := parseLine(line.text, comma)
		if err != nil {
			outcome.skip(line.number, ReasonExceptionProcessing,
				fmt.Sprintf("Exception while processing record - %v", err))
			continue
		}

		p.processRow(ctx, newRow(line.number, record, mapping, sanitize), outcome)
	}

	outcome.LogSummary()
	return outcome, nil
}

func (p *Pipeline[T]) processRow(ctx context.Context, row Row, outcome *Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome.skip(row.Line, ReasonExceptionProcessing,
				fmt.Sprintf("Exception while processing record - %v", r))
		}
	}()

	if missing := row.missing(p.Required); len(missing) > 0 {
		outcome.skip(row.Line, ReasonEmptyRequiredField,
			fmt.Sprintf("Empty required fields - missing: %s", strings.Join(missing, ", ")))
		return
	}

	record, err := p.Build(row)
	if err != nil {
		outcome.skip(row.Line, ReasonExceptionProcessing,
			fmt.Sprintf("Exception while processing record - %v", err))
		return
	}

	if p.IsDuplicate != nil {
		duplicate, err := p.IsDuplicate(ctx, record)
		if err != nil {
			outcome.skip(row.Line, ReasonExceptionProcessing,
				fmt.Sprintf("Exception while processing record - %v", err))
			return
		}
		if duplicate {
			outcome.skip(row.Line, ReasonDuplicateRecord,
				fmt.Sprintf("Complete duplicate record - %s", p.describe(record)))
			return
		}
	}

	if err := p.Persister.Persist(ctx, record); err != nil {
		outcome.skip(row.Line, ReasonSaveError,
			fmt.Sprintf("Failed to save %s. %s: %v", p.Kind, p.describe(record), err))
		return
	}
	outcome.imported()
}

func (p *Pipeline[T]) describe(record *T) string {
	if p.Describe == nil {
		return fmt.Sprintf("%+v", *record)
	}
	return p.Describe(record)
}

// decode strips a byte order mark and converts UTF-16 input to UTF-8
func decode(content []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type physicalLine struct {
	number int
	text   string
}

// physicalLines splits text on newlines and drops empty lines. Every record is
// one line, so an unbalanced quote can never pull the following rows into it.
func physicalLines(text string) []physicalLine {
	raw := strings.Split(text, "\n")
	lines := make([]physicalLine, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if l == "" {
			continue
		}
		lines = append(lines, physicalLine{number: i + 1, text: l})
	}
	return lines
}

// parseLine splits one line into fields. A quote inside an unquoted field is
// kept as a literal character; an unterminated quoted field is an error.
func parseLine(line string, comma rune) ([]string, error) {
	record, err := readRecord(line, comma, false)
	if errors.Is(err, csv.ErrBareQuote) {
		return readRecord(line, comma, true)
	}
	return record, err
}

func readRecord(line string, comma rune, lazyQuotes bool) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = lazyQuotes
	record, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty record")
	}
	return record, err
}

func mappedColumns(headers []string, mapping Mapping) map[string]string {
	out := make(map[string]string, len(mapping))
	for field := range mapping {
		if h, ok := mapping.Header(headers, field); ok {
			out[string(field)] = h
		}
	}
	return out
}
