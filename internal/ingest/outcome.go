package ingest

import (
	"fmt"

	"assignment-admin-backend/internal/logger"
)

// SkipReason classifies why a row was not imported
type SkipReason string

const (
	ReasonEmptyRequiredField  SkipReason = "emptyRequiredField"
	ReasonDuplicateRecord     SkipReason = "duplicateRecord"
	ReasonSaveError           SkipReason = "saveError"
	ReasonExceptionProcessing SkipReason = "exceptionDuringProcessing"
)

const progressInterval = 100

// Skip records one rejected row
type Skip struct {
	Line   int
	Reason SkipReason
	Detail string
}

// Outcome accumulates the result of one import run.
// Skips are kept for logging only and never leave the service layer.
type Outcome struct {
	Kind      Kind
	Processed int
	Imported  int
	Skipped   int
	Reasons   map[SkipReason]int
	Skips     []Skip

	log *logger.Logger
}

func newOutcome(kind Kind, log *logger.Logger) *Outcome {
	return &Outcome{
		Kind:    kind,
		Reasons: make(map[SkipReason]int, 4),
		log:     log,
	}
}

func (o *Outcome) imported() {
	o.Imported++
	if o.Imported%progressInterval == 0 && o.log != nil {
		o.log.Debugf("Progress: %d %s imported so far", o.Imported, o.Kind.Noun())
	}
}

func (o *Outcome) skip(line int, reason SkipReason, detail string) {
	o.Skipped++
	o.Reasons[reason]++
	o.Skips = append(o.Skips, Skip{Line: line, Reason: reason, Detail: detail})

	if o.log == nil {
		return
	}
	entry := o.log.WithLine(line).WithField("reason", string(reason))
	switch reason {
	case ReasonEmptyRequiredField, ReasonDuplicateRecord:
		entry.Warnf("SKIP [Line %d]: %s", line, detail)
	default:
		entry.Errorf("SKIP [Line %d]: %s", line, detail)
	}
}

// Message is the caller-facing summary
func (o *Outcome) Message() string {
	return fmt.Sprintf("Successfully imported %d %s", o.Imported, o.Kind.Noun())
}

// LogSummary writes the per-reason totals
func (o *Outcome) LogSummary() {
	if o.log == nil {
		return
	}
	fields := map[string]interface{}{
		"processed": o.Processed,
		"imported":  o.Imported,
		"skipped":   o.Skipped,
	}
	for _, reason := range []SkipReason{ReasonEmptyRequiredField, ReasonDuplicateRecord, ReasonSaveError, ReasonExceptionProcessing} {
		fields[string(reason)] = o.Reasons[reason]
	}
	o.log.WithFields(fields).Info("=== CSV Import Summary ===")
}
