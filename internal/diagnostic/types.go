package diagnostic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"bmfont-resolver/internal/common"
)

// Diagnostics holds all diagnostic information from one resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind classifies the defect.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// File identifies the file this relates to (if any).
	File string
	// Line is the 1-based mapping file line (0 if not applicable).
	Line int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(kind Kind, message, file string, line int) {
	d.Add(Diagnostic{
		Severity: DiagnosticError,
		Kind:     kind,
		Message:  message,
		File:     file,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(kind Kind, message, file string, line int) {
	d.Add(Diagnostic{
		Severity: DiagnosticWarning,
		Kind:     kind,
		Message:  message,
		File:     file,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(kind Kind, message, file string, line int) {
	d.Add(Diagnostic{
		Severity: DiagnosticInfo,
		Kind:     kind,
		Message:  message,
		File:     file,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ErrorKinds lists the kinds of all error diagnostics in insertion order.
func (d *Diagnostics) ErrorKinds() []Kind {
	return common.Map(d.Errors, func(e Diagnostic) Kind { return e.Kind })
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	return &ReportError{Diagnostics: append([]Diagnostic(nil), d.Errors...)}
}

// Log writes every diagnostic to logger, one entry each.
func (d *Diagnostics) Log(logger logrus.FieldLogger) {
	for _, e := range d.Errors {
		e.entry(logger).Error(e.Message)
	}

	for _, w := range d.Warnings {
		w.entry(logger).Warn(w.Message)
	}

	for _, i := range d.Infos {
		i.entry(logger).Info(i.Message)
	}
}

func (d Diagnostic) entry(logger logrus.FieldLogger) logrus.FieldLogger {
	fields := logrus.Fields{"kind": d.Kind.String()}
	if d.File != "" {
		fields["file"] = d.File
	}

	if d.Line > 0 {
		fields["line"] = d.Line
	}

	if len(d.Suggestions) > 0 {
		fields["suggestions"] = strings.Join(d.Suggestions, ",")
	}

	return logger.WithFields(fields)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var location string

	switch {
	case d.File != "" && d.Line > 0:
		location = d.File + ":" + strconv.Itoa(d.Line)
	case d.File != "":
		location = d.File
	case d.Line > 0:
		location = "line " + strconv.Itoa(d.Line)
	}

	msg := fmt.Sprintf("[%s] %s", d.Kind, d.Message)
	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if location != "" {
		return location + ": " + msg
	}

	return msg
}

// ReportError is the error form of a failed resolution.
type ReportError struct {
	Diagnostics []Diagnostic
}

func (e *ReportError) Error() string {
	parts := common.Map(e.Diagnostics, Diagnostic.String)

	return strings.Join(parts, "; ")
}

// Has reports whether any contained diagnostic is of the given kind.
func (e *ReportError) Has(kind Kind) bool {
	for _, d := range e.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}

	return false
}
