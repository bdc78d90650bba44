package fondos

import (
	"fmt"
	"strings"
)

// Ctx accumulates "field = value" pairs while a row is being parsed, so that
// a failure on any cell can name the whole row that produced it. It is a
// value: With returns an extended copy and never mutates the receiver.
type Ctx struct {
	fields []string
}

// With returns a copy of the context extended with one field.
func (c Ctx) With(name, value string) Ctx {
	fields := make([]string, len(c.fields), len(c.fields)+1)
	copy(fields, c.fields)
	return Ctx{fields: append(fields, name+" = "+value)}
}

// Wrap turns a cell-level parse error into a fatal FormatError carrying the
// full field chain. A nil err returns nil.
func (c Ctx) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &FormatError{Fields: c.fields, Err: err}
}

// Errorf builds a fatal FormatError carrying the full field chain.
func (c Ctx) Errorf(format string, args ...any) error {
	return &FormatError{Fields: c.fields, Err: fmt.Errorf(format, args...)}
}

// String renders the accumulated chain, most recently added field last.
func (c Ctx) String() string { return strings.Join(c.fields, ", ") }

// FormatError is a fatal ingestion error: a field did not match its expected
// grammar. It aborts the current ingestion pass. Fields holds the accumulated
// context of the row, so the operator can locate the offending cell in the
// pasted text.
type FormatError struct {
	Fields []string
	Err    error
}

func (e *FormatError) Error() string {
	if len(e.Fields) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (%s)", e.Err, strings.Join(e.Fields, ", "))
}

func (e *FormatError) Unwrap() error { return e.Err }

// UnrecognizedCategory is a fatal ingestion error: a movement row carries an
// action label outside the known set, meaning the portal changed its report
// schema and the category mapping needs updating.
type UnrecognizedCategory struct {
	Label  string
	Fields []string
}

func (e *UnrecognizedCategory) Error() string {
	msg := fmt.Sprintf("movement label %q not recognized, the category mapping needs updating", e.Label)
	if len(e.Fields) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, strings.Join(e.Fields, ", "))
}

// Warning is a recoverable ingestion condition, typically a previously stored
// value changing on re-observation. Warnings are collected and reported; they
// never abort a pass.
type Warning string

func (w Warning) String() string { return string(w) }

// Warningf builds a Warning.
func Warningf(format string, args ...any) Warning {
	return Warning(fmt.Sprintf(format, args...))
}
