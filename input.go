package logfacade

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// Severity classifies a log record.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func severityOf(fatal bool) Severity {
	if fatal {
		return SeverityFatal
	}
	return SeverityError
}

type inputKind uint8

const (
	inputError inputKind = iota
	inputValue
)

// Input is the argument of an error report: either a well-formed error or
// a raw value that has to be normalized before it can be reported.
type Input struct {
	kind inputKind
	err  error
	raw  any
}

// Err wraps an error. A nil error, or a typed nil pointer, is treated as a
// raw nil value.
func Err(err error) Input {
	if err == nil {
		return Input{kind: inputValue}
	}
	// A nil pointer in a non-nil interface cannot be asked for its message.
	if v := reflect.ValueOf(err); v.Kind() == reflect.Pointer && v.IsNil() {
		return Input{kind: inputValue}
	}
	return Input{kind: inputError, err: err}
}

// Value wraps an arbitrary value.
func Value(v any) Input {
	return Input{kind: inputValue, raw: v}
}

// IsError reports whether the input holds a well-formed error.
func (in Input) IsError() bool { return in.kind == inputError }

// ProgrammingError is returned when a non-error value reaches an error
// entry point under a strict policy.
type ProgrammingError struct {
	EntryPoint string
}

func (e *ProgrammingError) Error() string {
	return "the first parameter to " + e.EntryPoint + " must be an error"
}

// CoercedError is a raw value normalized into an error. Its stack is the one
// current when the value was coerced.
type CoercedError struct {
	Value any
	msg   string
	stack []byte
}

func coerce(v any) *CoercedError {
	return &CoercedError{
		Value: v,
		msg:   fmt.Sprint(v),
		stack: debug.Stack(),
	}
}

func (e *CoercedError) Error() string { return e.msg }
func (e *CoercedError) Name() string  { return defaultErrorName }

// Stack renders the error the way a stack dump starts: "Error: <msg>" and
// the captured goroutine stack.
func (e *CoercedError) Stack() string {
	return defaultErrorName + ": " + e.msg + "\n" + string(e.stack)
}

type namer interface{ Name() string }
type stacker interface{ Stack() string }

// errorName returns a short type name for err: its Name() if it has one,
// "Error" for plain stdlib errors, the concrete type name otherwise.
func errorName(err error) string {
	if n, ok := err.(namer); ok {
		if name := n.Name(); name != emptyString {
			return name
		}
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.PkgPath() {
	case "errors", "fmt":
		return defaultErrorName
	}
	if t.Name() == emptyString {
		return defaultErrorName
	}
	return t.Name()
}

// stackOrMessage returns err's stack text when it carries one, otherwise its message.
func stackOrMessage(err error) string {
	if s, ok := err.(stacker); ok {
		if stack := s.Stack(); stack != emptyString {
			return stack
		}
	}
	return err.Error()
}
