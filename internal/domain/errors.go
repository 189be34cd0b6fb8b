package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

var (
	// ErrMalformedLine is returned when an input record does not hold exactly two non-empty task names.
	ErrMalformedLine = errors.New("malformed input line")
	// ErrInvalidArgument is returned for bad command line usage or adapter arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCyclicDependency is returned when the dependency relation contains a cycle.
	ErrCyclicDependency = errors.New("cyclic dependency")
	// ErrEmptyTaskName is returned when a task is added without a name.
	ErrEmptyTaskName = errors.New("task name cannot be empty")
)

// LineError reports a malformed input record together with its position.
type LineError struct {
	Line int    // 1-based record number
	Text string // Raw record as read
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s %d: %q", ErrMalformedLine, e.Line, e.Text)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }

// ErrCode classifies a malformed record as bad input.
func (e *LineError) ErrCode() errbuilder.ErrCode { return errbuilder.CodeInvalidArgument }

// CycleError reports one dependency cycle. Path lists task names in
// depends-on order and repeats the first name at the end, so
// [a b a] means a depends on b and b depends on a.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicDependency, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

// ErrCode classifies a cycle as input the sorter cannot order.
func (e *CycleError) ErrCode() errbuilder.ErrCode { return errbuilder.CodeFailedPrecondition }

// InvalidArgument builds a coded usage error. errors.Is(err,
// ErrInvalidArgument) holds for the result.
func InvalidArgument(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf(format, args...)).
		WithCause(ErrInvalidArgument)
}

// CodeOf returns the errbuilder code for err: the code of the first error in
// the chain that carries one, else the code matching a known sentinel.
func CodeOf(err error) errbuilder.ErrCode {
	var coded interface{ ErrCode() errbuilder.ErrCode }
	switch {
	case errors.As(err, &coded):
		return coded.ErrCode()
	case errors.Is(err, ErrMalformedLine),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrEmptyTaskName):
		return errbuilder.CodeInvalidArgument
	case errors.Is(err, ErrCyclicDependency):
		return errbuilder.CodeFailedPrecondition
	case errors.Is(err, fs.ErrNotExist):
		return errbuilder.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return errbuilder.CodePermissionDenied
	case errors.Is(err, context.Canceled):
		return errbuilder.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errbuilder.CodeDeadlineExceeded
	}
	return errbuilder.CodeUnknown
}

// Message renders err for people. An *errbuilder.ErrBuilder in the chain
// contributes its Msg instead of its full diagnostic text.
func Message(err error) string {
	var eb *errbuilder.ErrBuilder
	if !errors.As(err, &eb) {
		return err.Error()
	}
	if error(eb) == err {
		return eb.Msg
	}
	return strings.Replace(err.Error(), eb.Error(), eb.Msg, 1)
}
