package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errbuilder.ErrCode
	}{
		{"line error", fmt.Errorf("reading: %w", &LineError{Line: 2, Text: "b-c"}), errbuilder.CodeInvalidArgument},
		{"cycle", fmt.Errorf("sorting tasks: %w", &CycleError{Path: []string{"a", "b", "a"}}), errbuilder.CodeFailedPrecondition},
		{"usage", InvalidArgument("unknown format %q", "xml"), errbuilder.CodeInvalidArgument},
		{"empty name", fmt.Errorf("dependency of %q: %w", "b", ErrEmptyTaskName), errbuilder.CodeInvalidArgument},
		{"missing file", fmt.Errorf("opening input: %w", fs.ErrNotExist), errbuilder.CodeNotFound},
		{"permission", fs.ErrPermission, errbuilder.CodePermissionDenied},
		{"canceled", context.Canceled, errbuilder.CodeCanceled},
		{"deadline", context.DeadlineExceeded, errbuilder.CodeDeadlineExceeded},
		{"other", errors.New("boom"), errbuilder.CodeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CodeOf(tc.err))
		})
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("unknown format %q", "xml")

	assert.ErrorIs(t, err, ErrInvalidArgument)
	var eb *errbuilder.ErrBuilder
	require.ErrorAs(t, err, &eb)
	assert.Equal(t, `unknown format "xml"`, eb.Msg)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestTypedErrorsKeepSentinels(t *testing.T) {
	lineErr := fmt.Errorf("tasks.txt: %w", &LineError{Line: 2, Text: "b-c"})
	assert.ErrorIs(t, lineErr, ErrMalformedLine)
	assert.EqualError(t, lineErr, `tasks.txt: malformed input line 2: "b-c"`)

	cycleErr := &CycleError{Path: []string{"a", "b", "a"}}
	assert.ErrorIs(t, cycleErr, ErrCyclicDependency)
	assert.EqualError(t, cycleErr, "cyclic dependency: a -> b -> a")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "empty separator", Message(InvalidArgument("empty separator")))
	assert.Equal(t, "tasks.txt: empty separator",
		Message(fmt.Errorf("tasks.txt: %w", InvalidArgument("empty separator"))))
}
