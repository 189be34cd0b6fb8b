package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

// DefaultSeparator splits a "DEPENDENCY->TASK" line.
const DefaultSeparator = "->"

const maxLineSize = 1 << 20

// ParseLine splits one record into its two task names. The line must contain
// the separator exactly once with a non-empty name on each side. Names are
// taken verbatim, surrounding whitespace included.
func ParseLine(line, sep string) (domain.Pair, error) {
	if sep == "" {
		return domain.Pair{}, domain.InvalidArgument("empty separator")
	}
	parts := strings.Split(line, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.Pair{}, domain.ErrMalformedLine
	}
	return domain.Pair{Dependency: parts[0], Task: parts[1]}, nil
}

// TextReader reads one pair per line. Lines are scanned one at a time, so
// the whole input is never held in memory.
type TextReader struct {
	r   io.Reader
	sep string
}

// NewTextReader creates a TextReader. An empty sep selects DefaultSeparator.
func NewTextReader(r io.Reader, sep string) *TextReader {
	if sep == "" {
		sep = DefaultSeparator
	}
	return &TextReader{r: r, sep: sep}
}

// ReadPairs yields the pairs in line order. A malformed line yields a
// *domain.LineError and ends the sequence.
func (tr *TextReader) ReadPairs(ctx context.Context) iter.Seq2[domain.Pair, error] {
	return func(yield func(domain.Pair, error) bool) {
		scanner := bufio.NewScanner(tr.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		lineNo := 0
		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				yield(domain.Pair{}, err)
				return
			}
			lineNo++
			line := scanner.Text()
			pair, err := ParseLine(line, tr.sep)
			if err != nil {
				yield(domain.Pair{}, lineError(lineNo, line, err))
				return
			}
			if !yield(pair, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(domain.Pair{}, fmt.Errorf("reading line %d: %w", lineNo+1, err))
		}
	}
}

// lineError attaches the position to a ParseLine failure.
func lineError(lineNo int, line string, err error) error {
	if errors.Is(err, domain.ErrMalformedLine) {
		return &domain.LineError{Line: lineNo, Text: line}
	}
	return err
}
