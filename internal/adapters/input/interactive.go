package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

// DefaultPrompt is shown before each interactive edge.
const DefaultPrompt = "edge> "

// lineSource is the part of *readline.Instance the interactive reader uses.
type lineSource interface {
	Readline() (string, error)
	Close() error
}

// InteractiveReader reads edges typed at a terminal until end of input (Ctrl-D).
// Blank lines are skipped and spaces around each name are dropped, so
// "a -> b" reads as a and b. Ctrl-C abandons the session.
type InteractiveReader struct {
	src lineSource
	sep string
}

// InteractiveConfig configures the terminal session.
type InteractiveConfig struct {
	Prompt      string
	HistoryFile string // Empty disables history
	Separator   string
	Stdin       io.ReadCloser // Nil means the process stdin
	Stdout      io.Writer     // Nil means the process stdout
}

// NewInteractiveReader opens a readline session on the terminal.
func NewInteractiveReader(cfg InteractiveConfig) (*InteractiveReader, error) {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "\n",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("starting interactive session: %w", err)
	}
	return newInteractiveReader(rl, cfg.Separator), nil
}

func newInteractiveReader(src lineSource, sep string) *InteractiveReader {
	if sep == "" {
		sep = DefaultSeparator
	}
	return &InteractiveReader{src: src, sep: sep}
}

// ReadPairs yields one pair per typed line. The session is closed when the
// sequence ends.
func (ir *InteractiveReader) ReadPairs(ctx context.Context) iter.Seq2[domain.Pair, error] {
	return func(yield func(domain.Pair, error) bool) {
		defer ir.src.Close()

		lineNo := 0
		for {
			if err := ctx.Err(); err != nil {
				yield(domain.Pair{}, err)
				return
			}
			line, err := ir.src.Readline()
			switch {
			case errors.Is(err, io.EOF):
				return
			case errors.Is(err, readline.ErrInterrupt):
				yield(domain.Pair{}, context.Canceled)
				return
			case err != nil:
				yield(domain.Pair{}, fmt.Errorf("reading terminal: %w", err))
				return
			}

			lineNo++
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			pair, err := ParseLine(line, ir.sep)
			if err != nil {
				yield(domain.Pair{}, lineError(lineNo, line, err))
				return
			}
			// The line is trimmed, so neither name can be blank here.
			pair.Dependency = strings.TrimSpace(pair.Dependency)
			pair.Task = strings.TrimSpace(pair.Task)
			if !yield(pair, nil) {
				return
			}
		}
	}
}
