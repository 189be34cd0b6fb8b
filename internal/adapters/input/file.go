package input

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/ports"
)

// Format names an input encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported input encodings.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// NewReader returns the PairReader for format over r.
func NewReader(format Format, r io.Reader, sep string) (ports.PairReader, error) {
	switch format {
	case FormatText, "":
		return NewTextReader(r, sep), nil
	case FormatJSON:
		return NewJSONReader(r), nil
	case FormatYAML:
		return NewYAMLReader(r), nil
	default:
		return nil, domain.InvalidArgument("unknown input format %q", format)
	}
}

// FileReader reads pairs from a file. The file is opened when iteration
// starts and closed when it ends, so one FileReader can be read many times.
type FileReader struct {
	path   string
	format Format
	sep    string
}

// NewFileReader creates a FileReader after checking its arguments.
// The file itself is not touched until ReadPairs is iterated.
func NewFileReader(path string, format Format, sep string) (*FileReader, error) {
	if path == "" {
		return nil, domain.InvalidArgument("input file name cannot be empty")
	}
	if _, err := NewReader(format, nil, sep); err != nil {
		return nil, err
	}
	return &FileReader{path: path, format: format, sep: sep}, nil
}

// Path returns the file being read.
func (fr *FileReader) Path() string { return fr.path }

// ReadPairs opens the file and yields its pairs.
func (fr *FileReader) ReadPairs(ctx context.Context) iter.Seq2[domain.Pair, error] {
	return func(yield func(domain.Pair, error) bool) {
		f, err := os.Open(fr.path)
		if err != nil {
			yield(domain.Pair{}, fmt.Errorf("opening input: %w", err))
			return
		}
		defer f.Close()

		reader, err := NewReader(fr.format, f, fr.sep)
		if err != nil {
			yield(domain.Pair{}, err)
			return
		}
		for pair, err := range reader.ReadPairs(ctx) {
			if err != nil {
				yield(domain.Pair{}, fmt.Errorf("%s: %w", fr.path, err))
				return
			}
			if !yield(pair, nil) {
				return
			}
		}
	}
}
