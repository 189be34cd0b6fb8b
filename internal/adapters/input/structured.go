package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

// JSONReader reads a JSON array of {"dependency": ..., "task": ...} objects.
type JSONReader struct {
	r io.Reader
}

// NewJSONReader creates a JSONReader.
func NewJSONReader(r io.Reader) *JSONReader {
	return &JSONReader{r: r}
}

// ReadPairs decodes the whole document, then yields its pairs in order.
func (jr *JSONReader) ReadPairs(ctx context.Context) iter.Seq2[domain.Pair, error] {
	return func(yield func(domain.Pair, error) bool) {
		var pairs []domain.Pair
		if err := json.UnmarshalRead(jr.r, &pairs); err != nil {
			yield(domain.Pair{}, fmt.Errorf("decoding JSON pairs: %w", err))
			return
		}
		yieldRecords(ctx, pairs, yield)
	}
}

// YAMLReader reads a YAML sequence of {dependency, task} mappings.
type YAMLReader struct {
	r io.Reader
}

// NewYAMLReader creates a YAMLReader.
func NewYAMLReader(r io.Reader) *YAMLReader {
	return &YAMLReader{r: r}
}

// ReadPairs decodes the whole document, then yields its pairs in order.
// An empty document holds no pairs.
func (yr *YAMLReader) ReadPairs(ctx context.Context) iter.Seq2[domain.Pair, error] {
	return func(yield func(domain.Pair, error) bool) {
		var pairs []domain.Pair
		if err := yaml.NewDecoder(yr.r).Decode(&pairs); err != nil && !errors.Is(err, io.EOF) {
			yield(domain.Pair{}, fmt.Errorf("decoding YAML pairs: %w", err))
			return
		}
		yieldRecords(ctx, pairs, yield)
	}
}

// yieldRecords applies the same record checks as the text format: both names
// must be present.
func yieldRecords(ctx context.Context, pairs []domain.Pair, yield func(domain.Pair, error) bool) {
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			yield(domain.Pair{}, err)
			return
		}
		if p.Dependency == "" || p.Task == "" {
			yield(domain.Pair{}, &domain.LineError{Line: i + 1, Text: p.Dependency + DefaultSeparator + p.Task})
			return
		}
		if !yield(p, nil) {
			return
		}
	}
}
