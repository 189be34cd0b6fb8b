package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/ports"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
)

// Formats lists the supported output encodings.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatDOT}

// Options tune the text format. Other formats ignore them.
type Options struct {
	ShowPriority bool // Prefix each line with "<priority>: "
	Color        bool // Paint the priority prefix
}

// New returns the PlanWriter for format writing to w.
func New(format Format, w io.Writer, opts Options) (ports.PlanWriter, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w, opts), nil
	case FormatJSON:
		return &JSONWriter{w: w}, nil
	case FormatYAML:
		return &YAMLWriter{w: w}, nil
	case FormatDOT:
		return &DOTWriter{w: w}, nil
	default:
		return nil, domain.InvalidArgument("unknown output format %q", format)
	}
}

// TextWriter prints one level per line, task names joined by ", ".
type TextWriter struct {
	w      io.Writer
	opts   Options
	prefix *color.Color
}

// NewTextWriter creates a TextWriter.
func NewTextWriter(w io.Writer, opts Options) *TextWriter {
	prefix := color.New(color.FgCyan, color.Bold)
	if opts.Color {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	return &TextWriter{w: w, opts: opts, prefix: prefix}
}

// WritePlan prints the levels in ascending priority.
func (tw *TextWriter) WritePlan(plan domain.Plan) error {
	bw := bufio.NewWriter(tw.w)
	for _, level := range plan.Levels {
		if tw.opts.ShowPriority {
			bw.WriteString(tw.prefix.Sprintf("%d:", level.Priority()))
			bw.WriteByte(' ')
		}
		bw.WriteString(strings.Join(level.Tasks, ", "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// planDoc is the document shape shared by the JSON and YAML formats.
type planDoc struct {
	Levels []levelDoc    `json:"levels" yaml:"levels"`
	Edges  []domain.Pair `json:"edges,omitempty" yaml:"edges,omitempty"`
}

type levelDoc struct {
	Priority int      `json:"priority" yaml:"priority"`
	Depth    int      `json:"depth" yaml:"depth"`
	Tasks    []string `json:"tasks" yaml:"tasks"`
}

func newPlanDoc(plan domain.Plan) planDoc {
	doc := planDoc{Levels: make([]levelDoc, 0, len(plan.Levels)), Edges: plan.Edges}
	for _, l := range plan.Levels {
		doc.Levels = append(doc.Levels, levelDoc{Priority: l.Priority(), Depth: l.Depth, Tasks: l.Tasks})
	}
	return doc
}

// JSONWriter writes the plan as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// WritePlan encodes the plan followed by a newline.
func (jw *JSONWriter) WritePlan(plan domain.Plan) error {
	err := json.MarshalWrite(jw.w, newPlanDoc(plan),
		json.Deterministic(true),
		jsontext.WithIndent("  "),
	)
	if err != nil {
		return fmt.Errorf("encoding JSON plan: %w", err)
	}
	_, err = io.WriteString(jw.w, "\n")
	return err
}

// YAMLWriter writes the plan as a YAML document.
type YAMLWriter struct {
	w io.Writer
}

// WritePlan encodes the plan.
func (yw *YAMLWriter) WritePlan(plan domain.Plan) error {
	enc := yaml.NewEncoder(yw.w)
	enc.SetIndent(2)
	if err := enc.Encode(newPlanDoc(plan)); err != nil {
		return fmt.Errorf("encoding YAML plan: %w", err)
	}
	return enc.Close()
}
