package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
)

// DOTWriter renders the dependency graph for Graphviz. Edges point from a
// dependency to the task that needs it; each vertex carries its priority.
type DOTWriter struct {
	w io.Writer
}

// WritePlan renders the plan's tasks and edges.
func (dw *DOTWriter) WritePlan(plan domain.Plan) error {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, level := range plan.Levels {
		priority := strconv.Itoa(level.Priority())
		for _, name := range level.Tasks {
			err := g.AddVertex(dotID(name),
				graph.VertexAttribute("label", dotID(name)),
				graph.VertexAttribute("xlabel", "P"+priority),
			)
			if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return fmt.Errorf("adding vertex %q: %w", name, err)
			}
		}
	}
	for _, e := range plan.Edges {
		err := g.AddEdge(dotID(e.Dependency), dotID(e.Task))
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return fmt.Errorf("adding edge %q -> %q: %w", e.Dependency, e.Task, err)
		}
	}

	return draw.DOT(g, dw.w, draw.GraphAttribute("rankdir", "LR"))
}

// dotID escapes a task name for use inside a quoted DOT identifier.
func dotID(name string) string {
	name = strings.ReplaceAll(name, `\`, `\\`)
	return strings.ReplaceAll(name, `"`, `\"`)
}
