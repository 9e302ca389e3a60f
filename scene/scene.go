// Package scene loads declarative graph scenes from YAML and applies them to
// a graph or a session workspace.
//
// A scene names its nodes so that edges and the start/end selection can refer
// to them; the graph still issues its own IDs, and Apply returns the
// name→ID mapping.
//
//	directed: false
//	nodes:
//	  - {name: A, x: 80, y: 80}
//	  - {name: B, x: 240, y: 80}
//	edges:
//	  - {from: A, to: B, weight: 4}
//	start: A
//	end: B
//
// A scene may also generate nodes with a shape (see Shape); generated nodes
// are named <prefix><index> and can be referenced like declared ones.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathreplay/builder"
)

// Sentinel errors for scene loading and application.
var (
	// ErrInvalid indicates a scene that fails structural validation.
	ErrInvalid = errors.New("scene: invalid")

	// ErrDuplicateName indicates two nodes share a name.
	ErrDuplicateName = errors.New("scene: duplicate node name")

	// ErrUnknownNode indicates an edge or selection referring to an undeclared name.
	ErrUnknownNode = errors.New("scene: unknown node")
)

// Scene is the YAML document.
type Scene struct {
	Directed *bool  `yaml:"directed,omitempty"`
	Shape    *Shape `yaml:"shape,omitempty"`
	Nodes    []Node `yaml:"nodes" validate:"dive"`
	Edges    []Edge `yaml:"edges" validate:"dive"`
	Start    string `yaml:"start,omitempty"`
	End      string `yaml:"end,omitempty"`
}

// Node is a named, positioned node.
type Node struct {
	Name string  `yaml:"name" validate:"required"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Edge connects two named nodes.
type Edge struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Weight float64 `yaml:"weight"`
}

// Target is what a scene is applied to. *core.Graph and *session.Workspace
// both satisfy it.
type Target interface {
	builder.Target
	SetDirected(directed bool)
	SetStart(id string) error
	SetEnd(id string) error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Validate checks field constraints, name uniqueness and that every edge
// endpoint and selection refers to a declared or generated node.
func (s *Scene) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s violates %s", ErrInvalid, fe.Namespace(), fe.Tag())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	names := make(map[string]struct{})
	for _, name := range s.Shape.names() {
		names[name] = struct{}{}
	}
	for _, n := range s.Nodes {
		if _, dup := names[n.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
		}
		names[n.Name] = struct{}{}
	}

	known := func(name string) error {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}

		return nil
	}
	for i, e := range s.Edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edges[%d].weight is not finite", ErrInvalid, i)
		}
		for _, name := range []string{e.From, e.To} {
			if err := known(name); err != nil {
				return fmt.Errorf("edges[%d]: %w", i, err)
			}
		}
	}
	for _, name := range []string{s.Start, s.End} {
		if name == "" {
			continue
		}
		if err := known(name); err != nil {
			return fmt.Errorf("selection: %w", err)
		}
	}

	return nil
}

// Apply adds the scene to t: directedness first (when set), then generated
// nodes and edges, declared nodes, declared edges, and finally the selection.
// It returns the graph ID of every named node.
//
// The scene must have passed Validate; Apply re-checks it.
func (s *Scene) Apply(t Target) (map[string]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Directed != nil {
		t.SetDirected(*s.Directed)
	}

	ids := make(map[string]string, len(s.Nodes))
	if s.Shape != nil {
		generated, err := s.Shape.Build(t)
		if err != nil {
			return nil, err
		}
		for i, id := range generated {
			ids[s.Shape.name(i)] = id
		}
	}
	for _, n := range s.Nodes {
		ids[n.Name] = t.AddNode(n.X, n.Y)
	}
	for _, e := range s.Edges {
		t.AddEdge(ids[e.From], ids[e.To], e.Weight)
	}
	if s.Start != "" {
		if err := t.SetStart(ids[s.Start]); err != nil {
			return ids, err
		}
	}
	if s.End != "" {
		if err := t.SetEnd(ids[s.End]); err != nil {
			return ids, err
		}
	}

	return ids, nil
}
