package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var (
	// ErrUnknownFormat is returned by NewFormatter for unsupported format
	// names.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrUnsupportedResult is returned when a formatter receives a result
	// shape it does not know about.
	ErrUnsupportedResult = errors.New("unsupported result type")
)

// Formatter renders a Result.
type Formatter interface {
	Format(Result) ([]byte, error)
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case FormatText:
		return textFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatTOML:
		return tomlFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

type textFormatter struct{}

func (textFormatter) Format(res Result) ([]byte, error) {
	var buf bytes.Buffer

	s := res.RunSummary()
	fmt.Fprintf(&buf, "super steps: %d, converged: %t\n", s.SuperSteps, s.Converged)

	labels := make([]string, 0, len(s.Sizes))
	for label := range s.Sizes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		fmt.Fprintf(&buf, "partition %s: %d vertices\n", label, s.Sizes[label])
	}

	switch r := res.(type) {
	case Assignments:
		for _, e := range r.Entries {
			fmt.Fprintf(&buf, "%s\t%s\t%d\n", e.VertexID, e.Key, e.Label)
		}
	case AnonymizedAssignments:
		for _, e := range r.Entries {
			fmt.Fprintf(&buf, "%s\t%d\n", e.Vertex, e.Label)
		}
	default:
		return nil, fmt.Errorf("text: %w: %T", ErrUnsupportedResult, res)
	}

	return buf.Bytes(), nil
}

type jsonFormatter struct{}

func (jsonFormatter) Format(res Result) ([]byte, error) {
	switch r := res.(type) {
	case Assignments:
		return json.Marshal(r)
	case AnonymizedAssignments:
		return json.Marshal(r)
	default:
		return nil, fmt.Errorf("json: %w: %T", ErrUnsupportedResult, res)
	}
}

type tomlFormatter struct{}

func (tomlFormatter) Format(res Result) ([]byte, error) {
	switch r := res.(type) {
	case Assignments:
		return toml.Marshal(r)
	case AnonymizedAssignments:
		return toml.Marshal(r)
	default:
		return nil, fmt.Errorf("toml: %w: %T", ErrUnsupportedResult, res)
	}
}
