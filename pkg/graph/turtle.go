package graph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Format specifies the output serialization format.
type Format string

// FormatTurtle produces Turtle (.ttl) output. It is the only format
// implemented today; additional formats plug in through Writer.
const FormatTurtle Format = "turtle"

// ErrUnsupportedFormat is returned when a serialization format other than
// the supported ones is requested.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Writer serializes a graph to a textual exchange format.
type Writer interface {
	Write(g *Graph) (string, error)
}

// NewWriter returns the writer for the requested format.
func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatTurtle:
		return &turtleWriter{}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

type turtleWriter struct{}

// Write serializes the graph as Turtle: the prefix block in declaration
// order, a blank line, then one statement per triple in insertion order.
func (w *turtleWriter) Write(g *Graph) (string, error) {
	var sb strings.Builder

	for _, p := range g.Prefixes() {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", p.Name, p.IRI))
	}
	sb.WriteString("\n")

	for _, t := range g.Triples() {
		obj, err := w.formatTerm(g, t.Object)
		if err != nil {
			return "", err
		}
		pred := w.formatPredicate(g, t.Predicate)
		sb.WriteString(fmt.Sprintf("%s %s %s .\n", w.formatIRI(g, t.Subject), pred, obj))
	}

	return sb.String(), nil
}

func (w *turtleWriter) formatPredicate(g *Graph, p IRI) string {
	if p == IRIRDFType {
		return "a"
	}
	return w.formatIRI(g, p)
}

// formatIRI emits a prefixed name when the IRI falls under a bound
// namespace and the local part is safe, a full IRI reference otherwise.
func (w *turtleWriter) formatIRI(g *Graph, iri IRI) string {
	s := string(iri)
	best := Prefix{}
	for _, p := range g.Prefixes() {
		if strings.HasPrefix(s, p.IRI) && len(p.IRI) > len(best.IRI) {
			best = p
		}
	}
	if best.IRI != "" {
		local := s[len(best.IRI):]
		if isSafeLocalName(local) {
			return best.Name + ":" + local
		}
	}
	return "<" + s + ">"
}

func (w *turtleWriter) formatTerm(g *Graph, term Term) (string, error) {
	switch v := term.(type) {
	case IRI:
		return w.formatIRI(g, v), nil
	case Literal:
		s := `"` + escapeLiteral(v.Value) + `"`
		if v.Lang != "" {
			return s + "@" + v.Lang, nil
		}
		if v.Datatype != "" {
			return s + "^^" + w.formatIRI(g, IRI(v.Datatype)), nil
		}
		return s, nil
	default:
		return "", errors.Errorf("unknown term type %T", term)
	}
}

// isSafeLocalName accepts local names made of alphanumerics and
// underscores, the alphabet produced by SanitizeURIComponent.
func isSafeLocalName(local string) bool {
	if local == "" {
		return false
	}
	for i := 0; i < len(local); i++ {
		c := local[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' {
			continue
		}
		return false
	}
	return true
}

func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
