package graph_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usathyan/KG/pkg/graph"
)

func TestNewWriterRejectsUnknownFormat(t *testing.T) {
	_, err := graph.NewWriter(graph.Format("jsonld"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrUnsupportedFormat))

	_, err = graph.NewWriter(graph.FormatTurtle)
	assert.NoError(t, err)
}

func TestTurtleWriterPrefixBlock(t *testing.T) {
	w, err := graph.NewWriter(graph.FormatTurtle)
	require.NoError(t, err)

	out, err := w.Write(graph.NewGraph())
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix wd: <http://www.wikidata.org/entity/> .")
	assert.Contains(t, out, "@prefix wdt: <http://www.wikidata.org/prop/direct/> .")
	assert.Contains(t, out, "@prefix cq: <http://www.wikidata.org/entity/question/> .")
	assert.Contains(t, out, "@prefix schema: <http://schema.org/> .")
	assert.Contains(t, out, "@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .")
	assert.Contains(t, out, "@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .")
	assert.Contains(t, out, "@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .")
}

func TestTurtleWriterStatements(t *testing.T) {
	g := graph.NewGraph()
	g.Add(graph.Triple{
		Subject:   graph.IRI(graph.NamespaceEntity + "Douglas_Adams"),
		Predicate: graph.IRIRDFType,
		Object:    graph.IRI(graph.NamespaceSchema + "Person"),
	})
	g.Add(graph.Triple{
		Subject:   graph.IRI(graph.NamespaceEntity + "Douglas_Adams"),
		Predicate: graph.IRI(graph.NamespaceRDFS + "label"),
		Object:    graph.Literal{Value: "Douglas Adams", Lang: "en"},
	})
	g.Add(graph.Triple{
		Subject:   graph.IRI(graph.NamespaceQuestion + "1"),
		Predicate: graph.IRI(graph.NamespaceRDFS + "label"),
		Object:    graph.Literal{Value: "Who was Douglas Adams?", Lang: "en"},
	})

	w, err := graph.NewWriter(graph.FormatTurtle)
	require.NoError(t, err)

	out, err := w.Write(g)
	require.NoError(t, err)

	assert.Contains(t, out, "wd:Douglas_Adams a schema:Person .")
	assert.Contains(t, out, `wd:Douglas_Adams rdfs:label "Douglas Adams"@en .`)
	assert.Contains(t, out, `cq:1 rdfs:label "Who was Douglas Adams?"@en .`)
}

func TestTurtleWriterEscapesLiterals(t *testing.T) {
	g := graph.NewGraph()
	g.Add(graph.Triple{
		Subject:   graph.IRI(graph.NamespaceEntity + "X"),
		Predicate: graph.IRI(graph.NamespaceRDFS + "comment"),
		Object:    graph.Literal{Value: "line one\nsaid \"two\""},
	})

	w, err := graph.NewWriter(graph.FormatTurtle)
	require.NoError(t, err)

	out, err := w.Write(g)
	require.NoError(t, err)

	assert.Contains(t, out, `"line one\nsaid \"two\""`)
}

func TestTurtleWriterFallsBackToFullIRI(t *testing.T) {
	g := graph.NewGraph()
	g.Add(graph.Triple{
		Subject:   graph.IRI("http://example.org/thing"),
		Predicate: graph.IRIRDFType,
		Object:    graph.IRI(graph.NamespaceSchema + "Thing"),
	})

	w, err := graph.NewWriter(graph.FormatTurtle)
	require.NoError(t, err)

	out, err := w.Write(g)
	require.NoError(t, err)

	assert.Contains(t, out, "<http://example.org/thing> a schema:Thing .")
}

func TestTurtleWriterDeterministic(t *testing.T) {
	build := func() string {
		g := graph.NewGraph()
		g.Add(graph.Triple{Subject: graph.IRI(graph.NamespaceEntity + "A"), Predicate: graph.IRIRDFType, Object: graph.IRI(graph.NamespaceSchema + "Person")})
		g.Add(graph.Triple{Subject: graph.IRI(graph.NamespaceEntity + "B"), Predicate: graph.IRIRDFType, Object: graph.IRI(graph.NamespaceSchema + "Place")})

		w, err := graph.NewWriter(graph.FormatTurtle)
		require.NoError(t, err)
		out, err := w.Write(g)
		require.NoError(t, err)
		return out
	}

	first := build()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
	assert.True(t, strings.HasSuffix(first, ".\n") || strings.HasSuffix(first, " .\n"))
}
