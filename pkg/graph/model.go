package graph

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Well-known namespaces used by the generated graph.
const (
	NamespaceEntity   = "http://www.wikidata.org/entity/"
	NamespaceProperty = "http://www.wikidata.org/prop/direct/"
	NamespaceQuestion = "http://www.wikidata.org/entity/question/"
	NamespaceSchema   = "http://schema.org/"
	NamespaceRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceXSD      = "http://www.w3.org/2001/XMLSchema#"
)

// IRIRDFType is the rdf:type predicate.
const IRIRDFType = IRI(NamespaceRDF + "type")

// IRI is a resource identifier used as a triple subject, predicate or object.
type IRI string

// Literal is a string-valued triple object, optionally tagged with a
// language or a datatype IRI.
type Literal struct {
	Value    string
	Lang     string
	Datatype string
}

// Term is either an IRI or a Literal.
type Term interface {
	isTerm()
}

func (IRI) isTerm()     {}
func (Literal) isTerm() {}

// Triple is a single subject-predicate-object statement.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

// Prefix binds a short prefix name to a namespace IRI.
type Prefix struct {
	Name string
	IRI  string
}

// Graph is an ordered collection of namespace bindings plus a set of
// triples. Insertion order is preserved for deterministic serialization;
// duplicate triples are eliminated.
type Graph struct {
	prefixes []Prefix
	triples  []Triple
	seen     mapset.Set[Triple]
}

// NewGraph creates an empty graph with the default namespace bindings.
func NewGraph() *Graph {
	return &Graph{
		prefixes: []Prefix{
			{Name: "wd", IRI: NamespaceEntity},
			{Name: "wdt", IRI: NamespaceProperty},
			{Name: "cq", IRI: NamespaceQuestion},
			{Name: "schema", IRI: NamespaceSchema},
			{Name: "rdfs", IRI: NamespaceRDFS},
			{Name: "rdf", IRI: NamespaceRDF},
			{Name: "xsd", IRI: NamespaceXSD},
		},
		triples: make([]Triple, 0),
		seen:    mapset.NewThreadUnsafeSet[Triple](),
	}
}

// Add appends a triple unless an identical one is already present.
func (g *Graph) Add(t Triple) {
	if g.seen.Contains(t) {
		return
	}
	g.seen.Add(t)
	g.triples = append(g.triples, t)
}

// Contains reports whether the graph holds the given triple.
func (g *Graph) Contains(t Triple) bool {
	return g.seen.Contains(t)
}

// Triples returns the triples in insertion order.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Prefixes returns the namespace bindings in declaration order.
func (g *Graph) Prefixes() []Prefix {
	return g.prefixes
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int {
	return len(g.triples)
}
