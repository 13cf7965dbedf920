package graph

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Assembler converts entities, normalized relations and competency
// questions into a deduplicated RDF graph.
type Assembler struct {
	logger *logrus.Logger
}

// NewAssembler creates a new graph assembler.
func NewAssembler() *Assembler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Assembler{logger: logger}
}

// Build constructs the graph for one document. Construction order is fixed:
// the document resource first, then one block per entity, per relation and
// per question, each in input order. Every input element contributes its
// triples; an unmapped entity type fails the whole build.
//
// Entity identifiers are keyed by sanitized display text, so two distinct
// entities whose text sanitizes identically collapse into one node. That is
// a documented property of the identity scheme, not an accident.
func (a *Assembler) Build(entities []Entity, relations []Relation, questions []string) (*Graph, error) {
	g := NewGraph()

	docIRI := IRI(NamespaceEntity + "Document")
	g.Add(Triple{Subject: docIRI, Predicate: IRIRDFType, Object: IRI(NamespaceSchema + "CreativeWork")})
	g.Add(Triple{Subject: docIRI, Predicate: IRI(NamespaceRDFS + "label"), Object: Literal{Value: "Source Document", Lang: "en"}})

	for _, entity := range entities {
		term, ok := SchemaTerm(entity.Type)
		if !ok {
			return nil, errors.Errorf("unmapped entity type %q for %q", entity.Type, entity.Text)
		}

		entityIRI := IRI(NamespaceEntity + SanitizeURIComponent(entity.Text))
		g.Add(Triple{Subject: entityIRI, Predicate: IRIRDFType, Object: IRI(NamespaceSchema + term)})
		g.Add(Triple{Subject: entityIRI, Predicate: IRI(NamespaceRDFS + "label"), Object: Literal{Value: entity.Text, Lang: "en"}})
		g.Add(Triple{Subject: docIRI, Predicate: IRI(NamespaceSchema + "mentions"), Object: entityIRI})
	}

	for _, relation := range relations {
		relationIRI := IRI(NamespaceProperty + SanitizeURIComponent(relation.Name))
		g.Add(Triple{Subject: relationIRI, Predicate: IRIRDFType, Object: IRI(NamespaceSchema + "Property")})
		g.Add(Triple{Subject: relationIRI, Predicate: IRI(NamespaceRDFS + "label"), Object: Literal{Value: relation.Name}})
		g.Add(Triple{Subject: relationIRI, Predicate: IRI(NamespaceRDFS + "comment"), Object: Literal{Value: relation.Description}})
	}

	for idx, question := range questions {
		questionIRI := IRI(NamespaceQuestion + strconv.Itoa(idx+1))
		g.Add(Triple{Subject: questionIRI, Predicate: IRIRDFType, Object: IRI(NamespaceSchema + "Question")})
		g.Add(Triple{Subject: questionIRI, Predicate: IRI(NamespaceRDFS + "label"), Object: Literal{Value: question, Lang: "en"}})
		g.Add(Triple{Subject: docIRI, Predicate: IRI(NamespaceSchema + "hasPart"), Object: questionIRI})
	}

	a.logger.WithFields(logrus.Fields{
		"entities":  len(entities),
		"relations": len(relations),
		"questions": len(questions),
		"triples":   g.Len(),
	}).Info("Graph assembled")

	return g, nil
}
