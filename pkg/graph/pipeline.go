package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/usathyan/KG/pkg/graph/metrics"
)

var generationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "kg_generation_duration_seconds",
		Help: "Time spent generating knowledge graphs",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(generationDuration)
}

// Observer is the entity recognition capability: text in, typed entities out.
type Observer interface {
	Observe(ctx context.Context, text string) ([]Entity, error)
}

// Extractor emits relation records found in text.
type Extractor interface {
	Extract(text string) []Relation
}

// Normalizer rewrites relation records to canonical names.
type Normalizer interface {
	Match(records []Relation) []Relation
}

// Questioner derives competency questions from entities.
type Questioner interface {
	Generate(entities []Entity, max int) []string
}

// Options control a single generation run.
type Options struct {
	// MaxQuestions caps the number of competency questions.
	MaxQuestions int
	// Format selects the output serialization.
	Format Format
}

// DefaultOptions returns the standard generation options.
func DefaultOptions() Options {
	return Options{MaxQuestions: 3, Format: FormatTurtle}
}

// Result is the outcome of one generation run.
type Result struct {
	DocumentID  string     `json:"document_id"`
	Entities    []Entity   `json:"entities"`
	Relations   []Relation `json:"relations"`
	Questions   []string   `json:"questions"`
	TripleCount int        `json:"triple_count"`
	Serialized  string     `json:"-"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// Generator runs the full text-to-graph pipeline: observe entities, extract
// and normalize relations, derive questions, assemble and serialize the
// graph. Each run is independent; nothing is shared across invocations
// beyond the relation vocabulary held by the extractor.
type Generator struct {
	observer   Observer
	extractor  Extractor
	normalizer Normalizer
	questioner Questioner
	assembler  *Assembler
	logger     *logrus.Logger
}

// NewGenerator wires the pipeline components together.
func NewGenerator(observer Observer, extractor Extractor, normalizer Normalizer, questioner Questioner) *Generator {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Generator{
		observer:   observer,
		extractor:  extractor,
		normalizer: normalizer,
		questioner: questioner,
		assembler:  NewAssembler(),
		logger:     logger,
	}
}

// Generate processes one document's plain text end to end. An unsupported
// format is rejected before any work runs; any stage failure discards the
// partial graph and fails the whole operation.
func (g *Generator) Generate(ctx context.Context, text string, opts Options) (*Result, error) {
	writer, err := NewWriter(opts.Format)
	if err != nil {
		return nil, err
	}

	docID := uuid.New().String()
	log := g.logger.WithField("doc_id", docID)
	log.WithField("text_length", len(text)).Info("Generating knowledge graph")

	timer := prometheus.NewTimer(generationDuration.WithLabelValues("single"))
	defer timer.ObserveDuration()

	entities, err := g.observer.Observe(ctx, text)
	if err != nil {
		metrics.GenerationErrors.WithLabelValues("observe").Inc()
		return nil, errors.Wrap(err, "entity recognition failed")
	}

	relations := g.normalizer.Match(g.extractor.Extract(text))
	questions := g.questioner.Generate(entities, opts.MaxQuestions)

	graph, err := g.assembler.Build(entities, relations, questions)
	if err != nil {
		metrics.GenerationErrors.WithLabelValues("assemble").Inc()
		return nil, errors.Wrap(err, "graph assembly failed")
	}

	serialized, err := writer.Write(graph)
	if err != nil {
		metrics.GenerationErrors.WithLabelValues("serialize").Inc()
		return nil, errors.Wrap(err, "graph serialization failed")
	}

	metrics.GraphTripleCount.Set(float64(graph.Len()))
	for _, entity := range entities {
		metrics.GraphEntityCount.WithLabelValues(string(entity.Type)).Inc()
	}
	metrics.UpdateSystemMetrics()

	log.WithFields(logrus.Fields{
		"entities":  len(entities),
		"relations": len(relations),
		"questions": len(questions),
		"triples":   graph.Len(),
	}).Info("Knowledge graph generated")

	return &Result{
		DocumentID:  docID,
		Entities:    entities,
		Relations:   relations,
		Questions:   questions,
		TripleCount: graph.Len(),
		Serialized:  serialized,
		GeneratedAt: time.Now(),
	}, nil
}
