package processors

import (
	"context"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/usathyan/KG/pkg/graph"
)

var (
	entitiesObserved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ner_entities_observed_total",
			Help: "Number of named entities observed",
		},
		[]string{"entity_type"},
	)

	entitiesUnmapped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ner_entities_unmapped_total",
			Help: "Number of entities dropped for carrying an unmapped type",
		},
	)
)

func init() {
	prometheus.MustRegister(entitiesObserved)
	prometheus.MustRegister(entitiesUnmapped)
}

// EntityObserver wraps the NER capability and maps raw text to a sequence
// of typed entities.
type EntityObserver struct {
	logger *logrus.Logger
}

// NewEntityObserver creates a new entity observer.
func NewEntityObserver() *EntityObserver {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &EntityObserver{logger: logger}
}

// Observe runs named entity recognition over the text and returns the
// entities in document order. Labels with no output-vocabulary mapping are
// rejected at this boundary: they are logged and dropped rather than
// propagated as arbitrary strings into the graph namespace.
func (o *EntityObserver) Observe(ctx context.Context, text string) ([]graph.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, errors.Wrap(err, "creating prose document")
	}

	entities := make([]graph.Entity, 0)
	for _, ent := range doc.Entities() {
		entityType := graph.EntityType(ent.Label)
		if _, ok := graph.SchemaTerm(entityType); !ok {
			entitiesUnmapped.Inc()
			o.logger.WithFields(logrus.Fields{
				"text":  ent.Text,
				"label": ent.Label,
			}).Warn("Dropping entity with unmapped type")
			continue
		}

		entities = append(entities, graph.Entity{Text: ent.Text, Type: entityType})
		entitiesObserved.WithLabelValues(ent.Label).Inc()
	}

	return entities, nil
}
