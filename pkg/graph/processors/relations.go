package processors

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/usathyan/KG/pkg/graph"
)

// standardRelations is the immutable built-in relation vocabulary, keyed by
// lowercased relation name.
func standardRelations() map[string]graph.RelationDetails {
	return map[string]graph.RelationDetails{
		"date of birth": {
			Description: "The date on which the subject was born",
			Domain:      "Person",
			Range:       "Date",
		},
		"date of death": {
			Description: "The date on which the subject died",
			Domain:      "Person",
			Range:       "Date",
		},
		"occupation": {
			Description: "The occupation of a person",
			Domain:      "Person",
			Range:       "Occupation",
		},
		"country of citizenship": {
			Description: "The country of which the subject is a citizen",
			Domain:      "Person",
			Range:       "Country",
		},
		"notable work": {
			Description: "The most notable work of a person",
			Domain:      "Person",
			Range:       "Creative Work",
		},
	}
}

// RelationExtractor scans text for known relation phrases and emits one
// record per matched relation name. The vocabulary is an immutable base
// table merged with an explicit override table; overrides win on key
// collision. Mutation and reads are synchronized, so a single extractor
// may be shared across goroutines.
type RelationExtractor struct {
	standard map[string]graph.RelationDetails
	custom   map[string]graph.RelationDetails
	mutex    sync.RWMutex
	logger   *logrus.Logger
}

// NewRelationExtractor creates an extractor with the built-in vocabulary.
// When configPath is non-empty the custom override table is loaded from it;
// a missing or malformed file is reported and leaves the overrides empty,
// it never fails construction.
func NewRelationExtractor(configPath string) *RelationExtractor {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	e := &RelationExtractor{
		standard: standardRelations(),
		custom:   make(map[string]graph.RelationDetails),
		logger:   logger,
	}

	if configPath != "" {
		if err := e.loadCustomRelations(configPath); err != nil {
			logger.WithError(err).WithField("path", configPath).Warn("Falling back to built-in relations")
		}
	}

	return e
}

func (e *RelationExtractor) loadCustomRelations(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading custom relations")
	}

	loaded := make(map[string]graph.RelationDetails)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return errors.Wrap(err, "parsing custom relations")
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	for name, details := range loaded {
		e.custom[normalizeKey(name)] = withDefaults(details)
	}
	return nil
}

// Extract returns one record per known relation name occurring as a
// case-insensitive substring of the text. No match yields an empty slice.
// Records come out in sorted key order so repeated runs are identical.
func (e *RelationExtractor) Extract(text string) []graph.Relation {
	lowered := strings.ToLower(text)
	merged := e.mergedView()

	keys := make([]string, 0, len(merged))
	for name := range merged {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	relations := make([]graph.Relation, 0)
	for _, name := range keys {
		if !strings.Contains(lowered, name) {
			continue
		}
		details := merged[name]
		relations = append(relations, graph.Relation{
			Name:        name,
			Description: details.Description,
			Domain:      details.Domain,
			Range:       details.Range,
		})
	}

	return relations
}

// AddRelation inserts or overwrites an entry in the override table. The
// entry is visible to subsequent Extract calls; last write wins.
func (e *RelationExtractor) AddRelation(record graph.Relation) {
	key := normalizeKey(record.Name)
	if key == "" {
		return
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.custom[key] = withDefaults(graph.RelationDetails{
		Description: record.Description,
		Domain:      record.Domain,
		Range:       record.Range,
	})
}

// SaveRelations persists the override table as JSON. Failures are reported
// to the caller and logged; extraction is unaffected.
func (e *RelationExtractor) SaveRelations(path string) error {
	e.mutex.RLock()
	custom := make(map[string]graph.RelationDetails, len(e.custom))
	for name, details := range e.custom {
		custom[name] = details
	}
	e.mutex.RUnlock()

	data, err := json.MarshalIndent(custom, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding custom relations")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		e.logger.WithError(err).WithField("path", path).Error("Failed to save custom relations")
		return errors.Wrap(err, "writing custom relations")
	}

	e.logger.WithField("path", path).Info("Custom relations saved")
	return nil
}

// mergedView snapshots the vocabulary with overrides applied.
func (e *RelationExtractor) mergedView() map[string]graph.RelationDetails {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	merged := make(map[string]graph.RelationDetails, len(e.standard)+len(e.custom))
	for name, details := range e.standard {
		merged[name] = details
	}
	for name, details := range e.custom {
		merged[name] = details
	}
	return merged
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func withDefaults(details graph.RelationDetails) graph.RelationDetails {
	if details.Domain == "" {
		details.Domain = graph.UnknownType
	}
	if details.Range == "" {
		details.Range = graph.UnknownType
	}
	return details
}
