package storage

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"

	"github.com/usathyan/KG/pkg/graph"
)

// Neo4jStore pushes generation results into a Neo4j instance: one Document
// node, one Entity node per observed entity, MENTIONS edges, and one
// Property node per normalized relation.
type Neo4jStore struct {
	driver neo4j.Driver
	uri    string
	auth   neo4j.AuthToken
}

// NewNeo4jStore creates a new Neo4j store.
func NewNeo4jStore(uri, username, password string) (*Neo4jStore, error) {
	auth := neo4j.BasicAuth(username, password, "")
	driver, err := neo4j.NewDriver(uri, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %v", err)
	}

	return &Neo4jStore{
		driver: driver,
		uri:    uri,
		auth:   auth,
	}, nil
}

// Close releases the underlying driver.
func (s *Neo4jStore) Close() error {
	if s.driver != nil {
		return s.driver.Close()
	}
	return nil
}

// Store writes the result in a single write transaction.
func (s *Neo4jStore) Store(ctx context.Context, result *graph.Result) error {
	session := s.driver.NewSession(neo4j.SessionConfig{})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		_, err := tx.Run(`
			MERGE (d:Document {id: $id})
			SET d.generated_at = datetime()
		`, map[string]interface{}{"id": result.DocumentID})
		if err != nil {
			return nil, err
		}

		for _, entity := range result.Entities {
			_, err := tx.Run(`
				MATCH (d:Document {id: $docID})
				MERGE (e:Entity {label: $label, type: $type})
				MERGE (d)-[:MENTIONS]->(e)
			`, map[string]interface{}{
				"docID": result.DocumentID,
				"label": entity.Text,
				"type":  string(entity.Type),
			})
			if err != nil {
				return nil, err
			}
		}

		for _, relation := range result.Relations {
			_, err := tx.Run(`
				MERGE (p:Property {name: $name})
				SET p.description = $description,
				    p.domain = $domain,
				    p.range = $range
			`, map[string]interface{}{
				"name":        relation.Name,
				"description": relation.Description,
				"domain":      relation.Domain,
				"range":       relation.Range,
			})
			if err != nil {
				return nil, err
			}
		}

		for idx, question := range result.Questions {
			_, err := tx.Run(`
				MATCH (d:Document {id: $docID})
				MERGE (q:Question {index: $index, text: $text})
				MERGE (d)-[:HAS_PART]->(q)
			`, map[string]interface{}{
				"docID": result.DocumentID,
				"index": idx + 1,
				"text":  question,
			})
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})

	return err
}
