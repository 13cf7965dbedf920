package processors

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/usathyan/KG/pkg/graph"
)

// questionableTypes are the entity categories worth asking about.
var questionableTypes = mapset.NewThreadUnsafeSet(
	graph.EntityTypePerson,
	graph.EntityTypeOrganization,
	graph.EntityTypeGPE,
	graph.EntityTypeDate,
)

// QuestionGenerator derives competency questions from observed entities.
type QuestionGenerator struct{}

// NewQuestionGenerator creates a new question generator.
func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{}
}

// Generate emits one question per qualifying entity, in entity order,
// capped at max. A non-positive max yields no questions.
func (q *QuestionGenerator) Generate(entities []graph.Entity, max int) []string {
	questions := make([]string, 0)

	for _, entity := range entities {
		if len(questions) >= max {
			break
		}
		if !questionableTypes.Contains(entity.Type) {
			continue
		}
		questions = append(questions, fmt.Sprintf("What is the %s of %s?",
			strings.ToLower(string(entity.Type)), entity.Text))
	}

	return questions
}
