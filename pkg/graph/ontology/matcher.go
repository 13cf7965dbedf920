// Package ontology normalizes relation names against a small canonical
// vocabulary using exact lookup, equivalence groups and fuzzy string
// similarity.
package ontology

import (
	"encoding/json"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/usathyan/KG/pkg/graph"
)

// DefaultThreshold is the minimum similarity ratio for two relation names
// to be considered equivalent when neither exact nor group matching hits.
const DefaultThreshold = 0.8

// Group maps a canonical relation name to the surface variants considered
// identical to it. Groups are matched in declaration order: the first group
// containing a variant wins, which resolves ambiguous (overlapping) variant
// sets deterministically.
type Group struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

// DefaultGroups returns the built-in equivalence groups in their canonical
// matching order.
func DefaultGroups() []Group {
	return []Group{
		{Canonical: "birth", Variants: []string{"born", "date of birth", "birthdate"}},
		{Canonical: "death", Variants: []string{"died", "date of death", "deathdate"}},
		{Canonical: "citizenship", Variants: []string{"nationality", "country of citizenship", "origin"}},
		{Canonical: "occupation", Variants: []string{"profession", "job", "career"}},
		{Canonical: "work", Variants: []string{"creation", "notable work", "achievement"}},
	}
}

// LoadGroups reads an ordered equivalence-group list from a JSON file.
// Callers are expected to fall back to DefaultGroups on error.
func LoadGroups(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading equivalence groups")
	}

	var groups []Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, errors.Wrap(err, "parsing equivalence groups")
	}
	return groups, nil
}

type compiledGroup struct {
	canonical string
	variants  mapset.Set[string]
}

// Matcher decides semantic equivalence between relation names and rewrites
// relation records to canonical form.
type Matcher struct {
	threshold float64
	groups    []compiledGroup
}

// NewMatcher creates a matcher with the given similarity threshold and
// ordered equivalence groups.
func NewMatcher(threshold float64, groups []Group) *Matcher {
	compiled := make([]compiledGroup, 0, len(groups))
	for _, g := range groups {
		compiled = append(compiled, compiledGroup{
			canonical: g.Canonical,
			variants:  mapset.NewThreadUnsafeSet(g.Variants...),
		})
	}
	return &Matcher{threshold: threshold, groups: compiled}
}

// Similar reports whether two relation names refer to the same property.
// The check is three-tiered, in strict precedence order: exact match after
// trim+lowercase, shared membership in one equivalence group, then fuzzy
// ratio against the threshold. Group members match even when their
// character-level ratio is far below the threshold.
func (m *Matcher) Similar(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))

	if na == nb {
		return true
	}

	for _, g := range m.groups {
		if g.variants.Contains(na) && g.variants.Contains(nb) {
			return true
		}
	}

	return ratio(na, nb) >= m.threshold
}

// Match rewrites each record whose name appears in an equivalence group to
// that group's canonical name. The first matching group wins; records
// matching no group pass through unchanged. Output preserves input order
// and cardinality.
func (m *Matcher) Match(records []graph.Relation) []graph.Relation {
	matched := make([]graph.Relation, 0, len(records))

	for _, record := range records {
		refined := record
		for _, g := range m.groups {
			if g.variants.Contains(record.Name) {
				refined.Name = g.canonical
				break
			}
		}
		matched = append(matched, refined)
	}

	return matched
}

// MapProperties maps each source property to the target with the highest
// fuzzy ratio, keeping the mapping only when that maximum reaches the
// threshold. Ties go to the first target in list order; sources with no
// qualifying target are omitted.
func (m *Matcher) MapProperties(sources, targets []string) map[string]string {
	mapping := make(map[string]string)

	for _, source := range sources {
		var best string
		bestRatio := 0.0

		for _, target := range targets {
			r := ratio(strings.ToLower(source), strings.ToLower(target))
			if r > bestRatio && r >= m.threshold {
				best = target
				bestRatio = r
			}
		}

		if best != "" {
			mapping[source] = best
		}
	}

	return mapping
}

// SimilarPairs returns every (property, reference) pair judged similar.
func (m *Matcher) SimilarPairs(properties, references []string) [][2]string {
	pairs := make([][2]string, 0)
	for _, p := range properties {
		for _, r := range references {
			if m.Similar(p, r) {
				pairs = append(pairs, [2]string{p, r})
			}
		}
	}
	return pairs
}

// ratio is the Gestalt longest-matching-blocks similarity in [0,1]:
// 2*M/T where M sums the matching blocks over both rune sequences and T is
// their combined length. Two empty strings have ratio 1.
func ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
