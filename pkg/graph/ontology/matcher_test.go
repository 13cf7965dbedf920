package ontology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usathyan/KG/pkg/graph"
	"github.com/usathyan/KG/pkg/graph/ontology"
)

func defaultMatcher() *ontology.Matcher {
	return ontology.NewMatcher(ontology.DefaultThreshold, ontology.DefaultGroups())
}

func TestSimilarReflexive(t *testing.T) {
	m := defaultMatcher()

	for _, s := range []string{"occupation", "date of birth", "", "20%", "  padded  "} {
		assert.True(t, m.Similar(s, s), "similar(%q, %q) must hold", s, s)
	}
}

func TestSimilarNormalizesBeforeComparing(t *testing.T) {
	m := defaultMatcher()

	assert.True(t, m.Similar("Occupation", "occupation"))
	assert.True(t, m.Similar("  occupation  ", "occupation"))
}

func TestSimilarGroupMembershipBeatsFuzzyRatio(t *testing.T) {
	m := defaultMatcher()

	// Character-level similarity of these is far below the threshold; they
	// match through the shared equivalence group.
	assert.True(t, m.Similar("born", "date of birth"))
	assert.True(t, m.Similar("died", "deathdate"))
	assert.True(t, m.Similar("nationality", "origin"))
	assert.True(t, m.Similar("BORN", " birthdate "))
}

func TestSimilarFuzzyThreshold(t *testing.T) {
	m := defaultMatcher()

	// ratio("occupation", "occupations") = 20/21, above the 0.8 threshold.
	assert.True(t, m.Similar("occupation", "occupations"))

	// No shared characters at all.
	assert.False(t, m.Similar("job", "car"))

	// Different groups never match through membership.
	assert.False(t, m.Similar("born", "died"))
}

func TestSimilarThresholdConfigurable(t *testing.T) {
	strict := ontology.NewMatcher(0.99, ontology.DefaultGroups())

	assert.False(t, strict.Similar("occupation", "occupations"))
	assert.True(t, strict.Similar("occupation", "occupation"))
}

func TestMatchRewritesToCanonicalNames(t *testing.T) {
	m := defaultMatcher()

	records := []graph.Relation{
		{Name: "born", Description: "d1"},
		{Name: "occupation", Description: "d2"},
		{Name: "job", Description: "d3"},
		{Name: "unheard of", Description: "d4"},
	}

	matched := m.Match(records)
	require.Len(t, matched, len(records), "output preserves cardinality")

	assert.Equal(t, "birth", matched[0].Name)
	assert.Equal(t, "occupation", matched[1].Name, "canonical names pass through unchanged")
	assert.Equal(t, "occupation", matched[2].Name)
	assert.Equal(t, "unheard of", matched[3].Name, "unknown names pass through unchanged")

	// Non-name fields are untouched.
	assert.Equal(t, "d1", matched[0].Description)

	// Input slice is not mutated.
	assert.Equal(t, "born", records[0].Name)
}

func TestMatchFirstGroupWinsOnAmbiguousVariant(t *testing.T) {
	groups := []ontology.Group{
		{Canonical: "alpha", Variants: []string{"shared", "a1"}},
		{Canonical: "beta", Variants: []string{"shared", "b1"}},
	}
	m := ontology.NewMatcher(ontology.DefaultThreshold, groups)

	matched := m.Match([]graph.Relation{{Name: "shared"}})
	assert.Equal(t, "alpha", matched[0].Name)
}

func TestMapProperties(t *testing.T) {
	m := defaultMatcher()

	mapping := m.MapProperties(
		[]string{"citizenship", "hobby"},
		[]string{"citizenships", "dateOfBirth"},
	)

	// ratio("citizenship", "citizenships") = 22/23, included.
	assert.Equal(t, "citizenships", mapping["citizenship"])
	// "hobby" is below the threshold against every target, omitted.
	_, found := mapping["hobby"]
	assert.False(t, found)
	assert.Len(t, mapping, 1)
}

func TestMapPropertiesTieBreaksOnFirstTarget(t *testing.T) {
	m := defaultMatcher()

	// Both targets score identically against the source.
	mapping := m.MapProperties([]string{"occupation"}, []string{"occupationx", "occupationy"})
	assert.Equal(t, "occupationx", mapping["occupation"])
}

func TestMapPropertiesEmptyInputs(t *testing.T) {
	m := defaultMatcher()

	assert.Empty(t, m.MapProperties(nil, []string{"a"}))
	assert.Empty(t, m.MapProperties([]string{"a"}, nil))
}

func TestSimilarPairs(t *testing.T) {
	m := defaultMatcher()

	pairs := m.SimilarPairs([]string{"born", "job"}, []string{"birthdate", "profession"})
	assert.Contains(t, pairs, [2]string{"born", "birthdate"})
	assert.Contains(t, pairs, [2]string{"job", "profession"})
}

func TestLoadGroups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groups.json")
	content := `[
		{"canonical": "birth", "variants": ["born", "birthdate"]},
		{"canonical": "work", "variants": ["creation"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	groups, err := ontology.LoadGroups(path)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "birth", groups[0].Canonical)
	assert.Equal(t, []string{"creation"}, groups[1].Variants)
}

func TestLoadGroupsErrors(t *testing.T) {
	_, err := ontology.LoadGroups(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = ontology.LoadGroups(bad)
	assert.Error(t, err)
}
