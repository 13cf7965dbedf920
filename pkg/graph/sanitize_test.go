package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usathyan/KG/pkg/graph"
)

func TestSanitizeURIComponent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces", "Douglas Adams", "Douglas_Adams"},
		{"percent", "20%", "20_"},
		{"apostrophe", "O'Brien", "O_Brien"},
		{"consecutive specials collapse", "a  b!!c", "a_b_c"},
		{"existing underscores collapse", "a__b", "a_b"},
		{"only specials", "%/ ", "_"},
		{"empty", "", ""},
		{"already clean", "dateOfBirth", "dateOfBirth"},
		{"non-ascii", "café", "caf_"},
		{"slash and space", "a/b c", "a_b_c"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, graph.SanitizeURIComponent(tc.input))
		})
	}
}

func TestSanitizeURIComponentIdempotent(t *testing.T) {
	inputs := []string{
		"Douglas Adams", "20%", "O'Brien", "a__b", "", "___", "café",
		"notable work", "100% /guaranteed/", "\t\n", "a-b.c",
	}

	for _, input := range inputs {
		once := graph.SanitizeURIComponent(input)
		twice := graph.SanitizeURIComponent(once)
		assert.Equal(t, once, twice, "sanitize should be idempotent for %q", input)
	}
}

func TestSanitizeURIComponentURISafe(t *testing.T) {
	out := graph.SanitizeURIComponent("20% of /all things\tweird")

	assert.False(t, strings.ContainsAny(out, "%/ \t\n"), "sanitized value %q must contain no reserved characters", out)
}
