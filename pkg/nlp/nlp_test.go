package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "water heater installation", NormalizeText("  Water-heater   INSTALLATION!"))
	assert.Equal(t, "", NormalizeText(" ... "))
}

func TestSkillVariants(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"plumber"}, SkillVariants("plumber")[:1])
	assert.Contains(t, SkillVariants("Plumber"), "plumbing")
	assert.ElementsMatch(t, []string{"house wiring", "house wire"}, SkillVariants("house wiring"))
	assert.Empty(t, SkillVariants("  "))
}

func TestMatchesAnySkill(t *testing.T) {
	t.Parallel()
	skills := []string{"Pipe fitting", "Drainage", "Water heater installation"}

	tests := []struct {
		query string
		want  bool
	}{
		{"pipe", true},
		{"PIPE FITTING", true},
		{"heater installation", true},
		{"pipes", false},
		{"fitting pipe", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesAnySkill(skills, tt.query), tt.query)
	}
	assert.True(t, MatchesAnySkill([]string{"Wiring"}, "wire"))
}
