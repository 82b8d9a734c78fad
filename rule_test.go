package deinflect

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiledRuleApplySuffix(t *testing.T) {
	r := compiledRule{transform: "plural", kind: RuleSuffix, from: "s", to: ""}

	got, ok := r.apply("cats")
	require.True(t, ok)
	assert.Equal(t, "cat", got)

	_, ok = r.apply("dog")
	assert.False(t, ok, "suffix absent")

	_, ok = r.apply("s")
	assert.False(t, ok, "rewrite emptying the form is rejected")
}

func TestCompiledRuleApplySuffixLengthens(t *testing.T) {
	// Deinflection may grow the form: -é back to the infinitive -ar.
	r := compiledRule{transform: "preterite", kind: RuleSuffix, from: "é", to: "ar"}
	got, ok := r.apply("hablé")
	require.True(t, ok)
	assert.Equal(t, "hablar", got)
}

func TestCompiledRuleApplyPrefix(t *testing.T) {
	r := compiledRule{transform: "lenited", kind: RulePrefix, from: "ch", to: "c"}

	got, ok := r.apply("chat")
	require.True(t, ok)
	assert.Equal(t, "cat", got)

	_, ok = r.apply("cat")
	assert.False(t, ok)

	strip := compiledRule{transform: "nasalized", kind: RulePrefix, from: "n-", to: ""}
	_, ok = strip.apply("n-")
	assert.False(t, ok, "rewrite emptying the form is rejected")
}

func TestCompiledRuleApplyPattern(t *testing.T) {
	re := regexp.MustCompile(`(?:nn|pp|tt)ing$`)
	r := compiledRule{
		transform: "ing",
		kind:      RuleOther,
		pattern:   re,
		rewrite:   func(s string) string { return s[:len(s)-4] },
	}

	got, ok := r.apply("running")
	require.True(t, ok)
	assert.Equal(t, "run", got)

	_, ok = r.apply("singing")
	assert.False(t, ok)
}

func TestCompileRulesResolvesConditions(t *testing.T) {
	flags := map[string]Flags{"v": 0b11, "vw": 0b01, "n": 0b100}
	tr := Transform{
		Name: "past",
		Rules: []Rule{
			SuffixRule("ed", "", []string{"v"}, []string{"vw"}),
			SuffixRule("s", "", nil, []string{"n"}),
		},
	}
	compiled, err := compileRules(tr, flags)
	require.NoError(t, err)
	require.Len(t, compiled, 2)
	assert.Equal(t, "past", compiled[0].transform)
	assert.Equal(t, Flags(0b11), compiled[0].conditionsIn)
	assert.Equal(t, Flags(0b01), compiled[0].conditionsOut)
	assert.Equal(t, Flags(0), compiled[1].conditionsIn, "empty list means unconstrained")
	assert.Equal(t, Flags(0b100), compiled[1].conditionsOut)
}

func TestCompileRulesUnknownKey(t *testing.T) {
	flags := map[string]Flags{"v": 1}
	tr := Transform{
		Name:  "past",
		Rules: []Rule{SuffixRule("ed", "", []string{"nope"}, nil)},
	}
	_, err := compileRules(tr, flags)
	require.ErrorIs(t, err, ErrUnknownCondition)
	assert.Contains(t, err.Error(), `"past"`)
}

func TestCompileRulesInvalidPatternRule(t *testing.T) {
	tr := Transform{
		Name:  "broken",
		Rules: []Rule{{Kind: RuleOther}},
	}
	_, err := compileRules(tr, map[string]Flags{})
	require.Error(t, err)
}
