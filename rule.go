package deinflect

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledRule is a Rule after descriptor ingestion: symbolic condition
// lists are resolved to masks and the owning transform's name is attached
// for trail building.
type compiledRule struct {
	transform string
	kind      RuleKind

	from string
	to   string

	pattern *regexp.Regexp
	rewrite func(string) string

	conditionsIn  Flags
	conditionsOut Flags
}

// apply tries the rule against text and returns the rewritten antecedent
// form. It reports false when the pattern does not match or when the
// rewrite would produce an empty string.
func (r *compiledRule) apply(text string) (string, bool) {
	var out string
	switch r.kind {
	case RuleSuffix:
		if !strings.HasSuffix(text, r.from) {
			return "", false
		}
		out = text[:len(text)-len(r.from)] + r.to
	case RulePrefix:
		if !strings.HasPrefix(text, r.from) {
			return "", false
		}
		out = r.to + text[len(r.from):]
	case RuleOther:
		if !r.pattern.MatchString(text) {
			return "", false
		}
		out = r.rewrite(text)
	default:
		return "", false
	}
	if len(out) == 0 {
		return "", false
	}
	return out, true
}

// compileRules resolves the condition key lists of every rule of a
// transform against the descriptor's flag mapping.
func compileRules(t Transform, flags map[string]Flags) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(t.Rules))
	for i, rule := range t.Rules {
		switch rule.Kind {
		case RuleSuffix, RulePrefix:
		case RuleOther:
			if rule.IsInflected == nil || rule.Deinflect == nil {
				return nil, fmt.Errorf("transform %q rule %d: pattern rule needs IsInflected and Deinflect", t.Name, i)
			}
		default:
			return nil, fmt.Errorf("transform %q rule %d: unknown rule kind %d", t.Name, i, rule.Kind)
		}

		in, err := resolveConditionList(rule.ConditionsIn, flags)
		if err != nil {
			return nil, fmt.Errorf("transform %q rule %d conditionsIn: %w", t.Name, i, err)
		}
		out, err := resolveConditionList(rule.ConditionsOut, flags)
		if err != nil {
			return nil, fmt.Errorf("transform %q rule %d conditionsOut: %w", t.Name, i, err)
		}

		compiled = append(compiled, compiledRule{
			transform:     t.Name,
			kind:          rule.Kind,
			from:          rule.From,
			to:            rule.To,
			pattern:       rule.IsInflected,
			rewrite:       rule.Deinflect,
			conditionsIn:  in,
			conditionsOut: out,
		})
	}
	return compiled, nil
}
