package deinflect

import "regexp"

// Condition describes one grammatical category of a language.
// A condition with SubConditions is a group: its bitmask is the union of
// the masks of the listed sub-conditions. A condition without
// SubConditions is a leaf and is assigned one fresh bit at load time.
type Condition struct {
	// Key is the short symbolic identifier (e.g. "v", "vw", "n").
	Key string `yaml:"key"`
	// Name is the human-readable display name.
	Name string `yaml:"name"`
	// IsDictionaryForm marks conditions that denote a lemma form.
	IsDictionaryForm bool `yaml:"isDictionaryForm,omitempty"`
	// SubConditions lists the keys whose union defines this condition.
	SubConditions []string `yaml:"subConditions,omitempty"`
	// PartsOfSpeech lists external part-of-speech tags this condition
	// applies to, collected into the engine's part-of-speech lookup.
	PartsOfSpeech []string `yaml:"partsOfSpeech,omitempty"`
}

// RuleKind selects the variant of a Rule.
type RuleKind int

const (
	// RuleSuffix replaces a literal suffix of the form.
	RuleSuffix RuleKind = iota + 1
	// RulePrefix replaces a literal prefix of the form.
	RulePrefix
	// RuleOther is an arbitrary pattern match with a custom rewrite,
	// for phenomena that do not fit simple affix substitution.
	RuleOther
)

// Rule is one reversible rewrite. It is written in the deinflection
// direction: From is matched against the current (surface) form and To is
// what replaces it in the hypothesized pre-transformation form.
//
// ConditionsIn are the condition keys the current form must satisfy
// (empty = unconstrained); ConditionsOut are the keys asserted of the
// rewritten form.
type Rule struct {
	Kind RuleKind

	// From and To are the matched and replacement literals for
	// RuleSuffix and RulePrefix.
	From string
	To   string

	// IsInflected and Deinflect carry the RuleOther variant: the form
	// must match IsInflected, and Deinflect produces the antecedent.
	IsInflected *regexp.Regexp
	Deinflect   func(string) string

	ConditionsIn  []string
	ConditionsOut []string
}

// SuffixRule builds a literal-suffix rule: a form ending in from is
// rewritten to end in to instead.
func SuffixRule(from, to string, conditionsIn, conditionsOut []string) Rule {
	return Rule{
		Kind:          RuleSuffix,
		From:          from,
		To:            to,
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// PrefixRule builds a literal-prefix rule: a form starting with from is
// rewritten to start with to instead.
func PrefixRule(from, to string, conditionsIn, conditionsOut []string) Rule {
	return Rule{
		Kind:          RulePrefix,
		From:          from,
		To:            to,
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// PatternRule builds an arbitrary rule: a form matching isInflected is
// rewritten by deinflect.
func PatternRule(isInflected *regexp.Regexp, deinflect func(string) string, conditionsIn, conditionsOut []string) Rule {
	return Rule{
		Kind:          RuleOther,
		IsInflected:   isInflected,
		Deinflect:     deinflect,
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// Transform is a named grammatical phenomenon implemented as an ordered
// list of rules. All rules of all loaded transforms are tried at every
// step of the search, so order affects result order, not correctness.
type Transform struct {
	Name        string
	Description string
	Rules       []Rule
}

// Descriptor bundles everything a language module supplies to the engine:
// a language tag, its condition categories and its transforms.
//
// Conditions are an ordered slice rather than a map so that flag
// compilation is deterministic and repeatable for a given descriptor.
// Forward references between conditions are allowed; the reference graph
// must be acyclic.
type Descriptor struct {
	Language   string      `yaml:"language"`
	Conditions []Condition `yaml:"conditions"`
	Transforms []Transform `yaml:"-"`
}
