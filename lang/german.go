package lang

import (
	"regexp"
	"strings"

	"github.com/lexeme-tools/deinflect"
)

// rePastParticipleWeak matches the regular ge-…-t participle of weak
// verbs (gemacht, gekauft).
var rePastParticipleWeak = regexp.MustCompile(`^ge(\pL+)t$`)

// reSeparatedPrefix matches a finite verb followed by its detached
// separable particle, as selected from a clause like "er hört ... auf".
var reSeparatedPrefix = regexp.MustCompile(`^(\pL+) (ab|an|auf|aus|bei|ein|mit|nach|vor|weg|zu|zurück)$`)

// German returns the German transform descriptor.
func German() *deinflect.Descriptor {
	return &deinflect.Descriptor{
		Language: "de",
		Conditions: []deinflect.Condition{
			{Key: "v", Name: "Verb", SubConditions: []string{"vw", "vs"}, PartsOfSpeech: []string{"verb"}},
			{Key: "vw", Name: "Weak verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "vs", Name: "Strong verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "n", Name: "Noun", IsDictionaryForm: true, PartsOfSpeech: []string{"noun"}},
			{Key: "adj", Name: "Adjective", IsDictionaryForm: true, PartsOfSpeech: []string{"adjective"}},
		},
		Transforms: []deinflect.Transform{
			{
				Name:        "past participle",
				Description: "Perfect participle back to the infinitive.",
				Rules: []deinflect.Rule{
					deinflect.PatternRule(rePastParticipleWeak, func(s string) string {
						return strings.TrimSuffix(strings.TrimPrefix(s, "ge"), "t") + "en"
					}, nil, []string{"vw"}),
					// Strong participles do not follow the ge-…-t shape;
					// the common ones are listed outright.
					deinflect.SuffixRule("gegessen", "essen", nil, []string{"vs"}),
					deinflect.SuffixRule("getrunken", "trinken", nil, []string{"vs"}),
					deinflect.SuffixRule("gegangen", "gehen", nil, []string{"vs"}),
					deinflect.SuffixRule("gesehen", "sehen", nil, []string{"vs"}),
					deinflect.SuffixRule("genommen", "nehmen", nil, []string{"vs"}),
					deinflect.SuffixRule("gewesen", "sein", nil, []string{"vs"}),
					deinflect.SuffixRule("geworden", "werden", nil, []string{"vs"}),
				},
			},
			{
				Name:        "separable prefix",
				Description: "Reattach a clause-final detached particle to its verb.",
				Rules: []deinflect.Rule{
					deinflect.PatternRule(reSeparatedPrefix, func(s string) string {
						m := reSeparatedPrefix.FindStringSubmatch(s)
						return m[2] + m[1]
					}, nil, []string{"v"}),
				},
			},
			{
				Name:        "present",
				Description: "Finite present endings back to the infinitive.",
				Rules: []deinflect.Rule{
					// conditionsIn "v" keeps the chain alive after the
					// separable-prefix rule has flagged the record.
					deinflect.SuffixRule("st", "en", []string{"v"}, []string{"v"}),
					deinflect.SuffixRule("t", "en", []string{"v"}, []string{"v"}),
					deinflect.SuffixRule("e", "en", []string{"v"}, []string{"v"}),
				},
			},
			{
				Name:        "plural",
				Description: "Noun plural endings.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("en", "", nil, []string{"n"}),
					deinflect.SuffixRule("er", "", nil, []string{"n"}),
					deinflect.SuffixRule("e", "", nil, []string{"n"}),
					deinflect.SuffixRule("s", "", nil, []string{"n"}),
				},
			},
			{
				Name:        "comparative",
				Description: "Comparative adjective back to the positive.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("er", "", nil, []string{"adj"}),
				},
			},
		},
	}
}
