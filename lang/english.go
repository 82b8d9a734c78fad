package lang

import (
	"regexp"

	"github.com/lexeme-tools/deinflect"
)

// reDoubledEd and reDoubledIng undo consonant doubling before -ed/-ing
// (stopped → stop, running → run). The doubled pair must not open the
// word, and the pairs are enumerated because RE2 has no backreferences.
var (
	reDoubledEd  = regexp.MustCompile(`\pL(?:bb|dd|gg|ll|mm|nn|pp|rr|tt)ed$`)
	reDoubledIng = regexp.MustCompile(`\pL(?:bb|dd|gg|ll|mm|nn|pp|rr|tt)ing$`)
)

// English returns the English transform descriptor.
func English() *deinflect.Descriptor {
	return &deinflect.Descriptor{
		Language: "en",
		Conditions: []deinflect.Condition{
			{Key: "v", Name: "Verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "n", Name: "Noun", IsDictionaryForm: true, PartsOfSpeech: []string{"noun"}},
			{Key: "adj", Name: "Adjective", IsDictionaryForm: true, PartsOfSpeech: []string{"adjective"}},
			{Key: "adv", Name: "Adverb", IsDictionaryForm: true, PartsOfSpeech: []string{"adverb"}},
		},
		Transforms: []deinflect.Transform{
			{
				Name:        "plural",
				Description: "Noun plural endings.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ies", "y", nil, []string{"n"}),
					deinflect.SuffixRule("es", "", nil, []string{"n"}),
					deinflect.SuffixRule("s", "", nil, []string{"n"}),
				},
			},
			{
				Name:        "past",
				Description: "Simple past and past participle in -ed.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ied", "y", nil, []string{"v"}),
					deinflect.SuffixRule("ed", "", nil, []string{"v"}),
					deinflect.SuffixRule("ed", "e", nil, []string{"v"}),
					deinflect.PatternRule(reDoubledEd, func(s string) string {
						return s[:len(s)-3]
					}, nil, []string{"v"}),
				},
			},
			{
				Name:        "ing",
				Description: "Present participle in -ing.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ing", "", nil, []string{"v"}),
					deinflect.SuffixRule("ing", "e", nil, []string{"v"}),
					deinflect.PatternRule(reDoubledIng, func(s string) string {
						return s[:len(s)-4]
					}, nil, []string{"v"}),
				},
			},
			{
				Name:        "third person",
				Description: "Third-person singular present.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ies", "y", nil, []string{"v"}),
					deinflect.SuffixRule("es", "", nil, []string{"v"}),
					deinflect.SuffixRule("s", "", nil, []string{"v"}),
				},
			},
			{
				Name:        "comparative",
				Description: "Comparative adjective.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ier", "y", nil, []string{"adj"}),
					deinflect.SuffixRule("er", "", nil, []string{"adj"}),
					deinflect.SuffixRule("er", "e", nil, []string{"adj"}),
				},
			},
			{
				Name:        "superlative",
				Description: "Superlative adjective.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("iest", "y", nil, []string{"adj"}),
					deinflect.SuffixRule("est", "", nil, []string{"adj"}),
					deinflect.SuffixRule("est", "e", nil, []string{"adj"}),
				},
			},
			{
				Name:        "adverb",
				Description: "-ly adverb back to the adjective.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ly", "", nil, []string{"adj"}),
					deinflect.SuffixRule("ily", "y", nil, []string{"adj"}),
				},
			},
		},
	}
}
