package lang

import "github.com/lexeme-tools/deinflect"

// OldIrish returns the Old Irish transform descriptor. The transforms
// undo the initial mutations written on a word by its syntactic context,
// which is what hides the citation form from a dictionary lookup.
func OldIrish() *deinflect.Descriptor {
	return &deinflect.Descriptor{
		Language: "sga",
		Conditions: []deinflect.Condition{
			{Key: "w", Name: "Word", SubConditions: []string{"n", "v", "adj"}},
			{Key: "n", Name: "Noun", IsDictionaryForm: true, PartsOfSpeech: []string{"noun"}},
			{Key: "v", Name: "Verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "adj", Name: "Adjective", IsDictionaryForm: true, PartsOfSpeech: []string{"adjective"}},
		},
		Transforms: []deinflect.Transform{
			{
				Name:        "lenited",
				Description: "Undo initial lenition.",
				Rules: []deinflect.Rule{
					deinflect.PrefixRule("ch", "c", nil, []string{"w"}),
					deinflect.PrefixRule("th", "t", nil, []string{"w"}),
					deinflect.PrefixRule("ph", "p", nil, []string{"w"}),
					deinflect.PrefixRule("bh", "b", nil, []string{"w"}),
					deinflect.PrefixRule("dh", "d", nil, []string{"w"}),
					deinflect.PrefixRule("gh", "g", nil, []string{"w"}),
					deinflect.PrefixRule("mh", "m", nil, []string{"w"}),
					deinflect.PrefixRule("sh", "s", nil, []string{"w"}),
					deinflect.PrefixRule("fh", "f", nil, []string{"w"}),
				},
			},
			{
				Name:        "nasalized",
				Description: "Undo initial nasalization (eclipsis).",
				Rules: []deinflect.Rule{
					deinflect.PrefixRule("mb", "b", nil, []string{"w"}),
					deinflect.PrefixRule("nd", "d", nil, []string{"w"}),
					deinflect.PrefixRule("ng", "g", nil, []string{"w"}),
					deinflect.PrefixRule("n-", "", nil, []string{"w"}),
				},
			},
		},
	}
}
