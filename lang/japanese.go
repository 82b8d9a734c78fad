package lang

import "github.com/lexeme-tools/deinflect"

// Japanese returns the Japanese transform descriptor. The table is a
// small chain-oriented subset: polite and past forms step back to the
// plain form through the masu-stem, so a single lookup of たべました
// reaches たべる in two steps.
func Japanese() *deinflect.Descriptor {
	return &deinflect.Descriptor{
		Language: "ja",
		Conditions: []deinflect.Condition{
			{Key: "v", Name: "Verb", SubConditions: []string{"v1", "v5", "vs"}, PartsOfSpeech: []string{"verb"}},
			{Key: "v1", Name: "Ichidan verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "v5", Name: "Godan verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "vs", Name: "Suru verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "masu", Name: "Polite -masu form", PartsOfSpeech: []string{"verb"}},
			{Key: "adj-i", Name: "i-adjective", IsDictionaryForm: true, PartsOfSpeech: []string{"adjective"}},
		},
		Transforms: []deinflect.Transform{
			{
				Name:        "polite past",
				Description: "-mashita back to the -masu form.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ました", "ます", nil, []string{"masu"}),
					deinflect.SuffixRule("ませんでした", "ます", nil, []string{"masu"}),
				},
			},
			{
				Name:        "polite",
				Description: "-masu form back to the plain form.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ます", "る", []string{"masu"}, []string{"v1"}),
					deinflect.SuffixRule("います", "う", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("きます", "く", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("します", "す", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("ちます", "つ", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("にます", "ぬ", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("びます", "ぶ", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("みます", "む", []string{"masu"}, []string{"v5"}),
					deinflect.SuffixRule("ります", "る", []string{"masu"}, []string{"v5"}),
				},
			},
			{
				Name:        "past",
				Description: "Plain past back to the dictionary form.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("た", "る", nil, []string{"v1"}),
					deinflect.SuffixRule("った", "う", nil, []string{"v5"}),
					deinflect.SuffixRule("った", "つ", nil, []string{"v5"}),
					deinflect.SuffixRule("った", "る", nil, []string{"v5"}),
					deinflect.SuffixRule("いた", "く", nil, []string{"v5"}),
					deinflect.SuffixRule("いだ", "ぐ", nil, []string{"v5"}),
					deinflect.SuffixRule("んだ", "ぬ", nil, []string{"v5"}),
					deinflect.SuffixRule("んだ", "ぶ", nil, []string{"v5"}),
					deinflect.SuffixRule("んだ", "む", nil, []string{"v5"}),
					deinflect.SuffixRule("した", "す", nil, []string{"v5"}),
					deinflect.SuffixRule("かった", "い", nil, []string{"adj-i"}),
				},
			},
			{
				Name:        "te form",
				Description: "-te form back to the dictionary form.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("て", "る", nil, []string{"v1"}),
					deinflect.SuffixRule("って", "う", nil, []string{"v5"}),
					deinflect.SuffixRule("って", "つ", nil, []string{"v5"}),
					deinflect.SuffixRule("って", "る", nil, []string{"v5"}),
					deinflect.SuffixRule("いて", "く", nil, []string{"v5"}),
					deinflect.SuffixRule("いで", "ぐ", nil, []string{"v5"}),
					deinflect.SuffixRule("んで", "ぬ", nil, []string{"v5"}),
					deinflect.SuffixRule("んで", "ぶ", nil, []string{"v5"}),
					deinflect.SuffixRule("んで", "む", nil, []string{"v5"}),
					deinflect.SuffixRule("して", "す", nil, []string{"v5"}),
					deinflect.SuffixRule("くて", "い", nil, []string{"adj-i"}),
				},
			},
			{
				Name:        "negative",
				Description: "Plain negative back to the dictionary form.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ない", "る", nil, []string{"v1"}),
					deinflect.SuffixRule("わない", "う", nil, []string{"v5"}),
					deinflect.SuffixRule("かない", "く", nil, []string{"v5"}),
					deinflect.SuffixRule("さない", "す", nil, []string{"v5"}),
					deinflect.SuffixRule("たない", "つ", nil, []string{"v5"}),
					deinflect.SuffixRule("まない", "む", nil, []string{"v5"}),
					deinflect.SuffixRule("らない", "る", nil, []string{"v5"}),
					deinflect.SuffixRule("くない", "い", nil, []string{"adj-i"}),
				},
			},
		},
	}
}
