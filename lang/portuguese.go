package lang

import "github.com/lexeme-tools/deinflect"

// Portuguese returns the Portuguese transform descriptor.
func Portuguese() *deinflect.Descriptor {
	return &deinflect.Descriptor{
		Language: "pt",
		Conditions: []deinflect.Condition{
			{Key: "v", Name: "Verb", SubConditions: []string{"v-ar", "v-er", "v-ir"}, PartsOfSpeech: []string{"verb"}},
			{Key: "v-ar", Name: "-ar verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "v-er", Name: "-er verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "v-ir", Name: "-ir verb", IsDictionaryForm: true, PartsOfSpeech: []string{"verb"}},
			{Key: "n", Name: "Noun", IsDictionaryForm: true, PartsOfSpeech: []string{"noun"}},
			{Key: "adj", Name: "Adjective", IsDictionaryForm: true, PartsOfSpeech: []string{"adjective"}},
		},
		Transforms: []deinflect.Transform{
			{
				Name:        "plural",
				Description: "Noun and adjective plural.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ões", "ão", nil, []string{"n"}),
					deinflect.SuffixRule("ães", "ão", nil, []string{"n"}),
					deinflect.SuffixRule("ais", "al", nil, []string{"n", "adj"}),
					deinflect.SuffixRule("eis", "el", nil, []string{"n", "adj"}),
					deinflect.SuffixRule("es", "", nil, []string{"n", "adj"}),
					deinflect.SuffixRule("s", "", nil, []string{"n", "adj"}),
				},
			},
			{
				Name:        "diminutive",
				Description: "Diminutive back to the base noun.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("zinho", "", nil, []string{"n"}),
					deinflect.SuffixRule("zinha", "", nil, []string{"n"}),
					deinflect.SuffixRule("inho", "o", nil, []string{"n"}),
					deinflect.SuffixRule("inha", "a", nil, []string{"n"}),
				},
			},
			{
				Name:        "preterite",
				Description: "Simple past back to the infinitive.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("aram", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("eram", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("iram", "ir", nil, []string{"v-ir"}),
					deinflect.SuffixRule("ou", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("eu", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("iu", "ir", nil, []string{"v-ir"}),
				},
			},
			{
				Name:        "gerund",
				Description: "Gerund back to the infinitive.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ando", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("endo", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("indo", "ir", nil, []string{"v-ir"}),
				},
			},
		},
	}
}
