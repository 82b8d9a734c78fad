package lang

import "github.com/lexeme-tools/deinflect"

// Spanish returns the Spanish transform descriptor.
func Spanish() *deinflect.Descriptor {
	return &deinflect.Descriptor{
		Language: "es",
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
				Name:        "preterite",
				Description: "Simple past endings back to the infinitive.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("aron", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("ieron", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("ieron", "ir", nil, []string{"v-ir"}),
					deinflect.SuffixRule("é", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("aste", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("ó", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("amos", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("í", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("í", "ir", nil, []string{"v-ir"}),
					deinflect.SuffixRule("iste", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("iste", "ir", nil, []string{"v-ir"}),
					deinflect.SuffixRule("ió", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("ió", "ir", nil, []string{"v-ir"}),
					deinflect.SuffixRule("imos", "ir", nil, []string{"v-ir"}),
				},
			},
			{
				Name:        "gerund",
				Description: "Present participle back to the infinitive.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ando", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("iendo", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("iendo", "ir", nil, []string{"v-ir"}),
				},
			},
			{
				Name:        "past participle",
				Description: "Past participle back to the infinitive.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("ado", "ar", nil, []string{"v-ar"}),
					deinflect.SuffixRule("ido", "er", nil, []string{"v-er"}),
					deinflect.SuffixRule("ido", "ir", nil, []string{"v-ir"}),
				},
			},
			{
				Name:        "plural",
				Description: "Noun and adjective plural.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("es", "", nil, []string{"n", "adj"}),
					deinflect.SuffixRule("s", "", nil, []string{"n", "adj"}),
				},
			},
			{
				Name:        "feminine",
				Description: "Feminine adjective back to the masculine citation form.",
				Rules: []deinflect.Rule{
					deinflect.SuffixRule("a", "o", nil, []string{"adj"}),
				},
			},
		},
	}
}
