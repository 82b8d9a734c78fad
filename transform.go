package deinflect

// TransformedText is one candidate form reached by the search: the
// rewritten text, the condition set asserted by the last rule applied
// (0 for the untouched seed), and the trail of transform names that led
// here, most recent first.
type TransformedText struct {
	Text       string
	Conditions Flags
	Trail      []string
}

// Transform returns every form reachable from source by undoing loaded
// transforms, in breadth-first order of discovery. The result always
// starts with the seed record {source, 0, nil} and includes every
// intermediate state, not just terminal ones; the same text may appear
// several times via different trails.
//
// The result slice doubles as the worklist: records appended during the
// scan are themselves scanned in turn. Each candidate record is expanded
// against the whole rule table, so termination rests on the rule tables
// being curated (every realistic rule family shortens or holds length).
// MaxCandidates and MaxTrailDepth, when set on the Builder, bound the
// search against rule sets that break that assumption.
func (e *Engine) Transform(source string) []TransformedText {
	results := []TransformedText{{Text: source}}

	for i := 0; i < len(results); i++ {
		rec := results[i]
		if e.maxTrailDepth > 0 && len(rec.Trail) >= e.maxTrailDepth {
			continue
		}
		for j := range e.rules {
			rule := &e.rules[j]
			if !ConditionsMatch(rec.Conditions, rule.conditionsIn) {
				continue
			}
			text, ok := rule.apply(rec.Text)
			if !ok {
				continue
			}
			if e.maxCandidates > 0 && len(results) >= e.maxCandidates {
				return results
			}

			trail := make([]string, 0, len(rec.Trail)+1)
			trail = append(trail, rule.transform)
			trail = append(trail, rec.Trail...)
			results = append(results, TransformedText{
				Text:       text,
				Conditions: rule.conditionsOut,
				Trail:      trail,
			})
		}
	}
	return results
}
