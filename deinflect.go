// Package deinflect computes, for an inflected surface word form, every
// plausible dictionary (lemma) form reachable by undoing a chain of
// morphological rewrites, together with the sequence of transform names
// that produced each candidate.
//
// The engine itself knows no language-specific grammar: languages supply
// Descriptors (condition categories plus named transforms of reversible
// rules) and the engine compiles them into a bitmask-gated rule table.
// Candidates are not guaranteed to be attested words; the caller's
// dictionary lookup is expected to filter them.
package deinflect

// Builder accumulates language descriptors and compiles them into an
// Engine. Loading is additive: each Load extends the rule table, and
// condition bits allocated by one descriptor never collide with another's
// because allocation is monotonic across loads. Builders are not safe for
// concurrent use.
type Builder struct {
	// MaxCandidates bounds the total number of records a single
	// Transform call may produce (0 = unlimited). A pathological rule
	// set whose rewrites keep re-matching can otherwise grow the
	// candidate list without bound.
	MaxCandidates int
	// MaxTrailDepth stops expanding records whose trail has reached
	// this many transforms (0 = unlimited).
	MaxTrailDepth int

	nextFlag int
	rules    []compiledRule
	posFlags map[string]Flags
	// condFlags maps language tag → condition key → mask, for
	// introspection; rules are compiled against their own descriptor's
	// mapping only.
	condFlags map[string]map[string]Flags
	languages []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		posFlags:  make(map[string]Flags),
		condFlags: make(map[string]map[string]Flags),
	}
}

// Load compiles a descriptor and appends its rules to the builder.
//
// All three failure modes are configuration errors in the descriptor:
// a condition or rule referencing an undeclared key, a cycle among
// sub-condition references, or more than MaxConditions leaf conditions
// allocated across all loads. A failed Load leaves the builder unchanged.
//
// Transforms are appended as-is; loading two descriptors that both define
// a transform of the same name registers both side by side.
func (b *Builder) Load(d *Descriptor) error {
	flags, next, err := compileConditions(d.Conditions, b.nextFlag)
	if err != nil {
		return err
	}

	var rules []compiledRule
	for _, t := range d.Transforms {
		compiled, err := compileRules(t, flags)
		if err != nil {
			return err
		}
		rules = append(rules, compiled...)
	}

	// Commit only once the whole descriptor compiled.
	b.nextFlag = next
	b.rules = append(b.rules, rules...)
	for _, c := range d.Conditions {
		for _, tag := range c.PartsOfSpeech {
			b.posFlags[tag] |= flags[c.Key]
		}
	}
	if _, ok := b.condFlags[d.Language]; !ok {
		b.languages = append(b.languages, d.Language)
		b.condFlags[d.Language] = make(map[string]Flags, len(flags))
	}
	for key, f := range flags {
		b.condFlags[d.Language][key] = f
	}
	return nil
}

// Build freezes the builder's compiled state into an immutable Engine.
// The builder may keep loading descriptors afterwards without affecting
// engines already built.
func (b *Builder) Build() *Engine {
	e := &Engine{
		maxCandidates: b.MaxCandidates,
		maxTrailDepth: b.MaxTrailDepth,
		rules:         make([]compiledRule, len(b.rules)),
		posFlags:      make(map[string]Flags, len(b.posFlags)),
		condFlags:     make(map[string]map[string]Flags, len(b.condFlags)),
		languages:     append([]string(nil), b.languages...),
	}
	copy(e.rules, b.rules)
	for tag, f := range b.posFlags {
		e.posFlags[tag] = f
	}
	for lang, m := range b.condFlags {
		cm := make(map[string]Flags, len(m))
		for key, f := range m {
			cm[key] = f
		}
		e.condFlags[lang] = cm
	}
	return e
}

// Engine is the compiled, read-only deinflector. Its tables are
// write-once at Build time, so Transform calls may run concurrently.
type Engine struct {
	maxCandidates int
	maxTrailDepth int

	rules     []compiledRule
	posFlags  map[string]Flags
	condFlags map[string]map[string]Flags
	languages []string
}

// PartOfSpeechFlags returns the union of the masks of every loaded
// condition that declares the given part-of-speech tag, or 0 for an
// unknown tag. Callers use it with ConditionsMatch to test whether a
// candidate's conditions are compatible with an external tag.
func (e *Engine) PartOfSpeechFlags(tag string) Flags {
	return e.posFlags[tag]
}

// ConditionFlags returns a copy of the condition-key → mask mapping
// compiled for the given language tag, or nil if no descriptor with that
// tag was loaded.
func (e *Engine) ConditionFlags(language string) map[string]Flags {
	m, ok := e.condFlags[language]
	if !ok {
		return nil
	}
	out := make(map[string]Flags, len(m))
	for key, f := range m {
		out[key] = f
	}
	return out
}

// Languages returns the language tags of all loaded descriptors in load
// order.
func (e *Engine) Languages() []string {
	return append([]string(nil), e.languages...)
}
