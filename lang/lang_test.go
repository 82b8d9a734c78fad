package lang

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexeme-tools/deinflect"
)

func builtinEngine(t *testing.T) *deinflect.Engine {
	t.Helper()
	b := deinflect.NewBuilder()
	for _, d := range All() {
		require.NoError(t, b.Load(d), "descriptor %s must compile", d.Language)
	}
	return b.Build()
}

// findCandidate returns the first record with the given text, or nil.
func findCandidate(results []deinflect.TransformedText, text string) *deinflect.TransformedText {
	for i := range results {
		if results[i].Text == text {
			return &results[i]
		}
	}
	return nil
}

func TestGermanPastParticiple(t *testing.T) {
	engine := builtinEngine(t)

	got := findCandidate(engine.Transform("gegessen"), "essen")
	require.NotNil(t, got, "gegessen must deinflect to essen")
	assert.Equal(t, []string{"past participle"}, got.Trail)

	weak := findCandidate(engine.Transform("gemacht"), "machen")
	require.NotNil(t, weak, "gemacht must deinflect to machen")
	assert.Equal(t, []string{"past participle"}, weak.Trail)
}

func TestGermanSeparablePrefix(t *testing.T) {
	engine := builtinEngine(t)

	results := engine.Transform("hört auf")
	require.NotNil(t, findCandidate(results, "aufhört"))

	got := findCandidate(results, "aufhören")
	require.NotNil(t, got, "detached particle must be reattached and conjugation undone")
	assert.Equal(t, []string{"present", "separable prefix"}, got.Trail)
}

func TestSpanishPreterite(t *testing.T) {
	engine := builtinEngine(t)

	got := findCandidate(engine.Transform("hablaron"), "hablar")
	require.NotNil(t, got, "hablaron must deinflect to hablar")
	assert.Equal(t, []string{"preterite"}, got.Trail)
}

func TestOldIrishLenition(t *testing.T) {
	engine := builtinEngine(t)

	got := findCandidate(engine.Transform("chat"), "cat")
	require.NotNil(t, got, "chat must deinflect to cat")
	assert.Equal(t, []string{"lenited"}, got.Trail)
}

func TestEnglishDoubledConsonant(t *testing.T) {
	engine := builtinEngine(t)

	run := findCandidate(engine.Transform("running"), "run")
	require.NotNil(t, run, "running must deinflect to run")
	assert.Equal(t, []string{"ing"}, run.Trail)

	stop := findCandidate(engine.Transform("stopped"), "stop")
	require.NotNil(t, stop, "stopped must deinflect to stop")

	happy := findCandidate(engine.Transform("happiest"), "happy")
	require.NotNil(t, happy, "happiest must deinflect to happy")
	assert.Equal(t, []string{"superlative"}, happy.Trail)
}

func TestJapanesePoliteChain(t *testing.T) {
	engine := builtinEngine(t)

	results := engine.Transform("たべました")
	require.NotNil(t, findCandidate(results, "たべます"))

	var got *deinflect.TransformedText
	for i := range results {
		r := &results[i]
		if r.Text == "たべる" && len(r.Trail) == 2 && r.Trail[0] == "polite" {
			got = r
			break
		}
	}
	require.NotNil(t, got, "たべました must reach たべる through the masu form")
	assert.Equal(t, []string{"polite", "polite past"}, got.Trail)
}

func TestPortuguesePlural(t *testing.T) {
	engine := builtinEngine(t)

	got := findCandidate(engine.Transform("corações"), "coração")
	require.NotNil(t, got, "corações must deinflect to coração")
	assert.Equal(t, []string{"plural"}, got.Trail)
}

func TestPartOfSpeechFlagsAccumulate(t *testing.T) {
	engine := builtinEngine(t)

	verb := engine.PartOfSpeechFlags("verb")
	assert.NotZero(t, verb)
	for _, language := range []string{"de", "es", "ja"} {
		v, ok := engine.ConditionFlags(language)["v"]
		require.True(t, ok, "%s declares v", language)
		assert.True(t, deinflect.ConditionsMatch(v, verb),
			"%s verb mask must be part of the verb tag lookup", language)
	}
	assert.Zero(t, engine.PartOfSpeechFlags("particle"))
}

// TestFlagTablesGolden pins the compiled bit assignment of every built-in
// descriptor. A diff here means descriptor declaration order changed,
// which silently remaps condition masks.
func TestFlagTablesGolden(t *testing.T) {
	engine := builtinEngine(t)

	var buf bytes.Buffer
	for _, language := range engine.Languages() {
		fmt.Fprintf(&buf, "[%s]\n", language)
		flags := engine.ConditionFlags(language)
		keys := make([]string, 0, len(flags))
		for k := range flags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&buf, "  %s = 0x%08x\n", k, uint32(flags[k]))
		}
	}

	g := goldie.New(t)
	g.Assert(t, "flag_tables", buf.Bytes())
}
