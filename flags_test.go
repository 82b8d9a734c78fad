package deinflect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileConditionsLeaves(t *testing.T) {
	conds := []Condition{
		{Key: "a", Name: "A"},
		{Key: "b", Name: "B"},
		{Key: "c", Name: "C"},
	}
	flags, next, err := compileConditions(conds, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, next)
	assert.Equal(t, Flags(1), flags["a"])
	assert.Equal(t, Flags(2), flags["b"])
	assert.Equal(t, Flags(4), flags["c"])
}

func TestCompileConditionsGroup(t *testing.T) {
	conds := []Condition{
		{Key: "vw", Name: "Weak verb"},
		{Key: "vs", Name: "Strong verb"},
		{Key: "v", Name: "Verb", SubConditions: []string{"vw", "vs"}},
	}
	flags, next, err := compileConditions(conds, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, next, "groups must not consume a bit")
	assert.Equal(t, flags["vw"]|flags["vs"], flags["v"])
}

func TestCompileConditionsForwardReference(t *testing.T) {
	// The group is declared before its members; resolution defers it to a
	// later round rather than failing.
	conds := []Condition{
		{Key: "v", Name: "Verb", SubConditions: []string{"vw", "vs"}},
		{Key: "w", Name: "Word", SubConditions: []string{"v", "n"}},
		{Key: "vw", Name: "Weak verb"},
		{Key: "vs", Name: "Strong verb"},
		{Key: "n", Name: "Noun"},
	}
	flags, next, err := compileConditions(conds, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, next)
	assert.Equal(t, flags["vw"]|flags["vs"], flags["v"])
	assert.Equal(t, flags["v"]|flags["n"], flags["w"])
}

func TestCompileConditionsDeterministic(t *testing.T) {
	conds := []Condition{
		{Key: "x", Name: "X"},
		{Key: "g", Name: "G", SubConditions: []string{"x", "y"}},
		{Key: "y", Name: "Y"},
	}
	first, _, err := compileConditions(conds, 0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, next, err := compileConditions(conds, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, next)
		assert.Equal(t, first, again)
	}
}

func TestCompileConditionsSelfReference(t *testing.T) {
	conds := []Condition{
		{Key: "a", Name: "A", SubConditions: []string{"a"}},
	}
	_, _, err := compileConditions(conds, 0)
	require.ErrorIs(t, err, ErrConditionCycle)
}

func TestCompileConditionsCycle(t *testing.T) {
	conds := []Condition{
		{Key: "a", Name: "A", SubConditions: []string{"b"}},
		{Key: "b", Name: "B", SubConditions: []string{"c"}},
		{Key: "c", Name: "C", SubConditions: []string{"a"}},
		{Key: "leaf", Name: "Leaf"},
	}
	_, _, err := compileConditions(conds, 0)
	require.ErrorIs(t, err, ErrConditionCycle)
	assert.NotContains(t, err.Error(), "leaf", "resolvable conditions are not part of the cycle report")
}

func TestCompileConditionsUnknownSubCondition(t *testing.T) {
	conds := []Condition{
		{Key: "v", Name: "Verb", SubConditions: []string{"missing"}},
	}
	_, _, err := compileConditions(conds, 0)
	require.ErrorIs(t, err, ErrUnknownCondition)
}

func TestCompileConditionsDuplicateKey(t *testing.T) {
	conds := []Condition{
		{Key: "v", Name: "Verb"},
		{Key: "v", Name: "Verb again"},
	}
	_, _, err := compileConditions(conds, 0)
	require.ErrorIs(t, err, ErrDuplicateCondition)
}

func TestCompileConditionsExhaustion(t *testing.T) {
	var conds []Condition
	for i := 0; i < MaxConditions+1; i++ {
		conds = append(conds, Condition{Key: fmt.Sprintf("c%d", i), Name: "C"})
	}
	_, _, err := compileConditions(conds, 0)
	require.ErrorIs(t, err, ErrTooManyConditions)

	_, _, err = compileConditions(conds[:MaxConditions], 0)
	require.NoError(t, err, "exactly MaxConditions leaves must fit")
}

func TestConditionsMatch(t *testing.T) {
	tests := []struct {
		current, next Flags
		want          bool
	}{
		{0, 0, true},
		{0, 1, true},
		{0, 0xffffffff, true},
		{1, 1, true},
		{1, 3, true},
		{1, 2, false},
		{2, 0, false},
		{0b1100, 0b0100, true},
		{0b1100, 0b0011, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ConditionsMatch(tt.current, tt.next),
			"ConditionsMatch(%#b, %#b)", tt.current, tt.next)
	}
}
