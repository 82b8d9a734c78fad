package deinflect

import (
	"errors"
	"fmt"
	"sort"
)

// Flags is a set of condition categories encoded as bits of a fixed-width
// word. The zero value means "no category established yet", which matches
// every rule (distinct from a form asserted to have no categories, which
// cannot arise: every rule asserts at least its ConditionsOut mask).
type Flags uint32

// MaxConditions is the number of leaf conditions a single engine instance
// can hold. It is the bit width of Flags, enforced explicitly rather than
// left as an incidental property of the integer type.
const MaxConditions = 32

// Configuration errors reported by Builder.Load. All failures are
// load-time; a built engine cannot fail at query time.
var (
	// ErrUnknownCondition is returned when a rule or a sub-condition
	// references a condition key the descriptor never declares.
	ErrUnknownCondition = errors.New("unknown condition")
	// ErrConditionCycle is returned when sub-condition references form a
	// cycle with no resolvable leaf.
	ErrConditionCycle = errors.New("cycle in condition sub-references")
	// ErrTooManyConditions is returned when more than MaxConditions leaf
	// conditions would be allocated for one engine instance.
	ErrTooManyConditions = errors.New("maximum number of conditions exceeded")
	// ErrDuplicateCondition is returned when a descriptor declares the
	// same condition key twice.
	ErrDuplicateCondition = errors.New("duplicate condition key")
)

// ConditionsMatch reports whether a form holding the current condition
// set may feed a rule requiring next. An unconstrained form (current ==
// 0) matches anything; otherwise at least one category must be shared.
func ConditionsMatch(current, next Flags) bool {
	return current == 0 || current&next != 0
}

// compileConditions assigns a bitmask to every condition, starting at bit
// index next, and returns the mapping together with the advanced index.
//
// Resolution runs in rounds: each round assigns a fresh bit to every
// still-unresolved leaf and the union mask to every group whose
// sub-conditions are all resolved already; anything else is deferred to
// the next round. A round that resolves nothing means the remaining
// conditions reference each other cyclically. Forward references are thus
// handled without the descriptor author having to topologically sort the
// declaration order.
func compileConditions(conditions []Condition, next int) (map[string]Flags, int, error) {
	declared := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		if declared[c.Key] {
			return nil, next, fmt.Errorf("%w: %q", ErrDuplicateCondition, c.Key)
		}
		declared[c.Key] = true
	}
	for _, c := range conditions {
		for _, sub := range c.SubConditions {
			if !declared[sub] {
				return nil, next, fmt.Errorf("%w: %q referenced as sub-condition of %q", ErrUnknownCondition, sub, c.Key)
			}
		}
	}

	flags := make(map[string]Flags, len(conditions))
	pending := make([]Condition, len(conditions))
	copy(pending, conditions)

	for len(pending) > 0 {
		var deferred []Condition
		for _, c := range pending {
			if len(c.SubConditions) == 0 {
				if next >= MaxConditions {
					return nil, next, fmt.Errorf("%w (limit %d, at %q)", ErrTooManyConditions, MaxConditions, c.Key)
				}
				flags[c.Key] = 1 << next
				next++
				continue
			}

			mask := Flags(0)
			resolved := true
			for _, sub := range c.SubConditions {
				f, ok := flags[sub]
				if !ok {
					resolved = false
					break
				}
				mask |= f
			}
			if !resolved {
				deferred = append(deferred, c)
				continue
			}
			flags[c.Key] = mask
		}

		if len(deferred) == len(pending) {
			keys := make([]string, 0, len(deferred))
			for _, c := range deferred {
				keys = append(keys, c.Key)
			}
			sort.Strings(keys)
			return nil, next, fmt.Errorf("%w: %v", ErrConditionCycle, keys)
		}
		pending = deferred
	}

	return flags, next, nil
}

// resolveConditionList ORs together the flags of every named key.
// An empty list compiles to 0, meaning unconstrained.
func resolveConditionList(keys []string, flags map[string]Flags) (Flags, error) {
	mask := Flags(0)
	for _, key := range keys {
		f, ok := flags[key]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCondition, key)
		}
		mask |= f
	}
	return mask, nil
}
