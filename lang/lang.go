// Package lang provides the built-in language transform descriptors.
//
// Each descriptor is plain configuration data for the deinflect engine:
// a curated list of condition categories and reversible rewrite rules.
// Nothing here is consulted by the engine beyond what Builder.Load
// compiles; the tables are deliberately incomplete and tuned for
// dictionary lookup, where over-generating candidates is harmless (the
// dictionary discards unattested forms) and under-generating loses hits.
package lang

import "github.com/lexeme-tools/deinflect"

// All returns every built-in descriptor in a fixed order.
func All() []*deinflect.Descriptor {
	return []*deinflect.Descriptor{
		English(),
		German(),
		Spanish(),
		Portuguese(),
		OldIrish(),
		Japanese(),
	}
}
