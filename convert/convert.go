// Package convert collects small data-type-rule converters for the
// scalar kinds that show up in almost every grammar: integers, floats
// and booleans. Each converter has the func(*pegium.CstNode) T shape
// pegium.DataRule and pegium.Terminal expect, pulled out into reusable
// functions rather than duplicated per grammar.
package convert

import (
	"strconv"

	"github.com/pegium/pegium"
)

// Int converts a data-type rule's matched text to an int64 via
// strconv.ParseInt, base 10. It panics on malformed input, since a
// converter only runs after the element it is attached to has already
// matched: the text is guaranteed to be whatever the grammar's digits
// rule accepted, so a parse failure here means the grammar and the
// converter disagree about what "a number" looks like.
func Int(node *pegium.CstNode) int64 {
	v, err := strconv.ParseInt(string(node.LeafText()), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float converts a data-type rule's matched text to a float64 via
// strconv.ParseFloat.
func Float(node *pegium.CstNode) float64 {
	v, err := strconv.ParseFloat(string(node.LeafText()), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Bool converts a data-type rule's matched text to a bool: "true" (any
// case) yields true, anything else yields false. Use it behind a
// grammar rule that only ever matches "true" or "false" literals;
// Bool does not itself validate that the text is one of those two
// words.
func Bool(node *pegium.CstNode) bool {
	text := node.LeafText()
	return len(text) == 4 &&
		(text[0] == 't' || text[0] == 'T') &&
		(text[1] == 'r' || text[1] == 'R') &&
		(text[2] == 'u' || text[2] == 'U') &&
		(text[3] == 'e' || text[3] == 'E')
}
