// Package pegium is an embedded parser-combinator library. Grammars are
// declared as ordinary composable Go values instead of struct tags or a
// separate grammar file, and parsing produces both a concrete syntax tree
// (CST), where every matched byte has a home, and an optional abstract
// syntax tree (AST) of host-defined record types.
//
// The grammar formalism is a Parsing Expression Grammar (PEG): named rules,
// ordered choice, unordered groups, syntactic predicates and bounded or
// separated repetitions. Pegium adds one thing regular PEGs don't have: a
// distinction between terminal rules (lexical, matched without skipping
// anything) and parser rules (syntactic, matched with hidden tokens such as
// whitespace and comments skipped automatically between tokens), plus
// assignments that populate fields of a user-defined AST record as parsing
// proceeds.
//
// A minimal grammar:
//
//	p := pegium.NewParser()
//	pegium.Terminal[string](p, "WS", nil).Init(pegium.AtLeastOne(pegium.Space)).Ignore()
//	pegium.DataRule[string](p, "Greeting", nil).Init(pegium.Seq(pegium.Lit("hello"), pegium.Lit("world")))
//	result := p.Parse("Greeting", []byte("hello   world"))
//
// Grammars are built with the combinator functions in combinators.go (Seq,
// Choice, Unordered, Rep, Opt, Many, AtLeastOne, And, Not, ManySep,
// AtLeastOneSep, Until) since Go has no operator overloading. AST record
// fields are filled with Assign/Append (assignment.go) and
// AssignRef/AppendRef (ast.go).
package pegium
