package pegium

import "fmt"

// GrammarError represents a programmer error detected while building or
// exercising a grammar: an undefined rule call, an empty literal, a
// zero-width hidden terminal, an assignment inside a terminal, a
// non-assignable element under an assignment, or an AST field type
// mismatch. These are never returned as an error value from the
// combinator algebra itself; they panic.
type GrammarError string

func (e GrammarError) Error() string { return string(e) }

func panicf(format string, args ...interface{}) {
	panic(GrammarError(fmt.Sprintf(format, args...)))
}

// decorate wraps a panic in flight with additional context (the rule or
// field name it occurred in), re-panicking with the decorated message.
func decorate(name func() string) {
	if msg := recover(); msg != nil {
		switch msg := msg.(type) {
		case GrammarError:
			panicf("%s: %s", name(), msg)
		default:
			panic(msg)
		}
	}
}

// recoverToError recovers a GrammarError panic into *err, so that a
// construction mistake can be reported as an ordinary error rather than
// crash the process; any other panic is re-raised. No exported function
// of this package calls it: grammar-construction errors reach callers as
// panics.
func recoverToError(err *error) {
	if msg := recover(); msg != nil {
		switch msg := msg.(type) {
		case GrammarError:
			*err = msg
		default:
			panic(msg)
		}
	}
}
