package pegium

// Parser owns a grammar: a rule registry built incrementally by calling
// Rule/DataRule/Terminal, and a trace hook (see trace.go). Once built, a
// Parser's grammar is immutable; Parse may be called concurrently from
// multiple goroutines as long as no rule is still being added.
type Parser struct {
	reg   *registry
	trace TraceFunc
}

// NewParser creates an empty grammar. Options configure cross-cutting
// concerns (currently just tracing); see options.go.
func NewParser(opts ...Option) *Parser {
	p := &Parser{reg: newRegistry()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Call returns an opaque reference to the named rule, usable as an Element
// anywhere in a grammar, including before that rule has been declared.
func (p *Parser) Call(name string) *RuleCall {
	return &RuleCall{ref: p.reg.ref(name)}
}

// Rule declares a parser rule building AST records of type *T. Call Init
// on the result to attach the rule's body; this two-step shape lets the
// body reference Call(name) for rules not yet declared.
func Rule[T any](p *Parser, name string) *ParserRule {
	r := &ParserRule{name: name, newRecord: func() any { return new(T) }}
	p.reg.define(name, r)
	return r
}

// DataRule declares a data-type rule whose value is computed from its CST
// subtree by converter. A nil converter falls back to the default
// converter: concatenation of non-hidden leaf text.
func DataRule[V any](p *Parser, name string, converter func(*CstNode) V) *DataTypeRule {
	r := &DataTypeRule{name: name, converter: wrapConverter(converter)}
	p.reg.define(name, r)
	return r
}

// Terminal declares a terminal rule: matched without hidden-token
// skipping inside its own body. Use Hide/Ignore on the result to control
// how it interleaves with other rules as a hidden token.
func Terminal[V any](p *Parser, name string, converter func(*CstNode) V) *TerminalRule {
	r := &TerminalRule{name: name, converter: wrapConverter(converter)}
	p.reg.define(name, r)
	return r
}

func wrapConverter[V any](converter func(*CstNode) V) func(*CstNode) any {
	if converter == nil {
		return nil
	}
	return func(n *CstNode) any { return converter(n) }
}

func (p *Parser) createContext() *Context {
	return &Context{hiddens: p.reg.hiddenTerminals()}
}

// Parse drives the named rule against input: it builds a fresh Context
// from the grammar's current hidden/ignored terminals, skips hidden tokens
// at the left edge, and delegates to the rule. A partial match
// (Result.Len < len(input)) still returns Result.Ok == false together
// with the partial CST and the bytes consumed.
func (p *Parser) Parse(ruleName string, input []byte) *Result {
	ref, ok := p.reg.refs[ruleName]
	if !ok || ref.rule == nil {
		panicf("parse of undefined rule %q", ruleName)
	}
	ctx := p.createContext()
	if p.trace != nil {
		p.trace(TraceEvent{Kind: TraceEnter, Rule: ruleName})
	}
	result := ref.rule.Parse(input, ctx)
	if p.trace != nil {
		kind := TraceExit
		if !result.Ok {
			kind = TraceBacktrack
		}
		p.trace(TraceEvent{Kind: kind, Rule: ruleName, Len: result.Len})
	}
	return result
}
