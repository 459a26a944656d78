package pegium

import "golang.org/x/exp/slices"

// ruleRef is a registry slot: a named handle whose rule is filled in once
// the grammar finishes declaring it. RuleCall holds a ruleRef rather than a
// Rule directly so that a rule may reference another rule declared later in
// the same grammar: capturing a direct pointer too eagerly would dangle,
// so every call goes through this one level of indirection instead.
type ruleRef struct {
	name string
	rule GrammarRule
}

// registry is the name -> rule mapping a Parser builds up during grammar
// construction.
type registry struct {
	refs map[string]*ruleRef
}

func newRegistry() *registry {
	return &registry{refs: map[string]*ruleRef{}}
}

func (reg *registry) ref(name string) *ruleRef {
	if r, ok := reg.refs[name]; ok {
		return r
	}
	r := &ruleRef{name: name}
	reg.refs[name] = r
	return r
}

func (reg *registry) define(name string, rule GrammarRule) {
	reg.ref(name).rule = rule
}

// hiddenTerminals returns every Hidden-or-Ignored terminal rule currently
// registered, sorted by rule name for reproducible iteration order (Go map
// order is randomized; golang.org/x/exp/slices.Sort gives the Context a
// deterministic hidden-rule order across runs).
func (reg *registry) hiddenTerminals() []*TerminalRule {
	names := make([]string, 0, len(reg.refs))
	for name := range reg.refs {
		names = append(names, name)
	}
	slices.Sort(names)

	var hiddens []*TerminalRule
	for _, name := range names {
		t, ok := reg.refs[name].rule.(*TerminalRule)
		if ok && t.hidden() {
			hiddens = append(hiddens, t)
		}
	}
	return hiddens
}
