package pegium

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"golang.org/x/exp/slices"
)

// Dump renders an AST value (or any Go value) for debugging. Diagnostic
// only; not a stable format.
func Dump(v any) string {
	return repr.String(v, repr.Indent("  "))
}

// DumpCst renders a CST subtree as an indented tree of
// "<rule/element>: "text"" lines, flagging hidden leaves. Diagnostic only.
func DumpCst(node *CstNode) string {
	var b strings.Builder
	dumpCst(&b, node, 0)
	return b.String()
}

func dumpCst(b *strings.Builder, node *CstNode, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	name := "?"
	if named, ok := node.GrammarSource.(interface{ Name() string }); ok {
		name = named.Name()
	} else if node.GrammarSource != nil {
		name = fmt.Sprintf("%T", node.GrammarSource)
	}
	if node.Hidden {
		name += " (hidden)"
	}
	fmt.Fprintf(b, "%s: %q\n", name, node.Text)
	for i := range node.Children {
		dumpCst(b, &node.Children[i], depth+1)
	}
}

// EBNF renders the parser's registered rules as EBNF-like text, sorted by
// name via golang.org/x/exp/slices for reproducible output (Go map order
// is randomized). Diagnostic only, not a stable format.
func (p *Parser) EBNF() string {
	names := make([]string, 0, len(p.reg.refs))
	for name := range p.reg.refs {
		names = append(names, name)
	}
	slices.Sort(names)

	var lines []string
	for _, name := range names {
		rule := p.reg.refs[name].rule
		lines = append(lines, fmt.Sprintf("%s = %s .", name, ebnfElement(ruleBody(rule))))
	}
	return strings.Join(lines, "\n")
}

func ruleBody(rule GrammarRule) Element {
	switch r := rule.(type) {
	case *ParserRule:
		return r.element
	case *DataTypeRule:
		return r.element
	case *TerminalRule:
		return r.element
	default:
		return nil
	}
}

func ebnfElement(e Element) string {
	switch v := e.(type) {
	case nil:
		return "?"
	case *sequence:
		parts := make([]string, len(v.elements))
		for i, c := range v.elements {
			parts[i] = ebnfElement(c)
		}
		return strings.Join(parts, " ")
	case *orderedChoice:
		parts := make([]string, len(v.elements))
		for i, c := range v.elements {
			parts[i] = ebnfElement(c)
		}
		return "(" + strings.Join(parts, " | ") + ")"
	case *unorderedGroup:
		parts := make([]string, len(v.elements))
		for i, c := range v.elements {
			parts[i] = ebnfElement(c)
		}
		return "(" + strings.Join(parts, " & ") + ")"
	case *repetition:
		inner := ebnfElement(v.element)
		switch {
		case v.min == 0 && v.max == 1:
			return "[" + inner + "]"
		case v.min == 0:
			return "{" + inner + "}"
		case v.min == 1 && v.max > 1000000:
			return inner + "+"
		default:
			return fmt.Sprintf("%s{%d,%d}", inner, v.min, v.max)
		}
	case *andPredicate:
		return "&" + ebnfElement(v.element)
	case *notPredicate:
		return "!" + ebnfElement(v.element)
	case *Literal:
		return v.String()
	case *RuleCall:
		return v.ref.name
	case *Assignment:
		return ebnfElement(v.element)
	case anyCharacter:
		return "."
	case *CharSet:
		return "<charset>"
	default:
		return fmt.Sprintf("%T", v)
	}
}
