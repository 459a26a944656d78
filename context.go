package pegium

// Context holds the ordered list of hidden/ignored terminal rules eligible
// for interleaving during one parse, captured once at parse start from the
// registry's current terminal set.
type Context struct {
	hiddens []*TerminalRule
}

// skipHidden repeatedly tries every hidden-or-ignored terminal rule at the
// current offset into sv, in registry order, appending a hidden leaf for
// each non-ignored match, until a full pass matches nothing. It returns
// the total number of bytes skipped.
func (c *Context) skipHidden(sv []byte, parent *CstNode) int {
	i := 0
	for {
		matched := false
		for _, rule := range c.hiddens {
			n := rule.ParseTerminal(sv[i:])
			if failed(n) {
				continue
			}
			if n == 0 {
				panicf("hidden terminal rule %q matched zero bytes; zero-width hidden terminals are a grammar bug", rule.name)
			}
			if rule.kind != kindIgnored {
				parent.Children = append(parent.Children, CstNode{
					Text:          sv[i : i+n],
					GrammarSource: rule,
					IsLeaf:        true,
					Hidden:        true,
				})
			}
			i += n
			matched = true
		}
		if !matched {
			break
		}
	}
	return i
}
