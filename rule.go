package pegium

// AstNode is the common type for host-defined AST record values. Any Go
// type works as an AST record; this alias exists purely so the rest of
// the API has a name for "an AST value" distinct from a raw CST node.
type AstNode = any

// GrammarRule is a named, top-level grammar element with a kind: parser,
// data-type, or terminal. Every GrammarRule is also an Element so it can be
// called like any other grammar piece through RuleCall.
type GrammarRule interface {
	Element
	// Name returns the rule's registered name.
	Name() string
	// Value computes the rule's semantic value from a CST node it
	// produced: an AST record for a parser rule, or a converted scalar
	// for a data-type or terminal rule.
	Value(node *CstNode) any
	// Parse runs this rule as the entry point of a parse.
	Parse(text []byte, ctx *Context) *Result
}

// Result is what a parse driver returns.
type Result struct {
	Ok    bool
	Len   int
	Root  *RootCstNode
	Value any
}

// RuleCall is an indirect, lazily-resolved reference to a registry slot,
// letting one rule call another declared later in the same grammar.
// Calling an undefined rule is a programming error: a fatal panic, never
// a parse FAIL.
type RuleCall struct {
	ref *ruleRef
}

func (rc *RuleCall) target() GrammarRule {
	if rc.ref.rule == nil {
		panicf("call of undefined rule %q", rc.ref.name)
	}
	return rc.ref.rule
}

func (rc *RuleCall) ParseTerminal(sv []byte) int { return rc.target().ParseTerminal(sv) }

func (rc *RuleCall) ParseRule(sv []byte, parent *CstNode, ctx *Context) int {
	return rc.target().ParseRule(sv, parent, ctx)
}

// ParserRule is matched in rule mode; its value is an AST record built by
// executing the actions recorded on its CST subtree.
type ParserRule struct {
	name      string
	element   Element
	newRecord func() any
}

func (r *ParserRule) Name() string { return r.name }

// Init sets the rule's body. It returns r so that declaration and
// definition can be chained: Rule[T](p, name).Init(body).
func (r *ParserRule) Init(e Element) *ParserRule {
	r.element = e
	return r
}

func (r *ParserRule) ParseTerminal(sv []byte) int {
	if r.element == nil {
		panicf("parser rule %q has no body", r.name)
	}
	return r.element.ParseTerminal(sv)
}

func (r *ParserRule) ParseRule(sv []byte, parent *CstNode, ctx *Context) int {
	if r.element == nil {
		panicf("parser rule %q has no body", r.name)
	}
	size := snapshot(parent)
	idx := len(parent.Children)
	parent.Children = append(parent.Children, CstNode{})
	node := &parent.Children[idx]
	i := r.element.ParseRule(sv, node, ctx)
	if failed(i) {
		rollback(parent, size)
		return FAIL
	}
	node.Text = sv[:i]
	node.GrammarSource = r
	return i
}

func (r *ParserRule) Value(node *CstNode) any {
	rec := r.newRecord()
	for i := range node.Children {
		applyAction(rec, &node.Children[i])
	}
	return rec
}

// Parse runs this rule as the entry point of a parse.
func (r *ParserRule) Parse(text []byte, ctx *Context) *Result {
	root := &RootCstNode{FullText: text}
	root.Text = text
	root.GrammarSource = r
	sv := text
	skipped := ctx.skipHidden(sv, &root.CstNode)
	consumed := r.ParseRule(sv[skipped:], &root.CstNode, ctx)
	if failed(consumed) {
		return &Result{Ok: false, Len: skipped, Root: root}
	}
	total := skipped + consumed
	var value any
	// The last child of root is the node ParseRule just appended for this
	// rule; any earlier children are hidden leaves from the left edge.
	if n := len(root.Children); n > 0 {
		value = r.Value(&root.Children[n-1])
	}
	return &Result{Ok: total == len(text), Len: total, Root: root, Value: value}
}

// DataTypeRule is matched in rule mode, hidden-token-aware like a parser
// rule, but its value is a scalar computed by a converter over its CST
// subtree rather than an AST record.
type DataTypeRule struct {
	name      string
	element   Element
	converter func(*CstNode) any
}

func (r *DataTypeRule) Name() string { return r.name }

func (r *DataTypeRule) Init(e Element) *DataTypeRule {
	r.element = e
	return r
}

func (r *DataTypeRule) ParseTerminal(sv []byte) int {
	if r.element == nil {
		panicf("data-type rule %q has no body", r.name)
	}
	return r.element.ParseTerminal(sv)
}

func (r *DataTypeRule) ParseRule(sv []byte, parent *CstNode, ctx *Context) int {
	if r.element == nil {
		panicf("data-type rule %q has no body", r.name)
	}
	size := snapshot(parent)
	idx := len(parent.Children)
	parent.Children = append(parent.Children, CstNode{})
	node := &parent.Children[idx]
	i := r.element.ParseRule(sv, node, ctx)
	if failed(i) {
		rollback(parent, size)
		return FAIL
	}
	node.Text = sv[:i]
	node.GrammarSource = r
	return i
}

func (r *DataTypeRule) Value(node *CstNode) any {
	if r.converter != nil {
		return r.converter(node)
	}
	return string(node.LeafText())
}

func (r *DataTypeRule) Parse(text []byte, ctx *Context) *Result {
	root := &RootCstNode{FullText: text}
	root.Text = text
	root.GrammarSource = r
	sv := text
	skipped := ctx.skipHidden(sv, &root.CstNode)
	consumed := r.ParseRule(sv[skipped:], &root.CstNode, ctx)
	if failed(consumed) {
		return &Result{Ok: false, Len: skipped, Root: root}
	}
	total := skipped + consumed
	var value any
	if n := len(root.Children); n > 0 {
		value = r.Value(&root.Children[n-1])
	}
	return &Result{Ok: total == len(text), Len: total, Root: root, Value: value}
}

type terminalKind uint8

const (
	kindNormal terminalKind = iota
	kindHidden
	kindIgnored
)

// TerminalRule is matched in terminal mode: no hidden-token skipping
// inside its own body. In rule mode it produces a single leaf node and
// then skips hidden tokens on its right edge.
type TerminalRule struct {
	name      string
	element   Element
	kind      terminalKind
	converter func(*CstNode) any
}

func (r *TerminalRule) Name() string { return r.name }

func (r *TerminalRule) Init(e Element) *TerminalRule {
	r.element = e
	return r
}

// Hide marks the rule as hidden: its matches are attached to the CST but
// flagged Hidden (e.g. comments).
func (r *TerminalRule) Hide() *TerminalRule {
	r.kind = kindHidden
	return r
}

// Ignore marks the rule as ignored: its matches are never attached to the
// CST at all (e.g. whitespace).
func (r *TerminalRule) Ignore() *TerminalRule {
	r.kind = kindIgnored
	return r
}

func (r *TerminalRule) hidden() bool  { return r.kind != kindNormal }
func (r *TerminalRule) ignored() bool { return r.kind == kindIgnored }

func (r *TerminalRule) ParseTerminal(sv []byte) int {
	if r.element == nil {
		panicf("terminal rule %q has no body", r.name)
	}
	return r.element.ParseTerminal(sv)
}

func (r *TerminalRule) ParseRule(sv []byte, parent *CstNode, ctx *Context) int {
	i := r.ParseTerminal(sv)
	if failed(i) {
		return FAIL
	}
	if r.ignored() {
		panicf("terminal rule %q is ignored and cannot appear directly in a rule body", r.name)
	}
	parent.Children = append(parent.Children, CstNode{
		Text:          sv[:i],
		GrammarSource: r,
		IsLeaf:        true,
		Hidden:        r.kind == kindHidden,
	})
	return i + ctx.skipHidden(sv[i:], parent)
}

func (r *TerminalRule) Value(node *CstNode) any {
	if r.converter != nil {
		return r.converter(node)
	}
	return string(node.LeafText())
}

func (r *TerminalRule) Parse(text []byte, ctx *Context) *Result {
	root := &RootCstNode{FullText: text}
	root.Text = text
	root.GrammarSource = r
	sv := text
	skipped := ctx.skipHidden(sv, &root.CstNode)
	consumed := r.ParseTerminal(sv[skipped:])
	if failed(consumed) {
		return &Result{Ok: false, Len: skipped, Root: root}
	}
	end := skipped + consumed
	root.Children = append(root.Children, CstNode{
		Text:          sv[skipped:end],
		GrammarSource: r,
		IsLeaf:        true,
		Hidden:        r.kind == kindHidden,
	})
	value := r.Value(&root.Children[len(root.Children)-1])
	total := end + ctx.skipHidden(sv[end:], &root.CstNode)
	return &Result{Ok: total == len(text), Len: total, Root: root, Value: value}
}
