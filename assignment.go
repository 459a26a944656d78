package pegium

// Assignment wraps a grammar element and a typed setter for a field of an
// AST record. In both modes it just delegates parsing to the wrapped
// element; on success it stamps itself onto the CST node the element
// produced, so the AST-build pass can find it later. Go generic
// field-accessor closures stand in for member-pointer-style field
// dispatch.
type Assignment struct {
	element Element
	apply   func(record any, value any)
}

func newAssignment(element Element, apply func(any, any)) *Assignment {
	if !isAssignable(element) {
		panicf("an assignment can only wrap a rule call, a literal, or an ordered choice of rule calls and literals")
	}
	return &Assignment{element: element, apply: apply}
}

// isAssignable reports whether element is a rule call, a literal, or an
// ordered choice composed entirely of rule calls and/or literals: the set
// of element kinds guaranteed to yield exactly one CST node with a
// computable value.
func isAssignable(element Element) bool {
	switch e := element.(type) {
	case *RuleCall, *Literal:
		return true
	case *orderedChoice:
		for _, child := range e.elements {
			if !isAssignable(child) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (a *Assignment) ParseTerminal(sv []byte) int {
	panicf("an assignment cannot be used inside a terminal rule")
	return FAIL
}

func (a *Assignment) ParseRule(sv []byte, parent *CstNode, ctx *Context) int {
	index := len(parent.Children)
	n := a.element.ParseRule(sv, parent, ctx)
	if success(n) {
		parent.Children[index].Action = a
	}
	return n
}

// computeValue: if the node's grammar source is a rule, ask that rule for
// its value (recursively building any nested AST record); otherwise (a
// literal or character class) the value is the matched text as a string.
func computeValue(node *CstNode) any {
	if rule, ok := node.GrammarSource.(GrammarRule); ok {
		return rule.Value(node)
	}
	return string(node.Text)
}

// applyAction runs node's action, if any, against rec (the AST record
// currently under construction). It is a no-op for nodes with no action:
// punctuation, hidden tokens, and unassigned rule calls just don't show up
// in the AST, only in the CST.
func applyAction(rec any, node *CstNode) {
	if node.Action == nil {
		return
	}
	value := computeValue(node)
	node.Action.apply(rec, value)
}

// Assign builds an assignment that sets a scalar, string or owned-record
// field: field extracts the target field's address from the AST record
// under construction, and element is the assignable grammar piece whose
// match becomes the field's value.
func Assign[T any, F any](field func(*T) *F, element Element) *Assignment {
	return newAssignment(element, func(rec any, value any) {
		t, ok := rec.(*T)
		if !ok {
			panicf("assign: record is %T, not %T", rec, t)
		}
		*field(t) = coerce[F](value)
	})
}

// Append builds an assignment that appends to a vector field.
func Append[T any, E any](field func(*T) *[]E, element Element) *Assignment {
	return newAssignment(element, func(rec any, value any) {
		t, ok := rec.(*T)
		if !ok {
			panicf("append: record is %T, not %T", rec, t)
		}
		fp := field(t)
		*fp = append(*fp, coerce[E](value))
	})
}

// coerce asserts value to F, panicking with a descriptive message on
// mismatch: a type mismatch between a matched value and its target field
// is a fatal programming error, never a parse failure.
func coerce[F any](value any) F {
	v, ok := value.(F)
	if !ok {
		var zero F
		panicf("cannot assign value of type %T to field of type %T", value, zero)
	}
	return v
}
