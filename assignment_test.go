package pegium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAssignable(t *testing.T) {
	p := NewParser()
	call := p.Call("Whatever")

	assert.True(t, isAssignable(Lit("x")))
	assert.True(t, isAssignable(call))
	assert.True(t, isAssignable(Choice(Lit("x"), call)))
	assert.False(t, isAssignable(Seq(Lit("x"), Lit("y"))))
	assert.False(t, isAssignable(Many(Lit("x"))))
	assert.False(t, isAssignable(Choice(Lit("x"), Seq(Lit("y"), Lit("z")))))
}

func TestAssignPanicsOnNonAssignableElement(t *testing.T) {
	assert.Panics(t, func() {
		Assign(func(g *greeting) *string { return &g.Name }, Seq(Lit("a"), Lit("b")))
	})
}

type count struct {
	N int64
}

func TestAssignCoerceMismatchPanicsAtParseTime(t *testing.T) {
	p := NewParser()
	number := DataRule[int64](p, "Number", func(node *CstNode) int64 { return 1 })
	number.Init(Lit("1"))
	// Name is a string field but Number's value is int64: a grammar bug
	// that must surface as a panic, never a silent FAIL.
	Rule[greeting](p, "R").Init(Assign(func(g *greeting) *string { return &g.Name }, p.Call("Number")))

	assert.Panics(t, func() {
		p.Parse("R", []byte("1"))
	})
}

type bag struct {
	Items []string
}

func TestAppendAccumulatesRepeatedMatches(t *testing.T) {
	p := NewParser()
	Terminal[string](p, "WS", nil).Init(AtLeastOne(Space)).Ignore()
	Terminal[string](p, "WORD", nil).Init(AtLeastOne(Word))
	Rule[bag](p, "Bag").Init(AtLeastOneSep(Lit(","), Append(func(b *bag) *[]string { return &b.Items }, p.Call("WORD"))))

	result := p.Parse("Bag", []byte("a, b, c"))
	require.True(t, result.Ok)
	got := result.Value.(*bag)
	assert.Equal(t, []string{"a", "b", "c"}, got.Items)
}

func TestUnassignedRuleCallsAreInvisibleToAst(t *testing.T) {
	p := NewParser()
	Terminal[string](p, "PUNCT", nil).Init(Lit(";"))
	Rule[greeting](p, "R").Init(Seq(Assign(func(g *greeting) *string { return &g.Name }, p.Call("NAME")), p.Call("PUNCT")))
	Terminal[string](p, "NAME", nil).Init(AtLeastOne(Word))

	result := p.Parse("R", []byte("ok;"))
	require.True(t, result.Ok)
	g := result.Value.(*greeting)
	assert.Equal(t, "ok", g.Name)
}
