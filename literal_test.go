package pegium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLitPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Lit("") })
}

func TestLitParseTerminal(t *testing.T) {
	lit := Lit("for")
	assert.Equal(t, 3, lit.ParseTerminal([]byte("for i := 0")))
	assert.Equal(t, FAIL, lit.ParseTerminal([]byte("fo")))
	assert.Equal(t, FAIL, lit.ParseTerminal([]byte("bar")))
}

func TestLitKeywordBoundary(t *testing.T) {
	lit := Lit("for")
	var parent CstNode
	ctx := &Context{}
	// "forest" starts with "for" but the next byte continues a word, so
	// in rule mode the keyword must not match a mere prefix.
	assert.Equal(t, FAIL, lit.ParseRule([]byte("forest"), &parent, ctx))
	assert.Empty(t, parent.Children)

	n := lit.ParseRule([]byte("for i"), &parent, ctx)
	require.Equal(t, 3, n)
	require.Len(t, parent.Children, 1)
	assert.Equal(t, "for", string(parent.Children[0].Text))
}

func TestLitKeywordBoundaryDoesNotApplyToPunctuation(t *testing.T) {
	lit := Lit("{")
	var parent CstNode
	ctx := &Context{}
	n := lit.ParseRule([]byte("{}"), &parent, ctx)
	assert.Equal(t, 1, n)
}

func TestLitInsensitive(t *testing.T) {
	lit := Lit("For").Insensitive()
	assert.Equal(t, 3, lit.ParseTerminal([]byte("FOR")))
	assert.Equal(t, 3, lit.ParseTerminal([]byte("for")))
	assert.Equal(t, FAIL, lit.ParseTerminal([]byte("bar")))
}

func TestLitInsensitiveNoLettersStaysSensitive(t *testing.T) {
	lit := Lit("123").Insensitive()
	assert.True(t, lit.caseSensitive)
}

func TestLitString(t *testing.T) {
	assert.Equal(t, `"for"`, Lit("for").String())
}
