package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovum-lang/ovum/core/token"
)

func newCursorLexer(input string) *Lexer {
	l := NewLexer(WithLogger(quietLogger()))
	l.Init([]byte(input))
	return l
}

func TestAdvanceTracksLinesAndColumns(t *testing.T) {
	l := newCursorLexer("ab\ncd")

	assert.Equal(t, byte(0), l.Current(), "nothing consumed yet")
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, l.cursorPos())

	assert.Equal(t, byte('a'), l.Advance())
	assert.Equal(t, byte('a'), l.Current())
	assert.Equal(t, token.Position{Line: 1, Column: 2, Offset: 1}, l.cursorPos())

	l.Advance() // b
	assert.Equal(t, byte('\n'), l.Advance())
	assert.Equal(t, token.Position{Line: 2, Column: 1, Offset: 3}, l.cursorPos())

	l.Advance() // c
	l.Advance() // d
	assert.True(t, l.IsAtEnd())
	assert.Equal(t, byte(0), l.Advance(), "advance at end is a no-op")
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 5}, l.cursorPos())
}

func TestPeek(t *testing.T) {
	l := newCursorLexer("xyz")
	l.Advance()

	assert.Equal(t, byte('y'), l.Peek(0))
	assert.Equal(t, byte('z'), l.Peek(1))
	assert.Equal(t, byte(0), l.Peek(2), "past the end")
	assert.Equal(t, byte('x'), l.Peek(-1))
	assert.Equal(t, byte(0), l.Peek(-5))
}

func TestRetreatOneInvertsAdvance(t *testing.T) {
	input := "ab\n\ncd\nefg"
	l := newCursorLexer(input)

	var positions []token.Position
	for !l.IsAtEnd() {
		positions = append(positions, l.cursorPos())
		l.Advance()
	}

	for i := len(positions) - 1; i >= 0; i-- {
		l.RetreatOne()
		require.Equal(t, positions[i], l.cursorPos(), "retreat to offset %d", i)
	}

	l.RetreatOne()
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, l.cursorPos(), "retreat at start is a no-op")
}

func TestRetreatOneOverNewline(t *testing.T) {
	l := newCursorLexer("abc\nd")
	for i := 0; i < 4; i++ {
		l.Advance()
	}
	require.Equal(t, token.Position{Line: 2, Column: 1, Offset: 4}, l.cursorPos())

	l.RetreatOne()
	assert.Equal(t, token.Position{Line: 1, Column: 4, Offset: 3}, l.cursorPos())
	assert.Equal(t, byte('c'), l.Current())
}

func TestConsumeWhileAndRawLexeme(t *testing.T) {
	l := newCursorLexer("  12345abc")

	assert.Equal(t, "  ", l.ConsumeWhile(whitespaceByte))
	assert.Equal(t, "", l.ConsumeWhile(whitespaceByte), "no match consumes nothing")

	l.start = l.cur
	assert.Equal(t, "12345", l.ConsumeWhile(digitByte))
	assert.Equal(t, "12345", l.RawLexeme())

	assert.Equal(t, "abc", l.ConsumeWhile(identPartByte))
	assert.Equal(t, "12345abc", l.RawLexeme())
	assert.True(t, l.IsAtEnd())
	assert.Equal(t, "", l.ConsumeWhile(identPartByte), "at end")
}
