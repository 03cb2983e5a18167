package lexer

import (
	"bytes"

	"github.com/ovum-lang/ovum/core/invariant"
	"github.com/ovum-lang/ovum/core/token"
)

// cursor is the scan position. All three fields move together on every
// Advance and RetreatOne; nothing recomputes them from the buffer start.
type cursor struct {
	offset int // 0-based byte offset of the next unread byte
	line   int // 1-based
	column int // 1-based, counted in bytes
}

// IsAtEnd reports whether every byte has been consumed
func (l *Lexer) IsAtEnd() bool {
	return l.cur.offset >= len(l.input)
}

// Peek returns the byte offset positions past the cursor without consuming
// it. Past the end it returns 0.
func (l *Lexer) Peek(offset int) byte {
	idx := l.cur.offset + offset
	if idx < 0 || idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

// Current returns the most recently consumed byte, or 0 before the first
func (l *Lexer) Current() byte {
	if l.cur.offset == 0 {
		return 0
	}
	return l.input[l.cur.offset-1]
}

// Advance consumes and returns the next byte. A newline moves to column 1
// of the next line; any other byte moves one column right. At the end it
// returns 0 and does nothing.
func (l *Lexer) Advance() byte {
	if l.IsAtEnd() {
		return 0
	}
	ch := l.input[l.cur.offset]
	l.cur.offset++
	if ch == '\n' {
		l.cur.line++
		l.cur.column = 1
	} else {
		l.cur.column++
	}
	if l.debugLevel >= DebugDetailed {
		l.recordDebugEvent("advance", string(ch))
	}
	return ch
}

// RetreatOne un-consumes exactly one byte by inverting Advance.
// Retreating over a newline scans back to the previous line start only.
func (l *Lexer) RetreatOne() {
	if l.cur.offset == 0 {
		return
	}
	l.cur.offset--
	if l.input[l.cur.offset] != '\n' {
		l.cur.column--
		return
	}
	l.cur.line--
	lineStart := bytes.LastIndexByte(l.input[:l.cur.offset], '\n') + 1
	l.cur.column = l.cur.offset - lineStart + 1
	invariant.InRange(l.cur.column, 1, l.cur.offset+1, "column after RetreatOne")
}

// ConsumeWhile greedily consumes bytes matching pred and returns them
func (l *Lexer) ConsumeWhile(pred func(byte) bool) string {
	from := l.cur.offset
	for !l.IsAtEnd() && pred(l.input[l.cur.offset]) {
		l.Advance()
	}
	return string(l.input[from:l.cur.offset])
}

// RawLexeme returns the exact source text from the current token start to
// the cursor.
func (l *Lexer) RawLexeme() string {
	if l.cur.offset < l.start.offset {
		return ""
	}
	return string(l.input[l.start.offset:l.cur.offset])
}

// tokenPos is the position of the current token's first byte
func (l *Lexer) tokenPos() token.Position {
	return token.Position{Line: l.start.line, Column: l.start.column, Offset: l.start.offset}
}

// cursorPos is the position of the next unread byte
func (l *Lexer) cursorPos() token.Position {
	return token.Position{Line: l.cur.line, Column: l.cur.column, Offset: l.cur.offset}
}
