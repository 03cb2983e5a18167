package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovum-lang/ovum/core/token"
)

// TestTelemetryOff_ZeroOverhead tests that TelemetryOff allocates nothing
func TestTelemetryOff_ZeroOverhead(t *testing.T) {
	l := NewLexer(WithLogger(quietLogger()))
	l.Init([]byte("var test = 123"))

	assert.Nil(t, l.tokenTelemetry, "TelemetryOff should not allocate tokenTelemetry map")
	assert.Nil(t, l.debugEvents, "DebugOff should not allocate debugEvents slice")

	tokens, err := l.Tokenize()
	require.NoError(t, err)
	assert.NotEmpty(t, tokens)

	assert.Nil(t, l.GetTokenTelemetry())
	assert.Nil(t, l.GetDebugEvents())
}

func TestTelemetryBasic_TokenCounts(t *testing.T) {
	l := NewLexer(WithTelemetryBasic(), WithLogger(quietLogger()))
	l.Init([]byte("var x = 1\nvar y = x"))

	_, err := l.Tokenize()
	require.NoError(t, err)

	telemetry := l.GetTokenTelemetry()
	want := map[token.Kind]int{
		token.KEYWORD:  2,
		token.IDENT:    3,
		token.OPERATOR: 2,
		token.INT:      1,
		token.NEWLINE:  1,
		token.EOF:      1,
	}

	require.Len(t, telemetry, len(want))
	for kind, count := range want {
		require.Contains(t, telemetry, kind)
		assert.Equal(t, count, telemetry[kind].Count, "count for %s", kind)
		assert.Equal(t, kind, telemetry[kind].Kind)
		assert.Zero(t, telemetry[kind].TotalTime, "basic mode records no timing")
	}
}

func TestTelemetryTiming_Accumulates(t *testing.T) {
	l := NewLexer(WithTelemetryTiming(), WithLogger(quietLogger()))
	l.Init([]byte(strings.Repeat("alpha beta gamma ", 50)))

	_, err := l.Tokenize()
	require.NoError(t, err)

	ident := l.GetTokenTelemetry()[token.IDENT]
	require.NotNil(t, ident)
	assert.Equal(t, 150, ident.Count)
	assert.LessOrEqual(t, ident.MinTime, ident.MaxTime)
	assert.LessOrEqual(t, ident.AvgTime, ident.MaxTime)
}

func TestTelemetryIsACopy(t *testing.T) {
	l := NewLexer(WithTelemetryBasic(), WithLogger(quietLogger()))
	l.Init([]byte("a b"))
	_, err := l.Tokenize()
	require.NoError(t, err)

	first := l.GetTokenTelemetry()
	first[token.IDENT].Count = 1000

	assert.Equal(t, 2, l.GetTokenTelemetry()[token.IDENT].Count)
}

func TestTelemetryResetOnInit(t *testing.T) {
	l := NewLexer(WithTelemetryBasic(), WithLogger(quietLogger()))

	l.Init([]byte("a b c"))
	_, err := l.Tokenize()
	require.NoError(t, err)

	l.Init([]byte("d"))
	_, err = l.Tokenize()
	require.NoError(t, err)

	assert.Equal(t, 1, l.GetTokenTelemetry()[token.IDENT].Count)
}

func TestDebugPaths_RecordsDispatch(t *testing.T) {
	l := NewLexer(WithDebugPaths(), WithLogger(quietLogger()))
	l.Init([]byte("x 1"))

	_, err := l.Tokenize()
	require.NoError(t, err)

	events := l.GetDebugEvents()
	var names []string
	for _, e := range events {
		names = append(names, e.Event)
		assert.False(t, e.Timestamp.IsZero())
	}

	assert.Contains(t, names, "dispatch")
	assert.Contains(t, names, "emit")
	assert.Contains(t, names, "enter_scanNumber")
	assert.NotContains(t, names, "advance", "byte tracing needs DebugDetailed")

	assert.Equal(t, "identifier", events[0].Context)
	assert.Equal(t, token.Position{Line: 1, Column: 2, Offset: 1}, events[0].Position)
}

func TestDebugDetailed_RecordsAdvance(t *testing.T) {
	l := NewLexer(WithDebugDetailed(), WithLogger(quietLogger()))
	l.Init([]byte("ab"))

	_, err := l.Tokenize()
	require.NoError(t, err)

	advances := 0
	for _, e := range l.GetDebugEvents() {
		if e.Event == "advance" {
			advances++
		}
	}
	assert.Equal(t, 2, advances)
}

func TestDebugLoggingGoesToLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLexer(WithDebugPaths(), WithLogger(newLexerLogger(&buf, true)))
	l.Init([]byte("x"))

	_, err := l.Tokenize()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=dispatch")
	assert.Contains(t, out, "msg=lexed")
	assert.NotContains(t, out, "time=", "timestamps are stripped")
	assert.NotContains(t, out, "level=", "levels are stripped")
}

func TestLoggerQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewLexer(WithLogger(newLexerLogger(&buf, false)))
	l.Init([]byte("x"))

	_, err := l.Tokenize()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
