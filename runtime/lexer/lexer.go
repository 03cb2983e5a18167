package lexer

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ovum-lang/ovum/core/invariant"
	"github.com/ovum-lang/ovum/core/token"
)

// LexerOpt represents a lexer configuration option
type LexerOpt func(*LexerConfig)

// TelemetryMode controls telemetry collection (production-safe)
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Token counts only
	TelemetryTiming                      // Token counts + timing per kind
)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // Strategy tracing
	DebugDetailed                   // Byte-level tracing
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	telemetry    TelemetryMode
	debug        DebugLevel
	keepComments bool
	logger       *slog.Logger
}

// WithComments emits COMMENT tokens instead of discarding comments
func WithComments() LexerOpt {
	return func(c *LexerConfig) {
		c.keepComments = true
	}
}

// WithTelemetryBasic enables basic telemetry (token counts only)
func WithTelemetryBasic() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryBasic
	}
}

// WithTelemetryTiming enables timing telemetry (counts + timing per kind)
func WithTelemetryTiming() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryTiming
	}
}

// WithDebugPaths enables strategy tracing (development only)
func WithDebugPaths() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugPaths
	}
}

// WithDebugDetailed enables byte-level tracing (development only)
func WithDebugDetailed() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugDetailed
	}
}

// WithLogger routes debug logging to logger instead of the default
// stderr handler.
func WithLogger(logger *slog.Logger) LexerOpt {
	return func(c *LexerConfig) {
		c.logger = logger
	}
}

// TokenTelemetry holds per-kind telemetry (production-safe)
type TokenTelemetry struct {
	Kind      token.Kind
	Count     int
	TotalTime time.Duration
	AvgTime   time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string         // "dispatch", "enter_scanNumber", "emit", "advance"
	Position  token.Position // Cursor position when the event fired
	Context   string         // Current byte, strategy, token text, etc.
}

// Lexer turns an Ovum source buffer into tokens. A Lexer is not safe for
// concurrent use; Init may be called to reuse it for another buffer.
type Lexer struct {
	input []byte
	cur   cursor // next unread byte
	start cursor // first byte of the token being scanned

	keepComments bool
	logger       *slog.Logger

	// Telemetry (nil when disabled for zero allocation)
	telemetryMode  TelemetryMode
	tokenTelemetry map[token.Kind]*TokenTelemetry

	// Debug (nil when disabled for zero allocation)
	debugLevel  DebugLevel
	debugEvents []DebugEvent
}

// NewLexer creates a lexer with optional configuration. Call Init before
// Tokenize.
func NewLexer(opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Lexer{
		keepComments:  config.keepComments,
		logger:        config.logger,
		telemetryMode: config.telemetry,
		debugLevel:    config.debug,
	}
	if l.logger == nil {
		l.logger = defaultLogger()
	}

	// Only allocate telemetry structures when needed
	if config.telemetry > TelemetryOff {
		l.tokenTelemetry = make(map[token.Kind]*TokenTelemetry)
	}

	// Only allocate debug structures when needed
	if config.debug > DebugOff {
		l.debugEvents = make([]DebugEvent, 0, 256)
	}

	l.Init(nil)
	return l
}

// Init resets the lexer with new input (following Go scanner pattern)
func (l *Lexer) Init(input []byte) {
	l.input = input
	l.cur = cursor{offset: 0, line: 1, column: 1}
	l.start = l.cur

	if l.tokenTelemetry != nil {
		clear(l.tokenTelemetry)
	}
	if l.debugEvents != nil {
		l.debugEvents = l.debugEvents[:0]
	}
}

// Tokenize scans the whole buffer. On success the result ends with exactly
// one EOF token positioned at the end of input. On failure no tokens are
// returned and err is a *LexError.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	// Rough guess: one token per four bytes
	tokens := make([]token.Token, 0, len(l.input)/4+1)

	for !l.IsAtEnd() {
		var began time.Time
		if l.telemetryMode >= TelemetryTiming {
			began = time.Now()
		}

		l.start = l.cur
		ch := l.Advance()
		strat := strategyFor(ch)

		if l.debugLevel > DebugOff {
			l.recordDebugEvent("dispatch", strat.String())
		}

		tok, ok, err := scanners[strat](l)
		if err != nil {
			l.logger.Debug("lex failed", "error", err, "strategy", strat.String())
			return nil, err
		}

		invariant.Progress(l.start.offset, l.cur.offset, "Tokenize")

		if !ok {
			continue
		}

		if l.debugLevel > DebugOff {
			l.recordDebugEvent("emit", tok.String())
		}
		if l.telemetryMode > TelemetryOff {
			var elapsed time.Duration
			if l.telemetryMode >= TelemetryTiming {
				elapsed = time.Since(began)
			}
			l.recordTokenTelemetry(tok.Kind(), elapsed)
		}
		tokens = append(tokens, tok)
	}

	eof := token.NewEOF(l.cursorPos())
	if l.telemetryMode > TelemetryOff {
		l.recordTokenTelemetry(token.EOF, 0)
	}
	tokens = append(tokens, eof)

	l.logger.Debug("lexed", "bytes", len(l.input), "tokens", len(tokens))
	return tokens, nil
}

// Tokenize scans source with a fresh lexer. Comments are emitted as
// COMMENT tokens only when keepComments is set.
func Tokenize(source string, keepComments bool) ([]token.Token, error) {
	var opts []LexerOpt
	if keepComments {
		opts = append(opts, WithComments())
	}
	l := NewLexer(opts...)
	l.Init([]byte(source))
	return l.Tokenize()
}

// GetTokenTelemetry returns per-kind telemetry (production safe)
func (l *Lexer) GetTokenTelemetry() map[token.Kind]*TokenTelemetry {
	if l.telemetryMode == TelemetryOff || l.tokenTelemetry == nil {
		return nil
	}

	// Return a copy to prevent external modification
	result := make(map[token.Kind]*TokenTelemetry, len(l.tokenTelemetry))
	for k, v := range l.tokenTelemetry {
		telemetryCopy := *v
		result[k] = &telemetryCopy
	}
	return result
}

// GetDebugEvents returns debug events (development only)
func (l *Lexer) GetDebugEvents() []DebugEvent {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return nil
	}

	result := make([]DebugEvent, len(l.debugEvents))
	copy(result, l.debugEvents)
	return result
}

func (l *Lexer) recordTokenTelemetry(kind token.Kind, elapsed time.Duration) {
	telemetry, exists := l.tokenTelemetry[kind]
	if !exists {
		telemetry = &TokenTelemetry{
			Kind:    kind,
			MinTime: elapsed,
			MaxTime: elapsed,
		}
		l.tokenTelemetry[kind] = telemetry
	}

	telemetry.Count++

	if l.telemetryMode >= TelemetryTiming {
		telemetry.TotalTime += elapsed
		telemetry.AvgTime = telemetry.TotalTime / time.Duration(telemetry.Count)
		if elapsed < telemetry.MinTime {
			telemetry.MinTime = elapsed
		}
		if elapsed > telemetry.MaxTime {
			telemetry.MaxTime = elapsed
		}
	}
}

// recordDebugEvent records debug events when debug tracing is enabled
func (l *Lexer) recordDebugEvent(event, context string) {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return
	}

	l.debugEvents = append(l.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Position:  l.cursorPos(),
		Context:   context,
	})
	l.logger.Debug(event, "pos", l.cursorPos().String(), "context", context)
}

// debugEnv enables debug-level lexer logging when set
const debugEnv = "OVUM_DEBUG_LEXER"

func defaultLogger() *slog.Logger {
	return newLexerLogger(os.Stderr, os.Getenv(debugEnv) != "")
}

// newLexerLogger builds the lexer-friendly text handler: no timestamp or
// level noise, debug records only when debug is set.
func newLexerLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
