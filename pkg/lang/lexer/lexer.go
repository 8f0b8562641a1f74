// Package lexer tokenizes a single FFmpeg command string into a stream of
// token.Token values, preserving precise source spans for every token.
package lexer

import (
	"strings"

	"github.com/chicogong/ffmpeg-lint/pkg/lang/token"
)

// Lexer performs shell-style word splitting over a command buffer, honoring
// quoted strings (quotes are stripped from the literal but the span still
// covers the original source text, quotes included).
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New creates a Lexer over content. Internal positions start at line 1,
// column 0; the caller (pkg/offset) rebases them onto editor coordinates.
func New(content string) *Lexer {
	return &Lexer{
		src:  []rune(content),
		pos:  0,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) here() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return r
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (l *Lexer) skipSpace() {
	for !l.eof() && isSpace(l.peek()) {
		l.advance()
	}
}

// NextToken returns the next token in the stream. Repeated calls after EOF
// keep returning an EOF token at the final position.
func (l *Lexer) NextToken() token.Token {
	l.skipSpace()
	if l.eof() {
		p := l.here()
		return token.Token{Type: token.EOF, Span: token.Span{Start: p, End: p}}
	}

	start := l.here()
	var raw strings.Builder
	var literal strings.Builder

	for !l.eof() && !isSpace(l.peek()) {
		r := l.peek()
		if r == '"' || r == '\'' {
			quote := r
			raw.WriteRune(l.advance()) // opening quote
			for !l.eof() && l.peek() != quote {
				c := l.advance()
				raw.WriteRune(c)
				literal.WriteRune(c)
			}
			if !l.eof() {
				raw.WriteRune(l.advance()) // closing quote
			}
			continue
		}
		raw.WriteRune(l.advance())
		literal.WriteRune(r)
	}

	end := l.here()
	text := raw.String()

	tok := token.Token{
		Literal: literal.String(),
		Span:    token.Span{Start: start, End: end},
	}

	if strings.EqualFold(text, "ffmpeg") {
		tok.Type = token.FFMPEG
		return tok
	}

	if strings.HasPrefix(text, "-") && len(text) > 1 {
		tok.Type = token.FLAG
		tok.Literal, tok.Spec = splitSpec(literal.String())
		return tok
	}

	tok.Type = token.WORD
	return tok
}

// splitSpec separates a flag's base name from a trailing ":v"/":a"/":s"/":N"
// stream specifier, e.g. "-c:v" -> ("-c", "v"); "-map" -> ("-map", "").
func splitSpec(flag string) (base string, spec string) {
	idx := strings.LastIndex(flag, ":")
	if idx < 0 {
		return flag, ""
	}
	return flag[:idx], flag[idx+1:]
}

// All tokenizes the remainder of the source into a slice, terminated by (and
// including) a single EOF token.
func (l *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Type == token.EOF {
			return toks
		}
	}
}
