package pluralexpr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	eof     = -1
	digits  = "0123456789"
	symbols = "=!<>|&"
)

// tokenType identifies a lexical token in a plural expression.
type tokenType int

const (
	tokenError tokenType = iota
	tokenEOF
	tokenInt
	tokenVar
	tokenMod        // %
	tokenEq         // ==
	tokenNotEq      // !=
	tokenGt         // >
	tokenGte        // >=
	tokenLt         // <
	tokenLte        // <=
	tokenAnd        // &&
	tokenOr         // ||
	tokenNot        // !
	tokenIf         // ?
	tokenElse       // :
	tokenLeftParen  // (
	tokenRightParen // )
)

var tokenName = map[tokenType]string{
	tokenError:      "error",
	tokenEOF:        "EOF",
	tokenInt:        "int",
	tokenVar:        "n",
	tokenMod:        "%",
	tokenEq:         "==",
	tokenNotEq:      "!=",
	tokenGt:         ">",
	tokenGte:        ">=",
	tokenLt:         "<",
	tokenLte:        "<=",
	tokenAnd:        "&&",
	tokenOr:         "||",
	tokenNot:        "!",
	tokenIf:         "?",
	tokenElse:       ":",
	tokenLeftParen:  "(",
	tokenRightParen: ")",
}

func (t tokenType) String() string {
	if name, ok := tokenName[t]; ok {
		return name
	}
	return fmt.Sprintf("token%d", int(t))
}

var symbolTokens = map[string]tokenType{
	"==": tokenEq,
	"!=": tokenNotEq,
	">":  tokenGt,
	">=": tokenGte,
	"<":  tokenLt,
	"<=": tokenLte,
	"&&": tokenAnd,
	"||": tokenOr,
	"!":  tokenNot,
}

// token is a single token produced by the lexer.
type token struct {
	typ tokenType
	val string
}

func (t token) String() string {
	if t.val != "" {
		return fmt.Sprintf("<%s:%s>", t.typ, t.val)
	}
	return fmt.Sprintf("<%s>", t.typ)
}

// lexer scans a plural expression and produces tokens. It only ever sees
// input that already passed the character whitelist, so anything it cannot
// tokenize is reported as a tokenError and surfaces as ErrInvalidSyntax.
type lexer struct {
	input string
	pos   int
	width int
}

func (l *lexer) next() token {
	for {
		r := l.nextRune()
		switch r {
		case ' ':
			// skip
		case eof:
			return token{typ: tokenEOF}
		case 'n':
			return token{typ: tokenVar}
		case '%':
			return token{typ: tokenMod}
		case '?':
			return token{typ: tokenIf}
		case ':':
			return token{typ: tokenElse}
		case '(':
			return token{typ: tokenLeftParen}
		case ')':
			return token{typ: tokenRightParen}
		default:
			l.backup()
			if s := l.nextRun(digits); s != "" {
				return token{typ: tokenInt, val: s}
			}
			if s := l.nextRun(symbols); s != "" {
				if typ, ok := symbolTokens[s]; ok {
					return token{typ: typ}
				}
				return token{typ: tokenError, val: fmt.Sprintf("unknown operator %q", s)}
			}
			return token{typ: tokenError, val: fmt.Sprintf("unexpected character %q", string(r))}
		}
	}
}

func (l *lexer) nextRune() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	return r
}

// nextRun consumes a run of runes from the valid set.
func (l *lexer) nextRun(valid string) string {
	pos := l.pos
	for strings.IndexRune(valid, l.nextRune()) >= 0 {
	}
	l.backup()
	return l.input[pos:l.pos]
}

// backup steps back one rune. Valid once per call of nextRune.
func (l *lexer) backup() {
	l.pos -= l.width
}

// tokenStream wraps the lexer with a LIFO push-back buffer so the parser
// can peek ahead.
type tokenStream struct {
	lexer *lexer
	buf   []token
	count int
}

func newTokenStream(expr string) *tokenStream {
	return &tokenStream{lexer: &lexer{input: expr}, buf: make([]token, 4)}
}

func (s *tokenStream) pop() token {
	if s.count == 0 {
		return s.lexer.next()
	}
	s.count--
	return s.buf[s.count]
}

func (s *tokenStream) push(t token) {
	if s.count >= len(s.buf) {
		buf := make([]token, len(s.buf)*2)
		copy(buf, s.buf)
		s.buf = buf
	}
	s.buf[s.count] = t
	s.count++
}
