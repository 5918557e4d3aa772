// Package scanner implements a restartable, single-character-lookahead
// lexer over a source string, producing one Token at a time on demand.
package scanner

import (
	"github.com/able-lang/clox-go/pkg/token"
)

// Scanner holds a view into a source string. Since Go strings are
// immutable and the Scanner keeps its own reference to the source, Scan
// stays safe to call for as long as the Scanner itself is reachable — the
// borrow is purely conceptual, matching the reference's pointer
// arithmetic without its lifetime hazards.
type Scanner struct {
	source  string
	start   int
	current int
	line    int
}

// New creates a Scanner positioned at the start of source, line 1.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	b := s.source[s.current]
	s.current++
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) makeToken(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Lexeme: s.source[s.start:s.current], Line: s.line}
}

func (s *Scanner) errorToken(msg string) token.Token {
	return token.Synthetic(token.Error, msg, s.line)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// Scan consumes and returns the next Token from the source. Once EOF has
// been returned, subsequent calls keep returning EOF.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespace()
	s.start = s.current

	if s.atEnd() {
		return s.makeToken(token.EOF)
	}

	c := s.advance()
	if isAlpha(c) {
		return s.identifier()
	}
	if isDigit(c) {
		return s.number()
	}

	switch c {
	case '(':
		return s.makeToken(token.LeftParen)
	case ')':
		return s.makeToken(token.RightParen)
	case '{':
		return s.makeToken(token.LeftBrace)
	case '}':
		return s.makeToken(token.RightBrace)
	case ';':
		return s.makeToken(token.Semicolon)
	case ',':
		return s.makeToken(token.Comma)
	case '.':
		return s.makeToken(token.Dot)
	case '-':
		return s.makeToken(token.Minus)
	case '+':
		return s.makeToken(token.Plus)
	case '/':
		return s.makeToken(token.Slash)
	case '*':
		return s.makeToken(token.Star)
	case '!':
		if s.match('=') {
			return s.makeToken(token.BangEqual)
		}
		return s.makeToken(token.Bang)
	case '=':
		if s.match('=') {
			return s.makeToken(token.EqualEqual)
		}
		return s.makeToken(token.Equal)
	case '<':
		if s.match('=') {
			return s.makeToken(token.LessEqual)
		}
		return s.makeToken(token.Less)
	case '>':
		if s.match('=') {
			return s.makeToken(token.GreaterEqual)
		}
		return s.makeToken(token.Greater)
	case '"':
		return s.string()
	}

	return s.errorToken("Unexpected character.")
}

func (s *Scanner) string() token.Token {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		return s.errorToken("Unterminated string.")
	}

	s.advance() // closing quote
	return s.makeToken(token.String)
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(token.Number)
}

func (s *Scanner) identifier() token.Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	lexeme := s.source[s.start:s.current]
	return s.makeToken(s.identifierKind(lexeme))
}

// identifierKind classifies a scanned identifier lexeme as a keyword or
// plain Identifier. The reference dispatches via a hand-rolled trie on
// the first (and for ambiguous starts, second) character; a map lookup
// is the idiomatic Go equivalent and preserves the same O(1) behavior.
func (s *Scanner) identifierKind(lexeme string) token.Kind {
	if kind, ok := token.Keywords[lexeme]; ok {
		return kind
	}
	return token.Identifier
}
