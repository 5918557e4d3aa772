// Package token defines the lexical tokens produced by pkg/scanner and
// consumed by pkg/compiler.
package token

// Kind identifies the lexical category of a Token.
type Kind int

const (
	// Single-character punctuation.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character operators.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Sentinels.
	Error
	EOF
)

var names = map[Kind]string{
	LeftParen: "LEFT_PAREN", RightParen: "RIGHT_PAREN",
	LeftBrace: "LEFT_BRACE", RightBrace: "RIGHT_BRACE",
	Comma: "COMMA", Dot: "DOT", Minus: "MINUS", Plus: "PLUS",
	Semicolon: "SEMICOLON", Slash: "SLASH", Star: "STAR",
	Bang: "BANG", BangEqual: "BANG_EQUAL",
	Equal: "EQUAL", EqualEqual: "EQUAL_EQUAL",
	Greater: "GREATER", GreaterEqual: "GREATER_EQUAL",
	Less: "LESS", LessEqual: "LESS_EQUAL",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "AND", Class: "CLASS", Else: "ELSE", False: "FALSE",
	For: "FOR", Fun: "FUN", If: "IF", Nil: "NIL", Or: "OR",
	Print: "PRINT", Return: "RETURN", Super: "SUPER", This: "THIS",
	True: "TRUE", Var: "VAR", While: "WHILE",
	Error: "ERROR", EOF: "EOF",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps reserved identifiers to their keyword Kind.
var Keywords = map[string]Kind{
	"and": And, "class": Class, "else": Else, "false": False,
	"for": For, "fun": Fun, "if": If, "nil": Nil, "or": Or,
	"print": Print, "return": Return, "super": Super, "this": This,
	"true": True, "var": Var, "while": While,
}

// Token is a borrowed view into the source buffer scanned to produce it.
// Lexeme is a slice of the original source string; a Token is only valid
// while that source string is alive. Error tokens carry their message in
// Lexeme instead of a source slice.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// Synthetic builds a Token that doesn't borrow from any source buffer,
// used for error tokens.
func Synthetic(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}
