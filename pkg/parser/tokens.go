package parser

import "regexp"

// TokenType identifies a lexical token kind.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenBang
	TokenComma
)

// Token is a single lexed token together with its source position.
type Token struct {
	Type TokenType
	Text string
	Pos  int
}

// tokenRule is a regex tried, in table order, at the current lexing
// position. The first matching rule wins, mirroring the teacher's own
// regex-rule-table Lexer in pkg/parser/tokens.go.
type tokenRule struct {
	pattern *regexp.Regexp
	ttype   TokenType
}

var tokenRules = []tokenRule{
	{regexp.MustCompile(`^[0-9]+`), TokenNumber},
	{regexp.MustCompile(`^[A-Za-z]+`), TokenIdent},
	{regexp.MustCompile(`^\(`), TokenLParen},
	{regexp.MustCompile(`^\)`), TokenRParen},
	{regexp.MustCompile(`^\[`), TokenLBracket},
	{regexp.MustCompile(`^\]`), TokenRBracket},
	{regexp.MustCompile(`^\+`), TokenPlus},
	{regexp.MustCompile(`^-`), TokenMinus},
	{regexp.MustCompile(`^\*`), TokenStar},
	{regexp.MustCompile(`^/`), TokenSlash},
	{regexp.MustCompile(`^\^`), TokenCaret},
	{regexp.MustCompile(`^!`), TokenBang},
	{regexp.MustCompile(`^,`), TokenComma},
}

// Lexer tokenizes the parser's input text on demand.
type Lexer struct {
	src string
	pos int
}

// NewLexer builds a Lexer over src.
func NewLexer(src string) *Lexer { return &Lexer{src: src} }

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' || l.src[l.pos] == '\n' || l.src[l.pos] == '\r') {
		l.pos++
	}
}

// Next returns the next token, or a TokenEOF token at end of input, or a
// *ParseError if the input contains a byte no rule recognizes.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	rest := l.src[l.pos:]
	for _, rule := range tokenRules {
		if loc := rule.pattern.FindStringIndex(rest); loc != nil && loc[0] == 0 {
			text := rest[:loc[1]]
			l.pos += loc[1]
			return Token{Type: rule.ttype, Text: text, Pos: start}, nil
		}
	}

	return Token{}, &ParseError{Pos: start, Msg: "unrecognized character " + string(l.src[l.pos])}
}
