package parser

import "testing"

func TestLexerTokenizesEachRule(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want TokenType
	}{
		{"number", "123", TokenNumber},
		{"ident", "abc", TokenIdent},
		{"lparen", "(", TokenLParen},
		{"rparen", ")", TokenRParen},
		{"lbracket", "[", TokenLBracket},
		{"rbracket", "]", TokenRBracket},
		{"plus", "+", TokenPlus},
		{"minus", "-", TokenMinus},
		{"star", "*", TokenStar},
		{"slash", "/", TokenSlash},
		{"caret", "^", TokenCaret},
		{"bang", "!", TokenBang},
		{"comma", ",", TokenComma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer(tt.src)
			tok, err := lex.Next()
			if err != nil {
				t.Fatalf("Next() error: %v", err)
			}
			if tok.Type != tt.want {
				t.Errorf("got token type %d, want %d", tok.Type, tt.want)
			}
		})
	}
}

func TestLexerSkipsWhitespaceAndReportsEOF(t *testing.T) {
	lex := NewLexer("   \t\n  ")
	tok, err := lex.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Type != TokenEOF {
		t.Errorf("expected EOF after whitespace-only input")
	}
}

func TestLexerRejectsUnrecognizedCharacter(t *testing.T) {
	lex := NewLexer("@")
	if _, err := lex.Next(); err == nil {
		t.Errorf("expected an error for an unrecognized character")
	}
}
