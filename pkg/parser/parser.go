// Package parser implements the hand-rolled tokenizer and precedence-climbing
// parser that turns surface syntax into a basic algebraic expression tree.
package parser

import (
	"math/big"

	"github.com/casforge/algebra/pkg/ast"
)

// DefaultMaxDepth bounds the recursion depth of a single parse, guarding the
// call stack against pathological input (§5: deeply nested input is
// rejected up-front rather than trampolined).
const DefaultMaxDepth = 500

// Parser holds the lexer state for a single parse.
type Parser struct {
	lex      *Lexer
	cur      Token
	maxDepth int
	depth    int
}

// Parse parses text into a basic expression using the default depth limit.
func Parse(text string) (ast.Expr, error) {
	return ParseWithDepth(text, DefaultMaxDepth)
}

// ParseWithDepth parses text into a basic expression, rejecting input whose
// expression nesting exceeds maxDepth.
func ParseWithDepth(text string, maxDepth int) (ast.Expr, error) {
	p := &Parser{lex: NewLexer(text), maxDepth: maxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseArithmeticExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, &ParseError{Pos: p.cur.Pos, Msg: "unexpected trailing input"}
	}
	return expr, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &ParseError{Pos: p.cur.Pos, Msg: "expression nested too deeply"}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// parseArithmeticExpression handles the lowest-precedence level: + and -.
func (p *Parser) parseArithmeticExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseMultiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicativeExpression()
		if err != nil {
			return nil, err
		}
		if op == TokenMinus {
			// a - b lowers to a + Neg(b).
			right = ast.NewNeg(right)
		}
		left = ast.NewSum(left, right)
	}
	return left, nil
}

// parseMultiplicativeExpression handles * and /.
func (p *Parser) parseMultiplicativeExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}

	for p.cur.Type == TokenStar || p.cur.Type == TokenSlash {
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		if op == TokenSlash {
			// a / b lowers to a * b^(-1).
			right = ast.NewPow(right, ast.NewConstInt(-1))
		}
		left = ast.NewProduct(left, right)
	}
	return left, nil
}

// parseUnaryExpression handles prefix unary minus, right-associative
// (repeated minuses each wrap the next, so "--x" is Neg(Neg(x))), and sits
// above exponentiation in precedence: "-x^2" parses as -(x^2).
func (p *Parser) parseUnaryExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.cur.Type == TokenMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewNeg(operand), nil
	}
	return p.parseExponentialExpression()
}

// parseExponentialExpression handles ^, right-associative: x^y^z is
// x^(y^z).
func (p *Parser) parseExponentialExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	base, err := p.parsePostfixExpression()
	if err != nil {
		return nil, err
	}

	if p.cur.Type == TokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exponent, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewPow(base, exponent), nil
	}
	return base, nil
}

// parsePostfixExpression handles the postfix factorial operator, which
// binds tighter than exponentiation (so "x^2!" is x^(2!), not (x^2)!) and
// may chain ("x!!").
func (p *Parser) parsePostfixExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	expr, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenBang {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr = ast.NewFactorial(expr)
	}
	return expr, nil
}

// parsePrimaryExpression handles atoms: integer literals, parenthesized
// expressions, function calls (name[arg, arg, ...]), and identifiers.
func (p *Parser) parsePrimaryExpression() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur.Type {
	case TokenNumber:
		text := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, &ParseError{Pos: p.cur.Pos, Msg: "malformed integer literal"}
		}
		return ast.NewConstFrac(n, big.NewInt(1)), nil

	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseArithmeticExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != TokenRParen {
			return nil, &ParseError{Pos: p.cur.Pos, Msg: "expected ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case TokenIdent:
		name := p.cur.Text
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == TokenLBracket {
			return p.parseFunctionCall(name)
		}
		return identifierToExpr(name, pos)

	default:
		return nil, &ParseError{Pos: p.cur.Pos, Msg: "expected a number, identifier, or '('"}
	}
}

// identifierToExpr implements §4.7's implicit-multiplication rule: an
// identifier of length > 1 is a product of its single-letter symbols, so
// "xy" parses as x*y.
func identifierToExpr(name string, pos int) (ast.Expr, error) {
	if len(name) == 0 {
		return nil, &ParseError{Pos: pos, Msg: "empty identifier"}
	}
	if len(name) == 1 {
		return ast.NewSymbol(name), nil
	}
	factors := make([]ast.Expr, len(name))
	for i, r := range name {
		factors[i] = ast.NewSymbol(string(r))
	}
	return ast.NewProduct(factors...), nil
}

func (p *Parser) parseFunctionCall(name string) (ast.Expr, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	var args []ast.Expr
	for p.cur.Type != TokenRBracket {
		arg, err := p.parseArithmeticExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.cur.Type == TokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			// Trailing-comma tolerance: a comma may be immediately
			// followed by ']'.
			if p.cur.Type == TokenRBracket {
				break
			}
			continue
		}
		break
	}

	if p.cur.Type != TokenRBracket {
		return nil, &ParseError{Pos: p.cur.Pos, Msg: "expected ']'"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewFunction(name, args...), nil
}
