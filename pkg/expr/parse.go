package expr

import (
	"errors"
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ErrSyntax is returned by Parse for malformed input.
var ErrSyntax = errors.New("syntax error")

// Token types produced by the scanner.
const (
	tokName = iota + 1
	tokLParen
	tokRParen
	tokComma
)

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

func initLexer() {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[a-z_]+`), makeToken(tokName))
		lexer.Add([]byte(`\(`), makeToken(tokLParen))
		lexer.Add([]byte(`\)`), makeToken(tokRParen))
		lexer.Add([]byte(`,`), makeToken(tokComma))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexerErr = lexer.Compile()
	})
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Parse reads an expression in the form produced by Node.String,
// e.g. "prod(avg(x, y), cos_pi(y))".
func Parse(s string) (Node, error) {
	toks, err := scan(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != nil {
		return nil, fmt.Errorf("expr: unexpected %q at column %d: %w", tok.Lexeme, tok.StartColumn, ErrSyntax)
	}
	return n, nil
}

func scan(s string) ([]*lexmachine.Token, error) {
	initLexer()
	if lexerErr != nil {
		return nil, fmt.Errorf("expr: compiling lexer: %w", lexerErr)
	}
	scanner, err := lexer.Scanner([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}
	var toks []*lexmachine.Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, fmt.Errorf("expr: unexpected input at column %d: %w", ui.FailTC+1, ErrSyntax)
		} else if err != nil {
			return nil, fmt.Errorf("expr: %w", err)
		}
		toks = append(toks, tok.(*lexmachine.Token))
	}
	return toks, nil
}

type parser struct {
	toks []*lexmachine.Token
	pos  int
}

func (p *parser) peek() *lexmachine.Token {
	if p.pos >= len(p.toks) {
		return nil
	}
	return p.toks[p.pos]
}

func (p *parser) expect(typ int, what string) error {
	tok := p.peek()
	if tok == nil {
		return fmt.Errorf("expr: expected %s, got end of input: %w", what, ErrSyntax)
	}
	if tok.Type != typ {
		return fmt.Errorf("expr: expected %s, got %q at column %d: %w", what, tok.Lexeme, tok.StartColumn, ErrSyntax)
	}
	p.pos++
	return nil
}

// expr := name | name '(' expr ')' | name '(' expr ',' expr ')'
func (p *parser) expr() (Node, error) {
	tok := p.peek()
	if tok == nil {
		return nil, fmt.Errorf("expr: unexpected end of input: %w", ErrSyntax)
	}
	if tok.Type != tokName {
		return nil, fmt.Errorf("expr: unexpected %q at column %d: %w", tok.Lexeme, tok.StartColumn, ErrSyntax)
	}
	p.pos++
	name := string(tok.Lexeme)

	for v, vn := range varNames {
		if vn == name {
			return &VarNode{Var: v}, nil
		}
	}
	for op, on := range unaryOpNames {
		if on == name {
			args, err := p.args(name, 1)
			if err != nil {
				return nil, err
			}
			return &UnaryNode{Op: op, Child: args[0]}, nil
		}
	}
	for op, on := range binaryOpNames {
		if on == name {
			args, err := p.args(name, 2)
			if err != nil {
				return nil, err
			}
			return &BinaryNode{Op: op, Left: args[0], Right: args[1]}, nil
		}
	}
	return nil, fmt.Errorf("expr: unknown function %q at column %d: %w", name, tok.StartColumn, ErrSyntax)
}

func (p *parser) args(name string, arity int) ([]Node, error) {
	if err := p.expect(tokLParen, "'(' after "+name); err != nil {
		return nil, err
	}
	args := make([]Node, 0, arity)
	for i := 0; i < arity; i++ {
		if i > 0 {
			if err := p.expect(tokComma, fmt.Sprintf("',' in %s (takes %d arguments)", name, arity)); err != nil {
				return nil, err
			}
		}
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if err := p.expect(tokRParen, fmt.Sprintf("')' closing %s (takes %d arguments)", name, arity)); err != nil {
		return nil, err
	}
	return args, nil
}
