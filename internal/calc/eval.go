package calc

import (
	"fmt"

	"github.com/jacoelho/rpncalc/internal/stack"
)

// Expression keeps every stage of a compiled line.
type Expression struct {
	Source  string
	Tokens  []Token
	Postfix []Token
}

func Compile(input string) (*Expression, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	return &Expression{
		Source:  input,
		Tokens:  tokens,
		Postfix: ToPostfix(tokens),
	}, nil
}

// Eval evaluates the postfix form and rejects operands that no operator consumed.
func (e *Expression) Eval() (float64, error) {
	postfix := stack.From(e.Postfix)

	value, err := evaluate(postfix)
	if err != nil {
		return 0, err
	}

	if extra, ok := postfix.Peek(); ok {
		return 0, fmt.Errorf("%w: %s", ErrExtraOperand, extra)
	}

	return value, nil
}

// Evaluate runs the whole pipeline on a single line.
func Evaluate(input string) (float64, error) {
	expression, err := Compile(input)
	if err != nil {
		return 0, err
	}
	return expression.Eval()
}

// EvalPostfix evaluates a sequence produced by ToPostfix, consuming it from the end.
func EvalPostfix(postfix []Token) (float64, error) {
	return evaluate(stack.From(postfix))
}

func evaluate(postfix *stack.Stack[Token]) (float64, error) {
	current, ok := postfix.Pop()
	if !ok {
		return 0, ErrEmptyExpression
	}

	if current.Kind == Number {
		return current.Value, nil
	}

	a, err := evaluate(postfix)
	if err != nil {
		return 0, err
	}

	b, err := evaluate(postfix)
	if err != nil {
		return 0, err
	}

	return apply(current.Op, a, b)
}

func apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0.0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		panic(fmt.Sprintf("calc: unknown operator %q", byte(op)))
	}
}
