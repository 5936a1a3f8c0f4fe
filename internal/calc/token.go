package calc

import (
	"strconv"
	"strings"
)

// Kind splits tokens into numbers and the two operator precedence tiers.
type Kind int

const (
	Number Kind = iota
	ProductOp
	SumOp
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case ProductOp:
		return "product"
	case SumOp:
		return "sum"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// Kind reports the precedence tier of the operator.
func (o Operator) Kind() Kind {
	if o == Mul || o == Div {
		return ProductOp
	}
	return SumOp
}

func (o Operator) String() string {
	return string(rune(o))
}

type Token struct {
	Kind  Kind
	Value float64
	Op    Operator
}

func NumberToken(value float64) Token {
	return Token{Kind: Number, Value: value}
}

func OperatorToken(op Operator) Token {
	return Token{Kind: op.Kind(), Op: op}
}

func (t Token) IsOperator() bool {
	return t.Kind != Number
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Op.String()
}

// TokenRange locates a token in the source text as the half-open range [Start, End).
type TokenRange struct {
	Kind  Kind
	Start int
	End   int
}

// Join renders tokens separated by single spaces.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = token.String()
	}
	return strings.Join(parts, " ")
}
