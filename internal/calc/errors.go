package calc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDelimiter = errors.New("do not use delimiters such as , or '")
	ErrInvalidCharacter = errors.New("invalid input, only numbers, *, /, +, - and spaces are allowed")
	ErrInvalidNumber    = errors.New("malformed number")
	ErrEmptyExpression  = errors.New("empty expression, an operand is missing")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrExtraOperand     = errors.New("operand without an operator")
)

func scanError(err error, input string, pos int) error {
	return fmt.Errorf("%w: %q at position %d", err, input[pos], pos)
}
