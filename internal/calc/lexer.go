package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// Tokenize converts input into tokens in source order.
func Tokenize(input string) ([]Token, error) {
	ranges, err := IndexTokens(input)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(ranges))
	for _, r := range ranges {
		tokens = append(tokens, lexRange(input, r))
	}

	return tokens, nil
}

// lexRange panics on a range the scanner should never have produced.
func lexRange(input string, r TokenRange) Token {
	literal := input[r.Start:r.End]

	if r.Kind == Number {
		// Out of range literals parse to ±Inf or 0 alongside ErrRange; they follow IEEE-754 like any other overflow.
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic(fmt.Sprintf("calc: scanner produced unparseable number %q: %v", literal, err))
		}
		return NumberToken(value)
	}

	if len(literal) != 1 {
		panic(fmt.Sprintf("calc: scanner produced operator range %q", literal))
	}

	op := Operator(literal[0])
	if op.Kind() != r.Kind || (op != Add && op != Sub && op != Mul && op != Div) {
		panic(fmt.Sprintf("calc: scanner tagged %q as %s", literal, r.Kind))
	}

	return OperatorToken(op)
}
