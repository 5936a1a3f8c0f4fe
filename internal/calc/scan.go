package calc

import (
	"fmt"
	"strings"
)

// IndexTokens locates the tokens of input and reports their kinds and byte ranges in source order.
// Scanning stops at the first byte outside the calculator alphabet.
func IndexTokens(input string) ([]TokenRange, error) {
	ranges := make([]TokenRange, 0, len(input)/2+1)
	inNumber := false

	for pos := 0; pos < len(input); pos++ {
		switch ch := input[pos]; {
		case isNumberByte(ch):
			if inNumber {
				ranges[len(ranges)-1].End = pos + 1
				continue
			}
			ranges = append(ranges, TokenRange{Kind: Number, Start: pos, End: pos + 1})
			inNumber = true
		case ch == '*' || ch == '/':
			ranges = append(ranges, TokenRange{Kind: ProductOp, Start: pos, End: pos + 1})
			inNumber = false
		case ch == '+' || ch == '-':
			ranges = append(ranges, TokenRange{Kind: SumOp, Start: pos, End: pos + 1})
			inNumber = false
		case ch == ' ':
			inNumber = false
		case ch == ',' || ch == '\'':
			return nil, scanError(ErrInvalidDelimiter, input, pos)
		default:
			return nil, scanError(ErrInvalidCharacter, input, pos)
		}
	}

	for _, r := range ranges {
		if r.Kind != Number {
			continue
		}
		if err := checkNumber(input, r); err != nil {
			return nil, err
		}
	}

	return ranges, nil
}

func isNumberByte(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch == '.'
}

// checkNumber rejects ranges such as "1.2.3" or "." that strconv cannot parse.
func checkNumber(input string, r TokenRange) error {
	literal := input[r.Start:r.End]
	if strings.Count(literal, ".") > 1 || strings.Trim(literal, ".") == "" {
		return fmt.Errorf("%w: %q at position %d", ErrInvalidNumber, literal, r.Start)
	}
	return nil
}
