package calc

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestIndexTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []TokenRange
	}{
		{
			name:  "empty",
			input: "",
			want:  []TokenRange{},
		},
		{
			name:  "spaces_only",
			input: "   ",
			want:  []TokenRange{},
		},
		{
			name:  "spaced_sum",
			input: "12.5 + 3",
			want: []TokenRange{
				{Kind: Number, Start: 0, End: 4},
				{Kind: SumOp, Start: 5, End: 6},
				{Kind: Number, Start: 7, End: 8},
			},
		},
		{
			name:  "no_spaces",
			input: "1+2*30/4-5",
			want: []TokenRange{
				{Kind: Number, Start: 0, End: 1},
				{Kind: SumOp, Start: 1, End: 2},
				{Kind: Number, Start: 2, End: 3},
				{Kind: ProductOp, Start: 3, End: 4},
				{Kind: Number, Start: 4, End: 6},
				{Kind: ProductOp, Start: 6, End: 7},
				{Kind: Number, Start: 7, End: 8},
				{Kind: SumOp, Start: 8, End: 9},
				{Kind: Number, Start: 9, End: 10},
			},
		},
		{
			name:  "space_splits_numbers",
			input: "1 2",
			want: []TokenRange{
				{Kind: Number, Start: 0, End: 1},
				{Kind: Number, Start: 2, End: 3},
			},
		},
		{
			name:  "leading_and_trailing_dot",
			input: ".5 * 2.",
			want: []TokenRange{
				{Kind: Number, Start: 0, End: 2},
				{Kind: ProductOp, Start: 3, End: 4},
				{Kind: Number, Start: 5, End: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IndexTokens(tt.input)
			if err != nil {
				t.Fatalf("IndexTokens(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("IndexTokens(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndexTokensErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
		wantPos string
	}{
		{name: "comma", input: "1,000 + 1", wantErr: ErrInvalidDelimiter, wantPos: "position 1"},
		{name: "apostrophe", input: "1'000", wantErr: ErrInvalidDelimiter, wantPos: "position 1"},
		{name: "letter", input: "1 + x", wantErr: ErrInvalidCharacter, wantPos: "position 4"},
		{name: "parenthesis", input: "(1 + 2)", wantErr: ErrInvalidCharacter, wantPos: "position 0"},
		{name: "tab", input: "1\t+ 2", wantErr: ErrInvalidCharacter, wantPos: "position 1"},
		{name: "caret", input: "2 ^ 3", wantErr: ErrInvalidCharacter, wantPos: "position 2"},
		{name: "non_ascii", input: "1 × 2", wantErr: ErrInvalidCharacter, wantPos: "position 2"},
		{name: "first_bad_byte_wins", input: "a,", wantErr: ErrInvalidCharacter, wantPos: "position 0"},
		{name: "two_dots", input: "1.2.3 + 1", wantErr: ErrInvalidNumber, wantPos: "position 0"},
		{name: "lone_dot", input: "1 + .", wantErr: ErrInvalidNumber, wantPos: "position 4"},
		{name: "dots_only", input: "..", wantErr: ErrInvalidNumber, wantPos: "position 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IndexTokens(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("IndexTokens(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != nil {
				t.Fatalf("IndexTokens(%q) = %+v, want nil on error", tt.input, got)
			}
			if !strings.Contains(err.Error(), tt.wantPos) {
				t.Fatalf("IndexTokens(%q) error = %q, want it to mention %q", tt.input, err, tt.wantPos)
			}
		})
	}
}

func TestIndexTokensIsRepeatable(t *testing.T) {
	t.Parallel()

	const input = "3.25 * 4 - 10 / 2.5 + 7"

	first, err := IndexTokens(input)
	if err != nil {
		t.Fatalf("IndexTokens() error = %v", err)
	}
	second, err := IndexTokens(input)
	if err != nil {
		t.Fatalf("IndexTokens() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("IndexTokens() is not repeatable: %+v != %+v", first, second)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got, err := Tokenize("12.5 + 3 * .5 - 2 / 4")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Token{
		NumberToken(12.5),
		OperatorToken(Add),
		NumberToken(3),
		OperatorToken(Mul),
		NumberToken(0.5),
		OperatorToken(Sub),
		NumberToken(2),
		OperatorToken(Div),
		NumberToken(4),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}

	for _, token := range got {
		if token.IsOperator() && token.Kind != token.Op.Kind() {
			t.Errorf("token %s has kind %s, want %s", token, token.Kind, token.Op.Kind())
		}
	}
}

func TestTokenizePropagatesScanErrors(t *testing.T) {
	t.Parallel()

	_, err := Tokenize("1, 2")
	if !errors.Is(err, ErrInvalidDelimiter) {
		t.Fatalf("Tokenize() error = %v, want %v", err, ErrInvalidDelimiter)
	}
}

func TestTokenizeHugeLiteral(t *testing.T) {
	t.Parallel()

	got, err := Tokenize(strings.Repeat("9", 400))
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(got) != 1 || !math.IsInf(got[0].Value, 1) {
		t.Fatalf("Tokenize() = %v, want a single +Inf number", got)
	}
}

func TestLexRangePanicsOnScannerContractViolation(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("lexRange() did not panic on an unparseable number range")
		}
	}()

	lexRange("1.2.3", TokenRange{Kind: Number, Start: 0, End: 5})
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tokens := []Token{NumberToken(2), NumberToken(0.25), OperatorToken(Div), OperatorToken(Sub)}
	if got := Join(tokens); got != "2 0.25 / -" {
		t.Fatalf("Join() = %q, want %q", got, "2 0.25 / -")
	}
}
