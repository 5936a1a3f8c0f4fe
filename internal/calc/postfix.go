package calc

import "github.com/jacoelho/rpncalc/internal/stack"

// ToPostfix reorders infix tokens so that popping the result from its end yields an operator
// followed by its left and then its right operand.
//
// Tokens are consumed right to left. Numbers collect on aux and operators wait on op. A sum
// operator closes the multiplicative group to its right: aux is drained onto op and op onto main
// down to the previous sum operator, which keeps the group's numbers in order and leaves its
// product operators on top of them. End of input flushes everything, sum operators last.
// Operators only reach main once every operand to their left has, so equal tiers associate left.
//
// The grouping only works for two precedence tiers. ToPostfix never fails: missing operands
// stay missing and are reported by EvalPostfix.
func ToPostfix(tokens []Token) []Token {
	input := stack.From(tokens)
	mainStack := stack.NewWithCapacity[Token](len(tokens))
	aux := stack.New[Token]()
	ops := stack.New[Token]()

	for {
		current, ok := input.Pop()
		if !ok {
			aux.DrainInto(ops)
			ops.DrainInto(mainStack)
			return mainStack.ToSlice()
		}

		switch current.Kind {
		case Number:
			aux.Push(current)
		case ProductOp:
			ops.Push(current)
		case SumOp:
			aux.DrainInto(ops)
			ops.DrainUntil(mainStack, isSumOp)
			ops.Push(current)
		}
	}
}

func isSumOp(t Token) bool {
	return t.Kind == SumOp
}
