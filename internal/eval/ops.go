package eval

import (
	"math"

	"polish/internal/token"
)

// opFunc applies a binary operator. A non-zero ErrorKind aborts evaluation.
type opFunc func(left, right float64) (float64, ErrorKind)

func opAdd(left, right float64) (float64, ErrorKind) {
	return left + right, noError
}

func opSub(left, right float64) (float64, ErrorKind) {
	return left - right, noError
}

func opMul(left, right float64) (float64, ErrorKind) {
	return left * right, noError
}

func opDiv(left, right float64) (float64, ErrorKind) {
	if right == 0 {
		return 0, DivisionByZero
	}
	return left / right, noError
}

// opMod treats a zero divisor like division does; math.Mod would yield NaN.
func opMod(left, right float64) (float64, ErrorKind) {
	if right == 0 {
		return 0, DivisionByZero
	}
	return math.Mod(left, right), noError
}

func opPow(left, right float64) (float64, ErrorKind) {
	return math.Pow(left, right), noError
}

// defaultOps is the operator set of the original system: the four
// arithmetic operators plus remainder. Power is opt-in via Options.
func defaultOps() map[token.Kind]opFunc {
	return map[token.Kind]opFunc{
		token.Plus:    opAdd,
		token.Minus:   opSub,
		token.Star:    opMul,
		token.Slash:   opDiv,
		token.Percent: opMod,
	}
}
