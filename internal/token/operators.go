package token

var operators = map[string]Kind{
	"+": Plus,
	"-": Minus,
	"*": Star,
	"/": Slash,
	"%": Percent,
	"^": Caret,
}

var symbols = map[Kind]string{
	Plus:    "+",
	Minus:   "-",
	Star:    "*",
	Slash:   "/",
	Percent: "%",
	Caret:   "^",
}

// LookupOperator returns the kind for an operator fragment, if it is one.
// The full fragment must match: "+5" is not an operator.
func LookupOperator(fragment string) (Kind, bool) {
	k, ok := operators[fragment]
	return k, ok
}

// Symbol returns the textual symbol for an operator kind, or "" for
// non-operator kinds.
func Symbol(k Kind) string {
	return symbols[k]
}
