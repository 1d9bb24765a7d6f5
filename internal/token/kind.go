package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates a fragment that is neither an operator nor a number.
	Invalid Kind = iota
	// EOF marks the end of the expression input.
	EOF

	// Number represents a floating-point literal token.
	Number

	// Plus represents the addition operator token.
	Plus // +
	// Minus represents the subtraction operator token.
	Minus // -
	// Star represents the multiplication operator token.
	Star // *
	// Slash represents the division operator token.
	Slash // /
	// Percent represents the remainder operator token.
	Percent // %
	// Caret represents the power operator token.
	Caret // ^
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Percent:
		return "Percent"
	case Caret:
		return "Caret"
	}
	return "Unknown"
}
