package expr

import (
	"strconv"
	"strings"
)

// FormatValue renders v in its shortest decimal form ("6", "0.75").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Notation selects one of the three fully parenthesized renderings.
type Notation string

const (
	Infix   Notation = "infix"
	Prefix  Notation = "prefix"
	Postfix Notation = "postfix"
)

// ParseNotation maps a name to a Notation. The empty string means Infix.
func ParseNotation(s string) (Notation, bool) {
	switch Notation(strings.ToLower(s)) {
	case "", Infix:
		return Infix, true
	case Prefix:
		return Prefix, true
	case Postfix:
		return Postfix, true
	}
	return "", false
}

// Render renders n in the given notation.
func Render(n Node, notation Notation) string {
	switch notation {
	case Prefix:
		return n.Prefix()
	case Postfix:
		return n.Postfix()
	default:
		return n.String()
	}
}

// String methods (infix)

func (l *Leaf) String() string {
	return FormatValue(l.Value)
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + b.Op.Name + b.Right.String() + ")"
}

// Prefix methods

func (l *Leaf) Prefix() string {
	return FormatValue(l.Value)
}

func (b *Binary) Prefix() string {
	return "(" + b.Op.Name + " " + b.Left.Prefix() + " " + b.Right.Prefix() + ")"
}

// Postfix methods

func (l *Leaf) Postfix() string {
	return FormatValue(l.Value)
}

func (b *Binary) Postfix() string {
	return "(" + b.Left.Postfix() + " " + b.Right.Postfix() + " " + b.Op.Name + ")"
}
