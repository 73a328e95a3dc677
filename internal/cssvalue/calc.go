package cssvalue

import (
	"strconv"

	"cssc/internal/csstoken"
)

// Calc is a CSS math function tree (calc(), min(), max(), clamp()),
// generic over the leaf numeric type T (Length, Angle, ...); a Go type
// constraint can't express "any value grammar with a + operator", so
// constant folding across mismatched units is left to the caller.
type Calc[T any] struct {
	// Leaf holds a literal value when Op == "".
	Leaf   T
	IsLeaf bool

	Op       string // "+", "-", "*", "/", "min", "max", "clamp", ""
	Operands []Calc[T]
}

// ParseCalc parses a calc()-family function into a Calc tree whose leaves
// are produced by parseLeaf. No constant folding is done: calc(1px + 2px)
// stays a "+" node over two leaves rather than becoming 3px.
func ParseCalc[T any](c *Cursor, parseLeaf func(*Cursor) (T, bool)) (Calc[T], bool) {
	t, ok := c.Peek()
	if !ok || t.Kind != csstoken.Function {
		return Calc[T]{}, false
	}
	name := asciiLower(t.Text)
	switch name {
	case "calc":
		c.Next()
		return parseCalcSum(childCursor(t), parseLeaf)
	case "min", "max":
		c.Next()
		operands, ok := parseCommaSeparatedSums(childCursor(t), parseLeaf)
		if !ok {
			return Calc[T]{}, false
		}
		return Calc[T]{Op: name, Operands: operands}, true
	case "clamp":
		c.Next()
		operands, ok := parseCommaSeparatedSums(childCursor(t), parseLeaf)
		if !ok || len(operands) != 3 {
			return Calc[T]{}, false
		}
		return Calc[T]{Op: "clamp", Operands: operands}, true
	}
	if leaf, ok := parseLeaf(c); ok {
		return Calc[T]{Leaf: leaf, IsLeaf: true}, true
	}
	return Calc[T]{}, false
}

func childCursor(t csstoken.ValueToken) *Cursor {
	if t.Children == nil {
		return NewCursor(nil)
	}
	return NewCursor(*t.Children)
}

func parseCommaSeparatedSums[T any](c *Cursor, parseLeaf func(*Cursor) (T, bool)) ([]Calc[T], bool) {
	var out []Calc[T]
	for {
		sum, ok := parseCalcSum(c, parseLeaf)
		if !ok {
			return nil, false
		}
		out = append(out, sum)
		if nt, ok := c.Peek(); ok && nt.Kind == csstoken.Comma {
			c.Next()
			continue
		}
		break
	}
	return out, true
}

func parseCalcSum[T any](c *Cursor, parseLeaf func(*Cursor) (T, bool)) (Calc[T], bool) {
	left, ok := parseCalcProduct(c, parseLeaf)
	if !ok {
		return Calc[T]{}, false
	}
sumLoop:
	for {
		t, ok := c.Peek()
		if !ok {
			break
		}
		var op string
		switch t.Kind {
		case csstoken.DelimPlus:
			op = "+"
		case csstoken.DelimMinus:
			op = "-"
		default:
			break sumLoop
		}
		c.Next()
		right, ok := parseCalcProduct(c, parseLeaf)
		if !ok {
			return Calc[T]{}, false
		}
		left = Calc[T]{Op: op, Operands: []Calc[T]{left, right}}
	}
	return left, true
}

func parseCalcProduct[T any](c *Cursor, parseLeaf func(*Cursor) (T, bool)) (Calc[T], bool) {
	left, ok := parseCalcValue(c, parseLeaf)
	if !ok {
		return Calc[T]{}, false
	}
	for {
		t, ok := c.Peek()
		if !ok {
			break
		}
		var op string
		switch t.Kind {
		case csstoken.DelimAsterisk:
			op = "*"
		case csstoken.DelimSlash:
			op = "/"
		default:
			return left, true
		}
		c.Next()
		right, ok := parseCalcValue(c, parseLeaf)
		if !ok {
			return Calc[T]{}, false
		}
		left = Calc[T]{Op: op, Operands: []Calc[T]{left, right}}
	}
	return left, true
}

func parseCalcValue[T any](c *Cursor, parseLeaf func(*Cursor) (T, bool)) (Calc[T], bool) {
	if t, ok := c.Peek(); ok && t.Kind == csstoken.OpenParen {
		c.Next()
		inner, ok := parseCalcSum(c, parseLeaf)
		if !ok {
			return Calc[T]{}, false
		}
		if t2, ok := c.Peek(); ok && t2.Kind == csstoken.CloseParen {
			c.Next()
		}
		return inner, true
	}
	if nested, ok := TryParse(c, func(c *Cursor) (Calc[T], bool) { return ParseCalc(c, parseLeaf) }); ok {
		return nested, true
	}
	if n, ok := TryParse(c, ParseNumber); ok {
		var t T
		// Bare numbers inside calc() are multiplication/division factors,
		// not leaf values; represent them with Go's zero value plus the
		// numeric text stashed in Op so String can print it.
		return Calc[T]{Leaf: t, IsLeaf: true, Op: "#" + strconv.FormatFloat(float64(n), 'g', -1, 64)}, true
	}
	leaf, ok := parseLeaf(c)
	if !ok {
		return Calc[T]{}, false
	}
	return Calc[T]{Leaf: leaf, IsLeaf: true}, true
}

// String renders the Calc tree back to CSS text using toLeaf to format
// leaves; scalar factors (stashed via the "#"-prefixed Op convention) are
// printed as bare numbers.
func (calc Calc[T]) String(f MinifyFlags, toLeaf func(T, MinifyFlags) string) string {
	if calc.IsLeaf {
		if len(calc.Op) > 0 && calc.Op[0] == '#' {
			return calc.Op[1:]
		}
		return toLeaf(calc.Leaf, f)
	}
	switch calc.Op {
	case "min", "max", "clamp":
		s := calc.Op + "("
		for i, op := range calc.Operands {
			if i > 0 {
				s += ","
				if !f.Minify {
					s += " "
				}
			}
			s += op.String(f, toLeaf)
		}
		return s + ")"
	default:
		sep := " " + calc.Op + " "
		return "calc(" + calc.Operands[0].String(f, toLeaf) + sep + calc.Operands[1].String(f, toLeaf) + ")"
	}
}
