package main

import (
	"fmt"
	"strconv"
)

func init() {
	register(18, func() solution { return day18{} })
}

type day18 struct{}

type tokenKind uint8

const (
	tokNum tokenKind = iota
	tokAdd
	tokMul
	tokOpen
	tokClose
)

var tokenNames = [...]string{
	tokNum:   "number",
	tokAdd:   "'+'",
	tokMul:   "'*'",
	tokOpen:  "'('",
	tokClose: "')'",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind tokenKind
	n    int // for tokNum
	pos  int // byte offset in the expression
}

func tokenize(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("column %d: %s", i+1, err)
			}
			toks = append(toks, token{kind: tokNum, n: n, pos: i})
			i = j
			continue
		}
		var kind tokenKind
		switch c {
		case '+':
			kind = tokAdd
		case '*':
			kind = tokMul
		case '(':
			kind = tokOpen
		case ')':
			kind = tokClose
		default:
			return nil, fmt.Errorf("column %d: unexpected character %q", i+1, c)
		}
		toks = append(toks, token{kind: kind, pos: i})
		i++
	}
	return toks, nil
}

// A frame accumulates the value of one parenthesized group (or of the
// whole expression). It sees the group's operands and operators in order;
// the evaluator guarantees they alternate, starting and ending with an
// operand.
type frame interface {
	operand(v int)
	operator(k tokenKind)
	result() int
}

// A precedence creates the frames that evaluate under one set of
// operator precedence rules.
type precedence func() frame

// flatFrame applies each operator as soon as its right operand arrives,
// so + and * bind equally and associate left to right.
type flatFrame struct {
	acc int
	op  tokenKind
}

func newFlatFrame() frame { return &flatFrame{op: tokAdd} }

func (f *flatFrame) operand(v int) {
	switch f.op {
	case tokAdd:
		f.acc += v
	case tokMul:
		f.acc *= v
	default:
		panic(fmt.Sprintf("bad pending operator %s", f.op))
	}
}

func (f *flatFrame) operator(k tokenKind) { f.op = k }
func (f *flatFrame) result() int          { return f.acc }

// additionFirstFrame makes + bind tighter than *. Operands are summed
// until a * closes out the sum into the pending product.
type additionFirstFrame struct {
	sum     int
	product int
}

func newAdditionFirstFrame() frame { return &additionFirstFrame{product: 1} }

func (f *additionFirstFrame) operand(v int) { f.sum += v }

func (f *additionFirstFrame) operator(k tokenKind) {
	if k == tokMul {
		f.product *= f.sum
		f.sum = 0
	}
}

func (f *additionFirstFrame) result() int { return f.product * f.sum }

// evaluate computes the value of an expression. Each '(' pushes a new
// frame and each ')' pops one, feeding its result to the enclosing frame
// as an operand, so nesting depth is bounded by the input rather than
// the call stack.
func evaluate(toks []token, newFrame precedence) (int, error) {
	stack := []frame{newFrame()}
	expectOperand := true
	for _, tok := range toks {
		top := stack[len(stack)-1]
		switch tok.kind {
		case tokNum:
			if !expectOperand {
				return 0, fmt.Errorf("column %d: number where an operator belongs", tok.pos+1)
			}
			top.operand(tok.n)
			expectOperand = false
		case tokAdd, tokMul:
			if expectOperand {
				return 0, fmt.Errorf("column %d: %s where an operand belongs", tok.pos+1, tok.kind)
			}
			top.operator(tok.kind)
			expectOperand = true
		case tokOpen:
			if !expectOperand {
				return 0, fmt.Errorf("column %d: %s where an operator belongs", tok.pos+1, tok.kind)
			}
			stack = append(stack, newFrame())
		case tokClose:
			if len(stack) == 1 {
				return 0, fmt.Errorf("column %d: unbalanced %s", tok.pos+1, tok.kind)
			}
			if expectOperand {
				return 0, fmt.Errorf("column %d: %s where an operand belongs", tok.pos+1, tok.kind)
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].operand(top.result())
		default:
			panic(fmt.Sprintf("bad token kind %d", tok.kind))
		}
	}
	if expectOperand {
		return 0, fmt.Errorf("expression ends without an operand")
	}
	if len(stack) > 1 {
		return 0, fmt.Errorf("%d unclosed '('", len(stack)-1)
	}
	return stack[0].result(), nil
}

func evaluateString(s string, newFrame precedence) (int, error) {
	toks, err := tokenize(s)
	if err != nil {
		return 0, err
	}
	return evaluate(toks, newFrame)
}

func (day18) partA(input string) (any, error) { return answer(sumHomework(input, newFlatFrame)) }

func (day18) partB(input string) (any, error) { return answer(sumHomework(input, newAdditionFirstFrame)) }

// sumHomework evaluates each line of input and sums the values.
func sumHomework(input string, newFrame precedence) (int, error) {
	var sum int
	for i, l := range lines(input) {
		v, err := evaluateString(l, newFrame)
		if err != nil {
			return 0, malformed(i+1, l, "%s", err)
		}
		sum += v
	}
	return sum, nil
}
