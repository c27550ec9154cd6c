package ast

import "strings"

// Composite holds an arbitrary, ordered sequence of children and nothing
// else. It backs function bodies, blocks, and the wrapped tail produced
// by the control-flow auto-wrap rules.
type Composite struct{ base }

// NewComposite returns an empty Composite rooted at loc.
func NewComposite(loc Location) *Composite { return &Composite{base: newBase(loc)} }

func (n *Composite) compareSameType(other Node) float64 {
	if !n.HasChildren() {
		// An empty Composite vacuously matches: there is nothing in
		// self to fail to find in other.
		return 1
	}
	var sum float64
	for i, child := range n.children {
		sum += Compare(child, other.NthChild(i))
	}
	return sum / float64(len(n.children))
}

func (n *Composite) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Null is a synthesized placeholder standing in for a syntactically
// absent optional child. It vacuously matches anything of its own
// variant, which is what lets a coerced-to-Null node still contribute a
// (heavily weight-penalized) score rather than always scoring 0.
type Null struct{ base }

func NewNull(loc Location) *Null { return &Null{base: newBase(loc)} }

func (n *Null) compareSameType(other Node) float64 { return 1 }
func (n *Null) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Unknown marks a cursor kind the frontend adapter does not recognize.
// It never matches anything, including another Unknown, so its presence
// always drags the containing subtree's score toward 0.
type Unknown struct{ base }

func NewUnknown(loc Location) *Unknown { return &Unknown{base: newBase(loc)} }

func (n *Unknown) compareSameType(other Node) float64 { return 0 }

// makeAlike always fails: an unrecognized cursor kind must never be
// coerced into matching anything, even via the generic Null/Composite
// rules, or an unparseable construct could silently inflate a score.
func (n *Unknown) makeAlike(target Node) (Node, bool) { return nil, false }

// Identifier is a name reference. Names are ignored during comparison:
// code clones routinely rename variables, and preserving name
// information would defeat the purpose of plagiarism detection.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(name string, loc Location) *Identifier {
	return &Identifier{base: newBase(loc), Name: name}
}

func (n *Identifier) compareSameType(other Node) float64 { return 1 }
func (n *Identifier) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// LiteralClass is the lexical class of a Literal's token form, decided
// at build time so that comparison never depends on the literal's
// runtime-parsed type.
type LiteralClass int

const (
	LiteralOther LiteralClass = iota
	LiteralInteger
	LiteralFloat
	LiteralString
)

// ClassifyLiteral inspects the raw token spelling captured by the
// frontend and returns its lexical class.
func ClassifyLiteral(value string) LiteralClass {
	v := strings.TrimSpace(value)
	if v == "" {
		return LiteralOther
	}
	if strings.HasPrefix(v, "\"") || strings.HasPrefix(v, "'") {
		return LiteralString
	}
	hasDot := strings.ContainsAny(v, ".")
	hasExp := strings.ContainsAny(v, "eE") && !strings.HasPrefix(strings.ToLower(v), "0x")
	suffix := strings.ToLower(v)
	isFloatSuffixed := strings.HasSuffix(suffix, "f") && !strings.HasPrefix(suffix, "0x")
	if hasDot || hasExp || isFloatSuffixed {
		return LiteralFloat
	}
	for _, r := range v {
		if (r < '0' || r > '9') && r != 'x' && r != 'X' && !(r >= 'a' && r <= 'f') && !(r >= 'A' && r <= 'F') &&
			r != 'u' && r != 'U' && r != 'l' && r != 'L' {
			return LiteralOther
		}
	}
	return LiteralInteger
}

// Literal is a constant token: an integer, float, or string literal as
// captured verbatim from the frontend's token stream.
type Literal struct {
	base
	Value string
	Class LiteralClass
}

// NewLiteral returns a Literal whose lexical class is derived from
// value's token form.
func NewLiteral(value string, loc Location) *Literal {
	return &Literal{base: newBase(loc), Value: value, Class: ClassifyLiteral(value)}
}

func (n *Literal) compareSameType(other Node) float64 {
	o, ok := other.(*Literal)
	if !ok {
		return 0
	}
	switch {
	case n.Value == o.Value:
		return 1
	case n.Class == o.Class:
		return 0.5
	default:
		return 0.2
	}
}

func (n *Literal) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Assignment is a plain `target = value` statement or initializer.
type Assignment struct{ base }

func NewAssignment(loc Location) *Assignment { return &Assignment{base: newBase(loc)} }

func (n *Assignment) Target() Node { return n.NthChild(0) }
func (n *Assignment) Value() Node  { return n.NthChild(1) }

func (n *Assignment) compareSameType(other Node) float64 {
	o := other.(*Assignment)
	return compareTwice(n, o, func(x Node) Node { return x.(*Assignment).Target() },
		func(x Node) Node { return x.(*Assignment).Value() })
}

func (n *Assignment) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Return is a `return <result>` statement; result is Null for a bare
// `return;`.
type Return struct{ base }

func NewReturn(loc Location) *Return { return &Return{base: newBase(loc)} }

func (n *Return) Result() Node { return n.NthChild(0) }

func (n *Return) compareSameType(other Node) float64 {
	o := other.(*Return)
	return Compare(n.Result(), o.Result())
}

func (n *Return) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Unary is a prefix/postfix operator applied to a single operand, e.g.
// `-x`, `!x`, `++x`.
type Unary struct {
	base
	Op string
}

func NewUnary(op string, loc Location) *Unary { return &Unary{base: newBase(loc), Op: op} }

func (n *Unary) Operand() Node { return n.NthChild(0) }

func (n *Unary) compareSameType(other Node) float64 {
	o := other.(*Unary)
	if n.Op != o.Op {
		return 0
	}
	return Compare(n.Operand(), o.Operand())
}

func (n *Unary) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Binary is a two-operand infix operator, e.g. `a + b`, `a < b`.
type Binary struct {
	base
	Op string
}

func NewBinary(op string, loc Location) *Binary { return &Binary{base: newBase(loc), Op: op} }

func (n *Binary) Left() Node  { return n.NthChild(0) }
func (n *Binary) Right() Node { return n.NthChild(1) }

func (n *Binary) compareSameType(other Node) float64 {
	o := other.(*Binary)
	if n.Op != o.Op {
		return 0
	}
	return compareTwice(n, o, func(x Node) Node { return x.(*Binary).Left() },
		func(x Node) Node { return x.(*Binary).Right() })
}

func (n *Binary) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// CompoundAssign is a compound assignment `left op= right`, e.g.
// `a += b`. Op is the bare operator, without the trailing `=`.
type CompoundAssign struct {
	base
	Op string
}

func NewCompoundAssign(op string, loc Location) *CompoundAssign {
	return &CompoundAssign{base: newBase(loc), Op: op}
}

func (n *CompoundAssign) Left() Node  { return n.NthChild(0) }
func (n *CompoundAssign) Right() Node { return n.NthChild(1) }

func (n *CompoundAssign) compareSameType(other Node) float64 {
	o := other.(*CompoundAssign)
	return compareTwice(n, o, func(x Node) Node { return x.(*CompoundAssign).Left() },
		func(x Node) Node { return x.(*CompoundAssign).Right() })
}

// makeAlike rewrites `a op= b` into `a = a op b`, the CompoundAssign ->
// Assignment coercion from the similarity engine's rule table. The
// rewrite is semantically exact but still carries a 0.7 penalty because
// it is a syntactic transform, not an identity.
func (n *CompoundAssign) makeAlike(target Node) (Node, bool) {
	if _, ok := target.(*Assignment); ok {
		assignment := NewAssignment(n.Loc())
		operator := NewBinary(n.Op, n.Loc())
		operator.AppendChild(n.Left())
		operator.AppendChild(n.Right())
		assignment.AppendChild(n.Left())
		assignment.AppendChild(operator)
		assignment.SetWeight(0.7)
		return assignment, true
	}
	return coerceGeneric(n, target)
}

// CStyleLoop is a `for (init; cond; step) body` loop. The fourth (body)
// and every later appended child is auto-wrapped in its own one-element
// Composite unless it already is one.
type CStyleLoop struct{ base }

func NewCStyleLoop(loc Location) *CStyleLoop { return &CStyleLoop{base: newBase(loc)} }

func (n *CStyleLoop) Init() Node { return n.NthChild(0) }
func (n *CStyleLoop) Cond() Node { return n.NthChild(1) }
func (n *CStyleLoop) Step() Node { return n.NthChild(2) }
func (n *CStyleLoop) Body() Node { return n.NthChild(3) }

func (n *CStyleLoop) AppendChild(child Node) {
	appendWithWrap(&n.base, 3, child)
}

func (n *CStyleLoop) compareSameType(other Node) float64 {
	o := other.(*CStyleLoop)
	firstScore := compareTwice(n, o, func(x Node) Node { return x.(*CStyleLoop).Init() },
		func(x Node) Node { return x.(*CStyleLoop).Step() })
	secondScore := compareTwice(n, o, func(x Node) Node { return x.(*CStyleLoop).Cond() },
		func(x Node) Node { return x.(*CStyleLoop).Body() })
	return (firstScore + secondScore) / 2
}

// makeAlike rewrites a for-loop into the semantically equivalent
// `{ init; while (cond) { ...body, step }; }` when asked to become a
// While, or a Composite (the shape a hand-written `i = 0; while (...) {}`
// naturally parses into). Both targets get the same rewrite: only the
// target's own type decides which generic rule would otherwise have
// applied, and here a more specific one exists. The equivalence is exact
// for well-formed loops, so only the default Composite weight applies to
// the outer wrapper.
func (n *CStyleLoop) makeAlike(target Node) (Node, bool) {
	switch target.(type) {
	case *While, *Composite:
		composite := NewComposite(n.Loc())
		composite.AppendChild(n.Init())

		body := NewComposite(n.Body().Loc())
		if bodyComposite, ok := n.Body().(*Composite); ok {
			for _, stmt := range bodyComposite.Children() {
				body.AppendChild(stmt)
			}
		} else {
			body.AppendChild(n.Body())
		}
		body.AppendChild(n.Step())

		whileNode := NewWhile(n.Loc())
		whileNode.AppendChild(n.Cond())
		whileNode.AppendChild(body)
		composite.AppendChild(whileNode)

		return composite, true
	default:
		return coerceGeneric(n, target)
	}
}

// Break is a `break;` statement.
type Break struct{ base }

func NewBreak(loc Location) *Break { return &Break{base: newBase(loc)} }

func (n *Break) compareSameType(other Node) float64 { return 1 }
func (n *Break) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// Continue is a `continue;` statement.
type Continue struct{ base }

func NewContinue(loc Location) *Continue { return &Continue{base: newBase(loc)} }

func (n *Continue) compareSameType(other Node) float64 { return 1 }
func (n *Continue) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// If is an `if (cond) then [else else]` statement. The second (then) and
// every later appended child, else included, is auto-wrapped in its own
// one-element Composite unless it already is one, mirroring While and
// CStyleLoop.
type If struct{ base }

func NewIf(loc Location) *If { return &If{base: newBase(loc)} }

func (n *If) Cond() Node { return n.NthChild(0) }
func (n *If) Then() Node { return n.NthChild(1) }
func (n *If) Else() Node { return n.NthChild(2) }

func (n *If) AppendChild(child Node) {
	appendWithWrap(&n.base, 1, child)
}

func (n *If) compareSameType(other Node) float64 {
	o := other.(*If)
	mainScore := compareTwice(n, o, func(x Node) Node { return x.(*If).Cond() },
		func(x Node) Node { return x.(*If).Then() })

	// An else clause on only one side (or neither) reduces the
	// comparison to the main (cond, then) score alone; only when both
	// sides have an else do their bodies get averaged in.
	if len(n.children) < 3 || len(o.children) < 3 {
		return mainScore
	}

	auxScore := Compare(n.Else(), o.Else())
	return (mainScore + auxScore) / 2
}

func (n *If) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }

// While is a `while (cond) body` loop. The second (body) and every later
// appended child is auto-wrapped in its own one-element Composite unless
// it already is one.
type While struct{ base }

func NewWhile(loc Location) *While { return &While{base: newBase(loc)} }

func (n *While) Cond() Node { return n.NthChild(0) }
func (n *While) Body() Node { return n.NthChild(1) }

func (n *While) AppendChild(child Node) {
	appendWithWrap(&n.base, 1, child)
}

func (n *While) compareSameType(other Node) float64 {
	o := other.(*While)
	return compareTwice(n, o, func(x Node) Node { return x.(*While).Cond() },
		func(x Node) Node { return x.(*While).Body() })
}

func (n *While) makeAlike(target Node) (Node, bool) { return coerceGeneric(n, target) }
