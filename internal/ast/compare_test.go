package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccplag/ccsim/internal/ast"
)

func loc() ast.Location {
	return ast.Location{Filename: "t.cc"}
}

func ident(name string) *ast.Identifier { return ast.NewIdentifier(name, loc()) }
func lit(value string) *ast.Literal     { return ast.NewLiteral(value, loc()) }

func assign(target, value ast.Node) *ast.Assignment {
	a := ast.NewAssignment(loc())
	a.AppendChild(target)
	a.AppendChild(value)
	return a
}

func ret(result ast.Node) *ast.Return {
	r := ast.NewReturn(loc())
	r.AppendChild(result)
	return r
}

func block(stmts ...ast.Node) *ast.Composite {
	c := ast.NewComposite(loc())
	for _, s := range stmts {
		c.AppendChild(s)
	}
	return c
}

func TestCompare_IdenticalFunctions(t *testing.T) {
	// int f() { return 0; }
	a := block(ret(lit("0")))
	b := block(ret(lit("0")))
	assert.Equal(t, 1.0, ast.CompareRoots(a, b))
}

func TestCompare_RenamedVariable(t *testing.T) {
	// int f(){int x=1; return x;} vs int f(){int y=1; return y;}
	a := block(assign(ident("x"), lit("1")), ret(ident("x")))
	b := block(assign(ident("y"), lit("1")), ret(ident("y")))
	assert.Equal(t, 1.0, ast.CompareRoots(a, b))
}

func TestCompare_LiteralDrift(t *testing.T) {
	// int f(){return 1;} vs int f(){return 2;}
	a := block(ret(lit("1")))
	b := block(ret(lit("2")))
	assert.Equal(t, 0.5, ast.CompareRoots(a, b))
}

// TestCompare_ForWhileClone checks the round-trip law: an equivalent
// C-style for-loop and hand-unrolled while-loop score 1.0 even though
// one statement on one side becomes two statements on the other.
func TestCompare_ForWhileClone(t *testing.T) {
	// for(int i=0;i<10;++i) s+=i;
	loop := ast.NewCStyleLoop(loc())
	loop.AppendChild(assign(ident("i"), lit("0")))
	cond := ast.NewBinary("<", loc())
	cond.AppendChild(ident("i"))
	cond.AppendChild(lit("10"))
	loop.AppendChild(cond)
	step := ast.NewUnary("++", loc())
	step.AppendChild(ident("i"))
	loop.AppendChild(step)
	compound := ast.NewCompoundAssign("+", loc())
	compound.AppendChild(ident("s"))
	compound.AppendChild(ident("i"))
	loop.AppendChild(compound)
	a := block(loop)

	// int i=0; while(i<10){ s+=i; ++i; }
	cond2 := ast.NewBinary("<", loc())
	cond2.AppendChild(ident("i"))
	cond2.AppendChild(lit("10"))
	whileNode := ast.NewWhile(loc())
	whileNode.AppendChild(cond2)
	compound2 := ast.NewCompoundAssign("+", loc())
	compound2.AppendChild(ident("s"))
	compound2.AppendChild(ident("i"))
	step2 := ast.NewUnary("++", loc())
	step2.AppendChild(ident("i"))
	whileNode.AppendChild(block(compound2, step2))
	b := block(assign(ident("i"), lit("0")), whileNode)

	assert.Equal(t, 1.0, ast.CompareRoots(a, b))
}

func TestCompare_CompoundAssignmentClone(t *testing.T) {
	// a += b;  vs  a = a + b;
	compound := ast.NewCompoundAssign("+", loc())
	compound.AppendChild(ident("a"))
	compound.AppendChild(ident("b"))

	operator := ast.NewBinary("+", loc())
	operator.AppendChild(ident("a"))
	operator.AppendChild(ident("b"))
	plain := assign(ident("a"), operator)

	assert.Equal(t, 0.7, ast.Compare(compound, plain))
}

func TestCompare_DisjointFunctions(t *testing.T) {
	// int f(){ return 0; } vs void g(){ while(true) break; }
	a := block(ret(lit("0")))
	whileNode := ast.NewWhile(loc())
	whileNode.AppendChild(ident("true"))
	whileNode.AppendChild(ast.NewBreak(loc()))
	b := block(whileNode)

	assert.Equal(t, 0.0, ast.CompareRoots(a, b))
}

func TestCompare_Reflexive(t *testing.T) {
	tree := block(assign(ident("x"), lit("1")), ret(ident("x")))
	assert.Equal(t, 1.0, ast.Compare(tree, tree))
}

func TestCompare_UnknownNeverMatches(t *testing.T) {
	u1 := ast.NewUnknown(loc())
	u2 := ast.NewUnknown(loc())
	assert.Equal(t, 0.0, ast.Compare(u1, u2))
}

func TestCompare_AnyToNull(t *testing.T) {
	n := ast.NewNull(loc())
	l := lit("1")
	require.Equal(t, 1.0, l.Weight())
	assert.InDelta(t, 0.1, ast.Compare(l, n), 1e-9)
}

func TestCompare_Symmetric(t *testing.T) {
	compound := ast.NewCompoundAssign("+", loc())
	compound.AppendChild(ident("a"))
	compound.AppendChild(ident("b"))
	operator := ast.NewBinary("+", loc())
	operator.AppendChild(ident("a"))
	operator.AppendChild(ident("b"))
	plain := assign(ident("a"), operator)

	assert.InDelta(t, ast.Compare(compound, plain), ast.Compare(plain, compound), 1e-9)
}

func TestCompare_IfWithoutElseMatchesIfWithElse(t *testing.T) {
	withElse := ast.NewIf(loc())
	withElse.AppendChild(ident("c"))
	withElse.AppendChild(ret(lit("1")))
	withElse.AppendChild(ret(lit("2")))

	withoutElse := ast.NewIf(loc())
	withoutElse.AppendChild(ident("c"))
	withoutElse.AppendChild(ret(lit("1")))

	mainOnly := ast.NewIf(loc())
	mainOnly.AppendChild(ident("c"))
	mainOnly.AppendChild(ret(lit("1")))

	assert.Equal(t, ast.Compare(mainOnly, withoutElse), ast.Compare(withElse, withoutElse))
}

func TestCompare_LiteralClasses(t *testing.T) {
	assert.Equal(t, 1.0, ast.Compare(lit("1"), lit("1")))
	assert.Equal(t, 0.5, ast.Compare(lit("1"), lit("2")))
	assert.Equal(t, 0.2, ast.Compare(lit("1"), lit("\"x\"")))
}

func TestCompare_ScoreBounded(t *testing.T) {
	a := block(ret(lit("1")), ast.NewUnknown(loc()))
	b := block(ret(lit("2")))
	score := ast.Compare(a, b)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}
