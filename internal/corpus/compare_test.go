package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccplag/ccsim/internal/ast"
	"github.com/ccplag/ccsim/internal/corpus"
)

func loc() ast.Location { return ast.Location{Filename: "t.cc"} }

func block(stmts ...ast.Node) *ast.Composite {
	c := ast.NewComposite(loc())
	for _, s := range stmts {
		c.AppendChild(s)
	}
	return c
}

func ret(result ast.Node) *ast.Return {
	r := ast.NewReturn(loc())
	r.AppendChild(result)
	return r
}

func entry(name, file string, body ast.Node) corpus.FunctionEntry {
	return corpus.FunctionEntry{Name: name, Loc: ast.Location{Filename: file}, Body: body}
}

func TestCompareAll_OnlyNonZeroScoresSurvive(t *testing.T) {
	identical := block(ret(ast.NewLiteral("0", loc())))
	disjoint := block(ret(ast.NewIdentifier("x", loc())), ret(ast.NewIdentifier("y", loc())))

	checked := map[string]corpus.FunctionEntry{
		"c#f1": entry("f1", "checked.cc", identical),
	}
	compared := map[string]corpus.FunctionEntry{
		"k#g1": entry("g1", "known.cc", block(ret(ast.NewLiteral("0", loc())))),
		"k#g2": entry("g2", "known.cc", disjoint),
	}

	findings := corpus.CompareAll(checked, compared, 1)

	assert.Len(t, findings, 1)
	assert.Equal(t, "f1", findings[0].CheckedName)
	assert.Equal(t, "g1", findings[0].ComparedName)
	assert.Equal(t, 1.0, findings[0].Score)
}

func TestCompareAll_SortedByDescendingScore(t *testing.T) {
	checked := map[string]corpus.FunctionEntry{
		"c#low":  entry("low", "checked.cc", block(ret(ast.NewLiteral("1", loc())))),
		"c#high": entry("high", "checked.cc", block(ret(ast.NewLiteral("0", loc())))),
	}
	compared := map[string]corpus.FunctionEntry{
		"k#g": entry("g", "known.cc", block(ret(ast.NewLiteral("0", loc())))),
	}

	findings := corpus.CompareAll(checked, compared, 1)

	assert.Len(t, findings, 2)
	assert.GreaterOrEqual(t, findings[0].Score, findings[1].Score)
	assert.Equal(t, "high", findings[0].CheckedName)
}

func TestCompareAll_ShardedMatchesSequential(t *testing.T) {
	checked := map[string]corpus.FunctionEntry{
		"c#f1": entry("f1", "checked.cc", block(ret(ast.NewLiteral("0", loc())))),
		"c#f2": entry("f2", "checked.cc", block(ret(ast.NewLiteral("1", loc())))),
		"c#f3": entry("f3", "checked.cc", block(ret(ast.NewIdentifier("z", loc())))),
	}
	compared := map[string]corpus.FunctionEntry{
		"k#g1": entry("g1", "known.cc", block(ret(ast.NewLiteral("0", loc())))),
		"k#g2": entry("g2", "known.cc", block(ret(ast.NewLiteral("2", loc())))),
	}

	sequential := corpus.CompareAll(checked, compared, 1)
	sharded := corpus.CompareAll(checked, compared, 4)

	assert.ElementsMatch(t, sequential, sharded)
}

func TestCompareAll_EmptyInputsProduceNoFindings(t *testing.T) {
	findings := corpus.CompareAll(map[string]corpus.FunctionEntry{}, map[string]corpus.FunctionEntry{}, 1)
	assert.Empty(t, findings)
}
