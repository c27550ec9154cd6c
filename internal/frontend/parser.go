// Package frontend adapts libclang's cursor-based C/C++ parser to the
// ast package's normalized node model, the Go counterpart of the Python
// frontend's Parser/FunctionParser pair.
package frontend

import (
	"github.com/FrankReh/go-clang/clang"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ccplag/ccsim/internal/ast"
	"github.com/ccplag/ccsim/internal/ccerrors"
	"github.com/ccplag/ccsim/internal/logging"
)

// Function is one parsed function or method body, keyed by its USR so
// overloads and same-named methods on different classes don't collide.
type Function struct {
	USR  string
	Name string
	Body ast.Node
}

// Parser drives libclang over one or more translation units, following
// mewspring's ParseFile index/TU lifecycle but walking only the named
// file's own top-level declarations, the way the Python frontend's
// Parser.parse filters out cursors whose location.file doesn't match.
type Parser struct {
	idx    *clang.Index
	logger *zap.Logger
}

// NewParser creates an Index shared across every ParseFile call. Callers
// must Dispose it when done.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = logging.Noop()
	}
	return &Parser{idx: clang.NewIndex(0, 1), logger: logger}
}

// Dispose releases the underlying libclang index.
func (p *Parser) Dispose() { p.idx.Dispose() }

// ParseFile parses path and returns every function or method body it
// defines, each carrying its USR. Diagnostics are aggregated with go-multierror
// rather than treated as fatal: a (partial) parse is returned alongside
// a non-nil error, matching mewspring's own ParseFile contract.
func (p *Parser) ParseFile(path string, args []string) ([]Function, error) {
	tu := p.idx.ParseTranslationUnit(path, args, nil, 0)
	if tu == nil {
		return nil, ccerrors.UnreadableInput(path, errors.New("clang returned no translation unit"))
	}
	defer tu.Dispose()

	var diagErr error
	for _, d := range tu.Diagnostics() {
		diagErr = multierror.Append(diagErr, errors.New(d.Spelling()))
	}

	walker := &fileWalker{tu: tu, path: path, logger: p.logger}
	root := tu.TranslationUnitCursor()
	for _, top := range children(root) {
		walker.visitTop(top)
	}

	if len(walker.fns) == 0 && diagErr == nil {
		diagErr = ccerrors.ErrNoFunctions
	}
	return walker.fns, diagErr
}

// fileWalker collects function definitions belonging to one file,
// recursing into class bodies for methods, matching process_class in
// the Python frontend.
type fileWalker struct {
	tu     *clang.TranslationUnit
	path   string
	logger *zap.Logger
	fns    []Function
}

func (w *fileWalker) visitTop(node clang.Cursor) {
	file, _, _ := node.Location().PresumedLocation()
	if file != "" && file != w.path {
		return
	}
	switch node.Kind() {
	case clang.Cursor_FunctionDecl, clang.Cursor_CXXMethod:
		w.visitFunction(node)
	case clang.Cursor_ClassDecl, clang.Cursor_StructDecl:
		for _, member := range children(node) {
			w.visitTop(member)
		}
	}
}

func (w *fileWalker) visitFunction(node clang.Cursor) {
	fp := newFunctionParser(w.tu, node, w.logger)
	fp.parse()
	body := fp.body()
	if isEmptyBody(body) {
		return
	}
	w.fns = append(w.fns, Function{USR: fp.usr(), Name: node.Spelling(), Body: body})
}

// isEmptyBody reports whether a parsed function contributed no
// statements at all (a prototype, or a body clang couldn't resolve),
// which the corpus driver should skip rather than score, matching the
// Python frontend's has_statements() gate.
func isEmptyBody(body ast.Node) bool {
	return !body.HasChildren()
}
