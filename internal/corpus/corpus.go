// Package corpus walks two directory trees of C++ sources, parses every
// function they define through internal/frontend, and all-pairs compares
// one tree's functions against the other's, the Go counterpart of the
// Python driver's directory scan.
package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ccplag/ccsim/internal/ast"
	"github.com/ccplag/ccsim/internal/ccerrors"
	"github.com/ccplag/ccsim/internal/frontend"
)

// FunctionEntry is one parsed function, carried alongside enough
// provenance for a Finding to report where it came from.
type FunctionEntry struct {
	Name string
	Loc  ast.Location
	Body ast.Node
}

// Finding is one non-zero-score comparison between a function from the
// "checked" set and one from the "compared" set.
type Finding struct {
	CheckedName      string
	CheckedLocation  ast.Location
	ComparedName     string
	ComparedLocation ast.Location
	Score            float64
}

// Corpus is the set of functions discovered by walking a directory tree,
// keyed by USR so overloaded or same-named methods never collide.
type Corpus struct {
	Entries map[string]FunctionEntry
}

// Load walks root for files whose extension is in suffixes, parses each
// with parser, and returns every function it defines. A per-file parse
// error is aggregated with go-multierror rather than aborting the walk —
// matching spec.md's "parsing proceeds on a best-effort basis" contract —
// unless the directory itself can't be walked, which is fatal.
func Load(root string, suffixes []string, args []string, parser *frontend.Parser, logger *zap.Logger) (*Corpus, error) {
	c := &Corpus{Entries: make(map[string]FunctionEntry)}

	var parseErr error
	walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !hasSuffix(path, suffixes) {
			return nil
		}

		fns, ferr := parser.ParseFile(path, args)
		if ferr != nil && !errors.Is(ferr, ccerrors.ErrNoFunctions) {
			parseErr = multierror.Append(parseErr, errors.Wrap(ferr, path))
			if logger != nil {
				logger.Warn("parse error", zap.String("file", path), zap.Error(ferr))
			}
		}
		for _, fn := range fns {
			c.Entries[fn.USR] = FunctionEntry{Name: fn.Name, Loc: fn.Body.Loc(), Body: fn.Body}
		}
		return nil
	})
	if walkErr != nil {
		return nil, ccerrors.UnreadableInput(root, walkErr)
	}
	return c, parseErr
}

func hasSuffix(path string, suffixes []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range suffixes {
		if ext == strings.ToLower(s) {
			return true
		}
	}
	return false
}

// sortFindings orders findings by descending score, breaking ties by
// checked name so CLI output is deterministic across runs on the same
// input trees.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Score != findings[j].Score {
			return findings[i].Score > findings[j].Score
		}
		return findings[i].CheckedName < findings[j].CheckedName
	})
}
