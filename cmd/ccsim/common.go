package main

import (
	"github.com/ccplag/ccsim/internal/ccerrors"
	"github.com/ccplag/ccsim/internal/frontend"
)

// newParser constructs the shared frontend.Parser, converting a libclang
// load failure into ccerrors.ErrFrontendUnavailable. Go's clang bindings
// link libclang at build time rather than dlopen it at run time the way
// the Python original does, so the only place this can still fail at
// runtime is clang.NewIndex itself; a panic there is the closest signal
// this binding surfaces, hence the recover.
func newParser() (p *frontend.Parser, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = ccerrors.Frontend(cfg.LibclangPath(), errorFromRecover(r))
		}
	}()
	return frontend.NewParser(logger), nil
}

func errorFromRecover(r interface{}) error {
	if e, ok := r.(error); ok {
		return e
	}
	return ccerrors.ErrFrontendUnavailable
}
