// Package ccerrors collects the sentinel and wrapped error values shared
// across ccsim's components, so the CLI can map a failure to a stable exit
// code without reaching into a specific package's internals.
package ccerrors

import "github.com/pkg/errors"

// ErrFrontendUnavailable means the Clang frontend could not be initialized,
// typically because libclang itself could not be located or loaded.
var ErrFrontendUnavailable = errors.New("ccsim: clang frontend unavailable")

// ErrUnreadableInput means a source path could not be opened or is not a
// regular file.
var ErrUnreadableInput = errors.New("ccsim: input path is not readable")

// ErrNoFunctions means a parsed translation unit yielded no function bodies
// worth comparing, which is a soft failure: the file still parsed, it just
// contributed nothing to the corpus.
var ErrNoFunctions = errors.New("ccsim: no comparable functions found")

// Frontend wraps ErrFrontendUnavailable with the resolved libclang path that
// failed to load, so the CLI's error message can tell the user exactly what
// it tried.
func Frontend(libclangPath string, cause error) error {
	return errors.Wrapf(ErrFrontendUnavailable, "%s: %v", libclangPath, cause)
}

// UnreadableInput wraps ErrUnreadableInput with the offending path.
func UnreadableInput(path string, cause error) error {
	return errors.Wrapf(ErrUnreadableInput, "%s: %v", path, cause)
}
