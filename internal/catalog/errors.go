package catalog

import (
	"errors"
	"fmt"
)

// ErrLoadFailure matches every error returned by Loader.Load.
var ErrLoadFailure = errors.New("load failure")

// UserMessage is the text shown in place of the cards when loading fails.
// It is the same whatever went wrong.
const UserMessage = "Ocorreu um erro ao carregar os álbuns. Tente novamente mais tarde."

// LoadError describes why the catalog document could not be loaded.
type LoadError struct {
	// Source is the URL or path that was read.
	Source string
	// Op is the stage that failed: "fetch", "read" or "decode".
	Op  string
	Err error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load failure: %s %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap exposes the underlying error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports ErrLoadFailure as a match so callers need not know the type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}
