package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileNotFound      = errors.New("file not found")
	ErrParseFailure      = errors.New("failed to extract text")
	ErrAmbiguousSource   = errors.New("more than one candidate file")
)

// ParseError carries the operation and file behind a parser failure.
type ParseError struct {
	Op      string
	Path    string
	BaseErr error
	Detail  string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (op: %s, path: %s): %s", e.BaseErr, e.Op, e.Path, e.Detail)
	}
	return fmt.Sprintf("%s (op: %s, path: %s)", e.BaseErr, e.Op, e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.BaseErr
}

// Is lets errors.Is compare against the sentinel errors.
func (e *ParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

func newError(op, path string, base error, detail string) error {
	return &ParseError{Op: op, Path: path, BaseErr: base, Detail: detail}
}
