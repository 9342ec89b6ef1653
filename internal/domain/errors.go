package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures so callers can map them to an
// HTTP status without string matching.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindValidation covers bad user input: missing/empty file, wrong
	// extension, missing or blank question.
	KindValidation
	// KindNotReady means no corpus has been successfully built yet.
	KindNotReady
	// KindPayloadTooLarge means the uploaded file exceeds the size cap.
	KindPayloadTooLarge
	// KindConfiguration covers invalid internal parameters, e.g. a chunk
	// overlap that is not smaller than the chunk size.
	KindConfiguration
	// KindUpstream covers extractor, embedder and generator failures.
	KindUpstream
	// KindEmptyIndex means a search hit an index with zero entries. The
	// build path rejects empty builds, so reaching this is a bug.
	KindEmptyIndex
)

// Error carries an ErrorKind alongside the message. It wraps an optional
// cause so errors.Is/As keep working through the pipeline.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a kinded error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapUpstream tags a collaborator failure so it surfaces as an upstream
// error with the cause's message intact.
func WrapUpstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

// KindOf returns the ErrorKind carried by err, or KindUnknown if err does
// not carry one.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
