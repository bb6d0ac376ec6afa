package maglayout

import (
	"fmt"
	"strconv"
)

// ParseError a malformed value inside a layout element
type ParseError struct {
	// Field attribute name, if known
	Field string
	// Token offending coordinate token, empty for structural problems
	Token string
	// Position of the token in the coordinate string
	Position int
	Err      error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Token != "" {
		msg += " at token " + strconv.Itoa(e.Position) + " " + strconv.Quote(e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AnnotationError the element block of one annotation file is malformed,
// the file can be skipped without giving up on the corpus
type AnnotationError struct {
	Path string
	Err  error
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("malformed annotation %s: %v", e.Path, e.Err)
}

func (e *AnnotationError) Unwrap() error {
	return e.Err
}

// MissingFieldError a document does not match the expected schema
type MissingFieldError struct {
	// Path of the node in the document like size/width
	Path string
	Err  error
}

func (e *MissingFieldError) Error() string {
	if e.Err != nil {
		return "invalid field " + e.Path + ": " + e.Err.Error()
	}
	return "missing field " + e.Path
}

func (e *MissingFieldError) Unwrap() error {
	return e.Err
}
