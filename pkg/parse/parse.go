// Package parse converts a textual directory-structure description into a
// forest of model.Node values.
//
// Two grammars are supported and auto-detected: an indented markdown bullet
// list and a box-drawing ASCII tree. The pipeline is Sanitize -> Detect ->
// grammar parser; individual malformed lines are skipped, and a parse only
// fails when the whole result is empty or the format cannot be classified.
package parse

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/structree/pkg/debug"
	"github.com/vanderheijden86/structree/pkg/model"
)

// Rejection reasons surfaced verbatim to the user.
const (
	reasonEmpty        = "input is empty"
	reasonOnlyComments = "input contains only comments or whitespace"
	reasonUnknown      = "unable to detect input format"
	reasonNoStructure  = "no valid directory structure found in input"
)

// RejectError reports why input could not be parsed. A rejection is the
// expected failure mode, never a crash: parser panics are recovered at the
// facade boundary and re-reported as a wrapped rejection.
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string {
	return e.Reason
}

// Parse runs the full pipeline on raw input and returns the forest, or a
// *RejectError describing the failure. No partial forest is ever returned
// for a rejected parse.
func Parse(raw string, ids model.IDGenerator) ([]*model.Node, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &RejectError{Reason: reasonEmpty}
	}

	sanitized := Sanitize(raw)
	if strings.TrimSpace(sanitized) == "" {
		return nil, &RejectError{Reason: reasonOnlyComments}
	}

	format := Detect(sanitized)
	debug.Log("parse: detected %s format (%d bytes sanitized)", format, len(sanitized))

	var forest []*model.Node
	var err error
	switch format {
	case FormatMarkdown:
		forest, err = runParser("markdown", func() []*model.Node {
			return parseMarkdown(sanitized, ids)
		})
	case FormatASCII:
		forest, err = runParser("ASCII", func() []*model.Node {
			return parseASCII(sanitized, ids)
		})
	default:
		return nil, &RejectError{Reason: reasonUnknown}
	}
	if err != nil {
		return nil, err
	}

	if len(forest) == 0 {
		return nil, &RejectError{Reason: reasonNoStructure}
	}

	debug.Log("parse: built forest with %d nodes", model.Count(forest))
	return forest, nil
}

// runParser executes one grammar parser with a panic boundary. Any fault
// during tree construction becomes a rejection instead of propagating.
func runParser(label string, fn func() []*model.Node) (forest []*model.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			debug.Log("parse: recovered %s parser panic: %v", label, r)
			forest = nil
			err = &RejectError{Reason: fmt.Sprintf("failed to parse %s format: %v", label, r)}
		}
	}()
	return fn(), nil
}
