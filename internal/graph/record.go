// Package graph holds the in-memory event graph: record parsing, the store
// with its adjacency indices, stream ingestion, filtering, and the
// depth-bounded neighborhood traversal. It has no dependency on the TUI.
package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the display category of a node.
type Kind int

const (
	// KindGeneric is the default for nodes without a recognized category.
	KindGeneric Kind = iota
	// KindPrompt marks prompt/input nodes.
	KindPrompt
	// KindResponse marks response/output nodes.
	KindResponse
	// KindTool marks tool invocation nodes.
	KindTool
	// KindError marks error nodes.
	KindError
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPrompt:
		return "prompt"
	case KindResponse:
		return "response"
	case KindTool:
		return "tool"
	case KindError:
		return "error"
	default:
		return "generic"
	}
}

// ClassifyKind maps an explicit node_type value and the node's tags to a
// Kind. The explicit value wins; tags are matched by substring. Anything
// unrecognized is generic.
func ClassifyKind(nodeType string, tags []string) Kind {
	if k, ok := kindFromString(strings.ToLower(nodeType)); ok {
		return k
	}
	for _, tag := range tags {
		if k, ok := kindFromString(strings.ToLower(tag)); ok {
			return k
		}
	}
	return KindGeneric
}

func kindFromString(s string) (Kind, bool) {
	switch {
	case strings.Contains(s, "prompt"):
		return KindPrompt, true
	case strings.Contains(s, "response"):
		return KindResponse, true
	case strings.Contains(s, "tool"):
		return KindTool, true
	case strings.Contains(s, "error"):
		return KindError, true
	}
	return KindGeneric, false
}

// NodeRecord is a parsed node line.
type NodeRecord struct {
	ID    string
	Label string
	Span  string
	Tags  []string
	TS    string
	Kind  Kind
}

// EdgeRecord is a parsed edge line.
type EdgeRecord struct {
	From  string
	To    string
	Label string
}

// Record is either a NodeRecord or an EdgeRecord.
type Record interface {
	record()
}

func (NodeRecord) record() {}
func (EdgeRecord) record() {}

// ParseError reports a malformed input line. It is recoverable: the
// pipeline records it and continues with the next line.
type ParseError struct {
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// rawRecord is the wire shape of one JSONL line. Unknown fields are
// ignored by encoding/json; node_type and edge label are superset fields.
type rawRecord struct {
	Type     string   `json:"type"`
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Span     string   `json:"span"`
	Tags     []string `json:"tags"`
	TS       string   `json:"ts"`
	NodeType string   `json:"node_type"`
	From     string   `json:"from"`
	To       string   `json:"to"`
}

// ParseLine decodes one input line into a NodeRecord or EdgeRecord.
// lineno is 1-based and is carried into any ParseError for diagnostics.
func ParseLine(line []byte, lineno int) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, &ParseError{Line: lineno, Reason: "invalid JSON: " + err.Error()}
	}

	switch raw.Type {
	case "node":
		if raw.ID == "" {
			return nil, &ParseError{Line: lineno, Reason: "node record missing id"}
		}
		return NodeRecord{
			ID:    raw.ID,
			Label: raw.Label,
			Span:  raw.Span,
			Tags:  raw.Tags,
			TS:    raw.TS,
			Kind:  ClassifyKind(raw.NodeType, raw.Tags),
		}, nil

	case "edge":
		if raw.From == "" || raw.To == "" {
			return nil, &ParseError{Line: lineno, Reason: "edge record missing from/to"}
		}
		return EdgeRecord{From: raw.From, To: raw.To, Label: raw.Label}, nil

	case "":
		return nil, &ParseError{Line: lineno, Reason: "record missing type field"}

	default:
		return nil, &ParseError{Line: lineno, Reason: fmt.Sprintf("unknown record type %q", raw.Type)}
	}
}
