package tui

import (
	"strings"
	"testing"

	"github.com/npratt/riffdag/internal/graph"
)

// ingestLines builds a store from raw JSONL for tests.
func ingestLines(t *testing.T, lines string) (*graph.Store, *graph.Report) {
	t.Helper()
	store, report, err := graph.Ingest(strings.NewReader(lines), 0)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	return store, report
}

const testGraph = `{"type":"node","id":"a","label":"alpha","tags":["prompt"]}
{"type":"node","id":"b","label":"beta","tags":["response"]}
{"type":"node","id":"c","label":"gamma","tags":["tool"]}
{"type":"edge","from":"a","to":"b"}
{"type":"edge","from":"b","to":"c","label":"calls"}
`

func TestSelectionMoveByClamps(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		delta   int
		viewLen int
		want    int
	}{
		{"down within range", 0, 1, 3, 1},
		{"up within range", 2, -1, 3, 1},
		{"clamp at top", 0, -1, 3, 0},
		{"clamp at bottom", 2, 1, 3, 2},
		{"large delta clamps", 1, 100, 3, 2},
		{"large negative delta clamps", 1, -100, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := selection{index: tt.start}
			s.moveBy(tt.delta, tt.viewLen)
			if s.index != tt.want {
				t.Errorf("index = %d, want %d", s.index, tt.want)
			}
		})
	}
}

func TestSelectionEmptyView(t *testing.T) {
	s := selection{index: 5}

	s.moveBy(1, 0)
	if s.index != 0 {
		t.Errorf("index = %d, want 0 after move on empty view", s.index)
	}

	if id, ok := s.current(nil); ok || id != "" {
		t.Errorf("current on empty view = (%q, %v), want (\"\", false)", id, ok)
	}
}

func TestSelectionCurrent(t *testing.T) {
	view := []string{"a", "b", "c"}

	s := selection{index: 1}
	id, ok := s.current(view)
	if !ok || id != "b" {
		t.Errorf("current = (%q, %v), want (\"b\", true)", id, ok)
	}

	// Index beyond the view reports the last entry.
	s.index = 10
	id, ok = s.current(view)
	if !ok || id != "c" {
		t.Errorf("current past end = (%q, %v), want (\"c\", true)", id, ok)
	}
}

func TestSelectionReclamp(t *testing.T) {
	tests := []struct {
		name    string
		newView []string
		prevID  string
		want    int
	}{
		{"previous id kept", []string{"x", "b", "y"}, "b", 1},
		{"previous id gone resets to top", []string{"x", "y"}, "b", 0},
		{"no previous id resets to top", []string{"x", "y"}, "", 0},
		{"empty new view", nil, "b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := selection{index: 7}
			s.reclamp(tt.newView, tt.prevID)
			if s.index != tt.want {
				t.Errorf("index = %d, want %d", s.index, tt.want)
			}
		})
	}
}
