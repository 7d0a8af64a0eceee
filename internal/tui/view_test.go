package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func sizedTestModel(t *testing.T) model {
	t.Helper()
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View = %q, want loading placeholder", got)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	out := m.View()
	if !strings.Contains(out, "Terminal too small") {
		t.Errorf("View should warn about terminal size, got %q", out)
	}
}

func TestViewContainsPanes(t *testing.T) {
	m := sizedTestModel(t)
	out := m.View()

	for _, want := range []string{
		"Nodes 3/3",
		"Node Details",
		"Neighborhood (depth 2)",
		"a · alpha",
		"b · beta",
		"c · gamma",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestViewListCountReflectsFilter(t *testing.T) {
	m := sizedTestModel(t)
	m, _ = update(t, m, keyRunes("/"))
	m, _ = update(t, m, keyRunes("b"))

	out := m.View()
	if !strings.Contains(out, "Nodes 1/3") {
		t.Errorf("list title should show filtered count, got:\n%s", out)
	}
	if strings.Contains(out, "a · alpha") {
		t.Error("filtered-out node should not be listed")
	}
}

func TestViewEmptyFilterState(t *testing.T) {
	m := sizedTestModel(t)
	m, _ = update(t, m, keyRunes("/"))
	m, _ = update(t, m, keyRunes("z"))

	out := m.View()
	if !strings.Contains(out, "no nodes match the filter") {
		t.Error("empty view should show the no-match message")
	}
	if !strings.Contains(out, "no selection") {
		t.Error("neighborhood pane should show the no-selection message")
	}
}

func TestViewDetailFields(t *testing.T) {
	m := sizedTestModel(t)
	m, _ = update(t, m, keyRunes("j")) // select b

	out := m.View()
	for _, want := range []string{"beta", "response", "parents (1)", "children (1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail pane missing %q", want)
		}
	}
}

func TestViewFooterShowsFilter(t *testing.T) {
	m := sizedTestModel(t)
	m, _ = update(t, m, keyRunes("/"))
	m, _ = update(t, m, keyRunes("b"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	if !strings.Contains(out, `filter: "b"`) {
		t.Errorf("footer should show the active filter, got:\n%s", out)
	}
}

func TestViewHelpOverlay(t *testing.T) {
	m := sizedTestModel(t)
	m, _ = update(t, m, keyRunes("?"))

	out := m.View()
	if !strings.Contains(out, "Help") {
		t.Error("help overlay should render its title")
	}
	if !strings.Contains(out, "move selection") {
		t.Error("help overlay should list the key bindings")
	}
}

func TestViewWarningsOverlay(t *testing.T) {
	store, report := ingestLines(t, testGraph+`not json
{"type":"edge","from":"c","to":"ghost"}
`)
	m := newModel(store, report, 2, sizedTestModel(t).ui)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, keyRunes("w"))

	out := m.View()
	if !strings.Contains(out, "Ingestion Warnings") {
		t.Error("warnings overlay should render its title")
	}
	if !strings.Contains(out, "line 6") {
		t.Errorf("warnings overlay should name the failing line, got:\n%s", out)
	}
	if !strings.Contains(out, "ghost") {
		t.Error("warnings overlay should list the dangling edge")
	}
}

func TestViewWarningsOverlayEmpty(t *testing.T) {
	m := sizedTestModel(t)
	m, _ = update(t, m, keyRunes("w"))

	out := m.View()
	if !strings.Contains(out, "ingested cleanly") {
		t.Error("clean ingest should show the no-warnings message")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is far too long", 10, "this is t…"},
		{"héllo wörld", 7, "héllo …"},
		{"日本語のラベル", 5, "日本…"},
		{"ab日本語", 6, "ab日…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if lipgloss.Width(got) > tt.width {
			t.Errorf("truncate(%q, %d) = %q is %d cells wide", tt.in, tt.width, got, lipgloss.Width(got))
		}
	}
}

func TestListRowsShareLabelBudget(t *testing.T) {
	long := strings.Repeat("abc ", 40)
	store, report := ingestLines(t, `{"type":"node","id":"n1","label":"`+long+`"}
{"type":"node","id":"n2","label":"`+long+`"}
`)
	m := newModel(store, report, 2, sizedTestModel(t).ui)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	// Both rows carry the same label and degrees; the selection marker must
	// not change how much of the label survives truncation.
	pane := m.renderListPane(40, 20)
	var rows []string
	for _, line := range strings.Split(pane, "\n") {
		if strings.Contains(line, "abc") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("found %d label rows, want 2:\n%s", len(rows), pane)
	}

	clean := func(s string) string { return strings.Trim(s, "│ ") }
	selected := strings.TrimPrefix(clean(rows[0]), "▶ ")
	unselected := clean(rows[1])
	if selected != unselected {
		t.Errorf("selected row %q and unselected row %q should truncate the label identically", selected, unselected)
	}
}
