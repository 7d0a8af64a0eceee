package tui

// selection tracks the highlighted index within the current filtered
// view. The index is always clamped to [0, viewLen-1]; an empty view is
// the sentinel state where current reports no id. Movement clamps at the
// ends rather than wrapping, so holding a key parks on the first or last
// entry.
type selection struct {
	index int
}

// moveBy shifts the selection by delta, clamping at both ends. It is a
// no-op on an empty view.
func (s *selection) moveBy(delta, viewLen int) {
	s.setIndex(s.index+delta, viewLen)
}

// setIndex sets the selection to i, clamped into range.
func (s *selection) setIndex(i, viewLen int) {
	if viewLen == 0 {
		s.index = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > viewLen-1 {
		i = viewLen - 1
	}
	s.index = i
}

// current returns the selected id within view, or false when the view is
// empty.
func (s *selection) current(view []string) (string, bool) {
	if len(view) == 0 {
		return "", false
	}
	if s.index >= len(view) {
		return view[len(view)-1], true
	}
	return view[s.index], true
}

// reclamp adjusts the selection after the view changed. If the previously
// selected id is still present it stays selected; otherwise the selection
// resets to the top.
func (s *selection) reclamp(newView []string, prevID string) {
	if prevID != "" {
		for i, id := range newView {
			if id == prevID {
				s.index = i
				return
			}
		}
	}
	s.setIndex(0, len(newView))
}
