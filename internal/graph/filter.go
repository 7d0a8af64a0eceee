package graph

import "strings"

// Filter returns the ids of nodes matching the query, in ingestion order.
// Matching is case-insensitive substring over id, label, span, and tags.
// An empty or whitespace-only query returns the full node set. The view is
// recomputed in full on every call; a single linear scan keeps this
// responsive at tens of thousands of nodes.
func Filter(store *Store, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	order := store.Order()
	if q == "" {
		view := make([]string, len(order))
		copy(view, order)
		return view
	}

	var view []string
	for _, id := range order {
		if strings.Contains(store.Node(id).haystack, q) {
			view = append(view, id)
		}
	}
	return view
}
