package graph

import "sort"

// DefaultDepth is the neighborhood traversal depth when none is configured.
const DefaultDepth = 2

// Neighborhood is the depth-bounded induced subgraph around a center node.
// Ancestors[0] holds direct parents, Ancestors[1] grandparents, and so on;
// Descendants is symmetric with direct children first. Layers past the
// last non-empty one are omitted.
type Neighborhood struct {
	Center      string
	Ancestors   [][]string
	Descendants [][]string
}

// Neighbors computes the layered neighborhood of center up to depth in
// both directions. Members of a layer are ordered by ingestion order, so
// identical input always renders identically. Each direction keeps its own
// visited set, which makes the traversal cycle-safe and bounds it by
// branching factor to the power of depth rather than by graph size.
func Neighbors(store *Store, center string, depth int) Neighborhood {
	n := Neighborhood{Center: center}
	if store.Node(center) == nil || depth <= 0 {
		return n
	}
	n.Ancestors = bfsLayers(store, center, depth, store.Parents)
	n.Descendants = bfsLayers(store, center, depth, store.Children)
	return n
}

// bfsLayers walks outward from center using the given neighbor function,
// one layer per step, stopping at depth or when a layer comes up empty.
func bfsLayers(store *Store, center string, depth int, neighbors func(string) []string) [][]string {
	visited := map[string]bool{center: true}
	frontier := []string{center}

	var layers [][]string
	for d := 0; d < depth; d++ {
		var layer []string
		for _, id := range frontier {
			for _, next := range neighbors(id) {
				if visited[next] {
					continue
				}
				visited[next] = true
				layer = append(layer, next)
			}
		}
		if len(layer) == 0 {
			break
		}
		sort.SliceStable(layer, func(i, j int) bool {
			return store.OrderIndex(layer[i]) < store.OrderIndex(layer[j])
		})
		layers = append(layers, layer)
		frontier = layer
	}
	return layers
}
