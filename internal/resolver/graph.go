package resolver

// graph is a dependency graph with insertion-ordered nodes and edges.
type graph struct {
	order      []string
	deps       map[string][]string // node -> dependencies
	dependents map[string][]string // node -> dependents
}

func newGraph() *graph {
	return &graph{
		deps:       make(map[string][]string),
		dependents: make(map[string][]string),
	}
}

// addNode registers a node; later calls for the same node are no-ops.
func (g *graph) addNode(id string) {
	if _, exists := g.deps[id]; exists {
		return
	}
	g.order = append(g.order, id)
	g.deps[id] = []string{}
}

// addEdge records that node depends on dep. Self-loops and duplicates are ignored.
func (g *graph) addEdge(node, dep string) {
	if node == dep {
		return
	}
	if !contains(g.deps[node], dep) {
		g.deps[node] = append(g.deps[node], dep)
	}
	if !contains(g.dependents[dep], node) {
		g.dependents[dep] = append(g.dependents[dep], node)
	}
}

// sort returns nodes in dependency order followed by the nodes left in
// cycles, which are also returned separately.
func (g *graph) sort() (ordered, cyclic []string) {
	inDegree := make(map[string]int, len(g.order))
	var queue []string
	for _, id := range g.order {
		inDegree[id] = len(g.deps[id])
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	done := make(map[string]bool, len(g.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		ordered = append(ordered, id)
		done[id] = true

		for _, child := range g.dependents[id] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	for _, id := range g.order {
		if !done[id] {
			cyclic = append(cyclic, id)
		}
	}
	return append(ordered, cyclic...), cyclic
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
