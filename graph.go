package aoc

// Graph is an undirected weighted graph. The zero value is empty.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

// InitMap makes *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge joins a and b with weight dist, adding both nodes.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	for _, e := range [][2]K{{a, b}, {b, a}} {
		adj := g.Edges[e[0]]
		InitMap(&adj)
		adj[e[1]] = dist
		g.Edges[e[0]] = adj
		g.AddNode(e[0])
	}
}

// NumPathsWithRestriction counts the paths from start to end. canVisit is
// asked before stepping onto x with the visit counts of the current path.
func (g *Graph[K]) NumPathsWithRestriction(start, end K, canVisit func(x K, alreadyVisited map[K]int) bool) int {
	visited := make(map[K]int)
	var count func(at K) int
	count = func(at K) int {
		if at == end {
			return 1
		}
		visited[at]++
		defer func() { visited[at]-- }()
		n := 0
		for next := range g.Edges[at] {
			if canVisit(next, visited) {
				n += count(next)
			}
		}
		return n
	}
	return count(start)
}

// NumPaths counts the paths from start to end that visit no node twice.
func (g *Graph[K]) NumPaths(start, end K) int {
	return g.NumPathsWithRestriction(start, end, func(x K, visited map[K]int) bool {
		return visited[x] == 0
	})
}

// ReachableNodes returns every node reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	seen := map[K]bool{a: true}
	q := NewQueue(a)
	q.While(func(v K) bool {
		for next := range g.Edges[v] {
			if !seen[next] {
				seen[next] = true
				q.Push(next)
			}
		}
		return true
	})
	return seen
}
