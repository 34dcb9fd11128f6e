// Package graph holds the in-memory undirected graph built from a combined
// edge list. It mirrors what the visualization layer needs: node and edge
// sets in a stable order, degrees for node sizing, and connected components
// for the run summary.
package graph

import "github.com/vk/netvizgo/internal/network"

// Graph is a simple undirected graph over string node ids. Parallel edges
// collapse; self-loops are allowed. Nodes and edges keep insertion order.
type Graph struct {
	order []string
	adj   map[string]map[string]struct{}
	edges []network.Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// FromNetwork builds a graph from every edge of a combined network.
func FromNetwork(n *network.Network) *Graph {
	g := New()
	for _, e := range n.Edges() {
		g.AddEdge(e.Source, e.Target)
	}
	return g
}

func (g *Graph) addNode(id string) map[string]struct{} {
	nbrs, ok := g.adj[id]
	if !ok {
		nbrs = make(map[string]struct{})
		g.adj[id] = nbrs
		g.order = append(g.order, id)
	}
	return nbrs
}

// AddEdge connects a and b, creating either node as needed. Re-adding an
// existing connection is a no-op.
func (g *Graph) AddEdge(a, b string) {
	aN := g.addNode(a)
	bN := g.addNode(b)
	if _, dup := aN[b]; dup {
		return
	}
	aN[b] = struct{}{}
	bN[a] = struct{}{}
	g.edges = append(g.edges, network.Edge{Source: a, Target: b})
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns the node ids in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns each undirected edge once, in insertion order, oriented the
// way it was first added.
func (g *Graph) Edges() []network.Edge {
	out := make([]network.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Degree returns the number of distinct neighbors of id. A self-loop counts
// once. Unknown ids have degree zero.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// Components returns the number of connected components.
func (g *Graph) Components() int {
	visited := make(map[string]struct{}, len(g.order))
	components := 0

	for _, start := range g.order {
		if _, ok := visited[start]; ok {
			continue
		}
		components++

		// BFS from start.
		queue := []string{start}
		visited[start] = struct{}{}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for nbr := range g.adj[cur] {
				if _, ok := visited[nbr]; !ok {
					visited[nbr] = struct{}{}
					queue = append(queue, nbr)
				}
			}
		}
	}

	return components
}
