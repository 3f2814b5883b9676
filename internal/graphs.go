// This file contains thin wrappers around the graph module
// for managing graph structures in the tournament data.
package internal

import (
	"iter"
	"sync/atomic"

	"github.com/dominikbraun/graph"
)

// Many tournaments may be built concurrently, so the
// node ids are drawn atomically.
var nodeId atomic.Int64

func NextNodeId() int {
	return int(nodeId.Add(1) - 1)
}

type GraphNode interface {
	// A unique ID that is used as the node hash
	Id() int
}

func getNodeId[T GraphNode](node T) int {
	return node.Id()
}

type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
	adjancencyMap map[int]map[int]graph.Edge[int]
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	g.adjancencyMap = nil
	return g.Graph.AddEdge(source.Id(), target.Id())
}

func (g *DependencyGraph[T]) AddVertex(node T) error {
	g.adjancencyMap = nil
	return g.Graph.AddVertex(node)
}

func (g *DependencyGraph[T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		visitor := func(key, depth int) bool {
			v, _ := g.Vertex(key)
			return !yield(v, depth)
		}
		graph.BFSWithDepth(g.Graph, start.Id(), visitor)
	}
	return iterator
}

// Returns the nodes that are on the outgoing edges of the given
// source node (the dependants).
func (g *DependencyGraph[T]) GetDependants(source T) []T {
	if g.adjancencyMap == nil {
		g.adjancencyMap, _ = g.Graph.AdjacencyMap()
	}

	outEdges := g.adjancencyMap[source.Id()]
	dependants := make([]T, 0, len(outEdges))
	for k := range outEdges {
		dependant, _ := g.Vertex(k)
		dependants = append(dependants, dependant)
	}

	return dependants
}

// A RankingGraph contains all rankings of a tournament as its
// nodes. The directed edges between the nodes model the dependencies
// between the rankings.
//
// If a ranking resolves its slots from a placement in another ranking
// or reads the order of another ranking it will have an incoming
// edge from that ranking.
//
// The graph is acyclic and forms a topological hierarchy which determines
// the order in which rankings have to be updated in order to properly
// propagate a change.
type RankingGraph struct {
	DependencyGraph[Ranking]
}

// Updates all rankings and slots going
// from the start Ranking in the dependency graph
func (g *RankingGraph) Update(start Ranking) {
	order, err := graph.TopologicalSort(g.Graph)
	if err != nil {
		panic("The ranking graph is not acyclic")
	}

	reachable := make(map[int]struct{})
	for ranking := range g.BreadthSearchIter(start) {
		reachable[ranking.Id()] = struct{}{}
	}

	for _, id := range order {
		if _, ok := reachable[id]; !ok {
			continue
		}
		ranking, _ := g.Vertex(id)
		ranking.UpdateRanks()
		for _, s := range ranking.DependantSlots() {
			s.Update()
		}
	}
}

func NewRankingGraph(root Ranking) *RankingGraph {
	graph := DependencyGraph[Ranking]{
		Graph: graph.New(getNodeId[Ranking], graph.Directed(), graph.Acyclic(), graph.PreventCycles()),
	}
	rankingGraph := &RankingGraph{DependencyGraph: graph}
	rankingGraph.AddVertex(root)
	return rankingGraph
}

// The EliminationGraph has all matches of an elimination
// tournament as its nodes. The edges between the nodes model
// the path that the teams take towards the final like
// a conventional tournament tree.
type EliminationGraph struct {
	DependencyGraph[*Match]
}

// Returns the matches that the given match feeds a team into
func (e *EliminationGraph) NextMatches(match *Match) []*Match {
	return e.GetDependants(match)
}

func NewEliminationGraph() *EliminationGraph {
	graph := DependencyGraph[*Match]{
		Graph: graph.New(getNodeId[*Match], graph.Directed(), graph.Acyclic()),
	}
	eliminationGraph := EliminationGraph{DependencyGraph: graph}
	return &eliminationGraph
}
