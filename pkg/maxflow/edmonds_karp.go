package maxflow

import (
	"math"

	"github.com/lintang-b-s/mcmetro/pkg/datastructure"
	"github.com/lintang-b-s/mcmetro/pkg/util"
	"go.uber.org/zap"
)

// EdmondsKarp computes maximum flows over a CapacityGraph. The graph is only read; the residual
// capacities live in the engine's own buffer, which is restored before every query returns.
// An engine must not run two queries at the same time.
type EdmondsKarp struct {
	graph       *datastructure.CapacityGraph
	residual    []int
	parentEdge  []datastructure.Index
	visited     []bool
	queue       []datastructure.Index
	forwardOnly bool
	logger      *zap.Logger
}

// NewEdmondsKarp creates an engine. With forwardOnly the reverse residual arcs are never used, so flow
// already pushed along a path can not be cancelled.
func NewEdmondsKarp(graph *datastructure.CapacityGraph, forwardOnly bool, logger *zap.Logger) *EdmondsKarp {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := graph.NumberOfVertices()
	return &EdmondsKarp{
		graph:       graph,
		residual:    graph.NewResidual(),
		parentEdge:  make([]datastructure.Index, n),
		visited:     make([]bool, n),
		queue:       make([]datastructure.Index, 0, n),
		forwardOnly: forwardOnly,
		logger:      logger,
	}
}

func (ek *EdmondsKarp) isValidVertex(u datastructure.Index) bool {
	return int(u) < ek.graph.NumberOfVertices()
}

// bfsAugmentingPath searches the shortest path from s to t over arcs with positive residual capacity,
// recording for each reached vertex the arc it was reached through.
func (ek *EdmondsKarp) bfsAugmentingPath(s, t datastructure.Index) bool {
	for i := range ek.visited {
		ek.visited[i] = false
		ek.parentEdge[i] = datastructure.INVALID_INDEX
	}

	ek.queue = ek.queue[:0]
	ek.queue = append(ek.queue, s)
	ek.visited[s] = true

	for head := 0; head < len(ek.queue); head++ {
		u := ek.queue[head]

		found := false
		ek.graph.ForEachVertexEdges(u, func(e datastructure.Index, edge *datastructure.CapacityEdge) {
			if found {
				return
			}
			if ek.forwardOnly && edge.IsReversed() {
				return
			}
			v := edge.GetTo()
			if ek.visited[v] || ek.residual[e] <= 0 {
				return
			}
			ek.visited[v] = true
			ek.parentEdge[v] = e
			if v == t {
				found = true
				return
			}
			ek.queue = append(ek.queue, v)
		})
		if found {
			return true
		}
	}
	return false
}

// augment pushes the bottleneck capacity of the path recorded in parentEdge and returns it.
func (ek *EdmondsKarp) augment(s, t datastructure.Index) int {
	bottleneck := math.MaxInt
	for v := t; v != s; {
		e := ek.parentEdge[v]
		bottleneck = util.Min(bottleneck, ek.residual[e])
		v = ek.graph.GetEdge(e).GetFrom()
	}

	for v := t; v != s; {
		e := ek.parentEdge[v]
		edge := ek.graph.GetEdge(e)
		ek.residual[e] -= bottleneck
		if !ek.forwardOnly {
			ek.residual[edge.GetReversedEdge()] += bottleneck
		}
		v = edge.GetFrom()
	}
	return bottleneck
}

/*
ComputeMaxFlow returns the maximum flow from s to t.
s == t or an index outside the graph gives a zero result and leaves the engine untouched.

time complexity: O(V * E^2)
*/
func (ek *EdmondsKarp) ComputeMaxFlow(s, t datastructure.Index) *FlowResult {
	if s == t || !ek.isValidVertex(s) || !ek.isValidVertex(t) {
		return NewEmptyFlowResult()
	}
	defer ek.graph.ResetCapacities(ek.residual)

	result := &FlowResult{}
	for ek.bfsAugmentingPath(s, t) {
		pathFlow := ek.augment(s, t)
		result.maxFlow += pathFlow
		result.augmentingPaths++

		ek.logger.Debug("augmenting path found",
			zap.Uint32("source", uint32(s)),
			zap.Uint32("sink", uint32(t)),
			zap.Int("pathFlow", pathFlow),
			zap.Int("totalFlow", result.maxFlow))
	}

	// the last bfs failed to reach t. with reverse arcs, visited is the source side of a minimum cut
	result.minCut = ek.makeMinCut(result.maxFlow)
	return result
}

func (ek *EdmondsKarp) makeMinCut(maxflow int) *MinCut {
	minCut := NewMinCut(ek.graph.NumberOfVertices())
	for u := datastructure.Index(0); u < datastructure.Index(ek.graph.NumberOfVertices()); u++ {
		if ek.visited[u] {
			minCut.SetFlag(u, true)
		} else {
			minCut.incrementNumNodesInPartitionTwo()
		}
	}
	minCut.setMinCut(maxflow)
	return minCut
}

// GetResidual exposes the residual buffer. Outside a query it always equals the baseline capacities.
func (ek *EdmondsKarp) GetResidual() []int {
	return ek.residual
}

func (ek *EdmondsKarp) IsForwardOnly() bool {
	return ek.forwardOnly
}
