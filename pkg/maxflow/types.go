package maxflow

import "github.com/lintang-b-s/mcmetro/pkg/datastructure"

type MinCut struct {
	flags                  []bool // true if the vertex is reachable from source in the final residual graph (partition one), else partition two
	numNodesInPartitionTwo int
	minCut                 int
}

func NewMinCut(numberOfVertices int) *MinCut {
	return &MinCut{
		flags: make([]bool, numberOfVertices),
	}
}

func (mc *MinCut) SetFlag(u datastructure.Index, flag bool) {
	mc.flags[u] = flag
}

func (mc *MinCut) GetFlag(u datastructure.Index) bool {
	return mc.flags[u]
}

func (mc *MinCut) GetNumNodesInPartitionTwo() int {
	return mc.numNodesInPartitionTwo
}

func (mc *MinCut) incrementNumNodesInPartitionTwo() {
	mc.numNodesInPartitionTwo++
}

func (mc *MinCut) GetMinCut() int {
	return mc.minCut
}

func (mc *MinCut) setMinCut(maxflow int) {
	mc.minCut = maxflow
}

// CutCapacity sums the baseline capacities of the forward arcs leaving partition one.
func (mc *MinCut) CutCapacity(graph *datastructure.CapacityGraph) int {
	total := 0
	for u := datastructure.Index(0); u < datastructure.Index(len(mc.flags)); u++ {
		if !mc.flags[u] {
			continue
		}
		graph.ForEachVertexEdges(u, func(e datastructure.Index, edge *datastructure.CapacityEdge) {
			if !edge.IsReversed() && !mc.flags[edge.GetTo()] {
				total += graph.GetCapacity(e)
			}
		})
	}
	return total
}

type FlowResult struct {
	maxFlow         int
	augmentingPaths int
	minCut          *MinCut
}

func NewEmptyFlowResult() *FlowResult {
	return &FlowResult{}
}

func (fr *FlowResult) GetMaxFlow() int {
	return fr.maxFlow
}

func (fr *FlowResult) GetAugmentingPaths() int {
	return fr.augmentingPaths
}

// GetMinCut is nil when the query was rejected without running the algorithm.
func (fr *FlowResult) GetMinCut() *MinCut {
	return fr.minCut
}
