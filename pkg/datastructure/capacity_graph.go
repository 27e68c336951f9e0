package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/mcmetro/pkg/util"
)

type ParallelTrackPolicy uint8

const (
	// OVERWRITE keeps the capacity of the last track (in input order) on the same (start, end) pair.
	OVERWRITE ParallelTrackPolicy = iota
	SUM
	MAX
)

func ParseParallelTrackPolicy(s string) (ParallelTrackPolicy, error) {
	switch s {
	case "", util.PARALLEL_TRACKS_OVERWRITE:
		return OVERWRITE, nil
	case util.PARALLEL_TRACKS_SUM:
		return SUM, nil
	case util.PARALLEL_TRACKS_MAX:
		return MAX, nil
	default:
		return OVERWRITE, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown parallel track policy %q", s)
	}
}

func (p ParallelTrackPolicy) String() string {
	switch p {
	case SUM:
		return util.PARALLEL_TRACKS_SUM
	case MAX:
		return util.PARALLEL_TRACKS_MAX
	default:
		return util.PARALLEL_TRACKS_OVERWRITE
	}
}

// CapacityEdge is an arc of the residual network. Every forward arc (one per ordered building pair that
// has a valid track) is paired with a reverse arc of capacity 0.
type CapacityEdge struct {
	from     Index
	to       Index
	rev      Index // paired arc
	reversed bool
}

func (e *CapacityEdge) GetFrom() Index {
	return e.from
}

func (e *CapacityEdge) GetTo() Index {
	return e.to
}

func (e *CapacityEdge) GetReversedEdge() Index {
	return e.rev
}

func (e *CapacityEdge) IsReversed() bool {
	return e.reversed
}

type pairKey struct {
	from, to Index
}

// CapacityGraph is the directed capacity network built once from buildings and tracks.
// Its baseline capacities never change after construction; flow computations work on their own
// residual buffers and restore them with ResetCapacities.
type CapacityGraph struct {
	buildings     []*Building
	buildingIndex map[BuildingID]Index

	tracks      []*Track // valid tracks, input order
	trackSource []Index
	trackTarget []Index

	edges      []CapacityEdge
	outEdges   [][]Index
	pairEdge   map[pairKey]Index
	capacities []int

	policy ParallelTrackPolicy
}

// NewCapacityGraph builds the network. Nil slices and nil entries are ignored, duplicate building ids keep
// their first occurrence, and tracks with an unresolved endpoint, a negative capacity or a non-positive
// cost are dropped.
func NewCapacityGraph(tracks []*Track, buildings []*Building, policy ParallelTrackPolicy) *CapacityGraph {
	g := &CapacityGraph{
		buildings:     make([]*Building, 0, len(buildings)),
		buildingIndex: make(map[BuildingID]Index, len(buildings)),
		tracks:        make([]*Track, 0, len(tracks)),
		pairEdge:      make(map[pairKey]Index),
		policy:        policy,
	}

	for _, b := range buildings {
		if b == nil {
			continue
		}
		if _, ok := g.buildingIndex[b.GetID()]; ok {
			continue
		}
		g.buildingIndex[b.GetID()] = Index(len(g.buildings))
		g.buildings = append(g.buildings, b)
	}

	g.outEdges = make([][]Index, len(g.buildings))

	for _, t := range tracks {
		if !g.isValidTrack(t) {
			continue
		}
		u := g.buildingIndex[t.GetStartBuildingID()]
		v := g.buildingIndex[t.GetEndBuildingID()]
		g.tracks = append(g.tracks, t)
		g.trackSource = append(g.trackSource, u)
		g.trackTarget = append(g.trackTarget, v)

		if u == v {
			// a self loop can never carry flow
			continue
		}
		if _, ok := g.pairEdge[pairKey{u, v}]; ok {
			continue
		}
		g.addEdgePair(u, v)
	}

	g.capacities = make([]int, len(g.edges))
	g.ResetCapacities(g.capacities)
	return g
}

func (g *CapacityGraph) isValidTrack(t *Track) bool {
	if t == nil || t.GetCapacity() < 0 || t.GetCost() <= 0 {
		return false
	}
	_, okStart := g.buildingIndex[t.GetStartBuildingID()]
	_, okEnd := g.buildingIndex[t.GetEndBuildingID()]
	return okStart && okEnd
}

func (g *CapacityGraph) addEdgePair(u, v Index) {
	forward := Index(len(g.edges))
	backward := forward + 1

	g.edges = append(g.edges,
		CapacityEdge{from: u, to: v, rev: backward},
		CapacityEdge{from: v, to: u, rev: forward, reversed: true},
	)
	g.outEdges[u] = append(g.outEdges[u], forward)
	g.outEdges[v] = append(g.outEdges[v], backward)
	g.pairEdge[pairKey{u, v}] = forward
}

// TrackCapacity is the usable capacity of a track: min(occupants(start), occupants(end), track capacity).
// Tracks that were dropped at construction have capacity 0.
func (g *CapacityGraph) TrackCapacity(t *Track) int {
	if !g.isValidTrack(t) {
		return 0
	}
	start := g.buildings[g.buildingIndex[t.GetStartBuildingID()]]
	end := g.buildings[g.buildingIndex[t.GetEndBuildingID()]]

	return util.Min(util.Min(start.GetOccupants(), end.GetOccupants()), t.GetCapacity())
}

// ResetCapacities recomputes every arc capacity from the buildings and tracks into residual, which must
// hold NumberOfEdges() values. Reverse arcs get 0.
func (g *CapacityGraph) ResetCapacities(residual []int) {
	util.AssertPanic(len(residual) == len(g.edges),
		fmt.Sprintf("capacity graph: residual buffer has %d arcs, want %d", len(residual), len(g.edges)))

	for i := range residual {
		residual[i] = 0
	}

	seen := make([]bool, len(g.edges))
	for i, t := range g.tracks {
		e, ok := g.pairEdge[pairKey{g.trackSource[i], g.trackTarget[i]}]
		if !ok {
			continue
		}
		c := g.TrackCapacity(t)
		if !seen[e] {
			residual[e] = c
			seen[e] = true
			continue
		}

		switch g.policy {
		case SUM:
			residual[e] += c
		case MAX:
			residual[e] = util.Max(residual[e], c)
		default:
			residual[e] = c
		}
	}
}

// NewResidual returns a fresh copy of the baseline capacities.
func (g *CapacityGraph) NewResidual() []int {
	residual := make([]int, len(g.capacities))
	copy(residual, g.capacities)
	return residual
}

func (g *CapacityGraph) NumberOfVertices() int {
	return len(g.buildings)
}

func (g *CapacityGraph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *CapacityGraph) GetBuildingIndex(id BuildingID) (Index, bool) {
	idx, ok := g.buildingIndex[id]
	return idx, ok
}

func (g *CapacityGraph) GetBuilding(u Index) *Building {
	return g.buildings[u]
}

func (g *CapacityGraph) GetEdge(e Index) *CapacityEdge {
	return &g.edges[e]
}

// GetCapacity returns the baseline capacity of arc e.
func (g *CapacityGraph) GetCapacity(e Index) int {
	return g.capacities[e]
}

// GetPairCapacity returns the baseline capacity of the arc from u to v, or false if no track connects them.
func (g *CapacityGraph) GetPairCapacity(u, v Index) (int, bool) {
	e, ok := g.pairEdge[pairKey{u, v}]
	if !ok {
		return 0, false
	}
	return g.capacities[e], true
}

func (g *CapacityGraph) ForEachVertexEdges(u Index, handle func(e Index, edge *CapacityEdge)) {
	for _, e := range g.outEdges[u] {
		handle(e, &g.edges[e])
	}
}

func (g *CapacityGraph) GetTracks() []*Track {
	return g.tracks
}

func (g *CapacityGraph) NumberOfTracks() int {
	return len(g.tracks)
}

// GetTrackEndpoints returns the vertex indices of the i-th valid track.
func (g *CapacityGraph) GetTrackEndpoints(i int) (Index, Index) {
	return g.trackSource[i], g.trackTarget[i]
}

func (g *CapacityGraph) GetPolicy() ParallelTrackPolicy {
	return g.policy
}
