package spanning

import (
	"cmp"
	"slices"

	"github.com/lintang-b-s/mcmetro/pkg/datastructure"
	"go.uber.org/zap"
)

type SpanningSubset struct {
	trackIDs      []datastructure.TrackID
	totalCapacity int
	totalCost     int
	components    int
}

func (ss *SpanningSubset) GetTrackIDs() []datastructure.TrackID {
	return ss.trackIDs
}

// GetTotalCapacity sums the capacities of the selected tracks.
func (ss *SpanningSubset) GetTotalCapacity() int {
	return ss.totalCapacity
}

func (ss *SpanningSubset) GetTotalCost() int {
	return ss.totalCost
}

// GetComponents is the number of connected groups of buildings left after the selection, 1 when every
// building is connected.
func (ss *SpanningSubset) GetComponents() int {
	return ss.components
}

func (ss *SpanningSubset) IsSpanning() bool {
	return ss.components <= 1
}

type rankedTrack struct {
	pos      int // position in graph.GetTracks()
	id       datastructure.TrackID
	goodness int
}

// Selector greedily picks the tracks with the highest capacity/cost ratio that do not close a cycle,
// Kruskal style.
type Selector struct {
	graph  *datastructure.CapacityGraph
	logger *zap.Logger
}

func NewSelector(graph *datastructure.CapacityGraph, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{graph: graph, logger: logger}
}

// Goodness is the usable track capacity divided by its cost, rounded down.
func (s *Selector) Goodness(t *datastructure.Track) int {
	if t.GetCost() <= 0 {
		return 0
	}
	return s.graph.TrackCapacity(t) / t.GetCost()
}

func (s *Selector) rankTracks() []rankedTrack {
	tracks := s.graph.GetTracks()
	ranked := make([]rankedTrack, len(tracks))
	for i, t := range tracks {
		ranked[i] = rankedTrack{pos: i, id: t.GetID(), goodness: s.Goodness(t)}
	}

	// descending goodness, ties by track id. the stable sort keeps input order for equal ids.
	slices.SortStableFunc(ranked, func(a, b rankedTrack) int {
		if a.goodness != b.goodness {
			return cmp.Compare(b.goodness, a.goodness)
		}
		return cmp.Compare(a.id, b.id)
	})
	return ranked
}

/*
Select returns at most NumberOfVertices()-1 tracks connecting the buildings without a cycle.
The result is shorter when the network is disconnected, and empty when there are no tracks.

time complexity: O(E log E)
*/
func (s *Selector) Select() *SpanningSubset {
	n := s.graph.NumberOfVertices()
	result := &SpanningSubset{
		trackIDs:   make([]datastructure.TrackID, 0),
		components: n,
	}
	if s.graph.NumberOfTracks() == 0 {
		return result
	}

	ds := datastructure.NewDisjointSet(n)
	for u := datastructure.Index(0); u < datastructure.Index(n); u++ {
		ds.Add(u)
	}

	tracks := s.graph.GetTracks()
	for _, rt := range s.rankTracks() {
		if len(result.trackIDs) >= n-1 {
			break
		}
		u, v := s.graph.GetTrackEndpoints(rt.pos)
		if ds.Connected(u, v) {
			continue
		}
		ds.Union(u, v)

		t := tracks[rt.pos]
		result.trackIDs = append(result.trackIDs, t.GetID())
		result.totalCapacity += s.graph.TrackCapacity(t)
		result.totalCost += t.GetCost()
	}
	result.components = ds.NumberOfSets()

	s.logger.Debug("spanning subset selected",
		zap.Int("tracks", len(result.trackIDs)),
		zap.Int("components", result.components))
	return result
}
