package metro

import (
	"github.com/lintang-b-s/mcmetro/pkg/datastructure"
	"github.com/lintang-b-s/mcmetro/pkg/maxflow"
	"github.com/lintang-b-s/mcmetro/pkg/passenger"
	"github.com/lintang-b-s/mcmetro/pkg/scheduling"
	"github.com/lintang-b-s/mcmetro/pkg/spanning"
	"github.com/lintang-b-s/mcmetro/pkg/util"
	"go.uber.org/zap"
)

// MetroSystem answers capacity questions about a fixed network of buildings and tracks.
// It is not safe for concurrent use.
type MetroSystem struct {
	graph      *datastructure.CapacityGraph
	flow       *maxflow.EdmondsKarp
	selector   *spanning.Selector
	passengers *passenger.Registry
	logger     *zap.Logger
}

// NewMetroSystem builds the capacity graph once. Nil slices are treated as empty and invalid tracks are
// dropped silently. An invalid cfg is an error; a nil logger discards logs.
func NewMetroSystem(tracks []*datastructure.Track, buildings []*datastructure.Building, cfg util.EngineConfig,
	logger *zap.Logger) (*MetroSystem, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := util.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	policy, err := datastructure.ParseParallelTrackPolicy(cfg.ParallelTracks)
	if err != nil {
		return nil, err
	}

	graph := datastructure.NewCapacityGraph(tracks, buildings, policy)

	logger.Info("metro network built",
		zap.Int("buildings", graph.NumberOfVertices()),
		zap.Int("validTracks", graph.NumberOfTracks()),
		zap.Int("droppedTracks", len(tracks)-graph.NumberOfTracks()),
		zap.String("parallelTracks", policy.String()),
		zap.String("flowMode", cfg.FlowMode))

	return &MetroSystem{
		graph:      graph,
		flow:       maxflow.NewEdmondsKarp(graph, cfg.FlowMode == util.FLOW_MODE_FORWARD_ONLY, logger),
		selector:   spanning.NewSelector(graph, logger),
		passengers: passenger.NewRegistry(),
		logger:     logger,
	}, nil
}

// MaxPassengers returns the maximum number of passengers that can travel from start to end.
// Unknown buildings and start == end give 0.
func (m *MetroSystem) MaxPassengers(start, end datastructure.BuildingID) int {
	return m.MaxPassengersDetail(start, end).GetMaxFlow()
}

func (m *MetroSystem) MaxPassengersDetail(start, end datastructure.BuildingID) *maxflow.FlowResult {
	s, okStart := m.graph.GetBuildingIndex(start)
	t, okEnd := m.graph.GetBuildingIndex(end)
	if !okStart || !okEnd || s == t {
		return maxflow.NewEmptyFlowResult()
	}
	return m.flow.ComputeMaxFlow(s, t)
}

// BestMetroSystem returns the ids of a cycle-free set of tracks connecting the buildings, preferring tracks
// with a higher capacity/cost ratio.
func (m *MetroSystem) BestMetroSystem() []datastructure.TrackID {
	return m.BestMetroSystemDetail().GetTrackIDs()
}

func (m *MetroSystem) BestMetroSystemDetail() *spanning.SpanningSubset {
	return m.selector.Select()
}

func (m *MetroSystem) AddPassenger(name string) {
	m.passengers.AddPassenger(name)
}

func (m *MetroSystem) AddPassengers(names []string) {
	m.passengers.AddPassengers(names)
}

func (m *MetroSystem) SearchForPassengers(firstLetters string) []string {
	return m.passengers.SearchForPassengers(firstLetters)
}

func HireTicketCheckers(schedule []scheduling.Shift) int {
	return scheduling.HireTicketCheckers(schedule)
}

func (m *MetroSystem) GetGraph() *datastructure.CapacityGraph {
	return m.graph
}
