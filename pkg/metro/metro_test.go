package metro

import (
	"testing"

	da "github.com/lintang-b-s/mcmetro/pkg/datastructure"
	"github.com/lintang-b-s/mcmetro/pkg/scheduling"
	"github.com/lintang-b-s/mcmetro/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSystem(t *testing.T, tracks []*da.Track, buildings []*da.Building, cfg util.EngineConfig) *MetroSystem {
	t.Helper()
	m, err := NewMetroSystem(tracks, buildings, cfg, zap.NewNop())
	require.NoError(t, err)
	return m
}

func sampleNetwork() ([]*da.Track, []*da.Building) {
	buildings := []*da.Building{
		da.NewBuilding("A", 10),
		da.NewBuilding("B", 5),
		da.NewBuilding("C", 8),
		da.NewBuilding("D", 8),
	}
	tracks := []*da.Track{
		da.NewTrack("ab", "A", "B", 20, 1),
		da.NewTrack("bc", "B", "C", 20, 1),
		da.NewTrack("ac", "A", "C", 3, 1),
	}
	return tracks, buildings
}

func TestMaxPassengers(t *testing.T) {
	tracks, buildings := sampleNetwork()
	m := newSystem(t, tracks, buildings, util.DefaultEngineConfig())

	testCases := []struct {
		name       string
		start, end da.BuildingID
		want       int
	}{
		{name: "through B and direct", start: "A", end: "C", want: 8},
		{name: "same building", start: "A", end: "A", want: 0},
		{name: "unknown start", start: "Z", end: "C", want: 0},
		{name: "unknown end", start: "A", end: "Z", want: 0},
		{name: "isolated building", start: "A", end: "D", want: 0},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MaxPassengers(tt.start, tt.end))
			// answered twice to check the capacities were restored
			assert.Equal(t, tt.want, m.MaxPassengers(tt.start, tt.end))
		})
	}
}

func TestMaxPassengersParallelTracks(t *testing.T) {
	buildings := []*da.Building{da.NewBuilding("A", 100), da.NewBuilding("B", 100)}
	tracks := []*da.Track{
		da.NewTrack("cheap", "A", "B", 30, 1),
		da.NewTrack("expensive", "A", "B", 10, 7),
	}

	testCases := []struct {
		policy string
		want   int
	}{
		{policy: util.PARALLEL_TRACKS_OVERWRITE, want: 10},
		{policy: util.PARALLEL_TRACKS_SUM, want: 40},
		{policy: util.PARALLEL_TRACKS_MAX, want: 30},
	}
	for _, tt := range testCases {
		t.Run(tt.policy, func(t *testing.T) {
			cfg := util.DefaultEngineConfig()
			cfg.ParallelTracks = tt.policy
			m := newSystem(t, tracks, buildings, cfg)

			assert.Equal(t, tt.want, m.MaxPassengers("A", "B"))
			// the selector looks at tracks, not at the merged arc
			assert.Equal(t, []da.TrackID{"cheap"}, m.BestMetroSystem())
		})
	}
}

func TestMaxPassengersDetail(t *testing.T) {
	tracks, buildings := sampleNetwork()
	m := newSystem(t, tracks, buildings, util.DefaultEngineConfig())

	res := m.MaxPassengersDetail("A", "C")
	assert.Equal(t, 8, res.GetMaxFlow())
	assert.Equal(t, 2, res.GetAugmentingPaths())
	require.NotNil(t, res.GetMinCut())
	assert.Equal(t, 8, res.GetMinCut().CutCapacity(m.GetGraph()))

	assert.Nil(t, m.MaxPassengersDetail("A", "nowhere").GetMinCut())
}

func TestBestMetroSystem(t *testing.T) {
	tracks, buildings := sampleNetwork()
	m := newSystem(t, tracks, buildings, util.DefaultEngineConfig())

	got := m.BestMetroSystem()
	assert.Equal(t, []da.TrackID{"ab", "bc"}, got)
	assert.Less(t, len(got), len(buildings)-1)

	detail := m.BestMetroSystemDetail()
	assert.Equal(t, 2, detail.GetComponents())
}

func TestNilInput(t *testing.T) {
	m := newSystem(t, nil, nil, util.DefaultEngineConfig())

	assert.Equal(t, 0, m.MaxPassengers("A", "B"))
	assert.NotNil(t, m.BestMetroSystem())
	assert.Empty(t, m.BestMetroSystem())
}

func TestNewMetroSystemInvalidConfig(t *testing.T) {
	tracks, buildings := sampleNetwork()

	testCases := []struct {
		name string
		cfg  util.EngineConfig
	}{
		{name: "zero config", cfg: util.EngineConfig{}},
		{name: "unknown policy", cfg: util.EngineConfig{ParallelTracks: "avg", FlowMode: util.FLOW_MODE_EDMONDS_KARP}},
		{name: "unknown flow mode", cfg: util.EngineConfig{ParallelTracks: util.PARALLEL_TRACKS_SUM, FlowMode: "dinic"}},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMetroSystem(tracks, buildings, tt.cfg, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, util.ErrBadParamInput)
		})
	}
}

func TestPassengersAndCheckers(t *testing.T) {
	m := newSystem(t, nil, nil, util.DefaultEngineConfig())
	m.AddPassenger("bob")
	m.AddPassengers([]string{"BOBBY", "alice"})

	assert.Equal(t, []string{"Bob", "Bobby"}, m.SearchForPassengers("b"))
	assert.Equal(t, 2, HireTicketCheckers([]scheduling.Shift{
		scheduling.NewShift(0, 4),
		scheduling.NewShift(2, 3),
		scheduling.NewShift(3, 8),
	}))
}
