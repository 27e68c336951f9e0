package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuildings() []*Building {
	return []*Building{
		NewBuilding("A", 10),
		NewBuilding("B", 5),
		NewBuilding("C", 8),
	}
}

func TestNewCapacityGraphCapacityRule(t *testing.T) {
	tracks := []*Track{
		NewTrack("t1", "A", "B", 20, 1),
		NewTrack("t2", "B", "C", 3, 1),
		NewTrack("t3", "A", "C", 9, 2),
	}
	g := NewCapacityGraph(tracks, sampleBuildings(), OVERWRITE)

	require.Equal(t, 3, g.NumberOfVertices())
	require.Equal(t, 3, g.NumberOfTracks())
	assert.Equal(t, 6, g.NumberOfEdges(), "every arc has a reverse arc")

	testCases := []struct {
		name     string
		from, to BuildingID
		want     int
		wantOk   bool
	}{
		{name: "capped by end occupants", from: "A", to: "B", want: 5, wantOk: true},
		{name: "capped by track capacity", from: "B", to: "C", want: 3, wantOk: true},
		{name: "capped by both occupants", from: "A", to: "C", want: 8, wantOk: true},
		{name: "reverse direction not implied", from: "B", to: "A", wantOk: false},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			u, _ := g.GetBuildingIndex(tt.from)
			v, _ := g.GetBuildingIndex(tt.to)
			got, ok := g.GetPairCapacity(u, v)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, tr := range tracks {
		u, v := tr.GetStartBuildingID(), tr.GetEndBuildingID()
		ui, _ := g.GetBuildingIndex(u)
		vi, _ := g.GetBuildingIndex(v)
		c, _ := g.GetPairCapacity(ui, vi)
		assert.Equal(t, c, g.TrackCapacity(tr))
	}
}

func TestNewCapacityGraphDropsInvalidInput(t *testing.T) {
	buildings := []*Building{
		NewBuilding("A", 10),
		nil,
		NewBuilding("B", 4),
		NewBuilding("A", 1), // duplicate, first one wins
	}
	tracks := []*Track{
		NewTrack("ok", "A", "B", 7, 1),
		nil,
		NewTrack("no-start", "", "B", 7, 1),
		NewTrack("unknown-end", "A", "Z", 7, 1),
		NewTrack("negative-capacity", "B", "A", -1, 1),
		NewTrack("zero-cost", "B", "A", 3, 0),
	}
	g := NewCapacityGraph(tracks, buildings, OVERWRITE)

	assert.Equal(t, 2, g.NumberOfVertices())
	require.Equal(t, 1, g.NumberOfTracks())
	assert.Equal(t, TrackID("ok"), g.GetTracks()[0].GetID())

	a, ok := g.GetBuildingIndex("A")
	require.True(t, ok)
	assert.Equal(t, 10, g.GetBuilding(a).GetOccupants())

	b, _ := g.GetBuildingIndex("B")
	c, ok := g.GetPairCapacity(a, b)
	assert.True(t, ok)
	assert.Equal(t, 4, c)

	assert.Equal(t, 0, g.TrackCapacity(tracks[3]))
}

func TestNewCapacityGraphNilInput(t *testing.T) {
	g := NewCapacityGraph(nil, nil, OVERWRITE)

	assert.Equal(t, 0, g.NumberOfVertices())
	assert.Equal(t, 0, g.NumberOfEdges())
	assert.Empty(t, g.GetTracks())
	assert.Empty(t, g.NewResidual())
}

func TestNewCapacityGraphSelfLoop(t *testing.T) {
	g := NewCapacityGraph([]*Track{NewTrack("loop", "A", "A", 5, 1)}, sampleBuildings(), OVERWRITE)

	assert.Equal(t, 1, g.NumberOfTracks(), "self loop still counts as a track")
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestParallelTrackPolicy(t *testing.T) {
	buildings := []*Building{NewBuilding("A", 100), NewBuilding("B", 100)}
	tracks := []*Track{
		NewTrack("first", "A", "B", 30, 1),
		NewTrack("second", "A", "B", 10, 5),
	}

	testCases := []struct {
		name   string
		policy ParallelTrackPolicy
		want   int
	}{
		{name: "overwrite keeps the last track", policy: OVERWRITE, want: 10},
		{name: "sum", policy: SUM, want: 40},
		{name: "max", policy: MAX, want: 30},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCapacityGraph(tracks, buildings, tt.policy)
			assert.Equal(t, 2, g.NumberOfTracks())
			assert.Equal(t, 2, g.NumberOfEdges(), "parallel tracks share one arc")

			got, ok := g.GetPairCapacity(0, 1)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParallelTrackPolicy(t *testing.T) {
	testCases := []struct {
		in      string
		want    ParallelTrackPolicy
		wantErr bool
	}{
		{in: "", want: OVERWRITE},
		{in: "overwrite", want: OVERWRITE},
		{in: "sum", want: SUM},
		{in: "max", want: MAX},
		{in: "average", wantErr: true},
	}
	for _, tt := range testCases {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseParallelTrackPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestResetCapacities(t *testing.T) {
	tracks := []*Track{
		NewTrack("t1", "A", "B", 20, 1),
		NewTrack("t2", "B", "C", 20, 1),
	}
	g := NewCapacityGraph(tracks, sampleBuildings(), OVERWRITE)

	residual := g.NewResidual()
	baseline := g.NewResidual()
	for i := range residual {
		residual[i] = -3
	}
	g.ResetCapacities(residual)
	assert.Equal(t, baseline, residual)

	for e := Index(0); e < Index(g.NumberOfEdges()); e++ {
		if g.GetEdge(e).IsReversed() {
			assert.Equal(t, 0, residual[e])
		}
		rev := g.GetEdge(e).GetReversedEdge()
		assert.Equal(t, e, g.GetEdge(rev).GetReversedEdge())
	}

	assert.Panics(t, func() { g.ResetCapacities(make([]int, 1)) })
}
