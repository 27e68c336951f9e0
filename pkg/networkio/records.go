package networkio

import (
	da "github.com/lintang-b-s/mcmetro/pkg/datastructure"
	"github.com/lintang-b-s/mcmetro/pkg/scheduling"
)

type buildingRecord struct {
	ID        string `yaml:"id" validate:"required"`
	Occupants int    `yaml:"occupants" validate:"gte=0"`
}

// trackRecord endpoints are optional: a track with a missing endpoint is dropped when the graph is built.
type trackRecord struct {
	ID       string `yaml:"id" validate:"required"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Capacity int    `yaml:"capacity" validate:"gte=0"`
	Cost     int    `yaml:"cost" validate:"gt=0"`
}

type shiftRecord struct {
	Start int `yaml:"start" validate:"gte=0"`
	End   int `yaml:"end" validate:"gtefield=Start"`
}

type networkRecord struct {
	Buildings  []buildingRecord `yaml:"buildings" validate:"dive"`
	Tracks     []trackRecord    `yaml:"tracks" validate:"dive"`
	Passengers []string         `yaml:"passengers"`
	Schedule   []shiftRecord    `yaml:"schedule" validate:"dive"`
}

// Network is a decoded and validated network file.
type Network struct {
	buildings  []*da.Building
	tracks     []*da.Track
	passengers []string
	schedule   []scheduling.Shift
}

func newNetwork(rec networkRecord) *Network {
	n := &Network{
		buildings:  make([]*da.Building, 0, len(rec.Buildings)),
		tracks:     make([]*da.Track, 0, len(rec.Tracks)),
		passengers: rec.Passengers,
		schedule:   make([]scheduling.Shift, 0, len(rec.Schedule)),
	}
	for _, b := range rec.Buildings {
		n.buildings = append(n.buildings, da.NewBuilding(da.BuildingID(b.ID), b.Occupants))
	}
	for _, t := range rec.Tracks {
		n.tracks = append(n.tracks, da.NewTrack(da.TrackID(t.ID), da.BuildingID(t.Start), da.BuildingID(t.End),
			t.Capacity, t.Cost))
	}
	for _, s := range rec.Schedule {
		n.schedule = append(n.schedule, scheduling.NewShift(s.Start, s.End))
	}
	return n
}

func (n *Network) Buildings() []*da.Building {
	return n.buildings
}

func (n *Network) Tracks() []*da.Track {
	return n.tracks
}

func (n *Network) Passengers() []string {
	return n.passengers
}

func (n *Network) Shifts() []scheduling.Shift {
	return n.schedule
}
