package datastructure

type BuildingID string

type TrackID string

type Building struct {
	id        BuildingID
	occupants int
}

func NewBuilding(id BuildingID, occupants int) *Building {
	return &Building{
		id:        id,
		occupants: occupants,
	}
}

func (b *Building) GetID() BuildingID {
	return b.id
}

func (b *Building) GetOccupants() int {
	return b.occupants
}

// Track is a directed, capacity-limited connection candidate from start to end.
type Track struct {
	id       TrackID
	start    BuildingID
	end      BuildingID
	capacity int
	cost     int
}

func NewTrack(id TrackID, start, end BuildingID, capacity, cost int) *Track {
	return &Track{
		id:       id,
		start:    start,
		end:      end,
		capacity: capacity,
		cost:     cost,
	}
}

func (t *Track) GetID() TrackID {
	return t.id
}

func (t *Track) GetStartBuildingID() BuildingID {
	return t.start
}

func (t *Track) GetEndBuildingID() BuildingID {
	return t.end
}

func (t *Track) GetCapacity() int {
	return t.capacity
}

func (t *Track) GetCost() int {
	return t.cost
}
