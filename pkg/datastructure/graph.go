package datastructure

import "math"

// Index is a dense arena index. Buildings are addressed by vertex Index, arcs by edge Index.
type Index uint32

const (
	INVALID_INDEX Index = math.MaxUint32
)
