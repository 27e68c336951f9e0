package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/mcmetro/pkg/util"
)

// DisjointSet is a union-find over dense vertex indices. parent[x] == INVALID_INDEX marks x as not added.
type DisjointSet struct {
	parent  []Index
	rank    []int
	numSets int
}

func NewDisjointSet(capacity int) *DisjointSet {
	return &DisjointSet{
		parent: make([]Index, 0, capacity),
		rank:   make([]int, 0, capacity),
	}
}

func (ds *DisjointSet) contains(x Index) bool {
	return int(x) < len(ds.parent) && ds.parent[x] != INVALID_INDEX
}

// Add registers x as a singleton set with rank 1. Adding x twice is a no-op.
func (ds *DisjointSet) Add(x Index) {
	if ds.contains(x) {
		return
	}
	for Index(len(ds.parent)) <= x {
		ds.parent = append(ds.parent, INVALID_INDEX)
		ds.rank = append(ds.rank, 0)
	}
	ds.parent[x] = x
	ds.rank[x] = 1
	ds.numSets++
}

// Find returns the root of the set containing x, compressing the path on the way back.
// x must have been added before.
func (ds *DisjointSet) Find(x Index) Index {
	util.AssertPanic(ds.contains(x), fmt.Sprintf("disjoint set: find on element %d that was never added", x))

	if ds.parent[x] == x {
		return x
	}
	root := ds.Find(ds.parent[x])
	ds.parent[x] = root
	return root
}

// Union merges the sets of a and b by rank. On equal ranks b's root goes under a's root.
func (ds *DisjointSet) Union(a, b Index) {
	rootA := ds.Find(a)
	rootB := ds.Find(b)
	if rootA == rootB {
		return
	}

	rankA, rankB := ds.rank[rootA], ds.rank[rootB]
	switch {
	case rankA > rankB:
		ds.parent[rootB] = rootA
	case rankB > rankA:
		ds.parent[rootA] = rootB
	default:
		ds.parent[rootB] = rootA
		ds.rank[rootA]++
	}
	ds.numSets--
}

func (ds *DisjointSet) Connected(a, b Index) bool {
	return ds.Find(a) == ds.Find(b)
}

func (ds *DisjointSet) NumberOfSets() int {
	return ds.numSets
}

func (ds *DisjointSet) GetRank(x Index) int {
	return ds.rank[ds.Find(x)]
}
