// Regions model contiguous ranges of array indices so the edit driver
// (edit.go) can turn a union of array-index matches into a minimal set of
// splice operations applied back to front, ensuring that removing one run
// of indices never invalidates the position of another still pending.

package jsonpath

import "sort"

// Region represents a contiguous, half-open range of array indices
// [Start, End).
type Region struct {
	Start int
	End   int
}

// Len returns the number of indices in the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// Empty is true if the region covers no indices.
func (r Region) Empty() bool {
	return r.Len() == 0
}

// Regions is a set of Regions, ordered by Start once Sort has been called.
type Regions []Region

// Sort returns a copy of rs ordered by each region's Start index.
func (rs Regions) Sort() Regions {
	result := make(Regions, len(rs))
	copy(result, rs)
	sort.Sort(result)
	return result
}

// Len implements sort.Interface.
func (rs Regions) Len() int { return len(rs) }

// Swap implements sort.Interface.
func (rs Regions) Swap(i, j int) { rs[i], rs[j] = rs[j], rs[i] }

// Less implements sort.Interface.
func (rs Regions) Less(i, j int) bool { return rs[i].Start < rs[j].Start }

// NewRegionsFromIndicies takes a set of array indices and folds any
// contiguous run of them into a single Region, so a batch of adjacent
// deletions becomes one splice instead of one per index.
func NewRegionsFromIndicies(indicies []int) Regions {
	result := Regions{}
	nextRegion := Region{Start: 0, End: 0}
	sorted := make([]int, len(indicies))
	copy(sorted, indicies)
	sort.Ints(sorted)
	for _, index := range sorted {
		if nextRegion.Empty() {
			nextRegion.Start = index
			nextRegion.End = index + 1
			continue
		}
		if index < nextRegion.End {
			// A repeated index is already covered by the current region.
			continue
		}
		if nextRegion.End == index {
			nextRegion.End = index + 1
			continue
		}
		result = append(result, nextRegion)
		nextRegion = Region{Start: index, End: index + 1}
	}
	if !nextRegion.Empty() {
		result = append(result, nextRegion)
	}
	return result
}
