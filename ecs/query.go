package ecs

// IntersectEntities returns slot ids present in every set, iterating the
// smallest one. The result is a fresh slice so callers may mutate the sets
// while walking it.
func IntersectEntities(sets ...*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if len(s.denseEntities) < len(smallest.denseEntities) {
			smallest = s
		}
	}
	out := make([]int, 0, len(smallest.denseEntities))
	for _, id := range smallest.denseEntities {
		keep := true
		for _, s := range sets {
			if s != smallest && !s.Has(id) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, id)
		}
	}
	return out
}
