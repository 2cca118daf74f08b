package stepscaling

// AnchorResult holds the indices of the intervals adjacent to each ladder's
// threshold. A nil index means that ladder does not exist.
type AnchorResult struct {
	Lower *int
	Upper *int
}

// LocateAnchors finds the decrease anchor (the highest interval below the
// neutral interval) and the increase anchor (the lowest interval above it).
// Without a neutral interval the whole sequence forms a single ladder whose
// direction follows the sign of the changes. A sequence that is entirely
// neutral has no anchors.
func LocateAnchors(intervals []NormalizedInterval) AnchorResult {
	n := len(intervals)
	for i, iv := range intervals {
		if !iv.Neutral {
			continue
		}
		var r AnchorResult
		if i > 0 {
			r.Lower = index(i - 1)
		}
		if i < n-1 {
			r.Upper = index(i + 1)
		}
		return r
	}

	if n == 0 {
		return AnchorResult{}
	}
	for _, iv := range intervals {
		if iv.Change > 0 {
			return AnchorResult{Upper: index(0)}
		}
	}
	// Only decreases, or absolute targets of zero.
	return AnchorResult{Lower: index(n - 1)}
}

func index(i int) *int {
	return &i
}
