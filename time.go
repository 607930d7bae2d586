package curve3

import "github.com/chewxy/math32"

// TimeRange is a continuous window of animation time. The full animation
// spans [0, 1].
type TimeRange struct {
	Lo float32
	Hi float32
}

// FullTimeRange covers the whole animation.
var FullTimeRange = TimeRange{0, 1}

// Size returns the width of the window.
func (r TimeRange) Size() float32 {
	return r.Hi - r.Lo
}

// TimeSegment maps a continuous time u ∈ [0, 1] over n linear time
// segments to the segment index it falls into and the fractional position
// within that segment.
//
// The index is in [0, n-1] and the fraction in [0, 1], such that
// index + fraction reconstructs u·n; the index is clamped so that index+1
// never exceeds n. In particular u = 1 maps to (n-1, 1), not (n, 0).
func TimeSegment(u float32, n int) (index int, fraction float32) {
	f := u * float32(n)
	index = int(math32.Floor(f))
	if index < 0 {
		index = 0
	}
	if index > n-1 {
		index = n - 1
	}
	return index, f - float32(index)
}

// TimeSegmentRange maps a continuous time window over n linear time
// segments to the inclusive range [lo, hi] of segment indices whose
// support overlaps the window. It decides how many discrete bounds samples
// are needed to conservatively cover an arbitrary sub-window of the
// animation.
//
// The range is never empty: a degenerate window of zero width still
// returns a single segment; returning an empty range would undercount the
// samples required. The timesteps touched by the window are lo through
// hi+1, inclusive.
func TimeSegmentRange(w TimeRange, n int) (lo, hi int) {
	lo = int(math32.Floor(w.Lo * float32(n)))
	if lo < 0 {
		lo = 0
	}
	if lo > n-1 {
		lo = n - 1
	}
	hi = int(math32.Ceil(w.Hi*float32(n))) - 1
	if hi < lo {
		hi = lo
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
