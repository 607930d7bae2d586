package curve3

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestTimeSegment(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		const steps = 20
		for i := 0; i < steps+1; i++ {
			u := float32(i) / float32(steps)
			index, fraction := TimeSegment(u, n)
			if index < 0 || index > n-1 {
				t.Fatalf("u=%g n=%d: index %d out of range", u, n, index)
			}
			got := float32(index) + fraction
			if math32.Abs(got-u*float32(n)) > 1e-5 {
				t.Errorf("u=%g n=%d: index+fraction = %g, want %g", u, n, got, u*float32(n))
			}
		}
	}

	// u = 1 stays inside the last segment
	index, fraction := TimeSegment(1, 4)
	if index != 3 || fraction != 1 {
		t.Errorf("TimeSegment(1, 4) = (%d, %g), want (3, 1)", index, fraction)
	}
}

func TestTimeSegmentRange(t *testing.T) {
	tests := []struct {
		w      TimeRange
		n      int
		lo, hi int
	}{
		{FullTimeRange, 1, 0, 0},
		{FullTimeRange, 4, 0, 3},
		{TimeRange{0.25, 0.75}, 4, 1, 2},
		{TimeRange{0.3, 0.4}, 2, 0, 0},
		{TimeRange{0.6, 0.9}, 2, 1, 1},
		// degenerate window still selects one segment
		{TimeRange{0.5, 0.5}, 2, 1, 1},
		{TimeRange{0, 0}, 4, 0, 0},
		{TimeRange{1, 1}, 4, 3, 3},
	}
	for _, tt := range tests {
		lo, hi := TimeSegmentRange(tt.w, tt.n)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("TimeSegmentRange(%v, %d) = (%d, %d), want (%d, %d)",
				tt.w, tt.n, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestTimeSegmentRangeCoversWindow(t *testing.T) {
	// sampling any u in the window lands in a segment of the range
	windows := []TimeRange{{0, 1}, {0.1, 0.2}, {0.33, 0.81}, {0.5, 0.5}}
	for _, n := range []int{1, 3, 7} {
		for _, w := range windows {
			lo, hi := TimeSegmentRange(w, n)
			const steps = 16
			for i := 0; i < steps+1; i++ {
				u := w.Lo + w.Size()*float32(i)/float32(steps)
				index, _ := TimeSegment(u, n)
				if index < lo || index > hi {
					t.Errorf("n=%d w=%v: u=%g falls in segment %d outside [%d, %d]",
						n, w, u, index, lo, hi)
				}
			}
		}
	}
}
