package curve3

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PrimRef is a build-time reference to one curve: its conservative bounds
// plus the identifiers needed to find it again after an acceleration
// structure has been built over the bounds.
type PrimRef struct {
	Bounds Box3
	GeomID uint32
	PrimID uint32
}

// Center2 returns twice the centroid of the reference's bounds. Builders
// partition on centroids and the doubled form avoids a multiply per
// primitive.
func (p PrimRef) Center2() Vec3 {
	return p.Bounds.Center2()
}

// PrimInfo aggregates a set of primitive references: how many there are,
// the union of their geometry bounds, and the bounds of their doubled
// centroids. Two PrimInfos over disjoint sets merge into the aggregate of
// the combined set, so shards can be reduced in any order.
type PrimInfo struct {
	Count      int
	GeomBounds Box3
	CentBounds Box3
}

// NewPrimInfo returns the aggregate of the empty set.
func NewPrimInfo() PrimInfo {
	return PrimInfo{GeomBounds: EmptyBox3(), CentBounds: EmptyBox3()}
}

// Add extends the aggregate with one reference.
func (pi *PrimInfo) Add(p PrimRef) {
	pi.Count++
	pi.GeomBounds = pi.GeomBounds.Union(p.Bounds)
	pi.CentBounds = pi.CentBounds.UnionPoint(p.Center2())
}

// Merge combines two aggregates.
func (pi PrimInfo) Merge(other PrimInfo) PrimInfo {
	return PrimInfo{
		Count:      pi.Count + other.Count,
		GeomBounds: pi.GeomBounds.Union(other.GeomBounds),
		CentBounds: pi.CentBounds.Union(other.CentBounds),
	}
}

// PrimRefMB is a build-time reference to one curve under motion: linear
// bounds over the time window it was created for, plus identifiers and
// the number of time segments of its geometry.
type PrimRefMB struct {
	Bounds          LinearBox
	GeomID          uint32
	PrimID          uint32
	NumTimeSegments int
}

// Center2 returns twice the centroid of the reference's interpolated
// midpoint bounds.
func (p PrimRefMB) Center2() Vec3 {
	return p.Bounds.Interpolate(0.5).Center2()
}

// PrimInfoMB aggregates motion-blurred primitive references. MaxTimeSegments
// records the finest temporal resolution seen, which builders use to decide
// how far a time range can be split.
type PrimInfoMB struct {
	Count           int
	GeomBounds      LinearBox
	CentBounds      Box3
	MaxTimeSegments int
}

// NewPrimInfoMB returns the aggregate of the empty set.
func NewPrimInfoMB() PrimInfoMB {
	return PrimInfoMB{GeomBounds: EmptyLinearBox(), CentBounds: EmptyBox3()}
}

// Add extends the aggregate with one reference.
func (pi *PrimInfoMB) Add(p PrimRefMB) {
	pi.Count++
	pi.GeomBounds = pi.GeomBounds.Union(p.Bounds)
	pi.CentBounds = pi.CentBounds.UnionPoint(p.Center2())
	pi.MaxTimeSegments = max(pi.MaxTimeSegments, p.NumTimeSegments)
}

// Merge combines two aggregates.
func (pi PrimInfoMB) Merge(other PrimInfoMB) PrimInfoMB {
	return PrimInfoMB{
		Count:           pi.Count + other.Count,
		GeomBounds:      pi.GeomBounds.Union(other.GeomBounds),
		CentBounds:      pi.CentBounds.Union(other.CentBounds),
		MaxTimeSegments: max(pi.MaxTimeSegments, other.MaxTimeSegments),
	}
}

// CreatePrimRefs builds primitive references for curves lo through hi-1,
// writing them densely into out starting at index k. Curves that fail the
// build-time validity check are skipped, so the output can hold fewer
// references than the range has curves. It returns the aggregate over the
// written references and the index one past the last write.
func (g *Geometry) CreatePrimRefs(lo, hi int, out []PrimRef, k int) (PrimInfo, int) {
	pi := NewPrimInfo()
	for i := lo; i < hi; i++ {
		bounds, ok := g.BuildBounds(i)
		if !ok {
			continue
		}
		ref := PrimRef{Bounds: bounds, GeomID: g.GeomID(), PrimID: uint32(i)}
		out[k] = ref
		k++
		pi.Add(ref)
	}
	return pi, k
}

// CreatePrimRefsMB builds motion-blurred primitive references for curves
// lo through hi-1 over the time window w, writing them densely into out
// starting at index k. Curves without valid data at every timestep touched
// by the window are skipped. It returns the aggregate over the written
// references and the index one past the last write.
func (g *Geometry) CreatePrimRefsMB(lo, hi int, w TimeRange, out []PrimRefMB, k int) (PrimInfoMB, int) {
	pi := NewPrimInfoMB()
	n := g.NumTimeSegments()
	for i := lo; i < hi; i++ {
		bounds, ok := g.LinearBoundsSafe(i, w)
		if !ok {
			continue
		}
		ref := PrimRefMB{Bounds: bounds, GeomID: g.GeomID(), PrimID: uint32(i), NumTimeSegments: n}
		out[k] = ref
		k++
		pi.Add(ref)
	}
	return pi, k
}

// CreatePrimRefsParallel builds primitive references for all curves across
// the given number of shards, compacting the per-shard results into out in
// curve order. A shard count below one uses GOMAXPROCS. out must have room
// for one reference per curve. It returns the merged aggregate and the
// total number of references written.
func (g *Geometry) CreatePrimRefsParallel(ctx context.Context, shards int, out []PrimRef) (PrimInfo, int, error) {
	numCurves := g.NumCurves()
	if len(out) < numCurves {
		return NewPrimInfo(), 0, fmt.Errorf("curve3: output holds %d references, need %d", len(out), numCurves)
	}
	if shards < 1 {
		shards = runtime.GOMAXPROCS(0)
	}
	if shards > numCurves {
		shards = max(numCurves, 1)
	}

	infos := make([]PrimInfo, shards)
	bufs := make([][]PrimRef, shards)
	grp, _ := errgroup.WithContext(ctx)
	for s := 0; s < shards; s++ {
		s := s
		grp.Go(func() error {
			lo := s * numCurves / shards
			hi := (s + 1) * numCurves / shards
			buf := make([]PrimRef, hi-lo)
			pi, n := g.CreatePrimRefs(lo, hi, buf, 0)
			infos[s] = pi
			bufs[s] = buf[:n]
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return NewPrimInfo(), 0, err
	}

	pi := NewPrimInfo()
	k := 0
	for s := 0; s < shards; s++ {
		k += copy(out[k:], bufs[s])
		pi = pi.Merge(infos[s])
	}
	return pi, k, nil
}
