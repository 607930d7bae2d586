// Package curve3 provides bounding and validity computations for collections
// of piecewise-cubic 3D curve primitives, as needed to build and traverse
// spatial acceleration structures for ray tracing.
//
// The package models hair- and fiber-like geometry: every primitive is a
// cubic curve defined by four consecutive control points, each carrying a
// position and a radius. Curves are interpreted in one of three bases
// ([BasisLinear], [BasisBezier], [BasisBSpline]) and rendered either as
// swept-radius tubes ([SubtypeRound]) or as flat ribbons ([SubtypeFlat]).
// The basis selects the evaluation of the four control points; the subtype
// selects the bounding strategy: accurate analytic bounds for tubes (see
// [Bezier.AccurateBounds]), cheap tessellated bounds for ribbons (see
// [Bezier.TessellatedBounds]).
//
// # Geometry and commits
//
// [Geometry] owns the topology, vertex, flag, and attribute buffers of one
// curve collection. Buffers are supplied as externally strided [Buffer]
// views and are materialized into densely packed native arrays by
// [Geometry.Commit]. All queries operate exclusively on the native arrays.
// Between commits the native arrays are immutable, so queries for disjoint
// primitive ranges may run fully in parallel without synchronization; a
// commit must not overlap in-flight queries, which is the owner's
// responsibility to enforce.
//
// # Motion blur
//
// A geometry carries one vertex buffer per animation timestep. Continuous
// times in [0, 1] map onto numTimeSteps-1 linear time segments (see
// [TimeSegment] and [TimeSegmentRange]). Bounds over a continuous time
// window are computed by sampling static bounds at every touched segment
// boundary and combining them into a conservative [LinearBox] (see
// [Geometry.LinearBounds]).
//
// # Degeneracies
//
// No query panics or returns an error on degenerate input. Primitives with
// out-of-range topology or non-finite or negative-radius samples are
// excluded from primitive-reference construction (see
// [Geometry.CreatePrimRefs]); degenerate chords fall back to deterministic
// frames (see [Geometry.AlignedSpace]). Callers of the guarded bounding
// functions must check the boolean success flag before using the result.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] with a *zap.Logger to
// receive diagnostics from the commit path.
package curve3
