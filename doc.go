// Package orbfield represents 3D shapes as compact radial fields instead
// of explicit point clouds or triangle meshes.
//
// What is orbfield?
//
//	A pure in-memory library built around two pipelines:
//		• Closed-form primitives: evaluate an Lp/Minkowski surface directly
//		  from its generative formula (xi, scan).
//		• Scan → phase field → reconstruction: bin direction-tagged radius
//		  samples into an N×N grid over the unit sphere, optionally compress
//		  it to its top-K spectral coefficients, and query the result at any
//		  direction (phasefield, spectral, reconstruct).
//
// Why choose orbfield?
//
//   - Deterministic — every source is seeded, every rebuild is bit-identical
//   - Total — construction and reconstruction always return a finite radius;
//     degenerate inputs fall back to documented defaults instead of panicking
//   - Compact — a thousand raw samples collapse to a few hundred bytes of
//     coefficients with a measurable stability score (metrics, codec)
//
// Subpackages, leaf to root:
//
//	xi/          — Lp stability kernel Ξ and the surface membership test
//	scan/        — directions, samples, seeded deterministic scan sources
//	phasefield/  — grid binning, encoding strategies, hole-filling
//	spectral/    — mean-removed 2D frequency analysis, top-K truncation
//	reconstruct/ — spatial and spectral field evaluators
//	metrics/     — storage footprint, reconstruction error, stability score
//	codec/       — fixed-layout binary snapshots of fields and spectra
//
// Quick sketch:
//
//	samples, _ := scan.Collect(scan.LpSurface{R: 2, Exponent: 2}, 1000, 42)
//	field, _ := phasefield.Build(samples, phasefield.DefaultBuildOptions())
//	set, _ := spectral.Compress(field, spectral.DefaultOptions())
//	rec, _ := reconstruct.NewSpectral(set)
//	r := rec.Radius(math.Pi/4, math.Pi/2) // ≈ 2
//
// See examples/ for complete narrated programs.
package orbfield
