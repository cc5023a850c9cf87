// Package codec serializes field snapshots to a compact little-endian wire
// layout and restores them.
//
// What
//
//	Two snapshot kinds share one 16-byte header: a dense phase-field grid
//	(mode 1) and a truncated coefficient set (mode 2). The header carries a
//	magic tag, a format version, the snapshot mode, the value-encoding tag,
//	the grid resolution and the data-gap fallback radius. The payload packs
//	cells as float32 pairs, or a float64 DC term followed by 16-byte
//	coefficient records.
//
// Why
//
//	The whole point of compacting a shape is shipping it somewhere — across
//	a socket, into a cache, onto disk. The layout is fixed-width and
//	versioned so independent implementations can interoperate, and its byte
//	counts match package metrics' footprint model exactly: what metrics
//	prices is what codec writes.
//
// Layout (all multi-byte fields little-endian)
//
//	header  16B  magic u32 | version u8 | mode u8 | encoding u8 | pad u8 |
//	             resolution u32 | default radius f32
//	mode 1       N²×{value f32, weight f32}, row-major by φ index
//	mode 2       dc f64, then K×{u u16, v u16, re f32, im f32, amp f32}
//
// The coefficient count is implied by the payload length. Values are stored
// at float32 precision; round-trips are exact to ~1e-7 relative, which is
// far below the compaction error they accompany. The weighted-log encoding
// round-trips at its default gain — the tag names the strategy, not its
// tuning.
//
// Errors
//
//   - ErrNilSnapshot            — nothing to encode.
//   - ErrBadMagic, ErrBadVersion, ErrBadMode — foreign or future input.
//   - ErrTruncated              — payload shorter (or longer) than the
//     header promises.
//   - phasefield.ErrUnknownEncoding — unrecognized encoding tag.
package codec
