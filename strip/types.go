// Package strip defines common types, configuration options, and sentinel
// errors used by the triangle-strip engine.
//
// Design goals:
//   - Determinism: the same index list and Options always yield the same strips.
//   - Zero surprises: sensible defaults (tunneling over a stripify preprocess).
//   - Compactness: per-triangle state is bit-packed to keep the hot arena small.
package strip

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation / input shape)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrIDCount indicates the index list length is not divisible by 3.
	ErrIDCount = errors.New("strip: number of vertex ids must be divisible by 3")

	// ErrPreprocAlgorithm indicates Options.Preproc holds an unknown value.
	ErrPreprocAlgorithm = errors.New("strip: unknown preprocessing algorithm")

	// ErrNegativeOption indicates MaxCount, LoopLimit or DestCount is negative.
	ErrNegativeOption = errors.New("strip: tunnel limits must be non-negative")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Core value types
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// ID is an opaque vertex identifier. Equality is the only operation the
// engine ever applies to it.
type ID uint32

// Strip is a single triangle strip: a sequence of n ≥ 3 vertex ids encoding
// n−2 triangles, each formed by three consecutive ids. Alternating triangles
// have alternating winding unless corrected by a duplicated id.
type Strip struct {
	// IDs is the vertex sequence. It is freshly allocated per strip and
	// shares no storage with the input index list.
	IDs []ID
}

// PreprocAlgorithm selects how the initial strip set is laid down before
// tunneling. It is only consulted when Options.UseTunneling is true.
type PreprocAlgorithm int

const (
	// PreprocIsolated treats every triangle as its own one-triangle strip.
	PreprocIsolated PreprocAlgorithm = iota

	// PreprocPairs greedily pairs each triangle with one neighbour,
	// preferring triangles with few unstripped neighbours.
	PreprocPairs

	// PreprocStripify grows full greedy strips, identical to the
	// stripify-only mode.
	PreprocStripify
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

const (
	// NoLoopLimit disables the per-tunnel iteration guard.
	NoLoopLimit = 0

	// NoDestCount keeps tunneling until no improving tunnel is left.
	NoDestCount = 0

	// MaxTunnelDepth is the hard ceiling for Options.MaxCount.
	MaxTunnelDepth = 65535

	// DefaultMaxCount is the tunnel depth used by DefaultOptions. Deep
	// tunnels are rare on real meshes; 64 captures almost all of them.
	DefaultMaxCount = 64
)

// Options defines configurable parameters for Build.
// Zero value is not meaningful; use DefaultOptions() and override fields.
type Options struct {
	// UseTunneling selects stripify-only (false) or preprocess-then-tunnel
	// (true).
	UseTunneling bool

	// PreserveOrientation inserts at most one leading duplicate vertex per
	// strip so every emitted triangle keeps the input winding (up to the
	// parity rule of strips). It may cost a few extra degenerate triangles.
	PreserveOrientation bool

	// Preproc chooses the initial strip layout for tunneling.
	Preproc PreprocAlgorithm

	// MaxCount bounds the number of triangles forming one tunnel. It is
	// rectified before use: min(MaxCount, triangle count, MaxTunnelDepth),
	// then floored to the nearest even value ≥ 2.
	MaxCount int

	// Incremental, if true, runs the tunnel search at even depths
	// 2, 4, …, MaxCount instead of once at MaxCount.
	Incremental bool

	// LoopLimit caps the number of search iterations per tunnel.
	// NoLoopLimit evaluates all paths up to MaxCount.
	LoopLimit int

	// BacktrackAfterLoopLimit controls the loop-limit hit: false abandons
	// the tunnel instantly, true backtracks to the first tunnel member,
	// resets the counter and searches on.
	BacktrackAfterLoopLimit bool

	// DestCount stops tunneling once the strip count reaches it.
	// NoDestCount disables the early stop.
	DestCount int
}

// DefaultOptions returns an Options struct with:
//   - tunneling enabled over a stripify preprocess
//   - orientation not preserved
//   - tunnel depth DefaultMaxCount, single pass, no loop limit
//   - no destination count
func DefaultOptions() Options {
	return Options{
		UseTunneling:            true,
		PreserveOrientation:     false,
		Preproc:                 PreprocStripify,
		MaxCount:                DefaultMaxCount,
		Incremental:             false,
		LoopLimit:               NoLoopLimit,
		BacktrackAfterLoopLimit: false,
		DestCount:               NoDestCount,
	}
}

// validate checks internal consistency of Options without touching the
// index list. Complexity: O(1).
func (o Options) validate() error {
	if o.MaxCount < 0 || o.LoopLimit < 0 || o.DestCount < 0 {
		return ErrNegativeOption
	}

	if o.UseTunneling {
		switch o.Preproc {
		case PreprocIsolated, PreprocPairs, PreprocStripify:
		default:
			return ErrPreprocAlgorithm
		}
	}

	return nil
}
