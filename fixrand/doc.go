// Package fixrand provides deterministic pseudo-random streams for
// fixed-point simulations.
//
// 🚀 How it works:
//
//	A Stream is a counter-based SplitMix64 generator: eight bytes of
//	state, each draw advances the counter by the golden-ratio increment
//	and avalanche-mixes it. The entire future of a stream is a pure
//	function of its current state, which makes snapshots trivial (Clone)
//	and replay exact.
//
// ✨ Feature-derived streams:
//
//	FromFeature(worldSeed, featureKey, index) derives a stream as a pure
//	function of the triple — the key is hashed with xxhash and folded
//	into the seed with the same avalanche mixer. Two sites that agree on
//	the triple get identical streams with no global registry, no shared
//	counter, and no draw-order coupling between features.
//
// ⚠️ A Stream is NOT safe for concurrent use. Derive one stream per
// goroutine (or per feature) instead of sharing; sharing would also
// destroy replay determinism.
//
// All draws are integer-only and produce identical sequences on every
// platform.
package fixrand
