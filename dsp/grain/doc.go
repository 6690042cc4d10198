// Package grain adds film-grain style noise to planar video frames.
//
// A [Filter] is built once per stream with [New]. Construction draws a pool of
// random noise per active plane (uniform or normal, scaled by strength and
// clamped to ±limit) into 32-byte aligned, stride-padded buffers. Processing
// a frame then only adds the pooled noise onto the samples with saturating
// arithmetic, clamped to the plane's legal range ([ResolveRanges]).
//
// In dynamic mode the noise pool is four times as tall as the plane and every
// frame index picks a start row from a precomputed table, so consecutive
// frames show different grain without regenerating anything. The table
// repeats every ten seconds of frames.
//
// After [New] returns, a Filter is immutable: [Filter.ProcessFrame] and
// [Filter.Apply] may be called from many goroutines at once, each writing only
// its own frame.
//
// Blending runs on the best row kernel for the CPU, chosen once at first use
// ([KernelName]). Build with the purego tag to force the scalar kernels.
package grain
