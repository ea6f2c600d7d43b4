// Package resample provides single-channel, pull-based sample-rate
// conversion.
//
// Two converter families are offered:
//
//   - [LinearManager] / [LinearConverter]: cheap two-tap linear
//     interpolation, suitable for non-audio-critical paths or ratios that
//     don't reduce to a small rational.
//   - [SincManager] / [SincConverter]: a windowed-sinc polyphase FIR
//     converter with configurable stop-band attenuation, transition width,
//     filter order, and sub-sample quantization.
//
// Both converters are streaming state machines: [SincConverter.NextSample]
// and [LinearConverter.NextSample] pull from a caller-supplied [Source] and
// return either the next output sample or a request for more input. Neither
// blocks, allocates in steady state, or consumes input it doesn't use.
//
// A [SincManager] or [LinearManager] is an immutable plan: build one per
// (ratio, quality) pair and mint a fresh converter per independent stream
// with [SincManager.Converter] / [LinearManager.Converter]. Converters
// derived from the same manager share the manager's filter table by slice
// reference and may run concurrently on separate goroutines; a single
// converter instance must not be used from more than one goroutine at a
// time.
//
// Construction modes, cheapest first:
//
//   - [RatioFromFloat] / [RatioFromIntegers]: build a [Ratio]
//   - [NewLinear]: linear converter manager
//   - [WithRaw], [New], [WithOrder], [WithSampleRate]: sinc converter
//     manager, four validated parameter-resolution paths
//   - [NewBuilder]: fluent accumulator dispatching to one of the four
//     sinc construction modes above
package resample
