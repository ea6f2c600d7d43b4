package resample

// Source is the pull-based collaborator interface converters draw input
// from: Next returns the next sample and true, or (0, false) when no more
// input is currently available. A false result is a request for more
// input, not an end-of-stream signal — the same Source may be queried
// again later once more samples exist.
type Source interface {
	Next() (float64, bool)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func() (float64, bool)

// Next calls f.
func (f SourceFunc) Next() (float64, bool) { return f() }

// SliceSource adapts a fixed slice as a Source, yielding false once
// exhausted.
type SliceSource struct {
	data []float64
	pos  int
}

// NewSliceSource returns a Source that yields each element of data in
// order, then reports exhaustion.
func NewSliceSource(data []float64) *SliceSource {
	return &SliceSource{data: data}
}

// Next implements Source.
func (s *SliceSource) Next() (float64, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

// Remaining reports how many samples are left to yield.
func (s *SliceSource) Remaining() int {
	return len(s.data) - s.pos
}

// sampleProducer is implemented by both converter families.
type sampleProducer interface {
	NextSample(src Source) (float64, bool)
}

// Stream returns a Source-shaped adapter that repeatedly pulls from conv,
// reading from src on demand. The returned function yields false once
// conv stops producing for the given src state — callers resume by
// invoking it again after supplying src with more input.
func Stream(conv sampleProducer, src Source) func() (float64, bool) {
	return func() (float64, bool) {
		return conv.NextSample(src)
	}
}
