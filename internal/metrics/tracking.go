package metrics

// TrackingError is the mean distance between the ornament rotation and its
// pointer target.
type TrackingError struct{ mean }

func NewTrackingError() *TrackingError { return &TrackingError{} }

func (t *TrackingError) Name() string     { return "tracking_error" }
func (t *TrackingError) Observe(s Sample) { t.add(s.RotationGap) }
func (t *TrackingError) Value() float64   { return t.value() }
func (t *TrackingError) Reset()           { t.mean = mean{} }

// Settled is the fraction of frames whose rotation gap was within threshold.
type Settled struct {
	threshold  float64
	violations int
	samples    int
}

func NewSettled(threshold float64) *Settled {
	return &Settled{threshold: threshold}
}

func (s *Settled) Name() string { return "settled" }

func (s *Settled) Observe(x Sample) {
	s.samples++
	if x.RotationGap > s.threshold {
		s.violations++
	}
}

func (s *Settled) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Settled) Reset() {
	s.violations = 0
	s.samples = 0
}

// FrameTime is the mean tick duration in milliseconds.
type FrameTime struct{ mean }

func NewFrameTime() *FrameTime { return &FrameTime{} }

func (f *FrameTime) Name() string     { return "frame_ms" }
func (f *FrameTime) Observe(s Sample) { f.add(s.FrameTime * 1000) }
func (f *FrameTime) Value() float64   { return f.value() }
func (f *FrameTime) Reset()           { f.mean = mean{} }
