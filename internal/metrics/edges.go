package metrics

// mean accumulates a running average.
type mean struct {
	sum     float64
	samples int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.samples++
}

func (m *mean) value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

type MeanEdges struct{ mean }

func NewMeanEdges() *MeanEdges { return &MeanEdges{} }

func (e *MeanEdges) Name() string     { return "mean_edges" }
func (e *MeanEdges) Observe(s Sample) { e.add(float64(s.Edges)) }
func (e *MeanEdges) Value() float64   { return e.value() }
func (e *MeanEdges) Reset()           { e.mean = mean{} }

// EdgeDensity is the mean fraction of point pairs that are linked.
type EdgeDensity struct{ mean }

func NewEdgeDensity() *EdgeDensity { return &EdgeDensity{} }

func (e *EdgeDensity) Name() string { return "edge_density" }

func (e *EdgeDensity) Observe(s Sample) {
	pairs := s.Points * (s.Points - 1) / 2
	if pairs == 0 {
		e.add(0)
		return
	}
	e.add(float64(s.Edges) / float64(pairs))
}

func (e *EdgeDensity) Value() float64 { return e.value() }
func (e *EdgeDensity) Reset()         { e.mean = mean{} }
