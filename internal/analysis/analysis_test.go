package analysis

import (
	"math"
	"strings"
	"testing"
)

func sineSamples(rate, duration float64) ([]float64, []float64) {
	n := int(rate * duration)
	times := make([]float64, n)
	vals := make([]float64, n)
	for i := range vals {
		times[i] = float64(i) / rate
		vals[i] = 2 + 0.12*math.Sin(times[i])
	}
	return times, vals
}

func TestDominantFrequency(t *testing.T) {
	const rate = 60.0
	_, vals := sineSamples(rate, 60)
	got := DominantFrequency(vals, rate)
	want := 1 / (2 * math.Pi)
	if res := rate / float64(len(vals)); math.Abs(got-want) > res {
		t.Errorf("frequency = %.4f Hz, want %.4f ± %.4f", got, want, res)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if DominantFrequency(nil, 60) != 0 {
		t.Error("empty input should give 0")
	}
	if DominantFrequency([]float64{1, 2, 3}, 60) != 0 {
		t.Error("too short for a non-DC bin")
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	if len(ps) != 50 {
		t.Errorf("len = %d, want 50", len(ps))
	}
}

func TestCrossingsPeriod(t *testing.T) {
	times, vals := sineSamples(60, 20)
	c := Crossings(times, vals, 2)
	if len(c) != 3 {
		t.Fatalf("crossings = %v, want 3", c)
	}
	if p := MeanPeriod(c); math.Abs(p-2*math.Pi) > 1e-3 {
		t.Errorf("period = %.5f, want 2π", p)
	}
	if MeanPeriod(c[:1]) != 0 {
		t.Error("one crossing has no period")
	}
}

func TestPhasePortraitToASCII(t *testing.T) {
	var p PhasePortrait2D
	for i := 0; i < 50; i++ {
		a := float64(i) / 50 * 2 * math.Pi
		p.Add(math.Cos(a), math.Sin(a))
	}
	out := PhasePortraitToASCII(&p, 40, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("rows = %d, want 20", len(lines))
	}
	if !strings.ContainsRune(out, '•') || !strings.ContainsRune(out, '┼') {
		t.Error("expected points and an axis crossing")
	}
	if PhasePortraitToASCII(nil, 10, 10) != "" {
		t.Error("nil portrait should render empty")
	}
}
