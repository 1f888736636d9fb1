package curve

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-geom/internal/testutil"
)

func TestSmoothStep(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want float64
	}{
		{name: "belowZero", r: -0.5, want: 0},
		{name: "zero", r: 0, want: 0},
		{name: "half", r: 0.5, want: 0.5},
		{name: "one", r: 1, want: 1},
		{name: "aboveOne", r: 1.5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmoothStep(tt.r); got != tt.want {
				t.Fatalf("SmoothStep(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}

	// Monotone non-decreasing over [0, 1].
	prev := 0.0
	for i := 0; i <= 100; i++ {
		v := SmoothStep(float64(i) / 100)
		if v < prev {
			t.Fatalf("SmoothStep not monotone at %v", float64(i)/100)
		}
		prev = v
	}
}

func TestSmoothStepRange(t *testing.T) {
	if got := SmoothStepRange(2.0, 2, 4, 10, 20); got != 10 {
		t.Fatalf("at lower edge = %v, want 10", got)
	}
	if got := SmoothStepRange(4.0, 2, 4, 10, 20); got != 20 {
		t.Fatalf("at upper edge = %v, want 20", got)
	}
	if got := SmoothStepRange(3.0, 2, 4, 10, 20); got != 15 {
		t.Fatalf("at midpoint = %v, want 15", got)
	}
}

func TestLinearStep(t *testing.T) {
	if got := LinearStep(1.0, 3, 0.5); got != 0 {
		t.Fatalf("below = %v, want 0", got)
	}
	if got := LinearStep(1.0, 3, 2); got != 0.5 {
		t.Fatalf("middle = %v, want 0.5", got)
	}
	if got := LinearStep(1.0, 3, 5); got != 1 {
		t.Fatalf("above = %v, want 1", got)
	}
}

func TestRamp(t *testing.T) {
	if got := Ramp(-1.0); got != -1 {
		t.Fatalf("Ramp(-1) = %v, want -1", got)
	}
	if got := Ramp(1.0); got != 1 {
		t.Fatalf("Ramp(1) = %v, want 1", got)
	}
	if got := Ramp(0.0); got != 0 {
		t.Fatalf("Ramp(0) = %v, want 0", got)
	}
}

func TestImpulse(t *testing.T) {
	// Peak value 1 at x = 1/k.
	testutil.RequireNearlyEqual(t, Impulse(2.0, 0.5), 1, 1e-15)
	testutil.RequireNearlyEqual(t, Impulse(8.0, 0.125), 1, 1e-15)

	if got := Impulse(2.0, 0.0); got != 0 {
		t.Fatalf("Impulse at 0 = %v, want 0", got)
	}
	// Decays after the peak.
	if Impulse(2.0, 2.0) >= Impulse(2.0, 1.0) {
		t.Fatal("Impulse did not decay past the peak")
	}
}

func TestCubicPulse(t *testing.T) {
	if got := CubicPulse(0.0, 1, 0); got != 1 {
		t.Fatalf("at center = %v, want 1", got)
	}
	if got := CubicPulse(0.0, 1, 2); got != 0 {
		t.Fatalf("outside support = %v, want 0", got)
	}
	if got := CubicPulse(0.0, 1, -2); got != 0 {
		t.Fatalf("outside support (left) = %v, want 0", got)
	}
	if got := CubicPulse(0.0, 1, 0.5); got != 0.5 {
		t.Fatalf("half width = %v, want 0.5", got)
	}
	// Symmetric about the center.
	if CubicPulse(3.0, 2, 3.7) != CubicPulse(3.0, 2, 2.3) {
		t.Fatal("CubicPulse is not symmetric")
	}
}

func TestExpStep(t *testing.T) {
	if got := ExpStep(0.0, 4, 2); got != 1 {
		t.Fatalf("ExpStep(0) = %v, want 1", got)
	}
	testutil.RequireNearlyEqual(t, ExpStep(1.0, 4, 2), math.Exp(-4), 1e-15)
	// Strictly decreasing for positive x.
	if ExpStep(0.8, 4.0, 2.0) >= ExpStep(0.4, 4.0, 2.0) {
		t.Fatal("ExpStep not decreasing")
	}
}

func TestParabola(t *testing.T) {
	if got := Parabola(0.5, 1.0); got != 1 {
		t.Fatalf("Parabola(0.5) = %v, want 1", got)
	}
	if got := Parabola(0.0, 1.0); got != 0 {
		t.Fatalf("Parabola(0) = %v, want 0", got)
	}
	if got := Parabola(1.0, 1.0); got != 0 {
		t.Fatalf("Parabola(1) = %v, want 0", got)
	}
	// k sharpens but keeps the unit peak.
	testutil.RequireNearlyEqual(t, Parabola(0.5, 4.0), 1, 1e-15)
}

func TestPCurve(t *testing.T) {
	// Maximum of 1 at x = a/(a+b).
	a, b := 3.0, 1.0
	testutil.RequireNearlyEqual(t, PCurve(a/(a+b), a, b), 1, 1e-12)
	if got := PCurve(0.0, a, b); got != 0 {
		t.Fatalf("PCurve(0) = %v, want 0", got)
	}
	if got := PCurve(1.0, a, b); got != 0 {
		t.Fatalf("PCurve(1) = %v, want 0", got)
	}
}

func TestSmoothStartStop(t *testing.T) {
	starts := []func(float64) float64{
		SmoothStart2[float64], SmoothStart3[float64],
		SmoothStart4[float64], SmoothStart5[float64],
	}
	stops := []func(float64) float64{
		SmoothStop2[float64], SmoothStop3[float64],
		SmoothStop4[float64], SmoothStop5[float64],
	}

	for i, f := range starts {
		if f(0) != 0 || f(1) != 1 {
			t.Fatalf("SmoothStart%d endpoints: f(0)=%v f(1)=%v", i+2, f(0), f(1))
		}
		// Ease-in stays below the diagonal.
		if f(0.5) >= 0.5 {
			t.Fatalf("SmoothStart%d(0.5) = %v, want < 0.5", i+2, f(0.5))
		}
	}
	for i, f := range stops {
		if f(0) != 0 || f(1) != 1 {
			t.Fatalf("SmoothStop%d endpoints: f(0)=%v f(1)=%v", i+2, f(0), f(1))
		}
		// Ease-out stays above the diagonal.
		if f(0.5) <= 0.5 {
			t.Fatalf("SmoothStop%d(0.5) = %v, want > 0.5", i+2, f(0.5))
		}
	}

	// Start and stop of the same degree are reflections of each other.
	for i := range starts {
		got := stops[i](0.25)
		want := 1 - starts[i](0.75)
		testutil.RequireNearlyEqual(t, got, want, 1e-15)
	}
}

func TestAlmostIdentity(t *testing.T) {
	m, n := 0.5, 0.1
	// Identity above the threshold.
	if got := AlmostIdentity(0.75, m, n); got != 0.75 {
		t.Fatalf("above m = %v, want 0.75", got)
	}
	// Continuous at the threshold.
	testutil.RequireNearlyEqual(t, AlmostIdentity(m, m, n), m, 1e-15)
	// Floor value at zero.
	if got := AlmostIdentity(0.0, m, n); got != n {
		t.Fatalf("at 0 = %v, want %v", got, n)
	}
	// Never drops below n on [0, m].
	for i := 0; i <= 50; i++ {
		x := m * float64(i) / 50
		if AlmostIdentity(x, m, n) < n {
			t.Fatalf("dipped below n at x = %v", x)
		}
	}
}

func TestExpSustainedImpulse(t *testing.T) {
	f, k := 0.25, 8.0
	// Quadratic rise below f.
	testutil.RequireNearlyEqual(t, ExpSustainedImpulse(0.125, f, k), 0.25, 1e-15)
	// Hits 1 exactly at x = f.
	testutil.RequireNearlyEqual(t, ExpSustainedImpulse(f, f, k), 1, 1e-15)
	if got := ExpSustainedImpulse(0.0, f, k); got != 0 {
		t.Fatalf("at 0 = %v, want 0", got)
	}
	// Sustains near 1 past the peak.
	if got := ExpSustainedImpulse(0.75, f, k); got < 1 {
		t.Fatalf("tail = %v, want >= 1", got)
	}
}
