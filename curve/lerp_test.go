package curve

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(2.0, 6.0, 0); got != 2 {
		t.Fatalf("Lerp(f=0) = %v, want 2", got)
	}
	if got := Lerp(2.0, 6.0, 1); got != 6 {
		t.Fatalf("Lerp(f=1) = %v, want 6", got)
	}
	if got := Lerp(2.0, 6.0, 0.25); got != 3 {
		t.Fatalf("Lerp(f=0.25) = %v, want 3", got)
	}
	// Extrapolates outside [0, 1].
	if got := Lerp(2.0, 6.0, 2); got != 10 {
		t.Fatalf("Lerp(f=2) = %v, want 10", got)
	}
}

func TestBilerp(t *testing.T) {
	// Corners reproduce exactly.
	corners := []struct {
		fx, fy float64
		want   float64
	}{
		{0, 0, 1}, {1, 0, 2}, {0, 1, 3}, {1, 1, 4},
	}
	for _, c := range corners {
		if got := Bilerp(1.0, 2, 3, 4, c.fx, c.fy); got != c.want {
			t.Fatalf("Bilerp(%v, %v) = %v, want %v", c.fx, c.fy, got, c.want)
		}
	}
	// Center averages the corners.
	if got := Bilerp(1.0, 2, 3, 4, 0.5, 0.5); got != 2.5 {
		t.Fatalf("Bilerp(center) = %v, want 2.5", got)
	}
	// Edge midpoint blends only one axis.
	if got := Bilerp(1.0, 2, 3, 4, 0.5, 0); got != 1.5 {
		t.Fatalf("Bilerp(edge) = %v, want 1.5", got)
	}
}

func TestTrilerp(t *testing.T) {
	// Values laid out so f(x, y, z) = x + 2y + 4z at the corners.
	f := func(fx, fy, fz float64) float64 {
		return Trilerp(0.0, 1, 2, 3, 4, 5, 6, 7, fx, fy, fz)
	}
	if got := f(1, 0, 0); got != 1 {
		t.Fatalf("Trilerp(1,0,0) = %v, want 1", got)
	}
	if got := f(0, 1, 1); got != 6 {
		t.Fatalf("Trilerp(0,1,1) = %v, want 6", got)
	}
	// Multilinear in each axis.
	if got := f(0.5, 0.5, 0.5); got != 3.5 {
		t.Fatalf("Trilerp(center) = %v, want 3.5", got)
	}
}

func TestQuadlerp(t *testing.T) {
	// Corner values x + 2y + 4z + 8t.
	f := func(fx, fy, fz, ft float64) float64 {
		return Quadlerp(
			0.0, 1, 2, 3, 4, 5, 6, 7,
			8, 9, 10, 11, 12, 13, 14, 15,
			fx, fy, fz, ft,
		)
	}
	if got := f(0, 0, 0, 1); got != 8 {
		t.Fatalf("Quadlerp(t corner) = %v, want 8", got)
	}
	if got := f(1, 1, 1, 1); got != 15 {
		t.Fatalf("Quadlerp(far corner) = %v, want 15", got)
	}
	if got := f(0.5, 0.5, 0.5, 0.5); got != 7.5 {
		t.Fatalf("Quadlerp(center) = %v, want 7.5", got)
	}
}
