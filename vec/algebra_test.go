package vec

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	a := Vec3d{1, 2, 3}
	b := Vec3d{4, 5, 6}
	if got := Dot[float64](&a, &b); got != 32 {
		t.Fatalf("Dot = %v, want 32", got)
	}
	// Symmetry.
	if Dot[float64](&a, &b) != Dot[float64](&b, &a) {
		t.Fatal("Dot is not symmetric")
	}
	// Orthogonal vectors.
	x := UnitX2[float64]()
	y := UnitY2[float64]()
	if got := Dot[float64](&x, &y); got != 0 {
		t.Fatalf("Dot(ex, ey) = %v, want 0", got)
	}

	defer func() {
		if r := recover(); r != ErrDimensionMismatch {
			t.Fatalf("recovered %v, want ErrDimensionMismatch", r)
		}
	}()
	Dot[float64](&a, &x)
}

func TestMagDist(t *testing.T) {
	v := Vec2d{3, 4}
	if got := Mag2[float64](&v); got != 25 {
		t.Fatalf("Mag2 = %v, want 25", got)
	}
	if got := Mag[float64](&v); got != 5 {
		t.Fatalf("Mag = %v, want 5", got)
	}

	a := Vec3d{1, 1, 1}
	b := Vec3d{4, 5, 1}
	if got := Dist[float64](&a, &b); got != 5 {
		t.Fatalf("Dist = %v, want 5", got)
	}
	// Symmetry and identity.
	if Dist[float64](&a, &b) != Dist[float64](&b, &a) {
		t.Fatal("Dist is not symmetric")
	}
	if got := Dist[float64](&a, &a); got != 0 {
		t.Fatalf("Dist(a, a) = %v, want 0", got)
	}
}

func TestInfNormCompMinMax(t *testing.T) {
	v := Vec3d{-7, 2, 5}
	if got := InfNorm[float64](&v); got != 7 {
		t.Fatalf("InfNorm = %v, want 7", got)
	}
	if got := CompMin[float64](&v); got != -7 {
		t.Fatalf("CompMin = %v, want -7", got)
	}
	if got := CompMax[float64](&v); got != 5 {
		t.Fatalf("CompMax = %v, want 5", got)
	}
}

func TestAllAnyNonzero(t *testing.T) {
	full := Vec3i{1, -2, 3}
	partial := Vec3i{1, 0, 3}
	empty := Zero3[int]()

	if !All[int](&full) || All[int](&partial) {
		t.Fatal("All misclassified")
	}
	if !Any[int](&partial) || Any[int](&empty) {
		t.Fatal("Any misclassified")
	}
	if Nonzero[int](&empty) {
		t.Fatal("Nonzero(zero vector) = true")
	}
}

func TestEqualAcrossKinds(t *testing.T) {
	a := Vec3d{1, 2, 3}
	n := Of(1.0, 2.0, 3.0)
	if !Equal[float64](&a, n) {
		t.Fatal("Vec3 and equivalent VecN reported unequal")
	}
	if Equal[float64](&a, Of(1.0, 2.0)) {
		t.Fatal("different arities reported equal")
	}
}

func TestAlmostEqual(t *testing.T) {
	a := Vec2d{1, 1}
	b := Vec2d{1, 1 + 1e-9}
	if !AlmostEqual[float64](&a, &b, 1e-6) {
		t.Fatal("nearby vectors reported far")
	}
	if AlmostEqual[float64](&a, &b, 1e-12) {
		t.Fatal("epsilon not respected")
	}
}

func TestMinMaxN(t *testing.T) {
	// All orderings of three inputs give the same envelope.
	perms := [][3]VecN[float64]{
		{Of(3.0, 1.0), Of(1.0, 3.0), Of(2.0, 2.0)},
		{Of(1.0, 3.0), Of(2.0, 2.0), Of(3.0, 1.0)},
		{Of(2.0, 2.0), Of(3.0, 1.0), Of(1.0, 3.0)},
	}
	for i, p := range perms {
		vmin, vmax := MinMaxN(p[0], p[1], p[2])
		if !vmin.Equals(Of(1.0, 1.0)) || !vmax.Equals(Of(3.0, 3.0)) {
			t.Fatalf("perm %d: vmin %v, vmax %v", i, vmin, vmax)
		}
	}

	// Inputs stay untouched.
	a := Of(5.0, -5.0)
	b := Of(-5.0, 5.0)
	vmin, vmax := MinMaxN(a, b)
	vmin.Set(0, 99)
	vmax.Set(0, 99)
	if !a.Equals(Of(5.0, -5.0)) || !b.Equals(Of(-5.0, 5.0)) {
		t.Fatal("MinMaxN aliased its inputs")
	}
}

func TestMinMaxNArgCount(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrDimensionMismatch {
			t.Fatalf("recovered %v, want ErrDimensionMismatch", r)
		}
	}()
	MinMaxN(Of(1.0, 2.0))
}

func TestUpdateMinMaxN(t *testing.T) {
	vmin := Of(0.0, 0.0)
	vmax := Of(1.0, 1.0)
	UpdateMinMaxN(Of(-2.0, 0.5), vmin, vmax)
	UpdateMinMaxN(Of(0.5, 3.0), vmin, vmax)
	if !vmin.Equals(Of(-2.0, 0.0)) {
		t.Fatalf("vmin = %v, want (-2 0)", vmin)
	}
	if !vmax.Equals(Of(1.0, 3.0)) {
		t.Fatalf("vmax = %v, want (1 3)", vmax)
	}
}

func TestCross(t *testing.T) {
	if got := Cross2(Vec2d{1, 0}, Vec2d{0, 1}); got != 1 {
		t.Fatalf("Cross2(ex, ey) = %v, want 1", got)
	}
	if got := Cross2(Vec2d{0, 1}, Vec2d{1, 0}); got != -1 {
		t.Fatalf("Cross2(ey, ex) = %v, want -1", got)
	}

	ex := UnitX3[float64]()
	ey := UnitY3[float64]()
	ez := UnitZ3[float64]()
	if got := Cross3(ex, ey); got != ez {
		t.Fatalf("Cross3(ex, ey) = %v, want ez", got)
	}
	// Anti-commutativity.
	if got := Cross3(ey, ex); got != ez.Neg() {
		t.Fatalf("Cross3(ey, ex) = %v, want -ez", got)
	}
	// Cross with self vanishes.
	a := Vec3d{2, -3, 7}
	if got := Cross3(a, a); got != (Vec3d{0, 0, 0}) {
		t.Fatalf("Cross3(a, a) = %v", got)
	}
	// Result is orthogonal to both operands.
	b := Vec3d{1, 4, -2}
	c := Cross3(a, b)
	if Dot[float64](&a, &c) != 0 || Dot[float64](&b, &c) != 0 {
		t.Fatal("cross product is not orthogonal to its operands")
	}
}

func TestTriple(t *testing.T) {
	ex := UnitX3[float64]()
	ey := UnitY3[float64]()
	ez := UnitZ3[float64]()
	if got := Triple(ex, ey, ez); got != 1 {
		t.Fatalf("Triple(ex, ey, ez) = %v, want 1", got)
	}
	// Coplanar vectors give zero volume.
	if got := Triple(ex, ey, ex.Add(ey)); got != 0 {
		t.Fatalf("Triple(coplanar) = %v, want 0", got)
	}
}

func TestPerpRotate(t *testing.T) {
	if got := Perp(Vec2d{1, 0}); got != (Vec2d{0, 1}) {
		t.Fatalf("Perp(ex) = %v, want ey", got)
	}
	if got := Perp(Vec2d{3, -2}); got != (Vec2d{2, 3}) {
		t.Fatalf("Perp = %v, want (2 3)", got)
	}

	got := Rotate(Vec2d{1, 0}, math.Pi/2)
	want := Vec2d{0, 1}
	if Dist[float64](&got, &want) > 1e-15 {
		t.Fatalf("Rotate(ex, pi/2) = %v, want ey", got)
	}
	// Rotation preserves magnitude.
	v := Vec2d{3, 4}
	r := Rotate(v, 1.2345)
	if math.Abs(Mag[float64](&r)-5) > 1e-14 {
		t.Fatalf("Mag after rotate = %v, want 5", Mag[float64](&r))
	}
}

func TestLerp(t *testing.T) {
	a2 := Vec2d{0, 10}
	b2 := Vec2d{10, 0}
	if got := Lerp2(a2, b2, 0); got != a2 {
		t.Fatalf("Lerp2(t=0) = %v", got)
	}
	if got := Lerp2(a2, b2, 1); got != b2 {
		t.Fatalf("Lerp2(t=1) = %v", got)
	}
	if got := Lerp2(a2, b2, 0.5); got != (Vec2d{5, 5}) {
		t.Fatalf("Lerp2(t=0.5) = %v", got)
	}

	a3 := Vec3d{0, 0, 0}
	b3 := Vec3d{2, 4, 6}
	if got := Lerp3(a3, b3, 0.25); got != (Vec3d{0.5, 1, 1.5}) {
		t.Fatalf("Lerp3 = %v", got)
	}

	a4 := Vec4d{1, 1, 1, 1}
	b4 := Vec4d{3, 3, 3, 3}
	if got := Lerp4(a4, b4, 0.5); got != (Vec4d{2, 2, 2, 2}) {
		t.Fatalf("Lerp4 = %v", got)
	}

	if got := LerpN(Of(0.0, 8.0), Of(4.0, 0.0), 0.5); !got.Equals(Of(2.0, 4.0)) {
		t.Fatalf("LerpN = %v", got)
	}
}
