package vec

// Axis names a vector component for swizzle views.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
	W
)

// View is an axis-permutation (swizzle) view over a vector's storage.
// It selects components of the parent in an arbitrary order, with
// repetition allowed, and reads and writes go straight through to the
// parent. A View does not own the storage it references and must not
// outlive the vector it was taken from.
//
// A View implements [Vector], so it can be passed to the free-function
// algebra and assigned from another View.
type View[T Scalar] struct {
	data []T
	axes []Axis
}

func newView[T Scalar](data []T, axes []Axis) View[T] {
	if len(axes) == 0 {
		panic(ErrDimensionMismatch)
	}
	for _, a := range axes {
		if int(a) >= len(data) {
			panic(ErrOutOfRange)
		}
	}
	return View[T]{data: data, axes: axes}
}

// Len returns the view's arity (the number of selected axes).
func (w View[T]) Len() int { return len(w.axes) }

// At returns the i-th selected component of the parent.
func (w View[T]) At(i int) T {
	if i < 0 || i >= len(w.axes) {
		panic(ErrOutOfRange)
	}
	return w.data[w.axes[i]]
}

// Set writes the i-th selected component of the parent.
func (w View[T]) Set(i int, value T) {
	if i < 0 || i >= len(w.axes) {
		panic(ErrOutOfRange)
	}
	w.data[w.axes[i]] = value
}

// Assign copies src into the parent through the permutation, in index
// order. src may be any vector or another view; its arity must match
// the view's or Assign panics with ErrDimensionMismatch. With repeated
// axes the last write to an axis wins.
func (w View[T]) Assign(src Vector[T]) {
	if src.Len() != len(w.axes) {
		panic(ErrDimensionMismatch)
	}
	for i, a := range w.axes {
		w.data[a] = src.At(i)
	}
}

// Vec2 materializes the view as an independent Vec2. It panics with
// ErrDimensionMismatch unless the view has arity 2.
func (w View[T]) Vec2() Vec2[T] {
	if len(w.axes) != 2 {
		panic(ErrDimensionMismatch)
	}
	return Vec2[T]{w.data[w.axes[0]], w.data[w.axes[1]]}
}

// Vec3 materializes the view as an independent Vec3. It panics with
// ErrDimensionMismatch unless the view has arity 3.
func (w View[T]) Vec3() Vec3[T] {
	if len(w.axes) != 3 {
		panic(ErrDimensionMismatch)
	}
	return Vec3[T]{w.data[w.axes[0]], w.data[w.axes[1]], w.data[w.axes[2]]}
}

// Vec4 materializes the view as an independent Vec4. It panics with
// ErrDimensionMismatch unless the view has arity 4.
func (w View[T]) Vec4() Vec4[T] {
	if len(w.axes) != 4 {
		panic(ErrDimensionMismatch)
	}
	return Vec4[T]{w.data[w.axes[0]], w.data[w.axes[1]], w.data[w.axes[2]], w.data[w.axes[3]]}
}

// VecN materializes the view as an independent VecN of the view's
// arity.
func (w View[T]) VecN() VecN[T] {
	out := make(VecN[T], len(w.axes))
	for i, a := range w.axes {
		out[i] = w.data[a]
	}
	return out
}
