package vec

import "math"

func minT[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// maxScalar returns the largest finite value representable by T.
func maxScalar[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		f := float32(math.MaxFloat32)
		return T(f)
	case float64:
		f := float64(math.MaxFloat64)
		return T(f)
	case int:
		n := math.MaxInt
		return T(n)
	case int8:
		n := math.MaxInt8
		return T(n)
	case int16:
		n := math.MaxInt16
		return T(n)
	case int32:
		n := math.MaxInt32
		return T(n)
	case int64:
		n := int64(math.MaxInt64)
		return T(n)
	case uint:
		n := uint(math.MaxUint)
		return T(n)
	case uint8:
		n := math.MaxUint8
		return T(n)
	case uint16:
		n := math.MaxUint16
		return T(n)
	case uint32:
		n := uint32(math.MaxUint32)
		return T(n)
	case uint64, uintptr:
		n := uint64(math.MaxUint64)
		return T(n)
	default:
		// Defined types with numeric underlying types fall back to the
		// float64 limit cast into T.
		f := float64(math.MaxFloat64)
		return T(f)
	}
}
