package vec

import (
	"fmt"
	"strconv"
	"strings"
)

// Format serializes v as space-separated components in index order,
// using the shortest representation that round-trips for the scalar
// type. Parse2/Parse3/Parse4/ParseN are the inverse.
func Format[T Scalar](v Vector[T]) string {
	var b strings.Builder
	b.WriteString(formatScalar(v.At(0)))
	for i := 1; i < v.Len(); i++ {
		b.WriteByte(' ')
		b.WriteString(formatScalar(v.At(i)))
	}
	return b.String()
}

func formatScalar[T Scalar](x T) string {
	switch v := any(x).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func parseScalar[T Scalar](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		return T(f), err
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		return T(f), err
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := strconv.ParseUint(s, 10, 64)
		return T(u), err
	default:
		n, err := strconv.ParseInt(s, 10, 64)
		return T(n), err
	}
}

// ParseN reads n whitespace-separated scalars from s in index order.
func ParseN[T Scalar](s string, n int) (VecN[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("vec: parse: invalid arity %d: %w", n, ErrDimensionMismatch)
	}
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, fmt.Errorf("vec: parse %q: want %d components, have %d: %w",
			s, n, len(fields), ErrDimensionMismatch)
	}
	out := make(VecN[T], n)
	for i, f := range fields {
		c, err := parseScalar[T](f)
		if err != nil {
			return nil, fmt.Errorf("vec: parse component %d of %q: %w", i, s, err)
		}
		out[i] = c
	}
	return out, nil
}

// Parse2 reads two whitespace-separated scalars from s.
func Parse2[T Scalar](s string) (Vec2[T], error) {
	n, err := ParseN[T](s, 2)
	if err != nil {
		return Vec2[T]{}, err
	}
	return Vec2[T]{n[0], n[1]}, nil
}

// Parse3 reads three whitespace-separated scalars from s.
func Parse3[T Scalar](s string) (Vec3[T], error) {
	n, err := ParseN[T](s, 3)
	if err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{n[0], n[1], n[2]}, nil
}

// Parse4 reads four whitespace-separated scalars from s.
func Parse4[T Scalar](s string) (Vec4[T], error) {
	n, err := ParseN[T](s, 4)
	if err != nil {
		return Vec4[T]{}, err
	}
	return Vec4[T]{n[0], n[1], n[2], n[3]}, nil
}
