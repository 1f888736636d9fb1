package scalar

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min3 returns the smallest of three values.
func Min3[T constraints.Ordered](a1, a2, a3 T) T {
	return Min(a1, Min(a2, a3))
}

// Min4 returns the smallest of four values.
func Min4[T constraints.Ordered](a1, a2, a3, a4 T) T {
	return Min(Min(a1, a2), Min(a3, a4))
}

// Min5 returns the smallest of five values.
func Min5[T constraints.Ordered](a1, a2, a3, a4, a5 T) T {
	return Min3(Min(a1, a2), Min(a3, a4), a5)
}

// Min6 returns the smallest of six values.
func Min6[T constraints.Ordered](a1, a2, a3, a4, a5, a6 T) T {
	return Min3(Min(a1, a2), Min(a3, a4), Min(a5, a6))
}

// Max3 returns the largest of three values.
func Max3[T constraints.Ordered](a1, a2, a3 T) T {
	return Max(a1, Max(a2, a3))
}

// Max4 returns the largest of four values.
func Max4[T constraints.Ordered](a1, a2, a3, a4 T) T {
	return Max(Max(a1, a2), Max(a3, a4))
}

// Max5 returns the largest of five values.
func Max5[T constraints.Ordered](a1, a2, a3, a4, a5 T) T {
	return Max3(Max(a1, a2), Max(a3, a4), a5)
}

// Max6 returns the largest of six values.
func Max6[T constraints.Ordered](a1, a2, a3, a4, a5, a6 T) T {
	return Max3(Max(a1, a2), Max(a3, a4), Max(a5, a6))
}

// MinMax returns both the smaller and the larger of two values.
func MinMax[T constraints.Ordered](a1, a2 T) (amin, amax T) {
	if a1 < a2 {
		return a1, a2
	}
	return a2, a1
}

// MinMax3 returns the smallest and largest of three values.
func MinMax3[T constraints.Ordered](a1, a2, a3 T) (amin, amax T) {
	if a1 < a2 {
		if a1 < a3 {
			return a1, Max(a2, a3)
		}
		return a3, a2
	}
	if a2 < a3 {
		return a2, Max(a1, a3)
	}
	return a3, a1
}

// MinMax4 returns the smallest and largest of four values.
func MinMax4[T constraints.Ordered](a1, a2, a3, a4 T) (amin, amax T) {
	if a1 < a2 {
		if a3 < a4 {
			return Min(a1, a3), Max(a2, a4)
		}
		return Min(a1, a4), Max(a2, a3)
	}
	if a3 < a4 {
		return Min(a2, a3), Max(a1, a4)
	}
	return Min(a2, a4), Max(a1, a3)
}

// MinMax5 returns the smallest and largest of five values.
func MinMax5[T constraints.Ordered](a1, a2, a3, a4, a5 T) (amin, amax T) {
	return Min5(a1, a2, a3, a4, a5), Max5(a1, a2, a3, a4, a5)
}

// MinMax6 returns the smallest and largest of six values.
func MinMax6[T constraints.Ordered](a1, a2, a3, a4, a5, a6 T) (amin, amax T) {
	return Min6(a1, a2, a3, a4, a5, a6), Max6(a1, a2, a3, a4, a5, a6)
}

// UpdateMinMax widens *amin and *amax so the range contains a.
func UpdateMinMax[T constraints.Ordered](a T, amin, amax *T) {
	if a < *amin {
		*amin = a
	} else if a > *amax {
		*amax = a
	}
}

// Sort3 reorders a, b, c in place so that *a <= *b <= *c.
func Sort3[T constraints.Ordered](a, b, c *T) {
	if *b < *a {
		*a, *b = *b, *a
	}
	if *c < *b {
		*b, *c = *c, *b
	}
	if *b < *a {
		*a, *b = *b, *a
	}
}
