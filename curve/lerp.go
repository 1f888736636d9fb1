package curve

import "golang.org/x/exp/constraints"

// Lerp linearly interpolates between value0 (f=0) and value1 (f=1).
func Lerp[T constraints.Float](value0, value1, f T) T {
	return (1-f)*value0 + f*value1
}

// Bilerp bilinearly interpolates over the unit square: fx blends the
// 0x/1x pairs, fy blends the two rows.
func Bilerp[T constraints.Float](v00, v10, v01, v11, fx, fy T) T {
	return Lerp(Lerp(v00, v10, fx), Lerp(v01, v11, fx), fy)
}

// Trilerp trilinearly interpolates over the unit cube.
func Trilerp[T constraints.Float](v000, v100, v010, v110, v001, v101, v011, v111, fx, fy, fz T) T {
	return Lerp(
		Bilerp(v000, v100, v010, v110, fx, fy),
		Bilerp(v001, v101, v011, v111, fx, fy),
		fz,
	)
}

// Quadlerp quadrilinearly interpolates over the unit tesseract.
func Quadlerp[T constraints.Float](
	v0000, v1000, v0100, v1100, v0010, v1010, v0110, v1110,
	v0001, v1001, v0101, v1101, v0011, v1011, v0111, v1111,
	fx, fy, fz, ft T,
) T {
	return Lerp(
		Trilerp(v0000, v1000, v0100, v1100, v0010, v1010, v0110, v1110, fx, fy, fz),
		Trilerp(v0001, v1001, v0101, v1101, v0011, v1011, v0111, v1111, fx, fy, fz),
		ft,
	)
}
