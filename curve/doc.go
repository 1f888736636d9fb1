// Package curve provides scalar interpolation and easing functions.
// Every function is pure and stateless; none allocates or blocks.
//
// Interpolation:
//
//   - [Lerp], [Bilerp], [Trilerp], [Quadlerp]: multilinear blends over
//     1, 2, 3 and 4 fractional axes
//   - [QuadraticBSplineWeights], [CubicInterpWeights], [CubicInterp]:
//     B-spline and cubic weight kernels
//   - [CatmullRom]: uniform Catmull-Rom spline segment
//   - [CatmullRomCentripetal], [CatmullRomChord], [CatmullRomAlpha]:
//     non-uniform (Barry-Goldman) parameterizations
//
// Easing and shaping, all mapping a parameter to a response curve:
//
//   - [SmoothStep], [SmoothStepRange], [LinearStep], [Ramp]
//   - [Impulse], [CubicPulse], [ExpStep], [Parabola], [PCurve]
//   - [SmoothStart2] through [SmoothStart5], [SmoothStop2] through
//     [SmoothStop5]
//   - [AlmostIdentity], [ExpSustainedImpulse]
package curve
