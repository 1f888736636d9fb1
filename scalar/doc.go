// Package scalar provides small generic helpers over ordered scalars:
// squaring and cubing, min/max and min-max pairs for 2 to 6 arguments,
// three-value sorting, clamping, range remapping, barycentric cell
// decomposition and power-of-two rounding.
//
// Everything here is a pure, stateless, single-expression style
// function with no shared state. Where two inputs compare equal the
// min/max helpers may return either one; the results are numerically
// indistinguishable.
package scalar
