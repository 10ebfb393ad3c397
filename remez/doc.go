// Package remez implements the barycentric interpolation kernel at the
// heart of the Parks-McClellan (Remez exchange) equiripple FIR design
// algorithm.
//
// Given a candidate reference node set and a band specification
// ([band.Band]), the kernel computes the barycentric weights, the uniform
// reference error delta, the ripple-consistent response values at the
// nodes, and evaluates the interpolant and the weighted error function at
// arbitrary coordinates. An outer exchange loop (not part of this module)
// scans the error function for new extrema and supplies the next
// reference set.
//
// Every operation exists in two parallel forms: a float64 form, and an
// arbitrary-precision form over *math/big.Float taking an explicit bit
// width (0 selects [DefaultPrec]). Both forms run the same generic
// implementation and therefore share the exact accumulation orderings,
// grouped products and exact-match short-circuits.
//
// # Reference iterate
//
// Nodes, weights, response values and delta form one coupled iterate:
// weights are only valid for the node set they were computed from,
// response values only for the delta and nodes they were derived from.
// Callers must advance all four together.
//
// # Preconditions and degeneracy
//
// The kernel validates nothing. Node sets must be strictly distinct,
// vectors index-aligned, and every node covered by a band; violations
// produce undefined numerical results. Nearly coincident nodes or an
// ill-posed band specification surface as very large or non-finite
// values for the caller to detect — the float64 path returns ±Inf or NaN,
// while the big.Float path can panic with big.ErrNaN on the 0/0 and
// Inf-Inf forms math/big refuses to represent.
//
// # Precision boundary
//
// The exact-match node comparisons are strict. Nodes converted from
// float64 with SetFloat64 compare exactly against their originals at any
// precision, but a node rounded through a narrower precision than it was
// produced at may fail the match and silently take the general formula
// instead of the short-circuit.
package remez
