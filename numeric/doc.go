// Package numeric defines the arithmetic contract the densolve engine is
// written against, together with its three instantiations:
//
//   - Float64  — native IEEE-754 double precision (math).
//   - BigFloat — fixed-width binary floating point (math/big) at a
//     configurable mantissa precision.
//   - Decimal  — arbitrary-precision decimal (gopkg.in/inf.v0) at a
//     configurable decimal scale.
//
// Every operation of the contract rounds its result to the instantiation's
// working precision. Wide() derives a second arithmetic at the working
// precision plus a fixed safety margin; it backs Accumulator, the
// compensated (Kahan) summation used for dot products, row scales,
// residuals and norms — sums that subtract nearly equal large quantities
// and must not let nominal-precision rounding mask genuine improvement.
package numeric
