// Package mpmul implements fixed-width multi-precision multiplication.
//
// A multiplication strategy describes its algorithm once, against the
// two-instruction Machine interface (widening multiply and add-with-carry).
// The same description is either executed immediately on caller-owned limb
// slices (Executor) or recorded into a Program that can be inspected,
// replayed and rendered as a listing (Recorder).
//
// Operands are little-endian slices of limb.Word. An N-limb by N-limb
// multiplication always produces exactly 2N limbs. Two strategies are
// registered:
//
//   - "schoolbook": the N² partial-product algorithm, any N >= 1.
//   - "fixed4": a four-multiply routine for N = 2 that sums the cross terms
//     before folding them into the result. It is bit-identical to
//     schoolbook.
//
// Operand validation happens once at the Multiply boundary. Inside the
// algorithms, violated invariants (an offset outside the product buffer, a
// carry escaping the top limb, concurrent use of an Accumulator) are
// programmer errors and panic.
package mpmul
