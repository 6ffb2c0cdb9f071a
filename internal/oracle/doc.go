// Package oracle provides arbitrary-precision reference multiplication used
// to check the fixed-width engine, together with the codec between limb
// vectors and *big.Int.
//
// The math/big oracle is always registered as "big". Building with the gmp
// tag additionally registers a GNU MP backed oracle as "gmp".
package oracle
