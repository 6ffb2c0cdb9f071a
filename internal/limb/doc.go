// Package limb provides the word-level primitives of the multiplication
// engine: the widening multiply and the add-with-carry step that carry chains
// are built from. A limb is one 64-bit digit of a base-2^64 number, stored
// least significant first.
package limb
