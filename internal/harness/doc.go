// Package harness verifies the multiplication engine against a reference
// oracle.
//
// A run is a list of suites. Each suite pairs one strategy and one operand
// width with a vector corpus: curated scenarios, edge cases, or a seeded
// random set. A cross suite compares two strategies directly instead of
// consulting the oracle. Mismatches are recorded and never stop a run.
package harness
