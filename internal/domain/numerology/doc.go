// Package numerology implements the pure arithmetic behind a numerology map:
// digit-sum reduction with master-number preservation, the Pythagorean
// letter table, and the five pillar formulas built on top of them.
//
// Every function in this package is deterministic and free of I/O. The only
// time-dependent input, the year used for the Personal Year pillar, is passed
// in explicitly; Service is the thin wrapper that supplies it from a clock.
//
// Each formula is computed by producing a Trace of the arithmetic it performs
// and reading the result off that trace. Callers that display intermediate
// sums therefore see exactly the values the formula used.
package numerology
