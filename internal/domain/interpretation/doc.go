// Package interpretation turns computed pillar numbers into the text shown to
// a reader: the per-number bundle with its pillar nuance, the audit trail of
// the arithmetic behind a pillar, and the essence/mission synthesis.
//
// All text lives in catalog.yaml, embedded at build time and parsed once. The
// parsed Catalog is never mutated, so a Resolver is safe for concurrent use.
package interpretation
