// Package kernel contains shared value objects used across the domain model:
// identifiers, custody account references, and overflow-checked arithmetic.
//
// Everything in this package is immutable and safe for concurrent use.
// Aggregates in platform, carrier, parcel and escrow build on these
// primitives; no kernel type depends on any aggregate.
package kernel
