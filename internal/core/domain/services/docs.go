// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the parcel marketplace. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliverySettlement: A domain service that settles a delivery across the
//     parcel, escrow, carrier and platform aggregates
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
