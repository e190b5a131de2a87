// Package escrow contains the Escrow aggregate: the custody record securing
// payment for exactly one parcel. Funds enter at funding and leave exactly
// once at release, split deterministically between the carrier and the
// platform fee account. The vault's custody reference is derived purely
// from the parcel identifier, so at most one vault can ever exist per
// parcel.
package escrow
