// Package platform contains the Platform aggregate: the singleton
// configuration record that governs the fee rate, the reputation policy, the
// accepted asset types, and the running parcel counter. It is read by most
// operations but mutated only through its own methods.
package platform
