// Package parcel contains the Parcel aggregate: one record per shipment,
// tracking the parties, the physical attributes, the price, and the
// delivery lifecycle. Status transitions are strictly forward
// (Registered -> InTransit -> Delivered) and each timestamp is set exactly
// once.
package parcel
