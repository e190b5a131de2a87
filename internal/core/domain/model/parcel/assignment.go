package parcel

import (
	"parcelchain/internal/core/domain/model/kernel"
)

// CarrierAssignment is an explicit tagged variant for the parcel's carrier:
// either Unassigned or Assigned(carrierID). It replaces a nullable carrier
// reference so "not yet accepted" is a checked case at every read site.
type CarrierAssignment struct {
	assigned  bool
	carrierID kernel.UUID
}

// UnassignedCarrier returns the variant for a parcel without a carrier.
func UnassignedCarrier() CarrierAssignment {
	return CarrierAssignment{}
}

// AssignedCarrier returns the variant binding the given carrier.
func AssignedCarrier(carrierID kernel.UUID) (CarrierAssignment, error) {
	if err := carrierID.Validate(); err != nil {
		return CarrierAssignment{}, err
	}
	return CarrierAssignment{assigned: true, carrierID: carrierID}, nil
}

// IsAssigned reports whether a carrier is bound.
func (a CarrierAssignment) IsAssigned() bool {
	return a.assigned
}

// CarrierID returns the bound carrier and whether one is bound.
func (a CarrierAssignment) CarrierID() (kernel.UUID, bool) {
	return a.carrierID, a.assigned
}

// IsEqual compares two assignments: two unassigned values are equal, and
// assigned values compare by carrier.
func (a CarrierAssignment) IsEqual(other CarrierAssignment) bool {
	if a.assigned != other.assigned {
		return false
	}
	return !a.assigned || a.carrierID.IsEqual(other.carrierID)
}

// String renders "Unassigned" or the carrier identifier.
func (a CarrierAssignment) String() string {
	if !a.assigned {
		return "Unassigned"
	}
	return a.carrierID.String()
}
