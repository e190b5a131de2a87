package parcel

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned when a lifecycle transition is attempted
// from a status that does not permit it.
var ErrInvalidStatus = errors.New("invalid parcel status")

// Status represents the delivery lifecycle state of a parcel.
//
// State transitions:
//
//	Registered ──> InTransit ──> Delivered
//
// There is no transition backwards; Delivered is terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Registered is the initial status: the parcel is posted and waiting
	// for a carrier.
	Registered

	// InTransit means a carrier has accepted the delivery.
	InTransit

	// Delivered means the delivery settled. Terminal.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Registered: "Registered",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
	}
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status holds one of the defined lifecycle values.
func (s Status) Validate() error {
	switch s {
	case Registered, InTransit, Delivered:
		return nil
	case Unknown:
	}
	return fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
}

// Accept transitions the status to InTransit. Only a Registered parcel can
// be accepted.
func (s Status) Accept() (Status, error) {
	if s != Registered {
		return 0, fmt.Errorf("%w: %s cannot be accepted", ErrInvalidStatus, s)
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered. Only an InTransit parcel can
// be delivered; Delivered is terminal.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: %s cannot be delivered", ErrInvalidStatus, s)
	}
	return Delivered, nil
}
