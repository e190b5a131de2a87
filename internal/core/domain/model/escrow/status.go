package escrow

import (
	"fmt"
)

// Status represents the custody lifecycle of an escrow vault.
//
// State transitions:
//
//	Created ──fund──> Funded ──release──> Released
//
// Released is terminal; no transition leads back.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// Created means the vault exists but holds no funds yet.
	Created

	// Funded means the sender's payment sits in vault custody.
	Funded

	// Released means the funds were paid out. Terminal.
	Released
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Created:       "Created",
		Funded:        "Funded",
		Released:      "Released",
	}
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status holds one of the defined custody values.
func (s Status) Validate() error {
	switch s {
	case Created, Funded, Released:
		return nil
	case StatusUnknown:
	}
	return fmt.Errorf("%w: %d", ErrInvalidEscrowAccount, int(s))
}

// Fund transitions the status to Funded. Only a Created vault can be funded.
func (s Status) Fund() (Status, error) {
	if s != Created {
		return 0, fmt.Errorf("%w: %s cannot be funded", ErrInvalidEscrowAccount, s)
	}
	return Funded, nil
}

// Release transitions the status to Released. Only a Funded vault can be
// released, and Released is terminal.
func (s Status) Release() (Status, error) {
	if s != Funded {
		return 0, fmt.Errorf("%w: %s cannot be released", ErrInvalidEscrowAccount, s)
	}
	return Released, nil
}
