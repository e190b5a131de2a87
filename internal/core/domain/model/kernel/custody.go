package kernel

import (
	"errors"
	"fmt"
	"strings"

	"parcelchain/internal/pkg/errs"
)

// ErrCustodyAccountIsNotConstructed indicates a zero-value CustodyAccount.
var ErrCustodyAccountIsNotConstructed = errs.NewValueIsRequiredError(
	"custody account must be created via UserAccount, VaultAccount, or FeeAccount")

// ErrInvalidCustodyAccount indicates a custody account string that cannot be
// parsed back into a CustodyAccount.
var ErrInvalidCustodyAccount = errors.New("invalid custody account")

type custodyKind string

const (
	custodyKindUser  custodyKind = "user"
	custodyKindVault custodyKind = "vault"
	custodyKindFees  custodyKind = "fees"
)

// CustodyAccount is a deterministic reference to a value-custody record in
// the asset ledger. The same owner always resolves to the same account:
//
//   - UserAccount(id)       -> "user:<id>"    a person's custody
//   - VaultAccount(parcel)  -> "vault:<id>"   the escrow vault for one parcel
//   - FeeAccount(platform)  -> "fees:<id>"    the platform's fee custody
//
// Vault accounts are never accepted from external callers; they are
// constructed only inside the escrow funding and release flows, which is
// what authorizes outbound transfers from a vault.
type CustodyAccount struct {
	kind  custodyKind
	owner UUID
}

// UserAccount returns the custody account owned by the given identity.
func UserAccount(owner UUID) (CustodyAccount, error) {
	return newCustodyAccount(custodyKindUser, owner)
}

// VaultAccount returns the custody account of the escrow vault securing the
// given parcel. At most one vault account can exist per parcel because the
// reference is a pure function of the parcel identifier.
func VaultAccount(parcelID UUID) (CustodyAccount, error) {
	return newCustodyAccount(custodyKindVault, parcelID)
}

// FeeAccount returns the platform's fee custody account.
func FeeAccount(platformAuthority UUID) (CustodyAccount, error) {
	return newCustodyAccount(custodyKindFees, platformAuthority)
}

func newCustodyAccount(kind custodyKind, owner UUID) (CustodyAccount, error) {
	if err := owner.Validate(); err != nil {
		return CustodyAccount{}, err
	}
	return CustodyAccount{kind: kind, owner: owner}, nil
}

// CustodyAccountFromString parses the persisted "kind:uuid" form.
func CustodyAccountFromString(s string) (CustodyAccount, error) {
	kind, rawOwner, found := strings.Cut(s, ":")
	if !found {
		return CustodyAccount{}, fmt.Errorf("%w: %q", ErrInvalidCustodyAccount, s)
	}

	switch custodyKind(kind) {
	case custodyKindUser, custodyKindVault, custodyKindFees:
	default:
		return CustodyAccount{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidCustodyAccount, kind)
	}

	owner, err := UUIDFromString(rawOwner)
	if err != nil {
		return CustodyAccount{}, fmt.Errorf("%w: %v", ErrInvalidCustodyAccount, err)
	}

	return CustodyAccount{kind: custodyKind(kind), owner: owner}, nil
}

// String returns the canonical "kind:uuid" form used as the ledger key.
func (a CustodyAccount) String() string {
	return fmt.Sprintf("%s:%s", a.kind, a.owner)
}

// Owner returns the identity the account is derived from.
func (a CustodyAccount) Owner() UUID {
	return a.owner
}

// IsVault reports whether the account belongs to an escrow vault.
func (a CustodyAccount) IsVault() bool {
	return a.kind == custodyKindVault
}

// IsEqual compares two custody accounts.
func (a CustodyAccount) IsEqual(other CustodyAccount) bool {
	return a.kind == other.kind && a.owner.IsEqual(other.owner)
}

// Validate returns an error for a zero-value CustodyAccount.
func (a CustodyAccount) Validate() error {
	if a.kind == "" {
		return ErrCustodyAccountIsNotConstructed
	}
	return a.owner.Validate()
}
