package queries

import (
	"errors"

	"parcelchain/internal/pkg/guard"
)

var ErrGetCustodyAuditQueryIsNotConstructed = errors.New(
	"GetCustodyAuditQuery must be created via NewGetCustodyAuditQuery constructor",
)

// GetCustodyAuditQuery compares, per asset type, the total amount funded
// escrows claim to hold against the total the vault custody accounts
// actually hold. The two must match at all times; a mismatch means a
// transition escaped its transaction boundary.
type GetCustodyAuditQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustodyAuditQuery creates a custody audit query.
func NewGetCustodyAuditQuery() GetCustodyAuditQuery {
	return GetCustodyAuditQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustodyAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetCustodyAuditQueryIsNotConstructed)
}

// GetCustodyAuditQueryResponse holds one asset type's audit line.
type GetCustodyAuditQueryResponse struct {
	AssetType    string
	EscrowTotal  uint64
	VaultBalance uint64
}

// Balanced reports whether the vault custody matches the escrow records.
func (r GetCustodyAuditQueryResponse) Balanced() bool {
	return r.EscrowTotal == r.VaultBalance
}
