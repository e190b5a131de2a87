package queries

import (
	"context"

	"parcelchain/internal/core/domain/model/escrow"

	"gorm.io/gorm"
)

// GetCustodyAuditQueryHandler computes the custody audit from the escrow
// records and the custody ledger.
type GetCustodyAuditQueryHandler struct {
	db *gorm.DB
}

// NewGetCustodyAuditQueryHandler creates a handler for custody audit
// queries.
func NewGetCustodyAuditQueryHandler(db *gorm.DB) GetCustodyAuditQueryHandler {
	return GetCustodyAuditQueryHandler{db: db}
}

// Handle executes the audit. Each row joins the funded escrow total with
// the vault custody total for one asset type; assets present on only one
// side still produce a row, with the missing side read as zero.
func (h GetCustodyAuditQueryHandler) Handle(
	ctx context.Context,
	query GetCustodyAuditQuery,
) ([]GetCustodyAuditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetCustodyAuditQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(e.asset_type, v.asset_type) AS asset_type,
			COALESCE(e.total, 0) AS escrow_total,
			COALESCE(v.total, 0) AS vault_balance
		FROM (
			SELECT asset_type, SUM(amount) AS total
			FROM escrows
			WHERE status = ?
			GROUP BY asset_type
		) e
		FULL OUTER JOIN (
			SELECT asset_type, SUM(amount) AS total
			FROM custody_balances
			WHERE account LIKE 'vault:%'
			GROUP BY asset_type
		) v ON e.asset_type = v.asset_type
		ORDER BY asset_type
	`, int(escrow.Funded)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetCustodyAuditQueryResponse
		if err = rows.Scan(&line.AssetType, &line.EscrowTotal, &line.VaultBalance); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
