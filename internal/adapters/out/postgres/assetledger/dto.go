// Package assetledger persists custody balances. Every account and asset
// pair owns a single row, and all movements go through debit and credit so
// the table stays an exact record of who holds what.
package assetledger

// CustodyBalanceDTO represents one custody account's holding in one asset.
type CustodyBalanceDTO struct {
	Account   string `gorm:"primaryKey;size:100"`
	AssetType string `gorm:"primaryKey;size:50"`
	Amount    uint64
}

// TableName specifies the database table name for custody balances.
func (CustodyBalanceDTO) TableName() string {
	return "custody_balances"
}
