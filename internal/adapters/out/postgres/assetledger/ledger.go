package assetledger

import (
	"context"
	"errors"

	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustodyLedger implements AssetTransferAdapter on top of the
// custody_balances table. Debits lock the balance row for update, so two
// transactions draining the same account serialize instead of both passing
// the balance check.
type GormCustodyLedger struct {
	db *gorm.DB
}

// NewGormCustodyLedger creates a new GORM custody ledger.
func NewGormCustodyLedger(db *gorm.DB) *GormCustodyLedger {
	return &GormCustodyLedger{db: db}
}

// Debit removes the amount from the account. A missing balance row reads as
// zero, so debiting an account that never received funds reports
// ErrInsufficientBalance.
func (l *GormCustodyLedger) Debit(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if err := asset.Validate(); err != nil {
		return err
	}

	var dto CustodyBalanceDTO
	err := l.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "account = ? AND asset_type = ?", account.String(), asset.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ErrInsufficientBalance
		}
		return err
	}

	if dto.Amount < amount {
		return ports.ErrInsufficientBalance
	}

	dto.Amount -= amount
	return l.db.WithContext(ctx).Model(&CustodyBalanceDTO{}).
		Where("account = ? AND asset_type = ?", dto.Account, dto.AssetType).
		Update("amount", dto.Amount).Error
}

// Credit adds the amount to the account, creating the balance row if it does
// not exist yet.
func (l *GormCustodyLedger) Credit(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if err := asset.Validate(); err != nil {
		return err
	}

	var dto CustodyBalanceDTO
	err := l.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "account = ? AND asset_type = ?", account.String(), asset.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto = CustodyBalanceDTO{
				Account:   account.String(),
				AssetType: asset.String(),
				Amount:    amount,
			}
			return l.db.WithContext(ctx).Create(&dto).Error
		}
		return err
	}

	total, err := kernel.CheckedAddU64(dto.Amount, amount)
	if err != nil {
		return err
	}

	return l.db.WithContext(ctx).Model(&CustodyBalanceDTO{}).
		Where("account = ? AND asset_type = ?", dto.Account, dto.AssetType).
		Update("amount", total).Error
}

// Balance returns the amount the account holds in the given asset.
func (l *GormCustodyLedger) Balance(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType) (uint64, error) {
	if err := account.Validate(); err != nil {
		return 0, err
	}
	if err := asset.Validate(); err != nil {
		return 0, err
	}

	var dto CustodyBalanceDTO
	err := l.db.WithContext(ctx).
		First(&dto, "account = ? AND asset_type = ?", account.String(), asset.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return dto.Amount, nil
}
