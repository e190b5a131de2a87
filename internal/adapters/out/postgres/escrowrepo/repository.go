package escrowrepo

import (
	"context"
	"errors"

	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEscrowRepository implements EscrowRepository using GORM.
type GormEscrowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEscrowRepository creates a new GORM escrow repository.
func NewGormEscrowRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowRepository {
	return &GormEscrowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new escrow to the database. A duplicate parcel collides on
// the primary key and is reported as escrow.ErrAlreadyExists.
func (r *GormEscrowRepository) Add(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return escrow.ErrAlreadyExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ParcelID(), aggregate)
	return nil
}

// Update saves an existing escrow to the database.
func (r *GormEscrowRepository) Update(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EscrowDTO{}).
		Where("parcel_id = ?", dto.ParcelID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ParcelID(), aggregate)
	return nil
}

// GetByParcelID retrieves the escrow securing the given parcel.
func (r *GormEscrowRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*escrow.Escrow, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto EscrowDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
