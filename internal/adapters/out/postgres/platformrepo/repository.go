package platformrepo

import (
	"context"
	"errors"
	"fmt"

	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlatformRepository implements PlatformRepository using GORM.
type GormPlatformRepository struct {
	db *gorm.DB
}

// NewGormPlatformRepository creates a new GORM platform repository.
func NewGormPlatformRepository(db *gorm.DB) *GormPlatformRepository {
	return &GormPlatformRepository{db: db}
}

// Add saves the platform record. The singleton primary key turns a second
// initialization into a duplicate-key error, reported as
// platform.ErrAlreadyInitialized.
func (r *GormPlatformRepository) Add(ctx context.Context, aggregate *platform.Platform) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platform.ErrAlreadyInitialized
		}
		return err
	}

	return nil
}

// Update saves changes to the platform record.
func (r *GormPlatformRepository) Update(ctx context.Context, aggregate *platform.Platform) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PlatformDTO{}).
		Where("id = ?", recordID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves the platform record.
func (r *GormPlatformRepository) Get(ctx context.Context) (*platform.Platform, error) {
	var dto PlatformDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("platform", fmt.Sprint(recordID))
		}
		return nil, err
	}

	return toDomain(dto)
}
