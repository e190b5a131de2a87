// Package ports defines repository and adapter interfaces for the parcel
// marketplace domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcelchain/internal/core/domain/model/platform"
)

// PlatformRepository defines the persistence contract for the platform
// configuration aggregate. The platform is a singleton: the repository
// enforces that at most one record exists.
type PlatformRepository interface {
	// Add persists the platform record. Returns
	// platform.ErrAlreadyInitialized if a record already exists.
	Add(ctx context.Context, aggregate *platform.Platform) error

	// Update persists changes to the platform record.
	Update(ctx context.Context, aggregate *platform.Platform) error

	// Get retrieves the platform record. Returns errs.ObjectNotFoundError
	// if the platform was never initialized.
	Get(ctx context.Context) (*platform.Platform, error)
}
