package commands_test

import (
	"context"
	"testing"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/carrier"
	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations shared by the handler tests in this package.

type MockPlatformRepository struct{ mock.Mock }

func (m *MockPlatformRepository) Add(ctx context.Context, aggregate *platform.Platform) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPlatformRepository) Update(ctx context.Context, aggregate *platform.Platform) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPlatformRepository) Get(ctx context.Context) (*platform.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Platform), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, authority kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, authority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

type MockEscrowRepository struct{ mock.Mock }

func (m *MockEscrowRepository) Add(ctx context.Context, aggregate *escrow.Escrow) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEscrowRepository) Update(ctx context.Context, aggregate *escrow.Escrow) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEscrowRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*escrow.Escrow, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Escrow), args.Error(1)
}

type MockAssetLedger struct{ mock.Mock }

func (m *MockAssetLedger) Debit(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error {
	args := m.Called(ctx, account, asset, amount)
	return args.Error(0)
}

func (m *MockAssetLedger) Credit(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error {
	args := m.Called(ctx, account, asset, amount)
	return args.Error(0)
}

func (m *MockAssetLedger) Balance(ctx context.Context, account kernel.CustodyAccount, asset platform.AssetType) (uint64, error) {
	args := m.Called(ctx, account, asset)
	return args.Get(0).(uint64), args.Error(1)
}

// MockUoW implements the full unit of work; the narrower UoW interfaces are
// satisfied structurally.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PlatformRepository() ports.PlatformRepository {
	args := m.Called()
	return args.Get(0).(ports.PlatformRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) EscrowRepository() ports.EscrowRepository {
	args := m.Called()
	return args.Get(0).(ports.EscrowRepository)
}

func (m *MockUoW) AssetTransfers() ports.AssetTransferAdapter {
	args := m.Called()
	return args.Get(0).(ports.AssetTransferAdapter)
}

// Factory adapters, in the shape the composition root uses.

type platformUoWFactoryFunc func() commands.PlatformUoW

func (f platformUoWFactoryFunc) Create() commands.PlatformUoW { return f() }

type carrierUoWFactoryFunc func() commands.CarrierUoW

func (f carrierUoWFactoryFunc) Create() commands.CarrierUoW { return f() }

type parcelUoWFactoryFunc func() commands.ParcelUoW

func (f parcelUoWFactoryFunc) Create() commands.ParcelUoW { return f() }

type escrowUoWFactoryFunc func() commands.EscrowUoW

func (f escrowUoWFactoryFunc) Create() commands.EscrowUoW { return f() }

type fundingUoWFactoryFunc func() commands.FundingUoW

func (f fundingUoWFactoryFunc) Create() commands.FundingUoW { return f() }

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

// RecordingPublisher captures published domain events.
type RecordingPublisher struct {
	events []ports.DomainEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, event ports.DomainEvent) {
	p.events = append(p.events, event)
}

func mustAssetType(t *testing.T, id string) platform.AssetType {
	t.Helper()
	asset, err := platform.NewAssetType(id)
	require.NoError(t, err)
	return asset
}

func mustPlatform(t *testing.T, authority kernel.UUID) *platform.Platform {
	t.Helper()
	aggregate, err := platform.NewPlatform(authority, mustAssetType(t, "USDC"))
	require.NoError(t, err)
	return aggregate
}
