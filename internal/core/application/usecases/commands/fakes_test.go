package commands_test

import (
	"context"
	"fmt"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/domain/model/carrier"
	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/core/ports"
	"parcelchain/internal/pkg/errs"
)

// fakeUoW is an in-memory unit of work for exercising whole command
// sequences. It ignores transaction boundaries: every mutation applies
// immediately, which is fine for the happy paths the lifecycle tests drive.
type fakeUoW struct {
	platform *platform.Platform
	carriers map[string]*carrier.Carrier
	parcels  map[string]*parcel.Parcel
	escrows  map[string]*escrow.Escrow
	balances map[string]uint64
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		carriers: make(map[string]*carrier.Carrier),
		parcels:  make(map[string]*parcel.Parcel),
		escrows:  make(map[string]*escrow.Escrow),
		balances: make(map[string]uint64),
	}
}

func (f *fakeUoW) Begin(context.Context) error    { return nil }
func (f *fakeUoW) Commit(context.Context) error   { return nil }
func (f *fakeUoW) Rollback(context.Context) error { return nil }

func (f *fakeUoW) PlatformRepository() ports.PlatformRepository { return (*fakePlatformRepo)(f) }
func (f *fakeUoW) CarrierRepository() ports.CarrierRepository   { return (*fakeCarrierRepo)(f) }
func (f *fakeUoW) ParcelRepository() ports.ParcelRepository     { return (*fakeParcelRepo)(f) }
func (f *fakeUoW) EscrowRepository() ports.EscrowRepository     { return (*fakeEscrowRepo)(f) }
func (f *fakeUoW) AssetTransfers() ports.AssetTransferAdapter   { return (*fakeLedger)(f) }

func (f *fakeUoW) balanceKey(account kernel.CustodyAccount, asset platform.AssetType) string {
	return account.String() + "/" + asset.String()
}

type fakePlatformRepo fakeUoW

func (r *fakePlatformRepo) Add(_ context.Context, aggregate *platform.Platform) error {
	if r.platform != nil {
		return platform.ErrAlreadyInitialized
	}
	r.platform = aggregate
	return nil
}

func (r *fakePlatformRepo) Update(_ context.Context, aggregate *platform.Platform) error {
	r.platform = aggregate
	return nil
}

func (r *fakePlatformRepo) Get(context.Context) (*platform.Platform, error) {
	if r.platform == nil {
		return nil, errs.NewObjectNotFoundError("platform", 1)
	}
	return r.platform, nil
}

type fakeCarrierRepo fakeUoW

func (r *fakeCarrierRepo) Add(_ context.Context, aggregate *carrier.Carrier) error {
	key := aggregate.Authority().String()
	if _, ok := r.carriers[key]; ok {
		return carrier.ErrAlreadyRegistered
	}
	r.carriers[key] = aggregate
	return nil
}

func (r *fakeCarrierRepo) Update(_ context.Context, aggregate *carrier.Carrier) error {
	r.carriers[aggregate.Authority().String()] = aggregate
	return nil
}

func (r *fakeCarrierRepo) Get(_ context.Context, authority kernel.UUID) (*carrier.Carrier, error) {
	aggregate, ok := r.carriers[authority.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("carrier", authority)
	}
	return aggregate, nil
}

type fakeParcelRepo fakeUoW

func (r *fakeParcelRepo) Add(_ context.Context, aggregate *parcel.Parcel) error {
	key := aggregate.ID().String()
	if _, ok := r.parcels[key]; ok {
		return fmt.Errorf("parcel %s already exists", key)
	}
	r.parcels[key] = aggregate
	return nil
}

func (r *fakeParcelRepo) Update(_ context.Context, aggregate *parcel.Parcel) error {
	r.parcels[aggregate.ID().String()] = aggregate
	return nil
}

func (r *fakeParcelRepo) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	aggregate, ok := r.parcels[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcel", id)
	}
	return aggregate, nil
}

type fakeEscrowRepo fakeUoW

func (r *fakeEscrowRepo) Add(_ context.Context, aggregate *escrow.Escrow) error {
	key := aggregate.ParcelID().String()
	if _, ok := r.escrows[key]; ok {
		return escrow.ErrAlreadyExists
	}
	r.escrows[key] = aggregate
	return nil
}

func (r *fakeEscrowRepo) Update(_ context.Context, aggregate *escrow.Escrow) error {
	r.escrows[aggregate.ParcelID().String()] = aggregate
	return nil
}

func (r *fakeEscrowRepo) GetByParcelID(_ context.Context, parcelID kernel.UUID) (*escrow.Escrow, error) {
	aggregate, ok := r.escrows[parcelID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("escrow", parcelID)
	}
	return aggregate, nil
}

type fakeLedger fakeUoW

func (l *fakeLedger) Debit(_ context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error {
	key := (*fakeUoW)(l).balanceKey(account, asset)
	if l.balances[key] < amount {
		return ports.ErrInsufficientBalance
	}
	l.balances[key] -= amount
	return nil
}

func (l *fakeLedger) Credit(_ context.Context, account kernel.CustodyAccount, asset platform.AssetType, amount uint64) error {
	l.balances[(*fakeUoW)(l).balanceKey(account, asset)] += amount
	return nil
}

func (l *fakeLedger) Balance(_ context.Context, account kernel.CustodyAccount, asset platform.AssetType) (uint64, error) {
	return l.balances[(*fakeUoW)(l).balanceKey(account, asset)], nil
}

// Factory views over a shared fakeUoW.

func (f *fakeUoW) platformFactory() commands.PlatformUoWFactory {
	return platformUoWFactoryFunc(func() commands.PlatformUoW { return f })
}

func (f *fakeUoW) carrierFactory() commands.CarrierUoWFactory {
	return carrierUoWFactoryFunc(func() commands.CarrierUoW { return f })
}

func (f *fakeUoW) parcelFactory() commands.ParcelUoWFactory {
	return parcelUoWFactoryFunc(func() commands.ParcelUoW { return f })
}

func (f *fakeUoW) escrowFactory() commands.EscrowUoWFactory {
	return escrowUoWFactoryFunc(func() commands.EscrowUoW { return f })
}

func (f *fakeUoW) fundingFactory() commands.FundingUoWFactory {
	return fundingUoWFactoryFunc(func() commands.FundingUoW { return f })
}

func (f *fakeUoW) fullFactory() commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return f })
}
