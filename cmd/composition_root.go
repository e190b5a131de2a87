package cmd

import (
	"log/slog"

	"parcelchain/internal/adapters/out/eventlog"
	"parcelchain/internal/adapters/out/postgres"
	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/application/usecases/queries"
	"parcelchain/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateInitializePlatformCommandHandler() commands.InitializePlatformCommandHandler {
	var f commands.PlatformUoWFactory = FuncPlatformUoWFactory(func() commands.PlatformUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitializePlatformCommandHandler(f, eventlog.NewSlogPublisher(c.logger))
}

func (c *CompositionRoot) CreateUpdatePlatformPolicyCommandHandler() commands.UpdatePlatformPolicyCommandHandler {
	var f commands.PlatformUoWFactory = FuncPlatformUoWFactory(func() commands.PlatformUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePlatformPolicyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEscrowCommandHandler() commands.CreateEscrowCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEscrowCommandHandler(f)
}

func (c *CompositionRoot) CreateFundEscrowCommandHandler() commands.FundEscrowCommandHandler {
	var f commands.FundingUoWFactory = FuncFundingUoWFactory(func() commands.FundingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFundEscrowCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, services.NewDeliverySettlement())
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredParcelsQueryHandler() queries.GetUndeliveredParcelsQueryHandler {
	return queries.NewGetUndeliveredParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCarriersQueryHandler() queries.GetAllCarriersQueryHandler {
	return queries.NewGetAllCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustodyAuditQueryHandler() queries.GetCustodyAuditQueryHandler {
	return queries.NewGetCustodyAuditQueryHandler(c.gormDB)
}

type FuncPlatformUoWFactory func() commands.PlatformUoW

func (f FuncPlatformUoWFactory) Create() commands.PlatformUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type FuncFundingUoWFactory func() commands.FundingUoW

func (f FuncFundingUoWFactory) Create() commands.FundingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
