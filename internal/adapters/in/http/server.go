// Package http exposes the delivery ledger over a REST API built on
// labstack/echo. Request bodies carry raw identifiers and amounts; the
// handlers build commands and queries and translate domain errors into HTTP
// status codes.
package http

import (
	"errors"
	"net/http"

	"parcelchain/internal/core/application/usecases/commands"
	"parcelchain/internal/core/application/usecases/queries"
	"parcelchain/internal/core/domain/model/carrier"
	"parcelchain/internal/core/domain/model/escrow"
	"parcelchain/internal/core/domain/model/kernel"
	"parcelchain/internal/core/domain/model/parcel"
	"parcelchain/internal/core/domain/model/platform"
	"parcelchain/internal/core/ports"
	"parcelchain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	initializePlatformHandler   commands.InitializePlatformCommandHandler
	updatePlatformPolicyHandler commands.UpdatePlatformPolicyCommandHandler
	createCarrierHandler        commands.CreateCarrierCommandHandler
	registerParcelHandler       commands.RegisterParcelCommandHandler
	acceptDeliveryHandler       commands.AcceptDeliveryCommandHandler
	createEscrowHandler         commands.CreateEscrowCommandHandler
	fundEscrowHandler           commands.FundEscrowCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler

	// Query handlers
	getParcelHandler             queries.GetParcelQueryHandler
	getUndeliveredParcelsHandler queries.GetUndeliveredParcelsQueryHandler
	getAllCarriersHandler        queries.GetAllCarriersQueryHandler
	getCustodyAuditHandler       queries.GetCustodyAuditQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	initializePlatformHandler commands.InitializePlatformCommandHandler,
	updatePlatformPolicyHandler commands.UpdatePlatformPolicyCommandHandler,
	createCarrierHandler commands.CreateCarrierCommandHandler,
	registerParcelHandler commands.RegisterParcelCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	createEscrowHandler commands.CreateEscrowCommandHandler,
	fundEscrowHandler commands.FundEscrowCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getUndeliveredParcelsHandler queries.GetUndeliveredParcelsQueryHandler,
	getAllCarriersHandler queries.GetAllCarriersQueryHandler,
	getCustodyAuditHandler queries.GetCustodyAuditQueryHandler,
) *Server {
	return &Server{
		initializePlatformHandler:    initializePlatformHandler,
		updatePlatformPolicyHandler:  updatePlatformPolicyHandler,
		createCarrierHandler:         createCarrierHandler,
		registerParcelHandler:        registerParcelHandler,
		acceptDeliveryHandler:        acceptDeliveryHandler,
		createEscrowHandler:          createEscrowHandler,
		fundEscrowHandler:            fundEscrowHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		getParcelHandler:             getParcelHandler,
		getUndeliveredParcelsHandler: getUndeliveredParcelsHandler,
		getAllCarriersHandler:        getAllCarriersHandler,
		getCustodyAuditHandler:       getCustodyAuditHandler,
	}
}

// RegisterRoutes wires all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/platform", s.InitializePlatform)
	v1.PUT("/platform/policy", s.UpdatePlatformPolicy)

	v1.POST("/carriers", s.CreateCarrier)
	v1.GET("/carriers", s.GetCarriers)

	v1.POST("/parcels", s.RegisterParcel)
	v1.GET("/parcels/undelivered", s.GetUndeliveredParcels)
	v1.GET("/parcels/:parcelID", s.GetParcel)
	v1.POST("/parcels/:parcelID/accept", s.AcceptDelivery)
	v1.POST("/parcels/:parcelID/complete", s.CompleteDelivery)
	v1.POST("/parcels/:parcelID/escrow", s.CreateEscrow)
	v1.POST("/parcels/:parcelID/escrow/fund", s.FundEscrow)

	v1.GET("/audit/custody", s.GetCustodyAudit)
}

// InitializePlatform handles POST /api/v1/platform.
func (s *Server) InitializePlatform(ctx echo.Context) error {
	var req InitializePlatformRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.UUIDFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}

	cmd, err := commands.NewInitializePlatformCommand(authority, req.DefaultAssetType)
	if err != nil {
		return badRequest(ctx, "Invalid platform data: "+err.Error())
	}

	if err := s.initializePlatformHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdatePlatformPolicy handles PUT /api/v1/platform/policy.
func (s *Server) UpdatePlatformPolicy(ctx echo.Context) error {
	var req UpdatePlatformPolicyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	signer, err := kernel.UUIDFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}

	cmd, err := commands.NewUpdatePlatformPolicyCommand(
		signer, req.FeeRate, req.ReputationIncrement, req.ClampReputation, req.AllowAssetType)
	if err != nil {
		return badRequest(ctx, "Invalid policy data: "+err.Error())
	}

	if err := s.updatePlatformPolicyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateCarrier handles POST /api/v1/carriers.
func (s *Server) CreateCarrier(ctx echo.Context) error {
	var req CreateCarrierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.UUIDFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}

	cmd, err := commands.NewCreateCarrierCommand(authority, req.InitialReputation)
	if err != nil {
		return badRequest(ctx, "Invalid carrier data: "+err.Error())
	}

	if err := s.createCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCarriers handles GET /api/v1/carriers.
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetAllCarriersQuery()

	carriers, err := s.getAllCarriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]Carrier, len(carriers))
	for i, c := range carriers {
		response[i] = Carrier{
			Authority:           c.Authority.String(),
			Reputation:          c.Reputation,
			CompletedDeliveries: c.CompletedDeliveries,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterParcel handles POST /api/v1/parcels.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var req RegisterParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID := kernel.NewUUID()
	if req.ID != "" {
		var err error
		if parcelID, err = kernel.UUIDFromString(req.ID); err != nil {
			return badRequest(ctx, "Invalid parcel id: "+err.Error())
		}
	}

	sender, err := kernel.UUIDFromString(req.Sender)
	if err != nil {
		return badRequest(ctx, "Invalid sender: "+err.Error())
	}

	recipient, err := kernel.UUIDFromString(req.Recipient)
	if err != nil {
		return badRequest(ctx, "Invalid recipient: "+err.Error())
	}

	dimensions, err := parcel.NewDimensions(req.Dimensions.Length, req.Dimensions.Width, req.Dimensions.Height)
	if err != nil {
		return badRequest(ctx, "Invalid dimensions: "+err.Error())
	}

	cmd, err := commands.NewRegisterParcelCommand(
		parcelID, sender, recipient, req.Description, dimensions, req.Weight, req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if err := s.registerParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterParcelResponse{ID: parcelID.String()})
}

// GetParcel handles GET /api/v1/parcels/:parcelID.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	p, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := Parcel{
		ID:          p.ID.String(),
		Sender:      p.Sender.String(),
		Recipient:   p.Recipient.String(),
		Description: p.Description,
		Weight:      p.Weight,
		Price:       p.Price,
		Status:      p.Status,
	}
	if p.CarrierID != nil {
		carrierID := p.CarrierID.String()
		response.CarrierID = &carrierID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUndeliveredParcels handles GET /api/v1/parcels/undelivered.
func (s *Server) GetUndeliveredParcels(ctx echo.Context) error {
	query := queries.NewGetUndeliveredParcelsQuery()

	parcels, err := s.getUndeliveredParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]UndeliveredParcel, len(parcels))
	for i, p := range parcels {
		line := UndeliveredParcel{
			ID:     p.ID.String(),
			Sender: p.Sender.String(),
			Price:  p.Price,
			Status: p.Status,
		}
		if p.CarrierID != nil {
			carrierID := p.CarrierID.String()
			line.CarrierID = &carrierID
		}
		response[i] = line
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDelivery handles POST /api/v1/parcels/:parcelID/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req AcceptDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierAuthority, err := kernel.UUIDFromString(req.CarrierAuthority)
	if err != nil {
		return badRequest(ctx, "Invalid carrier authority: "+err.Error())
	}

	signer, err := kernel.UUIDFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}

	cmd, err := commands.NewAcceptDeliveryCommand(parcelID, carrierAuthority, signer)
	if err != nil {
		return badRequest(ctx, "Invalid acceptance data: "+err.Error())
	}

	if err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteDelivery handles POST /api/v1/parcels/:parcelID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierAuthority, err := kernel.UUIDFromString(req.CarrierAuthority)
	if err != nil {
		return badRequest(ctx, "Invalid carrier authority: "+err.Error())
	}

	signer, err := kernel.UUIDFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(parcelID, carrierAuthority, signer)
	if err != nil {
		return badRequest(ctx, "Invalid settlement data: "+err.Error())
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateEscrow handles POST /api/v1/parcels/:parcelID/escrow.
func (s *Server) CreateEscrow(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req CreateEscrowRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	signer, err := kernel.UUIDFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}

	cmd, err := commands.NewCreateEscrowCommand(parcelID, signer)
	if err != nil {
		return badRequest(ctx, "Invalid escrow data: "+err.Error())
	}

	if err := s.createEscrowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// FundEscrow handles POST /api/v1/parcels/:parcelID/escrow/fund.
func (s *Server) FundEscrow(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelID"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id: "+err.Error())
	}

	var req FundEscrowRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	signer, err := kernel.UUIDFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}

	cmd, err := commands.NewFundEscrowCommand(parcelID, signer, req.Amount, req.AssetType)
	if err != nil {
		return badRequest(ctx, "Invalid funding data: "+err.Error())
	}

	if err := s.fundEscrowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCustodyAudit handles GET /api/v1/audit/custody.
func (s *Server) GetCustodyAudit(ctx echo.Context) error {
	query := queries.NewGetCustodyAuditQuery()

	lines, err := s.getCustodyAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]CustodyAuditLine, len(lines))
	for i, line := range lines {
		response[i] = CustodyAuditLine{
			AssetType:    line.AssetType,
			EscrowTotal:  line.EscrowTotal,
			VaultBalance: line.VaultBalance,
			Balanced:     line.Balanced(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps an application or domain error to its HTTP status.
func domainError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, commands.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, platform.ErrAlreadyInitialized),
		errors.Is(err, carrier.ErrAlreadyRegistered),
		errors.Is(err, escrow.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, parcel.ErrInvalidStatus),
		errors.Is(err, escrow.ErrInvalidEscrowAccount),
		errors.Is(err, carrier.ErrInsufficientReputation),
		errors.Is(err, ports.ErrInsufficientBalance),
		errors.Is(err, escrow.ErrInsufficientEscrowBalance):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, platform.ErrInvalidFeeRate),
		errors.Is(err, platform.ErrAssetNotAllowed),
		errors.Is(err, escrow.ErrInvalidAmount),
		errors.Is(err, parcel.ErrInvalidPrice),
		errors.Is(err, parcel.ErrInvalidDimensions),
		errors.Is(err, carrier.ErrInvalidReputation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
