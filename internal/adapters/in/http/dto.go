package http

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InitializePlatformRequest is the body for POST /api/v1/platform.
type InitializePlatformRequest struct {
	Authority        string `json:"authority"`
	DefaultAssetType string `json:"default_asset_type"`
}

// UpdatePlatformPolicyRequest is the body for PUT /api/v1/platform/policy.
// An empty allow_asset_type leaves the allow-list unchanged.
type UpdatePlatformPolicyRequest struct {
	Signer              string `json:"signer"`
	FeeRate             uint16 `json:"fee_rate"`
	ReputationIncrement uint8  `json:"reputation_increment"`
	ClampReputation     bool   `json:"clamp_reputation"`
	AllowAssetType      string `json:"allow_asset_type,omitempty"`
}

// CreateCarrierRequest is the body for POST /api/v1/carriers.
type CreateCarrierRequest struct {
	Authority         string `json:"authority"`
	InitialReputation uint8  `json:"initial_reputation"`
}

// Carrier is one carrier in the GET /api/v1/carriers response.
type Carrier struct {
	Authority           string `json:"authority"`
	Reputation          uint8  `json:"reputation"`
	CompletedDeliveries uint32 `json:"completed_deliveries"`
}

// RegisterParcelRequest is the body for POST /api/v1/parcels. A missing id
// is generated server side and returned in the response.
type RegisterParcelRequest struct {
	ID          string     `json:"id,omitempty"`
	Sender      string     `json:"sender"`
	Recipient   string     `json:"recipient"`
	Description string     `json:"description"`
	Dimensions  Dimensions `json:"dimensions"`
	Weight      uint32     `json:"weight"`
	Price       uint64     `json:"price"`
}

// Dimensions holds the parcel dimensions in centimeters.
type Dimensions struct {
	Length uint32 `json:"length"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// RegisterParcelResponse returns the identifier of the registered parcel.
type RegisterParcelResponse struct {
	ID string `json:"id"`
}

// Parcel is the GET /api/v1/parcels/:parcelID response.
type Parcel struct {
	ID          string  `json:"id"`
	Sender      string  `json:"sender"`
	Recipient   string  `json:"recipient"`
	CarrierID   *string `json:"carrier_id,omitempty"`
	Description string  `json:"description"`
	Weight      uint32  `json:"weight"`
	Price       uint64  `json:"price"`
	Status      string  `json:"status"`
}

// UndeliveredParcel is one parcel in the GET /api/v1/parcels/undelivered
// response.
type UndeliveredParcel struct {
	ID        string  `json:"id"`
	Sender    string  `json:"sender"`
	CarrierID *string `json:"carrier_id,omitempty"`
	Price     uint64  `json:"price"`
	Status    string  `json:"status"`
}

// AcceptDeliveryRequest is the body for POST /api/v1/parcels/:parcelID/accept.
type AcceptDeliveryRequest struct {
	CarrierAuthority string `json:"carrier_authority"`
	Signer           string `json:"signer"`
}

// CompleteDeliveryRequest is the body for POST /api/v1/parcels/:parcelID/complete.
type CompleteDeliveryRequest struct {
	CarrierAuthority string `json:"carrier_authority"`
	Signer           string `json:"signer"`
}

// CreateEscrowRequest is the body for POST /api/v1/parcels/:parcelID/escrow.
type CreateEscrowRequest struct {
	Signer string `json:"signer"`
}

// FundEscrowRequest is the body for POST /api/v1/parcels/:parcelID/escrow/fund.
type FundEscrowRequest struct {
	Signer    string `json:"signer"`
	Amount    uint64 `json:"amount"`
	AssetType string `json:"asset_type"`
}

// CustodyAuditLine is one asset's audit row in the GET /api/v1/audit/custody
// response.
type CustodyAuditLine struct {
	AssetType    string `json:"asset_type"`
	EscrowTotal  uint64 `json:"escrow_total"`
	VaultBalance uint64 `json:"vault_balance"`
	Balanced     bool   `json:"balanced"`
}
