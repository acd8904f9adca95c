package types

const SubProtocol21 = "ocpp2.1"

// GenericStatus Result of a requested operation.
type GenericStatus string

const (
	GenericStatusAccepted GenericStatus = "Accepted"
	GenericStatusRejected GenericStatus = "Rejected"
)

type GenericDeviceModelStatus string

const (
	GenericDeviceModelStatusAccepted       GenericDeviceModelStatus = "Accepted"
	GenericDeviceModelStatusRejected       GenericDeviceModelStatus = "Rejected"
	GenericDeviceModelStatusNotSupported   GenericDeviceModelStatus = "NotSupported"
	GenericDeviceModelStatusEmptyResultSet GenericDeviceModelStatus = "EmptyResultSet"
)

// StatusInfo Element providing more information about a returned status.
type StatusInfo struct {
	ReasonCode     string `json:"reasonCode" validate:"required,max=20"`
	AdditionalInfo string `json:"additionalInfo,omitempty" validate:"omitempty,max=512"`
}

func NewStatusInfo(reasonCode, additionalInfo string) *StatusInfo {
	return &StatusInfo{ReasonCode: reasonCode, AdditionalInfo: additionalInfo}
}

// EVSE Electric Vehicle Supply Equipment reference.
type EVSE struct {
	Id          int  `json:"id" validate:"gte=0"`
	ConnectorId *int `json:"connectorId,omitempty" validate:"omitempty,gte=0"`
}

func NewEVSE(id int) *EVSE {
	return &EVSE{Id: id}
}

type IdTokenType string

const (
	IdTokenTypeCentral         IdTokenType = "Central"
	IdTokenTypeEMAID           IdTokenType = "eMAID"
	IdTokenTypeISO14443        IdTokenType = "ISO14443"
	IdTokenTypeISO15693        IdTokenType = "ISO15693"
	IdTokenTypeKeyCode         IdTokenType = "KeyCode"
	IdTokenTypeLocal           IdTokenType = "Local"
	IdTokenTypeMacAddress      IdTokenType = "MacAddress"
	IdTokenTypeNoAuthorization IdTokenType = "NoAuthorization"
)

type IdToken struct {
	IdToken string      `json:"idToken" validate:"required,max=36"`
	Type    IdTokenType `json:"type" validate:"required,idTokenType"`
}

type AuthorizationStatus string

const (
	AuthorizationStatusAccepted AuthorizationStatus = "Accepted"
	AuthorizationStatusBlocked  AuthorizationStatus = "Blocked"
	AuthorizationStatusExpired  AuthorizationStatus = "Expired"
	AuthorizationStatusInvalid  AuthorizationStatus = "Invalid"
	AuthorizationStatusUnknown  AuthorizationStatus = "Unknown"
)

type IdTokenInfo struct {
	Status       AuthorizationStatus `json:"status" validate:"required,authorizationStatus"`
	CacheExpiry  *DateTime           `json:"cacheExpiryDateTime,omitempty"`
	GroupIdToken *IdToken            `json:"groupIdToken,omitempty"`
}

func NewIdTokenInfo(status AuthorizationStatus) *IdTokenInfo {
	return &IdTokenInfo{Status: status}
}

type ConnectorStatus string

const (
	ConnectorStatusAvailable   ConnectorStatus = "Available"
	ConnectorStatusOccupied    ConnectorStatus = "Occupied"
	ConnectorStatusReserved    ConnectorStatus = "Reserved"
	ConnectorStatusUnavailable ConnectorStatus = "Unavailable"
	ConnectorStatusFaulted     ConnectorStatus = "Faulted"
)

type OperationalStatus string

const (
	OperationalStatusInoperative OperationalStatus = "Inoperative"
	OperationalStatusOperative   OperationalStatus = "Operative"
)

type ChargingState string

const (
	ChargingStateCharging      ChargingState = "Charging"
	ChargingStateEVConnected   ChargingState = "EVConnected"
	ChargingStateSuspendedEV   ChargingState = "SuspendedEV"
	ChargingStateSuspendedEVSE ChargingState = "SuspendedEVSE"
	ChargingStateIdle          ChargingState = "Idle"
)

type Reason string

const (
	ReasonDeAuthorized   Reason = "DeAuthorized"
	ReasonEVDisconnected Reason = "EVDisconnected"
	ReasonLocal          Reason = "Local"
	ReasonRemote         Reason = "Remote"
	ReasonStoppedByEV    Reason = "StoppedByEV"
	ReasonOther          Reason = "Other"
)

type ReadingContext string
type Measurand string
type UnitOfMeasure string

const (
	ReadingContextTransactionBegin ReadingContext = "Transaction.Begin"
	ReadingContextTransactionEnd   ReadingContext = "Transaction.End"
	ReadingContextSamplePeriodic   ReadingContext = "Sample.Periodic"
	ReadingContextTrigger          ReadingContext = "Trigger"

	MeasurandEnergyActiveImportRegister Measurand = "Energy.Active.Import.Register"
	MeasurandPowerActiveImport          Measurand = "Power.Active.Import"
	MeasurandSoC                        Measurand = "SoC"

	UnitOfMeasureWh UnitOfMeasure = "Wh"
	UnitOfMeasureW  UnitOfMeasure = "W"
)

type SampledValue struct {
	Value     float64        `json:"value"`
	Context   ReadingContext `json:"context,omitempty" validate:"omitempty,readingContext"`
	Measurand Measurand      `json:"measurand,omitempty" validate:"omitempty,measurand"`
	Unit      UnitOfMeasure  `json:"unitOfMeasure,omitempty"`
}

type MeterValue struct {
	Timestamp    *DateTime      `json:"timestamp" validate:"required"`
	SampledValue []SampledValue `json:"sampledValue" validate:"required,min=1,dive"`
}

// Charging profiles

type ChargingProfilePurposeType string
type ChargingProfileKindType string
type ChargingRateUnitType string

const (
	ChargingProfilePurposeChargingStationMaxProfile ChargingProfilePurposeType = "ChargingStationMaxProfile"
	ChargingProfilePurposeTxDefaultProfile          ChargingProfilePurposeType = "TxDefaultProfile"
	ChargingProfilePurposeTxProfile                 ChargingProfilePurposeType = "TxProfile"
	ChargingProfileKindAbsolute                     ChargingProfileKindType    = "Absolute"
	ChargingProfileKindRecurring                    ChargingProfileKindType    = "Recurring"
	ChargingProfileKindRelative                     ChargingProfileKindType    = "Relative"
	ChargingRateUnitWatts                           ChargingRateUnitType       = "W"
	ChargingRateUnitAmperes                         ChargingRateUnitType       = "A"
)

type ChargingSchedulePeriod struct {
	StartPeriod  int     `json:"startPeriod" validate:"gte=0"`
	Limit        float64 `json:"limit" validate:"gte=0"`
	NumberPhases *int    `json:"numberPhases,omitempty" validate:"omitempty,gte=0"`
}

type ChargingSchedule struct {
	Id                     int                      `json:"id"`
	Duration               *int                     `json:"duration,omitempty" validate:"omitempty,gte=0"`
	StartSchedule          *DateTime                `json:"startSchedule,omitempty"`
	ChargingRateUnit       ChargingRateUnitType     `json:"chargingRateUnit" validate:"required,chargingRateUnit"`
	ChargingSchedulePeriod []ChargingSchedulePeriod `json:"chargingSchedulePeriod" validate:"required,min=1"`
	MinChargingRate        *float64                 `json:"minChargingRate,omitempty" validate:"omitempty,gte=0"`
}

type ChargingProfile struct {
	Id                     int                        `json:"id"`
	StackLevel             int                        `json:"stackLevel" validate:"gte=0"`
	ChargingProfilePurpose ChargingProfilePurposeType `json:"chargingProfilePurpose" validate:"required,chargingProfilePurpose"`
	ChargingProfileKind    ChargingProfileKindType    `json:"chargingProfileKind" validate:"required,chargingProfileKind"`
	TransactionId          string                     `json:"transactionId,omitempty" validate:"omitempty,max=36"`
	ValidFrom              *DateTime                  `json:"validFrom,omitempty"`
	ValidTo                *DateTime                  `json:"validTo,omitempty"`
	ChargingSchedule       []ChargingSchedule         `json:"chargingSchedule" validate:"required,min=1,dive"`
}

// Display messages

type MessagePriority string
type MessageState string
type MessageFormat string

const (
	MessagePriorityAlwaysFront MessagePriority = "AlwaysFront"
	MessagePriorityInFront     MessagePriority = "InFront"
	MessagePriorityNormalCycle MessagePriority = "NormalCycle"

	MessageStateCharging    MessageState = "Charging"
	MessageStateFaulted     MessageState = "Faulted"
	MessageStateIdle        MessageState = "Idle"
	MessageStateUnavailable MessageState = "Unavailable"

	MessageFormatASCII MessageFormat = "ASCII"
	MessageFormatHTML  MessageFormat = "HTML"
	MessageFormatURI   MessageFormat = "URI"
	MessageFormatUTF8  MessageFormat = "UTF8"
)

type MessageContent struct {
	Format   MessageFormat `json:"format" validate:"required,messageFormat"`
	Language string        `json:"language,omitempty" validate:"omitempty,max=8"`
	Content  string        `json:"content" validate:"required,max=512"`
}

type MessageInfo struct {
	Id            int             `json:"id" validate:"gte=0"`
	Priority      MessagePriority `json:"priority" validate:"required,messagePriority"`
	State         MessageState    `json:"state,omitempty" validate:"omitempty,messageState"`
	StartDateTime *DateTime       `json:"startDateTime,omitempty"`
	EndDateTime   *DateTime       `json:"endDateTime,omitempty"`
	TransactionId string          `json:"transactionId,omitempty" validate:"omitempty,max=36"`
	Message       MessageContent  `json:"message" validate:"required"`
}

// Certificates

type CertificateUse string

const (
	CertificateUseV2GRootCertificate          CertificateUse = "V2GRootCertificate"
	CertificateUseMORootCertificate           CertificateUse = "MORootCertificate"
	CertificateUseCSMSRootCertificate         CertificateUse = "CSMSRootCertificate"
	CertificateUseManufacturerRootCertificate CertificateUse = "ManufacturerRootCertificate"
	CertificateUseOEMRootCertificate          CertificateUse = "OEMRootCertificate"
)

type CertificateHashData struct {
	HashAlgorithm  string `json:"hashAlgorithm" validate:"required"`
	IssuerNameHash string `json:"issuerNameHash" validate:"required,max=128"`
	IssuerKeyHash  string `json:"issuerKeyHash" validate:"required,max=128"`
	SerialNumber   string `json:"serialNumber" validate:"required,max=40"`
}

// Device model addressing

type Component struct {
	Name     string `json:"name" validate:"required,max=50"`
	Instance string `json:"instance,omitempty" validate:"omitempty,max=50"`
	EVSE     *EVSE  `json:"evse,omitempty"`
}

type Variable struct {
	Name     string `json:"name" validate:"required,max=50"`
	Instance string `json:"instance,omitempty" validate:"omitempty,max=50"`
}

// Tariffs

type TariffSignature struct {
	KeyId string `json:"keyId" validate:"required,max=50"`
	Value string `json:"value" validate:"required"`
}

type Tariff struct {
	TariffId    string            `json:"tariffId" validate:"required,max=36"`
	Currency    string            `json:"currency" validate:"required,max=3"`
	Description *MessageContent   `json:"description,omitempty"`
	Signatures  []TariffSignature `json:"signatures,omitempty" validate:"omitempty,dive"`
}
