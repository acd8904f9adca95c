package smartcharging

import "evstation/types"

const NotifyChargingLimitFeatureName = "NotifyChargingLimit"
const ClearedChargingLimitFeatureName = "ClearedChargingLimit"
const NotifyEVChargingScheduleFeatureName = "NotifyEVChargingSchedule"
const NotifyEVChargingNeedsFeatureName = "NotifyEVChargingNeeds"

type ChargingLimitSourceType string

const (
	ChargingLimitSourceEMS   ChargingLimitSourceType = "EMS"
	ChargingLimitSourceOther ChargingLimitSourceType = "Other"
	ChargingLimitSourceSO    ChargingLimitSourceType = "SO"
	ChargingLimitSourceCSO   ChargingLimitSourceType = "CSO"
)

type EnergyTransferModeType string

const (
	EnergyTransferModeAC1Phase EnergyTransferModeType = "AC_single_phase"
	EnergyTransferModeAC2Phase EnergyTransferModeType = "AC_two_phase"
	EnergyTransferModeAC3Phase EnergyTransferModeType = "AC_three_phase"
	EnergyTransferModeDC       EnergyTransferModeType = "DC"
)

type NotifyEVChargingNeedsStatus string

const (
	NotifyEVChargingNeedsStatusAccepted   NotifyEVChargingNeedsStatus = "Accepted"
	NotifyEVChargingNeedsStatusRejected   NotifyEVChargingNeedsStatus = "Rejected"
	NotifyEVChargingNeedsStatusProcessing NotifyEVChargingNeedsStatus = "Processing"
)

type ChargingLimit struct {
	ChargingLimitSource ChargingLimitSourceType `json:"chargingLimitSource" validate:"required,chargingLimitSource"`
	IsGridCritical      *bool                   `json:"isGridCritical,omitempty"`
}

type NotifyChargingLimitRequest struct {
	EvseId        *int                     `json:"evseId,omitempty" validate:"omitempty,gt=0"`
	ChargingLimit ChargingLimit            `json:"chargingLimit" validate:"required"`
	Schedule      []types.ChargingSchedule `json:"chargingSchedule,omitempty" validate:"omitempty,dive"`
}

type NotifyChargingLimitResponse struct {
}

type ClearedChargingLimitRequest struct {
	ChargingLimitSource ChargingLimitSourceType `json:"chargingLimitSource" validate:"required,chargingLimitSource"`
	EvseId              *int                    `json:"evseId,omitempty" validate:"omitempty,gt=0"`
}

type ClearedChargingLimitResponse struct {
}

type NotifyEVChargingScheduleRequest struct {
	TimeBase         *types.DateTime        `json:"timeBase" validate:"required"`
	EvseId           int                    `json:"evseId" validate:"gt=0"`
	ChargingSchedule types.ChargingSchedule `json:"chargingSchedule" validate:"required"`
}

type NotifyEVChargingScheduleResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type ACChargingParameters struct {
	EnergyAmount float64 `json:"energyAmount"`
	EvMinCurrent float64 `json:"evMinCurrent"`
	EvMaxCurrent float64 `json:"evMaxCurrent"`
	EvMaxVoltage float64 `json:"evMaxVoltage"`
}

type DCChargingParameters struct {
	EvMaxCurrent     float64  `json:"evMaxCurrent"`
	EvMaxVoltage     float64  `json:"evMaxVoltage"`
	EnergyAmount     *float64 `json:"energyAmount,omitempty"`
	EvMaxPower       *float64 `json:"evMaxPower,omitempty"`
	StateOfCharge    *int     `json:"stateOfCharge,omitempty" validate:"omitempty,gte=0,lte=100"`
	EvEnergyCapacity *float64 `json:"evEnergyCapacity,omitempty"`
	FullSoC          *int     `json:"fullSoC,omitempty" validate:"omitempty,gte=0,lte=100"`
	BulkSoC          *int     `json:"bulkSoC,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type ChargingNeeds struct {
	RequestedEnergyTransfer EnergyTransferModeType `json:"requestedEnergyTransfer" validate:"required,energyTransferMode"`
	DepartureTime           *types.DateTime        `json:"departureTime,omitempty"`
	ACChargingParameters    *ACChargingParameters  `json:"acChargingParameters,omitempty"`
	DCChargingParameters    *DCChargingParameters  `json:"dcChargingParameters,omitempty"`
}

type NotifyEVChargingNeedsRequest struct {
	EvseId            int           `json:"evseId" validate:"gt=0"`
	MaxScheduleTuples *int          `json:"maxScheduleTuples,omitempty" validate:"omitempty,gte=0"`
	ChargingNeeds     ChargingNeeds `json:"chargingNeeds" validate:"required"`
}

type NotifyEVChargingNeedsResponse struct {
	Status     NotifyEVChargingNeedsStatus `json:"status" validate:"required,notifyEVChargingNeedsStatus"`
	StatusInfo *types.StatusInfo           `json:"statusInfo,omitempty"`
}

func (r *NotifyChargingLimitRequest) GetFeatureName() string {
	return NotifyChargingLimitFeatureName
}

func (r *NotifyChargingLimitResponse) GetFeatureName() string {
	return NotifyChargingLimitFeatureName
}

func (r *ClearedChargingLimitRequest) GetFeatureName() string {
	return ClearedChargingLimitFeatureName
}

func (r *ClearedChargingLimitResponse) GetFeatureName() string {
	return ClearedChargingLimitFeatureName
}

func (r *NotifyEVChargingScheduleRequest) GetFeatureName() string {
	return NotifyEVChargingScheduleFeatureName
}

func (r *NotifyEVChargingScheduleResponse) GetFeatureName() string {
	return NotifyEVChargingScheduleFeatureName
}

func (r *NotifyEVChargingNeedsRequest) GetFeatureName() string {
	return NotifyEVChargingNeedsFeatureName
}

func (r *NotifyEVChargingNeedsResponse) GetFeatureName() string {
	return NotifyEVChargingNeedsFeatureName
}
