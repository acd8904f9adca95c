package smartcharging

import "evstation/types"

const UpdateDynamicScheduleFeatureName = "UpdateDynamicSchedule"
const PullDynamicScheduleUpdateFeatureName = "PullDynamicScheduleUpdate"
const UsePriorityChargingFeatureName = "UsePriorityCharging"
const NotifyPriorityChargingFeatureName = "NotifyPriorityCharging"
const NotifyAllowedEnergyTransferFeatureName = "NotifyAllowedEnergyTransfer"
const AFRRSignalFeatureName = "AFRRSignal"

type PriorityChargingStatus string

const (
	PriorityChargingStatusAccepted  PriorityChargingStatus = "Accepted"
	PriorityChargingStatusRejected  PriorityChargingStatus = "Rejected"
	PriorityChargingStatusNoProfile PriorityChargingStatus = "NoProfile"
)

type ScheduleUpdate struct {
	Limit          *float64 `json:"limit,omitempty"`
	LimitL2        *float64 `json:"limit_L2,omitempty"`
	LimitL3        *float64 `json:"limit_L3,omitempty"`
	DischargeLimit *float64 `json:"dischargeLimit,omitempty"`
	Setpoint       *float64 `json:"setpoint,omitempty"`
}

type UpdateDynamicScheduleRequest struct {
	ChargingProfileId int            `json:"chargingProfileId" validate:"gte=0"`
	ScheduleUpdate    ScheduleUpdate `json:"scheduleUpdate" validate:"required"`
}

type UpdateDynamicScheduleResponse struct {
	Status     ChargingProfileStatus `json:"status" validate:"required,chargingProfileStatus"`
	StatusInfo *types.StatusInfo     `json:"statusInfo,omitempty"`
}

type PullDynamicScheduleUpdateRequest struct {
	ChargingProfileId int `json:"chargingProfileId" validate:"gte=0"`
}

type PullDynamicScheduleUpdateResponse struct {
	ScheduleUpdate *ScheduleUpdate   `json:"scheduleUpdate,omitempty"`
	StatusInfo     *types.StatusInfo `json:"statusInfo,omitempty"`
}

type UsePriorityChargingRequest struct {
	TransactionId string `json:"transactionId" validate:"required,max=36"`
	Activate      bool   `json:"activate"`
}

type UsePriorityChargingResponse struct {
	Status     PriorityChargingStatus `json:"status" validate:"required,priorityChargingStatus"`
	StatusInfo *types.StatusInfo      `json:"statusInfo,omitempty"`
}

type NotifyPriorityChargingRequest struct {
	TransactionId string `json:"transactionId" validate:"required,max=36"`
	Activated     bool   `json:"activated"`
}

type NotifyPriorityChargingResponse struct {
}

type NotifyAllowedEnergyTransferRequest struct {
	TransactionId         string   `json:"transactionId" validate:"required,max=36"`
	AllowedEnergyTransfer []string `json:"allowedEnergyTransfer" validate:"required,min=1"`
}

type NotifyAllowedEnergyTransferResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type AFRRSignalRequest struct {
	Timestamp *types.DateTime `json:"timestamp" validate:"required"`
	Signal    int             `json:"signal"`
}

type AFRRSignalResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

func (r *UpdateDynamicScheduleRequest) GetFeatureName() string {
	return UpdateDynamicScheduleFeatureName
}

func (r *UpdateDynamicScheduleResponse) GetFeatureName() string {
	return UpdateDynamicScheduleFeatureName
}

func (r *PullDynamicScheduleUpdateRequest) GetFeatureName() string {
	return PullDynamicScheduleUpdateFeatureName
}

func (r *PullDynamicScheduleUpdateResponse) GetFeatureName() string {
	return PullDynamicScheduleUpdateFeatureName
}

func (r *UsePriorityChargingRequest) GetFeatureName() string {
	return UsePriorityChargingFeatureName
}

func (r *UsePriorityChargingResponse) GetFeatureName() string {
	return UsePriorityChargingFeatureName
}

func (r *NotifyPriorityChargingRequest) GetFeatureName() string {
	return NotifyPriorityChargingFeatureName
}

func (r *NotifyPriorityChargingResponse) GetFeatureName() string {
	return NotifyPriorityChargingFeatureName
}

func (r *NotifyAllowedEnergyTransferRequest) GetFeatureName() string {
	return NotifyAllowedEnergyTransferFeatureName
}

func (r *NotifyAllowedEnergyTransferResponse) GetFeatureName() string {
	return NotifyAllowedEnergyTransferFeatureName
}

func (r *AFRRSignalRequest) GetFeatureName() string {
	return AFRRSignalFeatureName
}

func (r *AFRRSignalResponse) GetFeatureName() string {
	return AFRRSignalFeatureName
}
