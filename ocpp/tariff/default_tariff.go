package tariff

import "evstation/types"

const SetDefaultChargingTariffFeatureName = "SetDefaultChargingTariff"
const GetDefaultChargingTariffFeatureName = "GetDefaultChargingTariff"
const RemoveDefaultChargingTariffFeatureName = "RemoveDefaultChargingTariff"

type SetDefaultTariffStatus string

const (
	SetDefaultTariffStatusAccepted          SetDefaultTariffStatus = "Accepted"
	SetDefaultTariffStatusRejected          SetDefaultTariffStatus = "Rejected"
	SetDefaultTariffStatusInvalidSignature  SetDefaultTariffStatus = "InvalidSignature"
	SetDefaultTariffStatusDuplicateTariffId SetDefaultTariffStatus = "DuplicateTariffId"
)

type RemoveDefaultTariffStatus string

const (
	RemoveDefaultTariffStatusAccepted RemoveDefaultTariffStatus = "Accepted"
	RemoveDefaultTariffStatusRejected RemoveDefaultTariffStatus = "Rejected"
	RemoveDefaultTariffStatusNotFound RemoveDefaultTariffStatus = "NotFound"
)

type SetDefaultChargingTariffRequest struct {
	Tariff  types.Tariff `json:"tariff" validate:"required"`
	EvseIds []int        `json:"evseIds,omitempty" validate:"omitempty,dive,gt=0"`
}

type SetDefaultChargingTariffResponse struct {
	Status          SetDefaultTariffStatus   `json:"status" validate:"required,setDefaultTariffStatus"`
	StatusInfo      *types.StatusInfo        `json:"statusInfo,omitempty"`
	EvseStatusInfos map[int]EvseTariffStatus `json:"evseStatusInfos,omitempty"`
}

type EvseTariffStatus struct {
	Status     string            `json:"status"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

type GetDefaultChargingTariffRequest struct {
	EvseIds []int `json:"evseIds,omitempty" validate:"omitempty,dive,gt=0"`
}

type GetDefaultChargingTariffResponse struct {
	Status            types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo        *types.StatusInfo   `json:"statusInfo,omitempty"`
	ChargingTariffs   []types.Tariff      `json:"chargingTariffs,omitempty" validate:"omitempty,dive"`
	ChargingTariffMap map[string][]int    `json:"chargingTariffMap,omitempty"`
}

type RemoveDefaultChargingTariffRequest struct {
	TariffId string `json:"tariffId,omitempty" validate:"omitempty,max=60"`
	EvseIds  []int  `json:"evseIds,omitempty" validate:"omitempty,dive,gt=0"`
}

type RemoveDefaultChargingTariffResponse struct {
	Status          RemoveDefaultTariffStatus `json:"status" validate:"required,removeDefaultTariffStatus"`
	StatusInfo      *types.StatusInfo         `json:"statusInfo,omitempty"`
	EvseStatusInfos map[int]EvseTariffStatus  `json:"evseStatusInfos,omitempty"`
}

func (r *SetDefaultChargingTariffRequest) GetFeatureName() string {
	return SetDefaultChargingTariffFeatureName
}

func (r *SetDefaultChargingTariffResponse) GetFeatureName() string {
	return SetDefaultChargingTariffFeatureName
}

func (r *GetDefaultChargingTariffRequest) GetFeatureName() string {
	return GetDefaultChargingTariffFeatureName
}

func (r *GetDefaultChargingTariffResponse) GetFeatureName() string {
	return GetDefaultChargingTariffFeatureName
}

func (r *RemoveDefaultChargingTariffRequest) GetFeatureName() string {
	return RemoveDefaultChargingTariffFeatureName
}

func (r *RemoveDefaultChargingTariffResponse) GetFeatureName() string {
	return RemoveDefaultChargingTariffFeatureName
}
