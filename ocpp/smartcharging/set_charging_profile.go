package smartcharging

import "evstation/types"

const SetChargingProfileFeatureName = "SetChargingProfile"

type ChargingProfileStatus string

const (
	ChargingProfileStatusAccepted ChargingProfileStatus = "Accepted"
	ChargingProfileStatusRejected ChargingProfileStatus = "Rejected"
)

type SetChargingProfileRequest struct {
	EvseId          int                   `json:"evseId" validate:"gte=0"`
	ChargingProfile types.ChargingProfile `json:"chargingProfile" validate:"required"`
}

type SetChargingProfileResponse struct {
	Status     ChargingProfileStatus `json:"status" validate:"required,chargingProfileStatus"`
	StatusInfo *types.StatusInfo     `json:"statusInfo,omitempty"`
}

func NewSetChargingProfileResponse(status ChargingProfileStatus) *SetChargingProfileResponse {
	return &SetChargingProfileResponse{Status: status}
}

func (r *SetChargingProfileRequest) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

func (r *SetChargingProfileResponse) GetFeatureName() string {
	return SetChargingProfileFeatureName
}
