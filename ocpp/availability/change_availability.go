package availability

import "evstation/types"

const ChangeAvailabilityFeatureName = "ChangeAvailability"

type ChangeAvailabilityStatus string

const (
	ChangeAvailabilityStatusAccepted  ChangeAvailabilityStatus = "Accepted"
	ChangeAvailabilityStatusRejected  ChangeAvailabilityStatus = "Rejected"
	ChangeAvailabilityStatusScheduled ChangeAvailabilityStatus = "Scheduled"
)

type ChangeAvailabilityRequest struct {
	OperationalStatus types.OperationalStatus `json:"operationalStatus" validate:"required,operationalStatus"`
	Evse              *types.EVSE             `json:"evse,omitempty"`
}

type ChangeAvailabilityResponse struct {
	Status     ChangeAvailabilityStatus `json:"status" validate:"required,changeAvailabilityStatus"`
	StatusInfo *types.StatusInfo        `json:"statusInfo,omitempty"`
}

func NewChangeAvailabilityResponse(status ChangeAvailabilityStatus) *ChangeAvailabilityResponse {
	return &ChangeAvailabilityResponse{Status: status}
}

func (r *ChangeAvailabilityRequest) GetFeatureName() string {
	return ChangeAvailabilityFeatureName
}

func (r *ChangeAvailabilityResponse) GetFeatureName() string {
	return ChangeAvailabilityFeatureName
}
