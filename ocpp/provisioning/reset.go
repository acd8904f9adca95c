package provisioning

import "evstation/types"

const ResetFeatureName = "Reset"

type ResetType string

const (
	ResetTypeImmediate ResetType = "Immediate"
	ResetTypeOnIdle    ResetType = "OnIdle"
)

type ResetStatus string

const (
	ResetStatusAccepted  ResetStatus = "Accepted"
	ResetStatusRejected  ResetStatus = "Rejected"
	ResetStatusScheduled ResetStatus = "Scheduled"
)

type ResetRequest struct {
	Type   ResetType `json:"type" validate:"required,resetType"`
	EvseId *int      `json:"evseId,omitempty" validate:"omitempty,gte=0"`
}

type ResetResponse struct {
	Status     ResetStatus       `json:"status" validate:"required,resetStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

func NewResetResponse(status ResetStatus) *ResetResponse {
	return &ResetResponse{Status: status}
}

func (r *ResetRequest) GetFeatureName() string {
	return ResetFeatureName
}

func (r *ResetResponse) GetFeatureName() string {
	return ResetFeatureName
}
