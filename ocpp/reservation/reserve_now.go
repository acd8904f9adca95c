package reservation

import "evstation/types"

const ReserveNowFeatureName = "ReserveNow"

type ReserveNowStatus string

const (
	ReserveNowStatusAccepted    ReserveNowStatus = "Accepted"
	ReserveNowStatusFaulted     ReserveNowStatus = "Faulted"
	ReserveNowStatusOccupied    ReserveNowStatus = "Occupied"
	ReserveNowStatusRejected    ReserveNowStatus = "Rejected"
	ReserveNowStatusUnavailable ReserveNowStatus = "Unavailable"
)

type ReserveNowRequest struct {
	Id             int             `json:"id" validate:"gte=0"`
	ExpiryDateTime *types.DateTime `json:"expiryDateTime" validate:"required"`
	ConnectorType  string          `json:"connectorType,omitempty" validate:"omitempty,max=50"`
	EvseId         *int            `json:"evseId,omitempty" validate:"omitempty,gte=0"`
	IdToken        types.IdToken   `json:"idToken" validate:"required"`
	GroupIdToken   *types.IdToken  `json:"groupIdToken,omitempty"`
}

type ReserveNowResponse struct {
	Status     ReserveNowStatus  `json:"status" validate:"required,reserveNowStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

func NewReserveNowResponse(status ReserveNowStatus) *ReserveNowResponse {
	return &ReserveNowResponse{Status: status}
}

func (r *ReserveNowRequest) GetFeatureName() string {
	return ReserveNowFeatureName
}

func (r *ReserveNowResponse) GetFeatureName() string {
	return ReserveNowFeatureName
}
