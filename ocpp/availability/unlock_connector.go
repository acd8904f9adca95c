package availability

import "evstation/types"

const UnlockConnectorFeatureName = "UnlockConnector"

type UnlockStatus string

const (
	UnlockStatusUnlocked           UnlockStatus = "Unlocked"
	UnlockStatusUnlockFailed       UnlockStatus = "UnlockFailed"
	UnlockStatusOngoingTransaction UnlockStatus = "OngoingAuthorizedTransaction"
	UnlockStatusUnknownConnector   UnlockStatus = "UnknownConnector"
)

type UnlockConnectorRequest struct {
	EvseId      int `json:"evseId" validate:"gte=0"`
	ConnectorId int `json:"connectorId" validate:"gte=0"`
}

type UnlockConnectorResponse struct {
	Status     UnlockStatus      `json:"status" validate:"required,unlockStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

func NewUnlockConnectorResponse(status UnlockStatus) *UnlockConnectorResponse {
	return &UnlockConnectorResponse{Status: status}
}

func (r *UnlockConnectorRequest) GetFeatureName() string {
	return UnlockConnectorFeatureName
}

func (r *UnlockConnectorResponse) GetFeatureName() string {
	return UnlockConnectorFeatureName
}
