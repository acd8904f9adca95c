package availability

import "evstation/types"

const StatusNotificationFeatureName = "StatusNotification"

type StatusNotificationRequest struct {
	Timestamp       *types.DateTime       `json:"timestamp" validate:"required"`
	ConnectorStatus types.ConnectorStatus `json:"connectorStatus" validate:"required,connectorStatus"`
	EvseId          int                   `json:"evseId" validate:"gte=0"`
	ConnectorId     int                   `json:"connectorId" validate:"gte=0"`
}

type StatusNotificationResponse struct {
}

func NewStatusNotificationRequest(timestamp *types.DateTime, status types.ConnectorStatus, evseId, connectorId int) *StatusNotificationRequest {
	return &StatusNotificationRequest{Timestamp: timestamp, ConnectorStatus: status, EvseId: evseId, ConnectorId: connectorId}
}

func (r *StatusNotificationRequest) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func (r *StatusNotificationResponse) GetFeatureName() string {
	return StatusNotificationFeatureName
}
