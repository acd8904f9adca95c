package availability

import "evstation/types"

const TriggerMessageFeatureName = "TriggerMessage"

type MessageTrigger string

const (
	MessageTriggerBootNotification                  MessageTrigger = "BootNotification"
	MessageTriggerLogStatusNotification             MessageTrigger = "LogStatusNotification"
	MessageTriggerDiagnosticsStatusNotification     MessageTrigger = "DiagnosticsStatusNotification"
	MessageTriggerFirmwareStatusNotification        MessageTrigger = "FirmwareStatusNotification"
	MessageTriggerHeartbeat                         MessageTrigger = "Heartbeat"
	MessageTriggerMeterValues                       MessageTrigger = "MeterValues"
	MessageTriggerSignChargingStationCertificate    MessageTrigger = "SignChargingStationCertificate"
	MessageTriggerStatusNotification                MessageTrigger = "StatusNotification"
	MessageTriggerTransactionEvent                  MessageTrigger = "TransactionEvent"
	MessageTriggerPublishFirmwareStatusNotification MessageTrigger = "PublishFirmwareStatusNotification"
)

type TriggerMessageStatus string

const (
	TriggerMessageStatusAccepted       TriggerMessageStatus = "Accepted"
	TriggerMessageStatusRejected       TriggerMessageStatus = "Rejected"
	TriggerMessageStatusNotImplemented TriggerMessageStatus = "NotImplemented"
)

type TriggerMessageRequest struct {
	RequestedMessage MessageTrigger `json:"requestedMessage" validate:"required,messageTrigger"`
	Evse             *types.EVSE    `json:"evse,omitempty"`
}

type TriggerMessageResponse struct {
	Status     TriggerMessageStatus `json:"status" validate:"required,triggerMessageStatus"`
	StatusInfo *types.StatusInfo    `json:"statusInfo,omitempty"`
}

func NewTriggerMessageResponse(status TriggerMessageStatus) *TriggerMessageResponse {
	return &TriggerMessageResponse{Status: status}
}

func (r *TriggerMessageRequest) GetFeatureName() string {
	return TriggerMessageFeatureName
}

func (r *TriggerMessageResponse) GetFeatureName() string {
	return TriggerMessageFeatureName
}
