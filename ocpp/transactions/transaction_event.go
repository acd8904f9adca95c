package transactions

import "evstation/types"

const TransactionEventFeatureName = "TransactionEvent"

type TransactionEventType string

const (
	TransactionEventStarted TransactionEventType = "Started"
	TransactionEventUpdated TransactionEventType = "Updated"
	TransactionEventEnded   TransactionEventType = "Ended"
)

type TriggerReason string

const (
	TriggerReasonAuthorized           TriggerReason = "Authorized"
	TriggerReasonCablePluggedIn       TriggerReason = "CablePluggedIn"
	TriggerReasonChargingStateChanged TriggerReason = "ChargingStateChanged"
	TriggerReasonMeterValuePeriodic   TriggerReason = "MeterValuePeriodic"
	TriggerReasonRemoteStart          TriggerReason = "RemoteStart"
	TriggerReasonRemoteStop           TriggerReason = "RemoteStop"
	TriggerReasonStopAuthorized       TriggerReason = "StopAuthorized"
	TriggerReasonTrigger              TriggerReason = "Trigger"
)

type TransactionInfo struct {
	TransactionId     string              `json:"transactionId" validate:"required,max=36"`
	ChargingState     types.ChargingState `json:"chargingState,omitempty" validate:"omitempty,chargingState"`
	TimeSpentCharging *int                `json:"timeSpentCharging,omitempty"`
	StoppedReason     types.Reason        `json:"stoppedReason,omitempty" validate:"omitempty,reason"`
	RemoteStartId     *int                `json:"remoteStartId,omitempty"`
}

type TransactionEventRequest struct {
	EventType       TransactionEventType `json:"eventType" validate:"required,transactionEventType"`
	Timestamp       *types.DateTime      `json:"timestamp" validate:"required"`
	TriggerReason   TriggerReason        `json:"triggerReason" validate:"required,triggerReason"`
	SeqNo           int                  `json:"seqNo" validate:"gte=0"`
	Offline         bool                 `json:"offline,omitempty"`
	TransactionInfo TransactionInfo      `json:"transactionInfo" validate:"required"`
	Evse            *types.EVSE          `json:"evse,omitempty"`
	IdToken         *types.IdToken       `json:"idToken,omitempty"`
	MeterValue      []types.MeterValue   `json:"meterValue,omitempty" validate:"omitempty,dive"`
}

type TransactionEventResponse struct {
	TotalCost        *float64           `json:"totalCost,omitempty"`
	ChargingPriority *int               `json:"chargingPriority,omitempty" validate:"omitempty,gte=-9,lte=9"`
	IdTokenInfo      *types.IdTokenInfo `json:"idTokenInfo,omitempty"`
}

func NewTransactionEventRequest(eventType TransactionEventType, timestamp *types.DateTime, reason TriggerReason, seqNo int, info TransactionInfo) *TransactionEventRequest {
	return &TransactionEventRequest{EventType: eventType, Timestamp: timestamp, TriggerReason: reason, SeqNo: seqNo, TransactionInfo: info}
}

func (r *TransactionEventRequest) GetFeatureName() string {
	return TransactionEventFeatureName
}

func (r *TransactionEventResponse) GetFeatureName() string {
	return TransactionEventFeatureName
}
