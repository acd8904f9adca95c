package diagnostics

import "evstation/types"

const NotifyEventFeatureName = "NotifyEvent"

type EventTrigger string

const (
	EventTriggerAlerting EventTrigger = "Alerting"
	EventTriggerDelta    EventTrigger = "Delta"
	EventTriggerPeriodic EventTrigger = "Periodic"
)

type EventData struct {
	EventId              int             `json:"eventId" validate:"gte=0"`
	Timestamp            *types.DateTime `json:"timestamp" validate:"required"`
	Trigger              EventTrigger    `json:"trigger" validate:"required,eventTrigger"`
	Cause                *int            `json:"cause,omitempty"`
	ActualValue          string          `json:"actualValue" validate:"required,max=2500"`
	TechCode             string          `json:"techCode,omitempty" validate:"omitempty,max=50"`
	TechInfo             string          `json:"techInfo,omitempty" validate:"omitempty,max=500"`
	Cleared              bool            `json:"cleared,omitempty"`
	TransactionId        string          `json:"transactionId,omitempty" validate:"omitempty,max=36"`
	VariableMonitoringId *int            `json:"variableMonitoringId,omitempty"`
	Component            types.Component `json:"component" validate:"required"`
	Variable             types.Variable  `json:"variable" validate:"required"`
}

type NotifyEventRequest struct {
	GeneratedAt *types.DateTime `json:"generatedAt" validate:"required"`
	Tbc         bool            `json:"tbc,omitempty"`
	SeqNo       int             `json:"seqNo" validate:"gte=0"`
	EventData   []EventData     `json:"eventData" validate:"required,min=1,dive"`
}

type NotifyEventResponse struct {
}

func (r *NotifyEventRequest) GetFeatureName() string {
	return NotifyEventFeatureName
}

func (r *NotifyEventResponse) GetFeatureName() string {
	return NotifyEventFeatureName
}
