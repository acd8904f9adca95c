package security

import "evstation/types"

const SecurityEventNotificationFeatureName = "SecurityEventNotification"

// Standard security event types raised by the station itself.
const (
	SecurityEventInvalidMessages        = "InvalidMessages"
	SecurityEventAttemptedReplayAttacks = "AttemptedReplayAttacks"
	SecurityEventSettingSystemTime      = "SettingSystemTime"
	SecurityEventStartupOfTheDevice     = "StartupOfTheDevice"
)

type SecurityEventNotificationRequest struct {
	Type      string          `json:"type" validate:"required,max=50"`
	Timestamp *types.DateTime `json:"timestamp" validate:"required"`
	TechInfo  string          `json:"techInfo,omitempty" validate:"omitempty,max=255"`
}

type SecurityEventNotificationResponse struct {
}

func NewSecurityEventNotificationRequest(eventType string, timestamp *types.DateTime) *SecurityEventNotificationRequest {
	return &SecurityEventNotificationRequest{Type: eventType, Timestamp: timestamp}
}

func (r *SecurityEventNotificationRequest) GetFeatureName() string {
	return SecurityEventNotificationFeatureName
}

func (r *SecurityEventNotificationResponse) GetFeatureName() string {
	return SecurityEventNotificationFeatureName
}
