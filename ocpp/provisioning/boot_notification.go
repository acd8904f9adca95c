package provisioning

import "evstation/types"

const BootNotificationFeatureName = "BootNotification"

type BootReason string

const (
	BootReasonApplicationReset BootReason = "ApplicationReset"
	BootReasonFirmwareUpdate   BootReason = "FirmwareUpdate"
	BootReasonPowerUp          BootReason = "PowerUp"
	BootReasonRemoteReset      BootReason = "RemoteReset"
	BootReasonTriggered        BootReason = "Triggered"
)

// RegistrationStatus Result of registration in response to a BootNotification request.
type RegistrationStatus string

const (
	RegistrationStatusAccepted RegistrationStatus = "Accepted"
	RegistrationStatusPending  RegistrationStatus = "Pending"
	RegistrationStatusRejected RegistrationStatus = "Rejected"
)

type ChargingStationType struct {
	Model           string `json:"model" validate:"required,max=20"`
	VendorName      string `json:"vendorName" validate:"required,max=50"`
	SerialNumber    string `json:"serialNumber,omitempty" validate:"omitempty,max=25"`
	FirmwareVersion string `json:"firmwareVersion,omitempty" validate:"omitempty,max=50"`
}

type BootNotificationRequest struct {
	Reason          BootReason          `json:"reason" validate:"required,bootReason"`
	ChargingStation ChargingStationType `json:"chargingStation" validate:"required"`
}

type BootNotificationResponse struct {
	CurrentTime *types.DateTime    `json:"currentTime" validate:"required"`
	Interval    int                `json:"interval"`
	Status      RegistrationStatus `json:"status" validate:"required,registrationStatus"`
	StatusInfo  *types.StatusInfo  `json:"statusInfo,omitempty"`
}

func NewBootNotificationRequest(reason BootReason, station ChargingStationType) *BootNotificationRequest {
	return &BootNotificationRequest{Reason: reason, ChargingStation: station}
}

func (r *BootNotificationRequest) GetFeatureName() string {
	return BootNotificationFeatureName
}

func (r *BootNotificationResponse) GetFeatureName() string {
	return BootNotificationFeatureName
}
