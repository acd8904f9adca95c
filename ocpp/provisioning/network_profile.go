package provisioning

import "evstation/types"

const SetNetworkProfileFeatureName = "SetNetworkProfile"

type SetNetworkProfileStatus string

const (
	SetNetworkProfileStatusAccepted SetNetworkProfileStatus = "Accepted"
	SetNetworkProfileStatusRejected SetNetworkProfileStatus = "Rejected"
	SetNetworkProfileStatusFailed   SetNetworkProfileStatus = "Failed"
)

type NetworkConnectionProfile struct {
	OcppVersion     string `json:"ocppVersion" validate:"required"`
	OcppTransport   string `json:"ocppTransport" validate:"required"`
	OcppCsmsUrl     string `json:"ocppCsmsUrl" validate:"required,max=512"`
	MessageTimeout  int    `json:"messageTimeout" validate:"gte=0"`
	SecurityProfile int    `json:"securityProfile" validate:"gte=0"`
	OcppInterface   string `json:"ocppInterface" validate:"required"`
}

type SetNetworkProfileRequest struct {
	ConfigurationSlot int                      `json:"configurationSlot" validate:"gte=0"`
	ConnectionData    NetworkConnectionProfile `json:"connectionData" validate:"required"`
}

type SetNetworkProfileResponse struct {
	Status     SetNetworkProfileStatus `json:"status" validate:"required,setNetworkProfileStatus"`
	StatusInfo *types.StatusInfo       `json:"statusInfo,omitempty"`
}

func (r *SetNetworkProfileRequest) GetFeatureName() string {
	return SetNetworkProfileFeatureName
}

func (r *SetNetworkProfileResponse) GetFeatureName() string {
	return SetNetworkProfileFeatureName
}
