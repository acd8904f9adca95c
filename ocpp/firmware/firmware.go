package firmware

import "evstation/types"

const UpdateFirmwareFeatureName = "UpdateFirmware"
const PublishFirmwareFeatureName = "PublishFirmware"
const UnpublishFirmwareFeatureName = "UnpublishFirmware"

type UpdateFirmwareStatus string

const (
	UpdateFirmwareStatusAccepted           UpdateFirmwareStatus = "Accepted"
	UpdateFirmwareStatusRejected           UpdateFirmwareStatus = "Rejected"
	UpdateFirmwareStatusAcceptedCanceled   UpdateFirmwareStatus = "AcceptedCanceled"
	UpdateFirmwareStatusInvalidCertificate UpdateFirmwareStatus = "InvalidCertificate"
)

type UnpublishFirmwareStatus string

const (
	UnpublishFirmwareStatusDownloadOngoing UnpublishFirmwareStatus = "DownloadOngoing"
	UnpublishFirmwareStatusNoFirmware      UnpublishFirmwareStatus = "NoFirmware"
	UnpublishFirmwareStatusUnpublished     UnpublishFirmwareStatus = "Unpublished"
)

type FirmwareType struct {
	Location           string          `json:"location" validate:"required,max=512"`
	RetrieveDateTime   *types.DateTime `json:"retrieveDateTime" validate:"required"`
	InstallDateTime    *types.DateTime `json:"installDateTime,omitempty"`
	SigningCertificate string          `json:"signingCertificate,omitempty" validate:"omitempty,max=5500"`
	Signature          string          `json:"signature,omitempty" validate:"omitempty,max=800"`
}

type UpdateFirmwareRequest struct {
	Retries       *int         `json:"retries,omitempty" validate:"omitempty,gte=0"`
	RetryInterval *int         `json:"retryInterval,omitempty" validate:"omitempty,gte=0"`
	RequestId     int          `json:"requestId" validate:"gte=0"`
	Firmware      FirmwareType `json:"firmware" validate:"required"`
}

type UpdateFirmwareResponse struct {
	Status     UpdateFirmwareStatus `json:"status" validate:"required,updateFirmwareStatus"`
	StatusInfo *types.StatusInfo    `json:"statusInfo,omitempty"`
}

type PublishFirmwareRequest struct {
	Location      string `json:"location" validate:"required,max=512"`
	Retries       *int   `json:"retries,omitempty" validate:"omitempty,gte=0"`
	Checksum      string `json:"checksum" validate:"required,max=32"`
	RequestId     int    `json:"requestId" validate:"gte=0"`
	RetryInterval *int   `json:"retryInterval,omitempty" validate:"omitempty,gte=0"`
}

type PublishFirmwareResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type UnpublishFirmwareRequest struct {
	Checksum string `json:"checksum" validate:"required,max=32"`
}

type UnpublishFirmwareResponse struct {
	Status UnpublishFirmwareStatus `json:"status" validate:"required,unpublishFirmwareStatus"`
}

func (r *UpdateFirmwareRequest) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (r *UpdateFirmwareResponse) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (r *PublishFirmwareRequest) GetFeatureName() string {
	return PublishFirmwareFeatureName
}

func (r *PublishFirmwareResponse) GetFeatureName() string {
	return PublishFirmwareFeatureName
}

func (r *UnpublishFirmwareRequest) GetFeatureName() string {
	return UnpublishFirmwareFeatureName
}

func (r *UnpublishFirmwareResponse) GetFeatureName() string {
	return UnpublishFirmwareFeatureName
}
