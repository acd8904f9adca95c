package firmware

const FirmwareStatusNotificationFeatureName = "FirmwareStatusNotification"
const PublishFirmwareStatusNotificationFeatureName = "PublishFirmwareStatusNotification"

type FirmwareStatus string

const (
	FirmwareStatusDownloaded         FirmwareStatus = "Downloaded"
	FirmwareStatusDownloadFailed     FirmwareStatus = "DownloadFailed"
	FirmwareStatusDownloading        FirmwareStatus = "Downloading"
	FirmwareStatusIdle               FirmwareStatus = "Idle"
	FirmwareStatusInstallationFailed FirmwareStatus = "InstallationFailed"
	FirmwareStatusInstalling         FirmwareStatus = "Installing"
	FirmwareStatusInstalled          FirmwareStatus = "Installed"
	FirmwareStatusInstallScheduled   FirmwareStatus = "InstallScheduled"
	FirmwareStatusSignatureVerified  FirmwareStatus = "SignatureVerified"
	FirmwareStatusInvalidSignature   FirmwareStatus = "InvalidSignature"
)

type PublishFirmwareStatus string

const (
	PublishFirmwareStatusIdle           PublishFirmwareStatus = "Idle"
	PublishFirmwareStatusDownloading    PublishFirmwareStatus = "Downloading"
	PublishFirmwareStatusDownloaded     PublishFirmwareStatus = "Downloaded"
	PublishFirmwareStatusPublished      PublishFirmwareStatus = "Published"
	PublishFirmwareStatusDownloadFailed PublishFirmwareStatus = "DownloadFailed"
)

type StatusNotificationRequest struct {
	Status    FirmwareStatus `json:"status" validate:"required,firmwareStatus"`
	RequestId *int           `json:"requestId,omitempty" validate:"omitempty,gte=0"`
}

type StatusNotificationResponse struct {
}

type PublishStatusNotificationRequest struct {
	Status    PublishFirmwareStatus `json:"status" validate:"required,publishFirmwareStatus"`
	Location  []string              `json:"location,omitempty" validate:"omitempty,dive,max=512"`
	RequestId *int                  `json:"requestId,omitempty" validate:"omitempty,gte=0"`
}

type PublishStatusNotificationResponse struct {
}

func NewStatusNotificationRequest(status FirmwareStatus) *StatusNotificationRequest {
	return &StatusNotificationRequest{Status: status}
}

func (r *StatusNotificationRequest) GetFeatureName() string {
	return FirmwareStatusNotificationFeatureName
}

func (r *StatusNotificationResponse) GetFeatureName() string {
	return FirmwareStatusNotificationFeatureName
}

func (r *PublishStatusNotificationRequest) GetFeatureName() string {
	return PublishFirmwareStatusNotificationFeatureName
}

func (r *PublishStatusNotificationResponse) GetFeatureName() string {
	return PublishFirmwareStatusNotificationFeatureName
}
