package diagnostics

import "evstation/types"

const GetLogFeatureName = "GetLog"
const LogStatusNotificationFeatureName = "LogStatusNotification"

type LogType string

const (
	LogTypeDiagnosticsLog LogType = "DiagnosticsLog"
	LogTypeSecurityLog    LogType = "SecurityLog"
)

type LogStatus string

const (
	LogStatusAccepted         LogStatus = "Accepted"
	LogStatusRejected         LogStatus = "Rejected"
	LogStatusAcceptedCanceled LogStatus = "AcceptedCanceled"
)

type UploadLogStatus string

const (
	UploadLogStatusBadMessage       UploadLogStatus = "BadMessage"
	UploadLogStatusIdle             UploadLogStatus = "Idle"
	UploadLogStatusNotSupported     UploadLogStatus = "NotSupportedOperation"
	UploadLogStatusPermissionDenied UploadLogStatus = "PermissionDenied"
	UploadLogStatusUploaded         UploadLogStatus = "Uploaded"
	UploadLogStatusUploadFailure    UploadLogStatus = "UploadFailure"
	UploadLogStatusUploading        UploadLogStatus = "Uploading"
)

type LogParameters struct {
	RemoteLocation  string          `json:"remoteLocation" validate:"required,max=512"`
	OldestTimestamp *types.DateTime `json:"oldestTimestamp,omitempty"`
	LatestTimestamp *types.DateTime `json:"latestTimestamp,omitempty"`
}

type GetLogRequest struct {
	LogType       LogType       `json:"logType" validate:"required,logType"`
	RequestId     int           `json:"requestId" validate:"gte=0"`
	Retries       *int          `json:"retries,omitempty" validate:"omitempty,gte=0"`
	RetryInterval *int          `json:"retryInterval,omitempty" validate:"omitempty,gte=0"`
	Log           LogParameters `json:"log" validate:"required"`
}

type GetLogResponse struct {
	Status     LogStatus         `json:"status" validate:"required,logStatus"`
	Filename   string            `json:"filename,omitempty" validate:"omitempty,max=255"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

type LogStatusNotificationRequest struct {
	Status    UploadLogStatus `json:"status" validate:"required,uploadLogStatus"`
	RequestId *int            `json:"requestId,omitempty" validate:"omitempty,gte=0"`
}

type LogStatusNotificationResponse struct {
}

func NewLogStatusNotificationRequest(status UploadLogStatus) *LogStatusNotificationRequest {
	return &LogStatusNotificationRequest{Status: status}
}

func (r *GetLogRequest) GetFeatureName() string {
	return GetLogFeatureName
}

func (r *GetLogResponse) GetFeatureName() string {
	return GetLogFeatureName
}

func (r *LogStatusNotificationRequest) GetFeatureName() string {
	return LogStatusNotificationFeatureName
}

func (r *LogStatusNotificationResponse) GetFeatureName() string {
	return LogStatusNotificationFeatureName
}
