package localauth

import "evstation/types"

const GetLocalListVersionFeatureName = "GetLocalListVersion"
const SendLocalListFeatureName = "SendLocalList"
const ClearCacheFeatureName = "ClearCache"

type UpdateType string

const (
	UpdateTypeDifferential UpdateType = "Differential"
	UpdateTypeFull         UpdateType = "Full"
)

type SendLocalListStatus string

const (
	SendLocalListStatusAccepted        SendLocalListStatus = "Accepted"
	SendLocalListStatusFailed          SendLocalListStatus = "Failed"
	SendLocalListStatusVersionMismatch SendLocalListStatus = "VersionMismatch"
)

type ClearCacheStatus string

const (
	ClearCacheStatusAccepted ClearCacheStatus = "Accepted"
	ClearCacheStatusRejected ClearCacheStatus = "Rejected"
)

type AuthorizationData struct {
	IdToken     types.IdToken      `json:"idToken" validate:"required"`
	IdTokenInfo *types.IdTokenInfo `json:"idTokenInfo,omitempty"`
}

type GetLocalListVersionRequest struct {
}

type GetLocalListVersionResponse struct {
	VersionNumber int `json:"versionNumber"`
}

type SendLocalListRequest struct {
	VersionNumber          int                 `json:"versionNumber" validate:"gte=0"`
	UpdateType             UpdateType          `json:"updateType" validate:"required,updateType"`
	LocalAuthorizationList []AuthorizationData `json:"localAuthorizationList,omitempty" validate:"omitempty,dive"`
}

type SendLocalListResponse struct {
	Status     SendLocalListStatus `json:"status" validate:"required,sendLocalListStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type ClearCacheRequest struct {
}

type ClearCacheResponse struct {
	Status     ClearCacheStatus  `json:"status" validate:"required,clearCacheStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

func (r *GetLocalListVersionRequest) GetFeatureName() string {
	return GetLocalListVersionFeatureName
}

func (r *GetLocalListVersionResponse) GetFeatureName() string {
	return GetLocalListVersionFeatureName
}

func (r *SendLocalListRequest) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (r *SendLocalListResponse) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (r *ClearCacheRequest) GetFeatureName() string {
	return ClearCacheFeatureName
}

func (r *ClearCacheResponse) GetFeatureName() string {
	return ClearCacheFeatureName
}
