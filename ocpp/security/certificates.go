package security

import "evstation/types"

const CertificateSignedFeatureName = "CertificateSigned"
const InstallCertificateFeatureName = "InstallCertificate"
const GetInstalledCertificateIdsFeatureName = "GetInstalledCertificateIds"
const DeleteCertificateFeatureName = "DeleteCertificate"
const NotifyCRLFeatureName = "NotifyCRL"

type CertificateSignedStatus string

const (
	CertificateSignedStatusAccepted CertificateSignedStatus = "Accepted"
	CertificateSignedStatusRejected CertificateSignedStatus = "Rejected"
)

type InstallCertificateStatus string

const (
	InstallCertificateStatusAccepted InstallCertificateStatus = "Accepted"
	InstallCertificateStatusRejected InstallCertificateStatus = "Rejected"
	InstallCertificateStatusFailed   InstallCertificateStatus = "Failed"
)

type GetInstalledCertificateStatus string

const (
	GetInstalledCertificateStatusAccepted GetInstalledCertificateStatus = "Accepted"
	GetInstalledCertificateStatusNotFound GetInstalledCertificateStatus = "NotFound"
)

type DeleteCertificateStatus string

const (
	DeleteCertificateStatusAccepted DeleteCertificateStatus = "Accepted"
	DeleteCertificateStatusFailed   DeleteCertificateStatus = "Failed"
	DeleteCertificateStatusNotFound DeleteCertificateStatus = "NotFound"
)

type NotifyCRLStatus string

const (
	NotifyCRLStatusAvailable   NotifyCRLStatus = "Available"
	NotifyCRLStatusUnavailable NotifyCRLStatus = "Unavailable"
)

type CertificateSignedRequest struct {
	CertificateChain string `json:"certificateChain" validate:"required,max=10000"`
	CertificateType  string `json:"certificateType,omitempty"`
}

type CertificateSignedResponse struct {
	Status     CertificateSignedStatus `json:"status" validate:"required,certificateSignedStatus"`
	StatusInfo *types.StatusInfo       `json:"statusInfo,omitempty"`
}

type InstallCertificateRequest struct {
	CertificateType types.CertificateUse `json:"certificateType" validate:"required,certificateUse"`
	Certificate     string               `json:"certificate" validate:"required,max=5500"`
}

type InstallCertificateResponse struct {
	Status     InstallCertificateStatus `json:"status" validate:"required,installCertificateStatus"`
	StatusInfo *types.StatusInfo        `json:"statusInfo,omitempty"`
}

type CertificateHashDataChain struct {
	CertificateType          types.CertificateUse        `json:"certificateType" validate:"required,certificateUse"`
	CertificateHashData      types.CertificateHashData   `json:"certificateHashData" validate:"required"`
	ChildCertificateHashData []types.CertificateHashData `json:"childCertificateHashData,omitempty" validate:"omitempty,max=4,dive"`
}

type GetInstalledCertificateIdsRequest struct {
	CertificateType []types.CertificateUse `json:"certificateType,omitempty" validate:"omitempty,dive,certificateUse"`
}

type GetInstalledCertificateIdsResponse struct {
	Status                   GetInstalledCertificateStatus `json:"status" validate:"required,getInstalledCertificateStatus"`
	CertificateHashDataChain []CertificateHashDataChain    `json:"certificateHashDataChain,omitempty" validate:"omitempty,dive"`
	StatusInfo               *types.StatusInfo             `json:"statusInfo,omitempty"`
}

type DeleteCertificateRequest struct {
	CertificateHashData types.CertificateHashData `json:"certificateHashData" validate:"required"`
}

type DeleteCertificateResponse struct {
	Status     DeleteCertificateStatus `json:"status" validate:"required,deleteCertificateStatus"`
	StatusInfo *types.StatusInfo       `json:"statusInfo,omitempty"`
}

type NotifyCRLRequest struct {
	RequestId int             `json:"requestId" validate:"gte=0"`
	Status    NotifyCRLStatus `json:"status" validate:"required,notifyCRLStatus"`
	Location  string          `json:"location,omitempty" validate:"omitempty,max=512"`
}

type NotifyCRLResponse struct {
}

func (r *CertificateSignedRequest) GetFeatureName() string {
	return CertificateSignedFeatureName
}

func (r *CertificateSignedResponse) GetFeatureName() string {
	return CertificateSignedFeatureName
}

func (r *InstallCertificateRequest) GetFeatureName() string {
	return InstallCertificateFeatureName
}

func (r *InstallCertificateResponse) GetFeatureName() string {
	return InstallCertificateFeatureName
}

func (r *GetInstalledCertificateIdsRequest) GetFeatureName() string {
	return GetInstalledCertificateIdsFeatureName
}

func (r *GetInstalledCertificateIdsResponse) GetFeatureName() string {
	return GetInstalledCertificateIdsFeatureName
}

func (r *DeleteCertificateRequest) GetFeatureName() string {
	return DeleteCertificateFeatureName
}

func (r *DeleteCertificateResponse) GetFeatureName() string {
	return DeleteCertificateFeatureName
}

func (r *NotifyCRLRequest) GetFeatureName() string {
	return NotifyCRLFeatureName
}

func (r *NotifyCRLResponse) GetFeatureName() string {
	return NotifyCRLFeatureName
}
