package security

import "evstation/types"

const SignCertificateFeatureName = "SignCertificate"
const Get15118EVCertificateFeatureName = "Get15118EVCertificate"
const GetCertificateStatusFeatureName = "GetCertificateStatus"
const GetCRLFeatureName = "GetCRL"

type Iso15118EVCertificateStatus string

const (
	Iso15118EVCertificateStatusAccepted Iso15118EVCertificateStatus = "Accepted"
	Iso15118EVCertificateStatusFailed   Iso15118EVCertificateStatus = "Failed"
)

type GetCertificateStatusEnum string

const (
	GetCertificateStatusAccepted GetCertificateStatusEnum = "Accepted"
	GetCertificateStatusFailed   GetCertificateStatusEnum = "Failed"
)

type SignCertificateRequest struct {
	CSR             string `json:"csr" validate:"required,max=5500"`
	CertificateType string `json:"certificateType,omitempty"`
}

type SignCertificateResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type Get15118EVCertificateRequest struct {
	Iso15118SchemaVersion string `json:"iso15118SchemaVersion" validate:"required,max=50"`
	Action                string `json:"action" validate:"required"`
	ExiRequest            string `json:"exiRequest" validate:"required,max=5600"`
}

type Get15118EVCertificateResponse struct {
	Status      Iso15118EVCertificateStatus `json:"status" validate:"required,iso15118EVCertificateStatus"`
	ExiResponse string                      `json:"exiResponse" validate:"required,max=5600"`
	StatusInfo  *types.StatusInfo           `json:"statusInfo,omitempty"`
}

type OCSPRequestData struct {
	HashAlgorithm  string `json:"hashAlgorithm" validate:"required"`
	IssuerNameHash string `json:"issuerNameHash" validate:"required,max=128"`
	IssuerKeyHash  string `json:"issuerKeyHash" validate:"required,max=128"`
	SerialNumber   string `json:"serialNumber" validate:"required,max=40"`
	ResponderURL   string `json:"responderURL" validate:"required,max=512"`
}

type GetCertificateStatusRequest struct {
	OcspRequestData OCSPRequestData `json:"ocspRequestData" validate:"required"`
}

type GetCertificateStatusResponse struct {
	Status     GetCertificateStatusEnum `json:"status" validate:"required,getCertificateStatus"`
	OcspResult string                   `json:"ocspResult,omitempty" validate:"omitempty,max=5500"`
	StatusInfo *types.StatusInfo        `json:"statusInfo,omitempty"`
}

type GetCRLRequest struct {
	RequestId           int                       `json:"requestId" validate:"gte=0"`
	CertificateHashData types.CertificateHashData `json:"certificateHashData" validate:"required"`
}

type GetCRLResponse struct {
	RequestId  int                 `json:"requestId" validate:"gte=0"`
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

func (r *SignCertificateRequest) GetFeatureName() string {
	return SignCertificateFeatureName
}

func (r *SignCertificateResponse) GetFeatureName() string {
	return SignCertificateFeatureName
}

func (r *Get15118EVCertificateRequest) GetFeatureName() string {
	return Get15118EVCertificateFeatureName
}

func (r *Get15118EVCertificateResponse) GetFeatureName() string {
	return Get15118EVCertificateFeatureName
}

func (r *GetCertificateStatusRequest) GetFeatureName() string {
	return GetCertificateStatusFeatureName
}

func (r *GetCertificateStatusResponse) GetFeatureName() string {
	return GetCertificateStatusFeatureName
}

func (r *GetCRLRequest) GetFeatureName() string {
	return GetCRLFeatureName
}

func (r *GetCRLResponse) GetFeatureName() string {
	return GetCRLFeatureName
}
