package diagnostics

import "evstation/types"

const CustomerInformationFeatureName = "CustomerInformation"
const NotifyCustomerInformationFeatureName = "NotifyCustomerInformation"

type CustomerInformationStatus string

const (
	CustomerInformationStatusAccepted CustomerInformationStatus = "Accepted"
	CustomerInformationStatusRejected CustomerInformationStatus = "Rejected"
	CustomerInformationStatusInvalid  CustomerInformationStatus = "Invalid"
)

type CustomerInformationRequest struct {
	RequestId           int                        `json:"requestId" validate:"gte=0"`
	Report              bool                       `json:"report"`
	Clear               bool                       `json:"clear"`
	CustomerIdentifier  string                     `json:"customerIdentifier,omitempty" validate:"omitempty,max=64"`
	IdToken             *types.IdToken             `json:"idToken,omitempty"`
	CustomerCertificate *types.CertificateHashData `json:"customerCertificate,omitempty"`
}

type CustomerInformationResponse struct {
	Status     CustomerInformationStatus `json:"status" validate:"required,customerInformationStatus"`
	StatusInfo *types.StatusInfo         `json:"statusInfo,omitempty"`
}

type NotifyCustomerInformationRequest struct {
	Data        string          `json:"data" validate:"required,max=512"`
	Tbc         bool            `json:"tbc,omitempty"`
	SeqNo       int             `json:"seqNo" validate:"gte=0"`
	GeneratedAt *types.DateTime `json:"generatedAt" validate:"required"`
	RequestId   int             `json:"requestId" validate:"gte=0"`
}

type NotifyCustomerInformationResponse struct {
}

func (r *CustomerInformationRequest) GetFeatureName() string {
	return CustomerInformationFeatureName
}

func (r *CustomerInformationResponse) GetFeatureName() string {
	return CustomerInformationFeatureName
}

func (r *NotifyCustomerInformationRequest) GetFeatureName() string {
	return NotifyCustomerInformationFeatureName
}

func (r *NotifyCustomerInformationResponse) GetFeatureName() string {
	return NotifyCustomerInformationFeatureName
}
