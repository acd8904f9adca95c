package transactions

import "evstation/types"

const RequestStartTransactionFeatureName = "RequestStartTransaction"
const RequestStopTransactionFeatureName = "RequestStopTransaction"

type RequestStartStopStatus string

const (
	RequestStartStopStatusAccepted RequestStartStopStatus = "Accepted"
	RequestStartStopStatusRejected RequestStartStopStatus = "Rejected"
)

type RequestStartTransactionRequest struct {
	EvseId          *int                   `json:"evseId,omitempty" validate:"omitempty,gt=0"`
	RemoteStartId   int                    `json:"remoteStartId" validate:"gte=0"`
	IdToken         types.IdToken          `json:"idToken" validate:"required"`
	ChargingProfile *types.ChargingProfile `json:"chargingProfile,omitempty"`
	GroupIdToken    *types.IdToken         `json:"groupIdToken,omitempty"`
}

type RequestStartTransactionResponse struct {
	Status        RequestStartStopStatus `json:"status" validate:"required,requestStartStopStatus"`
	TransactionId string                 `json:"transactionId,omitempty" validate:"omitempty,max=36"`
	StatusInfo    *types.StatusInfo      `json:"statusInfo,omitempty"`
}

type RequestStopTransactionRequest struct {
	TransactionId string `json:"transactionId" validate:"required,max=36"`
}

type RequestStopTransactionResponse struct {
	Status     RequestStartStopStatus `json:"status" validate:"required,requestStartStopStatus"`
	StatusInfo *types.StatusInfo      `json:"statusInfo,omitempty"`
}

func NewRequestStartTransactionResponse(status RequestStartStopStatus) *RequestStartTransactionResponse {
	return &RequestStartTransactionResponse{Status: status}
}

func NewRequestStopTransactionResponse(status RequestStartStopStatus) *RequestStopTransactionResponse {
	return &RequestStopTransactionResponse{Status: status}
}

func (r *RequestStartTransactionRequest) GetFeatureName() string {
	return RequestStartTransactionFeatureName
}

func (r *RequestStartTransactionResponse) GetFeatureName() string {
	return RequestStartTransactionFeatureName
}

func (r *RequestStopTransactionRequest) GetFeatureName() string {
	return RequestStopTransactionFeatureName
}

func (r *RequestStopTransactionResponse) GetFeatureName() string {
	return RequestStopTransactionFeatureName
}
