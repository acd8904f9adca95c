package transactions

const GetTransactionStatusFeatureName = "GetTransactionStatus"

type GetTransactionStatusRequest struct {
	TransactionId string `json:"transactionId,omitempty" validate:"omitempty,max=36"`
}

type GetTransactionStatusResponse struct {
	OngoingIndicator *bool `json:"ongoingIndicator,omitempty"`
	MessagesInQueue  bool  `json:"messagesInQueue"`
}

func (r *GetTransactionStatusRequest) GetFeatureName() string {
	return GetTransactionStatusFeatureName
}

func (r *GetTransactionStatusResponse) GetFeatureName() string {
	return GetTransactionStatusFeatureName
}
