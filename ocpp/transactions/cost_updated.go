package transactions

import "evstation/types"

const CostUpdatedFeatureName = "CostUpdated"

type CostUpdatedRequest struct {
	TotalCost     float64 `json:"totalCost"`
	TransactionId string  `json:"transactionId" validate:"required,max=36"`
}

type CostUpdatedResponse struct {
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

func (r *CostUpdatedRequest) GetFeatureName() string {
	return CostUpdatedFeatureName
}

func (r *CostUpdatedResponse) GetFeatureName() string {
	return CostUpdatedFeatureName
}
