package transactions

import "evstation/types"

const MeterValuesFeatureName = "MeterValues"

type MeterValuesRequest struct {
	EvseId     int                `json:"evseId" validate:"gte=0"`
	MeterValue []types.MeterValue `json:"meterValue" validate:"required,min=1,dive"`
}

type MeterValuesResponse struct {
}

func NewMeterValuesRequest(evseId int, meterValue []types.MeterValue) *MeterValuesRequest {
	return &MeterValuesRequest{EvseId: evseId, MeterValue: meterValue}
}

func (r *MeterValuesRequest) GetFeatureName() string {
	return MeterValuesFeatureName
}

func (r *MeterValuesResponse) GetFeatureName() string {
	return MeterValuesFeatureName
}
