package models

import (
	"time"

	"evstation/types"
)

type Transaction struct {
	Id            string              `json:"transaction_id" bson:"transaction_id"`
	EvseId        int                 `json:"evse_id" bson:"evse_id"`
	ChargingState types.ChargingState `json:"charging_state" bson:"charging_state"`
	TimeStart     time.Time           `json:"time_start" bson:"time_start"`
	TotalCost     float64             `json:"total_cost" bson:"total_cost"`
	StoppedReason types.Reason        `json:"stopped_reason,omitempty" bson:"stopped_reason"`
}
