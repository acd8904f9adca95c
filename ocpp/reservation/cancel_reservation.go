package reservation

import "evstation/types"

const CancelReservationFeatureName = "CancelReservation"

type CancelReservationStatus string

const (
	CancelReservationStatusAccepted CancelReservationStatus = "Accepted"
	CancelReservationStatusRejected CancelReservationStatus = "Rejected"
)

type CancelReservationRequest struct {
	ReservationId int `json:"reservationId" validate:"gte=0"`
}

type CancelReservationResponse struct {
	Status     CancelReservationStatus `json:"status" validate:"required,cancelReservationStatus"`
	StatusInfo *types.StatusInfo       `json:"statusInfo,omitempty"`
}

func NewCancelReservationResponse(status CancelReservationStatus) *CancelReservationResponse {
	return &CancelReservationResponse{Status: status}
}

func (r *CancelReservationRequest) GetFeatureName() string {
	return CancelReservationFeatureName
}

func (r *CancelReservationResponse) GetFeatureName() string {
	return CancelReservationFeatureName
}
