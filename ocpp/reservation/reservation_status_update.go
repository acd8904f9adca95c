package reservation

const ReservationStatusUpdateFeatureName = "ReservationStatusUpdate"

type ReservationUpdateStatus string

const (
	ReservationUpdateStatusExpired ReservationUpdateStatus = "Expired"
	ReservationUpdateStatusRemoved ReservationUpdateStatus = "Removed"
)

type ReservationStatusUpdateRequest struct {
	ReservationId           int                     `json:"reservationId" validate:"gte=0"`
	ReservationUpdateStatus ReservationUpdateStatus `json:"reservationUpdateStatus" validate:"required,reservationUpdateStatus"`
}

type ReservationStatusUpdateResponse struct {
}

func NewReservationStatusUpdateRequest(reservationId int, status ReservationUpdateStatus) *ReservationStatusUpdateRequest {
	return &ReservationStatusUpdateRequest{ReservationId: reservationId, ReservationUpdateStatus: status}
}

func (r *ReservationStatusUpdateRequest) GetFeatureName() string {
	return ReservationStatusUpdateFeatureName
}

func (r *ReservationStatusUpdateResponse) GetFeatureName() string {
	return ReservationStatusUpdateFeatureName
}
