package station

import (
	"time"

	"evstation/models"
	"evstation/ocpp/reservation"
	"evstation/ocpp/transactions"
	"evstation/types"
)

// transactionEventDelay gives the synchronous response time to reach the
// central system before the follow-up TransactionEvent is pushed.
const transactionEventDelay = 100 * time.Millisecond

func (h *SystemHandler) OnRequestStartTransaction(request *transactions.RequestStartTransactionRequest) *transactions.RequestStartTransactionResponse {
	if request.EvseId == nil {
		return transactions.NewRequestStartTransactionResponse(transactions.RequestStartStopStatusRejected)
	}
	evse := h.EVSE(*request.EvseId)
	if evse == nil {
		return transactions.NewRequestStartTransactionResponse(transactions.RequestStartStopStatusRejected)
	}
	transactionId, started := evse.StartCharging(request.RemoteStartId)
	if !started {
		return transactions.NewRequestStartTransactionResponse(transactions.RequestStartStopStatusRejected)
	}
	if request.ChargingProfile != nil {
		evse.SetChargingProfile(request.ChargingProfile)
	}
	h.transactions.Add(&models.Transaction{
		Id:            transactionId,
		EvseId:        evse.Id,
		ChargingState: types.ChargingStateCharging,
		TimeStart:     time.Now(),
	})
	evseId := evse.Id
	remoteStartId := request.RemoteStartId
	go func() {
		time.Sleep(transactionEventDelay)
		h.sender.SendTransactionEventStarted(evseId, transactionId, remoteStartId)
	}()
	response := transactions.NewRequestStartTransactionResponse(transactions.RequestStartStopStatusAccepted)
	response.TransactionId = transactionId
	return response
}

func (h *SystemHandler) OnRequestStopTransaction(request *transactions.RequestStopTransactionRequest) *transactions.RequestStopTransactionResponse {
	evse := h.evseByTransaction(request.TransactionId)
	if evse == nil {
		return transactions.NewRequestStopTransactionResponse(transactions.RequestStartStopStatusRejected)
	}
	if !evse.StopCharging() {
		return transactions.NewRequestStopTransactionResponse(transactions.RequestStartStopStatusRejected)
	}
	if record := h.transactions.Get(request.TransactionId); record != nil {
		record.ChargingState = types.ChargingStateIdle
		record.StoppedReason = types.ReasonRemote
	}
	evseId := evse.Id
	transactionId := request.TransactionId
	go func() {
		time.Sleep(transactionEventDelay)
		h.sender.SendTransactionEventEnded(evseId, transactionId)
	}()
	return transactions.NewRequestStopTransactionResponse(transactions.RequestStartStopStatusAccepted)
}

func (h *SystemHandler) OnGetTransactionStatus(request *transactions.GetTransactionStatusRequest) *transactions.GetTransactionStatusResponse {
	response := &transactions.GetTransactionStatusResponse{MessagesInQueue: false}
	if request.TransactionId != "" {
		ongoing := h.evseByTransaction(request.TransactionId) != nil
		response.OngoingIndicator = &ongoing
	}
	return response
}

func (h *SystemHandler) OnCostUpdated(request *transactions.CostUpdatedRequest) *transactions.CostUpdatedResponse {
	record := h.transactions.Get(request.TransactionId)
	if record == nil {
		h.logger.Warn("cost update for unknown transaction " + request.TransactionId)
		return &transactions.CostUpdatedResponse{
			StatusInfo: types.NewStatusInfo(string(FailureGeneric), "unknown transaction "+request.TransactionId),
		}
	}
	record.TotalCost = request.TotalCost
	return &transactions.CostUpdatedResponse{}
}

func (h *SystemHandler) OnReserveNow(request *reservation.ReserveNowRequest) *reservation.ReserveNowResponse {
	h.reservations.Upsert(request.Id)
	if request.EvseId != nil {
		if evse := h.EVSE(*request.EvseId); evse != nil {
			evse.SetReservation(request.Id)
		}
	}
	return reservation.NewReserveNowResponse(reservation.ReserveNowStatusAccepted)
}

// OnCancelReservation returns Accepted even for an id that was never
// reserved; a missing entry is treated as already cancelled.
func (h *SystemHandler) OnCancelReservation(request *reservation.CancelReservationRequest) *reservation.CancelReservationResponse {
	h.reservations.Remove(request.ReservationId)
	for _, evse := range h.allEVSEs() {
		if evse.HasReservation(request.ReservationId) {
			evse.ClearReservation()
		}
	}
	return reservation.NewCancelReservationResponse(reservation.CancelReservationStatusAccepted)
}
