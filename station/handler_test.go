package station

import (
	"strings"
	"testing"
	"time"

	"evstation/ocpp/availability"
	"evstation/ocpp/datatransfer"
	"evstation/ocpp/display"
	"evstation/ocpp/localauth"
	"evstation/ocpp/provisioning"
	"evstation/ocpp/reservation"
	"evstation/ocpp/tariff"
	"evstation/ocpp/transactions"
	"evstation/types"
)

func newTestHandler() *SystemHandler {
	cs, _ := newTestStation()
	return cs.Handler()
}

func intPtr(v int) *int { return &v }

func startToken() types.IdToken {
	return types.IdToken{IdToken: "TAG-1", Type: types.IdTokenTypeISO14443}
}

func TestResetIdempotent(t *testing.T) {
	h := newTestHandler()
	stationWide := &provisioning.ResetRequest{Type: provisioning.ResetTypeImmediate}
	perEvse := &provisioning.ResetRequest{Type: provisioning.ResetTypeImmediate, EvseId: intPtr(1)}
	for i := 0; i < 3; i++ {
		if response := h.OnReset(stationWide); response.Status != provisioning.ResetStatusAccepted {
			t.Fatalf("station reset %d: status = %s, want Accepted", i, response.Status)
		}
		if response := h.OnReset(perEvse); response.Status != provisioning.ResetStatusAccepted {
			t.Fatalf("evse reset %d: status = %s, want Accepted", i, response.Status)
		}
	}
}

func TestResetUnknownEvse(t *testing.T) {
	h := newTestHandler()
	response := h.OnReset(&provisioning.ResetRequest{
		Type:   provisioning.ResetTypeImmediate,
		EvseId: intPtr(99),
	})
	if response.Status != provisioning.ResetStatusRejected {
		t.Errorf("status = %s, want Rejected", response.Status)
	}
}

func TestChangeAvailabilityUnknownEvse(t *testing.T) {
	h := newTestHandler()
	response := h.OnChangeAvailability(&availability.ChangeAvailabilityRequest{
		OperationalStatus: types.OperationalStatusInoperative,
		Evse:              types.NewEVSE(99),
	})
	if response.Status != availability.ChangeAvailabilityStatusRejected {
		t.Errorf("status = %s, want Rejected", response.Status)
	}
}

func TestChangeAvailabilityStationWide(t *testing.T) {
	h := newTestHandler()
	response := h.OnChangeAvailability(&availability.ChangeAvailabilityRequest{
		OperationalStatus: types.OperationalStatusInoperative,
	})
	if response.Status != availability.ChangeAvailabilityStatusAccepted {
		t.Fatalf("status = %s, want Accepted", response.Status)
	}
	for _, evse := range h.EVSEs() {
		if evse.AdminStatus != types.OperationalStatusInoperative {
			t.Errorf("evse %d not switched to Inoperative", evse.Id)
		}
	}
}

func TestStartStopTransactionPairing(t *testing.T) {
	h := newTestHandler()
	start := h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 7,
		IdToken:       startToken(),
	})
	if start.Status != transactions.RequestStartStopStatusAccepted {
		t.Fatalf("start status = %s, want Accepted", start.Status)
	}
	if start.TransactionId == "" {
		t.Fatal("accepted start must return a transaction id")
	}
	evse := h.EVSE(1)
	if !evse.Charging() {
		t.Fatal("evse 1 not charging after accepted start")
	}
	if evse.MeterStart == nil || *evse.MeterStart != 0 {
		t.Error("meter start must begin at 0")
	}

	double := h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 8,
		IdToken:       startToken(),
	})
	if double.Status != transactions.RequestStartStopStatusRejected {
		t.Errorf("second start on busy evse: status = %s, want Rejected", double.Status)
	}
	if evse.CurrentTransaction() != start.TransactionId {
		t.Error("rejected start must not change the running transaction")
	}

	stop := h.OnRequestStopTransaction(&transactions.RequestStopTransactionRequest{
		TransactionId: start.TransactionId,
	})
	if stop.Status != transactions.RequestStartStopStatusAccepted {
		t.Fatalf("stop status = %s, want Accepted", stop.Status)
	}
	if evse.Charging() {
		t.Error("evse 1 still charging after accepted stop")
	}
	if evse.MeterStop == nil || *evse.MeterStop != 123 {
		t.Error("meter stop placeholder not recorded")
	}
}

func TestStopUnknownTransaction(t *testing.T) {
	h := newTestHandler()
	response := h.OnRequestStopTransaction(&transactions.RequestStopTransactionRequest{
		TransactionId: "no-such-transaction",
	})
	if response.Status != transactions.RequestStartStopStatusRejected {
		t.Errorf("status = %s, want Rejected", response.Status)
	}
}

func TestUnlockConnectorDuringTransaction(t *testing.T) {
	h := newTestHandler()
	h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 1,
		IdToken:       startToken(),
	})
	response := h.OnUnlockConnector(&availability.UnlockConnectorRequest{EvseId: 1, ConnectorId: 1})
	if response.Status != availability.UnlockStatusOngoingTransaction {
		t.Errorf("status = %s, want OngoingTransaction", response.Status)
	}
}

func TestReservationLifecycle(t *testing.T) {
	h := newTestHandler()
	reserve := h.OnReserveNow(&reservation.ReserveNowRequest{
		Id:     33,
		EvseId: intPtr(2),
	})
	if reserve.Status != reservation.ReserveNowStatusAccepted {
		t.Fatalf("reserve status = %s, want Accepted", reserve.Status)
	}
	if !h.EVSE(2).HasReservation(33) {
		t.Fatal("reservation 33 not attached to evse 2")
	}

	cancel := h.OnCancelReservation(&reservation.CancelReservationRequest{ReservationId: 33})
	if cancel.Status != reservation.CancelReservationStatusAccepted {
		t.Fatalf("cancel status = %s, want Accepted", cancel.Status)
	}
	if h.EVSE(2).HasReservation(33) {
		t.Error("reservation 33 still attached after cancel")
	}
}

func TestCancelUnknownReservationAccepted(t *testing.T) {
	h := newTestHandler()
	response := h.OnCancelReservation(&reservation.CancelReservationRequest{ReservationId: 404})
	if response.Status != reservation.CancelReservationStatusAccepted {
		t.Errorf("status = %s, want Accepted for an unknown reservation", response.Status)
	}
}

func TestDisplayMessageIdUniqueness(t *testing.T) {
	h := newTestHandler()
	message := types.MessageInfo{
		Id:       5,
		Priority: types.MessagePriorityNormalCycle,
		Message:  types.MessageContent{Format: types.MessageFormatUTF8, Content: "hello"},
	}
	if got := h.OnSetDisplayMessage(&display.SetDisplayMessageRequest{Message: message}); got.Status != display.DisplayMessageStatusAccepted {
		t.Fatalf("first set: status = %s, want Accepted", got.Status)
	}
	if got := h.OnSetDisplayMessage(&display.SetDisplayMessageRequest{Message: message}); got.Status != display.DisplayMessageStatusRejected {
		t.Errorf("duplicate id: status = %s, want Rejected", got.Status)
	}
	if got := h.OnClearDisplayMessage(&display.ClearDisplayMessageRequest{Id: 5}); got.Status != display.ClearMessageStatusAccepted {
		t.Errorf("clear known id: status = %s, want Accepted", got.Status)
	}
	if got := h.OnClearDisplayMessage(&display.ClearDisplayMessageRequest{Id: 5}); got.Status != display.ClearMessageStatusUnknown {
		t.Errorf("clear cleared id: status = %s, want Unknown", got.Status)
	}
}

func TestDataTransferReversesStrings(t *testing.T) {
	h := newTestHandler()
	response := h.OnDataTransfer(&datatransfer.DataTransferRequest{
		VendorId: "GraphDefined OEM",
		Data:     "hello",
	})
	if response.Status != datatransfer.DataTransferStatusAccepted {
		t.Fatalf("status = %s, want Accepted", response.Status)
	}
	if response.Data != "olleh" {
		t.Errorf("data = %v, want olleh", response.Data)
	}
}

func TestDataTransferNestedStructure(t *testing.T) {
	h := newTestHandler()
	response := h.OnDataTransfer(&datatransfer.DataTransferRequest{
		VendorId: "GraphDefined OEM",
		Data:     map[string]interface{}{"greeting": "hello", "count": 2.0},
	})
	result, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want map", response.Data)
	}
	if result["greeting"] != "olleh" {
		t.Errorf("greeting = %v, want olleh", result["greeting"])
	}
	if result["count"] != 2.0 {
		t.Errorf("count = %v, want 2 untouched", result["count"])
	}
}

func TestDataTransferVendorMismatch(t *testing.T) {
	h := newTestHandler()
	response := h.OnDataTransfer(&datatransfer.DataTransferRequest{
		VendorId: "SomeoneElse",
		Data:     "hello",
	})
	if response.Status != datatransfer.DataTransferStatusRejected {
		t.Errorf("status = %s, want Rejected", response.Status)
	}
	if response.Data != nil {
		t.Errorf("rejected transfer must not echo data, got %v", response.Data)
	}
}

func TestSendLocalListVersioning(t *testing.T) {
	h := newTestHandler()
	full := h.OnSendLocalList(&localauth.SendLocalListRequest{
		VersionNumber: 3,
		UpdateType:    localauth.UpdateTypeFull,
	})
	if full.Status != localauth.SendLocalListStatusAccepted {
		t.Fatalf("full update: status = %s, want Accepted", full.Status)
	}
	stale := h.OnSendLocalList(&localauth.SendLocalListRequest{
		VersionNumber: 3,
		UpdateType:    localauth.UpdateTypeDifferential,
	})
	if stale.Status != localauth.SendLocalListStatusVersionMismatch {
		t.Errorf("stale differential: status = %s, want VersionMismatch", stale.Status)
	}
	if got := h.OnGetLocalListVersion(&localauth.GetLocalListVersionRequest{}); got.VersionNumber != 3 {
		t.Errorf("version = %d, want 3", got.VersionNumber)
	}
}

func TestSetDefaultTariffInvalidSignature(t *testing.T) {
	h := newTestHandler()
	response := h.OnSetDefaultChargingTariff(&tariff.SetDefaultChargingTariffRequest{
		Tariff: types.Tariff{
			TariffId:   "t-1",
			Currency:   "EUR",
			Signatures: []types.TariffSignature{{KeyId: "k1", Value: ""}},
		},
	})
	if response.Status != tariff.SetDefaultTariffStatusInvalidSignature {
		t.Errorf("status = %s, want InvalidSignature", response.Status)
	}
}

func TestSetDefaultTariffAllTargetsMustExist(t *testing.T) {
	h := newTestHandler()
	response := h.OnSetDefaultChargingTariff(&tariff.SetDefaultChargingTariffRequest{
		Tariff:  types.Tariff{TariffId: "t-1", Currency: "EUR"},
		EvseIds: []int{1, 99},
	})
	if response.Status != tariff.SetDefaultTariffStatusRejected {
		t.Fatalf("status = %s, want Rejected", response.Status)
	}
	if h.EVSE(1).GetDefaultTariff() != nil {
		t.Error("no tariff may be applied when one target is unknown")
	}
}

func TestRemoveDefaultTariffAlwaysAccepted(t *testing.T) {
	h := newTestHandler()
	h.OnSetDefaultChargingTariff(&tariff.SetDefaultChargingTariffRequest{
		Tariff:  types.Tariff{TariffId: "t-1", Currency: "EUR"},
		EvseIds: []int{1},
	})
	response := h.OnRemoveDefaultChargingTariff(&tariff.RemoveDefaultChargingTariffRequest{
		TariffId: "t-2",
	})
	if response.Status != tariff.RemoveDefaultTariffStatusAccepted {
		t.Errorf("status = %s, want Accepted regardless of per-evse outcome", response.Status)
	}
	if response.EvseStatusInfos[1].Status != string(tariff.RemoveDefaultTariffStatusNotFound) {
		t.Errorf("evse 1: status = %s, want NotFound for a different tariff id", response.EvseStatusInfos[1].Status)
	}
}

func TestChargingCount(t *testing.T) {
	h := newTestHandler()
	if h.ChargingCount() != 0 {
		t.Fatalf("fresh station: charging count = %d, want 0", h.ChargingCount())
	}
	h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 1,
		IdToken:       startToken(),
	})
	if h.ChargingCount() != 1 {
		t.Errorf("charging count = %d, want 1", h.ChargingCount())
	}
	// give the detached transaction event a moment so it does not outlive
	// the test's fake channel
	time.Sleep(2 * transactionEventDelay)
}

func TestCostUpdatedKnownTransaction(t *testing.T) {
	h := newTestHandler()
	start := h.OnRequestStartTransaction(&transactions.RequestStartTransactionRequest{
		EvseId:        intPtr(1),
		RemoteStartId: 5,
		IdToken:       startToken(),
	})
	if start.Status != transactions.RequestStartStopStatusAccepted {
		t.Fatalf("start status = %s, want Accepted", start.Status)
	}
	response := h.OnCostUpdated(&transactions.CostUpdatedRequest{
		TotalCost:     4.2,
		TransactionId: start.TransactionId,
	})
	if response.StatusInfo != nil {
		t.Errorf("known transaction: statusInfo = %+v, want none", response.StatusInfo)
	}
	record := h.transactions.Get(start.TransactionId)
	if record == nil {
		t.Fatal("transaction record missing after start")
	}
	if record.TotalCost != 4.2 {
		t.Errorf("total cost = %v, want 4.2", record.TotalCost)
	}
	time.Sleep(2 * transactionEventDelay)
}

func TestCostUpdatedUnknownTransaction(t *testing.T) {
	h := newTestHandler()
	response := h.OnCostUpdated(&transactions.CostUpdatedRequest{
		TotalCost:     1.5,
		TransactionId: "no-such-transaction",
	})
	if response.StatusInfo == nil {
		t.Fatal("unknown transaction: expected a statusInfo")
	}
	if response.StatusInfo.ReasonCode != string(FailureGeneric) {
		t.Errorf("reasonCode = %s, want %s", response.StatusInfo.ReasonCode, FailureGeneric)
	}
	if !strings.Contains(response.StatusInfo.AdditionalInfo, "no-such-transaction") {
		t.Errorf("additionalInfo = %q, want the offending transaction id", response.StatusInfo.AdditionalInfo)
	}
}

func TestTriggerMessageMatrix(t *testing.T) {
	evseRef := types.NewEVSE(1)
	cases := []struct {
		trigger availability.MessageTrigger
		evse    *types.EVSE
		want    availability.TriggerMessageStatus
	}{
		{availability.MessageTriggerBootNotification, nil, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerLogStatusNotification, nil, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerDiagnosticsStatusNotification, nil, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerFirmwareStatusNotification, nil, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerSignChargingStationCertificate, nil, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerMeterValues, nil, availability.TriggerMessageStatusRejected},
		{availability.MessageTriggerMeterValues, evseRef, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerStatusNotification, nil, availability.TriggerMessageStatusRejected},
		{availability.MessageTriggerStatusNotification, evseRef, availability.TriggerMessageStatusAccepted},
		{availability.MessageTriggerHeartbeat, nil, availability.TriggerMessageStatusRejected},
		{availability.MessageTriggerTransactionEvent, nil, availability.TriggerMessageStatusRejected},
		{availability.MessageTriggerPublishFirmwareStatusNotification, nil, availability.TriggerMessageStatusRejected},
	}
	for _, c := range cases {
		h := newTestHandler()
		name := string(c.trigger)
		if c.evse != nil {
			name += "/evse"
		}
		t.Run(name, func(t *testing.T) {
			response := h.OnTriggerMessage(&availability.TriggerMessageRequest{
				RequestedMessage: c.trigger,
				Evse:             c.evse,
			})
			if response.Status != c.want {
				t.Errorf("status = %s, want %s", response.Status, c.want)
			}
		})
	}
}
