package station

import (
	"fmt"

	"evstation/ocpp/tariff"
	"evstation/types"
)

// verifyTariffSignatures checks the tariff's embedded signatures. A tariff
// without signatures is acceptable; a signature with an empty value is not.
func verifyTariffSignatures(t *types.Tariff) (bool, string) {
	for _, sig := range t.Signatures {
		if sig.Value == "" {
			return false, fmt.Sprintf("empty signature value for key %s", sig.KeyId)
		}
	}
	return true, ""
}

func (h *SystemHandler) OnSetDefaultChargingTariff(request *tariff.SetDefaultChargingTariffRequest) *tariff.SetDefaultChargingTariffResponse {
	t := request.Tariff
	if ok, reason := verifyTariffSignatures(&t); !ok {
		return &tariff.SetDefaultChargingTariffResponse{
			Status:     tariff.SetDefaultTariffStatusInvalidSignature,
			StatusInfo: types.NewStatusInfo("InvalidSignature", reason),
		}
	}
	if len(request.EvseIds) == 0 {
		for _, evse := range h.allEVSEs() {
			evse.SetDefaultTariff(&t)
		}
		return &tariff.SetDefaultChargingTariffResponse{Status: tariff.SetDefaultTariffStatusAccepted}
	}
	// all targeted EVSEs must exist before any of them is touched
	for _, evseId := range request.EvseIds {
		if h.EVSE(evseId) == nil {
			return &tariff.SetDefaultChargingTariffResponse{
				Status:     tariff.SetDefaultTariffStatusRejected,
				StatusInfo: types.NewStatusInfo("UnknownEVSE", fmt.Sprintf("evse %d not found", evseId)),
			}
		}
	}
	statuses := make(map[int]tariff.EvseTariffStatus, len(request.EvseIds))
	for _, evseId := range request.EvseIds {
		h.EVSE(evseId).SetDefaultTariff(&t)
		statuses[evseId] = tariff.EvseTariffStatus{Status: string(tariff.SetDefaultTariffStatusAccepted)}
	}
	return &tariff.SetDefaultChargingTariffResponse{
		Status:          tariff.SetDefaultTariffStatusAccepted,
		EvseStatusInfos: statuses,
	}
}

func (h *SystemHandler) OnGetDefaultChargingTariff(request *tariff.GetDefaultChargingTariffRequest) *tariff.GetDefaultChargingTariffResponse {
	targets := request.EvseIds
	if len(targets) == 0 {
		for _, evse := range h.allEVSEs() {
			targets = append(targets, evse.Id)
		}
	}
	var tariffs []types.Tariff
	tariffMap := make(map[string][]int)
	for _, evseId := range targets {
		evse := h.EVSE(evseId)
		if evse == nil {
			continue
		}
		t := evse.GetDefaultTariff()
		if t == nil {
			continue
		}
		if _, seen := tariffMap[t.TariffId]; !seen {
			tariffs = append(tariffs, *t)
		}
		tariffMap[t.TariffId] = append(tariffMap[t.TariffId], evseId)
	}
	response := &tariff.GetDefaultChargingTariffResponse{Status: types.GenericStatusAccepted}
	if len(tariffs) > 0 {
		response.ChargingTariffs = tariffs
		response.ChargingTariffMap = tariffMap
	}
	return response
}

// OnRemoveDefaultChargingTariff reports the real outcome per EVSE; the
// overall status stays Accepted regardless.
func (h *SystemHandler) OnRemoveDefaultChargingTariff(request *tariff.RemoveDefaultChargingTariffRequest) *tariff.RemoveDefaultChargingTariffResponse {
	targets := request.EvseIds
	if len(targets) == 0 {
		for _, evse := range h.allEVSEs() {
			targets = append(targets, evse.Id)
		}
	}
	statuses := make(map[int]tariff.EvseTariffStatus, len(targets))
	for _, evseId := range targets {
		evse := h.EVSE(evseId)
		if evse == nil {
			statuses[evseId] = tariff.EvseTariffStatus{Status: string(tariff.RemoveDefaultTariffStatusNotFound)}
			continue
		}
		removed, present := evse.RemoveDefaultTariff(request.TariffId)
		switch {
		case !present:
			statuses[evseId] = tariff.EvseTariffStatus{Status: string(tariff.RemoveDefaultTariffStatusNotFound)}
		case removed:
			statuses[evseId] = tariff.EvseTariffStatus{Status: string(tariff.RemoveDefaultTariffStatusAccepted)}
		default:
			statuses[evseId] = tariff.EvseTariffStatus{Status: string(tariff.RemoveDefaultTariffStatusNotFound)}
		}
	}
	return &tariff.RemoveDefaultChargingTariffResponse{
		Status:          tariff.RemoveDefaultTariffStatusAccepted,
		EvseStatusInfos: statuses,
	}
}
